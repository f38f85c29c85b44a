package domain

// defaultRestSeconds is applied when a step has no usable rest value.
// The catalog authors rest: 0 on HIIT steps whose reps string already
// encodes the recovery interval, so 0 is treated as "unset".
const defaultRestSeconds = 60

// Exercise describes a catalog exercise (immutable reference data)
type Exercise struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Equipment   string   `yaml:"equipment"`
	Description string   `yaml:"description"`
	Video       string   `yaml:"video"`
	Tips        []string `yaml:"tips"`
}

// WorkoutStep is one exercise entry within a workout: its set count,
// rep/duration spec and rest between sets
type WorkoutStep struct {
	ExerciseID string `yaml:"exercise"`
	Sets       int    `yaml:"sets"`
	Reps       string `yaml:"reps"`
	Rest       int    `yaml:"rest"`
}

// RestOrDefault returns the rest duration in seconds for this step,
// falling back to the default when the rest is zero or negative
func (s WorkoutStep) RestOrDefault() int {
	if s.Rest <= 0 {
		return defaultRestSeconds
	}
	return s.Rest
}

// SetsOrOne returns the set count, treating a missing count as a single set
func (s WorkoutStep) SetsOrOne() int {
	if s.Sets <= 0 {
		return 1
	}
	return s.Sets
}

// Workout is an ordered sequence of steps; the order is the execution order
type Workout struct {
	Name  string        `yaml:"name"`
	Steps []WorkoutStep `yaml:"steps"`
}

// Program groups workouts under a training plan
type Program struct {
	ID              string    `yaml:"id"`
	Name            string    `yaml:"name"`
	Level           string    `yaml:"level"`
	Duration        string    `yaml:"duration"`
	SessionsPerWeek int       `yaml:"sessions_per_week"`
	Description     string    `yaml:"description"`
	Workouts        []Workout `yaml:"workouts"`
}

// Stats holds the cumulative counters updated once per completed workout
type Stats struct {
	TotalWorkouts  int `json:"total_workouts"`
	TotalMinutes   int `json:"total_minutes"`
	CurrentStreak  int `json:"current_streak"`
	WeeklyWorkouts int `json:"weekly_workouts"`
}
