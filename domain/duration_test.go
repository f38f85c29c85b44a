package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepDuration(t *testing.T) {
	tests := []struct {
		name    string
		reps    string
		seconds int
		ok      bool
	}{
		{"minutes", "3 min", 180, true},
		{"seconds", "30 sec", 30, true},
		{"minutes no space", "15min", 900, true},
		{"uppercase unit", "2 MIN", 120, true},
		{"trailing words", "10 min échauffement", 600, true},
		{"rep count", "12", 0, false},
		{"rep range", "10-15", 0, false},
		{"max reps", "max", 0, false},
		{"empty", "", 0, false},
		{"interval spec takes first match", "30 sec sprint / 30 sec repos", 30, true},
		{"mixed interval takes first match", "1 min intense / 1 min repos", 60, true},
		{"minutes win over trailing seconds", "1 min 30", 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, ok := ParseRepDuration(tt.reps)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.seconds, seconds)
		})
	}
}

func TestRestOrDefault(t *testing.T) {
	assert.Equal(t, 45, WorkoutStep{Rest: 45}.RestOrDefault())
	assert.Equal(t, 60, WorkoutStep{Rest: 0}.RestOrDefault())
	assert.Equal(t, 60, WorkoutStep{Rest: -1}.RestOrDefault())
}

func TestSetsOrOne(t *testing.T) {
	assert.Equal(t, 4, WorkoutStep{Sets: 4}.SetsOrOne())
	assert.Equal(t, 1, WorkoutStep{}.SetsOrOne())
}
