package cmd

import (
	"fmt"

	"tempo/catalog"
)

// ProgramsCmd lists the training programs and their workouts
type ProgramsCmd struct {
	Steps bool `help:"Also list the exercises of each workout"`
}

// Run executes the programs command
func (p *ProgramsCmd) Run() error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	for _, program := range cat.Programs {
		fmt.Printf("%s (%s, %dx/semaine, %s)\n",
			program.Name, program.Level, program.SessionsPerWeek, program.Duration)
		for _, workout := range program.Workouts {
			fmt.Printf("  %s\n", workout.Name)
			if !p.Steps {
				continue
			}
			for _, step := range workout.Steps {
				name := step.ExerciseID
				if ex, ok := cat.Exercise(step.ExerciseID); ok {
					name = ex.Name
				}
				fmt.Printf("    %s · %d x %s (repos %ds)\n",
					name, step.SetsOrOne(), step.Reps, step.RestOrDefault())
			}
		}
		fmt.Println()
	}
	return nil
}
