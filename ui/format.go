package ui

import "fmt"

// formatClock renders seconds as M:SS
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// formatMinutes renders a minute total as "Xh YYmin" past the hour mark
func formatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%02dmin", minutes/60, minutes%60)
}

// formatStepCount pluralizes the exercise count of a workout
func formatStepCount(count int) string {
	if count == 1 {
		return "1 exercice"
	}
	return fmt.Sprintf("%d exercices", count)
}
