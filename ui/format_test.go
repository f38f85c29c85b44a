package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{name: "zero", seconds: 0, want: "0:00"},
		{name: "under a minute", seconds: 45, want: "0:45"},
		{name: "exactly a minute", seconds: 60, want: "1:00"},
		{name: "minute and seconds", seconds: 90, want: "1:30"},
		{name: "padded seconds", seconds: 125, want: "2:05"},
		{name: "long duration", seconds: 900, want: "15:00"},
		{name: "negative clamps to zero", seconds: -5, want: "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatClock(tt.seconds))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "zero", minutes: 0, want: "0min"},
		{name: "under an hour", minutes: 45, want: "45min"},
		{name: "exact hour", minutes: 60, want: "1h"},
		{name: "hour and minutes", minutes: 75, want: "1h15min"},
		{name: "padded minutes", minutes: 125, want: "2h05min"},
		{name: "negative clamps to zero", minutes: -10, want: "0min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMinutes(tt.minutes))
		})
	}
}

func TestFormatStepCount(t *testing.T) {
	assert.Equal(t, "1 exercice", formatStepCount(1))
	assert.Equal(t, "8 exercices", formatStepCount(8))
}
