package cmd

import (
	"fmt"

	"tempo/sound"
)

// PlaySoundCmd plays a sound cue
type PlaySoundCmd struct {
	Cue string `arg:"" optional:"" help:"Cue to play: tick, start or finish" default:"finish"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run() error {
	switch sound.Cue(p.Cue) {
	case sound.CueTick, sound.CueStart, sound.CueFinish:
		return sound.PlayCue(sound.Cue(p.Cue))
	}
	return fmt.Errorf("unknown cue %q", p.Cue)
}
