package sound

import (
	"fmt"
	"time"

	"tempo/logging"
)

// Cue identifies an audible signal emitted by the session clock
type Cue string

const (
	CueTick   Cue = "tick"   // countdown second
	CueStart  Cue = "start"  // exercise begins
	CueFinish Cue = "finish" // set or rest over
)

// The finish cue is a triple beep; system samples cannot vary pitch, so it
// repeats the same sample instead of ascending
const (
	finishRepeats = 3
	finishSpacing = 250 * time.Millisecond
)

// Play emits the cue without blocking the caller. Sound is best-effort:
// failures are logged and never surfaced.
func Play(cue Cue) {
	go func() {
		if err := PlayCue(cue); err != nil {
			logging.Logger.Debug("Failed to play sound cue", "cue", string(cue), "error", err)
		}
	}()
}

// PlayCue plays the cue synchronously and reports failure. Used by the
// hidden play-sound debug command; session code goes through Play.
func PlayCue(cue Cue) error {
	if cue == CueFinish {
		for i := 0; i < finishRepeats; i++ {
			if err := playCue(cue); err != nil {
				return err
			}
			if i < finishRepeats-1 {
				time.Sleep(finishSpacing)
			}
		}
		return nil
	}
	return playCue(cue)
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
