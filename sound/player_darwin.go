//go:build darwin

package sound

import "os/exec"

// playCue plays cues on macOS using afplay
func playCue(cue Cue) error {
	var soundFiles []string

	// Choose different samples based on the cue
	switch cue {
	case CueTick:
		// Short countdown tick
		soundFiles = []string{
			"/System/Library/Sounds/Tink.aiff",
			"/System/Library/Sounds/Pop.aiff",
		}
	case CueStart:
		// Exercise begins
		soundFiles = []string{
			"/System/Library/Sounds/Ping.aiff",
			"/System/Library/Sounds/Submarine.aiff",
		}
	case CueFinish:
		// Set or rest over
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Purr.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	// Try each sound file
	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
