//go:build windows

package sound

import "os/exec"

// playCue plays cues on Windows using PowerShell
func playCue(cue Cue) error {
	var soundCommands []string

	// Choose different system sounds based on the cue
	switch cue {
	case CueTick:
		// Short countdown tick
		soundCommands = []string{
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case CueStart:
		// Exercise begins
		soundCommands = []string{
			"[System.Media.SystemSounds]::Exclamation.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case CueFinish:
		// Set or rest over
		soundCommands = []string{
			"[System.Media.SystemSounds]::Asterisk.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	default:
		soundCommands = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
