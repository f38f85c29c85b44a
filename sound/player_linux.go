//go:build linux

package sound

import "os/exec"

// playCue plays cues on Linux using paplay (PulseAudio) or aplay (ALSA)
func playCue(cue Cue) error {
	var sounds []struct {
		cmd  string
		args []string
	}

	// Choose different samples based on the cue
	switch cue {
	case CueTick:
		// Short countdown tick
		sounds = []struct {
			cmd  string
			args []string
		}{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/message.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/message.wav"}},
		}
	case CueStart:
		// Exercise begins
		sounds = []struct {
			cmd  string
			args []string
		}{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/service-login.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/service-login.wav"}},
		}
	case CueFinish:
		// Set or rest over
		sounds = []struct {
			cmd  string
			args []string
		}{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	default:
		sounds = []struct {
			cmd  string
			args []string
		}{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}

	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
