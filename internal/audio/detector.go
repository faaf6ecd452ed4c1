package audio

import (
	"os/exec"
	"strconv"
)

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// DetectBackend searches PATH for a tool that can play raw PCM from stdin.
// Priority: pacat > pw-cat > aplay > play (sox) > ffplay
func DetectBackend(sampleRate int) (*BackendConfig, error) {
	rate := strconv.Itoa(sampleRate)

	// PulseAudio, or PipeWire with the pulse shim
	if path, err := lookPath("pacat"); err == nil {
		return &BackendConfig{
			Type: BackendPulse,
			Name: "pacat",
			Path: path,
			Args: []string{
				"--raw",
				"--format=s16le",
				"--rate=" + rate,
				"--channels=2",
				"--latency-msec=50",
				"--playback",
			},
		}, nil
	}

	// PipeWire native
	if path, err := lookPath("pw-cat"); err == nil {
		return &BackendConfig{
			Type: BackendPipeWire,
			Name: "pw-cat",
			Path: path,
			Args: []string{
				"--playback",
				"--format=s16",
				"--rate=" + rate,
				"--channels=2",
				"--latency=50ms",
				"-",
			},
		}, nil
	}

	// ALSA
	if path, err := lookPath("aplay"); err == nil {
		return &BackendConfig{
			Type: BackendALSA,
			Name: "aplay",
			Path: path,
			Args: []string{"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q"},
		}, nil
	}

	// SoX
	if path, err := lookPath("play"); err == nil {
		return &BackendConfig{
			Type: BackendSoX,
			Name: "sox",
			Path: path,
			Args: []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q"},
		}, nil
	}

	// FFplay
	if path, err := lookPath("ffplay"); err == nil {
		return &BackendConfig{
			Type: BackendFFplay,
			Name: "ffplay",
			Path: path,
			Args: []string{
				"-nodisp",
				"-autoexit",
				"-f", "s16le",
				"-ac", "2",
				"-ar", rate,
				"-probesize", "32",
				"-analyzeduration", "0",
				"-i", "pipe:0",
				"-loglevel", "quiet",
			},
		}, nil
	}

	return nil, ErrNoAudioBackend
}
