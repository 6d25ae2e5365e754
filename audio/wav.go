package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/puzzle-sfx/constant"
)

// Encode realizes s in memory, clamps every sample to [-1, 1] and writes it
// to w as a mono 16-bit PCM WAV in Format. Returns the number of frames written
func Encode(w io.WriteSeeker, s beep.Streamer) (int, error) {
	samples, err := Collect(s)
	if err != nil {
		return 0, fmt.Errorf("generate samples: %w", err)
	}

	clamped := &clampStreamer{streamer: &sliceStreamer{data: samples}}
	if err := wav.Encode(w, clamped, Format); err != nil {
		return 0, fmt.Errorf("encode wav: %w", err)
	}
	return len(samples), nil
}

// WriteFile encodes s to path, replacing any existing file
func WriteFile(path string, s beep.Streamer) (frames int, err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, constant.OutputFileMode)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	frames, err = Encode(f, s)
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return frames, nil
}
