package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/puzzle-sfx/constant"
)

// sampleFunc evaluates mono sample i of a sequence of n samples
type sampleFunc func(i, n int) float64

// indexStreamer lazily evaluates a sampleFunc once per index
// Mono values are written to both beep channels; it is not restartable
type indexStreamer struct {
	fn       sampleFunc
	position int
	total    int
}

func newIndexStreamer(total int, fn sampleFunc) *indexStreamer {
	if total < 0 {
		total = 0
	}
	return &indexStreamer{fn: fn, total: total}
}

func (s *indexStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}
		val := s.fn(s.position, s.total)
		samples[i][0] = val
		samples[i][1] = val
		s.position++
	}
	return len(samples), true
}

func (s *indexStreamer) Err() error { return nil }

// Len returns the total number of samples the streamer produces
func (s *indexStreamer) Len() int { return s.total }

// sliceStreamer replays a realized mono buffer
type sliceStreamer struct {
	data     []float64
	position int
}

func (s *sliceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= len(s.data) {
		return 0, false
	}
	n = copyMono(samples, s.data[s.position:])
	s.position += n
	return n, true
}

func (s *sliceStreamer) Err() error { return nil }

func copyMono(dst [][2]float64, src []float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}

// clampStreamer saturates every sample to [-1, 1]
type clampStreamer struct {
	streamer beep.Streamer
}

func (c *clampStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = c.streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] = Clamp(samples[i][0])
		samples[i][1] = Clamp(samples[i][1])
	}
	return n, ok
}

func (c *clampStreamer) Err() error { return c.streamer.Err() }

// newGain scales a stream linearly by amp
// effects.Gain multiplies by 1+Gain
func newGain(s beep.Streamer, amp float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: amp - 1}
}

// Collect drains s into a mono sample slice
func Collect(s beep.Streamer) ([]float64, error) {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = append(out, frame[0])
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// durationToSamples converts seconds to a sample count, truncating
func durationToSamples(seconds float64) int {
	return int(float64(constant.AudioSampleRate) * seconds)
}

// sampleTime returns the time in seconds of sample i
func sampleTime(i int) float64 {
	return float64(i) / float64(constant.AudioSampleRate)
}

func sine(freq, t float64) float64 {
	return math.Sin(2 * math.Pi * freq * t)
}
