package manifest

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/puzzle-sfx/audio"
	"github.com/lixenwraith/puzzle-sfx/constant"
)

// Kind selects the generator an asset is rendered with
type Kind string

const (
	KindClick   Kind = "click"   // Percussive UI tick
	KindTone    Kind = "tone"    // Two-partial note with optional bend
	KindBuzz    Kind = "buzz"    // Invalid-action buzz
	KindChime   Kind = "chime"   // Two-note success chime
	KindFanfare Kind = "fanfare" // Three-note win fanfare
	KindPad     Kind = "pad"     // Loopable ambient music
)

// Params is the parameter set for one generator invocation
// Fields a kind does not use are ignored
type Params struct {
	Frequency float64    // Hz; click, tone
	Duration  float64    // Seconds; loop length for pad
	Amplitude float64    // Peak gain; base gain for pad
	Bend      float64    // Fraction of Frequency swept; tone
	Mood      audio.Mood // Preset; pad
}

// Descriptor pairs an output file name with a generator invocation
type Descriptor struct {
	Name string
	Kind Kind
	Params
}

// Sentinel errors
var (
	ErrInvalidDescriptor = errors.New("invalid asset descriptor")
	ErrDuplicateName     = errors.New("duplicate asset name")
)

// Validate checks the descriptor can be built and written
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDescriptor)
	}
	if strings.ContainsAny(d.Name, `/\`) || d.Name == "." || d.Name == ".." {
		return fmt.Errorf("%w: %q: name must be a bare file name", ErrInvalidDescriptor, d.Name)
	}
	if d.Duration <= 0 {
		return fmt.Errorf("%w: %q: duration must be positive, got %v", ErrInvalidDescriptor, d.Name, d.Duration)
	}
	if d.Amplitude < 0 {
		return fmt.Errorf("%w: %q: amplitude must not be negative, got %v", ErrInvalidDescriptor, d.Name, d.Amplitude)
	}

	switch d.Kind {
	case KindClick, KindTone:
		if d.Frequency <= 0 {
			return fmt.Errorf("%w: %q: %s needs a positive frequency", ErrInvalidDescriptor, d.Name, d.Kind)
		}
	case KindBuzz, KindChime, KindFanfare:
	case KindPad:
		if d.Mood != audio.MoodMenu && d.Mood != audio.MoodGame {
			return fmt.Errorf("%w: %q: %v", ErrInvalidDescriptor, d.Name, audio.ErrUnknownMood)
		}
	default:
		return fmt.Errorf("%w: %q: unknown kind %q", ErrInvalidDescriptor, d.Name, d.Kind)
	}
	return nil
}

// Frames returns the number of frames the asset renders to
func (d Descriptor) Frames() int {
	return int(float64(constant.AudioSampleRate) * d.Duration)
}

// Noisy reports whether the generator draws from a random source
func (d Descriptor) Noisy() bool {
	return d.Kind == KindClick || d.Kind == KindBuzz
}

// Build returns the lazy sample stream for the descriptor
// rng is only consumed by noise-bearing kinds and may be nil for the rest
func (d Descriptor) Build(rng *rand.Rand) (beep.Streamer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Noisy() && rng == nil {
		return nil, fmt.Errorf("%w: %q: %s needs a random source", ErrInvalidDescriptor, d.Name, d.Kind)
	}

	p := d.Params
	switch d.Kind {
	case KindClick:
		return audio.Click(rng, p.Frequency, p.Duration, p.Amplitude), nil
	case KindTone:
		return audio.Tone(p.Frequency, p.Duration, p.Amplitude, p.Bend), nil
	case KindBuzz:
		return audio.ErrorBuzz(rng, p.Duration, p.Amplitude), nil
	case KindChime:
		return audio.SuccessChime(p.Duration, p.Amplitude), nil
	case KindFanfare:
		return audio.WinFanfare(p.Duration, p.Amplitude), nil
	default:
		return audio.Pad(p.Duration, p.Amplitude, p.Mood), nil
	}
}
