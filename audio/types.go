package audio

import (
	"errors"
	"fmt"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/puzzle-sfx/constant"
)

// Mood selects an ambient pad preset
type Mood int

const (
	MoodMenu Mood = iota // A-major-ish chord, slow swell
	MoodGame             // G-major-ish chord, faster swell
)

var moodNames = [...]string{
	MoodMenu: "menu",
	MoodGame: "game",
}

func (m Mood) String() string {
	if m < 0 || int(m) >= len(moodNames) {
		return fmt.Sprintf("Mood(%d)", int(m))
	}
	return moodNames[m]
}

// ParseMood maps a preset name to its Mood
func ParseMood(name string) (Mood, error) {
	for m, n := range moodNames {
		if n == name {
			return Mood(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMood, name)
}

// Format is the PCM layout of every written asset: mono, 16-bit, 44.1kHz
var Format = beep.Format{
	SampleRate:  beep.SampleRate(constant.AudioSampleRate),
	NumChannels: constant.AudioChannels,
	Precision:   constant.AudioBytesPerSample,
}

// Sentinel errors
var (
	ErrUnknownMood = errors.New("unknown pad mood")
)
