package manifest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/puzzle-sfx/audio"
	"github.com/lixenwraith/puzzle-sfx/constant"
)

// Assets is the authoritative asset list
// Order in slice determines write order only; files are independent
var Assets = []Descriptor{
	// UI feedback
	{"click.wav", KindClick, Params{Frequency: constant.DefaultClickFreq, Duration: constant.DefaultClickDuration, Amplitude: constant.DefaultClickAmp}},
	{"cell_select.wav", KindClick, Params{Frequency: 900, Duration: 0.040, Amplitude: 0.45}},

	// Number entry
	{"number_place.wav", KindTone, Params{Frequency: constant.DefaultToneFreq, Duration: constant.DefaultToneDuration, Amplitude: constant.DefaultToneAmp, Bend: 0.35}},
	{"number_remove.wav", KindTone, Params{Frequency: constant.NoteG4, Duration: 0.08, Amplitude: constant.DefaultToneAmp, Bend: -0.25}},

	// Pencil marks
	{"note_place.wav", KindClick, Params{Frequency: 1500, Duration: 0.030, Amplitude: 0.42}},
	{"note_remove.wav", KindClick, Params{Frequency: 700, Duration: 0.030, Amplitude: 0.40}},

	// Outcomes
	{"error.wav", KindBuzz, Params{Duration: constant.DefaultBuzzDuration, Amplitude: constant.DefaultBuzzAmp}},
	{"success.wav", KindChime, Params{Duration: constant.DefaultChimeDuration, Amplitude: constant.DefaultChimeAmp}},
	{"win.wav", KindFanfare, Params{Duration: constant.DefaultFanfareDuration, Amplitude: constant.DefaultFanfareAmp}},

	// Background music (loopable)
	{"menu_music.wav", KindPad, Params{Duration: constant.DefaultPadLoopSeconds, Amplitude: constant.DefaultPadAmp, Mood: audio.MoodMenu}},
	{"game_music.wav", KindPad, Params{Duration: constant.DefaultPadLoopSeconds, Amplitude: 0.20, Mood: audio.MoodGame}},
}

// Default returns a copy of the asset list
func Default() []Descriptor {
	list := make([]Descriptor, len(Assets))
	copy(list, Assets)
	return list
}

// Validate checks every descriptor and rejects duplicate output names
func Validate(list []Descriptor) error {
	seen := make(map[string]bool, len(list))
	for _, d := range list {
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}

// Names returns output file names in list order
func Names(list []Descriptor) []string {
	names := make([]string, len(list))
	for i, d := range list {
		names[i] = d.Name
	}
	return names
}

// listing is the YAML shape of one asset
type listing struct {
	Name      string  `yaml:"name"`
	Kind      Kind    `yaml:"kind"`
	Frequency float64 `yaml:"frequency,omitempty"`
	Bend      float64 `yaml:"bend,omitempty"`
	Mood      string  `yaml:"mood,omitempty"`
	Duration  float64 `yaml:"duration"`
	Amplitude float64 `yaml:"amplitude"`
	Frames    int     `yaml:"frames"`
}

type listingDoc struct {
	SampleRate int       `yaml:"sampleRate"`
	Channels   int       `yaml:"channels"`
	BitDepth   int       `yaml:"bitDepth"`
	Assets     []listing `yaml:"assets"`
}

// WriteYAML renders list with its output format as a YAML document
func WriteYAML(w io.Writer, list []Descriptor) error {
	doc := listingDoc{
		SampleRate: constant.AudioSampleRate,
		Channels:   constant.AudioChannels,
		BitDepth:   constant.AudioBitDepth,
		Assets:     make([]listing, 0, len(list)),
	}
	for _, d := range list {
		l := listing{
			Name:      d.Name,
			Kind:      d.Kind,
			Duration:  d.Duration,
			Amplitude: d.Amplitude,
			Frames:    d.Frames(),
		}
		switch d.Kind {
		case KindClick, KindTone:
			l.Frequency = d.Frequency
			l.Bend = d.Bend
		case KindPad:
			l.Mood = d.Mood.String()
		}
		doc.Assets = append(doc.Assets, l)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return enc.Close()
}
