package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/puzzle-sfx/constant"
)

// --- Sound Generators ---
// Each returns a lazy, finite mono stream of floor(SR*duration) samples

// Click generates a percussive tick: damped tone plus a short noise burst
func Click(rng *rand.Rand, freq, dur, amp float64) beep.Streamer {
	raw := newIndexStreamer(durationToSamples(dur), func(i, n int) float64 {
		t := sampleTime(i)
		p := float64(i) / float64(n)

		tone := sine(freq, t) + constant.ClickHarmonicWeight*sine(2*freq, t)

		// Burst is strong at the start and gone well before the tail
		noiseAmt := constant.ClickNoiseLevel * math.Pow(1-p, constant.ClickNoisePower)
		noise := (rng.Float64()*2 - 1) * noiseAmt

		s := constant.ClickToneWeight*tone + noise
		return s * EnvExp(i, n, constant.ClickDecayPower)
	})
	return newGain(raw, amp)
}

// Tone generates a two-partial note, optionally bent by a fraction of freq
// centered on the midpoint: negative bend falls, positive rises
func Tone(freq, dur, amp, bend float64) beep.Streamer {
	raw := newIndexStreamer(durationToSamples(dur), func(i, n int) float64 {
		t := sampleTime(i)
		p := float64(i) / float64(n)
		f := freq * (1 + bend*(p-0.5))

		s := constant.ToneFundamentalWeight*sine(f, t) + constant.ToneHarmonicWeight*sine(2*f, t)
		return s * toneEnvelope(p)
	})
	return newGain(raw, amp)
}

// ErrorBuzz generates a dissonant low buzz for invalid actions
func ErrorBuzz(rng *rand.Rand, dur, amp float64) beep.Streamer {
	raw := newIndexStreamer(durationToSamples(dur), func(i, n int) float64 {
		t := sampleTime(i)
		p := float64(i) / float64(n)

		s := constant.BuzzWeight1*sine(constant.BuzzFreq1, t) +
			constant.BuzzWeight2*sine(constant.BuzzFreq2, t) +
			constant.BuzzWeight3*sine(constant.BuzzFreq3, t)
		s += (rng.Float64()*2 - 1) * constant.BuzzNoiseAmt
		return s * (1 - p)
	})
	return newGain(raw, amp)
}

// ChimeNote returns the chime note frequency at position p and the position local to that note
func ChimeNote(p float64) (freq, pp float64) {
	if p < constant.ChimeSplit {
		return constant.NoteC5, p / constant.ChimeSplit
	}
	return constant.NoteE5, (p - constant.ChimeSplit) / (1 - constant.ChimeSplit)
}

// SuccessChime generates a rising two-note chime, each note with its own envelope
func SuccessChime(dur, amp float64) beep.Streamer {
	raw := newIndexStreamer(durationToSamples(dur), func(i, n int) float64 {
		t := sampleTime(i)
		f, pp := ChimeNote(float64(i) / float64(n))

		s := constant.ChimeFundamentalWeight*sine(f, t) + constant.ChimeHarmonicWeight*sine(2*f, t)
		return s * attackDecay(pp, constant.ChimeAttack)
	})
	return newGain(raw, amp)
}

// FanfareNote returns the fanfare note at position p, the position local to it,
// and whether it is the final, ringing note
func FanfareNote(p float64) (freq, pp float64, final bool) {
	switch {
	case p < constant.FanfareSplit1:
		return constant.NoteC5, p / constant.FanfareSplit1, false
	case p < constant.FanfareSplit2:
		return constant.NoteE5, (p - constant.FanfareSplit1) / (constant.FanfareSplit2 - constant.FanfareSplit1), false
	default:
		return constant.NoteG5, (p - constant.FanfareSplit2) / (1 - constant.FanfareSplit2), true
	}
}

// WinFanfare generates an ascending three-note arpeggio with a ringing last note
func WinFanfare(dur, amp float64) beep.Streamer {
	raw := newIndexStreamer(durationToSamples(dur), func(i, n int) float64 {
		t := sampleTime(i)
		f, pp, final := FanfareNote(float64(i) / float64(n))

		e := attackDecay(pp, constant.FanfareAttack)
		if final {
			e = math.Max(e, constant.FanfareTailLevel*(1-pp))
		}

		s := constant.FanfareFundamentalWeight*sine(f, t) +
			constant.FanfareHarmonicWeight*sine(2*f, t) +
			constant.FanfareSubWeight*sine(0.5*f, t)
		return s * e
	})
	return newGain(raw, amp)
}

// padPreset is a chord and tremolo rate
// Frequencies and rate are multiples of 1/loop so the loop wraps in phase
type padPreset struct {
	freqs   [4]float64
	lfoRate float64
}

var padPresets = map[Mood]padPreset{
	MoodMenu: {freqs: [4]float64{220, 264, 330, 440}, lfoRate: constant.PadMenuLFORate}, // A3, ~C4, E4, A4
	MoodGame: {freqs: [4]float64{196, 247, 294, 392}, lfoRate: constant.PadGameLFORate}, // G3, ~B3, D4, G4
}

func presetFor(mood Mood) padPreset {
	if p, ok := padPresets[mood]; ok {
		return p
	}
	return padPresets[MoodGame]
}

// PadSample evaluates the pad at time t
// detune adds a tiny alternating offset to each chord tone for warmth; it is
// the only term that is not periodic over the loop length
func PadSample(t, baseAmp float64, mood Mood, detune bool) float64 {
	preset := presetFor(mood)
	lfo := constant.PadLFOBase + constant.PadLFODepth*sine(preset.lfoRate, t)

	s := 0.0
	for k, f := range preset.freqs {
		det := 1.0
		if detune {
			if k%2 == 0 {
				det += constant.PadDetuneEven
			} else {
				det += constant.PadDetuneOdd
			}
		}
		s += (1 / (float64(k) + constant.PadToneOffset)) * sine(f*det, t)
		s += constant.PadHarmonicWeight * (1 / (float64(k) + constant.PadHarmonicOffset)) * sine(2*f, t)
	}

	return SoftClip(s * baseAmp * lfo)
}

// Pad generates a seamless ambient loop of loopSeconds
func Pad(loopSeconds, baseAmp float64, mood Mood) beep.Streamer {
	return newIndexStreamer(durationToSamples(loopSeconds), func(i, _ int) float64 {
		return PadSample(sampleTime(i), baseAmp, mood, true)
	})
}
