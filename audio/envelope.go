package audio

import (
	"math"

	"github.com/lixenwraith/puzzle-sfx/constant"
)

// EnvExp returns max(0, 1-i/n)^power, a decaying gain curve
func EnvExp(i, n int, power float64) float64 {
	x := 1.0 - float64(i)/float64(n)
	return math.Pow(math.Max(0, x), power)
}

// Clamp01 saturates x to [0, 1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Clamp saturates x to [-1, 1]
func Clamp(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

// SoftClip is a gentle tanh saturation
func SoftClip(x float64) float64 {
	return math.Tanh(constant.SoftClipDrive * x)
}

// attackDecay ramps linearly to 1 over [0, attack) then falls linearly to 0 at pp=1
func attackDecay(pp, attack float64) float64 {
	if pp < attack {
		return pp / attack
	}
	return math.Max(0, 1-(pp-attack)/(1-attack))
}

// toneEnvelope: fast attack, falling sustain to 0.7, linear release
func toneEnvelope(p float64) float64 {
	switch {
	case p < constant.ToneAttackEnd:
		return p / constant.ToneAttackEnd
	case p < constant.ToneSustainEnd:
		return 1 - (p-constant.ToneAttackEnd)*constant.ToneSustainSlope
	default:
		release := 1 - (p-constant.ToneSustainEnd)/(1-constant.ToneSustainEnd)
		return math.Max(0, constant.ToneReleaseLevel*release)
	}
}
