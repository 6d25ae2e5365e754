package constant

// PCM output format
const (
	AudioSampleRate     = 44100
	AudioChannels       = 1
	AudioBitDepth       = 16
	AudioBytesPerSample = AudioBitDepth / 8 // 2 bytes

	// AudioPCMScale maps [-1, 1] onto the signed 16-bit range
	AudioPCMScale = 1<<15 - 1 // 32767
)

// Output
const (
	DefaultOutputDir = "Audio"
	DefaultJobs      = 1
	OutputFileMode   = 0o644
	OutputDirMode    = 0o755
)

// Click: damped two-partial tone plus a short noise burst.
// Shaping constants were tuned by ear.
const (
	ClickHarmonicWeight = 0.35
	ClickToneWeight     = 0.75
	ClickNoiseLevel     = 0.22
	ClickNoisePower     = 5.0
	ClickDecayPower     = 3.2
)

// Tone: two-partial sine with attack / falling sustain / release
const (
	ToneFundamentalWeight = 0.7
	ToneHarmonicWeight    = 0.3
	ToneAttackEnd         = 0.08
	ToneSustainEnd        = 0.25
	ToneSustainSlope      = 1.2
	ToneReleaseLevel      = 0.7
)

// Error buzz: three detuned low sines plus a little noise
const (
	BuzzFreq1    = 200.0
	BuzzFreq2    = 250.0
	BuzzFreq3    = 180.0
	BuzzWeight1  = 0.45
	BuzzWeight2  = 0.35
	BuzzWeight3  = 0.20
	BuzzNoiseAmt = 0.05
)

// Note frequencies (Hz)
const (
	NoteC5 = 523.25
	NoteE5 = 659.25
	NoteG5 = 783.99
	NoteG4 = 392.00
)

// Success chime: C5 then E5
const (
	ChimeSplit             = 0.40
	ChimeAttack            = 0.08
	ChimeFundamentalWeight = 0.75
	ChimeHarmonicWeight    = 0.25
)

// Win fanfare: C5, E5, G5 over 25% / 25% / 50%
const (
	FanfareSplit1            = 0.25
	FanfareSplit2            = 0.50
	FanfareAttack            = 0.06
	FanfareTailLevel         = 0.25
	FanfareFundamentalWeight = 0.60
	FanfareHarmonicWeight    = 0.25
	FanfareSubWeight         = 0.15
)

// Ambient pad
const (
	PadLFOBase        = 0.85
	PadLFODepth       = 0.15
	PadDetuneEven     = 0.0009
	PadDetuneOdd      = -0.0007
	PadToneOffset     = 1.2
	PadHarmonicOffset = 1.6
	PadHarmonicWeight = 0.22
	PadMenuLFORate    = 1.0 / 6.0
	PadGameLFORate    = 1.0 / 4.0

	// SoftClipDrive is the tanh pre-gain used to tame summed partials
	SoftClipDrive = 1.6
)

// Stock parameters of the shipped assets
const (
	DefaultClickFreq     = 1200.0
	DefaultClickDuration = 0.045
	DefaultClickAmp      = 0.50

	DefaultToneFreq     = NoteC5
	DefaultToneDuration = 0.10
	DefaultToneAmp      = 0.30

	DefaultBuzzDuration = 0.20
	DefaultBuzzAmp      = 0.30

	DefaultChimeDuration = 0.25
	DefaultChimeAmp      = 0.28

	DefaultFanfareDuration = 0.60
	DefaultFanfareAmp      = 0.28

	DefaultPadLoopSeconds = 12.0
	DefaultPadAmp         = 0.18
)
