package audio

import (
	"time"

	"github.com/gonewx/skyrocket/pkg/game"
)

// Cue describes a procedurally synthesized sound effect.
// The game ships no audio assets; every cue is a swept sine tone,
// optionally mixed with white noise.
type Cue struct {
	StartFreq float64       // 起始频率 (Hz)
	EndFreq   float64       // 结束频率 (Hz)，线性扫频
	Duration  time.Duration // 时长
	Volume    float64       // 音量 [0, 1]
	Noise     float64       // 白噪声混合比例 [0, 1]
}

// Cues maps sound IDs to their synthesis parameters.
var Cues = map[string]Cue{
	game.SoundLaunch:      {StartFreq: 320, EndFreq: 900, Duration: 120 * time.Millisecond, Volume: 0.35},
	game.SoundShieldBreak: {StartFreq: 1400, EndFreq: 700, Duration: 140 * time.Millisecond, Volume: 0.3, Noise: 0.2},
	game.SoundExplosion:   {StartFreq: 180, EndFreq: 40, Duration: 350 * time.Millisecond, Volume: 0.5, Noise: 0.6},
	game.SoundBreach:      {StartFreq: 220, EndFreq: 55, Duration: 700 * time.Millisecond, Volume: 0.5},
	game.SoundStart:       {StartFreq: 440, EndFreq: 880, Duration: 180 * time.Millisecond, Volume: 0.3},
}

// CueFor looks up the cue for a sound ID.
func CueFor(soundID string) (Cue, bool) {
	cue, ok := Cues[soundID]
	return cue, ok
}
