package main

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	sfx "github.com/gonewx/skyrocket/internal/audio"
)

const sampleRate = beep.SampleRate(44100)

// sweepSteps 扫频近似的分段数
const sweepSteps = 4

// BeepPlayer 终端音效播放器
//
// 按 Cue 的起止频率分段拼接正弦音，近似线性扫频。
// 实现 game.SoundPlayer 接口。
type BeepPlayer struct {
	mu          sync.Mutex
	initialized bool
}

// NewBeepPlayer 初始化扬声器，失败时返回错误，调用方可退回静音
func NewBeepPlayer() (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &BeepPlayer{initialized: true}, nil
}

// PlaySound 播放音效，未知音效ID返回 false
func (p *BeepPlayer) PlaySound(soundID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}

	cue, ok := sfx.CueFor(soundID)
	if !ok {
		log.Printf("[BeepPlayer] Warning: Unknown sound ID: %s", soundID)
		return false
	}

	streamer, err := cueStreamer(cue)
	if err != nil {
		log.Printf("[BeepPlayer] Warning: Failed to build %s: %v", soundID, err)
		return false
	}
	speaker.Play(streamer)
	return true
}

// Close 关闭扬声器
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}

// cueStreamer 把 Cue 转成分段正弦音序列
func cueStreamer(cue sfx.Cue) (beep.Streamer, error) {
	step := cue.Duration / sweepSteps
	parts := make([]beep.Streamer, 0, sweepSteps)
	for i := 0; i < sweepSteps; i++ {
		t := float64(i) / float64(sweepSteps-1)
		freq := cue.StartFreq + (cue.EndFreq-cue.StartFreq)*t
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(step), sine))
	}
	return withVolume(beep.Seq(parts...), cue.Volume), nil
}

// withVolume 线性音量转为 effects.Volume 的对数刻度，0 为静音
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
