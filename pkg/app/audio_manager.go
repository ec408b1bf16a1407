package app

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "github.com/gonewx/skyrocket/internal/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 按音效ID合成 PCM 并缓存播放器
//   - 实现音量控制和开关
//
// 实现 game.SoundPlayer 接口，由控制器在事件发生时调用。
type AudioManager struct {
	context      *audio.Context
	rng          *rand.Rand               // 噪声随机源
	soundPlayers map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	soundVolume  float64
	soundEnabled bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，进程内只能创建一个
//   - rng: 合成噪声使用的随机源
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, rng *rand.Rand) *AudioManager {
	return &AudioManager{
		context:      ctx,
		rng:          rng,
		soundPlayers: make(map[string]*audio.Player),
		soundVolume:  0.8,
		soundEnabled: true,
	}
}

// PlaySound 播放音效，单次播放
//
// 参数：
//   - soundID: 音效ID（如 game.SoundLaunch）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.soundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.soundVolume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// SetSoundVolume 设置音效音量 [0, 1]
func (am *AudioManager) SetSoundVolume(volume float64) {
	am.soundVolume = clampVolume(volume)
	for _, player := range am.soundPlayers {
		player.SetVolume(am.soundVolume)
	}
}

// SetSoundEnabled 开关音效
func (am *AudioManager) SetSoundEnabled(enabled bool) {
	am.soundEnabled = enabled
}

// PreloadSounds 预先合成音效，避免首次播放时卡顿
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	for _, id := range soundIDs {
		am.getSoundPlayer(id)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, ok := am.soundPlayers[soundID]; ok {
		return player
	}

	cue, ok := sfx.CueFor(soundID)
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown sound ID: %s", soundID)
		return nil
	}

	stream, err := sfx.Synthesize(cue, am.context.SampleRate(), am.rng)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to synthesize %s: %v", soundID, err)
		return nil
	}

	player := am.context.NewPlayerFromBytes(stream.Bytes())
	am.soundPlayers[soundID] = player
	return player
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
