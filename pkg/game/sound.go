package game

// 音效资源ID
const (
	SoundLaunch      = "SOUND_LAUNCH"       // 火箭发射
	SoundShieldBreak = "SOUND_SHIELD_BREAK" // 护盾破碎
	SoundExplosion   = "SOUND_EXPLOSION"    // 敌人被摧毁
	SoundBreach      = "SOUND_BREACH"       // 敌人触地，游戏结束
	SoundStart       = "SOUND_START"        // 开始新的一局
)

// AllSounds 所有音效ID，供音频后端预生成
var AllSounds = []string{SoundLaunch, SoundShieldBreak, SoundExplosion, SoundBreach, SoundStart}

// SoundPlayer 音效播放接口
// 由宿主层实现（ebiten audio / 终端 beep），控制器只负责在事件发生时调用
type SoundPlayer interface {
	// PlaySound 播放音效，返回是否成功播放
	PlaySound(soundID string) bool
}
