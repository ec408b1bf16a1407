// Package game 保存一局游戏的会话状态，并定义音效播放接口
package game

import (
	"github.com/gonewx/skyrocket/pkg/components"
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/ecs"
)

// GameMode 游戏模式，唯一权威的模式标记
type GameMode int

const (
	// ModeStart 初始状态，集合为空，等待开始
	ModeStart GameMode = iota
	// ModePlaying 游戏进行中
	ModePlaying
	// ModeGameOver 敌人触地，分数已锁定
	ModeGameOver
)

// String 返回模式名称
func (m GameMode) String() string {
	switch m {
	case ModeStart:
		return "START"
	case ModePlaying:
		return "PLAYING"
	case ModeGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// GameState 存储一局游戏的全部可变状态
//
// 由控制器独占持有，以指针显式传入每个系统和输入处理器，不存在隐式共享。
// 只有输入系统会修改敌人的 HP/Active，其余字段由模拟步骤维护。
type GameState struct {
	Mode GameMode

	// 实体集合（按创建顺序排列的密集数组）
	Enemies   []components.EnemyComponent
	Particles []components.ParticleComponent
	Trails    []components.SmokeTrailComponent

	// 分数
	Score        int // 权威分数
	DisplayScore int // 节流后的显示分数，仅用于界面刷新
	HighScore    int // 进程生命周期内的最高分

	// 难度计数器
	FrameCount int
	SpawnRate  float64 // 刷怪间隔（帧），随时间递减
	Difficulty float64 // 难度倍率，随时间递增

	// 画布尺寸，为 0 表示画布尚未就绪
	Width  float64
	Height float64

	IDs ecs.IDAllocator
}

// NewGameState 创建处于 START 模式的空状态
func NewGameState(tuning *config.TuningConfig) *GameState {
	gs := &GameState{Mode: ModeStart}
	gs.resetCounters(tuning)
	return gs
}

// Reset 开始新的一局
//
// 清空所有实体集合，分数和帧计数归零，刷怪间隔与难度恢复初始值。
// 最高分和画布尺寸保留。
func (gs *GameState) Reset(tuning *config.TuningConfig) {
	gs.Enemies = gs.Enemies[:0]
	gs.Particles = gs.Particles[:0]
	gs.Trails = gs.Trails[:0]
	gs.resetCounters(tuning)
	gs.Mode = ModePlaying
}

func (gs *GameState) resetCounters(tuning *config.TuningConfig) {
	gs.Score = 0
	gs.DisplayScore = 0
	gs.FrameCount = 0
	gs.SpawnRate = tuning.Spawn.InitialRate
	gs.Difficulty = tuning.Spawn.InitialDifficulty
	gs.IDs.Reset()
}

// EndGame 进入 GAME_OVER：锁定分数并更新最高分
func (gs *GameState) EndGame() {
	gs.Mode = ModeGameOver
	gs.DisplayScore = gs.Score
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
	}
}

// AddScore 增加分数
func (gs *GameState) AddScore(amount int) {
	gs.Score += amount
}

// IsPlaying 是否处于游戏进行中
func (gs *GameState) IsPlaying() bool {
	return gs.Mode == ModePlaying
}

// HasSurface 画布是否已就绪（尺寸有效）
func (gs *GameState) HasSurface() bool {
	return gs.Width > 0 && gs.Height > 0
}

// SetSurfaceSize 更新画布尺寸
func (gs *GameState) SetSurfaceSize(width, height float64) {
	gs.Width = width
	gs.Height = height
}

// GroundY 返回地面线的Y坐标
func (gs *GameState) GroundY(tuning *config.TuningConfig) float64 {
	return config.GroundLineY(gs.Height, tuning.Ground.ZoneFraction)
}
