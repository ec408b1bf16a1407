package scenes

import (
	"log"
	"math/rand"

	"github.com/gonewx/skyrocket/pkg/components"
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
	"github.com/gonewx/skyrocket/pkg/render"
	"github.com/gonewx/skyrocket/pkg/systems"
)

// GameScene is the game controller.
// It exclusively owns the GameState and drives the state machine:
// START → PLAYING → GAME_OVER → PLAYING.
// Every system receives the state explicitly; nothing else holds a reference to it.
type GameScene struct {
	tuning    *config.TuningConfig
	gameState *game.GameState

	// ECS systems
	simulation   *systems.SimulationStep
	inputSystem  *systems.InputSystem
	renderSystem *systems.RenderSystem

	soundPlayer game.SoundPlayer // 可选，为 nil 时静音
}

var _ Scene = (*GameScene)(nil)

// NewGameScene creates a controller in START mode.
//
// 参数:
//   - tuning: 玩法参数，必须已通过 Validate
//   - rng: 随机源，刷怪位置和特效共用，注入固定种子可复现整局
func NewGameScene(tuning *config.TuningConfig, rng *rand.Rand) *GameScene {
	return &GameScene{
		tuning:       tuning,
		gameState:    game.NewGameState(tuning),
		simulation:   systems.NewSimulationStep(tuning, rng),
		inputSystem:  systems.NewInputSystem(tuning, rng),
		renderSystem: systems.NewRenderSystem(tuning),
	}
}

// SetSoundPlayer 设置音效播放器，传 nil 关闭音效
func (s *GameScene) SetSoundPlayer(player game.SoundPlayer) {
	s.soundPlayer = player
}

// StartGame resets the session and enters PLAYING.
// Used both for the first start and for retry after GAME_OVER.
func (s *GameScene) StartGame() {
	s.gameState.Reset(s.tuning)
	s.playSound(game.SoundStart)
	log.Printf("[GameScene] Game started (high score: %d)", s.gameState.HighScore)
}

// HandlePointerDown feeds a tap to the input system.
// Taps outside PLAYING or above the ground zone are ignored.
func (s *GameScene) HandlePointerDown(x, y float64) systems.ShotResult {
	result := s.inputSystem.HandlePointerDown(s.gameState, x, y)

	switch result {
	case systems.ShotMiss:
		s.playSound(game.SoundLaunch)
	case systems.ShotShieldHit, systems.ShotShieldBroken:
		s.playSound(game.SoundLaunch)
		s.playSound(game.SoundShieldBreak)
	case systems.ShotDestroyed:
		s.playSound(game.SoundLaunch)
		s.playSound(game.SoundExplosion)
	}
	return result
}

// Update advances the simulation by one tick.
func (s *GameScene) Update() {
	if !s.simulation.Step(s.gameState) {
		return
	}

	s.playSound(game.SoundBreach)
	log.Printf("[GameScene] Game over at frame %d: score %d, high score %d",
		s.gameState.FrameCount, s.gameState.Score, s.gameState.HighScore)
}

// Draw renders the world and the UI overlay.
func (s *GameScene) Draw(canvas render.Canvas) {
	if canvas == nil || !s.gameState.HasSurface() {
		return
	}
	s.renderSystem.Draw(s.gameState, canvas)
	s.drawUI(canvas)
}

// OnTick 执行一次完整的帧回调：模拟一步，然后绘制
//
// 画布缺失或尺寸无效时跳过本帧，不报错，等待下一次调度。
//
// 返回:
//   - bool: 是否需要继续调度下一帧（仅在 PLAYING 时为 true）
func (s *GameScene) OnTick(canvas render.Canvas) bool {
	if canvas == nil || !s.gameState.HasSurface() {
		return s.gameState.IsPlaying()
	}
	s.Update()
	s.Draw(canvas)
	return s.gameState.IsPlaying()
}

// OnResize reconfigures the drawing surface size.
func (s *GameScene) OnResize(width, height float64) {
	if width == s.gameState.Width && height == s.gameState.Height {
		return
	}
	s.gameState.SetSurfaceSize(width, height)
	log.Printf("[GameScene] Surface resized to %.0fx%.0f", width, height)
}

// Mode 当前游戏模式
func (s *GameScene) Mode() game.GameMode {
	return s.gameState.Mode
}

// Score 权威分数
func (s *GameScene) Score() int {
	return s.gameState.Score
}

// DisplayScore 节流后的显示分数，仅用于界面
func (s *GameScene) DisplayScore() int {
	return s.gameState.DisplayScore
}

// HighScore 进程内最高分
func (s *GameScene) HighScore() int {
	return s.gameState.HighScore
}

// FrameCount 本局已推进的帧数
func (s *GameScene) FrameCount() int {
	return s.gameState.FrameCount
}

// GroundY 当前画布下的地面线
func (s *GameScene) GroundY() float64 {
	return s.gameState.GroundY(s.tuning)
}

// Enemies 返回敌人集合的副本，调用方修改它不会影响游戏状态
func (s *GameScene) Enemies() []components.EnemyComponent {
	return append([]components.EnemyComponent(nil), s.gameState.Enemies...)
}

// EntityCounts 返回敌人、粒子和轨迹的数量
func (s *GameScene) EntityCounts() (enemies, particles, trails int) {
	return len(s.gameState.Enemies), len(s.gameState.Particles), len(s.gameState.Trails)
}

func (s *GameScene) playSound(soundID string) {
	if s.soundPlayer == nil {
		return
	}
	s.soundPlayer.PlaySound(soundID)
}
