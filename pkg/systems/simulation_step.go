package systems

import (
	"math/rand"

	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
)

// SimulationStep 按固定顺序组合各个系统，推进一帧
//
// 顺序：刷怪 → 轨迹衰减 → 敌人移动 → 粒子运动 → 剔除 → 分数同步 → 帧计数。
// 敌人触地时本帧立即结束，后续步骤全部跳过。
type SimulationStep struct {
	spawn     *SpawnSystem
	trail     *TrailSystem
	movement  *EnemyMovementSystem
	particle  *ParticleSystem
	lifetime  *LifetimeSystem
	scoreSync *ScoreSyncSystem
}

// NewSimulationStep 创建模拟步骤
func NewSimulationStep(tuning *config.TuningConfig, rng *rand.Rand) *SimulationStep {
	return &SimulationStep{
		spawn:     NewSpawnSystem(tuning, rng),
		trail:     NewTrailSystem(&tuning.Trail),
		movement:  NewEnemyMovementSystem(tuning),
		particle:  NewParticleSystem(&tuning.Particle),
		lifetime:  NewLifetimeSystem(),
		scoreSync: NewScoreSyncSystem(&tuning.Score),
	}
}

// Step 推进一帧
//
// 非 PLAYING 状态或画布未就绪时什么都不做。
//
// 返回:
//   - bool: 本帧是否发生触地（此时状态已切换为 GAME_OVER）
func (s *SimulationStep) Step(gs *game.GameState) bool {
	if !gs.IsPlaying() || !gs.HasSurface() {
		return false
	}

	s.spawn.Update(gs)
	s.trail.Update(gs)

	if s.movement.Update(gs) {
		gs.EndGame()
		return true
	}

	s.particle.Update(gs)
	s.lifetime.Update(gs)
	s.scoreSync.Update(gs)
	gs.FrameCount++
	return false
}
