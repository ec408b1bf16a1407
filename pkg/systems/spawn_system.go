package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/entities"
	"github.com/gonewx/skyrocket/pkg/game"
)

// SpawnSystem 按帧计数生成敌人并推进难度曲线
//
// 当 FrameCount 能被当前刷怪间隔整除时生成一个敌人，
// 随后刷怪间隔递减（不低于下限），难度倍率递增（不高于上限）。
type SpawnSystem struct {
	tuning *config.TuningConfig
	rng    *rand.Rand
}

// NewSpawnSystem 创建刷怪系统
func NewSpawnSystem(tuning *config.TuningConfig, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		tuning: tuning,
		rng:    rng,
	}
}

// Update 执行一次刷怪判定
func (s *SpawnSystem) Update(gs *game.GameState) {
	if gs.FrameCount%SpawnInterval(gs.SpawnRate) != 0 {
		return
	}

	enemy := entities.NewEnemy(&gs.IDs, s.rng, s.tuning, gs.Width, gs.Difficulty)
	gs.Enemies = append(gs.Enemies, enemy)

	spawn := &s.tuning.Spawn
	gs.SpawnRate = math.Max(spawn.MinRate, gs.SpawnRate-spawn.RateStep)
	gs.Difficulty = math.Min(spawn.MaxDifficulty, gs.Difficulty+spawn.DifficultyStep)
}

// SpawnInterval 将刷怪间隔取整为帧数，最小为 1
func SpawnInterval(rate float64) int {
	interval := int(math.Floor(rate))
	if interval < 1 {
		return 1
	}
	return interval
}
