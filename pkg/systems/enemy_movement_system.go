package systems

import (
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
)

// EnemyMovementSystem 推进敌人下落并检测触地
type EnemyMovementSystem struct {
	tuning *config.TuningConfig
}

// NewEnemyMovementSystem 创建敌人移动系统
func NewEnemyMovementSystem(tuning *config.TuningConfig) *EnemyMovementSystem {
	return &EnemyMovementSystem{tuning: tuning}
}

// Update 逐个移动敌人，每移动一个立即检测是否越过地面线
//
// 返回:
//   - bool: 本帧是否有敌人触地。一旦触地立即返回，后续敌人不再移动
func (s *EnemyMovementSystem) Update(gs *game.GameState) bool {
	groundY := gs.GroundY(s.tuning)

	for i := range gs.Enemies {
		enemy := &gs.Enemies[i]
		if !enemy.Active {
			continue
		}

		enemy.Pos = enemy.Pos.Add(enemy.Vel)

		if enemy.Bottom() >= groundY {
			return true
		}
	}
	return false
}
