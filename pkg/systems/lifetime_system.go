package systems

import (
	"github.com/gonewx/skyrocket/pkg/components"
	"github.com/gonewx/skyrocket/pkg/ecs"
	"github.com/gonewx/skyrocket/pkg/game"
)

// LifetimeSystem 在帧末移除已失效的实体
//
// 敌人以 Active=false 标记删除，粒子以 Life<=0 标记删除。
// 压缩保持剩余实体的相对顺序。
type LifetimeSystem struct{}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

// Update 压缩敌人和粒子集合
func (s *LifetimeSystem) Update(gs *game.GameState) {
	gs.Enemies = ecs.Compact(gs.Enemies, func(e *components.EnemyComponent) bool {
		return e.Active
	})
	gs.Particles = ecs.Compact(gs.Particles, func(p *components.ParticleComponent) bool {
		return p.Alive()
	})
}
