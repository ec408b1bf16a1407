package systems

import (
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
)

// ParticleSystem 更新爆炸粒子的运动和生命
//
// 每帧位置按速度移动，速度受重力影响，生命线性衰减。
// 粒子的移除交给 LifetimeSystem 统一处理。
type ParticleSystem struct {
	cfg *config.ParticleConfig
}

// NewParticleSystem creates a new ParticleSystem instance.
func NewParticleSystem(cfg *config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{cfg: cfg}
}

// Update processes all particles for the current frame.
func (ps *ParticleSystem) Update(gs *game.GameState) {
	for i := range gs.Particles {
		p := &gs.Particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += ps.cfg.Gravity
		p.Life -= ps.cfg.Decay
	}
}
