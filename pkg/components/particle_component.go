package components

import (
	"image/color"

	"github.com/gonewx/skyrocket/pkg/ecs"
)

// ParticleComponent represents a single particle spawned by an explosion burst.
//
// Particles are created only by the burst factory and only mutated by the
// particle system: Pos += Vel, Vel.Y += gravity, Life -= decay.
// A particle is removed once Life <= 0.
type ParticleComponent struct {
	ID    ecs.EntityID
	Pos   Vec2
	Vel   Vec2       // 速度（像素/帧）
	Color color.RGBA // 粒子颜色，透明度由 Life 决定
	Life  float64    // 剩余生命 [0, 1]
	// MaxLife 初始生命，目前始终为 1.0
	MaxLife float64
	Size    float64 // 半径（像素）
}

// Alive 粒子是否仍存活
func (p *ParticleComponent) Alive() bool {
	return p.Life > 0
}
