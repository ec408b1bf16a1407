package systems

import (
	"github.com/gonewx/skyrocket/pkg/components"
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/ecs"
	"github.com/gonewx/skyrocket/pkg/game"
)

// TrailSystem 衰减烟雾轨迹，生命耗尽的轨迹在本帧移除
type TrailSystem struct {
	cfg *config.TrailConfig
}

// NewTrailSystem 创建轨迹系统
func NewTrailSystem(cfg *config.TrailConfig) *TrailSystem {
	return &TrailSystem{cfg: cfg}
}

// Update 衰减所有轨迹并压缩集合
func (s *TrailSystem) Update(gs *game.GameState) {
	for i := range gs.Trails {
		gs.Trails[i].Life -= s.cfg.Decay
	}
	gs.Trails = ecs.Compact(gs.Trails, func(t *components.SmokeTrailComponent) bool {
		return t.Life > 0
	})
}
