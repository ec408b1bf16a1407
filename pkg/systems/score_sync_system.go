package systems

import (
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
)

// ScoreSyncSystem 以固定帧间隔把权威分数同步到显示分数
type ScoreSyncSystem struct {
	cfg *config.ScoreConfig
}

// NewScoreSyncSystem 创建分数同步系统
func NewScoreSyncSystem(cfg *config.ScoreConfig) *ScoreSyncSystem {
	return &ScoreSyncSystem{cfg: cfg}
}

// Update 每 SyncInterval 帧同步一次
func (s *ScoreSyncSystem) Update(gs *game.GameState) {
	interval := s.cfg.SyncInterval
	if interval < 1 {
		interval = 1
	}
	if gs.FrameCount%interval == 0 {
		gs.DisplayScore = gs.Score
	}
}
