package entities

import (
	"math/rand"
	"testing"

	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/ecs"
)

// TestBuildTrail 测试烟雾尾迹创建
func TestBuildTrail(t *testing.T) {
	cfg := &config.DefaultTuning().Shot
	ids := ecs.NewIDAllocator()
	rng := rand.New(rand.NewSource(3))

	tests := []struct {
		name      string
		startY    float64
		endY      float64
		wantPuffs int
	}{
		{name: "命中中段", startY: 680, endY: 200, wantPuffs: 81},
		{name: "未命中飞到顶部", startY: 680, endY: 0, wantPuffs: 114},
		{name: "零距离", startY: 680, endY: 680, wantPuffs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trail := BuildTrail(ids, rng, cfg, 120, tt.startY, tt.endY)

			if trail.ID == ecs.InvalidEntityID {
				t.Fatal("Expected valid trail ID")
			}
			if trail.Life != 1 {
				t.Errorf("Expected life 1, got %v", trail.Life)
			}
			if trail.X != 120 || trail.StartY != tt.startY || trail.EndY != tt.endY {
				t.Errorf("Trail geometry mismatch: %+v", trail)
			}
			if len(trail.Puffs) != tt.wantPuffs {
				t.Fatalf("Expected %d puffs, got %d", tt.wantPuffs, len(trail.Puffs))
			}

			for i, puff := range trail.Puffs {
				if puff.OffsetY != float64(i)*cfg.PuffSpacing {
					t.Errorf("Puff %d: expected offset %v, got %v", i, float64(i)*cfg.PuffSpacing, puff.OffsetY)
				}
				if puff.OffsetY > trail.Span() {
					t.Errorf("Puff %d lies beyond the launch point", i)
				}
				if puff.JitterX < -cfg.PuffJitter || puff.JitterX >= cfg.PuffJitter {
					t.Errorf("Puff %d jitter %v out of range", i, puff.JitterX)
				}
				if puff.Radius < cfg.PuffMinRadius || puff.Radius >= cfg.PuffMaxRadius {
					t.Errorf("Puff %d radius %v out of range", i, puff.Radius)
				}
			}
		})
	}
}
