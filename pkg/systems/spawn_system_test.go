package systems

import (
	"math"
	"testing"
)

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want int
	}{
		{name: "initial rate", rate: 120, want: 120},
		{name: "fractional floors", rate: 119.9, want: 119},
		{name: "floor rate", rate: 30, want: 30},
		{name: "below one clamps", rate: 0.5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpawnInterval(tt.rate); got != tt.want {
				t.Errorf("SpawnInterval(%v) = %d, want %d", tt.rate, got, tt.want)
			}
		})
	}
}

func TestSpawnSystemSpawnsOnInterval(t *testing.T) {
	gs, tuning := newTestState(t)
	sys := NewSpawnSystem(tuning, newTestRand())

	// 第 0 帧是 120 的倍数
	sys.Update(gs)
	if len(gs.Enemies) != 1 {
		t.Fatalf("Expected 1 enemy at frame 0, got %d", len(gs.Enemies))
	}

	enemy := gs.Enemies[0]
	if enemy.Pos.Y != tuning.Spawn.SpawnY {
		t.Errorf("Expected spawn y %.1f, got %.1f", tuning.Spawn.SpawnY, enemy.Pos.Y)
	}
	if enemy.HP != 2 || enemy.MaxHP != 2 || !enemy.Active {
		t.Errorf("Unexpected spawned enemy %+v", enemy)
	}
	if gs.SpawnRate != 119 {
		t.Errorf("Expected spawn rate 119 after spawn, got %v", gs.SpawnRate)
	}
	if math.Abs(gs.Difficulty-1.05) > 1e-9 {
		t.Errorf("Expected difficulty 1.05 after spawn, got %v", gs.Difficulty)
	}

	// 非倍数帧不生成
	gs.FrameCount = 1
	sys.Update(gs)
	if len(gs.Enemies) != 1 {
		t.Errorf("Expected no spawn at frame 1, got %d enemies", len(gs.Enemies))
	}

	gs.FrameCount = 119
	sys.Update(gs)
	if len(gs.Enemies) != 2 {
		t.Errorf("Expected spawn at frame 119 with rate 119, got %d enemies", len(gs.Enemies))
	}
}

func TestSpawnSystemVelocityScalesWithDifficulty(t *testing.T) {
	gs, tuning := newTestState(t)
	sys := NewSpawnSystem(tuning, newTestRand())

	gs.Difficulty = 2
	sys.Update(gs)

	if got := gs.Enemies[0].Vel.Y; got != 3 {
		t.Errorf("Expected velocity 1.5*2 = 3, got %v", got)
	}
}

func TestSpawnSystemRampRespectsLimits(t *testing.T) {
	gs, tuning := newTestState(t)
	sys := NewSpawnSystem(tuning, newTestRand())

	gs.SpawnRate = 30.5
	gs.Difficulty = 2.48
	gs.FrameCount = 30
	sys.Update(gs)

	if gs.SpawnRate != 30 {
		t.Errorf("Spawn rate should clamp at floor 30, got %v", gs.SpawnRate)
	}
	if gs.Difficulty != 2.5 {
		t.Errorf("Difficulty should clamp at ceiling 2.5, got %v", gs.Difficulty)
	}

	gs.FrameCount = 60
	sys.Update(gs)
	if gs.SpawnRate != 30 || gs.Difficulty != 2.5 {
		t.Errorf("Limits should hold, got rate %v difficulty %v", gs.SpawnRate, gs.Difficulty)
	}
}

func TestSpawnSystemKeepsEnemiesOnSurface(t *testing.T) {
	gs, tuning := newTestState(t)
	sys := NewSpawnSystem(tuning, newTestRand())

	for i := 0; i < 200; i++ {
		gs.FrameCount = 0
		sys.Update(gs)
	}

	for _, e := range gs.Enemies {
		if e.Pos.X-e.Radius < 0 || e.Pos.X+e.Radius > testWidth {
			t.Fatalf("Enemy at x=%.2f with radius %.1f leaves the surface", e.Pos.X, e.Radius)
		}
	}
}
