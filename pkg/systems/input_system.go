package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/skyrocket/pkg/components"
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/entities"
	"github.com/gonewx/skyrocket/pkg/game"
)

// ShotResult 一次点击的判定结果，宿主层据此播放音效
type ShotResult int

const (
	// ShotIgnored 非游戏中或点击不在地面区域，未发射
	ShotIgnored ShotResult = iota
	// ShotMiss 发射了火箭但没有命中
	ShotMiss
	// ShotShieldHit 命中但敌人仍有多层护盾（MaxHP > 2 时才会出现）
	ShotShieldHit
	// ShotShieldBroken 护盾被击破，敌人剩 1 点生命
	ShotShieldBroken
	// ShotDestroyed 敌人被摧毁
	ShotDestroyed
)

// String 返回结果名称
func (r ShotResult) String() string {
	switch r {
	case ShotIgnored:
		return "ignored"
	case ShotMiss:
		return "miss"
	case ShotShieldHit:
		return "shield_hit"
	case ShotShieldBroken:
		return "shield_broken"
	case ShotDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Fired 是否真正发射了火箭
func (r ShotResult) Fired() bool {
	return r != ShotIgnored
}

// InputSystem 把一次指针按下解析为一次射击
//
// 火箭从点击的X坐标沿竖直方向发射，光束宽度为敌人半径加容差。
// 只有输入系统可以修改敌人的 HP 和 Active 标记。
type InputSystem struct {
	tuning *config.TuningConfig
	rng    *rand.Rand
}

// NewInputSystem 创建输入系统
func NewInputSystem(tuning *config.TuningConfig, rng *rand.Rand) *InputSystem {
	return &InputSystem{
		tuning: tuning,
		rng:    rng,
	}
}

// HandlePointerDown 处理一次点击
//
// 参数:
//   - gs: 游戏状态
//   - x, y: 点击坐标（画布像素）
//
// 返回:
//   - ShotResult: 判定结果，不在 PLAYING 或不在地面区域时返回 ShotIgnored
func (s *InputSystem) HandlePointerDown(gs *game.GameState, x, y float64) ShotResult {
	if !gs.IsPlaying() || !gs.HasSurface() {
		return ShotIgnored
	}

	groundY := gs.GroundY(s.tuning)
	if y < groundY {
		return ShotIgnored
	}

	shot := &s.tuning.Shot
	result := ShotMiss
	endY := 0.0

	if target := s.findTarget(gs, x); target != nil {
		endY = target.Top()
		result = s.applyHit(gs, target)
	}

	gs.Trails = append(gs.Trails, entities.BuildTrail(&gs.IDs, s.rng, shot, x, groundY, endY))

	// 发射口火花，命中与否都会产生
	gs.Particles = entities.SpawnBurst(gs.Particles, &gs.IDs, s.rng, &s.tuning.Particle,
		components.Vec2{X: x, Y: groundY}, entities.MuzzleFlashColor, shot.MuzzleFlashCount)

	return result
}

// findTarget 在光束范围内选出最靠近地面的敌人
func (s *InputSystem) findTarget(gs *game.GameState, x float64) *components.EnemyComponent {
	var target *components.EnemyComponent
	for i := range gs.Enemies {
		enemy := &gs.Enemies[i]
		if !enemy.Active {
			continue
		}
		if math.Abs(enemy.Pos.X-x) >= enemy.Radius+s.tuning.Shot.HitTolerance {
			continue
		}
		if target == nil || enemy.Pos.Y > target.Pos.Y {
			target = enemy
		}
	}
	return target
}

// applyHit 扣除生命并结算奖励，每次射击最多触发一种奖励
func (s *InputSystem) applyHit(gs *game.GameState, target *components.EnemyComponent) ShotResult {
	shot := &s.tuning.Shot
	target.HP--

	switch {
	case target.HP <= 0:
		target.HP = 0
		target.Active = false
		gs.Particles = entities.SpawnBurst(gs.Particles, &gs.IDs, s.rng, &s.tuning.Particle,
			target.Pos, entities.ExplosionColor, shot.DestroyBurstCount)
		gs.AddScore(shot.DestroyBonus)
		return ShotDestroyed

	case target.HP == 1:
		gs.Particles = entities.SpawnBurst(gs.Particles, &gs.IDs, s.rng, &s.tuning.Particle,
			target.Pos, entities.ShieldBreakColor, shot.ShieldBurstCount)
		gs.AddScore(shot.ShieldBonus)
		return ShotShieldBroken

	default:
		gs.Particles = entities.SpawnBurst(gs.Particles, &gs.IDs, s.rng, &s.tuning.Particle,
			target.Pos, entities.ShieldBreakColor, shot.ShieldBurstCount)
		return ShotShieldHit
	}
}
