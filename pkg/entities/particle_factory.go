package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/skyrocket/pkg/components"
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/ecs"
	"github.com/gonewx/skyrocket/pkg/utils"
)

// 爆发效果颜色
var (
	// MuzzleFlashColor 发射口火光
	MuzzleFlashColor = color.RGBA{R: 255, G: 210, B: 90, A: 255}
	// ShieldBreakColor 护盾碎片
	ShieldBreakColor = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	// ExplosionColor 敌人爆炸
	ExplosionColor = color.RGBA{R: 255, G: 100, B: 60, A: 255}
)

// SpawnBurst 在指定位置生成一簇粒子并追加到 dst
//
// 每个粒子的方向在 [0, 2π) 均匀分布，速度在 [MinSpeed, MaxSpeed) 均匀分布，
// 尺寸在 [MinSize, MaxSize) 均匀分布，生命为 1.0。
//
// 参数:
//   - dst: 粒子集合
//   - ids: 实体ID分配器
//   - rng: 随机数源
//   - cfg: 粒子配置
//   - origin: 爆发中心
//   - clr: 粒子颜色（同一簇粒子共用）
//   - count: 粒子数量，<= 0 时不生成
//
// 返回:
//   - []components.ParticleComponent: 追加后的粒子集合
func SpawnBurst(
	dst []components.ParticleComponent,
	ids *ecs.IDAllocator,
	rng *rand.Rand,
	cfg *config.ParticleConfig,
	origin components.Vec2,
	clr color.RGBA,
	count int,
) []components.ParticleComponent {
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := utils.RandRange(rng, cfg.MinSpeed, cfg.MaxSpeed)

		dst = append(dst, components.ParticleComponent{
			ID:      ids.Next(),
			Pos:     origin,
			Vel:     components.FromAngle(angle, speed),
			Color:   clr,
			Life:    1.0,
			MaxLife: 1.0,
			Size:    utils.RandRange(rng, cfg.MinSize, cfg.MaxSize),
		})
	}
	return dst
}
