package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/skyrocket/pkg/components"
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/ecs"
	"github.com/gonewx/skyrocket/pkg/utils"
)

// BuildTrail 创建火箭的烟雾尾迹
//
// 烟团从 EndY 开始按固定间距向下排列到 StartY，
// 因此烟团数量与射程成正比。每个烟团的水平抖动和半径随机。
//
// 参数:
//   - ids: 实体ID分配器
//   - rng: 随机数源
//   - cfg: 射击配置（烟团间距、抖动、半径范围）
//   - x: 发射点X坐标
//   - startY: 发射点Y坐标（地面）
//   - endY: 终点Y坐标（命中点或画布顶部）
//
// 返回:
//   - components.SmokeTrailComponent: 生命为 1.0 的新尾迹
func BuildTrail(ids *ecs.IDAllocator, rng *rand.Rand, cfg *config.ShotConfig, x, startY, endY float64) components.SmokeTrailComponent {
	span := math.Max(0, startY-endY)
	count := int(span/cfg.PuffSpacing) + 1

	puffs := make([]components.SmokePuff, 0, count)
	for offset := 0.0; offset <= span; offset += cfg.PuffSpacing {
		puffs = append(puffs, components.SmokePuff{
			OffsetY: offset,
			JitterX: utils.RandRange(rng, -cfg.PuffJitter, cfg.PuffJitter),
			Radius:  utils.RandRange(rng, cfg.PuffMinRadius, cfg.PuffMaxRadius),
		})
	}

	return components.SmokeTrailComponent{
		ID:     ids.Next(),
		X:      x,
		StartY: startY,
		EndY:   endY,
		Life:   1.0,
		Puffs:  puffs,
	}
}
