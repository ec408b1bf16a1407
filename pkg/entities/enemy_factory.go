package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/skyrocket/pkg/components"
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/ecs"
	"github.com/gonewx/skyrocket/pkg/utils"
)

// NewEnemy 创建一个从画布上边界之上出生的敌人
// X 坐标在 [radius, width-radius] 内均匀采样，保证整个圆盘落在画布宽度内
//
// 参数:
//   - ids: 实体ID分配器
//   - rng: 随机数源
//   - tuning: 调参配置
//   - width: 画布宽度
//   - difficulty: 当前难度倍率，下落速度 = baseSpeed × difficulty
//
// 返回:
//   - components.EnemyComponent: 新建的敌人（HP = MaxHP，Active = true）
func NewEnemy(ids *ecs.IDAllocator, rng *rand.Rand, tuning *config.TuningConfig, width, difficulty float64) components.EnemyComponent {
	radius := tuning.Enemy.Radius

	var x float64
	if width <= 2*radius {
		// 画布过窄时居中
		x = width / 2
	} else {
		x = utils.RandRange(rng, radius, width-radius)
	}

	return components.EnemyComponent{
		ID:     ids.Next(),
		Pos:    components.Vec2{X: x, Y: tuning.Spawn.SpawnY},
		Vel:    components.Vec2{X: 0, Y: tuning.Enemy.BaseSpeed * difficulty},
		Radius: radius,
		HP:     tuning.Enemy.MaxHP,
		MaxHP:  tuning.Enemy.MaxHP,
		Active: true,
		Phase:  rng.Float64() * 2 * math.Pi,
	}
}
