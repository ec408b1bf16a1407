package components

import "github.com/gonewx/skyrocket/pkg/ecs"

// EnemyComponent 下落的敌人
//
// 纯数据记录，所有行为由系统处理。
// 不变量：0 <= HP <= MaxHP；Active=false 之后不会再被激活，帧末被移除。
type EnemyComponent struct {
	ID     ecs.EntityID
	Pos    Vec2    // 圆心位置
	Vel    Vec2    // 仅使用 Y 分量（下落速度）
	Radius float64 // 本体半径
	HP     int     // 当前生命值，HP>1 时带护盾
	MaxHP  int
	Active bool
	Phase  float64 // 护盾脉动相位偏移，仅用于渲染
}

// Bottom 返回敌人下边缘的Y坐标
func (e *EnemyComponent) Bottom() float64 {
	return e.Pos.Y + e.Radius
}

// Top 返回敌人上边缘的Y坐标
func (e *EnemyComponent) Top() float64 {
	return e.Pos.Y - e.Radius
}

// HasShield 是否仍有护盾
func (e *EnemyComponent) HasShield() bool {
	return e.HP > 1
}
