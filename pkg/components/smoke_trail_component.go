package components

import "github.com/gonewx/skyrocket/pkg/ecs"

// SmokePuff 构成烟雾尾迹的单个烟团
// 创建后不可变；可见性和透明度在渲染时由尾迹寿命和偏移推导
type SmokePuff struct {
	OffsetY float64 // 相对 EndY 的纵向偏移（向下为正）
	JitterX float64 // 水平抖动
	Radius  float64 // 基础半径
}

// SmokeTrailComponent 火箭飞行留下的烟雾尾迹
//
// 从 StartY（地面发射点）延伸到 EndY（命中点，未命中时为画布顶部 0）。
// 只有 Life 随时间衰减，烟团本身没有独立的老化状态。
type SmokeTrailComponent struct {
	ID     ecs.EntityID
	X      float64 // 发射点X坐标
	StartY float64
	EndY   float64
	Life   float64 // 剩余生命 [0, 1]
	Puffs  []SmokePuff
}

// Span 返回尾迹的纵向长度
func (t *SmokeTrailComponent) Span() float64 {
	return t.StartY - t.EndY
}
