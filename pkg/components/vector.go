package components

import "math"

// Vec2 二维向量，用于位置和速度（画布像素坐标，Y轴向下）
type Vec2 struct {
	X, Y float64
}

// Add 返回两个向量之和
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale 返回按系数缩放后的向量
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// FromAngle 根据角度（弧度）和长度构造向量
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}
