package scenes

import "github.com/gonewx/skyrocket/pkg/render"

// Scene 宿主层驱动的场景接口
//
// 所有方法都在同一个逻辑线程上调用：ebiten 的游戏循环，或终端宿主的 select 循环。
type Scene interface {
	// Update 推进一帧模拟
	Update()
	// Draw 把当前状态绘制到画布
	Draw(canvas render.Canvas)
	// OnResize 画布尺寸变化时同步调用
	OnResize(width, height float64)
}
