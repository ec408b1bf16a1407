// Package render 定义渲染目标的抽象
//
// 渲染系统只依赖 Canvas 接口，不直接依赖任何图形库：
// 桌面/移动端由 ebiten 实现，终端由半块字符画布实现，测试使用 RecordingCanvas。
package render

import (
	"image/color"

	"github.com/gonewx/skyrocket/pkg/utils"
)

// Canvas 栅格绘图表面
// 坐标为画布像素，原点在左上角，Y轴向下
type Canvas interface {
	// Size 返回画布尺寸
	Size() (width, height float64)
	// Fill 用纯色填充整个画布
	Fill(clr color.Color)
	// FillRect 填充矩形
	FillRect(x, y, width, height float64, clr color.Color)
	// FillCircle 填充圆
	FillCircle(cx, cy, radius float64, clr color.Color)
	// StrokeCircle 描边圆
	StrokeCircle(cx, cy, radius, strokeWidth float64, clr color.Color)
	// DrawText 绘制单行文字，(x, y) 为文字左上角
	DrawText(str string, x, y float64, clr color.Color)
}

// TextMeasurer 可选接口，画布可以报告文字宽度以便居中
type TextMeasurer interface {
	MeasureText(str string) (width, height float64)
}

// MeasureText 返回文字尺寸
// 画布未实现 TextMeasurer 时按 7x13 等宽字体估算
func MeasureText(c Canvas, str string) (float64, float64) {
	if m, ok := c.(TextMeasurer); ok {
		return m.MeasureText(str)
	}
	return float64(len([]rune(str))) * 7, 13
}

// WithAlpha 返回指定不透明度的非预乘颜色
//
// 参数:
//   - clr: 基础颜色（忽略其 A 通道）
//   - alpha: 不透明度，会被限制在 [0, 1]
func WithAlpha(clr color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: clr.R,
		G: clr.G,
		B: clr.B,
		A: uint8(utils.Clamp01(alpha)*255 + 0.5),
	}
}

// LerpColor 在两个颜色之间线性插值
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: utils.LerpUint8(a.R, b.R, t),
		G: utils.LerpUint8(a.G, b.G, t),
		B: utils.LerpUint8(a.B, b.B, t),
		A: utils.LerpUint8(a.A, b.A, t),
	}
}
