package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/skyrocket/pkg/render"
)

// EbitenCanvas 把 render.Canvas 调用转发到 ebiten.Image
//
// 图形使用 vector 包绘制，文字使用 basicfont 7x13 位图字体。
type EbitenCanvas struct {
	target *ebiten.Image
	face   text.Face
}

var (
	_ render.Canvas       = (*EbitenCanvas)(nil)
	_ render.TextMeasurer = (*EbitenCanvas)(nil)
)

// NewEbitenCanvas 创建画布，绘制前需调用 SetTarget
func NewEbitenCanvas() *EbitenCanvas {
	return &EbitenCanvas{face: text.NewGoXFace(basicfont.Face7x13)}
}

// SetTarget 设置本帧的绘制目标
func (c *EbitenCanvas) SetTarget(target *ebiten.Image) {
	c.target = target
}

func (c *EbitenCanvas) Size() (float64, float64) {
	if c.target == nil {
		return 0, 0
	}
	b := c.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *EbitenCanvas) Fill(clr color.Color) {
	if c.target == nil {
		return
	}
	c.target.Fill(clr)
}

func (c *EbitenCanvas) FillRect(x, y, width, height float64, clr color.Color) {
	if c.target == nil {
		return
	}
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (c *EbitenCanvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	if c.target == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(c.target, float32(cx), float32(cy), float32(radius), clr, true)
}

func (c *EbitenCanvas) StrokeCircle(cx, cy, radius, strokeWidth float64, clr color.Color) {
	if c.target == nil || radius <= 0 {
		return
	}
	vector.StrokeCircle(c.target, float32(cx), float32(cy), float32(radius), float32(strokeWidth), clr, true)
}

func (c *EbitenCanvas) DrawText(str string, x, y float64, clr color.Color) {
	if c.target == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.target, str, c.face, op)
}

// MeasureText 返回文字的像素宽高
func (c *EbitenCanvas) MeasureText(str string) (float64, float64) {
	return text.Measure(str, c.face, 0)
}
