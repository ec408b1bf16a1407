package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/skyrocket/pkg/render"
)

// halfBlock 上半块字符：前景色为上半像素，背景色为下半像素
const halfBlock = '▀'

// CellCanvas 终端半块字符画布
//
// 每个终端格子纵向拆成两个子像素，每个子像素对应 scale×scale 个逻辑像素。
// 逻辑尺寸为 (cols*scale, rows*2*scale)，游戏按逻辑坐标绘制，
// Flush 时把子像素颜色写入 tcell 屏幕。
type CellCanvas struct {
	cols   int
	rows   int
	scale  float64
	pixels []color.RGBA  // [y*cols + x]，y 为子像素行
	labels map[int]label // 格子索引 -> 文字，覆盖在像素之上
}

type label struct {
	ch  rune
	clr color.RGBA
}

var (
	_ render.Canvas       = (*CellCanvas)(nil)
	_ render.TextMeasurer = (*CellCanvas)(nil)
)

// NewCellCanvas 创建指定终端尺寸的画布
func NewCellCanvas(cols, rows int, scale float64) *CellCanvas {
	c := &CellCanvas{scale: scale}
	c.Resize(cols, rows)
	return c
}

// Resize 按新的终端尺寸重新分配缓冲区
func (c *CellCanvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == c.cols && rows == c.rows && c.pixels != nil {
		return
	}
	c.cols = cols
	c.rows = rows
	c.pixels = make([]color.RGBA, cols*rows*2)
	c.labels = make(map[int]label)
}

// Size 返回逻辑尺寸
func (c *CellCanvas) Size() (float64, float64) {
	return float64(c.cols) * c.scale, float64(c.rows*2) * c.scale
}

func (c *CellCanvas) Fill(clr color.Color) {
	rgba := toRGBA(clr)
	for i := range c.pixels {
		c.pixels[i] = rgba
	}
	clear(c.labels)
}

func (c *CellCanvas) FillRect(x, y, width, height float64, clr color.Color) {
	x0, x1 := c.span(x, x+width)
	y0, y1 := c.span(y, y+height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, clr)
		}
	}
}

func (c *CellCanvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	hit := false
	c.eachPixelNear(cx, cy, radius, func(px, py int, d float64) {
		if d <= radius {
			c.blend(px, py, clr)
			hit = true
		}
	})
	// 小于一个子像素的圆至少点亮圆心所在像素
	if !hit {
		c.blend(int(math.Floor(cx/c.scale)), int(math.Floor(cy/c.scale)), clr)
	}
}

func (c *CellCanvas) StrokeCircle(cx, cy, radius, strokeWidth float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	half := math.Max(strokeWidth, c.scale) / 2
	c.eachPixelNear(cx, cy, radius+half, func(px, py int, d float64) {
		if math.Abs(d-radius) <= half {
			c.blend(px, py, clr)
		}
	})
}

// DrawText 从 (x, y) 所在格子开始逐字写入，超出画布的字符被丢弃
func (c *CellCanvas) DrawText(str string, x, y float64, clr color.Color) {
	row := int(math.Floor(y / (2 * c.scale)))
	if row < 0 || row >= c.rows {
		return
	}
	col := int(math.Floor(x / c.scale))
	rgba := toRGBA(clr)
	for _, ch := range str {
		if col >= 0 && col < c.cols {
			c.labels[row*c.cols+col] = label{ch: ch, clr: rgba}
		}
		col++
	}
}

// MeasureText 每个字符占一个格子
func (c *CellCanvas) MeasureText(str string) (float64, float64) {
	return float64(len([]rune(str))) * c.scale, 2 * c.scale
}

// PixelAt 返回子像素颜色，越界返回零值
func (c *CellCanvas) PixelAt(px, py int) color.RGBA {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return color.RGBA{}
	}
	return c.pixels[py*c.cols+px]
}

// Flush 把缓冲区写入屏幕，调用方负责 Show
func (c *CellCanvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pixels[(row*2)*c.cols+col]
			bottom := c.pixels[(row*2+1)*c.cols+col]

			if l, ok := c.labels[row*c.cols+col]; ok {
				bg := render.LerpColor(top, bottom, 0.5)
				style := tcell.StyleDefault.Foreground(tcellColor(l.clr)).Background(tcellColor(bg))
				screen.SetContent(col, row, l.ch, nil, style)
				continue
			}

			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

// span 把逻辑区间 [from, to) 转为子像素下标区间，按像素中心判定
func (c *CellCanvas) span(from, to float64) (int, int) {
	lo := int(math.Ceil(from/c.scale - 0.5))
	hi := int(math.Ceil(to/c.scale - 0.5))
	return lo, hi
}

// eachPixelNear 遍历圆心附近的子像素，d 为像素中心到圆心的逻辑距离
func (c *CellCanvas) eachPixelNear(cx, cy, reach float64, fn func(px, py int, d float64)) {
	x0, x1 := c.span(cx-reach, cx+reach)
	y0, y1 := c.span(cy-reach, cy+reach)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			mx := (float64(px) + 0.5) * c.scale
			my := (float64(py) + 0.5) * c.scale
			fn(px, py, math.Hypot(mx-cx, my-cy))
		}
	}
}

// blend 按源颜色的不透明度混合到目标像素
func (c *CellCanvas) blend(px, py int, clr color.Color) {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return
	}
	src := color.NRGBAModel.Convert(clr).(color.NRGBA)
	if src.A == 0 {
		return
	}
	i := py*c.cols + px
	dst := c.pixels[i]
	a := float64(src.A) / 255
	c.pixels[i] = color.RGBA{
		R: uint8(float64(dst.R)*(1-a) + float64(src.R)*a + 0.5),
		G: uint8(float64(dst.G)*(1-a) + float64(src.G)*a + 0.5),
		B: uint8(float64(dst.B)*(1-a) + float64(src.B)*a + 0.5),
		A: 255,
	}
}

func toRGBA(clr color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}

func tcellColor(clr color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B))
}
