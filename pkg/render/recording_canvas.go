package render

import "image/color"

// OpKind 绘图操作类型
type OpKind int

const (
	OpFill OpKind = iota
	OpFillRect
	OpFillCircle
	OpStrokeCircle
	OpText
)

// DrawOp 一次被记录的绘图调用
type DrawOp struct {
	Kind   OpKind
	X, Y   float64 // 矩形左上角 / 圆心 / 文字位置
	W, H   float64 // 矩形尺寸
	Radius float64
	Stroke float64
	Text   string
	Color  color.NRGBA
}

// RecordingCanvas 记录所有绘图调用的画布
// 用于无窗口环境（测试、无头验证工具）对渲染结果做快照比较
type RecordingCanvas struct {
	Width, Height float64
	Ops           []DrawOp
}

// NewRecordingCanvas 创建指定尺寸的记录画布
func NewRecordingCanvas(width, height float64) *RecordingCanvas {
	return &RecordingCanvas{Width: width, Height: height}
}

// Reset 清空已记录的操作
func (c *RecordingCanvas) Reset() {
	c.Ops = c.Ops[:0]
}

func (c *RecordingCanvas) Size() (float64, float64) {
	return c.Width, c.Height
}

func (c *RecordingCanvas) Fill(clr color.Color) {
	c.Ops = append(c.Ops, DrawOp{Kind: OpFill, Color: toNRGBA(clr)})
}

func (c *RecordingCanvas) FillRect(x, y, width, height float64, clr color.Color) {
	c.Ops = append(c.Ops, DrawOp{Kind: OpFillRect, X: x, Y: y, W: width, H: height, Color: toNRGBA(clr)})
}

func (c *RecordingCanvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	c.Ops = append(c.Ops, DrawOp{Kind: OpFillCircle, X: cx, Y: cy, Radius: radius, Color: toNRGBA(clr)})
}

func (c *RecordingCanvas) StrokeCircle(cx, cy, radius, strokeWidth float64, clr color.Color) {
	c.Ops = append(c.Ops, DrawOp{Kind: OpStrokeCircle, X: cx, Y: cy, Radius: radius, Stroke: strokeWidth, Color: toNRGBA(clr)})
}

func (c *RecordingCanvas) DrawText(str string, x, y float64, clr color.Color) {
	c.Ops = append(c.Ops, DrawOp{Kind: OpText, X: x, Y: y, Text: str, Color: toNRGBA(clr)})
}

// Count 返回指定类型操作的数量
func (c *RecordingCanvas) Count(kind OpKind) int {
	n := 0
	for _, op := range c.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func toNRGBA(clr color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}
