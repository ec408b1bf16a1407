package render

import (
	"image/color"
	"testing"
)

func TestWithAlpha(t *testing.T) {
	base := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	tests := []struct {
		name  string
		alpha float64
		want  uint8
	}{
		{name: "opaque", alpha: 1, want: 255},
		{name: "transparent", alpha: 0, want: 0},
		{name: "half", alpha: 0.5, want: 128},
		{name: "clamped", alpha: 3, want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithAlpha(base, tt.alpha)
			if got.A != tt.want || got.R != 10 || got.G != 20 || got.B != 30 {
				t.Errorf("WithAlpha(%v) = %+v, want A=%d", tt.alpha, got, tt.want)
			}
		})
	}
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 100, G: 100, B: 0, A: 255}

	got := LerpColor(a, b, 0.5)
	want := color.RGBA{R: 50, G: 100, B: 100, A: 255}
	if got != want {
		t.Errorf("LerpColor = %+v, want %+v", got, want)
	}
}

func TestRecordingCanvas(t *testing.T) {
	c := NewRecordingCanvas(320, 240)
	c.Fill(color.Black)
	c.FillCircle(10, 20, 5, color.White)
	c.FillCircle(11, 21, 5, color.White)
	c.DrawText("hi", 0, 0, color.White)

	if w, h := c.Size(); w != 320 || h != 240 {
		t.Errorf("Size() = %v, %v", w, h)
	}
	if c.Count(OpFillCircle) != 2 || c.Count(OpText) != 1 || c.Count(OpFill) != 1 {
		t.Errorf("Unexpected op counts: %+v", c.Ops)
	}

	if w, h := MeasureText(c, "hello"); w != 35 || h != 13 {
		t.Errorf("MeasureText fallback = %v, %v", w, h)
	}

	c.Reset()
	if len(c.Ops) != 0 {
		t.Error("Reset should clear ops")
	}
}
