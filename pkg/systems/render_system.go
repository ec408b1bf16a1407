package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/skyrocket/pkg/components"
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
	"github.com/gonewx/skyrocket/pkg/render"
	"github.com/gonewx/skyrocket/pkg/utils"
)

// 场景配色
var (
	BackgroundColor   = color.RGBA{R: 10, G: 12, B: 28, A: 255}
	StarColor         = color.RGBA{R: 220, G: 225, B: 255, A: 255}
	GroundTopColor    = color.RGBA{R: 58, G: 66, B: 92, A: 255}
	GroundBottomColor = color.RGBA{R: 22, G: 25, B: 40, A: 255}
	GroundEdgeColor   = color.RGBA{R: 120, G: 135, B: 180, A: 255}
	StripeColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LabelColor        = color.RGBA{R: 200, G: 210, B: 235, A: 255}
	ShieldColor       = color.RGBA{R: 110, G: 210, B: 255, A: 255}
	EnemyCoreColor    = color.RGBA{R: 220, G: 60, B: 80, A: 255}
	EnemyInnerColor   = color.RGBA{R: 255, G: 130, B: 140, A: 255}
	DamageMarkColor   = color.RGBA{R: 80, G: 18, B: 28, A: 255}
	SmokeFreshColor   = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	SmokeOldColor     = color.RGBA{R: 150, G: 150, B: 155, A: 255}
)

const (
	groundBandStep  = 4.0 // 地面渐变每条色带的高度
	stripeWidth     = 2.0
	stripeAlpha     = 0.06
	shieldStroke    = 2.0
	shieldFillAlpha = 0.12
	shieldRingAlpha = 0.75
	labelAlpha      = 0.45
)

// RenderSystem 把游戏状态绘制到画布上
//
// 渲染是对状态的纯读取，不修改任何集合或计数器。
// 绘制顺序固定，后绘制的覆盖先绘制的：
// 背景 → 星空 → 地面 → 标签 → 烟雾轨迹 → 敌人 → 粒子。
type RenderSystem struct {
	tuning *config.TuningConfig
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(tuning *config.TuningConfig) *RenderSystem {
	return &RenderSystem{tuning: tuning}
}

// Draw 绘制一帧，画布为空或尺寸无效时跳过
func (s *RenderSystem) Draw(gs *game.GameState, canvas render.Canvas) {
	if canvas == nil || !gs.HasSurface() {
		return
	}

	w, h := gs.Width, gs.Height
	groundY := gs.GroundY(s.tuning)

	s.drawBackground(canvas, w, h, gs.FrameCount)
	s.drawGround(canvas, w, h, groundY)
	s.drawTrails(canvas, gs.Trails)
	s.drawEnemies(canvas, gs.Enemies, gs.FrameCount)
	s.drawParticles(canvas, gs.Particles)
}

func (s *RenderSystem) drawBackground(canvas render.Canvas, w, h float64, frame int) {
	canvas.Fill(BackgroundColor)

	for i := 0; i < s.tuning.Render.StarCount; i++ {
		x, y := StarPosition(i, frame, w, h)
		size := 0.8 + float64(i%3)*0.5
		alpha := 0.3 + float64(i%5)*0.12
		canvas.FillCircle(x, y, size, render.WithAlpha(StarColor, alpha))
	}
}

func (s *RenderSystem) drawGround(canvas render.Canvas, w, h, groundY float64) {
	bandHeight := h - groundY
	if bandHeight <= 0 {
		return
	}

	// 渐变色带
	for y := groundY; y < h; y += groundBandStep {
		t := (y - groundY) / bandHeight
		canvas.FillRect(0, y, w, math.Min(groundBandStep, h-y), render.LerpColor(GroundTopColor, GroundBottomColor, t))
	}

	// 竖条纹理
	if spacing := s.tuning.Render.StripeSpacing; spacing > 0 {
		stripe := render.WithAlpha(StripeColor, stripeAlpha)
		for x := spacing / 2; x < w; x += spacing {
			canvas.FillRect(x, groundY, stripeWidth, bandHeight, stripe)
		}
	}

	canvas.FillRect(0, groundY, w, 2, GroundEdgeColor)

	label := config.GroundZoneLabel
	tw, th := render.MeasureText(canvas, label)
	canvas.DrawText(label, (w-tw)/2, groundY+(bandHeight-th)/2, render.WithAlpha(LabelColor, labelAlpha))
}

func (s *RenderSystem) drawTrails(canvas render.Canvas, trails []components.SmokeTrailComponent) {
	cfg := &s.tuning.Trail
	for i := range trails {
		trail := &trails[i]
		if trail.Life <= 0 {
			continue
		}

		radiusGrowth := TrailPuffGrowth(trail, cfg)
		smoke := render.LerpColor(SmokeOldColor, SmokeFreshColor, trail.Life)

		for _, puff := range trail.Puffs {
			alpha := TrailPuffAlpha(trail, puff, cfg)
			if alpha <= 0 {
				continue
			}
			canvas.FillCircle(
				trail.X+puff.JitterX,
				trail.EndY+puff.OffsetY,
				puff.Radius+radiusGrowth,
				render.WithAlpha(smoke, alpha),
			)
		}
	}
}

func (s *RenderSystem) drawEnemies(canvas render.Canvas, enemies []components.EnemyComponent, frame int) {
	rc := &s.tuning.Render
	for i := range enemies {
		enemy := &enemies[i]
		if !enemy.Active {
			continue
		}
		x, y, r := enemy.Pos.X, enemy.Pos.Y, enemy.Radius

		if enemy.HasShield() {
			ring := ShieldRadius(enemy, frame, rc)
			canvas.FillCircle(x, y, ring, render.WithAlpha(ShieldColor, shieldFillAlpha))
			canvas.StrokeCircle(x, y, ring, shieldStroke, render.WithAlpha(ShieldColor, shieldRingAlpha))
		}

		canvas.FillCircle(x, y, r, EnemyCoreColor)
		canvas.FillCircle(x-r*0.2, y-r*0.2, r*0.5, EnemyInnerColor)

		// 护盾已破的裂痕标记
		if enemy.HP == 1 {
			canvas.FillCircle(x+r*0.35, y+r*0.3, r*0.25, DamageMarkColor)
		}
	}
}

func (s *RenderSystem) drawParticles(canvas render.Canvas, particles []components.ParticleComponent) {
	for i := range particles {
		p := &particles[i]
		if !p.Alive() {
			continue
		}
		canvas.FillCircle(p.Pos.X, p.Pos.Y, p.Size, render.WithAlpha(p.Color, p.Life/p.MaxLife))
	}
}

// StarPosition 计算第 i 颗星在给定帧的位置
//
// 星空不存储任何状态：基准位置由索引哈希得到，纵向按帧匀速漂移并在画布内循环。
func StarPosition(i, frame int, width, height float64) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	fi := float64(i)
	x := fract(math.Sin(fi*12.9898)*43758.5453) * width
	baseY := fract(math.Sin(fi*78.233)*43758.5453) * height
	speed := 0.2 + float64(i%3)*0.15
	y := math.Mod(baseY+float64(frame)*speed, height)
	return x, y
}

// ShieldRadius 护盾光环半径，随帧数正弦脉动
func ShieldRadius(enemy *components.EnemyComponent, frame int, rc *config.RenderConfig) float64 {
	pulse := math.Sin(float64(frame)*rc.PulseSpeed+enemy.Phase) * rc.PulseAmount
	return enemy.Radius + rc.ShieldPadding + pulse
}

// TrailPuffGrowth 轨迹随年龄扩散的额外半径，life→0 时接近 MaxGrowth
func TrailPuffGrowth(trail *components.SmokeTrailComponent, cfg *config.TrailConfig) float64 {
	return utils.EaseOutQuad(utils.Clamp01(1-trail.Life)) * cfg.MaxGrowth
}

// TrailPuffAlpha 计算单个烟团的不透明度
//
// 截止线相对 EndY 的偏移为 span*life，随着 life 减小从发射点向命中点上移。
// 偏移不超过截止线的烟团完全可见，超出 FadeBand 以内线性淡出，再远的不绘制。
// 结果再乘以轨迹整体的 life，并以 MaxOpacity 为上限。
func TrailPuffAlpha(trail *components.SmokeTrailComponent, puff components.SmokePuff, cfg *config.TrailConfig) float64 {
	life := utils.Clamp01(trail.Life)
	if life <= 0 {
		return 0
	}

	cutoff := trail.Span() * life
	fade := 1.0
	if past := puff.OffsetY - cutoff; past > 0 {
		if cfg.FadeBand <= 0 || past >= cfg.FadeBand {
			return 0
		}
		fade = 1 - past/cfg.FadeBand
	}
	return fade * life * cfg.MaxOpacity
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}
