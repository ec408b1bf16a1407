package scenes

import (
	"fmt"
	"image/color"

	"github.com/gonewx/skyrocket/pkg/game"
	"github.com/gonewx/skyrocket/pkg/render"
)

// 界面文字
const (
	TitleText    = "SKY ROCKET"
	StartHint    = "TAP ANYWHERE TO START"
	ShootHint    = "TAP THE LAUNCH ZONE TO FIRE"
	GameOverText = "GAME OVER"
	RetryHint    = "TAP ANYWHERE TO RETRY"
)

// UI Layout Constants
const (
	hudMargin       = 12.0
	overlayLineGap  = 24.0
	overlayAlpha    = 0.6
	overlayTitlePad = 40.0
)

var (
	hudTextColor  = color.RGBA{R: 235, G: 240, B: 255, A: 255}
	overlayColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	titleColor    = color.RGBA{R: 255, G: 210, B: 90, A: 255}
	gameOverColor = color.RGBA{R: 255, G: 100, B: 90, A: 255}
	hintTextColor = color.RGBA{R: 200, G: 210, B: 235, A: 255}
)

// drawUI 绘制分数栏和模式遮罩
func (s *GameScene) drawUI(canvas render.Canvas) {
	gs := s.gameState

	switch gs.Mode {
	case game.ModePlaying:
		s.drawHUD(canvas)
	case game.ModeStart:
		s.drawOverlay(canvas, TitleText, titleColor, []string{
			ShootHint,
			fmt.Sprintf("BEST %d", gs.HighScore),
			StartHint,
		})
	case game.ModeGameOver:
		s.drawOverlay(canvas, GameOverText, gameOverColor, []string{
			fmt.Sprintf("SCORE %d", gs.Score),
			fmt.Sprintf("BEST %d", gs.HighScore),
			RetryHint,
		})
	}
}

// drawHUD 左上角显示分数，右上角显示最高分
func (s *GameScene) drawHUD(canvas render.Canvas) {
	gs := s.gameState

	canvas.DrawText(fmt.Sprintf("SCORE %d", gs.DisplayScore), hudMargin, hudMargin, hudTextColor)

	best := fmt.Sprintf("BEST %d", gs.HighScore)
	w, _ := render.MeasureText(canvas, best)
	canvas.DrawText(best, gs.Width-w-hudMargin, hudMargin, hudTextColor)
}

// drawOverlay 半透明遮罩 + 居中标题和若干行提示
func (s *GameScene) drawOverlay(canvas render.Canvas, title string, titleClr color.RGBA, lines []string) {
	gs := s.gameState
	canvas.FillRect(0, 0, gs.Width, gs.Height, render.WithAlpha(overlayColor, overlayAlpha))

	centerY := gs.Height / 3
	drawCentered(canvas, title, gs.Width, centerY, titleClr)

	y := centerY + overlayTitlePad
	for _, line := range lines {
		drawCentered(canvas, line, gs.Width, y, hintTextColor)
		y += overlayLineGap
	}
}

func drawCentered(canvas render.Canvas, str string, width, y float64, clr color.Color) {
	w, _ := render.MeasureText(canvas, str)
	canvas.DrawText(str, (width-w)/2, y, clr)
}
