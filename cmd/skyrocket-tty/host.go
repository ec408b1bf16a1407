package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
	"github.com/gonewx/skyrocket/pkg/scenes"
)

// terminalHost 终端宿主：把 tcell 事件转成游戏输入，并按固定频率驱动 OnTick
//
// 帧循环只在 PLAYING 时运行；游戏结束后停止计时器，
// 下一次开局时重新启动，期间仍然响应重绘和输入。
type terminalHost struct {
	screen tcell.Screen
	scene  *scenes.GameScene
	canvas *CellCanvas

	frameInterval time.Duration
	ticker        *time.Ticker
	lastButtons   tcell.ButtonMask
}

func newTerminalHost(screen tcell.Screen, scene *scenes.GameScene, fps int) *terminalHost {
	if fps <= 0 {
		fps = 60
	}
	h := &terminalHost{
		screen:        screen,
		scene:         scene,
		canvas:        NewCellCanvas(0, 0, 1),
		frameInterval: time.Second / time.Duration(fps),
	}
	h.resize(screen.Size())
	return h
}

// resize 按终端尺寸重建画布，逻辑高度保持在桌面端的窗口高度附近
func (h *terminalHost) resize(cols, rows int) {
	scale := 1.0
	if rows > 0 {
		scale = float64(config.GameWindowHeight) / float64(rows*2)
	}
	h.canvas = NewCellCanvas(cols, rows, scale)
	h.scene.OnResize(h.canvas.Size())
}

// toLogical 返回格子中心对应的逻辑坐标
func (h *terminalHost) toLogical(col, row int) (float64, float64) {
	s := h.canvas.scale
	return (float64(col) + 0.5) * s, (float64(row)*2 + 1) * s
}

// run 事件循环，ctx 取消或用户退出时返回
func (h *terminalHost) run(ctx context.Context) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	h.redraw()

	for {
		var tick <-chan time.Time
		if h.ticker != nil {
			tick = h.ticker.C
		}

		select {
		case <-ctx.Done():
			h.stopTicker()
			return

		case ev, ok := <-events:
			if !ok || !h.handleEvent(ev) {
				h.stopTicker()
				return
			}

		case <-tick:
			if !h.scene.OnTick(h.canvas) {
				h.stopTicker()
			}
			h.present()
		}
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (h *terminalHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' '):
			if h.scene.Mode() != game.ModePlaying {
				h.start()
			}
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
		h.lastButtons = buttons
		if pressed {
			col, row := ev.Position()
			h.pointerDown(col, row)
		}

	case *tcell.EventResize:
		h.resize(ev.Size())
		h.screen.Sync()
		h.redraw()
	}
	return true
}

// pointerDown 非 PLAYING 时点击开局，否则作为射击输入
func (h *terminalHost) pointerDown(col, row int) {
	if h.scene.Mode() != game.ModePlaying {
		h.start()
		return
	}
	x, y := h.toLogical(col, row)
	result := h.scene.HandlePointerDown(x, y)
	log.Printf("[TTY] Tap at cell (%d,%d) → (%.0f,%.0f): %s", col, row, x, y, result)
}

func (h *terminalHost) start() {
	h.scene.StartGame()
	if h.ticker == nil {
		h.ticker = time.NewTicker(h.frameInterval)
	}
	h.redraw()
}

func (h *terminalHost) stopTicker() {
	if h.ticker == nil {
		return
	}
	h.ticker.Stop()
	h.ticker = nil
}

// redraw 不推进模拟，只重画当前状态（开始界面、结束界面、尺寸变化）
func (h *terminalHost) redraw() {
	h.scene.Draw(h.canvas)
	h.present()
}

func (h *terminalHost) present() {
	h.canvas.Flush(h.screen)
	h.screen.Show()
}
