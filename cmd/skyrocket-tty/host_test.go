package main

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
	"github.com/gonewx/skyrocket/pkg/scenes"
)

func newTestHost(t *testing.T) *terminalHost {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	scene := scenes.NewGameScene(config.DefaultTuning(), rand.New(rand.NewSource(7)))
	h := newTerminalHost(screen, scene, 60)
	t.Cleanup(h.stopTicker)
	return h
}

func TestTerminalHostLogicalSize(t *testing.T) {
	h := newTestHost(t)

	// 20 行 → 40 子像素行，缩放到 800 逻辑像素
	if w, hgt := h.canvas.Size(); w != 800 || hgt != 800 {
		t.Fatalf("Canvas size = %v x %v, want 800 x 800", w, hgt)
	}
	if got := h.scene.GroundY(); got != 680 {
		t.Errorf("GroundY = %v, want 680", got)
	}
	if x, y := h.toLogical(0, 19); x != 10 || y != 780 {
		t.Errorf("toLogical(0,19) = %v, %v, want 10, 780", x, y)
	}
}

func TestTerminalHostClickStartsAndShoots(t *testing.T) {
	h := newTestHost(t)

	press := tcell.NewEventMouse(5, 18, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(5, 18, tcell.ButtonNone, tcell.ModNone)

	h.handleEvent(press)
	if h.scene.Mode() != game.ModePlaying {
		t.Fatalf("Mode after first click = %v, want PLAYING", h.scene.Mode())
	}
	if h.ticker == nil {
		t.Fatal("Ticker should run while playing")
	}

	h.handleEvent(release)
	h.handleEvent(press)
	if _, _, trails := h.scene.EntityCounts(); trails != 1 {
		t.Fatalf("Trails after one shot = %d, want 1", trails)
	}

	// 按住不放的拖动事件不会重复发射
	h.handleEvent(tcell.NewEventMouse(6, 18, tcell.Button1, tcell.ModNone))
	if _, _, trails := h.scene.EntityCounts(); trails != 1 {
		t.Errorf("Held button fired again: trails = %d", trails)
	}

	// 天空区域的点击被忽略
	h.handleEvent(release)
	h.handleEvent(tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone))
	if _, _, trails := h.scene.EntityCounts(); trails != 1 {
		t.Errorf("Sky tap should be ignored: trails = %d", trails)
	}
}

func TestTerminalHostKeys(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantRun  bool
		wantMode game.GameMode
	}{
		{name: "q quits", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), wantRun: false, wantMode: game.ModeStart},
		{name: "escape quits", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), wantRun: false, wantMode: game.ModeStart},
		{name: "space starts", ev: tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), wantRun: true, wantMode: game.ModePlaying},
		{name: "enter starts", ev: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), wantRun: true, wantMode: game.ModePlaying},
		{name: "other key ignored", ev: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), wantRun: true, wantMode: game.ModeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHost(t)
			if got := h.handleEvent(tt.ev); got != tt.wantRun {
				t.Errorf("handleEvent = %v, want %v", got, tt.wantRun)
			}
			if h.scene.Mode() != tt.wantMode {
				t.Errorf("Mode = %v, want %v", h.scene.Mode(), tt.wantMode)
			}
		})
	}
}

func TestTerminalHostResize(t *testing.T) {
	h := newTestHost(t)

	h.handleEvent(tcell.NewEventResize(60, 40))

	if w, hgt := h.canvas.Size(); w != 600 || hgt != 800 {
		t.Errorf("Canvas size after resize = %v x %v, want 600 x 800", w, hgt)
	}
}
