package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/skyrocket/pkg/app"
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "调参文件路径（默认使用内置 data/tuning.yaml）")
	mute       = flag.Bool("mute", false, "关闭音效")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	width      = flag.Int("width", config.GameWindowWidth, "窗口宽度")
	height     = flag.Int("height", config.GameWindowHeight, "窗口高度")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Mute:       *mute,
		Seed:       *seed,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// Set window properties
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Sky Rocket")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
