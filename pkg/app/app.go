// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
	"github.com/gonewx/skyrocket/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Mute 关闭音效
	Mute bool
	// Seed 随机种子，为 0 时使用当前时间
	Seed int64
	// ConfigPath 调参文件路径，为空则使用嵌入的 data/tuning.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene        *scenes.GameScene
	canvas       *EbitenCanvas
	audioManager *AudioManager // 静音时为 nil

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 桌面端应先调用 embedded.Init()；未初始化时使用内置默认参数。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := config.ResolveTuning(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tuning config: %w", err)
	}
	log.Printf("[Config] Tuning loaded (spawn rate %.0f → %.0f, difficulty %.2f → %.2f)",
		tuning.Spawn.InitialRate, tuning.Spawn.MinRate, tuning.Spawn.InitialDifficulty, tuning.Spawn.MaxDifficulty)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	scene := scenes.NewGameScene(tuning, rng)
	scene.OnResize(config.GameWindowWidth, config.GameWindowHeight)

	a := &App{
		scene:   scene,
		canvas:  NewEbitenCanvas(),
		verbose: cfg.Verbose,
	}

	if !cfg.Mute {
		// 初始化 AudioManager，音效在首次播放时合成
		a.audioManager = NewAudioManager(audio.NewContext(SampleRate), rand.New(rand.NewSource(seed)))
		a.audioManager.PreloadSounds(game.AllSounds)
		scene.SetSoundPlayer(a.audioManager)
		log.Printf("[App] AudioManager initialized")
	}

	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.updateWindow()

	if pressed, x, y := IsJustTouchedOrClicked(); pressed {
		a.handlePointer(float64(x), float64(y))
	}

	// 键盘也可以开始/重开
	if !a.isPlaying() && IsStartKeyJustPressed() {
		a.scene.StartGame()
	}

	a.scene.Update()
	return nil
}

// handlePointer 非游戏中任意点击都视为开始，游戏中交给输入系统
func (a *App) handlePointer(x, y float64) {
	if !a.isPlaying() {
		a.scene.StartGame()
		return
	}
	a.scene.HandlePointerDown(x, y)
}

func (a *App) isPlaying() bool {
	return a.scene.Mode() == game.ModePlaying
}

// updateWindow F11 切换全屏
func (a *App) updateWindow() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.SetTarget(screen)
	a.scene.Draw(a.canvas)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.scene.OnResize(config.GameWindowWidth, config.GameWindowHeight)
	return config.GameWindowWidth, config.GameWindowHeight
}

// Scene 返回游戏控制器
func (a *App) Scene() *scenes.GameScene {
	return a.scene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
