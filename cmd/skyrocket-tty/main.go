// skyrocket-tty 在终端中运行 Sky Rocket
//
// 使用 tcell 绘制半块字符画面，鼠标左键点击地面区域发射火箭，
// 空格/回车开局，q 或 Esc 退出。音效通过 beep 播放。
//
// 终端独占标准输出，详细日志写入 -log 指定的文件。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/scenes"
)

var (
	verbose    = flag.Bool("verbose", false, "把详细调试信息写入日志文件")
	logPath    = flag.String("log", "skyrocket-tty.log", "详细日志文件路径")
	configPath = flag.String("config", "", "调参文件路径（默认使用内置参数）")
	mute       = flag.Bool("mute", false, "关闭音效")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	fps        = flag.Int("fps", 60, "模拟帧率")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skyrocket-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLogging(*verbose, *logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, err := config.ResolveTuning(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load tuning config: %w", err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("[TTY] Random seed: %d", s)
	scene := scenes.NewGameScene(tuning, rand.New(rand.NewSource(s)))

	if !*mute {
		player, err := NewBeepPlayer()
		if err != nil {
			// 没有音频设备时继续静音运行
			log.Printf("[TTY] Audio initialization failed: %v", err)
		} else {
			defer player.Close()
			scene.SetSoundPlayer(player)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newTerminalHost(screen, scene, *fps).run(ctx)

	log.Printf("[TTY] Exit: score %d, high score %d", scene.Score(), scene.HighScore())
	return nil
}

// setupLogging 非 verbose 时丢弃日志，否则追加写入文件
func setupLogging(verbose bool, path string) (func(), error) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { _ = f.Close() }, nil
}
