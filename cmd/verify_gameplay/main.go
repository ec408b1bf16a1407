// verify_gameplay 无窗口验证工具
//
// 用自动瞄准机器人连续打若干局，检查分数单调、实体数量有界、
// 触地后模式切换等运行时约束，并输出每局统计。
//
// 用法：
//
//	go run ./cmd/verify_gameplay -games 5 -reaction 12 -seed 42 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
	"github.com/gonewx/skyrocket/pkg/render"
	"github.com/gonewx/skyrocket/pkg/scenes"
	"github.com/gonewx/skyrocket/pkg/systems"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "调参文件路径（默认使用内置参数）")
	seed       = flag.Int64("seed", 42, "随机种子")
	games      = flag.Int("games", 3, "对局数")
	maxFrames  = flag.Int("frames", 20000, "单局最大帧数")
	reaction   = flag.Int("reaction", 10, "机器人两次射击之间的最小间隔（帧）")
	aimError   = flag.Float64("aim-error", 0, "瞄准误差上限（像素，均匀分布 ±）")
	maxEnemies = flag.Int("max-enemies", 200, "同屏敌人数量上限，超过视为异常")
)

// gameStats 一局统计
type gameStats struct {
	frames    int
	score     int
	shots     map[systems.ShotResult]int
	peakAlive int
	drawOps   int
	ended     bool
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	tuning, err := config.ResolveTuning(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify_gameplay: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	scene := scenes.NewGameScene(tuning, rng)
	scene.OnResize(config.GameWindowWidth, config.GameWindowHeight)
	canvas := render.NewRecordingCanvas(config.GameWindowWidth, config.GameWindowHeight)
	aimRng := rand.New(rand.NewSource(*seed + 1))

	failures := 0
	for i := 1; i <= *games; i++ {
		stats, err := playOne(scene, canvas, aimRng)
		if err != nil {
			failures++
			fmt.Printf("game %d: FAIL %v\n", i, err)
			continue
		}
		fmt.Printf("game %d: frames=%d score=%d best=%d peak_enemies=%d draw_ops=%d miss=%d shield=%d destroyed=%d ended=%v\n",
			i, stats.frames, stats.score, scene.HighScore(), stats.peakAlive, stats.drawOps,
			stats.shots[systems.ShotMiss],
			stats.shots[systems.ShotShieldHit]+stats.shots[systems.ShotShieldBroken],
			stats.shots[systems.ShotDestroyed],
			stats.ended)
	}

	if failures > 0 {
		fmt.Printf("%d/%d games failed\n", failures, *games)
		os.Exit(1)
	}
	fmt.Println("all games passed")
}

// playOne 开一局并运行到触地或帧数上限
func playOne(scene *scenes.GameScene, canvas *render.RecordingCanvas, aimRng *rand.Rand) (*gameStats, error) {
	scene.StartGame()
	if scene.Mode() != game.ModePlaying || scene.Score() != 0 || scene.FrameCount() != 0 {
		return nil, fmt.Errorf("StartGame did not reset the session")
	}

	stats := &gameStats{shots: make(map[systems.ShotResult]int)}
	groundY := scene.GroundY()
	cooldown := 0
	lastScore := 0

	for stats.frames < *maxFrames {
		canvas.Reset()
		playing := scene.OnTick(canvas)
		stats.frames++
		stats.drawOps += len(canvas.Ops)

		if scene.Score() < lastScore {
			return nil, fmt.Errorf("score decreased from %d to %d at frame %d", lastScore, scene.Score(), scene.FrameCount())
		}
		lastScore = scene.Score()

		enemies, _, _ := scene.EntityCounts()
		stats.peakAlive = max(stats.peakAlive, enemies)
		if enemies > *maxEnemies {
			return nil, fmt.Errorf("%d enemies alive at frame %d", enemies, scene.FrameCount())
		}

		if !playing {
			if scene.Mode() != game.ModeGameOver {
				return nil, fmt.Errorf("tick stopped in mode %v", scene.Mode())
			}
			if scene.HighScore() < scene.Score() {
				return nil, fmt.Errorf("high score %d below final score %d", scene.HighScore(), scene.Score())
			}
			// 结束后的点击必须被忽略
			if r := scene.HandlePointerDown(config.GameWindowWidth/2, groundY+10); r != systems.ShotIgnored {
				return nil, fmt.Errorf("tap after game over returned %v", r)
			}
			stats.ended = true
			break
		}

		if cooldown > 0 {
			cooldown--
			continue
		}
		if x, ok := pickTarget(scene, groundY); ok {
			x += (aimRng.Float64()*2 - 1) * *aimError
			result := scene.HandlePointerDown(x, groundY+10)
			stats.shots[result]++
			log.Printf("[Bot] Frame %d: shot at x=%.1f → %s", scene.FrameCount(), x, result)
			cooldown = *reaction
		}
	}

	stats.score = scene.Score()
	return stats, nil
}

// pickTarget 选择最接近地面的可见敌人
func pickTarget(scene *scenes.GameScene, groundY float64) (float64, bool) {
	best := math.Inf(-1)
	x := 0.0
	for _, e := range scene.Enemies() {
		if !e.Active || e.Bottom() < 0 || e.Pos.Y >= groundY {
			continue
		}
		if e.Pos.Y > best {
			best = e.Pos.Y
			x = e.Pos.X
		}
	}
	return x, !math.IsInf(best, -1)
}
