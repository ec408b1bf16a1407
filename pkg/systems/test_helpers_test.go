package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/skyrocket/pkg/components"
	"github.com/gonewx/skyrocket/pkg/config"
	"github.com/gonewx/skyrocket/pkg/game"
)

const (
	testWidth  = 480.0
	testHeight = 800.0
	// testGroundY 默认 15% 地面区域下的地面线
	testGroundY = 680.0
)

// newTestState 创建处于 PLAYING、画布 480x800 的状态
func newTestState(t *testing.T) (*game.GameState, *config.TuningConfig) {
	t.Helper()
	tuning := config.DefaultTuning()
	gs := game.NewGameState(tuning)
	gs.SetSurfaceSize(testWidth, testHeight)
	gs.Reset(tuning)
	return gs, tuning
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// addEnemy 在指定位置放一个敌人
func addEnemy(gs *game.GameState, x, y float64, hp int) *components.EnemyComponent {
	gs.Enemies = append(gs.Enemies, components.EnemyComponent{
		ID:     gs.IDs.Next(),
		Pos:    components.Vec2{X: x, Y: y},
		Vel:    components.Vec2{Y: 1.5},
		Radius: 20,
		HP:     hp,
		MaxHP:  2,
		Active: true,
	})
	return &gs.Enemies[len(gs.Enemies)-1]
}
