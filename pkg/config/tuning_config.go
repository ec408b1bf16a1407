package config

import (
	"fmt"
	"os"

	"github.com/gonewx/skyrocket/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EmbeddedTuningPath 嵌入的默认调参文件路径
const EmbeddedTuningPath = "data/tuning.yaml"

// TuningConfig 游戏调参配置
//
// 包含模拟循环使用的全部常量：刷怪节奏、难度爬升、速度、命中判定、粒子与烟雾参数、渲染参数。
// 所有长度单位为画布像素，所有速度与衰减单位为"每 tick"。
//
// 配置文件位置: data/tuning.yaml
type TuningConfig struct {
	Spawn    SpawnConfig    `yaml:"spawn"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Ground   GroundConfig   `yaml:"ground"`
	Shot     ShotConfig     `yaml:"shot"`
	Particle ParticleConfig `yaml:"particle"`
	Trail    TrailConfig    `yaml:"trail"`
	Render   RenderConfig   `yaml:"render"`
	Score    ScoreConfig    `yaml:"score"`
}

// SpawnConfig 刷怪与难度爬升配置
type SpawnConfig struct {
	InitialRate       float64 `yaml:"initialRate"`       // 初始刷怪间隔（帧）
	MinRate           float64 `yaml:"minRate"`           // 刷怪间隔下限（帧）
	RateStep          float64 `yaml:"rateStep"`          // 每次刷怪后间隔减少量
	InitialDifficulty float64 `yaml:"initialDifficulty"` // 初始难度倍率
	MaxDifficulty     float64 `yaml:"maxDifficulty"`     // 难度倍率上限
	DifficultyStep    float64 `yaml:"difficultyStep"`    // 每次刷怪后难度增加量
	SpawnY            float64 `yaml:"spawnY"`            // 出生点Y坐标（位于画布上边界之上）
}

// EnemyConfig 敌人属性
type EnemyConfig struct {
	BaseSpeed float64 `yaml:"baseSpeed"` // 基础下落速度（像素/帧）
	Radius    float64 `yaml:"radius"`
	MaxHP     int     `yaml:"maxHp"`
}

// GroundConfig 地面区域配置
type GroundConfig struct {
	ZoneFraction float64 `yaml:"zoneFraction"` // 地面区域占画布高度比例
}

// ShotConfig 射击与命中结算配置
type ShotConfig struct {
	HitTolerance      float64 `yaml:"hitTolerance"`      // 水平命中容差（像素），模拟有宽度的光束
	ShieldBonus       int     `yaml:"shieldBonus"`       // 击破护盾得分
	DestroyBonus      int     `yaml:"destroyBonus"`      // 摧毁敌人得分
	PuffSpacing       float64 `yaml:"puffSpacing"`       // 烟团纵向间距
	PuffJitter        float64 `yaml:"puffJitter"`        // 烟团水平抖动幅度（±）
	PuffMinRadius     float64 `yaml:"puffMinRadius"`
	PuffMaxRadius     float64 `yaml:"puffMaxRadius"`
	MuzzleFlashCount  int     `yaml:"muzzleFlashCount"`  // 发射口火光粒子数
	ShieldBurstCount  int     `yaml:"shieldBurstCount"`  // 护盾破碎粒子数
	DestroyBurstCount int     `yaml:"destroyBurstCount"` // 爆炸粒子数
}

// ParticleConfig 粒子物理配置
type ParticleConfig struct {
	Gravity  float64 `yaml:"gravity"` // 每帧叠加到 vy 的重力
	Decay    float64 `yaml:"decay"`   // 每帧生命衰减
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
	MinSize  float64 `yaml:"minSize"`
	MaxSize  float64 `yaml:"maxSize"`
}

// TrailConfig 烟雾尾迹配置
type TrailConfig struct {
	Decay      float64 `yaml:"decay"`      // 每帧生命衰减（远慢于粒子）
	FadeBand   float64 `yaml:"fadeBand"`   // 截止线之后的淡出带宽度
	MaxGrowth  float64 `yaml:"maxGrowth"`  // 烟团半径随寿命最大增长量
	MaxOpacity float64 `yaml:"maxOpacity"` // 烟雾不透明度上限
}

// RenderConfig 渲染参数
type RenderConfig struct {
	StarCount     int     `yaml:"starCount"`     // 背景星点数量
	PulseSpeed    float64 `yaml:"pulseSpeed"`    // 护盾脉动角速度（弧度/帧）
	PulseAmount   float64 `yaml:"pulseAmount"`   // 护盾脉动幅度（像素）
	ShieldPadding float64 `yaml:"shieldPadding"` // 护盾环相对本体的外扩
	StripeSpacing float64 `yaml:"stripeSpacing"` // 地面竖条纹间距
}

// ScoreConfig 分数显示配置
type ScoreConfig struct {
	SyncInterval int `yaml:"syncInterval"` // 显示分数刷新间隔（帧）
}

// DefaultTuning 返回内置默认调参
// 与 data/tuning.yaml 保持一致，嵌入资源不可用时使用
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Spawn: SpawnConfig{
			InitialRate:       120,
			MinRate:           30,
			RateStep:          1,
			InitialDifficulty: 1,
			MaxDifficulty:     2.5,
			DifficultyStep:    0.05,
			SpawnY:            -40,
		},
		Enemy: EnemyConfig{
			BaseSpeed: 1.5,
			Radius:    20,
			MaxHP:     2,
		},
		Ground: GroundConfig{
			ZoneFraction: DefaultGroundZoneFraction,
		},
		Shot: ShotConfig{
			HitTolerance:      10,
			ShieldBonus:       50,
			DestroyBonus:      150,
			PuffSpacing:       6,
			PuffJitter:        4,
			PuffMinRadius:     4,
			PuffMaxRadius:     8,
			MuzzleFlashCount:  8,
			ShieldBurstCount:  12,
			DestroyBurstCount: 30,
		},
		Particle: ParticleConfig{
			Gravity:  0.15,
			Decay:    0.02,
			MinSpeed: 1,
			MaxSpeed: 5,
			MinSize:  1.5,
			MaxSize:  4,
		},
		Trail: TrailConfig{
			Decay:      0.01,
			FadeBand:   100,
			MaxGrowth:  20,
			MaxOpacity: 0.35,
		},
		Render: RenderConfig{
			StarCount:     60,
			PulseSpeed:    0.1,
			PulseAmount:   2,
			ShieldPadding: 6,
			StripeSpacing: 16,
		},
		Score: ScoreConfig{
			SyncInterval: 10,
		},
	}
}

// LoadTuningConfig 加载调参配置
//
// 从指定路径加载 YAML 格式的调参文件。文件中缺省的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// LoadTuningFromEmbedded 从嵌入资源加载默认调参文件
// 调用前必须先调用 embedded.Init()
func LoadTuningFromEmbedded() (*TuningConfig, error) {
	data, err := embedded.ReadFile(EmbeddedTuningPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// ResolveTuning 按优先级选择调参来源
//
// 显式路径优先；未指定时使用嵌入文件；嵌入资源未初始化（如移动端或测试）时使用内置默认值。
func ResolveTuning(path string) (*TuningConfig, error) {
	if path != "" {
		return LoadTuningConfig(path)
	}
	if embedded.IsInitialized() {
		return LoadTuningFromEmbedded()
	}
	return DefaultTuning(), nil
}

// ParseTuningConfig 解析 YAML 数据并校验
func ParseTuningConfig(data []byte) (*TuningConfig, error) {
	config := DefaultTuning()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查配置值是否在合理范围内：
//   - 刷怪间隔下限 >= 1 且不大于初始间隔
//   - 难度上限不小于初始难度
//   - 地面比例在 (0, 1) 之间
//   - 半径、速度、最大生命值为正
//   - 各类随机范围 Min <= Max
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *TuningConfig) Validate() error {
	if c.Spawn.MinRate < 1 {
		return fmt.Errorf("spawn minRate must be >= 1, got %.2f", c.Spawn.MinRate)
	}
	if c.Spawn.InitialRate < c.Spawn.MinRate {
		return fmt.Errorf("spawn initialRate(%.2f) < minRate(%.2f)", c.Spawn.InitialRate, c.Spawn.MinRate)
	}
	if c.Spawn.MaxDifficulty < c.Spawn.InitialDifficulty {
		return fmt.Errorf("spawn maxDifficulty(%.2f) < initialDifficulty(%.2f)",
			c.Spawn.MaxDifficulty, c.Spawn.InitialDifficulty)
	}
	if c.Spawn.RateStep < 0 || c.Spawn.DifficultyStep < 0 {
		return fmt.Errorf("spawn steps must be >= 0")
	}

	if c.Enemy.Radius <= 0 {
		return fmt.Errorf("enemy radius must be > 0, got %.2f", c.Enemy.Radius)
	}
	if c.Enemy.BaseSpeed <= 0 {
		return fmt.Errorf("enemy baseSpeed must be > 0, got %.2f", c.Enemy.BaseSpeed)
	}
	if c.Enemy.MaxHP < 1 {
		return fmt.Errorf("enemy maxHp must be >= 1, got %d", c.Enemy.MaxHP)
	}

	if c.Ground.ZoneFraction <= 0 || c.Ground.ZoneFraction >= 1 {
		return fmt.Errorf("ground zoneFraction must be in (0, 1), got %.2f", c.Ground.ZoneFraction)
	}

	if c.Shot.PuffSpacing <= 0 {
		return fmt.Errorf("shot puffSpacing must be > 0, got %.2f", c.Shot.PuffSpacing)
	}
	if c.Shot.PuffMinRadius > c.Shot.PuffMaxRadius {
		return fmt.Errorf("shot puff radius range invalid: min(%.1f) > max(%.1f)",
			c.Shot.PuffMinRadius, c.Shot.PuffMaxRadius)
	}
	if c.Particle.MinSpeed > c.Particle.MaxSpeed {
		return fmt.Errorf("particle speed range invalid: min(%.1f) > max(%.1f)",
			c.Particle.MinSpeed, c.Particle.MaxSpeed)
	}
	if c.Particle.MinSize > c.Particle.MaxSize {
		return fmt.Errorf("particle size range invalid: min(%.1f) > max(%.1f)",
			c.Particle.MinSize, c.Particle.MaxSize)
	}
	if c.Particle.Decay <= 0 || c.Trail.Decay <= 0 {
		return fmt.Errorf("particle and trail decay must be > 0")
	}

	if c.Trail.MaxOpacity < 0 || c.Trail.MaxOpacity > 1 {
		return fmt.Errorf("trail maxOpacity must be in [0, 1], got %.2f", c.Trail.MaxOpacity)
	}

	if c.Score.SyncInterval < 1 {
		return fmt.Errorf("score syncInterval must be >= 1, got %d", c.Score.SyncInterval)
	}

	return nil
}
