package utils

import "math/rand"

// Clamp 将值限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 将值限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// RandRange 返回 [min, max) 内均匀分布的随机数
// min == max 时直接返回 min
func RandRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// LerpUint8 在两个颜色分量之间插值，t 会被限制在 [0, 1]
func LerpUint8(a, b uint8, t float64) uint8 {
	return uint8(Lerp(float64(a), float64(b), Clamp01(t)) + 0.5)
}
