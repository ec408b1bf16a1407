package config

// 布局配置常量
// 本文件定义窗口的逻辑尺寸和地面区域的默认比例

const (
	// GameWindowWidth 默认窗口宽度（逻辑像素）
	GameWindowWidth = 480

	// GameWindowHeight 默认窗口高度（逻辑像素）
	// 竖屏布局：敌人自上而下坠落
	GameWindowHeight = 800

	// DefaultGroundZoneFraction 地面区域占画布高度的默认比例
	// 地面区域同时是可点击的发射区
	DefaultGroundZoneFraction = 0.15

	// GroundZoneLabel 地面区域中央显示的静态文字
	GroundZoneLabel = "LAUNCH ZONE"
)

// GroundLineY 根据画布高度和地面比例计算地面线的Y坐标
//
// 参数:
//   - height: 画布高度
//   - fraction: 地面区域占比（0, 1）
//
// 返回:
//   - float64: 地面线Y坐标，地面区域为 [GroundLineY, height]
func GroundLineY(height, fraction float64) float64 {
	return height * (1 - fraction)
}
