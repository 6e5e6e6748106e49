package config

import "image/color"

// HUD 与加载界面配置常量

const (
	// HUDFontSize 得分文字字体大小
	HUDFontSize float64 = 16

	// HUDScoreX 得分文字 X 坐标
	HUDScoreX float64 = 8

	// HUDScoreY 得分文字 Y 坐标
	HUDScoreY float64 = 6

	// OverlayTitleFontSize "GAME OVER" 字体大小
	OverlayTitleFontSize float64 = 36

	// OverlayHintFontSize 重新开始提示字体大小
	OverlayHintFontSize float64 = 16

	// OverlayHintOffsetY 提示文字相对标题的 Y 偏移
	OverlayHintOffsetY float64 = 48

	// OverlayMaxAlpha 遮罩最终不透明度
	OverlayMaxAlpha float32 = 0.75

	// OverlayFadeDuration 遮罩淡入时长（秒）
	OverlayFadeDuration float32 = 0.6

	// LoadingBarWidth 加载进度条宽度
	LoadingBarWidth float32 = 240

	// LoadingBarHeight 加载进度条高度
	LoadingBarHeight float32 = 12

	// LoadingTextOffsetY 加载文字相对进度条的 Y 偏移
	LoadingTextOffsetY float64 = -28

	// LoadingTextFontSize 加载文字字体大小
	LoadingTextFontSize float64 = 16
)

var (
	// HUDTextColor 得分文字颜色
	HUDTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// OverlayColor 游戏结束遮罩颜色（alpha 由淡入动画决定）
	OverlayColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

	// LoadingBarBackColor 进度条底色
	LoadingBarBackColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}

	// LoadingBarFillColor 进度条填充色
	LoadingBarFillColor = color.RGBA{R: 110, G: 190, B: 90, A: 255}
)
