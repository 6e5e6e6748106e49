package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/utils"
)

// LoadingRenderer 绘制加载进度条
type LoadingRenderer struct {
	face *text.GoTextFace
}

// NewLoadingRenderer 创建加载界面渲染器
func NewLoadingRenderer() (*LoadingRenderer, error) {
	face, err := utils.NewFace(config.LoadingTextFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create loading font: %w", err)
	}
	return &LoadingRenderer{face: face}, nil
}

// Draw 在屏幕中央绘制进度条，progress 取值 [0,1]
func (r *LoadingRenderer) Draw(screen *ebiten.Image, progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	barW, barH := config.LoadingBarWidth, config.LoadingBarHeight
	if barW > w-16 {
		barW = w - 16
	}
	x := (w - barW) / 2
	y := (h - barH) / 2

	vector.DrawFilledRect(screen, x, y, barW, barH, config.LoadingBarBackColor, false)
	vector.DrawFilledRect(screen, x, y, barW*float32(progress), barH, config.LoadingBarFillColor, false)

	label := fmt.Sprintf("Loading... %d%%", int(progress*100))
	utils.DrawCenteredText(screen, label, r.face, float64(w)/2, float64(y)+config.LoadingTextOffsetY, config.HUDTextColor)
}
