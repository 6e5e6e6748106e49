package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/entities"
	"github.com/decker502/canvasdemos/pkg/shooter"
	"github.com/decker502/canvasdemos/pkg/utils"
)

// ShooterRenderer 绘制射击演示
//
// 绘制顺序：平铺背景 → 玩家（游戏未结束时）→ 子弹 → 敌人 → 得分 → 游戏结束遮罩。
type ShooterRenderer struct {
	images     Images
	background string

	hudFace *text.GoTextFace
	overlay *Overlay
}

// NewShooterRenderer 创建射击演示渲染器
//
// 参数:
//   - images: 图片来源
//   - background: 平铺背景的图片 ID
//   - resetHint: 游戏结束时显示的重新开始提示
func NewShooterRenderer(images Images, background, resetHint string) (*ShooterRenderer, error) {
	hudFace, err := utils.NewFace(config.HUDFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create HUD font: %w", err)
	}
	overlay, err := NewOverlay("GAME OVER", resetHint)
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}
	return &ShooterRenderer{
		images:     images,
		background: background,
		hudFace:    hudFace,
		overlay:    overlay,
	}, nil
}

// Overlay 返回游戏结束遮罩
func (r *ShooterRenderer) Overlay() *Overlay {
	return r.overlay
}

// Update 推进遮罩动画
func (r *ShooterRenderer) Update(dt float64) {
	r.overlay.Update(dt)
}

// Draw 绘制一帧
func (r *ShooterRenderer) Draw(screen *ebiten.Image, s *shooter.State) {
	w, h := int(s.Width()), int(s.Height())

	if bg, ok := r.images.Image(r.background); ok {
		utils.TileImage(screen, bg, w, h)
	}

	if !s.IsGameOver() {
		r.drawEntity(screen, s.Player)
	}
	for _, b := range s.Bullets {
		r.drawEntity(screen, b)
	}
	for _, e := range s.Enemies {
		r.drawEntity(screen, e)
	}

	utils.DrawText(screen, fmt.Sprintf("Score: %d", s.Score), r.hudFace, config.HUDScoreX, config.HUDScoreY, config.HUDTextColor)

	r.overlay.Draw(screen)
}

func (r *ShooterRenderer) drawEntity(screen *ebiten.Image, e *entities.Entity) {
	DrawSprite(screen, r.images, e.Sprite, e.Pos)
}
