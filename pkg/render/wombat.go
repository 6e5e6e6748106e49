package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/canvasdemos/pkg/wombat"
)

// WombatRenderer 绘制移动演示
//
// 绘制到一张持久的离屏画布上，再把画布复制到屏幕。
// ClearBeforeDraw 为 false 时画布不清空，之前各帧的图像会残留。
type WombatRenderer struct {
	images     Images
	background string
	opts       wombat.Options

	canvas *ebiten.Image
}

// NewWombatRenderer 创建移动演示渲染器
func NewWombatRenderer(images Images, background string, width, height int, opts wombat.Options) *WombatRenderer {
	return &WombatRenderer{
		images:     images,
		background: background,
		opts:       opts,
		canvas:     ebiten.NewImage(width, height),
	}
}

// Canvas 返回离屏画布
func (r *WombatRenderer) Canvas() *ebiten.Image {
	return r.canvas
}

// Draw 绘制一帧
func (r *WombatRenderer) Draw(screen *ebiten.Image, a *wombat.Actor) {
	if r.opts.ClearBeforeDraw {
		r.canvas.Clear()
	}

	if r.opts.Background {
		if bg, ok := r.images.Image(r.background); ok {
			r.canvas.DrawImage(bg, nil)
		}
	}

	if img, ok := r.images.Image(a.ImageID()); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(a.Pos.X, a.Pos.Y)
		r.canvas.DrawImage(img, op)
	}

	screen.DrawImage(r.canvas, nil)
}
