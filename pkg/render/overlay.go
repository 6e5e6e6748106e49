package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/utils"
)

// Overlay 游戏结束遮罩，显示时淡入
type Overlay struct {
	title string
	hint  string

	titleFace *text.GoTextFace
	hintFace  *text.GoTextFace

	visible bool
	alpha   float32
	tween   *gween.Tween
}

// NewOverlay 创建遮罩
func NewOverlay(title, hint string) (*Overlay, error) {
	titleFace, err := utils.NewFace(config.OverlayTitleFontSize)
	if err != nil {
		return nil, err
	}
	hintFace, err := utils.NewFace(config.OverlayHintFontSize)
	if err != nil {
		return nil, err
	}
	return &Overlay{
		title:     title,
		hint:      hint,
		titleFace: titleFace,
		hintFace:  hintFace,
	}, nil
}

// Show 显示遮罩并从透明开始淡入
func (o *Overlay) Show() {
	o.visible = true
	o.alpha = 0
	o.tween = gween.New(0, config.OverlayMaxAlpha, config.OverlayFadeDuration, ease.OutQuad)
}

// Hide 隐藏遮罩
func (o *Overlay) Hide() {
	o.visible = false
	o.alpha = 0
	o.tween = nil
}

// Visible 返回遮罩是否显示
func (o *Overlay) Visible() bool {
	return o.visible
}

// Alpha 返回当前不透明度
func (o *Overlay) Alpha() float32 {
	return o.alpha
}

// Update 推进淡入动画
func (o *Overlay) Update(dt float64) {
	if o.tween == nil {
		return
	}
	alpha, finished := o.tween.Update(float32(dt))
	o.alpha = alpha
	if finished {
		o.tween = nil
	}
}

// Draw 绘制遮罩和文字，文字随遮罩一起淡入
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	bg := config.OverlayColor
	bg.A = uint8(o.alpha * 255)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), bg, false)

	textAlpha := o.alpha / config.OverlayMaxAlpha
	clr := config.HUDTextColor
	clr.A = uint8(textAlpha * 255)
	clr.R = uint8(float32(clr.R) * textAlpha)
	clr.G = uint8(float32(clr.G) * textAlpha)
	clr.B = uint8(float32(clr.B) * textAlpha)

	cx := float64(w) / 2
	y := float64(h)/2 - config.OverlayTitleFontSize
	utils.DrawCenteredText(screen, o.title, o.titleFace, cx, y, clr)

	y += config.OverlayHintOffsetY
	for _, line := range utils.WrapText(o.hint, o.hintFace, float64(w)-32) {
		utils.DrawCenteredText(screen, line, o.hintFace, cx, y, clr)
		y += config.OverlayHintFontSize * 1.4
	}
}
