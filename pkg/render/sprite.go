// Package render 用 Ebitengine 绘制两个演示
//
// 渲染器只读取游戏状态，不修改它。图片通过 Images 按 ID 查找，
// 未就绪的图片所在图层直接跳过。
package render

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/canvasdemos/pkg/components"
	"github.com/decker502/canvasdemos/pkg/types"
	"github.com/decker502/canvasdemos/pkg/utils"
)

// Images 按 ID 查找已就绪的图片，*game.ResourceManager 满足该接口
type Images interface {
	Image(id string) (*ebiten.Image, bool)
}

// DrawSprite 在 pos 处绘制精灵的当前帧
//
// 帧区域被限制在图片范围内；图片未就绪或区域为空时不绘制，返回 false。
func DrawSprite(dst *ebiten.Image, images Images, sprite *components.Sprite, pos types.Vec2) bool {
	if sprite == nil {
		return false
	}
	sheet, ok := images.Image(sprite.ImageID)
	if !ok {
		return false
	}

	frame := utils.CropImage(sheet, frameRect(sprite.Frame()))
	if frame == nil {
		return false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(pos.X), math.Round(pos.Y))
	dst.DrawImage(frame, op)
	return true
}

// frameRect 将帧区域转换为整数像素矩形
func frameRect(b types.Box) image.Rectangle {
	x0 := int(math.Round(b.Pos.X))
	y0 := int(math.Round(b.Pos.Y))
	return image.Rect(x0, y0, x0+int(math.Round(b.Size.X)), y0+int(math.Round(b.Size.Y)))
}
