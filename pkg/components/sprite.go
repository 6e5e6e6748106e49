package components

import (
	"math"

	"github.com/decker502/canvasdemos/pkg/types"
)

// Sprite 存储实体的视觉表现：共享图集中的一个子矩形，以及帧动画状态
//
// 帧沿水平方向排列（Vertical 为 true 时沿垂直方向），第 n 帧的源矩形为
// Offset + n*Size。Speed 为 0 或 Frames 为空时始终绘制第 0 帧。
type Sprite struct {
	ImageID  string     // 资源ID（如 "IMAGE_SPRITES"）
	Offset   types.Vec2 // 第 0 帧在图集中的左上角
	Size     types.Vec2 // 单帧尺寸，同时作为碰撞盒尺寸
	Speed    float64    // 帧/秒
	Frames   []int      // 帧序列，如 [0 1 2 3 2 1]
	Vertical bool       // 帧是否纵向排列
	Once     bool       // 只播放一次

	index float64
	done  bool
}

// NewSprite 创建一个静态精灵
func NewSprite(imageID string, offset, size types.Vec2) *Sprite {
	return &Sprite{ImageID: imageID, Offset: offset, Size: size}
}

// Update 推进帧动画
func (s *Sprite) Update(dt float64) {
	if s.done || s.Speed <= 0 || len(s.Frames) == 0 {
		return
	}
	s.index += s.Speed * dt
	if s.Once && int(math.Floor(s.index)) >= len(s.Frames) {
		s.done = true
	}
}

// Done 返回一次性动画是否已播放完毕
func (s *Sprite) Done() bool {
	return s.done
}

// FrameIndex 返回当前帧在图集中的序号
func (s *Sprite) FrameIndex() int {
	if s.Speed <= 0 || len(s.Frames) == 0 {
		return 0
	}
	if s.done {
		return s.Frames[len(s.Frames)-1]
	}
	idx := int(math.Floor(s.index))
	if idx < 0 {
		idx = 0
	}
	return s.Frames[idx%len(s.Frames)]
}

// Frame 返回当前帧的源矩形
func (s *Sprite) Frame() types.Box {
	return s.FrameAt(s.FrameIndex())
}

// FrameAt 返回图集中第 n 帧的源矩形
func (s *Sprite) FrameAt(frame int) types.Box {
	n := float64(frame)
	pos := s.Offset
	if s.Vertical {
		pos.Y += n * s.Size.Y
	} else {
		pos.X += n * s.Size.X
	}
	return types.Box{Pos: pos, Size: s.Size}
}

// Clone 返回一个动画状态归零的副本
//
// 实体工厂用它从配置模板派生独立的精灵。
func (s *Sprite) Clone() *Sprite {
	c := *s
	c.Frames = append([]int(nil), s.Frames...)
	c.index = 0
	c.done = false
	return &c
}
