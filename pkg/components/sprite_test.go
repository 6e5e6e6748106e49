package components

import (
	"testing"

	"github.com/decker502/canvasdemos/pkg/types"
)

// TestSprite_StaticFrame 测试无动画精灵始终返回第 0 帧
func TestSprite_StaticFrame(t *testing.T) {
	s := NewSprite("IMAGE_SPRITES", types.Vec2{X: 0, Y: 84}, types.Vec2{X: 4, Y: 4})
	s.Update(10)

	got := s.Frame()
	want := types.Box{Pos: types.Vec2{X: 0, Y: 84}, Size: types.Vec2{X: 4, Y: 4}}
	if got != want {
		t.Errorf("Frame() = %+v, want %+v", got, want)
	}
}

// TestSprite_Animation 测试帧序列推进和循环
func TestSprite_Animation(t *testing.T) {
	s := &Sprite{
		ImageID: "IMAGE_SPRITES",
		Offset:  types.Vec2{X: 0, Y: 43},
		Size:    types.Vec2{X: 23, Y: 40},
		Speed:   2,
		Frames:  []int{0, 1, 2, 3, 2, 1},
	}

	tests := []struct {
		name  string
		dt    float64
		wantX float64
	}{
		{"初始帧", 0, 0},
		{"第二帧", 0.75, 23},
		{"第三帧", 0.5, 46},
		{"第四帧", 0.5, 69},
		{"回退", 0.5, 46},
		{"回退到第二帧", 0.5, 23},
		{"循环回到第一帧", 0.5, 0},
	}

	for _, tt := range tests {
		s.Update(tt.dt)
		if got := s.Frame().Pos.X; got != tt.wantX {
			t.Errorf("%s: frame X = %.0f, want %.0f", tt.name, got, tt.wantX)
		}
		if got := s.Frame().Pos.Y; got != 43 {
			t.Errorf("%s: frame Y = %.0f, want 43", tt.name, got)
		}
	}
}

// TestSprite_VerticalOnce 测试纵向排列和一次性动画
func TestSprite_VerticalOnce(t *testing.T) {
	s := &Sprite{
		Size:     types.Vec2{X: 10, Y: 8},
		Speed:    10,
		Frames:   []int{0, 1, 2},
		Vertical: true,
		Once:     true,
	}

	s.Update(0.15)
	if got := s.Frame().Pos.Y; got != 8 {
		t.Errorf("expected second frame at Y=8, got %.0f", got)
	}
	if s.Done() {
		t.Error("animation should not be done yet")
	}

	s.Update(1)
	if !s.Done() {
		t.Fatal("expected once animation to be done")
	}
	if got := s.Frame().Pos.Y; got != 16 {
		t.Errorf("finished animation should hold last frame (Y=16), got %.0f", got)
	}
}

func TestSprite_CloneResetsState(t *testing.T) {
	tmpl := &Sprite{Speed: 5, Frames: []int{0, 1}, Size: types.Vec2{X: 20, Y: 43}}
	tmpl.Update(0.3)

	c := tmpl.Clone()
	if c.FrameIndex() != 0 {
		t.Errorf("clone should start at frame 0, got %d", c.FrameIndex())
	}
	c.Frames[0] = 9
	if tmpl.Frames[0] != 0 {
		t.Error("clone must not share the frames slice")
	}
}
