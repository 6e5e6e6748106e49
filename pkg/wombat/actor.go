// Package wombat 实现精灵移动演示
//
// Actor 在画布上随方向键移动，向左/向右移动时切换朝向图片。
// 演示的两个变体（每帧清屏 / 保留上一帧）由 Options 控制，
// 逻辑部分完全相同。
package wombat

import (
	"log"

	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/input"
	"github.com/decker502/canvasdemos/pkg/types"
)

// Facing 角色朝向
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Options 绘制选项
type Options struct {
	// ClearBeforeDraw 每帧绘制前清空画布；为 false 时上一帧的图像保留
	ClearBeforeDraw bool
	// Background 是否绘制背景图
	Background bool
}

// Actor 可移动的角色
type Actor struct {
	Pos    types.Vec2
	Speed  float64 // 像素/秒
	Facing Facing

	leftImage  string
	rightImage string
}

// New 根据配置创建角色，初始朝右
func New(cfg config.WombatConfig) *Actor {
	return &Actor{
		Pos:        types.Vec2{X: cfg.StartX, Y: cfg.StartY},
		Speed:      cfg.Speed,
		Facing:     FacingRight,
		leftImage:  cfg.LeftImage,
		rightImage: cfg.RightImage,
	}
}

// OptionsFromConfig 从配置读取绘制选项
func OptionsFromConfig(cfg config.WombatConfig) Options {
	return Options{
		ClearBeforeDraw: cfg.ClearBeforeDraw,
		Background:      cfg.Background,
	}
}

// Update 按输入移动角色
//
// 返回值表示本帧朝向是否发生变化；朝向与当前相同时不重复切换。
// 角色位置不受画布限制。
func (a *Actor) Update(dt float64, in input.State) bool {
	if dt < 0 {
		dt = 0
	}
	step := a.Speed * dt

	if in.Held(input.ActionUp) {
		a.Pos.Y -= step
	}
	if in.Held(input.ActionDown) {
		a.Pos.Y += step
	}

	changed := false
	if in.Held(input.ActionLeft) {
		a.Pos.X -= step
		changed = a.face(FacingLeft) || changed
	}
	if in.Held(input.ActionRight) {
		a.Pos.X += step
		changed = a.face(FacingRight) || changed
	}
	return changed
}

func (a *Actor) face(f Facing) bool {
	if a.Facing == f {
		return false
	}
	a.Facing = f
	log.Printf("[Wombat] Facing %s", f)
	return true
}

// ImageID 返回当前朝向对应的图片 ID
func (a *Actor) ImageID() string {
	if a.Facing == FacingLeft {
		return a.leftImage
	}
	return a.rightImage
}
