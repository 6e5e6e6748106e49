// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Vec2 二维坐标/尺寸（像素）
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add 返回两个向量之和
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale 返回按 s 缩放后的向量
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Y)
}

// Box 轴对齐边界框，Pos 为左上角
type Box struct {
	Pos  Vec2
	Size Vec2
}

// Right 返回右边界 X
func (b Box) Right() float64 { return b.Pos.X + b.Size.X }

// Bottom 返回下边界 Y
func (b Box) Bottom() float64 { return b.Pos.Y + b.Size.Y }

// Collides 检查两个碰撞盒是否重叠（AABB）
//
// 边界刚好接触也算碰撞；只有在某一轴上完全位于另一侧时才不相交。
// 判定对参数顺序对称：Collides(a, b) == Collides(b, a)。
func Collides(a, b Box) bool {
	return a.Pos.X <= b.Right() &&
		b.Pos.X <= a.Right() &&
		a.Pos.Y <= b.Bottom() &&
		b.Pos.Y <= a.Bottom()
}

// Contains 检查点是否位于矩形区域 [0,w]×[0,h] 内（含边界）
func Contains(w, h float64, p Vec2) bool {
	return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
}

// Clamp 将 v 限制在 [lo, hi] 范围内
//
// 当 hi < lo（物体比画布还大）时返回 lo。
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
