package entities

import (
	"github.com/decker502/canvasdemos/pkg/components"
	"github.com/decker502/canvasdemos/pkg/types"
)

// Direction 子弹飞行方向
type Direction int

const (
	// DirNone 非子弹实体
	DirNone Direction = iota
	// DirUp 向上飞行
	DirUp
	// DirDown 向下飞行
	DirDown
	// DirLeft 向左飞行
	DirLeft
	// DirRight 向右飞行
	DirRight
)

// Unit 返回方向对应的单位向量（屏幕坐标，Y 向下）
func (d Direction) Unit() types.Vec2 {
	switch d {
	case DirUp:
		return types.Vec2{Y: -1}
	case DirDown:
		return types.Vec2{Y: 1}
	case DirLeft:
		return types.Vec2{X: -1}
	case DirRight:
		return types.Vec2{X: 1}
	default:
		return types.Vec2{}
	}
}

// Entity 可定位、可绘制的游戏对象（玩家、敌人、子弹）
//
// 实体没有ID，生命周期等于其在所属切片中的存在时间。
type Entity struct {
	Pos    types.Vec2
	Sprite *components.Sprite
	Dir    Direction
}

// Box 返回实体的碰撞盒（位置 + 精灵帧尺寸）
func (e *Entity) Box() types.Box {
	return types.Box{Pos: e.Pos, Size: e.Sprite.Size}
}
