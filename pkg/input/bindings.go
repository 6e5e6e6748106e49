package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/canvasdemos/pkg/config"
)

// Action 游戏逻辑识别的动作（位标志）
type Action uint8

const (
	ActionUp Action = 1 << iota
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionReset

	actionEnd
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionFire:
		return "fire"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Bindings 动作到按键的映射，一个动作可以绑定多个按键
type Bindings map[Action][]ebiten.Key

// BindingsFromConfig 从按键配置生成绑定
func BindingsFromConfig(kc config.KeyConfig) Bindings {
	return Bindings{
		ActionUp:    kc.Up,
		ActionDown:  kc.Down,
		ActionLeft:  kc.Left,
		ActionRight: kc.Right,
		ActionFire:  kc.Fire,
		ActionReset: kc.Reset,
	}
}

// State 一帧的输入快照，对游戏逻辑只读
type State struct {
	held Action
}

// NewState 用给定动作构造快照（供模拟器和测试使用）
func NewState(actions ...Action) State {
	var s State
	for _, a := range actions {
		s.held |= a
	}
	return s
}

// Held 返回动作是否按住
func (s State) Held(a Action) bool {
	return s.held&a != 0
}

// Any 返回是否有任何动作按住
func (s State) Any() bool {
	return s.held != 0
}
