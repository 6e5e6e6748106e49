// Package input 记录当前按住的按键，并按绑定生成每帧的输入快照
//
// 游戏逻辑只读取 State 快照，不直接访问 ebiten 的按键状态；
// 按键事件由 Tracker.Poll 在每帧开始时从 inpututil 拉取。
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kamstrup/intmap"
)

// Tracker 当前按住的按键集合
//
// 按下时加入集合、松开时移除；重复的按下事件是幂等的，不做防抖。
type Tracker struct {
	held *intmap.Map[ebiten.Key, struct{}]
	buf  []ebiten.Key
}

// NewTracker 创建空的按键集合
func NewTracker() *Tracker {
	return &Tracker{
		held: intmap.New[ebiten.Key, struct{}](16),
	}
}

// Press 标记按键为按下
func (t *Tracker) Press(key ebiten.Key) {
	t.held.Put(key, struct{}{})
}

// Release 移除按键
func (t *Tracker) Release(key ebiten.Key) {
	t.held.Del(key)
}

// IsDown 返回按键当前是否按住
func (t *Tracker) IsDown(key ebiten.Key) bool {
	_, ok := t.held.Get(key)
	return ok
}

// Len 返回当前按住的按键数
func (t *Tracker) Len() int {
	return t.held.Len()
}

// Reset 清空按键集合（窗口失焦时使用，避免按键"卡住"）
func (t *Tracker) Reset() {
	t.held.Clear()
}

// Poll 从 ebiten 拉取本帧的按下/松开事件
// 每个 tick 调用一次，必须在游戏 goroutine 上调用
func (t *Tracker) Poll() {
	t.buf = inpututil.AppendJustPressedKeys(t.buf[:0])
	for _, k := range t.buf {
		t.Press(k)
	}
	t.buf = inpututil.AppendJustReleasedKeys(t.buf[:0])
	for _, k := range t.buf {
		t.Release(k)
	}
}

// Snapshot 按绑定生成本帧的输入快照
func (t *Tracker) Snapshot(b Bindings) State {
	var s State
	for action := Action(1); action < actionEnd; action <<= 1 {
		for _, key := range b[action] {
			if t.IsDown(key) {
				s.held |= action
				break
			}
		}
	}
	return s
}
