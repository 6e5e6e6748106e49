package game

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStop 由 RunFixed 的 step 返回，表示正常结束循环
var ErrStop = errors.New("stop")

// Clock 计算相邻两帧之间的墙钟时间
//
// 第一次 Tick 返回 0。MaxDelta > 0 时单帧时间被截断到 MaxDelta，
// 默认不截断，长时间卡顿后会出现一次较大的时间步长。
type Clock struct {
	MaxDelta float64

	now  func() time.Time
	last time.Time
}

// NewClock 创建使用系统时间的时钟
func NewClock(maxDelta float64) *Clock {
	return &Clock{MaxDelta: maxDelta, now: time.Now}
}

// Tick 返回距上一次 Tick 经过的秒数
func (c *Clock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		dt = 0
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		dt = c.MaxDelta
	}
	return dt
}

// Reset 使下一次 Tick 重新从 0 开始
func (c *Clock) Reset() {
	c.last = time.Time{}
}

// RunFixed 以固定间隔驱动 step，用于没有显示刷新回调的场合（无界面模拟）
//
// step 收到的是实际经过的墙钟时间。ctx 取消时返回 ctx.Err()；
// step 返回 ErrStop 时返回 nil；其他错误原样包装返回。
func RunFixed(ctx context.Context, interval time.Duration, step func(dt float64) error) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", interval)
	}
	return runFixed(ctx, NewClock(0), interval, step)
}

func runFixed(ctx context.Context, clock *Clock, interval time.Duration, step func(dt float64) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	clock.Tick()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := step(clock.Tick()); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return fmt.Errorf("step failed: %w", err)
			}
		}
	}
}
