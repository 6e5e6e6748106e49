package game

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// decoded 后台解码结果，等待 Poll 在游戏线程上转交给 ResourceManager
type decoded struct {
	id  string
	img image.Image
	err error
}

// Loader 异步加载一组图片
//
// Start 在后台并发解码，Poll 每帧在游戏线程上调用，把解码好的图片放入
// ResourceManager 缓存。全部图片结束（成功或失败）后 OnReady 只调用一次。
type Loader struct {
	rm      *ResourceManager
	workers int
	timeout time.Duration

	// OnReady 全部图片加载结束后在 Poll 中调用一次
	OnReady func()

	ids    []string
	cancel context.CancelFunc

	mu       sync.Mutex
	pending  []decoded
	finished bool // 所有解码 goroutine 已返回

	delivered int
	errs      []error
	ready     bool
}

// NewLoader 创建加载器
//
// 参数:
//   - rm: 接收图片的资源管理器
//   - workers: 并发解码数，<= 0 时不限制
//   - timeout: 整体超时，<= 0 时不设超时
func NewLoader(rm *ResourceManager, workers int, timeout time.Duration) *Loader {
	return &Loader{
		rm:      rm,
		workers: workers,
		timeout: timeout,
	}
}

// Start 开始在后台加载给定图片
//
// 所有 ID 先在调用方 goroutine 上解析，存在未知 ID 时不启动任何加载并返回
// 包装了 ErrUnknownImage 的错误。已在缓存中的图片直接视为完成。
func (l *Loader) Start(ctx context.Context, ids []string) error {
	if l.ids != nil {
		return fmt.Errorf("loader already started")
	}

	paths := make(map[string]string, len(ids))
	for _, id := range ids {
		res, err := l.rm.Resolve(id)
		if err != nil {
			return err
		}
		paths[id] = res.Path
	}
	l.ids = append([]string{}, ids...)

	if l.timeout > 0 {
		ctx, l.cancel = context.WithTimeout(ctx, l.timeout)
	} else {
		ctx, l.cancel = context.WithCancel(ctx)
	}

	log.Printf("[Loader] Loading %d images (workers=%d, timeout=%v)", len(ids), l.workers, l.timeout)

	var g errgroup.Group
	if l.workers > 0 {
		g.SetLimit(l.workers)
	}

	todo := make([]string, 0, len(ids))
	for _, id := range ids {
		if l.rm.Ready(id) {
			l.delivered++
			continue
		}
		todo = append(todo, id)
	}

	go func() {
		for _, id := range todo {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					l.push(decoded{id: id, err: fmt.Errorf("load %s: %w", id, err)})
					return nil
				}
				img, err := DecodeImage(l.rm.fsys, paths[id])
				if err != nil {
					err = fmt.Errorf("load %s: %w", id, err)
				}
				l.push(decoded{id: id, img: img, err: err})
				return nil
			})
		}
		_ = g.Wait()

		l.mu.Lock()
		l.finished = true
		l.mu.Unlock()
		l.cancel()
	}()

	return nil
}

func (l *Loader) push(d decoded) {
	l.mu.Lock()
	l.pending = append(l.pending, d)
	l.mu.Unlock()
}

// Poll 在游戏线程上转交已解码的图片
//
// 返回全部图片是否已结束加载。
func (l *Loader) Poll() bool {
	if l.ids == nil {
		return false
	}

	l.mu.Lock()
	batch := l.pending
	l.pending = nil
	finished := l.finished
	l.mu.Unlock()

	for _, d := range batch {
		l.delivered++
		if d.err != nil {
			log.Printf("[Loader] %v", d.err)
			l.errs = append(l.errs, d.err)
			l.rm.fail(d.id)
			continue
		}
		l.rm.store(d.id, ebiten.NewImageFromImage(d.img))
	}

	done := finished && l.delivered >= len(l.ids)
	if done && !l.ready {
		l.ready = true
		if len(l.errs) > 0 {
			log.Printf("[Loader] Finished with %d errors", len(l.errs))
		} else {
			log.Printf("[Loader] All %d images ready", len(l.ids))
		}
		if l.OnReady != nil {
			l.OnReady()
		}
	}
	return done
}

// Done 返回加载是否已结束（OnReady 已调用）
func (l *Loader) Done() bool {
	return l.ready
}

// Progress 返回已转交到游戏线程的图片比例
func (l *Loader) Progress() float64 {
	if len(l.ids) == 0 {
		if l.ready {
			return 1
		}
		return 0
	}
	return float64(l.delivered) / float64(len(l.ids))
}

// Err 返回所有加载失败合并后的错误，没有失败时为 nil
func (l *Loader) Err() error {
	return errors.Join(l.errs...)
}

// Cancel 取消尚未开始的解码
func (l *Loader) Cancel() {
	if l.cancel != nil {
		l.cancel()
	}
}
