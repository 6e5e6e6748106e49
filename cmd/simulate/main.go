// simulate 在无窗口环境下运行射击演示
//
// 使用固定间隔驱动器代替显示刷新回调，由简单的自动操作产生输入，
// 结束时打印得分统计。用于在没有图形环境的机器上验证游戏规则。
//
// 用法:
//
//	go run ./cmd/simulate -duration 10s -seed 42
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/game"
	"github.com/decker502/canvasdemos/pkg/input"
	"github.com/decker502/canvasdemos/pkg/shooter"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", config.DefaultConfigPath, "游戏配置文件路径")
	seed       = flag.Uint64("seed", 1, "随机种子")
	duration   = flag.Duration("duration", 5*time.Second, "模拟时长（墙钟时间）")
	interval   = flag.Duration("interval", time.Second/60, "更新间隔")
	maxGames   = flag.Int("games", 0, "达到指定局数后结束，0 表示不限制")
)

// stats 模拟统计
type stats struct {
	games     int
	best      int
	total     int
	frames    int
	maxDelta  float64
	finalTime float64
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed>>1|1))
	state, err := shooter.New(cfg.Shooter, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建游戏失败: %v\n", err)
		os.Exit(1)
	}

	var st stats
	state.OnGameOver = func(score int) {
		st.games++
		st.total += score
		if score > st.best {
			st.best = score
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *duration)
	defer cancel()

	err = game.RunFixed(ctx, *interval, func(dt float64) error {
		st.frames++
		st.maxDelta = math.Max(st.maxDelta, dt)

		if state.IsGameOver() {
			if *maxGames > 0 && st.games >= *maxGames {
				return game.ErrStop
			}
			state.Reset()
		}
		state.Update(dt, autopilot(state))
		st.finalTime = state.GameTime
		return nil
	})
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "模拟失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("frames:      %d (max delta %.4fs)\n", st.frames, st.maxDelta)
	fmt.Printf("games over:  %d\n", st.games)
	fmt.Printf("best score:  %d\n", st.best)
	if st.games > 0 {
		fmt.Printf("avg score:   %.1f\n", float64(st.total)/float64(st.games))
	}
	fmt.Printf("current:     score=%d time=%.1fs enemies=%d bullets=%d\n",
		state.Score, st.finalTime, len(state.Enemies), len(state.Bullets))
}

// autopilot 始终开火，水平移向最近的敌人，敌人靠近时向下方躲避
func autopilot(s *shooter.State) input.State {
	actions := []input.Action{input.ActionFire}

	player := s.Player.Box()
	nearest := math.Inf(1)
	targetX := player.Pos.X
	for _, e := range s.Enemies {
		dy := player.Pos.Y - e.Pos.Y
		if dy < 0 {
			continue
		}
		if dy < nearest {
			nearest = dy
			targetX = e.Pos.X
		}
	}

	switch {
	case targetX < player.Pos.X-2:
		actions = append(actions, input.ActionLeft)
	case targetX > player.Pos.X+2:
		actions = append(actions, input.ActionRight)
	}
	if nearest < player.Size.Y*2 {
		actions = append(actions, input.ActionDown)
	}
	return input.NewState(actions...)
}
