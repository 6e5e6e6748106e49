// Package shooter 实现俯视射击演示的游戏规则
//
// State 是一局游戏的全部可变状态：玩家、敌人、子弹、得分、游戏时间和
// 游戏结束标志。它由 New 创建，由 Reset 重置，不依赖任何渲染或输入设备，
// 每帧由场景用经过的时间和输入快照驱动。
package shooter

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/entities"
	"github.com/decker502/canvasdemos/pkg/types"
)

// Phase 游戏阶段
type Phase int

const (
	// PhasePlaying 游戏进行中
	PhasePlaying Phase = iota
	// PhaseGameOver 游戏结束，直到显式重置
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Rand 随机数来源，*rand.Rand（math/rand/v2）满足该接口
type Rand interface {
	Float64() float64
}

// State 一局射击游戏的状态
type State struct {
	cfg     config.ShooterConfig
	factory *entities.Factory
	rng     Rand

	GameTime float64 // 本局累计时间（秒）
	Score    int
	Kills    int
	Phase    Phase
	LastFire float64 // 上次开火时的 GameTime

	Player  *entities.Entity
	Enemies []*entities.Entity
	Bullets []*entities.Entity

	// OnGameOver 在进入 PhaseGameOver 时调用一次
	OnGameOver func(score int)
}

// New 创建一局新游戏
//
// 参数:
//   - cfg: 射击演示配置
//   - rng: 敌人生成使用的随机数来源
//
// 返回:
//   - *State: 处于 PhasePlaying 的游戏状态
//   - error: 配置无效时返回错误
func New(cfg config.ShooterConfig, rng Rand) (*State, error) {
	if rng == nil {
		return nil, fmt.Errorf("rng cannot be nil")
	}
	factory, err := entities.NewFactory(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity factory: %w", err)
	}

	s := &State{
		cfg:     cfg,
		factory: factory,
		rng:     rng,
	}
	s.Player = factory.NewPlayer(s.StartPos())
	s.Reset()
	return s, nil
}

// Reset 开始新的一局
//
// 清空敌人和子弹，得分和时间归零，玩家回到起点，重新允许开火。
func (s *State) Reset() {
	s.Enemies = nil
	s.Bullets = nil
	s.GameTime = 0
	s.Score = 0
	s.Kills = 0
	s.LastFire = math.Inf(-1)
	s.Player.Pos = s.StartPos()
	s.Phase = PhasePlaying
}

// StartPos 返回玩家起点
func (s *State) StartPos() types.Vec2 {
	return types.Vec2{X: s.cfg.StartX, Y: s.cfg.StartY}
}

// IsGameOver 返回游戏是否已结束
func (s *State) IsGameOver() bool {
	return s.Phase == PhaseGameOver
}

// Width 返回画布宽度
func (s *State) Width() float64 {
	return float64(s.cfg.Canvas.Width)
}

// Height 返回画布高度
func (s *State) Height() float64 {
	return float64(s.cfg.Canvas.Height)
}

// Factory 返回实体工厂
func (s *State) Factory() *entities.Factory {
	return s.factory
}

func (s *State) gameOver() {
	if s.Phase == PhaseGameOver {
		return
	}
	s.Phase = PhaseGameOver
	log.Printf("[Shooter] Game over: score=%d kills=%d time=%.1fs", s.Score, s.Kills, s.GameTime)
	if s.OnGameOver != nil {
		s.OnGameOver(s.Score)
	}
}
