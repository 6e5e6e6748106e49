package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/canvasdemos/pkg/input"
	"github.com/decker502/canvasdemos/pkg/render"
	"github.com/decker502/canvasdemos/pkg/shooter"
)

// ShooterScene 射击演示场景
type ShooterScene struct {
	state    *shooter.State
	renderer *render.ShooterRenderer
	tracker  *input.Tracker
	bindings input.Bindings
}

// NewShooterScene 创建射击演示场景
func NewShooterScene(env *Env) (*ShooterScene, error) {
	cfg := env.Config

	state, err := shooter.New(cfg.Shooter, env.Rand)
	if err != nil {
		return nil, fmt.Errorf("failed to create shooter state: %w", err)
	}

	renderer, err := render.NewShooterRenderer(env.Resources, cfg.Shooter.Background, resetHint(cfg.Keys.Reset))
	if err != nil {
		return nil, err
	}

	scene := &ShooterScene{
		state:    state,
		renderer: renderer,
		tracker:  env.Tracker,
		bindings: input.BindingsFromConfig(cfg.Keys),
	}
	state.OnGameOver = func(score int) {
		scene.renderer.Overlay().Show()
	}

	log.Printf("[ShooterScene] Started: canvas %dx%d", cfg.Shooter.Canvas.Width, cfg.Shooter.Canvas.Height)
	return scene, nil
}

// resetHint 返回游戏结束时的提示文字
func resetHint(keys []ebiten.Key) string {
	if len(keys) == 0 {
		return "GAME OVER"
	}
	return fmt.Sprintf("press %s to play again", keys[0])
}

// Update 读取输入快照并推进游戏
//
// 游戏结束时按下重置键开始新的一局。
func (s *ShooterScene) Update(deltaTime float64) {
	in := s.tracker.Snapshot(s.bindings)

	if s.state.IsGameOver() && in.Held(input.ActionReset) {
		log.Printf("[ShooterScene] Restarting after score %d", s.state.Score)
		s.state.Reset()
		s.renderer.Overlay().Hide()
	}

	s.state.Update(deltaTime, in)
	s.renderer.Update(deltaTime)
}

// Draw 绘制游戏画面
func (s *ShooterScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.state)
}

// Size 返回画布尺寸
func (s *ShooterScene) Size() (int, int) {
	return int(s.state.Width()), int(s.state.Height())
}

// State 返回游戏状态
func (s *ShooterScene) State() *shooter.State {
	return s.state
}
