package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/canvasdemos/pkg/input"
	"github.com/decker502/canvasdemos/pkg/render"
	"github.com/decker502/canvasdemos/pkg/wombat"
)

// WombatScene 精灵移动演示场景
type WombatScene struct {
	actor    *wombat.Actor
	renderer *render.WombatRenderer
	tracker  *input.Tracker
	bindings input.Bindings

	width, height int
}

// NewWombatScene 创建移动演示场景
func NewWombatScene(env *Env) (*WombatScene, error) {
	wc := env.Config.Wombat
	opts := wombat.OptionsFromConfig(wc)

	log.Printf("[WombatScene] Started: canvas %dx%d, clear=%v background=%v",
		wc.Canvas.Width, wc.Canvas.Height, opts.ClearBeforeDraw, opts.Background)

	return &WombatScene{
		actor:    wombat.New(wc),
		renderer: render.NewWombatRenderer(env.Resources, wc.BackgroundImage, wc.Canvas.Width, wc.Canvas.Height, opts),
		tracker:  env.Tracker,
		bindings: input.BindingsFromConfig(env.Config.Keys),
		width:    wc.Canvas.Width,
		height:   wc.Canvas.Height,
	}, nil
}

// Update 按输入移动角色
func (s *WombatScene) Update(deltaTime float64) {
	s.actor.Update(deltaTime, s.tracker.Snapshot(s.bindings))
}

// Draw 绘制背景和角色
func (s *WombatScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.actor)
}

// Size 返回画布尺寸
func (s *WombatScene) Size() (int, int) {
	return s.width, s.height
}

// Actor 返回角色
func (s *WombatScene) Actor() *wombat.Actor {
	return s.actor
}
