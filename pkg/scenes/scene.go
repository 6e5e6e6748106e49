package scenes

import (
	"context"
	"fmt"

	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/game"
	"github.com/decker502/canvasdemos/pkg/input"
	"github.com/decker502/canvasdemos/pkg/shooter"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 演示名称，同时也是资源清单中的分组名
const (
	DemoShooter = "shooter"
	DemoWombat  = "wombat"
)

// Env 各场景共享的依赖
type Env struct {
	Ctx       context.Context
	Config    *config.GameConfig
	Resources *game.ResourceManager
	Manager   *game.SceneManager
	Tracker   *input.Tracker
	Rand      shooter.Rand
}

// NewSceneFactory 返回按演示名称创建场景的工厂
//
// 每个演示先进入加载场景，资源分组加载结束后切换到演示场景。
func NewSceneFactory(env *Env) game.SceneFactory {
	return func(name string) (game.Scene, error) {
		var (
			build         func() (game.Scene, error)
			width, height int
		)
		switch name {
		case DemoShooter:
			width, height = env.Config.Shooter.Canvas.Width, env.Config.Shooter.Canvas.Height
			build = func() (game.Scene, error) { return NewShooterScene(env) }
		case DemoWombat:
			width, height = env.Config.Wombat.Canvas.Width, env.Config.Wombat.Canvas.Height
			build = func() (game.Scene, error) { return NewWombatScene(env) }
		default:
			return nil, fmt.Errorf("unknown demo %q", name)
		}

		ids, err := env.Resources.Config().GroupIDs(name)
		if err != nil {
			return nil, err
		}
		return NewLoadingScene(env, ids, width, height, build)
	}
}
