package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., loading screen, shooter, wombat demo).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Sized 是一个可选接口，场景通过它声明逻辑画布尺寸
//
// App.Layout 会优先使用当前场景的尺寸。
type Sized interface {
	Size() (width, height int)
}
