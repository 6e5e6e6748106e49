package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按名称创建演示场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Load 通过工厂函数创建并切换到指定场景
// 创建失败时保持当前场景不变
func (sm *SceneManager) Load(name string) {
	log.Printf("[SceneManager] Loading scene: %s", name)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: SceneFactory not set")
		return
	}

	scene, err := sm.sceneFactory(name)
	if err != nil {
		log.Printf("[SceneManager] Error: cannot create scene %s: %v", name, err)
		return
	}
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] Switched to scene: %s", name)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Size 返回当前场景的画布尺寸，场景未实现 Sized 时 ok 为 false
func (sm *SceneManager) Size() (width, height int, ok bool) {
	if s, isSized := sm.currentScene.(Sized); isSized {
		width, height = s.Size()
		return width, height, true
	}
	return 0, 0, false
}
