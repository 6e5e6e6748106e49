package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/canvasdemos/pkg/game"
	"github.com/decker502/canvasdemos/pkg/render"
)

// LoadingScene represents the loading screen shown before a demo starts.
// It displays a progress bar while the demo's images decode in the background,
// then switches to the demo scene.
type LoadingScene struct {
	sceneManager *game.SceneManager
	loader       *game.Loader
	renderer     *render.LoadingRenderer

	width, height int
	next          func() (game.Scene, error)

	progress float64 // Loading progress (0.0 - 1.0)
	err      error   // 创建下一个场景失败时的错误
}

// NewLoadingScene creates a loading scene and starts loading the given images.
//
// 参数:
//   - env: 共享依赖
//   - ids: 要加载的图片 ID
//   - width, height: 画布尺寸（与下一个场景一致）
//   - next: 加载结束后创建下一个场景
func NewLoadingScene(env *Env, ids []string, width, height int, next func() (game.Scene, error)) (*LoadingScene, error) {
	renderer, err := render.NewLoadingRenderer()
	if err != nil {
		return nil, err
	}

	assets := env.Config.Assets
	scene := &LoadingScene{
		sceneManager: env.Manager,
		loader:       game.NewLoader(env.Resources, assets.Workers, assets.LoadTimeout),
		renderer:     renderer,
		width:        width,
		height:       height,
		next:         next,
	}
	scene.loader.OnReady = scene.onReady

	if err := scene.loader.Start(env.Ctx, ids); err != nil {
		return nil, fmt.Errorf("failed to start loading: %w", err)
	}
	return scene, nil
}

// onReady 全部图片结束加载后切换场景
// 加载失败只记录日志，对应图层在演示中被跳过
func (s *LoadingScene) onReady() {
	if err := s.loader.Err(); err != nil {
		log.Printf("[LoadingScene] Some images failed to load: %v", err)
	}

	scene, err := s.next()
	if err != nil {
		s.err = err
		log.Printf("[LoadingScene] Failed to create scene: %v", err)
		return
	}
	if s.sceneManager != nil {
		s.sceneManager.SwitchTo(scene)
	}
}

// Update 转交已解码的图片并更新进度
func (s *LoadingScene) Update(deltaTime float64) {
	s.loader.Poll()
	s.progress = s.loader.Progress()
}

// Draw 绘制进度条
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.progress)
}

// Size 返回画布尺寸
func (s *LoadingScene) Size() (int, int) {
	return s.width, s.height
}

// Progress 返回加载进度
func (s *LoadingScene) Progress() float64 {
	return s.progress
}

// Err 返回创建下一个场景时的错误
func (s *LoadingScene) Err() error {
	return s.err
}
