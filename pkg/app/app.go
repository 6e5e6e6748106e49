// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：读取配置和资源清单、
// 选择演示、驱动场景管理器，并实现 ebiten.Game 接口。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/embedded"
	"github.com/decker502/canvasdemos/pkg/game"
	"github.com/decker502/canvasdemos/pkg/input"
	"github.com/decker502/canvasdemos/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Demo 要运行的演示（"shooter" 或 "wombat"）
	Demo string
	// ConfigPath 游戏配置文件路径，为空时使用 config.DefaultConfigPath
	ConfigPath string
	// Seed 敌人生成的随机种子，0 表示使用当前时间
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	tracker      *input.Tracker
	clock        *game.Clock
	gameConfig   *config.GameConfig
	demo         string
	cancel       context.CancelFunc
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	focused                  bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	gameConfig, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s", configPath)

	manifest, err := game.LoadResourceConfig(embedded.FS(), gameConfig.Assets.Manifest)
	if err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	resourceManager := game.NewResourceManager(embedded.FS(), manifest)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Random seed: %d", seed)

	ctx, cancel := context.WithCancel(context.Background())
	sceneManager := game.NewSceneManager()
	tracker := input.NewTracker()
	factory := scenes.NewSceneFactory(&scenes.Env{
		Ctx:       ctx,
		Config:    gameConfig,
		Resources: resourceManager,
		Manager:   sceneManager,
		Tracker:   tracker,
		Rand:      rand.New(rand.NewPCG(seed, seed>>1|1)),
	})
	sceneManager.SetSceneFactory(factory)

	demo := cfg.Demo
	if demo == "" {
		demo = scenes.DemoShooter
	}
	first, err := factory(demo)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("无法创建场景 %s: %w", demo, err)
	}
	sceneManager.SwitchTo(first)
	log.Printf("[App] Starting demo: %s", demo)

	applyLoopConfig(gameConfig.Loop)

	return &App{
		sceneManager: sceneManager,
		tracker:      tracker,
		clock:        game.NewClock(gameConfig.Loop.MaxDelta),
		gameConfig:   gameConfig,
		demo:         demo,
		cancel:       cancel,
		verbose:      cfg.Verbose,
		focused:      true,
	}, nil
}

// applyLoopConfig 设置 Update 的调用频率
//
// vsync 时每个显示帧调用一次 Update；否则使用固定 TPS。
// 两种情况下帧时间都按墙钟计算。
func applyLoopConfig(lc config.LoopConfig) {
	if lc.VSync {
		ebiten.SetVsyncEnabled(true)
		ebiten.SetTPS(ebiten.SyncWithFPS)
		log.Printf("[App] Loop: synced with display refresh")
		return
	}
	ebiten.SetTPS(lc.FallbackTPS)
	log.Printf("[App] Loop: fixed %d ticks per second", lc.FallbackTPS)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 失焦时收不到松开事件，清空按键避免卡住
	focused := ebiten.IsFocused()
	if !focused && a.focused {
		a.tracker.Reset()
	}
	a.focused = focused

	a.tracker.Poll()
	a.sceneManager.Update(a.clock.Tick())
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h, ok := a.sceneManager.Size(); ok {
		return w, h
	}
	return a.WindowSize()
}

// WindowSize 返回当前演示的画布尺寸
func (a *App) WindowSize() (int, int) {
	return WindowSize(a.gameConfig, a.demo)
}

// WindowSize 返回指定演示的画布尺寸
func WindowSize(cfg *config.GameConfig, demo string) (int, int) {
	if demo == scenes.DemoWombat {
		return cfg.Wombat.Canvas.Width, cfg.Wombat.Canvas.Height
	}
	return cfg.Shooter.Canvas.Width, cfg.Shooter.Canvas.Height
}

// Close 取消尚未完成的后台加载
func (a *App) Close() {
	a.cancel()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
