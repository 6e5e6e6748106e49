package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/canvasdemos/pkg/embedded"
)

// DefaultConfigPath 内置配置文件路径（嵌入资源）
const DefaultConfigPath = "data/config.yaml"

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig 两个演示的全部可调参数
//
// 配置文件位置: data/config.yaml
type GameConfig struct {
	Loop    LoopConfig    `yaml:"loop"`
	Shooter ShooterConfig `yaml:"shooter"`
	Wombat  WombatConfig  `yaml:"wombat"`
	Keys    KeyConfig     `yaml:"keys"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// LoopConfig 帧循环配置
type LoopConfig struct {
	// VSync 为 true 时每个显示帧更新一次（ebiten.SyncWithFPS）
	VSync bool `yaml:"vsync"`
	// FallbackTPS 无垂直同步时的固定更新频率
	FallbackTPS int `yaml:"fallbackTPS"`
	// MaxDelta 单帧最大时间步长（秒），0 表示不限制
	MaxDelta float64 `yaml:"maxDelta"`
}

// CanvasConfig 画布尺寸（像素）
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpriteConfig 精灵模板：图集中的源矩形和帧动画参数
type SpriteConfig struct {
	Image    string  `yaml:"image"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Speed    float64 `yaml:"speed,omitempty"`
	Frames   []int   `yaml:"frames,omitempty"`
	Vertical bool    `yaml:"vertical,omitempty"`
	Once     bool    `yaml:"once,omitempty"`
}

// ShooterConfig 射击演示参数
type ShooterConfig struct {
	Canvas       CanvasConfig `yaml:"canvas"`
	PlayerSpeed  float64      `yaml:"playerSpeed"`  // 像素/秒
	BulletSpeed  float64      `yaml:"bulletSpeed"`  // 像素/秒
	EnemySpeed   float64      `yaml:"enemySpeed"`   // 像素/秒
	FireCooldown float64      `yaml:"fireCooldown"` // 秒
	ScorePerKill int          `yaml:"scorePerKill"`
	// SpawnBase 每帧生成概率为 1 - SpawnBase^gameTime
	SpawnBase  float64      `yaml:"spawnBase"`
	StartX     float64      `yaml:"startX"`
	StartY     float64      `yaml:"startY"`
	Background string       `yaml:"background"`
	Player     SpriteConfig `yaml:"player"`
	Enemy      SpriteConfig `yaml:"enemy"`
	Bullet     SpriteConfig `yaml:"bullet"`
}

// WombatConfig 移动演示参数
type WombatConfig struct {
	Canvas          CanvasConfig `yaml:"canvas"`
	Speed           float64      `yaml:"speed"`
	StartX          float64      `yaml:"startX"`
	StartY          float64      `yaml:"startY"`
	ClearBeforeDraw bool         `yaml:"clearBeforeDraw"`
	Background      bool         `yaml:"background"`
	LeftImage       string       `yaml:"leftImage"`
	RightImage      string       `yaml:"rightImage"`
	BackgroundImage string       `yaml:"backgroundImage"`
}

// KeyConfig 按键绑定，键名由 ebiten.Key.UnmarshalText 解析（如 "ArrowUp"、"W"、"Space"）
type KeyConfig struct {
	Up    []ebiten.Key `yaml:"up"`
	Down  []ebiten.Key `yaml:"down"`
	Left  []ebiten.Key `yaml:"left"`
	Right []ebiten.Key `yaml:"right"`
	Fire  []ebiten.Key `yaml:"fire"`
	Reset []ebiten.Key `yaml:"reset"`
}

// AssetsConfig 资源加载配置
type AssetsConfig struct {
	Manifest    string        `yaml:"manifest"`
	LoadTimeout time.Duration `yaml:"loadTimeout"`
	Workers     int           `yaml:"workers"`
}

// Default 返回与原版演示一致的默认配置
func Default() *GameConfig {
	return &GameConfig{
		Loop: LoopConfig{VSync: true, FallbackTPS: 60},
		Shooter: ShooterConfig{
			Canvas:       CanvasConfig{Width: 512, Height: 480},
			PlayerSpeed:  200,
			BulletSpeed:  500,
			EnemySpeed:   100,
			FireCooldown: 0.1,
			ScorePerKill: 100,
			SpawnBase:    0.993,
			StartX:       50,
			StartY:       240,
			Background:   "IMAGE_TERRAIN",
			Player:       SpriteConfig{Image: "IMAGE_SPRITES", X: 0, Y: 0, W: 20, H: 43, Speed: 16, Frames: []int{0, 1}},
			Enemy:        SpriteConfig{Image: "IMAGE_SPRITES", X: 0, Y: 43, W: 23, H: 40, Speed: 6, Frames: []int{0, 1, 2, 3, 2, 1}},
			Bullet:       SpriteConfig{Image: "IMAGE_SPRITES", X: 0, Y: 84, W: 4, H: 4},
		},
		Wombat: WombatConfig{
			Canvas:          CanvasConfig{Width: 500, Height: 500},
			Speed:           25,
			StartX:          25,
			StartY:          450,
			ClearBeforeDraw: true,
			Background:      true,
			LeftImage:       "IMAGE_WOMBAT_LEFT",
			RightImage:      "IMAGE_WOMBAT_RIGHT",
			BackgroundImage: "IMAGE_BACKGROUND",
		},
		Keys: KeyConfig{
			Up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
			Down:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
			Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
			Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
			Fire:  []ebiten.Key{ebiten.KeySpace},
			Reset: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR},
		},
		Assets: AssetsConfig{
			Manifest:    "data/resources.yaml",
			LoadTimeout: 10 * time.Second,
			Workers:     4,
		},
	}
}

// LoadGameConfig 加载游戏配置
//
// 以 "data/" 开头的路径从嵌入资源读取，其余路径从磁盘读取。
// 文件中缺省的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/config.yaml"）
//
// 返回:
//   - *GameConfig: 校验通过的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Loop.FallbackTPS <= 0 {
		return invalid("loop.fallbackTPS must be > 0, got %d", c.Loop.FallbackTPS)
	}
	if c.Loop.MaxDelta < 0 {
		return invalid("loop.maxDelta must be >= 0, got %.3f", c.Loop.MaxDelta)
	}

	s := c.Shooter
	if err := s.Canvas.validate("shooter.canvas"); err != nil {
		return err
	}
	for name, v := range map[string]float64{
		"playerSpeed": s.PlayerSpeed,
		"bulletSpeed": s.BulletSpeed,
		"enemySpeed":  s.EnemySpeed,
	} {
		if v <= 0 {
			return invalid("shooter.%s must be > 0, got %.1f", name, v)
		}
	}
	if s.FireCooldown < 0 {
		return invalid("shooter.fireCooldown must be >= 0, got %.3f", s.FireCooldown)
	}
	if s.ScorePerKill < 0 {
		return invalid("shooter.scorePerKill must be >= 0, got %d", s.ScorePerKill)
	}
	if s.SpawnBase <= 0 || s.SpawnBase >= 1 {
		return invalid("shooter.spawnBase must be in (0, 1), got %.4f", s.SpawnBase)
	}
	for name, sc := range map[string]SpriteConfig{"player": s.Player, "enemy": s.Enemy, "bullet": s.Bullet} {
		if err := sc.validate("shooter." + name); err != nil {
			return err
		}
	}

	w := c.Wombat
	if err := w.Canvas.validate("wombat.canvas"); err != nil {
		return err
	}
	if w.Speed <= 0 {
		return invalid("wombat.speed must be > 0, got %.1f", w.Speed)
	}
	if w.LeftImage == "" || w.RightImage == "" {
		return invalid("wombat.leftImage and wombat.rightImage are required")
	}

	for name, keys := range map[string][]ebiten.Key{
		"up": c.Keys.Up, "down": c.Keys.Down, "left": c.Keys.Left,
		"right": c.Keys.Right, "fire": c.Keys.Fire, "reset": c.Keys.Reset,
	} {
		if len(keys) == 0 {
			return invalid("keys.%s has no bindings", name)
		}
	}

	if c.Assets.Manifest == "" {
		return invalid("assets.manifest is required")
	}
	if c.Assets.LoadTimeout < 0 {
		return invalid("assets.loadTimeout must be >= 0, got %s", c.Assets.LoadTimeout)
	}
	return nil
}

func (c CanvasConfig) validate(field string) error {
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("%s size must be positive, got %dx%d", field, c.Width, c.Height)
	}
	return nil
}

func (s SpriteConfig) validate(field string) error {
	if s.Image == "" {
		return invalid("%s.image is required", field)
	}
	if s.W <= 0 || s.H <= 0 {
		return invalid("%s size must be positive, got %.0fx%.0f", field, s.W, s.H)
	}
	if s.Speed < 0 {
		return invalid("%s.speed must be >= 0, got %.1f", field, s.Speed)
	}
	for _, f := range s.Frames {
		if f < 0 {
			return invalid("%s.frames contains negative frame %d", field, f)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
