// check_assets 检查资源清单与游戏配置是否一致
//
// 检查内容:
//   - 清单中每张图片都存在并能解码
//   - 占位图尺寸与实际图片尺寸一致
//   - 配置中引用的图片 ID 都在清单中
//   - 精灵动画的每一帧都在图集范围内
//
// 用法:
//
//	go run ./cmd/check_assets -root .
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/decker502/canvasdemos/pkg/components"
	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/entities"
	"github.com/decker502/canvasdemos/pkg/game"
)

var (
	root       = flag.String("root", ".", "项目根目录（包含 assets/ 和 data/）")
	configPath = flag.String("config", config.DefaultConfigPath, "游戏配置文件路径（相对 root）")
)

func main() {
	flag.Parse()

	fsys := os.DirFS(*root)
	report, err := check(fsys, *configPath)
	for _, line := range report {
		fmt.Println(line)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n检查失败:\n%v\n", err)
		os.Exit(1)
	}
	fmt.Println("\n✅ 所有资源检查通过")
}

// check 执行全部检查，返回逐项报告和合并后的错误
func check(fsys fs.FS, cfgPath string) ([]string, error) {
	data, err := fs.ReadFile(fsys, cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, err
	}
	manifest, err := game.LoadResourceConfig(fsys, cfg.Assets.Manifest)
	if err != nil {
		return nil, err
	}
	rm := game.NewResourceManager(fsys, manifest)

	var (
		report []string
		errs   []error
		sizes  = make(map[string]image.Point)
	)

	for _, group := range manifest.GroupNames() {
		for _, res := range manifest.Groups[group].Images {
			resolved, _ := rm.Resolve(res.ID)
			img, err := game.DecodeImage(fsys, resolved.Path)
			if err != nil {
				errs = append(errs, fmt.Errorf("[%s] %s: %w", group, res.ID, err))
				continue
			}
			size := img.Bounds().Size()
			sizes[res.ID] = size
			report = append(report, fmt.Sprintf("[%s] %-20s %-28s %dx%d", group, res.ID, resolved.Path, size.X, size.Y))

			if p := res.Placeholder; p != nil && (p.W != size.X || p.H != size.Y) {
				errs = append(errs, fmt.Errorf("[%s] %s: placeholder %dx%d does not match image %dx%d",
					group, res.ID, p.W, p.H, size.X, size.Y))
			}
		}
	}

	refs := map[string]string{
		"shooter.background":     cfg.Shooter.Background,
		"wombat.leftImage":       cfg.Wombat.LeftImage,
		"wombat.rightImage":      cfg.Wombat.RightImage,
		"wombat.backgroundImage": cfg.Wombat.BackgroundImage,
		"shooter.player.image":   cfg.Shooter.Player.Image,
		"shooter.enemy.image":    cfg.Shooter.Enemy.Image,
		"shooter.bullet.image":   cfg.Shooter.Bullet.Image,
	}
	for field, id := range refs {
		if _, err := rm.Resolve(id); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	sprites := map[string]config.SpriteConfig{
		"player": cfg.Shooter.Player,
		"enemy":  cfg.Shooter.Enemy,
		"bullet": cfg.Shooter.Bullet,
	}
	for name, sc := range sprites {
		size, ok := sizes[sc.Image]
		if !ok {
			continue
		}
		if err := checkFrames(entities.SpriteFromConfig(sc), size); err != nil {
			errs = append(errs, fmt.Errorf("%s sprite: %w", name, err))
		}
	}

	return report, errors.Join(errs...)
}

// checkFrames 检查精灵每一帧都在图集范围内
func checkFrames(sprite *components.Sprite, sheet image.Point) error {
	bounds := image.Rectangle{Max: sheet}
	frames := sprite.Frames
	if len(frames) == 0 {
		frames = []int{0}
	}
	for _, n := range frames {
		f := sprite.FrameAt(n)
		r := image.Rect(int(f.Pos.X), int(f.Pos.Y), int(f.Right()), int(f.Bottom()))
		if !r.In(bounds) {
			return fmt.Errorf("frame %d %v outside sheet %v", n, r, bounds)
		}
	}
	return nil
}
