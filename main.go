package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/canvasdemos/pkg/app"
	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	demo       = flag.String("demo", "shooter", "要运行的演示: shooter 或 wombat")
	configPath = flag.String("config", config.DefaultConfigPath, "游戏配置文件路径（嵌入资源或磁盘文件）")
	seed       = flag.Uint64("seed", 0, "敌人生成的随机种子，0 表示使用当前时间")
)

var windowTitles = map[string]string{
	"shooter": "Canvas Shooter",
	"wombat":  "Wombat",
}

func main() {
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Demo:       *demo,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitles[*demo])

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
