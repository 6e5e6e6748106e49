package entities

import (
	"fmt"

	"github.com/decker502/canvasdemos/pkg/components"
	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/types"
)

// Factory 根据配置中的精灵模板创建实体
//
// 每个实体拥有独立的精灵副本（动画状态互不影响）。
type Factory struct {
	player *components.Sprite
	enemy  *components.Sprite
	bullet *components.Sprite
}

// SpriteFromConfig 将精灵配置转换为精灵模板
func SpriteFromConfig(sc config.SpriteConfig) *components.Sprite {
	return &components.Sprite{
		ImageID:  sc.Image,
		Offset:   types.Vec2{X: sc.X, Y: sc.Y},
		Size:     types.Vec2{X: sc.W, Y: sc.H},
		Speed:    sc.Speed,
		Frames:   append([]int(nil), sc.Frames...),
		Vertical: sc.Vertical,
		Once:     sc.Once,
	}
}

// NewFactory 创建实体工厂
//
// 参数:
//   - sc: 射击演示配置（提供玩家、敌人、子弹的精灵模板）
//
// 返回:
//   - *Factory: 实体工厂
//   - error: 精灵尺寸无效时返回错误
func NewFactory(sc config.ShooterConfig) (*Factory, error) {
	f := &Factory{
		player: SpriteFromConfig(sc.Player),
		enemy:  SpriteFromConfig(sc.Enemy),
		bullet: SpriteFromConfig(sc.Bullet),
	}
	for name, s := range map[string]*components.Sprite{"player": f.player, "enemy": f.enemy, "bullet": f.bullet} {
		if s.Size.X <= 0 || s.Size.Y <= 0 {
			return nil, fmt.Errorf("%s sprite has invalid size %s", name, s.Size)
		}
	}
	return f, nil
}

// NewPlayer 在指定位置创建玩家
func (f *Factory) NewPlayer(pos types.Vec2) *Entity {
	return &Entity{Pos: pos, Sprite: f.player.Clone()}
}

// NewEnemy 在指定位置创建敌人
func (f *Factory) NewEnemy(pos types.Vec2) *Entity {
	return &Entity{Pos: pos, Sprite: f.enemy.Clone()}
}

// NewBullet 在指定位置创建子弹
func (f *Factory) NewBullet(pos types.Vec2, dir Direction) *Entity {
	return &Entity{Pos: pos, Sprite: f.bullet.Clone(), Dir: dir}
}

// EnemySize 返回敌人尺寸（用于生成位置计算）
func (f *Factory) EnemySize() types.Vec2 {
	return f.enemy.Size
}
