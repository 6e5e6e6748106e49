package shooter

import (
	"github.com/decker502/canvasdemos/pkg/entities"
	"github.com/decker502/canvasdemos/pkg/types"
)

// checkCollisions 处理敌人与子弹、敌人与玩家的碰撞
//
// 每个敌人依次与所有子弹检测，第一颗命中的子弹与该敌人一起移除并加分，
// 不再检测其余子弹。未被击毁的敌人再与玩家检测，任何重叠都结束游戏。
// 复杂度 O(敌人数 × 子弹数)。
func (s *State) checkCollisions() {
	playerBox := s.Player.Box()
	hit := make([]bool, len(s.Bullets))

	enemies := make([]*entities.Entity, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		enemyBox := e.Box()

		destroyed := false
		for j, b := range s.Bullets {
			if hit[j] {
				continue
			}
			if types.Collides(enemyBox, b.Box()) {
				hit[j] = true
				destroyed = true
				s.Score += s.cfg.ScorePerKill
				s.Kills++
				break
			}
		}
		if destroyed {
			continue
		}

		enemies = append(enemies, e)
		if types.Collides(enemyBox, playerBox) {
			s.gameOver()
		}
	}
	s.Enemies = enemies

	if len(hit) == 0 {
		return
	}
	bullets := make([]*entities.Entity, 0, len(s.Bullets))
	for j, b := range s.Bullets {
		if !hit[j] {
			bullets = append(bullets, b)
		}
	}
	s.Bullets = bullets
}
