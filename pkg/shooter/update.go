package shooter

import (
	"math"

	"github.com/decker502/canvasdemos/pkg/entities"
	"github.com/decker502/canvasdemos/pkg/input"
	"github.com/decker502/canvasdemos/pkg/types"
)

// Update 推进一帧
//
// 顺序：累计时间 → 处理输入 → 移动子弹和敌人 → 随机生成敌人 →
// 限制玩家位置 → 碰撞检测。
//
// 参数:
//   - dt: 自上一帧以来经过的时间（秒）
//   - in: 本帧的输入快照
func (s *State) Update(dt float64, in input.State) {
	if dt < 0 {
		dt = 0
	}
	s.GameTime += dt

	s.handleInput(dt, in)
	s.updateEntities(dt)
	s.spawnEnemies()
	s.clampPlayer()
	s.checkCollisions()
}

func (s *State) handleInput(dt float64, in input.State) {
	step := s.cfg.PlayerSpeed * dt
	if in.Held(input.ActionDown) {
		s.Player.Pos.Y += step
	}
	if in.Held(input.ActionUp) {
		s.Player.Pos.Y -= step
	}
	if in.Held(input.ActionLeft) {
		s.Player.Pos.X -= step
	}
	if in.Held(input.ActionRight) {
		s.Player.Pos.X += step
	}

	if in.Held(input.ActionFire) && s.CanFire() {
		s.Bullets = append(s.Bullets, s.factory.NewBullet(s.Player.Pos, entities.DirUp))
		s.LastFire = s.GameTime
	}
}

// CanFire 返回当前是否允许开火（游戏未结束且冷却已过）
func (s *State) CanFire() bool {
	return !s.IsGameOver() && s.GameTime-s.LastFire >= s.cfg.FireCooldown
}

// updateEntities 移动子弹和敌人，并移除离开画布的实体
func (s *State) updateEntities(dt float64) {
	w, h := s.Width(), s.Height()

	bullets := make([]*entities.Entity, 0, len(s.Bullets))
	for _, b := range s.Bullets {
		b.Pos = b.Pos.Add(b.Dir.Unit().Scale(s.cfg.BulletSpeed * dt))
		if types.Contains(w, h, b.Pos) {
			bullets = append(bullets, b)
		}
	}
	s.Bullets = bullets

	enemies := make([]*entities.Entity, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		e.Pos.Y += s.cfg.EnemySpeed * dt
		e.Sprite.Update(dt)
		if e.Pos.Y+e.Sprite.Size.Y <= h {
			enemies = append(enemies, e)
		}
	}
	s.Enemies = enemies

	s.Player.Sprite.Update(dt)
}

// SpawnProbability 返回本帧生成敌人的概率：1 - spawnBase^gameTime
//
// 随游戏时间增长趋近于 1。
func (s *State) SpawnProbability() float64 {
	return 1 - math.Pow(s.cfg.SpawnBase, s.GameTime)
}

func (s *State) spawnEnemies() {
	if s.rng.Float64() < s.SpawnProbability() {
		s.Enemies = append(s.Enemies, s.factory.NewEnemy(types.Vec2{
			X: s.rng.Float64() * s.Width(),
			Y: 0,
		}))
	}
}

// clampPlayer 将玩家限制在画布内
func (s *State) clampPlayer() {
	size := s.Player.Sprite.Size
	s.Player.Pos.X = types.Clamp(s.Player.Pos.X, 0, s.Width()-size.X)
	s.Player.Pos.Y = types.Clamp(s.Player.Pos.Y, 0, s.Height()-size.Y)
}
