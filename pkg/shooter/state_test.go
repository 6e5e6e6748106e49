package shooter

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/entities"
	"github.com/decker502/canvasdemos/pkg/input"
	"github.com/decker502/canvasdemos/pkg/types"
)

// stubRand 按顺序循环返回预设值
type stubRand struct {
	vals []float64
	i    int
}

func (r *stubRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// neverSpawn 始终返回接近 1 的值，短时间内不会生成敌人
var neverSpawn = &stubRand{vals: []float64{0.999999}}

func newTestState(t *testing.T, rng Rand) *State {
	t.Helper()
	s, err := New(config.Default().Shooter, rng)
	require.NoError(t, err)
	return s
}

func TestNew_InitialState(t *testing.T) {
	s := newTestState(t, neverSpawn)

	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0.0, s.GameTime)
	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Bullets)
	assert.Equal(t, types.Vec2{X: 50, Y: 240}, s.Player.Pos)
	assert.True(t, s.CanFire())
}

func TestNew_NilRand(t *testing.T) {
	_, err := New(config.Default().Shooter, nil)
	assert.Error(t, err)
}

// TestCollision_EnemyAndBullet 敌人(100,0) 23x40 与子弹(100,0) 4x4 一次碰撞检测后同时移除，得分 +100
func TestCollision_EnemyAndBullet(t *testing.T) {
	s := newTestState(t, neverSpawn)
	f := s.Factory()
	s.Enemies = append(s.Enemies, f.NewEnemy(types.Vec2{X: 100, Y: 0}))
	s.Bullets = append(s.Bullets, f.NewBullet(types.Vec2{X: 100, Y: 0}, entities.DirUp))

	s.checkCollisions()

	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Bullets)
	assert.Equal(t, 100, s.Score)
	assert.Equal(t, 1, s.Kills)
	assert.Equal(t, PhasePlaying, s.Phase)
}

// TestUpdate_ZeroDeltaCollision 同一场景通过 Update(0) 驱动
func TestUpdate_ZeroDeltaCollision(t *testing.T) {
	s := newTestState(t, &stubRand{vals: []float64{0}})
	f := s.Factory()
	s.Enemies = append(s.Enemies, f.NewEnemy(types.Vec2{X: 100, Y: 0}))
	s.Bullets = append(s.Bullets, f.NewBullet(types.Vec2{X: 100, Y: 0}, entities.DirUp))

	s.Update(0, input.State{})

	// 时间为 0 时生成概率为 0，即使随机数为 0 也不会生成敌人
	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Bullets)
	assert.Equal(t, 100, s.Score)
}

func TestCollision_OneBulletKillsOneEnemy(t *testing.T) {
	s := newTestState(t, neverSpawn)
	f := s.Factory()
	s.Enemies = append(s.Enemies,
		f.NewEnemy(types.Vec2{X: 200, Y: 10}),
		f.NewEnemy(types.Vec2{X: 202, Y: 12}),
	)
	s.Bullets = append(s.Bullets, f.NewBullet(types.Vec2{X: 205, Y: 20}, entities.DirUp))

	s.checkCollisions()

	require.Len(t, s.Enemies, 1)
	assert.Equal(t, 202.0, s.Enemies[0].Pos.X, "first enemy in order takes the hit")
	assert.Empty(t, s.Bullets)
	assert.Equal(t, 100, s.Score)
}

func TestCollision_FirstMatchingBulletOnly(t *testing.T) {
	s := newTestState(t, neverSpawn)
	f := s.Factory()
	s.Enemies = append(s.Enemies, f.NewEnemy(types.Vec2{X: 300, Y: 100}))
	s.Bullets = append(s.Bullets,
		f.NewBullet(types.Vec2{X: 10, Y: 10}, entities.DirUp),
		f.NewBullet(types.Vec2{X: 305, Y: 110}, entities.DirUp),
		f.NewBullet(types.Vec2{X: 310, Y: 120}, entities.DirUp),
	)

	s.checkCollisions()

	assert.Empty(t, s.Enemies)
	require.Len(t, s.Bullets, 2)
	assert.Equal(t, 10.0, s.Bullets[0].Pos.X)
	assert.Equal(t, 310.0, s.Bullets[1].Pos.X)
	assert.Equal(t, 100, s.Score)
}

// TestGameOver_PlayerHit 玩家与敌人重叠进入 GameOver
func TestGameOver_PlayerHit(t *testing.T) {
	s := newTestState(t, neverSpawn)
	calls := 0
	s.OnGameOver = func(score int) { calls++ }

	s.Enemies = append(s.Enemies, s.Factory().NewEnemy(s.Player.Pos))
	s.Update(0, input.State{})

	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.True(t, s.IsGameOver())
	assert.Equal(t, 1, calls)

	// 后续帧保持 GameOver，回调不重复触发
	s.Update(0.016, input.State{})
	assert.True(t, s.IsGameOver())
	assert.Equal(t, 1, calls)
}

func TestGameOver_DestroyedEnemyDoesNotEndGame(t *testing.T) {
	s := newTestState(t, neverSpawn)
	f := s.Factory()
	s.Enemies = append(s.Enemies, f.NewEnemy(s.Player.Pos))
	s.Bullets = append(s.Bullets, f.NewBullet(s.Player.Pos, entities.DirUp))

	s.checkCollisions()

	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 100, s.Score)
}

func TestGameOver_FiringSuppressedMovementAllowed(t *testing.T) {
	s := newTestState(t, neverSpawn)
	s.Enemies = append(s.Enemies, s.Factory().NewEnemy(s.Player.Pos))
	s.Update(0, input.State{})
	require.True(t, s.IsGameOver())
	s.Enemies = nil

	x := s.Player.Pos.X
	s.Update(0.5, input.NewState(input.ActionFire, input.ActionRight))

	assert.Empty(t, s.Bullets, "firing is gated by game over")
	assert.False(t, s.CanFire())
	assert.InDelta(t, x+100, s.Player.Pos.X, 1e-9, "movement still applies while game over")
}

// TestReset_AfterGameOver 重置后恢复初始状态
func TestReset_AfterGameOver(t *testing.T) {
	s := newTestState(t, neverSpawn)
	f := s.Factory()

	s.Update(0.01, input.NewState(input.ActionFire, input.ActionDown))
	s.Score = 700
	s.Enemies = append(s.Enemies, f.NewEnemy(s.Player.Pos), f.NewEnemy(types.Vec2{X: 400, Y: 0}))
	s.Update(0, input.State{})
	require.True(t, s.IsGameOver())
	require.NotEmpty(t, s.Bullets)

	s.Reset()

	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0.0, s.GameTime)
	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Bullets)
	assert.Equal(t, s.StartPos(), s.Player.Pos)
	assert.True(t, s.CanFire(), "cooldown re-armed after reset")
}

// TestClampPlayer_Property 任意时间步长和输入下玩家始终在画布内
func TestClampPlayer_Property(t *testing.T) {
	s := newTestState(t, neverSpawn)
	r := rand.New(rand.NewPCG(42, 7))
	actions := []input.Action{input.ActionUp, input.ActionDown, input.ActionLeft, input.ActionRight}

	maxX := s.Width() - s.Player.Sprite.Size.X
	maxY := s.Height() - s.Player.Sprite.Size.Y

	for i := 0; i < 2000; i++ {
		var held []input.Action
		for _, a := range actions {
			if r.IntN(2) == 0 {
				held = append(held, a)
			}
		}
		dt := r.Float64() * 3
		if i%50 == 0 {
			dt = 0
		}

		s.Update(dt, input.NewState(held...))
		s.Enemies = nil
		s.GameTime = 0

		p := s.Player.Pos
		if p.X < 0 || p.X > maxX || p.Y < 0 || p.Y > maxY {
			t.Fatalf("step %d: player out of bounds at %s (dt=%.3f)", i, p, dt)
		}
	}
}

// TestFireCooldown_Property 按住开火时相邻两发子弹的间隔不小于冷却时间
func TestFireCooldown_Property(t *testing.T) {
	cooldown := config.Default().Shooter.FireCooldown
	steps := [][]float64{
		{0.016},
		{0.033},
		{0.1},
		{0.05, 0.07, 0.001, 0.2, 0.099},
		{0.25},
	}

	for _, pattern := range steps {
		s := newTestState(t, neverSpawn)
		var shots []float64

		for i := 0; i < 300; i++ {
			dt := pattern[i%len(pattern)]
			before := s.LastFire
			s.Update(dt, input.NewState(input.ActionFire))
			if s.LastFire != before {
				shots = append(shots, s.LastFire)
			}
		}

		require.NotEmpty(t, shots)
		for i := 1; i < len(shots); i++ {
			if gap := shots[i] - shots[i-1]; gap < cooldown-1e-9 {
				t.Fatalf("pattern %v: shots %d and %d only %.4fs apart", pattern, i-1, i, gap)
			}
		}
	}
}

func TestFire_SpawnsBulletAtPlayer(t *testing.T) {
	s := newTestState(t, neverSpawn)

	s.Update(0, input.NewState(input.ActionFire))

	require.Len(t, s.Bullets, 1)
	assert.Equal(t, s.Player.Pos, s.Bullets[0].Pos)
	assert.Equal(t, entities.DirUp, s.Bullets[0].Dir)

	// 冷却期内不会再次开火
	s.Update(0.05, input.NewState(input.ActionFire))
	assert.Len(t, s.Bullets, 1)

	s.Update(0.05, input.NewState(input.ActionFire))
	assert.Len(t, s.Bullets, 2)
}

// TestBullets_CulledOffscreen 离开画布的子弹在下一次更新后被移除
func TestBullets_CulledOffscreen(t *testing.T) {
	s := newTestState(t, neverSpawn)
	f := s.Factory()
	s.Bullets = append(s.Bullets,
		f.NewBullet(types.Vec2{X: 200, Y: 5}, entities.DirUp),
		f.NewBullet(types.Vec2{X: 200, Y: 300}, entities.DirUp),
		f.NewBullet(types.Vec2{X: 3, Y: 300}, entities.DirLeft),
		f.NewBullet(types.Vec2{X: 510, Y: 300}, entities.DirRight),
		f.NewBullet(types.Vec2{X: 100, Y: 478}, entities.DirDown),
	)

	s.Update(0.1, input.State{})

	require.Len(t, s.Bullets, 1)
	assert.Equal(t, types.Vec2{X: 200, Y: 250}, s.Bullets[0].Pos)
	for _, b := range s.Bullets {
		assert.True(t, types.Contains(s.Width(), s.Height(), b.Pos))
	}
}

func TestEnemies_MoveAndCullAtBottom(t *testing.T) {
	s := newTestState(t, neverSpawn)
	f := s.Factory()
	s.Enemies = append(s.Enemies,
		f.NewEnemy(types.Vec2{X: 400, Y: 0}),
		f.NewEnemy(types.Vec2{X: 300, Y: 430}),
	)

	s.Update(0.5, input.State{})

	require.Len(t, s.Enemies, 1)
	assert.Equal(t, 50.0, s.Enemies[0].Pos.Y)
}

func TestSpawnProbability(t *testing.T) {
	s := newTestState(t, neverSpawn)

	assert.Equal(t, 0.0, s.SpawnProbability())

	s.GameTime = 100
	assert.InDelta(t, 1-math.Pow(0.993, 100), s.SpawnProbability(), 1e-12)

	s.GameTime = 10000
	assert.InDelta(t, 1.0, s.SpawnProbability(), 1e-9)
}

func TestSpawnEnemies_UsesRand(t *testing.T) {
	// 第一个值决定是否生成，第二个值决定水平位置
	s := newTestState(t, &stubRand{vals: []float64{0.0, 0.5}})
	s.GameTime = 10

	s.spawnEnemies()

	require.Len(t, s.Enemies, 1)
	assert.Equal(t, types.Vec2{X: 256, Y: 0}, s.Enemies[0].Pos)

	s2 := newTestState(t, &stubRand{vals: []float64{0.9}})
	s2.GameTime = 10
	s2.spawnEnemies()
	assert.Empty(t, s2.Enemies, "0.9 is above 1-0.993^10")
}

// TestScore_MonotonicDuringSession 一局内得分单调不减
func TestScore_MonotonicDuringSession(t *testing.T) {
	s := newTestState(t, rand.New(rand.NewPCG(3, 4)))
	var in input.State

	last := 0
	for i := 0; i < 3000 && !s.IsGameOver(); i++ {
		if i%120 < 60 {
			in = input.NewState(input.ActionFire, input.ActionRight)
		} else {
			in = input.NewState(input.ActionFire, input.ActionLeft)
		}
		s.Update(1.0/60, in)
		require.GreaterOrEqual(t, s.Score, last)
		last = s.Score
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Playing", PhasePlaying.String())
	assert.Equal(t, "GameOver", PhaseGameOver.String())
}
