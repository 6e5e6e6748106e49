package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 512, cfg.Shooter.Canvas.Width)
	assert.Equal(t, 480, cfg.Shooter.Canvas.Height)
	assert.Equal(t, 0.1, cfg.Shooter.FireCooldown)
	assert.Equal(t, 100, cfg.Shooter.ScorePerKill)
	assert.Equal(t, float64(cfg.Shooter.Canvas.Height)/2, cfg.Shooter.StartY)
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
shooter:
  playerSpeed: 250
  enemy: {speed: 8}
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, 250.0, cfg.Shooter.PlayerSpeed)
				assert.Equal(t, 500.0, cfg.Shooter.BulletSpeed)
				assert.Equal(t, 8.0, cfg.Shooter.Enemy.Speed)
				assert.Equal(t, []int{0, 1, 2, 3, 2, 1}, cfg.Shooter.Enemy.Frames, "nested fields keep defaults")
				assert.Equal(t, 23.0, cfg.Shooter.Enemy.W)
				assert.Equal(t, 25.0, cfg.Wombat.Speed)
			},
		},
		{
			name: "key names and durations",
			yamlContent: `
keys:
  fire: [Space, Enter]
  up: [ArrowUp]
assets:
  manifest: data/resources.yaml
  loadTimeout: 2s
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}, cfg.Keys.Fire)
				assert.Equal(t, []ebiten.Key{ebiten.KeyArrowUp}, cfg.Keys.Up)
				assert.Equal(t, 2*time.Second, cfg.Assets.LoadTimeout)
			},
		},
		{
			name:        "spawn base out of range",
			yamlContent: "shooter:\n  spawnBase: 1.5\n",
			wantErr:     true,
		},
		{
			name:        "negative cooldown",
			yamlContent: "shooter:\n  fireCooldown: -1\n",
			wantErr:     true,
		},
		{
			name:        "zero canvas",
			yamlContent: "wombat:\n  canvas: {width: 0, height: 100}\n",
			wantErr:     true,
		},
		{
			name:        "empty key binding",
			yamlContent: "keys:\n  reset: []\n",
			wantErr:     true,
		},
		{
			name:        "sprite without size",
			yamlContent: "shooter:\n  bullet: {w: 0}\n",
			wantErr:     true,
		},
		{
			name:        "malformed yaml",
			yamlContent: "shooter: [",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestValidate_WrapsErrInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Shooter.EnemySpeed = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "enemySpeed")
}

func TestLoadGameConfig_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wombat:\n  speed: 40\n"), 0644))

	cfg, err := LoadGameConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.Wombat.Speed)

	_, err = LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
