package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/canvasdemos/pkg/config"
	"github.com/decker502/canvasdemos/pkg/embedded"
)

func TestMain(m *testing.M) {
	root := os.DirFS("../..")
	embedded.Init(root, root)
	os.Exit(m.Run())
}

func TestNewApp_Demos(t *testing.T) {
	tests := []struct {
		name    string
		demo    string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"默认为射击演示", "", 512, 480, false},
		{"射击演示", "shooter", 512, 480, false},
		{"移动演示", "wombat", 500, 500, false},
		{"未知演示", "pong", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewApp(Config{Verbose: true, Demo: tt.demo, Seed: 1})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer a.Close()

			w, h := a.Layout(1920, 1080)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.NotNil(t, a.GetSceneManager().GetCurrentScene())
		})
	}
}

func TestNewApp_BadConfigPath(t *testing.T) {
	_, err := NewApp(Config{Verbose: true, ConfigPath: "data/missing.yaml"})
	assert.Error(t, err)
}

func TestWindowSize(t *testing.T) {
	cfg := config.Default()
	w, h := WindowSize(cfg, "wombat")
	assert.Equal(t, 500, w)
	assert.Equal(t, 500, h)

	w, h = WindowSize(cfg, "shooter")
	assert.Equal(t, 512, w)
	assert.Equal(t, 480, h)
}
