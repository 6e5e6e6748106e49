package game

import (
	"image/color"
	"testing"
	"testing/fstest"
)

const testManifest = `version: "1.0"
base_path: assets
groups:
  shooter:
    images:
      - id: IMAGE_SPRITES
        path: img/sprites.png
        placeholder: {w: 96, h: 88, color: [255, 0, 255]}
      - id: IMAGE_TERRAIN
        path: img/terrain.png
  wombat:
    images:
      - id: IMAGE_BACKGROUND
        path: /img/background.png
`

// TestParseResourceConfig 测试资源清单解析
func TestParseResourceConfig(t *testing.T) {
	config, err := ParseResourceConfig([]byte(testManifest))
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}

	if config.BasePath != "assets" {
		t.Errorf("Expected base_path 'assets', got '%s'", config.BasePath)
	}
	if names := config.GroupNames(); len(names) != 2 || names[0] != "shooter" || names[1] != "wombat" {
		t.Errorf("GroupNames() = %v", names)
	}

	ids, err := config.GroupIDs("shooter")
	if err != nil {
		t.Fatalf("GroupIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "IMAGE_SPRITES" || ids[1] != "IMAGE_TERRAIN" {
		t.Errorf("GroupIDs(shooter) = %v", ids)
	}
	if _, err := config.GroupIDs("missing"); err == nil {
		t.Error("expected error for missing group")
	}

	p := config.Groups["shooter"].Images[0].Placeholder
	if p == nil {
		t.Fatal("placeholder not parsed")
	}
	if got := p.RGBA(); got != (color.RGBA{R: 255, G: 0, B: 255, A: 255}) {
		t.Errorf("placeholder color = %v", got)
	}
}

// TestResourceConfig_Validate 测试清单校验
func TestResourceConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"缺少ID", "groups: {a: {images: [{path: x.png}]}}"},
		{"缺少路径", "groups: {a: {images: [{id: X}]}}"},
		{"ID重复", "groups: {a: {images: [{id: X, path: x.png}]}, b: {images: [{id: X, path: y.png}]}}"},
		{"占位图尺寸为零", "groups: {a: {images: [{id: X, path: x.png, placeholder: {w: 0, h: 4}}]}}"},
		{"占位图颜色分量错误", "groups: {a: {images: [{id: X, path: x.png, placeholder: {w: 4, h: 4, color: [1, 2]}}]}}"},
		{"YAML格式错误", "groups: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseResourceConfig([]byte(tt.yaml)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadResourceConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"data/resources.yaml": {Data: []byte(testManifest)},
	}

	if _, err := LoadResourceConfig(fsys, "data/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	if _, err := LoadResourceConfig(fsys, "data/missing.yaml"); err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"assets", "img/a.png", "assets/img/a.png"},
		{"assets", "/img/a.png", "assets/img/a.png"},
		{"", "img/a.png", "img/a.png"},
		{"assets/", "./img/a.png", "assets/img/a.png"},
	}
	for _, tt := range tests {
		if got := buildFullPath(tt.base, tt.rel); got != tt.want {
			t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.want)
		}
	}
}
