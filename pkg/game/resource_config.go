package game

import (
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the top-level resource manifest loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a set of images one demo needs before it can start.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
}

// ImageResource describes one image in the manifest.
//
// Example:
//
//   - id: IMAGE_SPRITES
//     path: img/sprites.png
//     placeholder: {w: 96, h: 88, color: [255, 0, 255, 255]}
type ImageResource struct {
	ID          string       `yaml:"id"`                    // Resource ID (unique identifier)
	Path        string       `yaml:"path"`                  // Relative file path from base_path
	Placeholder *Placeholder `yaml:"placeholder,omitempty"` // Substitute used when loading fails
}

// Placeholder 加载失败时使用的纯色替代图片
type Placeholder struct {
	W     int     `yaml:"w"`
	H     int     `yaml:"h"`
	Color []uint8 `yaml:"color"` // RGB 或 RGBA
}

// RGBA 返回占位图颜色，缺省 alpha 为 255
func (p *Placeholder) RGBA() color.RGBA {
	c := color.RGBA{A: 255}
	if len(p.Color) >= 3 {
		c.R, c.G, c.B = p.Color[0], p.Color[1], p.Color[2]
	}
	if len(p.Color) == 4 {
		c.A = p.Color[3]
	}
	return c
}

// ParseResourceConfig 解析并校验资源清单
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadResourceConfig loads the resource manifest from the given file system.
//
// Parameters:
//   - fsys: File system holding the manifest (embedded or os.DirFS)
//   - configPath: Path of the manifest inside fsys (e.g., "data/resources.yaml")
func LoadResourceConfig(fsys fs.FS, configPath string) (*ResourceConfig, error) {
	data, err := fs.ReadFile(fsys, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	config, err := ParseResourceConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return config, nil
}

// Validate 检查 ID 唯一、路径非空、占位图尺寸和颜色合法
func (c *ResourceConfig) Validate() error {
	seen := make(map[string]string)
	for _, name := range c.GroupNames() {
		for i, img := range c.Groups[name].Images {
			if img.ID == "" {
				return fmt.Errorf("group %s: image %d has no id", name, i)
			}
			if img.Path == "" {
				return fmt.Errorf("group %s: image %s has no path", name, img.ID)
			}
			if prev, dup := seen[img.ID]; dup {
				return fmt.Errorf("image %s declared in both %s and %s", img.ID, prev, name)
			}
			seen[img.ID] = name

			if p := img.Placeholder; p != nil {
				if p.W <= 0 || p.H <= 0 {
					return fmt.Errorf("image %s: placeholder size must be positive, got %dx%d", img.ID, p.W, p.H)
				}
				if n := len(p.Color); n != 0 && n != 3 && n != 4 {
					return fmt.Errorf("image %s: placeholder color needs 3 or 4 components, got %d", img.ID, n)
				}
			}
		}
	}
	return nil
}

// GroupNames 返回按名称排序的分组列表
func (c *ResourceConfig) GroupNames() []string {
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GroupIDs 返回分组内所有图片 ID，按清单顺序
func (c *ResourceConfig) GroupIDs(group string) ([]string, error) {
	g, ok := c.Groups[group]
	if !ok {
		return nil, fmt.Errorf("resource group not found: %s", group)
	}
	ids := make([]string, len(g.Images))
	for i, img := range g.Images {
		ids[i] = img.ID
	}
	return ids, nil
}

// buildFullPath constructs the full file path for a resource.
//
// Returns:
//   - The full file path (e.g., "assets/img/sprites.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return path.Clean(relativePath)
	}
	return path.Join(basePath, relativePath)
}
