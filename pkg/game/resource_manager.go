package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownImage 资源清单中不存在该图片 ID
var ErrUnknownImage = errors.New("unknown image id")

// ResourceManager is responsible for centralized management of image resources.
// Images are looked up by manifest ID and cached once loaded, so every layer
// of the renderer shares the same *ebiten.Image.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Only the game goroutine touches it;
// background decoding goes through Loader, which hands decoded images over in Poll.
//
// Usage:
//
//	rm := NewResourceManager(embedded.FS(), manifest)
//	img, ok := rm.Image("IMAGE_SPRITES")
//	if !ok {
//	    return // layer not ready, skip
//	}
type ResourceManager struct {
	fsys        fs.FS
	config      *ResourceConfig
	resourceMap map[string]ImageResource // Resource ID -> manifest entry

	imageCache map[string]*ebiten.Image // Resource ID -> loaded image
	failed     map[string]bool          // Resource ID -> load failed without placeholder
}

// NewResourceManager creates a ResourceManager over the given file system and manifest.
func NewResourceManager(fsys fs.FS, config *ResourceConfig) *ResourceManager {
	rm := &ResourceManager{
		fsys:        fsys,
		config:      config,
		resourceMap: make(map[string]ImageResource),
		imageCache:  make(map[string]*ebiten.Image),
		failed:      make(map[string]bool),
	}
	rm.buildResourceMap()
	return rm
}

// buildResourceMap constructs a mapping from resource IDs to manifest entries,
// with each path already joined to base_path.
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}
	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			img.Path = buildFullPath(rm.config.BasePath, img.Path)
			rm.resourceMap[img.ID] = img
		}
	}
}

// Config 返回资源清单
func (rm *ResourceManager) Config() *ResourceConfig {
	return rm.config
}

// Resolve 返回图片 ID 对应的清单条目（Path 已拼接 base_path）
func (rm *ResourceManager) Resolve(id string) (ImageResource, error) {
	res, ok := rm.resourceMap[id]
	if !ok {
		return ImageResource{}, fmt.Errorf("%w: %s", ErrUnknownImage, id)
	}
	return res, nil
}

// LoadImageByID 在当前 goroutine 同步加载图片并缓存
func (rm *ResourceManager) LoadImageByID(id string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[id]; ok {
		return img, nil
	}
	res, err := rm.Resolve(id)
	if err != nil {
		return nil, err
	}
	decoded, err := DecodeImage(rm.fsys, res.Path)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(decoded)
	rm.store(id, img)
	return img, nil
}

// Image 返回已加载的图片，未就绪时 ok 为 false
func (rm *ResourceManager) Image(id string) (*ebiten.Image, bool) {
	img, ok := rm.imageCache[id]
	return img, ok
}

// Ready 返回图片是否可以绘制
func (rm *ResourceManager) Ready(id string) bool {
	_, ok := rm.imageCache[id]
	return ok
}

// Failed 返回图片是否加载失败且没有占位图
func (rm *ResourceManager) Failed(id string) bool {
	return rm.failed[id]
}

// Progress 返回给定 ID 中已结束加载（成功或失败）的比例
func (rm *ResourceManager) Progress(ids []string) float64 {
	if len(ids) == 0 {
		return 1
	}
	done := 0
	for _, id := range ids {
		if rm.Ready(id) || rm.failed[id] {
			done++
		}
	}
	return float64(done) / float64(len(ids))
}

func (rm *ResourceManager) store(id string, img *ebiten.Image) {
	rm.imageCache[id] = img
	delete(rm.failed, id)
}

// fail 记录加载失败；清单中带占位图时用纯色图片替代
func (rm *ResourceManager) fail(id string) {
	res, ok := rm.resourceMap[id]
	if !ok || res.Placeholder == nil {
		rm.failed[id] = true
		return
	}
	p := res.Placeholder
	img := ebiten.NewImage(p.W, p.H)
	img.Fill(p.RGBA())
	rm.store(id, img)
	log.Printf("[ResourceManager] Using %dx%d placeholder for %s", p.W, p.H, id)
}

// DecodeImage 从文件系统读取并解码图片，不依赖图形上下文，可在任意 goroutine 调用
func DecodeImage(fsys fs.FS, name string) (image.Image, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}
