// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init() 之前访问资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
//
// 参数通常是根目录 embed.go 中声明的 embed.FS；测试可以传入 fstest.MapFS。
// 两个文件系统的根目录都包含 "assets/" 或 "data/" 前缀本身。
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 根据路径前缀选择正确的文件系统，并返回标准化后的路径
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠），移除 "./" 前缀
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开嵌入文件
// 路径必须以 "assets/" 或 "data/" 开头
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取嵌入文件内容
// 路径必须以 "assets/" 或 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查文件是否存在于嵌入资源中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 在嵌入资源中匹配文件
// 路径模式必须以 "assets/" 或 "data/" 开头
func Glob(pattern string) ([]string, error) {
	fsys, name, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, name)
}

// FS 返回一个按路径前缀分派的只读文件系统
//
// 资源加载器通过它以 "assets/..." 路径读取图片。
func FS() fs.FS {
	return prefixFS{}
}

type prefixFS struct{}

func (prefixFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return Open(name)
}
