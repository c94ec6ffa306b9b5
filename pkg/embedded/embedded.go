// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在项目根目录（embed.go），再通过 Init() 传入本包。
// Init 接受 fs.FS，测试可以传入 fstest.MapFS。
package embedded

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // 注册 JPEG 解码器
	_ "image/png"  // 注册 PNG 解码器
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/decker502/tvbutton/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrNotInitialized 在 Init() 之前访问资源
	ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")
	// ErrSpecularMissing 内置高光图片缺失或无法解码
	ErrSpecularMissing = errors.New("bundled specular image is missing")
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = assets != nil || data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 根据路径前缀选择文件系统，路径必须以 "assets/" 或 "data/" 开头
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	// embed.FS 使用正斜杠，并且不接受 "./" 前缀
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	switch {
	case strings.HasPrefix(path, "assets/") && assetsFS != nil:
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/") && dataFS != nil:
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开嵌入资源
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取嵌入资源的全部内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查资源是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// DecodeImage 解码嵌入的 PNG/JPEG 图片
func DecodeImage(path string) (image.Image, error) {
	file, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadImage 解码嵌入图片并上传为 ebiten 图片
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadSpecularImage 加载内置高光图片
//
// 资源缺失或解码失败时返回包装了 ErrSpecularMissing 的错误，
// 由调用者决定降级为无高光还是构造失败。
func LoadSpecularImage() (*ebiten.Image, error) {
	img, err := LoadImage(config.SpecularAssetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpecularMissing, err)
	}
	return img, nil
}
