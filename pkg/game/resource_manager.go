package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"

	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/config"
	"github.com/decker502/tvbutton/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// ResourceManager is responsible for loading and caching the images that make up
// parallax button layer stacks.
//
// Resolution order for a path:
//   - the embedded assets (when embedded.Init has been called and the file exists)
//   - the local filesystem
//
// The cache is keyed by the cleaned path, so "assets/a.png" and "./assets/a.png"
// share one entry.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Load everything from the game loop
// goroutine or before ebiten.RunGame is called.
type ResourceManager struct {
	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image
}

// NewResourceManager creates a ResourceManager with an empty cache.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage loads an image from the embedded assets or the filesystem and
// caches it for future use.
//
// Returns an error if the image cannot be found or decoded. Never panics.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	key := cacheKey(path)
	if cached, exists := rm.imageCache[key]; exists {
		return cached, nil
	}

	img, err := rm.decode(key)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[key] = ebitenImg
	log.Debug().Str("path", key).Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).Msg("[ResourceManager] image loaded")
	return ebitenImg, nil
}

// GetImage returns a cached image, or nil if it has not been loaded.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[cacheKey(path)]
}

// LoadLayers loads each path (back to front) as a parallax layer.
// All images must be loadable; size validation is left to LayerStackSystem.
func (rm *ResourceManager) LoadLayers(paths []string) ([]components.Layer, error) {
	layers := make([]components.Layer, 0, len(paths))
	for _, path := range paths {
		img, err := rm.LoadImage(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, components.NewLayer(img))
	}
	return layers, nil
}

// LoadButtonDescriptors reads a button descriptor YAML file from the embedded
// data or the filesystem.
func (rm *ResourceManager) LoadButtonDescriptors(path string) ([]config.ButtonDescriptor, error) {
	key := cacheKey(path)
	if embedded.IsInitialized() && embedded.Exists(key) {
		data, err := embedded.ReadFile(key)
		if err != nil {
			return nil, err
		}
		descriptors, err := config.ParseButtonDescriptors(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return descriptors, nil
	}
	return config.LoadButtonDescriptors(key)
}

// Clear drops every cached image and releases its GPU memory.
func (rm *ResourceManager) Clear() {
	for key, img := range rm.imageCache {
		img.Deallocate()
		delete(rm.imageCache, key)
	}
}

// decode reads and decodes an image without touching the cache.
func (rm *ResourceManager) decode(path string) (image.Image, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.DecodeImage(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

func cacheKey(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}
