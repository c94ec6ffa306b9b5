package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/config"
	"github.com/decker502/tvbutton/pkg/ecs"
	"github.com/decker502/tvbutton/pkg/embedded"
	"github.com/decker502/tvbutton/pkg/systems"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeLoader 按路径返回预先准备的图片
type fakeLoader struct {
	images map[string]*ebiten.Image
	loaded []string
}

func (l *fakeLoader) LoadImage(path string) (*ebiten.Image, error) {
	l.loaded = append(l.loaded, path)
	img, ok := l.images[path]
	if !ok {
		return nil, fmt.Errorf("image %s not found", path)
	}
	return img, nil
}

func newTestLayerStack(em *ecs.EntityManager) *systems.LayerStackSystem {
	layout := systems.NewLayoutSystem(em)
	animation := systems.NewParallaxAnimationSystem(em)
	return systems.NewLayerStackSystem(em, layout, animation)
}

// TestNewTVButton 测试创建按钮挂载全部组件并完成首次布局
func TestNewTVButton(t *testing.T) {
	em := ecs.NewEntityManager()
	layerStack := newTestLayerStack(em)

	cfg := config.DefaultButtonConfig()
	specular := ebiten.NewImage(8, 8)
	id, err := NewTVButton(em, layerStack, TVButtonOptions{
		Frame:           utils.Rect{X: 10, Y: 10, Width: 50, Height: 50},
		Config:          cfg,
		Layers:          []components.Layer{components.NewLayer(ebiten.NewImage(200, 100))},
		DefaultSpecular: specular,
	})
	if err != nil {
		t.Fatalf("NewTVButton failed: %v", err)
	}

	if !ecs.HasComponent[*components.ButtonFrameComponent](em, id) ||
		!ecs.HasComponent[*components.ButtonStyleComponent](em, id) ||
		!ecs.HasComponent[*components.LayerStackComponent](em, id) ||
		!ecs.HasComponent[*components.CompositorComponent](em, id) ||
		!ecs.HasComponent[*components.ParallaxAnimationComponent](em, id) ||
		!ecs.HasComponent[*components.GestureComponent](em, id) ||
		!ecs.HasComponent[*components.ActivationComponent](em, id) {
		t.Fatal("tv button is missing components")
	}

	gesture, _ := ecs.GetComponent[*components.GestureComponent](em, id)
	if gesture.Pan.Source != components.GesturePan || gesture.LongPress.Source != components.GestureLongPress {
		t.Error("recognizers should be registered with their gesture sources")
	}
	if gesture.DragDeadZone != cfg.DragDeadZone || gesture.SimultaneousRecognition != cfg.SimultaneousRecognition {
		t.Error("gesture thresholds should come from the config")
	}

	// 保持宽高比：200x100 放进 50x50，居中到 (10,22.5)
	fc, _ := ecs.GetComponent[*components.ButtonFrameComponent](em, id)
	if fc.Frame != (utils.Rect{X: 10, Y: 22.5, Width: 50, Height: 25}) {
		t.Errorf("Frame = %+v, want (10,22.5,50,25)", fc.Frame)
	}

	stack, _ := ecs.GetComponent[*components.LayerStackComponent](em, id)
	if stack.Specular == nil || stack.Specular.Image != specular {
		t.Error("specular overlay should use the provided default specular")
	}
}

// TestNewTVButtonMissingSpecular 测试内置高光缺失时的两种处理方式
func TestNewTVButtonMissingSpecular(t *testing.T) {
	embedded.Init(nil, nil)

	em := ecs.NewEntityManager()
	layerStack := newTestLayerStack(em)

	cfg := config.DefaultButtonConfig()
	_, err := NewTVButton(em, layerStack, TVButtonOptions{
		Frame:  utils.Rect{Width: 50, Height: 50},
		Config: cfg,
	})
	if !errors.Is(err, embedded.ErrSpecularMissing) {
		t.Fatalf("NewTVButton error = %v, want ErrSpecularMissing", err)
	}
	if got := len(ecs.GetEntitiesWith1[*components.ButtonFrameComponent](em)); got != 0 {
		t.Errorf("failed construction left %d entities", got)
	}

	cfg.AllowMissingSpecular = true
	id, err := NewTVButton(em, layerStack, TVButtonOptions{
		Frame:  utils.Rect{Width: 50, Height: 50},
		Config: cfg,
		Layers: []components.Layer{components.NewLayer(ebiten.NewImage(50, 50))},
	})
	if err != nil {
		t.Fatalf("NewTVButton with AllowMissingSpecular failed: %v", err)
	}
	stack, _ := ecs.GetComponent[*components.LayerStackComponent](em, id)
	if stack.Specular != nil {
		t.Error("button without specular image should have no specular overlay")
	}
}

// TestNewTVButtonRejectsMismatchedLayers 测试图层尺寸不一致时创建失败且不留下实体
func TestNewTVButtonRejectsMismatchedLayers(t *testing.T) {
	em := ecs.NewEntityManager()
	layerStack := newTestLayerStack(em)

	_, err := NewTVButton(em, layerStack, TVButtonOptions{
		Frame:           utils.Rect{Width: 50, Height: 50},
		Config:          config.DefaultButtonConfig(),
		DefaultSpecular: ebiten.NewImage(8, 8),
		Layers: []components.Layer{
			components.NewLayer(ebiten.NewImage(10, 10)),
			components.NewLayer(ebiten.NewImage(20, 20)),
		},
	})
	if !errors.Is(err, systems.ErrLayerSizeMismatch) {
		t.Fatalf("NewTVButton error = %v, want ErrLayerSizeMismatch", err)
	}
	if got := len(ecs.GetEntitiesWith1[*components.ButtonFrameComponent](em)); got != 0 {
		t.Errorf("failed construction left %d entities", got)
	}
}

// TestNewTVButtonFromDescriptor 测试从 YAML 描述创建按钮
func TestNewTVButtonFromDescriptor(t *testing.T) {
	embedded.Init(nil, nil)

	data := []byte(`
buttons:
  - name: poster
    frame: {x: 0, y: 0, width: 50, height: 50}
    parent: {x: 0, y: 0, width: 100, height: 100}
    layers:
      - assets/images/back.png
      - assets/images/front.png
    style:
      allowMissingSpecular: true
      specularImage: assets/images/custom_specular.png
      parallaxIntensity: 2
`)
	descriptors, err := config.ParseButtonDescriptors(data)
	if err != nil {
		t.Fatalf("ParseButtonDescriptors failed: %v", err)
	}

	custom := ebiten.NewImage(16, 16)
	loader := &fakeLoader{images: map[string]*ebiten.Image{
		"assets/images/back.png":            ebiten.NewImage(200, 100),
		"assets/images/front.png":           ebiten.NewImage(200, 100),
		"assets/images/custom_specular.png": custom,
	}}

	em := ecs.NewEntityManager()
	id, err := NewTVButtonFromDescriptor(em, newTestLayerStack(em), loader, descriptors[0])
	if err != nil {
		t.Fatalf("NewTVButtonFromDescriptor failed: %v", err)
	}

	stack, _ := ecs.GetComponent[*components.LayerStackComponent](em, id)
	if len(stack.Layers) != 2 {
		t.Errorf("len(Layers) = %d, want 2", len(stack.Layers))
	}
	if stack.Specular == nil || stack.Specular.Image != custom {
		t.Error("descriptor specular image should be used as the override")
	}

	anim, _ := ecs.GetComponent[*components.ParallaxAnimationComponent](em, id)
	if anim.Intensity != 2 {
		t.Errorf("Intensity = %v, want 2", anim.Intensity)
	}

	// 父容器 100x100：200x100 适配为 100x50 并在父容器内居中
	fc, _ := ecs.GetComponent[*components.ButtonFrameComponent](em, id)
	if fc.Frame != (utils.Rect{X: 0, Y: 25, Width: 100, Height: 50}) {
		t.Errorf("Frame = %+v, want (0,25,100,50)", fc.Frame)
	}
}

// TestNewTVButtonFromDescriptorMissingLayer 测试图层加载失败
func TestNewTVButtonFromDescriptorMissingLayer(t *testing.T) {
	em := ecs.NewEntityManager()
	desc := config.ButtonDescriptor{
		Name:   "broken",
		Frame:  config.FrameDescriptor{Width: 50, Height: 50},
		Layers: []string{"assets/images/missing.png"},
		Style:  config.DefaultButtonConfig(),
	}

	_, err := NewTVButtonFromDescriptor(em, newTestLayerStack(em), &fakeLoader{}, desc)
	if err == nil {
		t.Fatal("expected an error for a missing layer image")
	}
}
