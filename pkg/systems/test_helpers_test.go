package systems

import (
	"math"
	"testing"

	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/config"
	"github.com/decker502/tvbutton/pkg/ecs"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// testWorld 组装好所有视差按钮系统的测试环境
type testWorld struct {
	em         *ecs.EntityManager
	layout     *LayoutSystem
	animation  *ParallaxAnimationSystem
	layerStack *LayerStackSystem
	gesture    *GestureSystem
	render     *ParallaxRenderSystem
}

func newTestWorld() *testWorld {
	em := ecs.NewEntityManager()
	layout := NewLayoutSystem(em)
	animation := NewParallaxAnimationSystem(em)
	return &testWorld{
		em:         em,
		layout:     layout,
		animation:  animation,
		layerStack: NewLayerStackSystem(em, layout, animation),
		gesture:    NewGestureSystem(em, animation),
		render:     NewParallaxRenderSystem(em),
	}
}

// addButton 按工厂相同的方式创建按钮实体（不依赖 entities 包）
func (w *testWorld) addButton(t *testing.T, frame utils.Rect, cfg config.ButtonConfig, layers []components.Layer) ecs.EntityID {
	t.Helper()

	id := w.em.CreateEntity()
	w.em.AddComponent(id, &components.ButtonFrameComponent{Frame: frame, Dirty: true})
	w.em.AddComponent(id, &components.ButtonStyleComponent{Config: cfg, ShadowDirty: true})
	w.em.AddComponent(id, &components.LayerStackComponent{DefaultSpecular: ebiten.NewImage(8, 8)})
	w.em.AddComponent(id, &components.CompositorComponent{})
	w.em.AddComponent(id, NewParallaxAnimationComponent(cfg))
	w.em.AddComponent(id, &components.GestureComponent{
		Pan:                     components.Recognizer{Source: components.GesturePan},
		LongPress:               components.Recognizer{Source: components.GestureLongPress},
		SimultaneousRecognition: cfg.SimultaneousRecognition,
		DragDeadZone:            cfg.DragDeadZone,
		LongPressDuration:       cfg.LongPressDuration,
		LongPressMovement:       cfg.LongPressMovement,
		TapMaxDuration:          cfg.TapMaxDuration,
	})
	w.em.AddComponent(id, &components.ActivationComponent{})

	if err := w.layerStack.SetLayers(id, layers); err != nil {
		t.Fatalf("SetLayers failed: %v", err)
	}
	return id
}

// stretchConfig 不保持宽高比的默认配置，按钮矩形保持不变
func stretchConfig() config.ButtonConfig {
	cfg := config.DefaultButtonConfig()
	cfg.PreserveAspect = false
	return cfg
}

// testLayers 创建 n 张相同尺寸的图层
func testLayers(n, width, height int) []components.Layer {
	layers := make([]components.Layer, n)
	for i := range layers {
		layers[i] = components.NewLayer(ebiten.NewImage(width, height))
	}
	return layers
}

func (w *testWorld) anim(t *testing.T, id ecs.EntityID) *components.ParallaxAnimationComponent {
	t.Helper()
	anim, ok := ecs.GetComponent[*components.ParallaxAnimationComponent](w.em, id)
	if !ok {
		t.Fatal("ParallaxAnimationComponent missing")
	}
	return anim
}

func (w *testWorld) frame(t *testing.T, id ecs.EntityID) *components.ButtonFrameComponent {
	t.Helper()
	fc, ok := ecs.GetComponent[*components.ButtonFrameComponent](w.em, id)
	if !ok {
		t.Fatal("ButtonFrameComponent missing")
	}
	return fc
}

func (w *testWorld) stack(t *testing.T, id ecs.EntityID) *components.LayerStackComponent {
	t.Helper()
	stack, ok := ecs.GetComponent[*components.LayerStackComponent](w.em, id)
	if !ok {
		t.Fatal("LayerStackComponent missing")
	}
	return stack
}

func (w *testWorld) compositor(t *testing.T, id ecs.EntityID) *components.CompositorComponent {
	t.Helper()
	comp, ok := ecs.GetComponent[*components.CompositorComponent](w.em, id)
	if !ok {
		t.Fatal("CompositorComponent missing")
	}
	return comp
}

func (w *testWorld) gestureOf(t *testing.T, id ecs.EntityID) *components.GestureComponent {
	t.Helper()
	gesture, ok := ecs.GetComponent[*components.GestureComponent](w.em, id)
	if !ok {
		t.Fatal("GestureComponent missing")
	}
	return gesture
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func pointAlmostEqual(a, b utils.Point) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func rectAlmostEqual(a, b utils.Rect) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) &&
		almostEqual(a.Width, b.Width) && almostEqual(a.Height, b.Height)
}
