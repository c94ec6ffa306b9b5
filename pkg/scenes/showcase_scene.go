package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/config"
	"github.com/decker502/tvbutton/pkg/ecs"
	"github.com/decker502/tvbutton/pkg/entities"
	"github.com/decker502/tvbutton/pkg/game"
	"github.com/decker502/tvbutton/pkg/systems"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
)

// 调节步长
const (
	intensityStep = 0.25
	maxIntensity  = 4.0
)

// shadowPalette 按 C 键循环切换的阴影颜色
var shadowPalette = [][4]uint8{
	{0, 0, 0, 255},
	{20, 40, 120, 255},
	{120, 20, 60, 255},
	{0, 90, 60, 255},
}

// backgroundColor 场景背景色
var backgroundColor = color.RGBA{R: 28, G: 30, B: 38, A: 255}

// ShowcaseScene 视差按钮展示场景
//
// 按键：
//   - ↑/↓: 调节视差强度
//   - A: 切换保持宽高比
//   - C: 切换阴影颜色
//   - D: 显示/隐藏调试信息
//   - X: 清空/恢复选中按钮的图层
//   - Tab: 切换选中的按钮
//   - S: 保存设置
type ShowcaseScene struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager

	layoutSystem     *systems.LayoutSystem
	animationSystem  *systems.ParallaxAnimationSystem
	layerStackSystem *systems.LayerStackSystem
	gestureSystem    *systems.GestureSystem
	renderSystem     *systems.ParallaxRenderSystem

	tracker *utils.PointerTracker

	buttons     []showcaseButton
	selected    int
	shadowIndex int

	lastActivated string
	activations   int
}

// showcaseButton 场景中的一个按钮
type showcaseButton struct {
	id     ecs.EntityID
	name   string
	layers []components.Layer
	// cleared 图层是否被 X 键清空
	cleared bool
}

// NewShowcaseScene 按描述创建展示场景
//
// 单个按钮创建失败时记录日志并跳过；全部失败时返回错误。
func NewShowcaseScene(rm *game.ResourceManager, sm *game.SettingsManager, descriptors []config.ButtonDescriptor) (*ShowcaseScene, error) {
	em := ecs.NewEntityManager()
	layout := systems.NewLayoutSystem(em)
	animation := systems.NewParallaxAnimationSystem(em)

	s := &ShowcaseScene{
		entityManager:    em,
		resourceManager:  rm,
		settingsManager:  sm,
		layoutSystem:     layout,
		animationSystem:  animation,
		layerStackSystem: systems.NewLayerStackSystem(em, layout, animation),
		gestureSystem:    systems.NewGestureSystem(em, animation),
		renderSystem:     systems.NewParallaxRenderSystem(em),
		tracker:          utils.NewPointerTracker(),
	}

	settings := sm.GetSettings()
	for i, desc := range descriptors {
		settings.Apply(&desc.Style)
		id, err := entities.NewTVButtonFromDescriptor(em, s.layerStackSystem, rm, desc)
		if err != nil {
			log.Error().Err(err).Int("index", i).Str("name", desc.Name).Msg("[ShowcaseScene] failed to create button")
			continue
		}

		name := desc.Name
		if act, ok := ecs.GetComponent[*components.ActivationComponent](em, id); ok {
			act.OnActivated = func(ecs.EntityID) {
				s.lastActivated = name
				s.activations++
			}
		}
		stack, _ := ecs.GetComponent[*components.LayerStackComponent](em, id)
		s.buttons = append(s.buttons, showcaseButton{id: id, name: name, layers: stack.Layers})
	}

	if len(s.buttons) == 0 && len(descriptors) > 0 {
		return nil, fmt.Errorf("none of the %d buttons could be created", len(descriptors))
	}
	log.Info().Int("buttons", len(s.buttons)).Msg("[ShowcaseScene] scene ready")
	return s, nil
}

// Update 更新场景
// 顺序：键盘 -> 指针手势 -> 动画插值 -> 布局
func (s *ShowcaseScene) Update(deltaTime float64) {
	s.handleKeys()
	s.Step(s.tracker.Poll(deltaTime), deltaTime)
}

// Step 处理一帧的指针采样并推进动画和布局
func (s *ShowcaseScene) Step(samples []utils.PointerSample, deltaTime float64) {
	s.gestureSystem.HandleSamples(samples)
	s.animationSystem.Update(deltaTime)
	s.layoutSystem.Update()
}

// Draw 绘制场景
func (s *ShowcaseScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)

	if s.settingsManager.GetSettings().ShowDebug {
		s.drawDebug(screen)
	}
	s.drawHelp(screen)
}

// Buttons 返回场景中按钮的实体 ID（按创建顺序）
func (s *ShowcaseScene) Buttons() []ecs.EntityID {
	ids := make([]ecs.EntityID, len(s.buttons))
	for i, b := range s.buttons {
		ids[i] = b.id
	}
	return ids
}

// AdjustIntensity 调整所有按钮的视差强度
func (s *ShowcaseScene) AdjustIntensity(delta float64) {
	settings := s.settingsManager.GetSettings()
	intensity := settings.ParallaxIntensity + delta
	if intensity > maxIntensity {
		intensity = maxIntensity
	}
	s.settingsManager.SetParallaxIntensity(intensity)
	for _, b := range s.buttons {
		s.layerStackSystem.SetParallaxIntensity(b.id, settings.ParallaxIntensity)
	}
	log.Debug().Float64("intensity", settings.ParallaxIntensity).Msg("[ShowcaseScene] parallax intensity changed")
}

// TogglePreserveAspect 切换所有按钮的保持宽高比
func (s *ShowcaseScene) TogglePreserveAspect() {
	settings := s.settingsManager.GetSettings()
	s.settingsManager.SetPreserveAspect(!settings.PreserveAspect)
	for _, b := range s.buttons {
		s.layerStackSystem.SetPreserveAspect(b.id, settings.PreserveAspect)
	}
}

// CycleShadowColor 切换到下一个阴影颜色
func (s *ShowcaseScene) CycleShadowColor() {
	s.shadowIndex = (s.shadowIndex + 1) % len(shadowPalette)
	rgba := shadowPalette[s.shadowIndex]
	s.settingsManager.SetShadowColor(rgba)
	for _, b := range s.buttons {
		s.layerStackSystem.SetShadowColor(b.id, rgba)
	}
}

// ToggleSelectedLayers 清空或恢复选中按钮的图层栈
func (s *ShowcaseScene) ToggleSelectedLayers() error {
	if len(s.buttons) == 0 {
		return nil
	}
	b := &s.buttons[s.selected]
	var layers []components.Layer
	if b.cleared {
		layers = b.layers
	}
	if err := s.layerStackSystem.SetLayers(b.id, layers); err != nil {
		return err
	}
	b.cleared = !b.cleared
	return nil
}

// SaveOnExit 实现 game.Saveable，退出时保存设置
func (s *ShowcaseScene) SaveOnExit() bool {
	if err := s.settingsManager.Save(); err != nil {
		log.Error().Err(err).Msg("[ShowcaseScene] failed to save settings on exit")
		return false
	}
	return true
}

func (s *ShowcaseScene) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		s.AdjustIntensity(intensityStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		s.AdjustIntensity(-intensityStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		s.TogglePreserveAspect()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.CycleShadowColor()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		settings := s.settingsManager.GetSettings()
		s.settingsManager.SetShowDebug(!settings.ShowDebug)
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		if err := s.ToggleSelectedLayers(); err != nil {
			log.Error().Err(err).Msg("[ShowcaseScene] failed to toggle layers")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if len(s.buttons) > 0 {
			s.selected = (s.selected + 1) % len(s.buttons)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := s.settingsManager.Save(); err != nil {
			log.Error().Err(err).Msg("[ShowcaseScene] failed to save settings")
		}
	}
}

// drawDebug 绘制按钮边框、选中状态和触点
func (s *ShowcaseScene) drawDebug(screen *ebiten.Image) {
	for i, b := range s.buttons {
		fc, ok := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, b.id)
		if !ok {
			continue
		}
		clr := color.RGBA{R: 90, G: 90, B: 90, A: 255}
		if i == s.selected {
			clr = color.RGBA{R: 255, G: 200, B: 0, A: 255}
		}
		f := fc.Frame
		vector.StrokeRect(screen, float32(f.X), float32(f.Y), float32(f.Width), float32(f.Height), 1, clr, false)

		anim, ok := ecs.GetComponent[*components.ParallaxAnimationComponent](s.entityManager, b.id)
		if ok && anim.TouchPoint != nil {
			p := anim.TouchPoint.Add(f.Origin())
			vector.FillCircle(screen, float32(p.X), float32(p.Y), 4, color.RGBA{R: 255, G: 60, B: 60, A: 255}, true)
		}
		ebitenutil.DebugPrintAt(screen, b.name, int(f.X), int(f.Y+f.Height)+4)
	}
}

// drawHelp 绘制当前设置和按键说明
func (s *ShowcaseScene) drawHelp(screen *ebiten.Image) {
	settings := s.settingsManager.GetSettings()
	msg := fmt.Sprintf("intensity %.2f (up/down)  aspect %v (A)  shadow (C)  debug (D)  clear (X)  select (Tab)  save (S)",
		settings.ParallaxIntensity, settings.PreserveAspect)
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
	if s.lastActivated != "" {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("activated: %s (%d)", s.lastActivated, s.activations), 8, 24)
	}
}
