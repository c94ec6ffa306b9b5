package systems

import (
	"errors"
	"fmt"

	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/ecs"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

var (
	// ErrEmptyLayerImage 图层没有图片或图片尺寸为零
	ErrEmptyLayerImage = errors.New("layer image is nil or has zero size")
	// ErrLayerSizeMismatch 图层之间像素尺寸不一致
	ErrLayerSizeMismatch = errors.New("layer images must share identical pixel dimensions")
	// ErrUnknownButton 实体不是视差按钮
	ErrUnknownButton = errors.New("entity is not a parallax button")
)

// LayerStackSystem 图层栈系统
//
// 负责整体替换按钮的图层栈和可视元素，以及按钮的配置接口
// （高光覆盖图、保持宽高比、视差强度、阴影颜色）。
type LayerStackSystem struct {
	entityManager *ecs.EntityManager
	layout        *LayoutSystem
	animation     *ParallaxAnimationSystem
}

// NewLayerStackSystem 创建图层栈系统
func NewLayerStackSystem(em *ecs.EntityManager, layout *LayoutSystem, animation *ParallaxAnimationSystem) *LayerStackSystem {
	return &LayerStackSystem{
		entityManager: em,
		layout:        layout,
		animation:     animation,
	}
}

// ValidateLayers 检查图层图片非空且尺寸一致
func ValidateLayers(layers []components.Layer) error {
	var first utils.Size
	for i, layer := range layers {
		size, ok := imageSize(layer.Image)
		if !ok {
			return fmt.Errorf("layer %d: %w", i, ErrEmptyLayerImage)
		}
		if i == 0 {
			first = size
			continue
		}
		if size != first {
			return fmt.Errorf("layer %d is %vx%v, layer 0 is %vx%v: %w",
				i, size.Width, size.Height, first.Width, first.Height, ErrLayerSizeMismatch)
		}
	}
	return nil
}

// SetLayers 整体替换按钮的图层栈
//
// 流程：
//  1. 校验图层（失败时不做任何修改）
//  2. 丢弃所有旧的图层视图
//  3. 按顺序为每个图层创建带圆角和填充模式的视图
//  4. 图层栈非空时在最上层挂载高光覆盖层
//  5. 立即重新布局
//
// layers 为空或 nil 时移除所有视图和高光层。
func (s *LayerStackSystem) SetLayers(id ecs.EntityID, layers []components.Layer) error {
	stack, ok := ecs.GetComponent[*components.LayerStackComponent](s.entityManager, id)
	if !ok {
		return ErrUnknownButton
	}
	style, ok := ecs.GetComponent[*components.ButtonStyleComponent](s.entityManager, id)
	if !ok {
		return ErrUnknownButton
	}
	if err := ValidateLayers(layers); err != nil {
		return err
	}

	wasEmpty := stack.IsEmpty()
	stack.Layers = make([]components.Layer, len(layers))
	stack.Views = make([]components.LayerView, 0, len(layers))
	stack.Specular = nil

	mode := contentModeFor(style.Config.PreserveAspect)
	for i, layer := range layers {
		layer.DisplayOrder = i
		stack.Layers[i] = layer
		stack.Views = append(stack.Views, components.LayerView{
			Image:        layer.Image,
			CornerRadius: style.Config.CornerRadius,
			ContentMode:  mode,
		})
	}
	if len(layers) > 0 {
		s.attachSpecular(id, stack)
	}

	if anim, ok := ecs.GetComponent[*components.ParallaxAnimationComponent](s.entityManager, id); ok {
		anim.LayerOffsets = make([]utils.Point, len(layers))
		anim.ReturnFrom.LayerOffsets = nil
		anim.PressFrom.LayerOffsets = nil
	}
	if len(layers) == 0 && !wasEmpty {
		// 按住期间图层被清空：之后的手势都会被忽略，直接回到静止状态
		s.resetGesture(id)
		s.animation.Reset(id)
	}

	log.Debug().
		Uint64("entity", uint64(id)).
		Int("layers", len(layers)).
		Bool("specular", stack.Specular != nil).
		Msg("[LayerStackSystem] layers replaced")

	if fc, ok := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, id); ok {
		fc.Dirty = true
	}
	s.layout.Layout(id)
	return nil
}

// SetSpecularOverride 设置自定义高光图片，nil 恢复内置资源
func (s *LayerStackSystem) SetSpecularOverride(id ecs.EntityID, img *ebiten.Image) {
	stack, ok := ecs.GetComponent[*components.LayerStackComponent](s.entityManager, id)
	if !ok {
		return
	}
	stack.SpecularOverride = img
	if stack.IsEmpty() {
		return
	}
	s.attachSpecular(id, stack)
	s.layout.Layout(id)
}

// SetPreserveAspect 开关保持宽高比，更新图层填充模式并重新布局
func (s *LayerStackSystem) SetPreserveAspect(id ecs.EntityID, preserve bool) {
	stack, style, ok := s.stackAndStyle(id)
	if !ok {
		return
	}
	style.Config.PreserveAspect = preserve
	mode := contentModeFor(preserve)
	for i := range stack.Views {
		stack.Views[i].ContentMode = mode
	}
	s.layout.Layout(id)
}

// SetParallaxIntensity 设置视差强度，负值按 0 处理
func (s *LayerStackSystem) SetParallaxIntensity(id ecs.EntityID, intensity float64) {
	_, style, ok := s.stackAndStyle(id)
	if !ok {
		return
	}
	if intensity < 0 {
		log.Warn().Float64("intensity", intensity).Msg("[LayerStackSystem] negative parallax intensity clamped to 0")
		intensity = 0
	}
	style.Config.ParallaxIntensity = intensity
	if anim, ok := ecs.GetComponent[*components.ParallaxAnimationComponent](s.entityManager, id); ok {
		anim.Intensity = intensity
		// 按住时立即按新强度重新计算
		if anim.HighlightActive && anim.TouchPoint != nil {
			s.animation.ProcessMovement(id, *anim.TouchPoint)
		}
	}
}

// SetShadowColor 设置阴影颜色，下一帧立即生效
func (s *LayerStackSystem) SetShadowColor(id ecs.EntityID, rgba [4]uint8) {
	_, style, ok := s.stackAndStyle(id)
	if !ok {
		return
	}
	style.Config.ShadowColor = rgba
	style.ShadowDirty = true
}

// attachSpecular 挂载或更新高光覆盖层
func (s *LayerStackSystem) attachSpecular(id ecs.EntityID, stack *components.LayerStackComponent) {
	img := stack.SpecularImage()
	if img == nil {
		log.Warn().Uint64("entity", uint64(id)).Msg("[LayerStackSystem] no specular image, highlight disabled")
		stack.Specular = nil
		return
	}
	if stack.Specular == nil {
		stack.Specular = &components.SpecularView{}
	}
	stack.Specular.Image = img
}

// resetGesture 把手势状态机恢复到空闲
func (s *LayerStackSystem) resetGesture(id ecs.EntityID) {
	gesture, ok := ecs.GetComponent[*components.GestureComponent](s.entityManager, id)
	if !ok {
		return
	}
	gesture.State = components.GestureIdle
	for i := range gesture.Active {
		gesture.Active[i] = false
	}
	for _, r := range gesture.Recognizers() {
		if r.IsActive() {
			r.Phase = components.RecognizerFailed
		}
	}
}

func (s *LayerStackSystem) stackAndStyle(id ecs.EntityID) (*components.LayerStackComponent, *components.ButtonStyleComponent, bool) {
	stack, ok := ecs.GetComponent[*components.LayerStackComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	style, ok := ecs.GetComponent[*components.ButtonStyleComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	return stack, style, true
}

// contentModeFor 保持宽高比时图层使用 aspect-fill
func contentModeFor(preserveAspect bool) components.ContentMode {
	if preserveAspect {
		return components.ContentAspectFill
	}
	return components.ContentStretch
}

// imageSize 返回图片尺寸，nil 或零尺寸时 ok 为 false
func imageSize(img *ebiten.Image) (utils.Size, bool) {
	if img == nil {
		return utils.Size{}, false
	}
	b := img.Bounds()
	size := utils.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	return size, !size.IsEmpty()
}
