package systems

import (
	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/ecs"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/rs/zerolog/log"
)

// LayoutSystem 合成器布局系统
//
// 职责：
//   - 容器填满按钮边界
//   - 维护与按钮圆角矩形一致的阴影轮廓（无图层时清除）
//   - 非高光模式下让每个图层视图填满容器，高光层为容器的 SpecularScale 倍
//   - PreserveAspect 开启时按第一张图层的宽高比重新计算按钮自身的矩形
type LayoutSystem struct {
	entityManager *ecs.EntityManager
}

// NewLayoutSystem 创建布局系统
func NewLayoutSystem(em *ecs.EntityManager) *LayoutSystem {
	return &LayoutSystem{entityManager: em}
}

// SetFrame 宿主布局修改按钮矩形（边界变化通知）
func (s *LayoutSystem) SetFrame(id ecs.EntityID, frame utils.Rect) {
	fc, ok := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, id)
	if !ok {
		return
	}
	fc.Frame = frame
	fc.Dirty = true
}

// SetParentFrame 设置父容器矩形，nil 表示没有父容器
func (s *LayoutSystem) SetParentFrame(id ecs.EntityID, parent *utils.Rect) {
	fc, ok := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, id)
	if !ok {
		return
	}
	if parent != nil {
		p := *parent
		parent = &p
	}
	fc.ParentFrame = parent
	fc.Dirty = true
}

// Update 为所有矩形变化过的按钮重新布局
func (s *LayoutSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonFrameComponent](s.entityManager) {
		fc, _ := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, id)
		if fc.Dirty {
			s.Layout(id)
		}
	}
}

// Layout 立即为按钮执行一次布局
func (s *LayoutSystem) Layout(id ecs.EntityID) {
	fc, ok := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, id)
	if !ok {
		return
	}
	comp, ok := ecs.GetComponent[*components.CompositorComponent](s.entityManager, id)
	if !ok {
		return
	}
	stack, ok := ecs.GetComponent[*components.LayerStackComponent](s.entityManager, id)
	if !ok {
		return
	}
	style, ok := ecs.GetComponent[*components.ButtonStyleComponent](s.entityManager, id)
	if !ok {
		return
	}
	fc.Dirty = false
	comp.LayoutCount++

	s.layoutContainer(fc, comp, stack, style)

	// 高光模式下由动画系统掌控子视图位置，布局一次后保持不动
	if anim, ok := ecs.GetComponent[*components.ParallaxAnimationComponent](s.entityManager, id); ok && anim.HighlightMode() {
		return
	}

	s.resizeViews(comp, stack, style)

	if !style.Config.PreserveAspect || stack.IsEmpty() {
		return
	}

	fitted, ok := s.fitFrame(fc, stack)
	if !ok {
		return
	}
	if fitted != fc.Frame {
		log.Debug().
			Uint64("entity", uint64(id)).
			Float64("width", fitted.Width).
			Float64("height", fitted.Height).
			Msg("[LayoutSystem] aspect-fit frame")
		fc.Frame = fitted
		// 矩形已变化，按新边界再布局一次
		s.layoutContainer(fc, comp, stack, style)
		s.resizeViews(comp, stack, style)
	}
	if stack.Specular != nil {
		stack.Specular.Frame = stack.Specular.Frame.WithSize(fitted.Size())
	}
}

// layoutContainer 容器填满按钮边界并更新阴影轮廓
func (s *LayoutSystem) layoutContainer(fc *components.ButtonFrameComponent, comp *components.CompositorComponent, stack *components.LayerStackComponent, style *components.ButtonStyleComponent) {
	comp.Container = fc.Bounds()

	if len(stack.Views) == 0 && stack.Specular == nil {
		if comp.ShadowPath != nil {
			style.ShadowDirty = true
		}
		comp.ShadowPath = nil
		return
	}

	path := &utils.RoundedRect{Rect: comp.Container, Radius: style.Config.CornerRadius}
	if comp.ShadowPath == nil || *comp.ShadowPath != *path {
		style.ShadowDirty = true
	}
	comp.ShadowPath = path
}

// resizeViews 图层视图填满容器，高光层按 SpecularScale 缩放；保持原点不变
func (s *LayoutSystem) resizeViews(comp *components.CompositorComponent, stack *components.LayerStackComponent, style *components.ButtonStyleComponent) {
	size := comp.Container.Size()
	for i := range stack.Views {
		stack.Views[i].Frame = stack.Views[i].Frame.WithSize(size)
	}
	if stack.Specular != nil {
		stack.Specular.Frame = stack.Specular.Frame.WithSize(size.Scale(style.Config.SpecularScale))
	}
}

// fitFrame 计算第一张图层在父容器（存在且非零）或当前矩形内的 aspect-fit 矩形
//
// 有父容器时结果在父容器内居中；没有时在当前矩形内居中。
func (s *LayoutSystem) fitFrame(fc *components.ButtonFrameComponent, stack *components.LayerStackComponent) (utils.Rect, bool) {
	img := stack.Layers[0].Image
	if img == nil {
		return utils.Rect{}, false
	}
	b := img.Bounds()
	source := utils.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}

	box := fc.Frame
	if p := fc.ParentFrame; p != nil && p.Width != 0 && p.Height != 0 {
		box = *p
	}
	return utils.CenterIn(utils.FitSize(source, box.Size()), box), true
}
