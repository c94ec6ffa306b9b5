package systems

import (
	"image/color"
	"math"

	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/ecs"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ParallaxRenderSystem 视差按钮渲染系统
//
// 每个按钮先合成到与容器同尺寸的离屏图片：
//  1. 按顺序绘制图层（叠加各自的视差位移）
//  2. 绘制高光层（当前不透明度）
//  3. 用圆角遮罩裁剪（destination-in）
//
// 然后依次绘制阴影和离屏图片到屏幕，应用按钮的缩放、倾斜与位移。
type ParallaxRenderSystem struct {
	entityManager *ecs.EntityManager
	caches        map[ecs.EntityID]*renderCache
}

// renderCache 每个按钮的离屏资源
type renderCache struct {
	offscreen *ebiten.Image
	mask      *ebiten.Image
	maskKey   utils.RoundedRect
}

// NewParallaxRenderSystem 创建渲染系统
func NewParallaxRenderSystem(em *ecs.EntityManager) *ParallaxRenderSystem {
	return &ParallaxRenderSystem{
		entityManager: em,
		caches:        make(map[ecs.EntityID]*renderCache),
	}
}

// Draw 渲染所有视差按钮（按实体 ID 升序，后创建的在上层）
func (s *ParallaxRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith3[*components.LayerStackComponent, *components.ParallaxAnimationComponent, *components.CompositorComponent](s.entityManager)
	alive := make(map[ecs.EntityID]bool, len(entities))
	for _, id := range entities {
		alive[id] = true
		s.DrawButton(screen, id)
	}

	// 释放已删除按钮的离屏图片
	for id, cache := range s.caches {
		if !alive[id] {
			cache.dispose()
			delete(s.caches, id)
		}
	}
}

// DrawButton 渲染单个按钮
func (s *ParallaxRenderSystem) DrawButton(screen *ebiten.Image, id ecs.EntityID) {
	stack, ok := ecs.GetComponent[*components.LayerStackComponent](s.entityManager, id)
	if !ok || stack.IsEmpty() {
		return
	}
	anim, ok := ecs.GetComponent[*components.ParallaxAnimationComponent](s.entityManager, id)
	if !ok {
		return
	}
	comp, ok := ecs.GetComponent[*components.CompositorComponent](s.entityManager, id)
	if !ok {
		return
	}
	fc, ok := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, id)
	if !ok {
		return
	}
	style, ok := ecs.GetComponent[*components.ButtonStyleComponent](s.entityManager, id)
	if !ok {
		return
	}

	w := int(math.Ceil(comp.Container.Width))
	h := int(math.Ceil(comp.Container.Height))
	if w <= 0 || h <= 0 {
		return
	}

	cache := s.cacheFor(id, w, h)
	if style.ShadowDirty || cache.mask == nil || (comp.ShadowPath != nil && cache.maskKey != *comp.ShadowPath) {
		cache.rebuildMask(comp)
		style.ShadowDirty = false
	}

	s.composite(cache.offscreen, stack, anim, comp)
	if cache.mask != nil {
		op := &ebiten.DrawImageOptions{}
		op.Blend = ebiten.BlendDestinationIn
		cache.offscreen.DrawImage(cache.mask, op)
	}

	geo := ButtonGeoM(fc.Frame, anim)

	// 阴影：圆角遮罩着色后向下偏移
	if comp.ShadowPath != nil && cache.mask != nil && anim.ShadowOpacity > 0 {
		c := style.Config.ShadowColor
		op := &ebiten.DrawImageOptions{}
		op.GeoM = geo
		op.GeoM.Translate(0, anim.ShadowOffsetY)
		op.ColorScale.ScaleWithColor(color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]})
		op.ColorScale.ScaleAlpha(float32(anim.ShadowOpacity))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(cache.mask, op)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = geo
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(cache.offscreen, op)
}

// composite 把图层和高光合成到离屏图片
func (s *ParallaxRenderSystem) composite(dst *ebiten.Image, stack *components.LayerStackComponent, anim *components.ParallaxAnimationComponent, comp *components.CompositorComponent) {
	dst.Clear()

	for i, view := range stack.Views {
		var offset utils.Point
		if i < len(anim.LayerOffsets) {
			offset = anim.LayerOffsets[i]
		}
		drawLayerView(dst, view, offset)
	}

	spec := stack.Specular
	if spec == nil || spec.Image == nil || anim.SpecularAlpha <= 0 {
		return
	}
	size := spec.Frame.Size()
	if size.IsEmpty() {
		return
	}
	b := spec.Image.Bounds()
	center := comp.Container.Center().Add(anim.SpecularOffset)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.Width/float64(b.Dx()), size.Height/float64(b.Dy()))
	op.GeoM.Translate(center.X-size.Width/2, center.Y-size.Height/2)
	op.ColorScale.ScaleAlpha(float32(anim.SpecularAlpha))
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(spec.Image, op)
}

// drawLayerView 按填充模式绘制一个图层视图
func drawLayerView(dst *ebiten.Image, view components.LayerView, offset utils.Point) {
	if view.Image == nil {
		return
	}
	geo, ok := LayerGeoM(view, offset)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geo
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(view.Image, op)
}

// LayerGeoM 计算图层图片到容器坐标的变换
//
// aspect-fill 时等比放大到覆盖视图并居中；stretch 时拉伸填满。
func LayerGeoM(view components.LayerView, offset utils.Point) (ebiten.GeoM, bool) {
	var geo ebiten.GeoM
	if view.Image == nil {
		return geo, false
	}
	b := view.Image.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	fw, fh := view.Frame.Width, view.Frame.Height
	if sw <= 0 || sh <= 0 || fw <= 0 || fh <= 0 {
		return geo, false
	}

	switch view.ContentMode {
	case components.ContentAspectFill:
		scale := math.Max(fw/sw, fh/sh)
		geo.Scale(scale, scale)
		geo.Translate((fw-sw*scale)/2, (fh-sh*scale)/2)
	default:
		geo.Scale(fw/sw, fh/sh)
	}
	geo.Translate(view.Frame.X+offset.X, view.Frame.Y+offset.Y)
	return geo, true
}

// ButtonGeoM 计算离屏图片到屏幕的变换
//
// 以按钮中心为原点：按 Scale 缩放，X/Y 倾斜表现为余弦透视收缩，
// Z 倾斜为平面旋转，最后平移到 frame 并叠加 ButtonOffset。
func ButtonGeoM(frame utils.Rect, anim *components.ParallaxAnimationComponent) ebiten.GeoM {
	var geo ebiten.GeoM
	w, h := frame.Width, frame.Height

	scale := anim.Scale
	if scale <= 0 {
		scale = 1
	}
	sx := scale * math.Cos(degToRad(anim.TiltY))
	sy := scale * math.Cos(degToRad(anim.TiltX))

	geo.Translate(-w/2, -h/2)
	geo.Scale(sx, sy)
	geo.Rotate(degToRad(anim.TiltZ))
	geo.Translate(frame.X+w/2+anim.ButtonOffset.X, frame.Y+h/2+anim.ButtonOffset.Y)
	return geo
}

// cacheFor 返回尺寸匹配的离屏资源，尺寸变化时重建
func (s *ParallaxRenderSystem) cacheFor(id ecs.EntityID, w, h int) *renderCache {
	cache, ok := s.caches[id]
	if ok {
		b := cache.offscreen.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return cache
		}
		cache.dispose()
	}
	cache = &renderCache{offscreen: ebiten.NewImage(w, h)}
	s.caches[id] = cache
	return cache
}

// rebuildMask 按阴影轮廓重新光栅化圆角遮罩
func (c *renderCache) rebuildMask(comp *components.CompositorComponent) {
	if c.mask != nil {
		c.mask.Deallocate()
		c.mask = nil
	}
	if comp.ShadowPath == nil {
		c.maskKey = utils.RoundedRect{}
		return
	}
	alpha := utils.RasterizeRoundedRect(*comp.ShadowPath)
	if alpha == nil {
		return
	}
	c.mask = ebiten.NewImageFromImage(alpha)
	c.maskKey = *comp.ShadowPath
}

// dispose 释放 GPU 资源
func (c *renderCache) dispose() {
	if c.offscreen != nil {
		c.offscreen.Deallocate()
	}
	if c.mask != nil {
		c.mask.Deallocate()
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
