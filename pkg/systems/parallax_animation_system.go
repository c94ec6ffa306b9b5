package systems

import (
	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/config"
	"github.com/decker502/tvbutton/pkg/ecs"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/rs/zerolog/log"
)

// ParallaxAnimationSystem 视差动画引擎
//
// 职责：
//   - EnterMovement：进入高光模式，高光淡入，按钮放大、阴影抬升
//   - ProcessMovement：根据触点计算每个图层的位移、按钮倾斜和高光位置
//   - ExitMovement：所有偏移回弹到静止姿态，结束后恢复正常布局
//   - Update：推进进行中的插值
//
// 引擎从不返回错误；触点超出按钮边界时位移随之变大，只有高光位置被限制。
type ParallaxAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewParallaxAnimationSystem 创建视差动画系统
func NewParallaxAnimationSystem(em *ecs.EntityManager) *ParallaxAnimationSystem {
	return &ParallaxAnimationSystem{entityManager: em}
}

// RestPose 返回按钮的静止姿态
func RestPose(cfg config.ButtonConfig, layerCount int) components.ParallaxPose {
	return components.ParallaxPose{
		LayerOffsets:  make([]utils.Point, layerCount),
		Scale:         1,
		ShadowOffsetY: cfg.ShadowFactor / 3,
		ShadowOpacity: cfg.ShadowOpacity,
	}
}

// NewParallaxAnimationComponent 创建处于静止姿态的动画组件
func NewParallaxAnimationComponent(cfg config.ButtonConfig) *components.ParallaxAnimationComponent {
	anim := &components.ParallaxAnimationComponent{Intensity: cfg.ParallaxIntensity}
	applyPose(anim, RestPose(cfg, 0))
	return anim
}

// EnterMovement 进入高光模式；已处于高光模式时不做任何事
func (s *ParallaxAnimationSystem) EnterMovement(id ecs.EntityID) {
	anim, fc, style, ok := s.parts(id)
	if !ok || anim.HighlightActive {
		return
	}
	cfg := style.Config

	// 覆盖尚未结束的回弹动画，从当前姿态继续
	s.cancelTweens(anim)
	anim.Returning = false
	anim.HighlightActive = true

	easing, _ := utils.EasingByName(cfg.Easing)
	anim.FadeTween = utils.NewTween(anim.SpecularAlpha, cfg.SpecularAlpha, cfg.FadeInDuration, easing)
	anim.PressFrom = snapshotPose(anim)
	anim.PressTween = utils.NewTween(0, 1, cfg.FadeInDuration, easing)
	if cfg.FadeInDuration <= 0 {
		s.stepPress(anim, fc, cfg)
		anim.SpecularAlpha = cfg.SpecularAlpha
		anim.FadeTween, anim.PressTween = nil, nil
	}

	log.Debug().Uint64("entity", uint64(id)).Msg("[ParallaxAnimationSystem] enter movement")
}

// ProcessMovement 根据触点（按钮局部坐标）更新视差姿态
//
// 对同一个触点重复调用得到相同的结果。未处于高光模式时忽略。
func (s *ParallaxAnimationSystem) ProcessMovement(id ecs.EntityID, point utils.Point) {
	anim, fc, style, ok := s.parts(id)
	if !ok || !anim.HighlightActive {
		return
	}
	cfg := style.Config
	bounds := fc.Bounds()
	n := normalizedOffset(point, bounds)

	count := len(anim.LayerOffsets)
	for i := 0; i < count; i++ {
		anim.LayerOffsets[i] = LayerDisplacement(n, i, count, cfg.MaxTranslation, anim.Intensity)
	}

	anim.TiltX = n.Y * cfg.MaxTilt
	anim.TiltY = -n.X * cfg.MaxTilt
	anim.TiltZ = 0
	if cfg.TiltZFactor != 0 {
		anim.TiltZ = (anim.TiltX + anim.TiltY) / cfg.TiltZFactor
	}
	anim.ButtonOffset = n.Mul(cfg.MaxTranslation * anim.Intensity / 2)

	// 高光跟随触点，但只能在容器范围内移动
	clamped := utils.ClampPoint(point, bounds)
	anim.SpecularOffset = clamped.Sub(bounds.Center())

	p := point
	anim.TouchPoint = &p
}

// ExitMovement 离开高光模式，启动回弹动画；未处于高光模式时不做任何事
func (s *ParallaxAnimationSystem) ExitMovement(id ecs.EntityID) {
	anim, fc, style, ok := s.parts(id)
	if !ok || !anim.HighlightActive {
		return
	}
	cfg := style.Config

	s.cancelTweens(anim)
	anim.HighlightActive = false
	anim.TouchPoint = nil

	anim.ReturnFrom = snapshotPose(anim)
	easing, _ := utils.EasingByName(cfg.Easing)
	anim.ReturnTween = utils.NewTween(0, 1, cfg.AnimationDuration, easing)
	anim.Returning = true
	s.stepReturn(id, anim, fc, cfg)

	log.Debug().Uint64("entity", uint64(id)).Msg("[ParallaxAnimationSystem] exit movement")
}

// Reset 立即回到静止姿态（如图层栈被清空时）
func (s *ParallaxAnimationSystem) Reset(id ecs.EntityID) {
	anim, _, style, ok := s.parts(id)
	if !ok {
		return
	}
	s.cancelTweens(anim)
	anim.HighlightActive = false
	anim.Returning = false
	anim.TouchPoint = nil
	applyPose(anim, RestPose(style.Config, len(anim.LayerOffsets)))
}

// Update 推进所有按钮的插值
func (s *ParallaxAnimationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ParallaxAnimationComponent](s.entityManager) {
		anim, fc, style, ok := s.parts(id)
		if !ok {
			continue
		}
		cfg := style.Config

		if anim.FadeTween != nil {
			anim.FadeTween.Update(deltaTime)
			anim.SpecularAlpha = anim.FadeTween.Value()
			if anim.FadeTween.Done() {
				anim.FadeTween = nil
			}
		}
		if anim.PressTween != nil {
			anim.PressTween.Update(deltaTime)
			s.stepPress(anim, fc, cfg)
			if anim.PressTween.Done() {
				anim.PressTween = nil
			}
		}
		if anim.ReturnTween != nil {
			anim.ReturnTween.Update(deltaTime)
			s.stepReturn(id, anim, fc, cfg)
		}
	}
}

// stepPress 按 PressTween 进度插值放大与阴影
func (s *ParallaxAnimationSystem) stepPress(anim *components.ParallaxAnimationComponent, fc *components.ButtonFrameComponent, cfg config.ButtonConfig) {
	t := anim.PressTween.Progress()
	from := anim.PressFrom
	pressedShadow := 0.0
	if cfg.ShadowFactor != 0 {
		pressedShadow = fc.Frame.Height / cfg.ShadowFactor
	}
	anim.Scale = utils.Lerp(from.Scale, cfg.PressedScale, t)
	anim.ShadowOffsetY = utils.Lerp(from.ShadowOffsetY, pressedShadow, t)
	anim.ShadowOpacity = utils.Lerp(from.ShadowOpacity, cfg.PressedShadowOpacity, t)
}

// stepReturn 按 ReturnTween 进度从 ReturnFrom 插值到静止姿态
func (s *ParallaxAnimationSystem) stepReturn(id ecs.EntityID, anim *components.ParallaxAnimationComponent, fc *components.ButtonFrameComponent, cfg config.ButtonConfig) {
	rest := RestPose(cfg, len(anim.LayerOffsets))
	applyPose(anim, lerpPose(anim.ReturnFrom, rest, anim.ReturnTween.Progress()))

	if !anim.ReturnTween.Done() {
		return
	}
	anim.ReturnTween = nil
	anim.Returning = false
	// 回弹结束，恢复由边界驱动的布局
	fc.Dirty = true
	log.Debug().Uint64("entity", uint64(id)).Msg("[ParallaxAnimationSystem] returned to rest")
}

// cancelTweens 取消所有插值，姿态停留在当前值
func (s *ParallaxAnimationSystem) cancelTweens(anim *components.ParallaxAnimationComponent) {
	anim.FadeTween.Cancel()
	anim.PressTween.Cancel()
	anim.ReturnTween.Cancel()
	anim.FadeTween, anim.PressTween, anim.ReturnTween = nil, nil, nil
}

// parts 取出动画引擎需要的组件
func (s *ParallaxAnimationSystem) parts(id ecs.EntityID) (*components.ParallaxAnimationComponent, *components.ButtonFrameComponent, *components.ButtonStyleComponent, bool) {
	anim, ok := ecs.GetComponent[*components.ParallaxAnimationComponent](s.entityManager, id)
	if !ok {
		return nil, nil, nil, false
	}
	fc, ok := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, id)
	if !ok {
		return nil, nil, nil, false
	}
	style, ok := ecs.GetComponent[*components.ButtonStyleComponent](s.entityManager, id)
	if !ok {
		return nil, nil, nil, false
	}
	return anim, fc, style, true
}

// normalizedOffset 触点相对中心的偏移，按半宽/半高归一化（不限制范围）
// 任一维度为零时该维度返回 0
func normalizedOffset(point utils.Point, bounds utils.Rect) utils.Point {
	d := point.Sub(bounds.Center())
	var n utils.Point
	if bounds.Width > 0 {
		n.X = d.X / (bounds.Width / 2)
	}
	if bounds.Height > 0 {
		n.Y = d.Y / (bounds.Height / 2)
	}
	return n
}

// LayerDisplacement 计算第 index 个图层（共 count 个，0 为最后面）的位移
//
// 位移与触点偏移、强度和图层深度成正比，方向与触点相反；
// 深度 (index+1)/count 使越靠前的图层移动越多。
func LayerDisplacement(n utils.Point, index, count int, maxTranslation, intensity float64) utils.Point {
	if count <= 0 {
		return utils.Point{}
	}
	depth := float64(index+1) / float64(count)
	return n.Mul(-maxTranslation * depth * intensity)
}

// snapshotPose 复制当前姿态
func snapshotPose(anim *components.ParallaxAnimationComponent) components.ParallaxPose {
	offsets := make([]utils.Point, len(anim.LayerOffsets))
	copy(offsets, anim.LayerOffsets)
	return components.ParallaxPose{
		SpecularOffset: anim.SpecularOffset,
		SpecularAlpha:  anim.SpecularAlpha,
		LayerOffsets:   offsets,
		Scale:          anim.Scale,
		TiltX:          anim.TiltX,
		TiltY:          anim.TiltY,
		TiltZ:          anim.TiltZ,
		ButtonOffset:   anim.ButtonOffset,
		ShadowOffsetY:  anim.ShadowOffsetY,
		ShadowOpacity:  anim.ShadowOpacity,
	}
}

// applyPose 把姿态写回组件（LayerOffsets 按组件当前长度写入）
func applyPose(anim *components.ParallaxAnimationComponent, pose components.ParallaxPose) {
	anim.SpecularOffset = pose.SpecularOffset
	anim.SpecularAlpha = pose.SpecularAlpha
	for i := range anim.LayerOffsets {
		if i < len(pose.LayerOffsets) {
			anim.LayerOffsets[i] = pose.LayerOffsets[i]
		} else {
			anim.LayerOffsets[i] = utils.Point{}
		}
	}
	anim.Scale = pose.Scale
	anim.TiltX = pose.TiltX
	anim.TiltY = pose.TiltY
	anim.TiltZ = pose.TiltZ
	anim.ButtonOffset = pose.ButtonOffset
	anim.ShadowOffsetY = pose.ShadowOffsetY
	anim.ShadowOpacity = pose.ShadowOpacity
}

// lerpPose 在两个姿态之间插值
func lerpPose(a, b components.ParallaxPose, t float64) components.ParallaxPose {
	n := len(a.LayerOffsets)
	if len(b.LayerOffsets) > n {
		n = len(b.LayerOffsets)
	}
	offsets := make([]utils.Point, n)
	for i := range offsets {
		var from, to utils.Point
		if i < len(a.LayerOffsets) {
			from = a.LayerOffsets[i]
		}
		if i < len(b.LayerOffsets) {
			to = b.LayerOffsets[i]
		}
		offsets[i] = utils.LerpPoint(from, to, t)
	}
	return components.ParallaxPose{
		SpecularOffset: utils.LerpPoint(a.SpecularOffset, b.SpecularOffset, t),
		SpecularAlpha:  utils.Lerp(a.SpecularAlpha, b.SpecularAlpha, t),
		LayerOffsets:   offsets,
		Scale:          utils.Lerp(a.Scale, b.Scale, t),
		TiltX:          utils.Lerp(a.TiltX, b.TiltX, t),
		TiltY:          utils.Lerp(a.TiltY, b.TiltY, t),
		TiltZ:          utils.Lerp(a.TiltZ, b.TiltZ, t),
		ButtonOffset:   utils.LerpPoint(a.ButtonOffset, b.ButtonOffset, t),
		ShadowOffsetY:  utils.Lerp(a.ShadowOffsetY, b.ShadowOffsetY, t),
		ShadowOpacity:  utils.Lerp(a.ShadowOpacity, b.ShadowOpacity, t),
	}
}
