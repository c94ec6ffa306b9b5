package systems

import (
	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/ecs"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/rs/zerolog/log"
)

// GestureSystem 手势识别与视差状态机
//
// 职责：
//   - 把原始指针采样分发给被按下的按钮（按下时命中，之后一直捕获到松开）
//   - 识别拖拽、长按（两者驱动视差状态机）和点击（直接触发激活信号）
//   - 状态机：Idle -> Active -> Idle，驱动 ParallaxAnimationSystem
//
// 图层栈为空的按钮忽略所有拖拽/长按输入。
type GestureSystem struct {
	entityManager *ecs.EntityManager
	animation     *ParallaxAnimationSystem
}

// NewGestureSystem 创建手势系统
func NewGestureSystem(em *ecs.EntityManager, animation *ParallaxAnimationSystem) *GestureSystem {
	return &GestureSystem{
		entityManager: em,
		animation:     animation,
	}
}

// HandleSamples 按顺序处理一批指针采样
func (s *GestureSystem) HandleSamples(samples []utils.PointerSample) {
	for _, sample := range samples {
		s.HandleSample(sample)
	}
}

// HandleSample 处理一个指针采样（屏幕坐标）
func (s *GestureSystem) HandleSample(sample utils.PointerSample) {
	if sample.Phase == utils.PointerBegin {
		s.capture(sample)
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.GestureComponent, *components.ButtonFrameComponent](s.entityManager) {
		gesture, _ := ecs.GetComponent[*components.GestureComponent](s.entityManager, id)
		if !gesture.Tracking || gesture.PointerID != sample.ID {
			continue
		}
		switch sample.Phase {
		case utils.PointerMove:
			s.track(id, gesture, sample)
		case utils.PointerEnd, utils.PointerCancel:
			s.release(id, gesture, sample)
		}
	}
}

// capture 按下时命中最上层（ID 最大）的按钮并开始跟踪
func (s *GestureSystem) capture(sample utils.PointerSample) {
	entities := ecs.GetEntitiesWith2[*components.GestureComponent, *components.ButtonFrameComponent](s.entityManager)
	for i := len(entities) - 1; i >= 0; i-- {
		id := entities[i]
		gesture, _ := ecs.GetComponent[*components.GestureComponent](s.entityManager, id)
		fc, _ := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, id)
		if gesture.Tracking || !fc.Frame.Contains(sample.Pos) {
			continue
		}

		gesture.Tracking = true
		gesture.PointerID = sample.ID
		gesture.StartPos = sample.Pos
		gesture.LastPos = sample.Pos
		gesture.StartTime = sample.Time
		gesture.Moved = false
		for _, r := range gesture.Recognizers() {
			r.Phase = components.RecognizerPossible
		}
		return
	}
}

// track 处理按住期间的采样，推进拖拽和长按识别器
func (s *GestureSystem) track(id ecs.EntityID, gesture *components.GestureComponent, sample utils.PointerSample) {
	gesture.LastPos = sample.Pos
	distance := sample.Pos.Sub(gesture.StartPos).Len()
	if distance > gesture.DragDeadZone {
		gesture.Moved = true
	}
	local := s.toLocal(id, sample.Pos)

	// 拖拽：超过死区后开始
	switch {
	case gesture.Pan.Phase == components.RecognizerPossible && gesture.Moved:
		s.beginRecognizer(id, gesture, &gesture.Pan, local)
	case gesture.Pan.IsActive():
		gesture.Pan.Phase = components.RecognizerChanged
		s.OnGestureMove(id, components.GesturePan, local)
	}

	// 长按：按住足够久且移动不超过允许范围后开始
	switch {
	case gesture.LongPress.Phase == components.RecognizerPossible:
		if distance > gesture.LongPressMovement {
			gesture.LongPress.Phase = components.RecognizerFailed
		} else if sample.Time-gesture.StartTime >= gesture.LongPressDuration {
			s.beginRecognizer(id, gesture, &gesture.LongPress, local)
		}
	case gesture.LongPress.IsActive():
		gesture.LongPress.Phase = components.RecognizerChanged
		s.OnGestureMove(id, components.GestureLongPress, local)
	}
}

// beginRecognizer 识别器开始；不允许同时识别且已有其他识别器激活时直接失败
func (s *GestureSystem) beginRecognizer(id ecs.EntityID, gesture *components.GestureComponent, r *components.Recognizer, local utils.Point) {
	if !gesture.SimultaneousRecognition {
		for _, other := range gesture.Recognizers() {
			if other != r && other.IsActive() {
				r.Phase = components.RecognizerFailed
				return
			}
		}
	}
	r.Phase = components.RecognizerBegan
	s.OnGestureBegin(id, r.Source, local)
}

// release 松开或取消：结束所有激活的识别器；未识别任何连续手势时判定点击
func (s *GestureSystem) release(id ecs.EntityID, gesture *components.GestureComponent, sample utils.PointerSample) {
	recognized := false
	for _, r := range gesture.Recognizers() {
		if r.IsActive() {
			s.OnGestureEnd(id, r.Source)
		}
		if r.Phase != components.RecognizerPossible && r.Phase != components.RecognizerFailed {
			recognized = true
		}
		r.Phase = components.RecognizerEnded
	}
	gesture.Tracking = false

	if sample.Phase != utils.PointerEnd || recognized || gesture.Moved {
		return
	}
	if sample.Time-gesture.StartTime > gesture.TapMaxDuration {
		return
	}
	if fc, ok := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, id); ok && fc.Frame.Contains(sample.Pos) {
		s.activate(id)
	}
}

// activate 发出激活信号，不经过视差动画
func (s *GestureSystem) activate(id ecs.EntityID) {
	act, ok := ecs.GetComponent[*components.ActivationComponent](s.entityManager, id)
	if !ok {
		return
	}
	act.Count++
	log.Info().Uint64("entity", uint64(id)).Int("count", act.Count).Msg("[GestureSystem] button activated")
	if act.OnActivated != nil {
		act.OnActivated(id)
	}
}

// OnGestureBegin 手势来源开始
//
// Idle 时进入 Active 并调用 EnterMovement + ProcessMovement；
// 已经 Active（另一个来源同时识别）时只调用 ProcessMovement。
func (s *GestureSystem) OnGestureBegin(id ecs.EntityID, source components.GestureSource, point utils.Point) {
	gesture, ok := s.acceptInput(id)
	if !ok || gesture.Active[source] {
		return
	}
	gesture.Active[source] = true

	if gesture.State == components.GestureIdle {
		gesture.State = components.GestureActive
		log.Debug().Uint64("entity", uint64(id)).Str("source", source.String()).Msg("[GestureSystem] idle -> active")
		s.animation.EnterMovement(id)
	}
	s.animation.ProcessMovement(id, point)
}

// OnGestureMove 激活中的手势来源移动
func (s *GestureSystem) OnGestureMove(id ecs.EntityID, source components.GestureSource, point utils.Point) {
	gesture, ok := s.acceptInput(id)
	if !ok || !gesture.Active[source] {
		return
	}
	s.animation.ProcessMovement(id, point)
}

// OnGestureEnd 手势来源结束或取消；最后一个来源结束时回到 Idle 并调用 ExitMovement
// 结束采样携带的位置不会被处理
func (s *GestureSystem) OnGestureEnd(id ecs.EntityID, source components.GestureSource) {
	gesture, ok := s.acceptInput(id)
	if !ok || !gesture.Active[source] {
		return
	}
	gesture.Active[source] = false
	if gesture.ActiveCount() > 0 {
		return
	}

	gesture.State = components.GestureIdle
	log.Debug().Uint64("entity", uint64(id)).Str("source", source.String()).Msg("[GestureSystem] active -> idle")
	s.animation.ExitMovement(id)
}

// acceptInput 返回手势组件；图层栈为空时忽略输入
func (s *GestureSystem) acceptInput(id ecs.EntityID) (*components.GestureComponent, bool) {
	gesture, ok := ecs.GetComponent[*components.GestureComponent](s.entityManager, id)
	if !ok {
		return nil, false
	}
	stack, ok := ecs.GetComponent[*components.LayerStackComponent](s.entityManager, id)
	if !ok || stack.IsEmpty() {
		return nil, false
	}
	return gesture, true
}

// toLocal 屏幕坐标转按钮局部坐标
func (s *GestureSystem) toLocal(id ecs.EntityID, p utils.Point) utils.Point {
	fc, ok := ecs.GetComponent[*components.ButtonFrameComponent](s.entityManager, id)
	if !ok {
		return p
	}
	return p.Sub(fc.Frame.Origin())
}
