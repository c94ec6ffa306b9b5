package components

import (
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GestureSource 驱动视差状态机的手势来源
type GestureSource int

const (
	// GesturePan 拖拽
	GesturePan GestureSource = iota
	// GestureLongPress 长按
	GestureLongPress
	gestureSourceCount
)

// String 返回来源名称（日志用）
func (s GestureSource) String() string {
	switch s {
	case GesturePan:
		return "pan"
	case GestureLongPress:
		return "longPress"
	}
	return "unknown"
}

// GestureState 视差状态机的状态
type GestureState int

const (
	// GestureIdle 未按下
	GestureIdle GestureState = iota
	// GestureActive 手指按下（可能在移动）
	GestureActive
)

// RecognizerPhase 连续手势识别器的阶段
type RecognizerPhase int

const (
	// RecognizerPossible 尚未识别
	RecognizerPossible RecognizerPhase = iota
	// RecognizerBegan 已识别（本次采样开始）
	RecognizerBegan
	// RecognizerChanged 识别后的后续采样
	RecognizerChanged
	// RecognizerEnded 手势结束
	RecognizerEnded
	// RecognizerFailed 本次按压不会再识别
	RecognizerFailed
)

// Recognizer 单个连续手势识别器的状态
type Recognizer struct {
	Source GestureSource
	Phase  RecognizerPhase
}

// IsActive 识别器已开始且尚未结束
func (r *Recognizer) IsActive() bool {
	return r.Phase == RecognizerBegan || r.Phase == RecognizerChanged
}

// GestureComponent 按钮的手势状态
//
// Pan 与 LongPress 共用同一个视差状态机；点击单独处理，不驱动动画。
type GestureComponent struct {
	State GestureState
	// Active 当前处于激活状态的手势来源
	Active [gestureSourceCount]bool

	Pan       Recognizer
	LongPress Recognizer

	// SimultaneousRecognition 拖拽和长按是否可以同时识别（注册时的静态配置）
	SimultaneousRecognition bool

	// ===== 识别阈值 =====
	DragDeadZone      float64
	LongPressDuration float64
	LongPressMovement float64
	TapMaxDuration    float64

	// ===== 当前按压 =====
	// Tracking 是否有按压被本按钮捕获
	Tracking  bool
	PointerID ebiten.TouchID
	StartPos  utils.Point
	StartTime float64
	LastPos   utils.Point
	// Moved 本次按压是否超出过拖拽死区
	Moved bool
}

// ActiveCount 当前激活的手势来源数量
func (c *GestureComponent) ActiveCount() int {
	n := 0
	for _, a := range c.Active {
		if a {
			n++
		}
	}
	return n
}

// Recognizers 返回 Pan 和 LongPress 识别器
func (c *GestureComponent) Recognizers() []*Recognizer {
	return []*Recognizer{&c.Pan, &c.LongPress}
}
