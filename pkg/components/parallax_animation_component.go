package components

import "github.com/decker502/tvbutton/pkg/utils"

// ParallaxAnimationComponent 视差动画状态（AnimationState）
//
// 只由 ParallaxAnimationSystem 修改，布局和渲染系统只读。
// 静止状态：所有偏移与倾斜为零，Scale 为 1，高光透明。
type ParallaxAnimationComponent struct {
	// Intensity 视差强度，>= 0
	Intensity float64
	// HighlightActive 手指按下期间为 true
	HighlightActive bool
	// TouchPoint 最近一次处理的触点（按钮局部坐标），未按下时为 nil
	TouchPoint *utils.Point

	// SpecularOffset 高光中心相对容器中心的偏移
	SpecularOffset utils.Point
	// SpecularAlpha 高光当前不透明度
	SpecularAlpha float64
	// LayerOffsets 每个图层的位移，按 DisplayOrder 索引
	LayerOffsets []utils.Point

	// ===== 按钮整体变换 =====
	Scale        float64
	TiltX        float64 // 绕 X 轴倾斜（度）
	TiltY        float64 // 绕 Y 轴倾斜（度）
	TiltZ        float64 // 绕 Z 轴旋转（度）
	ButtonOffset utils.Point

	// ===== 阴影 =====
	ShadowOffsetY float64
	ShadowOpacity float64

	// ===== 进行中的插值 =====
	// Returning 松开后回弹动画进行中（布局仍视为高光模式）
	Returning bool
	// ReturnTween 回弹进度 0 -> 1，lerp 起点为 ReturnFrom
	ReturnTween *utils.Tween
	ReturnFrom  ParallaxPose
	// FadeTween 高光淡入
	FadeTween *utils.Tween
	// PressTween 按下时放大与阴影抬升进度 0 -> 1，起点为 PressFrom
	PressTween *utils.Tween
	PressFrom  ParallaxPose
}

// ParallaxPose 可插值的姿态快照
type ParallaxPose struct {
	SpecularOffset utils.Point
	SpecularAlpha  float64
	LayerOffsets   []utils.Point
	Scale          float64
	TiltX          float64
	TiltY          float64
	TiltZ          float64
	ButtonOffset   utils.Point
	ShadowOffsetY  float64
	ShadowOpacity  float64
}

// HighlightMode 高光模式：按下中或回弹未结束，布局系统此时不调整子视图
func (c *ParallaxAnimationComponent) HighlightMode() bool {
	return c.HighlightActive || c.Returning
}
