package utils

import "math"

// EasingFunc 缓动曲线
// 输入进度 t ∈ [0, 1]，输出缓动后的进度 ∈ [0, 1]
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutCubic 三次方缓出（开始快，结束慢）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// easingByName YAML 配置中可用的曲线名
var easingByName = map[string]EasingFunc{
	"linear":       EaseLinear,
	"easeIn":       EaseInQuad,
	"easeOut":      EaseOutQuad,
	"easeOutCubic": EaseOutCubic,
	"easeInOut":    EaseInOutCubic,
}

// EasingByName 根据名称查找缓动曲线
// 未知名称返回 EaseOutQuad 和 false
func EasingByName(name string) (EasingFunc, bool) {
	if fn, ok := easingByName[name]; ok {
		return fn, true
	}
	return EaseOutQuad, false
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
