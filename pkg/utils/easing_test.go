package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 测试所有缓动曲线的起点和终点
func TestEasingEndpoints(t *testing.T) {
	curves := map[string]EasingFunc{
		"linear":       EaseLinear,
		"easeIn":       EaseInQuad,
		"easeOut":      EaseOutQuad,
		"easeOutCubic": EaseOutCubic,
		"easeInOut":    EaseInOutCubic,
	}

	for name, fn := range curves {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 0.001 {
				t.Errorf("%s(0) = %v, 期望 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 0.001 {
				t.Errorf("%s(1) = %v, 期望 1", name, got)
			}
		})
	}
}

// TestEaseOutQuad 测试二次方缓出中点
func TestEaseOutQuad(t *testing.T) {
	// 1 - (1-0.5)^2 = 0.75
	if got := EaseOutQuad(0.5); math.Abs(got-0.75) > 0.001 {
		t.Errorf("EaseOutQuad(0.5) = %v, 期望 0.75", got)
	}

	// 缓出曲线前半段应快于线性
	for p := 0.1; p < 0.5; p += 0.1 {
		if EaseOutQuad(p) <= EaseLinear(p) {
			t.Errorf("EaseOutQuad(%v) 应该大于线性值", p)
		}
	}
}

// TestEasingByName 测试按名称查找缓动曲线
func TestEasingByName(t *testing.T) {
	tests := []struct {
		name   string
		found  bool
		sample float64
	}{
		{"linear", true, 0.5},
		{"easeOutCubic", true, 0.875},
		{"bounce", false, 0.75}, // 未知名称回退到 EaseOutQuad
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := EasingByName(tt.name)
			if ok != tt.found {
				t.Errorf("EasingByName(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if got := fn(0.5); math.Abs(got-tt.sample) > 0.001 {
				t.Errorf("EasingByName(%q)(0.5) = %v, want %v", tt.name, got, tt.sample)
			}
		})
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 0, 100, 0, 0},
		{"终点", 0, 100, 1, 100},
		{"中点", 0, 100, 0.5, 50},
		{"负数范围", -50, 50, 0.5, 0},
		{"反向", 100, 0, 0.25, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.expected)
			}
		})
	}
}
