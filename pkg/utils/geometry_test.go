package utils

import (
	"math"
	"testing"
)

const geomEpsilon = 1e-9

// TestFitSizeProperties 测试 aspect-fit 保持宽高比并恰好贴合一条边
func TestFitSizeProperties(t *testing.T) {
	sources := []Size{{200, 100}, {100, 200}, {1, 1}, {640, 480}, {3, 7}}
	targets := []Size{{50, 50}, {300, 100}, {10, 1000}, {1, 1}, {1920, 1080}}

	for _, s := range sources {
		for _, target := range targets {
			got := FitSize(s, target)

			if math.Abs(got.Width/got.Height-s.Width/s.Height) > 1e-6 {
				t.Errorf("FitSize(%v, %v) = %v 未保持宽高比", s, target, got)
			}
			if got.Width > target.Width+geomEpsilon || got.Height > target.Height+geomEpsilon {
				t.Errorf("FitSize(%v, %v) = %v 超出目标区域", s, target, got)
			}
			wEq := math.Abs(got.Width-target.Width) < 1e-6
			hEq := math.Abs(got.Height-target.Height) < 1e-6
			if !wEq && !hEq {
				t.Errorf("FitSize(%v, %v) = %v 没有任何一条边贴合", s, target, got)
			}
		}
	}
}

// TestFitSizeWideImageIntoSquare 宽图放入正方形：200x100 -> 50x50 得到 50x25
func TestFitSizeWideImageIntoSquare(t *testing.T) {
	got := FitSize(Size{200, 100}, Size{50, 50})
	if got != (Size{50, 25}) {
		t.Errorf("FitSize = %v, want {50 25}", got)
	}
}

// TestFitSizeDegenerate 测试零尺寸输入不会除零
func TestFitSizeDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		source Size
		target Size
		want   Size
	}{
		{"零宽源图", Size{0, 100}, Size{50, 50}, Size{}},
		{"零高源图", Size{100, 0}, Size{50, 50}, Size{}},
		{"零目标", Size{100, 100}, Size{0, 0}, Size{}},
		{"负目标", Size{100, 100}, Size{-10, 50}, Size{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitSize(tt.source, tt.target)
			if got != tt.want {
				t.Errorf("FitSize(%v, %v) = %v, want %v", tt.source, tt.target, got, tt.want)
			}
			if math.IsNaN(got.Width) || math.IsNaN(got.Height) {
				t.Errorf("FitSize returned NaN: %v", got)
			}
		})
	}
}

// TestCenterIn 测试居中放置
func TestCenterIn(t *testing.T) {
	got := CenterIn(Size{50, 25}, Rect{X: 10, Y: 20, Width: 50, Height: 50})
	want := Rect{X: 10, Y: 32.5, Width: 50, Height: 25}
	if got != want {
		t.Errorf("CenterIn = %v, want %v", got, want)
	}
}

// TestClampPoint 测试点被限制在矩形内
func TestClampPoint(t *testing.T) {
	r := Rect{Width: 100, Height: 50}
	tests := []struct {
		in, want Point
	}{
		{Point{50, 25}, Point{50, 25}},
		{Point{-10, 25}, Point{0, 25}},
		{Point{150, 80}, Point{100, 50}},
	}
	for _, tt := range tests {
		if got := ClampPoint(tt.in, r); got != tt.want {
			t.Errorf("ClampPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestRectContains 测试矩形包含检测（含边界）
func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(Point{10, 10}) || !r.Contains(Point{30, 30}) {
		t.Error("边界点应该在矩形内")
	}
	if r.Contains(Point{31, 20}) {
		t.Error("(31,20) 不应该在矩形内")
	}
}
