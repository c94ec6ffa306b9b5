package utils

import "testing"

// TestRasterizeRoundedRect 测试圆角遮罩：中心不透明，角落透明
func TestRasterizeRoundedRect(t *testing.T) {
	mask := RasterizeRoundedRect(RoundedRect{Rect: Rect{Width: 40, Height: 40}, Radius: 10})
	if mask == nil {
		t.Fatal("mask should not be nil")
	}
	if b := mask.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("mask bounds = %v, want 40x40", b)
	}

	if a := mask.AlphaAt(20, 20).A; a < 0xf0 {
		t.Errorf("center alpha = %d, want ~255", a)
	}
	if a := mask.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	// 边的中点不受圆角影响
	if a := mask.AlphaAt(20, 0).A; a < 0xf0 {
		t.Errorf("top edge alpha = %d, want ~255", a)
	}
}

// TestRasterizeSquareCorners 测试零半径时角落完全覆盖
func TestRasterizeSquareCorners(t *testing.T) {
	mask := RasterizeRoundedRect(RoundedRect{Rect: Rect{Width: 8, Height: 8}})
	if a := mask.AlphaAt(0, 0).A; a < 0xf0 {
		t.Errorf("corner alpha = %d, want ~255", a)
	}
}

// TestRasterizeEmpty 测试零尺寸返回 nil
func TestRasterizeEmpty(t *testing.T) {
	if mask := RasterizeRoundedRect(RoundedRect{Rect: Rect{Width: 0, Height: 10}}); mask != nil {
		t.Error("zero width should produce nil mask")
	}
}

// TestClampedRadius 测试圆角半径不超过短边一半
func TestClampedRadius(t *testing.T) {
	rr := RoundedRect{Rect: Rect{Width: 10, Height: 30}, Radius: 50}
	if got := rr.ClampedRadius(); got != 5 {
		t.Errorf("ClampedRadius = %v, want 5", got)
	}
	rr.Radius = -3
	if got := rr.ClampedRadius(); got != 0 {
		t.Errorf("ClampedRadius(negative) = %v, want 0", got)
	}
}
