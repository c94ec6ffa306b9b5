package utils

import "testing"

// TestPointerTrackerLifecycle 测试按下、移动、释放的采样序列
func TestPointerTrackerLifecycle(t *testing.T) {
	pt := NewPointerTracker()
	dt := 1.0 / 60.0

	if samples := pt.Advance(RawPointer{ID: MouseTouchID}, dt); len(samples) != 0 {
		t.Fatalf("idle frame produced %d samples", len(samples))
	}

	samples := pt.Advance(RawPointer{Pressed: true, ID: MouseTouchID, X: 10, Y: 20}, dt)
	if len(samples) != 1 || samples[0].Phase != PointerBegin {
		t.Fatalf("press frame = %+v, want one begin sample", samples)
	}
	if samples[0].Pos != (Point{10, 20}) {
		t.Errorf("begin pos = %v, want (10,20)", samples[0].Pos)
	}

	samples = pt.Advance(RawPointer{Pressed: true, ID: MouseTouchID, X: 15, Y: 25}, dt)
	if len(samples) != 1 || samples[0].Phase != PointerMove || samples[0].Pos != (Point{15, 25}) {
		t.Fatalf("move frame = %+v", samples)
	}

	// 释放帧沿用最后位置
	samples = pt.Advance(RawPointer{ID: MouseTouchID, X: 0, Y: 0}, dt)
	if len(samples) != 1 || samples[0].Phase != PointerEnd || samples[0].Pos != (Point{15, 25}) {
		t.Fatalf("release frame = %+v", samples)
	}
	if pt.IsDown() {
		t.Error("tracker should be up after release")
	}
}

// TestPointerTrackerSwitchesTouch 测试按下期间触摸 ID 变化
func TestPointerTrackerSwitchesTouch(t *testing.T) {
	pt := NewPointerTracker()
	pt.Advance(RawPointer{Pressed: true, ID: 1, X: 5, Y: 5}, 0.1)

	samples := pt.Advance(RawPointer{Pressed: true, ID: 2, X: 50, Y: 50}, 0.1)
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if samples[0].Phase != PointerCancel || samples[0].ID != 1 {
		t.Errorf("first sample = %+v, want cancel of touch 1", samples[0])
	}
	if samples[1].Phase != PointerBegin || samples[1].ID != 2 {
		t.Errorf("second sample = %+v, want begin of touch 2", samples[1])
	}
}

// TestPointerTrackerCancel 测试强制取消
func TestPointerTrackerCancel(t *testing.T) {
	pt := NewPointerTracker()
	if pt.Cancel() != nil {
		t.Error("cancel while up should return nil")
	}
	pt.Advance(RawPointer{Pressed: true, X: 1, Y: 2}, 0.5)
	samples := pt.Cancel()
	if len(samples) != 1 || samples[0].Phase != PointerCancel {
		t.Fatalf("cancel = %+v", samples)
	}
	if samples[0].Time != 0.5 {
		t.Errorf("cancel time = %v, want 0.5", samples[0].Time)
	}
}
