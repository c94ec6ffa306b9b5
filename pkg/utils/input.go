// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPhase 指针采样的阶段
type PointerPhase int

const (
	// PointerBegin 指针刚按下
	PointerBegin PointerPhase = iota
	// PointerMove 指针按住状态下的后续采样
	PointerMove
	// PointerEnd 指针正常释放
	PointerEnd
	// PointerCancel 指针被系统取消（如窗口失焦）
	PointerCancel
)

// String 返回阶段名称（日志用）
func (p PointerPhase) String() string {
	switch p {
	case PointerBegin:
		return "begin"
	case PointerMove:
		return "move"
	case PointerEnd:
		return "end"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

// MouseTouchID 鼠标使用的伪触摸 ID
const MouseTouchID ebiten.TouchID = -1

// PointerSample 一次原始指针采样（屏幕坐标）
type PointerSample struct {
	ID    ebiten.TouchID
	Pos   Point
	Phase PointerPhase
	Time  float64 // 秒，从 PointerTracker 创建起累计
}

// RawPointer 单帧的原始指针状态
type RawPointer struct {
	Pressed bool
	ID      ebiten.TouchID
	X, Y    int
}

// ReadRawPointer 读取当前帧的指针状态，优先触摸，其次鼠标左键
func ReadRawPointer() RawPointer {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return RawPointer{Pressed: true, ID: touchIDs[0], X: x, Y: y}
	}

	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return RawPointer{Pressed: pressed, ID: MouseTouchID, X: x, Y: y}
}

// PointerTracker 把逐帧指针状态转换为 begin/move/end/cancel 采样序列
//
// 只跟踪一个指针：按下期间换成另一个触摸 ID 时，旧指针以 cancel 结束，
// 新指针以 begin 开始。
type PointerTracker struct {
	now     float64
	down    bool
	current ebiten.TouchID
	last    Point
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{current: MouseTouchID}
}

// Poll 读取 ebiten 输入并推进 deltaTime 秒
func (pt *PointerTracker) Poll(deltaTime float64) []PointerSample {
	return pt.Advance(ReadRawPointer(), deltaTime)
}

// Advance 用给定的原始状态推进一帧，返回本帧产生的采样
func (pt *PointerTracker) Advance(raw RawPointer, deltaTime float64) []PointerSample {
	pt.now += deltaTime
	pos := Point{X: float64(raw.X), Y: float64(raw.Y)}

	switch {
	case !pt.down && raw.Pressed:
		pt.down = true
		pt.current = raw.ID
		pt.last = pos
		return []PointerSample{{ID: raw.ID, Pos: pos, Phase: PointerBegin, Time: pt.now}}

	case pt.down && !raw.Pressed:
		pt.down = false
		// 触摸释放后拿不到坐标，沿用最后一次位置
		return []PointerSample{{ID: pt.current, Pos: pt.last, Phase: PointerEnd, Time: pt.now}}

	case pt.down && raw.ID != pt.current:
		old := PointerSample{ID: pt.current, Pos: pt.last, Phase: PointerCancel, Time: pt.now}
		pt.current = raw.ID
		pt.last = pos
		return []PointerSample{old, {ID: raw.ID, Pos: pos, Phase: PointerBegin, Time: pt.now}}

	case pt.down:
		pt.last = pos
		return []PointerSample{{ID: raw.ID, Pos: pos, Phase: PointerMove, Time: pt.now}}
	}
	return nil
}

// Cancel 强制结束当前指针（如失焦时），未按下时返回 nil
func (pt *PointerTracker) Cancel() []PointerSample {
	if !pt.down {
		return nil
	}
	pt.down = false
	return []PointerSample{{ID: pt.current, Pos: pt.last, Phase: PointerCancel, Time: pt.now}}
}

// IsDown 当前是否有指针按下
func (pt *PointerTracker) IsDown() bool {
	return pt.down
}
