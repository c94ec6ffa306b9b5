package components

import "github.com/decker502/tvbutton/pkg/utils"

// ButtonFrameComponent 按钮矩形（由宿主布局修改）
type ButtonFrameComponent struct {
	// Frame 按钮矩形（屏幕坐标）
	Frame utils.Rect
	// ParentFrame 父容器矩形（屏幕坐标），可为 nil
	ParentFrame *utils.Rect
	// Dirty 矩形变化后置为 true，下一次 Update 时重新布局
	Dirty bool
}

// Bounds 返回按钮局部坐标下的矩形（原点为 0,0）
func (c *ButtonFrameComponent) Bounds() utils.Rect {
	return c.Frame.Bounds()
}

// CompositorComponent 布局系统的输出
type CompositorComponent struct {
	// Container 图层容器矩形（按钮局部坐标）
	Container utils.Rect
	// ShadowPath 阴影轮廓，无图层时为 nil
	ShadowPath *utils.RoundedRect
	// LayoutCount 已执行的布局次数（调试用）
	LayoutCount int
}
