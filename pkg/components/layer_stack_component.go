package components

import (
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Layer 视差图层
// 同一按钮的所有图层必须具有相同的像素尺寸（SetLayers 时校验）
type Layer struct {
	// Image 图层图片
	Image *ebiten.Image
	// DisplayOrder 在图层栈中的位置，0 为最后面
	DisplayOrder int
}

// NewLayer 用图片创建图层，DisplayOrder 由 SetLayers 按顺序分配
func NewLayer(image *ebiten.Image) Layer {
	return Layer{Image: image}
}

// ContentMode 图层内容在视图中的填充方式
type ContentMode int

const (
	// ContentStretch 拉伸填满视图
	ContentStretch ContentMode = iota
	// ContentAspectFill 等比缩放填满视图，超出部分被裁剪
	ContentAspectFill
)

// LayerView 单个图层的可视元素
type LayerView struct {
	Image *ebiten.Image
	// Frame 相对容器的矩形（由布局系统维护）
	Frame        utils.Rect
	CornerRadius float64
	ContentMode  ContentMode
}

// SpecularView 高光覆盖层，始终位于所有图层之上
type SpecularView struct {
	Image *ebiten.Image
	// Frame 相对容器的矩形；渲染时以容器中心 + SpecularOffset 为中心
	Frame utils.Rect
}

// LayerStackComponent 按钮拥有的图层栈及其可视元素
//
// Views 与 Layers 一一对应；Specular 仅在图层栈非空时存在。
// 整体替换由 LayerStackSystem.SetLayers 完成。
type LayerStackComponent struct {
	Layers []Layer
	Views  []LayerView
	// Specular 高光覆盖层，无图层或无高光资源时为 nil
	Specular *SpecularView

	// SpecularOverride 调用者提供的高光图片，优先于内置资源
	SpecularOverride *ebiten.Image
	// DefaultSpecular 构造时加载的内置高光图片（可能为 nil）
	DefaultSpecular *ebiten.Image
}

// IsEmpty 图层栈是否为空
func (c *LayerStackComponent) IsEmpty() bool {
	return len(c.Layers) == 0
}

// SpecularImage 返回当前应使用的高光图片
func (c *LayerStackComponent) SpecularImage() *ebiten.Image {
	if c.SpecularOverride != nil {
		return c.SpecularOverride
	}
	return c.DefaultSpecular
}
