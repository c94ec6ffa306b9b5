package components

import "github.com/decker502/tvbutton/pkg/config"

// ButtonStyleComponent 按钮的外观与调校配置
type ButtonStyleComponent struct {
	Config config.ButtonConfig
	// ShadowDirty 阴影颜色或轮廓变化后置为 true，渲染系统据此重建阴影
	ShadowDirty bool
}
