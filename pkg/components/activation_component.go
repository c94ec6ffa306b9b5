package components

import "github.com/decker502/tvbutton/pkg/ecs"

// ActivationComponent 按钮的"激活"（点击）信号
type ActivationComponent struct {
	// OnActivated 点击回调，可为 nil
	OnActivated func(id ecs.EntityID)
	// Count 累计激活次数
	Count int
}
