package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可切换的画面（展示场景、调试场景等）
type Scene interface {
	// Update 推进一帧，deltaTime 单位为秒
	Update(deltaTime float64)

	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：窗口关闭时需要持久化状态的场景实现它
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍正常退出）
	SaveOnExit() bool
}
