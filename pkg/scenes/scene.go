package scenes

import (
	"github.com/decker502/tvbutton/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现只需满足 game.Scene
type Scene = game.Scene

// 编译期检查
var (
	_ Scene         = (*ShowcaseScene)(nil)
	_ game.Saveable = (*ShowcaseScene)(nil)
)
