//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 仅在 -tags mobile 时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.tvbutton -o build/android/tvbutton.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/TVButton.xcframework ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/rs/zerolog/log"

	"github.com/decker502/tvbutton/pkg/app"
	"github.com/decker502/tvbutton/pkg/embedded"
)

func init() {
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatal().Err(err).Msg("[Mobile] initialization failed")
	}

	mobile.SetGame(gameApp)
}

// Dummy 空导出函数，确保包被 ebitenmobile 识别
func Dummy() {}
