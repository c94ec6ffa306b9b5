package main

import (
	"errors"
	"flag"
	"os"

	"github.com/decker502/tvbutton/pkg/app"
	"github.com/decker502/tvbutton/pkg/config"
	"github.com/decker502/tvbutton/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用 debug 日志")
	buttons := flag.String("buttons", "", "按钮描述 YAML 文件（默认使用内置 "+config.ButtonsDataPath+"）")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ButtonsPath: *buttons,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("[Main] initialization failed")
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(&closeHandler{App: gameApp})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("[Main] game loop exited")
	}
}

// closeHandler 在窗口关闭时先保存设置再退出
type closeHandler struct {
	*app.App
}

func (h *closeHandler) Update() error {
	if ebiten.IsWindowBeingClosed() {
		h.SaveOnExit()
		return ebiten.Termination
	}
	return h.App.Update()
}
