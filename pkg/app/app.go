// Package app 提供视差按钮展示程序的核心包装器
//
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/tvbutton/pkg/config"
	"github.com/decker502/tvbutton/pkg/game"
	"github.com/decker502/tvbutton/pkg/scenes"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config 应用启动配置
type Config struct {
	// Verbose 启用 debug 级别日志，否则只输出 warn 及以上
	Verbose bool
	// ButtonsPath 按钮描述文件，为空时使用 config.ButtonsDataPath
	ButtonsPath string
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 退出全屏后延迟重设窗口大小
	windowSizeResetCountdown int
}

// NewApp 创建并初始化应用
//
// 调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	settingsManager := game.NewSettingsManager(openStorage())
	resourceManager := game.NewResourceManager()

	path := cfg.ButtonsPath
	if path == "" {
		path = config.ButtonsDataPath
	}
	descriptors, err := resourceManager.LoadButtonDescriptors(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load button descriptors: %w", err)
	}

	showcase, err := scenes.NewShowcaseScene(resourceManager, settingsManager, descriptors)
	if err != nil {
		return nil, fmt.Errorf("failed to create showcase scene: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(showcase)
	log.Info().Str("buttons", path).Msg("[App] initialized")

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置只保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Warn().Err(err).Msg("[App] failed to prepare storage directory")
	}
	manager, err := gdata.Open(gdata.Config{AppName: config.AppName})
	if err != nil {
		log.Warn().Err(err).Msg("[App] gdata unavailable, settings will not persist")
		return nil
	}
	return manager
}

// Update 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 窗口管理器需要几帧处理退出全屏
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 ebiten.FinalScreenDrawer，全屏时 letterbox 为黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// SaveOnExit 窗口关闭时保存当前场景的状态
func (a *App) SaveOnExit() bool {
	return a.sceneManager.SaveOnExit()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
