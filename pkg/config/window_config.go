package config

// 窗口与逻辑屏幕尺寸
const (
	// ScreenWidth 逻辑屏幕宽度，实际窗口由 Ebitengine 缩放
	ScreenWidth = 960
	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 600
	// WindowTitle 桌面端窗口标题
	WindowTitle = "TV Button"
	// AppName gdata 存储使用的应用名
	AppName = "tvbutton"
	// ButtonsDataPath 展示场景的按钮描述文件
	ButtonsDataPath = "data/buttons.yaml"
)
