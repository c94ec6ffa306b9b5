package game

import (
	"fmt"

	"github.com/decker502/tvbutton/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ButtonSettings 用户可调的按钮设置（全局，跨会话保存）
type ButtonSettings struct {
	// 视差设置
	ParallaxIntensity float64 `yaml:"parallaxIntensity"` // 视差强度 >= 0
	PreserveAspect    bool    `yaml:"preserveAspect"`    // 按第一张图层的宽高比调整按钮

	// 外观设置
	ShadowColor [4]uint8 `yaml:"shadowColor"` // 阴影颜色 RGBA

	// 调试设置
	ShowDebug bool `yaml:"showDebug"` // 显示触点和按钮边框
}

// DefaultSettings 返回默认设置（与 config.DefaultButtonConfig 一致）
func DefaultSettings() *ButtonSettings {
	cfg := config.DefaultButtonConfig()
	return &ButtonSettings{
		ParallaxIntensity: cfg.ParallaxIntensity,
		PreserveAspect:    cfg.PreserveAspect,
		ShadowColor:       cfg.ShadowColor,
		ShowDebug:         false,
	}
}

// Apply 把设置写入按钮配置
func (s *ButtonSettings) Apply(cfg *config.ButtonConfig) {
	cfg.ParallaxIntensity = s.ParallaxIntensity
	cfg.PreserveAspect = s.PreserveAspect
	cfg.ShadowColor = s.ShadowColor
}

// SettingsManager 设置管理器
// 负责按钮设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ButtonSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "buttons"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不影响创建，使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Warn().Err(err).Msg("[SettingsManager] failed to load settings, using defaults")
	}
	return sm
}

// Load 从 gdata 加载设置
//
// gdataManager 为 nil 或设置不存在时使用默认设置。
// YAML 中缺失的字段保留默认值。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if loaded.ParallaxIntensity < 0 {
		loaded.ParallaxIntensity = 0
	}

	sm.settings = loaded
	log.Debug().Msg("[SettingsManager] settings loaded")
	return nil
}

// Save 保存设置到 gdata
//
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Debug().Msg("[SettingsManager] settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ButtonSettings {
	return sm.settings
}

// SetParallaxIntensity 设置视差强度，负值按 0 处理
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetParallaxIntensity(intensity float64) {
	if intensity < 0 {
		intensity = 0
	}
	sm.settings.ParallaxIntensity = intensity
}

// SetPreserveAspect 设置是否保持宽高比
func (sm *SettingsManager) SetPreserveAspect(preserve bool) {
	sm.settings.PreserveAspect = preserve
}

// SetShadowColor 设置阴影颜色
func (sm *SettingsManager) SetShadowColor(rgba [4]uint8) {
	sm.settings.ShadowColor = rgba
}

// SetShowDebug 设置调试显示
func (sm *SettingsManager) SetShowDebug(show bool) {
	sm.settings.ShowDebug = show
}
