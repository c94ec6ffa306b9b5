package config

// TV 视差按钮的外观与动画参数
//
// 所有默认值集中在 DefaultButtonConfig()，构造按钮时显式传入，
// 不使用可变的全局默认值。

// 视差按钮的固定调校常量
const (
	// DefaultCornerRadius 图层与容器的圆角半径（像素）
	DefaultCornerRadius = 5.0
	// DefaultShadowFactor 阴影系数：按下时阴影偏移 = 高度 / ShadowFactor
	DefaultShadowFactor = 12.0
	// DefaultSpecularScale 高光层相对容器的尺寸倍数
	DefaultSpecularScale = 1.5
	// DefaultSpecularAlpha 按下时高光层的目标不透明度
	DefaultSpecularAlpha = 0.2
	// DefaultPressedScale 按下时按钮的放大倍数
	DefaultPressedScale = 1.1
	// DefaultMaxTranslation 触点在按钮边缘时最前图层的最大位移（像素）
	DefaultMaxTranslation = 4.0
	// DefaultMaxTilt 触点在按钮边缘时的最大倾斜角（度）
	DefaultMaxTilt = 8.0
	// DefaultTiltZFactor Z 轴旋转 = (TiltX + TiltY) / TiltZFactor
	DefaultTiltZFactor = 4.0
	// DefaultAnimationDuration 松开回弹动画时长（秒）
	DefaultAnimationDuration = 0.3
	// DefaultFadeInDuration 按下时高光淡入时长（秒）
	DefaultFadeInDuration = 0.2
	// DefaultShadowOpacity 静止时阴影不透明度
	DefaultShadowOpacity = 0.5
	// DefaultPressedShadowOpacity 按下时阴影不透明度
	DefaultPressedShadowOpacity = 0.6

	// DefaultDragDeadZone 拖拽识别的死区（像素）
	DefaultDragDeadZone = 4.0
	// DefaultLongPressDuration 长按识别的最短按住时间（秒）
	DefaultLongPressDuration = 0.5
	// DefaultLongPressMovement 长按识别前允许的最大移动（像素）
	DefaultLongPressMovement = 10.0
	// DefaultTapMaxDuration 点击识别的最长按住时间（秒）
	DefaultTapMaxDuration = 0.3
)

// SpecularAssetPath 内置高光图片在嵌入资源中的路径
const SpecularAssetPath = "assets/images/Specular.png"

// ButtonConfig 视差按钮配置
type ButtonConfig struct {
	// ===== 外观 =====
	// ShadowColor 阴影颜色 RGBA，默认黑色
	ShadowColor [4]uint8 `yaml:"shadowColor"`
	// CornerRadius 圆角半径（像素）
	CornerRadius float64 `yaml:"cornerRadius"`
	// SpecularImage 自定义高光图片路径，空字符串使用内置资源
	SpecularImage string `yaml:"specularImage,omitempty"`
	// AllowMissingSpecular 内置高光资源缺失时是否降级为无高光（否则构造失败）
	AllowMissingSpecular bool `yaml:"allowMissingSpecular"`
	// PreserveAspect 是否按第一张图层的宽高比自动调整按钮尺寸
	PreserveAspect bool `yaml:"preserveAspect"`

	// ===== 视差 =====
	// ParallaxIntensity 视差强度，>= 0，默认 1.0
	ParallaxIntensity float64 `yaml:"parallaxIntensity"`
	MaxTranslation    float64 `yaml:"maxTranslation"`
	MaxTilt           float64 `yaml:"maxTilt"`
	TiltZFactor       float64 `yaml:"tiltZFactor"`
	PressedScale      float64 `yaml:"pressedScale"`

	// ===== 高光与阴影 =====
	SpecularScale        float64 `yaml:"specularScale"`
	SpecularAlpha        float64 `yaml:"specularAlpha"`
	ShadowFactor         float64 `yaml:"shadowFactor"`
	ShadowOpacity        float64 `yaml:"shadowOpacity"`
	PressedShadowOpacity float64 `yaml:"pressedShadowOpacity"`

	// ===== 动画 =====
	AnimationDuration float64 `yaml:"animationDuration"`
	FadeInDuration    float64 `yaml:"fadeInDuration"`
	// Easing 缓动曲线名（linear/easeIn/easeOut/easeOutCubic/easeInOut）
	Easing string `yaml:"easing"`

	// ===== 手势识别 =====
	DragDeadZone      float64 `yaml:"dragDeadZone"`
	LongPressDuration float64 `yaml:"longPressDuration"`
	LongPressMovement float64 `yaml:"longPressMovement"`
	TapMaxDuration    float64 `yaml:"tapMaxDuration"`
	// SimultaneousRecognition 拖拽与长按是否允许同时识别
	SimultaneousRecognition bool `yaml:"simultaneousRecognition"`
}

// DefaultButtonConfig 返回默认配置
func DefaultButtonConfig() ButtonConfig {
	return ButtonConfig{
		ShadowColor:             [4]uint8{0, 0, 0, 255},
		CornerRadius:            DefaultCornerRadius,
		PreserveAspect:          true,
		ParallaxIntensity:       1.0,
		MaxTranslation:          DefaultMaxTranslation,
		MaxTilt:                 DefaultMaxTilt,
		TiltZFactor:             DefaultTiltZFactor,
		PressedScale:            DefaultPressedScale,
		SpecularScale:           DefaultSpecularScale,
		SpecularAlpha:           DefaultSpecularAlpha,
		ShadowFactor:            DefaultShadowFactor,
		ShadowOpacity:           DefaultShadowOpacity,
		PressedShadowOpacity:    DefaultPressedShadowOpacity,
		AnimationDuration:       DefaultAnimationDuration,
		FadeInDuration:          DefaultFadeInDuration,
		Easing:                  "easeOut",
		DragDeadZone:            DefaultDragDeadZone,
		LongPressDuration:       DefaultLongPressDuration,
		LongPressMovement:       DefaultLongPressMovement,
		TapMaxDuration:          DefaultTapMaxDuration,
		SimultaneousRecognition: true,
	}
}
