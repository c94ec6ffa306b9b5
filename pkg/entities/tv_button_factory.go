package entities

import (
	"errors"
	"fmt"

	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/config"
	"github.com/decker502/tvbutton/pkg/ecs"
	"github.com/decker502/tvbutton/pkg/embedded"
	"github.com/decker502/tvbutton/pkg/systems"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// ImageLoader 按路径加载图层图片（game.ResourceManager 实现该接口）
type ImageLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}

// TVButtonOptions 创建视差按钮的参数
type TVButtonOptions struct {
	// Frame 按钮矩形（屏幕坐标）
	Frame utils.Rect
	// ParentFrame 父容器矩形，可为 nil
	ParentFrame *utils.Rect
	// Config 按钮配置，通常从 config.DefaultButtonConfig() 开始修改
	Config config.ButtonConfig
	// Layers 初始图层栈，从后到前，可为空
	Layers []components.Layer
	// DefaultSpecular 内置高光图片；为 nil 时从嵌入资源加载
	DefaultSpecular *ebiten.Image
	// SpecularOverride 自定义高光图片，可为 nil
	SpecularOverride *ebiten.Image
	// OnActivated 点击回调，可为 nil
	OnActivated func(id ecs.EntityID)
}

// NewTVButton 创建视差按钮实体
//
// 参数：
//   - em: 实体管理器
//   - layerStack: 图层栈系统（用于安装初始图层并完成首次布局）
//   - opts: 创建参数
//
// 返回：
//   - 按钮实体ID
//   - 错误信息：内置高光缺失（且未设置 AllowMissingSpecular）或图层校验失败
func NewTVButton(em *ecs.EntityManager, layerStack *systems.LayerStackSystem, opts TVButtonOptions) (ecs.EntityID, error) {
	cfg := opts.Config
	if cfg.ParallaxIntensity < 0 {
		log.Warn().Float64("intensity", cfg.ParallaxIntensity).Msg("[TVButtonFactory] negative parallax intensity clamped to 0")
		cfg.ParallaxIntensity = 0
	}

	if err := systems.ValidateLayers(opts.Layers); err != nil {
		return 0, fmt.Errorf("failed to create tv button: %w", err)
	}

	specular := opts.DefaultSpecular
	if specular == nil {
		img, err := embedded.LoadSpecularImage()
		if err != nil {
			if !cfg.AllowMissingSpecular {
				return 0, fmt.Errorf("failed to create tv button: %w", err)
			}
			log.Warn().Err(err).Msg("[TVButtonFactory] bundled specular missing, highlight disabled")
		}
		specular = img
	}

	entity := em.CreateEntity()

	em.AddComponent(entity, &components.ButtonFrameComponent{
		Frame:       opts.Frame,
		ParentFrame: copyRect(opts.ParentFrame),
		Dirty:       true,
	})
	em.AddComponent(entity, &components.ButtonStyleComponent{
		Config:      cfg,
		ShadowDirty: true,
	})
	em.AddComponent(entity, &components.LayerStackComponent{
		DefaultSpecular:  specular,
		SpecularOverride: opts.SpecularOverride,
	})
	em.AddComponent(entity, &components.CompositorComponent{})
	em.AddComponent(entity, systems.NewParallaxAnimationComponent(cfg))

	// Pan 与 LongPress 注册到同一个状态机
	em.AddComponent(entity, &components.GestureComponent{
		State:                   components.GestureIdle,
		Pan:                     components.Recognizer{Source: components.GesturePan},
		LongPress:               components.Recognizer{Source: components.GestureLongPress},
		SimultaneousRecognition: cfg.SimultaneousRecognition,
		DragDeadZone:            cfg.DragDeadZone,
		LongPressDuration:       cfg.LongPressDuration,
		LongPressMovement:       cfg.LongPressMovement,
		TapMaxDuration:          cfg.TapMaxDuration,
	})
	em.AddComponent(entity, &components.ActivationComponent{OnActivated: opts.OnActivated})

	// SetLayers 即使图层为空也会完成首次布局
	if err := layerStack.SetLayers(entity, opts.Layers); err != nil {
		em.DestroyEntity(entity)
		return 0, fmt.Errorf("failed to create tv button: %w", err)
	}

	log.Info().
		Uint64("entity", uint64(entity)).
		Int("layers", len(opts.Layers)).
		Float64("x", opts.Frame.X).
		Float64("y", opts.Frame.Y).
		Msg("[TVButtonFactory] tv button created")
	return entity, nil
}

// NewTVButtonFromDescriptor 根据 YAML 描述创建视差按钮
//
// 图层和自定义高光（Style.SpecularImage）通过 loader 加载。
func NewTVButtonFromDescriptor(em *ecs.EntityManager, layerStack *systems.LayerStackSystem, loader ImageLoader, desc config.ButtonDescriptor) (ecs.EntityID, error) {
	if loader == nil {
		return 0, errors.New("image loader is nil")
	}

	layers := make([]components.Layer, 0, len(desc.Layers))
	for _, path := range desc.Layers {
		img, err := loader.LoadImage(path)
		if err != nil {
			return 0, fmt.Errorf("button %q: failed to load layer %s: %w", desc.Name, path, err)
		}
		layers = append(layers, components.NewLayer(img))
	}

	opts := TVButtonOptions{
		Frame:  rectFromDescriptor(desc.Frame),
		Config: desc.Style,
		Layers: layers,
	}
	if desc.Parent != nil {
		parent := rectFromDescriptor(*desc.Parent)
		opts.ParentFrame = &parent
	}
	if desc.Style.SpecularImage != "" {
		img, err := loader.LoadImage(desc.Style.SpecularImage)
		if err != nil {
			return 0, fmt.Errorf("button %q: failed to load specular %s: %w", desc.Name, desc.Style.SpecularImage, err)
		}
		opts.SpecularOverride = img
	}

	return NewTVButton(em, layerStack, opts)
}

func rectFromDescriptor(f config.FrameDescriptor) utils.Rect {
	return utils.Rect{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height}
}

func copyRect(r *utils.Rect) *utils.Rect {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
