package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDescriptor 按钮描述文件内容不合法
var ErrInvalidDescriptor = errors.New("invalid button descriptor")

// FrameDescriptor 按钮矩形（屏幕坐标，像素）
type FrameDescriptor struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ButtonDescriptor 持久化的按钮描述（从 YAML 构建按钮）
//
// 示例：
//
//	buttons:
//	  - name: poster
//	    frame: {x: 80, y: 60, width: 200, height: 300}
//	    parent: {x: 60, y: 40, width: 240, height: 340}
//	    layers:
//	      - assets/images/poster_back.png
//	      - assets/images/poster_front.png
//	    style:
//	      parallaxIntensity: 1.5
type ButtonDescriptor struct {
	Name string `yaml:"name"`
	// Frame 按钮初始矩形
	Frame FrameDescriptor `yaml:"frame"`
	// Parent 父容器矩形（可选），提供时 aspect-fit 以父容器为基准
	Parent *FrameDescriptor `yaml:"parent,omitempty"`
	// Layers 图层图片路径，从后到前
	Layers []string `yaml:"layers"`
	// Style 未出现的字段保持 DefaultButtonConfig() 的默认值
	Style ButtonConfig `yaml:"style"`
}

// ParseButtonDescriptors 解析 YAML 描述
func ParseButtonDescriptors(data []byte) ([]ButtonDescriptor, error) {
	var raw struct {
		Buttons []yaml.Node `yaml:"buttons"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse button descriptor YAML: %w", err)
	}

	descriptors := make([]ButtonDescriptor, 0, len(raw.Buttons))
	for i := range raw.Buttons {
		// 先填默认值再解码，YAML 中缺失的字段保留默认
		desc := ButtonDescriptor{Style: DefaultButtonConfig()}
		if err := raw.Buttons[i].Decode(&desc); err != nil {
			return nil, fmt.Errorf("button %d: %w", i, err)
		}
		if err := validateDescriptor(&desc); err != nil {
			return nil, fmt.Errorf("button %d (%s): %w", i, desc.Name, err)
		}
		descriptors = append(descriptors, desc)
	}
	return descriptors, nil
}

// LoadButtonDescriptors 从 YAML 文件加载按钮描述
func LoadButtonDescriptors(path string) ([]ButtonDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read button descriptor file %s: %w", path, err)
	}
	descriptors, err := ParseButtonDescriptors(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return descriptors, nil
}

// validateDescriptor 验证描述的合法性
func validateDescriptor(desc *ButtonDescriptor) error {
	if desc.Frame.Width < 0 || desc.Frame.Height < 0 {
		return fmt.Errorf("%w: frame size cannot be negative", ErrInvalidDescriptor)
	}
	if desc.Style.ParallaxIntensity < 0 {
		return fmt.Errorf("%w: parallaxIntensity must be >= 0, got %v", ErrInvalidDescriptor, desc.Style.ParallaxIntensity)
	}
	for i, layer := range desc.Layers {
		if layer == "" {
			return fmt.Errorf("%w: layers[%d] is empty", ErrInvalidDescriptor, i)
		}
	}
	return nil
}
