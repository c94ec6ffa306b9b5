// verify_layers 检查按钮描述文件中每个按钮的图层是否可用
//
// 用法：
//
//	go run ./cmd/verify_layers -buttons data/buttons.yaml
//	go run ./cmd/verify_layers -verbose assets/images/poster/back.png assets/images/poster/front.png
//
// 检查项：
//   - 图层文件存在且能解码
//   - 同一按钮的所有图层尺寸相同
//   - 打印保持宽高比时按钮的实际尺寸
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/decker502/tvbutton/pkg/config"
	"github.com/decker502/tvbutton/pkg/utils"
)

var (
	buttonsPath = flag.String("buttons", "", "按钮描述 YAML 文件")
	verbose     = flag.Bool("verbose", false, "显示每个图层的尺寸")
)

func main() {
	flag.Parse()

	var descriptors []config.ButtonDescriptor
	if *buttonsPath != "" {
		loaded, err := config.LoadButtonDescriptors(*buttonsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		descriptors = loaded
	}
	if flag.NArg() > 0 {
		descriptors = append(descriptors, config.ButtonDescriptor{
			Name:   "(command line)",
			Layers: flag.Args(),
			Style:  config.DefaultButtonConfig(),
		})
	}
	if len(descriptors) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := 0
	for _, desc := range descriptors {
		if err := verifyButton(desc); err != nil {
			fmt.Printf("❌ %s: %v\n", desc.Name, err)
			failed++
		}
	}

	fmt.Printf("\n%d/%d buttons OK\n", len(descriptors)-failed, len(descriptors))
	if failed > 0 {
		os.Exit(1)
	}
}

// verifyButton 检查一个按钮的图层
func verifyButton(desc config.ButtonDescriptor) error {
	if len(desc.Layers) == 0 {
		fmt.Printf("⚠️  %s: no layers (button renders nothing)\n", desc.Name)
		return nil
	}

	var first image.Config
	for i, path := range desc.Layers {
		cfg, err := decodeConfig(path)
		if err != nil {
			return err
		}
		if *verbose {
			fmt.Printf("   layer %d: %s %dx%d\n", i, path, cfg.Width, cfg.Height)
		}
		if cfg.Width == 0 || cfg.Height == 0 {
			return fmt.Errorf("layer %d (%s) is empty", i, path)
		}
		if i == 0 {
			first = cfg
			continue
		}
		if cfg.Width != first.Width || cfg.Height != first.Height {
			return fmt.Errorf("layer %d (%s) is %dx%d, expected %dx%d",
				i, path, cfg.Width, cfg.Height, first.Width, first.Height)
		}
	}

	source := utils.Size{Width: float64(first.Width), Height: float64(first.Height)}
	target := utils.Size{Width: desc.Frame.Width, Height: desc.Frame.Height}
	if desc.Parent != nil {
		target = utils.Size{Width: desc.Parent.Width, Height: desc.Parent.Height}
	}

	fmt.Printf("✅ %s: %d layers %dx%d", desc.Name, len(desc.Layers), first.Width, first.Height)
	if desc.Style.PreserveAspect && !target.IsEmpty() {
		fit := utils.FitSize(source, target)
		fmt.Printf(", aspect fit %.1fx%.1f", fit.Width, fit.Height)
	}
	fmt.Println()
	return nil
}

func decodeConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return cfg, nil
}
