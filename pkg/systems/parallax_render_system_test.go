package systems

import (
	"testing"

	"github.com/decker502/tvbutton/pkg/components"
	"github.com/decker502/tvbutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

func applyGeoM(g ebiten.GeoM, x, y float64) utils.Point {
	px, py := g.Apply(x, y)
	return utils.Point{X: px, Y: py}
}

// TestButtonGeoMAtRest 测试静止姿态下离屏图片原样落在按钮矩形上
func TestButtonGeoMAtRest(t *testing.T) {
	frame := utils.Rect{X: 10, Y: 20, Width: 100, Height: 50}
	anim := &components.ParallaxAnimationComponent{Scale: 1}

	g := ButtonGeoM(frame, anim)
	if got := applyGeoM(g, 0, 0); !pointAlmostEqual(got, utils.Point{X: 10, Y: 20}) {
		t.Errorf("top-left = %+v, want (10,20)", got)
	}
	if got := applyGeoM(g, 100, 50); !pointAlmostEqual(got, utils.Point{X: 110, Y: 70}) {
		t.Errorf("bottom-right = %+v, want (110,70)", got)
	}
}

// TestButtonGeoMScalesAroundCenter 测试按下放大以按钮中心为原点
func TestButtonGeoMScalesAroundCenter(t *testing.T) {
	frame := utils.Rect{X: 10, Y: 20, Width: 100, Height: 50}
	anim := &components.ParallaxAnimationComponent{Scale: 1.1}

	g := ButtonGeoM(frame, anim)
	if got := applyGeoM(g, 50, 25); !pointAlmostEqual(got, utils.Point{X: 60, Y: 45}) {
		t.Errorf("center = %+v, want (60,45)", got)
	}
	if got := applyGeoM(g, 0, 0); !pointAlmostEqual(got, utils.Point{X: 5, Y: 17.5}) {
		t.Errorf("top-left = %+v, want (5,17.5)", got)
	}
}

// TestButtonGeoMOffsetAndZeroScale 测试按钮位移，Scale 为 0 时按 1 处理
func TestButtonGeoMOffsetAndZeroScale(t *testing.T) {
	frame := utils.Rect{Width: 100, Height: 100}
	anim := &components.ParallaxAnimationComponent{ButtonOffset: utils.Point{X: 3, Y: -2}}

	g := ButtonGeoM(frame, anim)
	if got := applyGeoM(g, 0, 0); !pointAlmostEqual(got, utils.Point{X: 3, Y: -2}) {
		t.Errorf("top-left = %+v, want (3,-2)", got)
	}
}

// TestButtonGeoMTiltShrinks 测试倾斜表现为对应方向的收缩
func TestButtonGeoMTiltShrinks(t *testing.T) {
	frame := utils.Rect{Width: 100, Height: 100}
	anim := &components.ParallaxAnimationComponent{Scale: 1, TiltY: 8}

	g := ButtonGeoM(frame, anim)
	left := applyGeoM(g, 0, 50)
	right := applyGeoM(g, 100, 50)
	width := right.X - left.X
	if width >= 100 || width <= 90 {
		t.Errorf("tilted width = %v, want slightly less than 100", width)
	}
	top := applyGeoM(g, 50, 0)
	bottom := applyGeoM(g, 50, 100)
	if !almostEqual(bottom.Y-top.Y, 100) {
		t.Errorf("height = %v, want 100 without TiltX", bottom.Y-top.Y)
	}
}

// TestLayerGeoM 测试图层填充模式
func TestLayerGeoM(t *testing.T) {
	img := ebiten.NewImage(200, 100)
	frame := utils.Rect{Width: 50, Height: 50}

	tests := []struct {
		name        string
		mode        components.ContentMode
		offset      utils.Point
		topLeft     utils.Point
		bottomRight utils.Point
	}{
		{"拉伸", components.ContentStretch, utils.Point{}, utils.Point{}, utils.Point{X: 50, Y: 50}},
		{"等比填充", components.ContentAspectFill, utils.Point{}, utils.Point{X: -25}, utils.Point{X: 75, Y: 50}},
		{"带视差位移", components.ContentAspectFill, utils.Point{X: 2, Y: 3}, utils.Point{X: -23, Y: 3}, utils.Point{X: 77, Y: 53}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := components.LayerView{Image: img, Frame: frame, ContentMode: tt.mode}
			g, ok := LayerGeoM(view, tt.offset)
			if !ok {
				t.Fatal("LayerGeoM returned !ok")
			}
			if got := applyGeoM(g, 0, 0); !pointAlmostEqual(got, tt.topLeft) {
				t.Errorf("top-left = %+v, want %+v", got, tt.topLeft)
			}
			if got := applyGeoM(g, 200, 100); !pointAlmostEqual(got, tt.bottomRight) {
				t.Errorf("bottom-right = %+v, want %+v", got, tt.bottomRight)
			}
		})
	}
}

// TestLayerGeoMDegenerate 测试零尺寸视图不绘制
func TestLayerGeoMDegenerate(t *testing.T) {
	if _, ok := LayerGeoM(components.LayerView{}, utils.Point{}); ok {
		t.Error("nil image should not be drawable")
	}
	view := components.LayerView{Image: ebiten.NewImage(10, 10)}
	if _, ok := LayerGeoM(view, utils.Point{}); ok {
		t.Error("zero-size frame should not be drawable")
	}
}
