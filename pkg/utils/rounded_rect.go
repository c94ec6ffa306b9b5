package utils

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// kappa 用三次贝塞尔近似四分之一圆弧的控制点系数
const kappa = 0.5522847498

// RoundedRect 圆角矩形轮廓（用于阴影路径和圆角裁剪）
type RoundedRect struct {
	Rect   Rect
	Radius float64
}

// ClampedRadius 返回不超过短边一半的圆角半径
func (rr RoundedRect) ClampedRadius() float64 {
	r := math.Max(rr.Radius, 0)
	return math.Min(r, math.Min(rr.Rect.Width, rr.Rect.Height)/2)
}

// RasterizeRoundedRect 把圆角矩形光栅化为 alpha 遮罩
//
// 遮罩尺寸为 ceil(宽) x ceil(高)，轮廓相对 rr.Rect 的原点绘制。
// 尺寸为零时返回 nil。
func RasterizeRoundedRect(rr RoundedRect) *image.Alpha {
	w := int(math.Ceil(rr.Rect.Width))
	h := int(math.Ceil(rr.Rect.Height))
	if w <= 0 || h <= 0 {
		return nil
	}

	z := vector.NewRasterizer(w, h)
	x0, y0 := float32(0), float32(0)
	x1, y1 := float32(rr.Rect.Width), float32(rr.Rect.Height)
	r := float32(rr.ClampedRadius())
	k := float32(kappa) * r

	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
