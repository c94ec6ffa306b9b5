package utils

import "math"

// Point 二维坐标（也用作位移向量）
type Point struct {
	X, Y float64
}

// Add 向量相加
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub 向量相减
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul 向量数乘
func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len 向量长度
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// LerpPoint 在两个点之间线性插值
func LerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// Size 宽高尺寸
type Size struct {
	Width, Height float64
}

// IsEmpty 任一维度为零（或负）时返回 true
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Scale 等比缩放尺寸
func (s Size) Scale(k float64) Size {
	return Size{Width: s.Width * k, Height: s.Height * k}
}

// Rect 轴对齐矩形（原点在左上角）
type Rect struct {
	X, Y, Width, Height float64
}

// Size 返回矩形尺寸
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Origin 返回矩形左上角
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center 返回矩形中心点
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Bounds 返回以 (0,0) 为原点、尺寸相同的矩形
func (r Rect) Bounds() Rect {
	return Rect{Width: r.Width, Height: r.Height}
}

// Contains 检测点是否在矩形内（含边界）
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// WithSize 保持原点不变，替换尺寸
func (r Rect) WithSize(s Size) Rect {
	return Rect{X: r.X, Y: r.Y, Width: s.Width, Height: s.Height}
}

// FitSize 计算等比缩放后能完全放入 target 的最大尺寸（aspect-fit）
//
// 公式：scale = min(target.W/source.W, target.H/source.H)
//
// 返回：
//   - source 任一维度为零时返回零尺寸（避免除零）
//   - target 的负值维度按零处理
func FitSize(source, target Size) Size {
	if source.IsEmpty() {
		return Size{}
	}
	tw := math.Max(target.Width, 0)
	th := math.Max(target.Height, 0)

	scale := math.Min(tw/source.Width, th/source.Height)
	return source.Scale(scale)
}

// CenterIn 把尺寸 s 居中放入矩形 box，返回居中后的矩形
func CenterIn(s Size, box Rect) Rect {
	return Rect{
		X:      box.X + (box.Width-s.Width)/2,
		Y:      box.Y + (box.Height-s.Height)/2,
		Width:  s.Width,
		Height: s.Height,
	}
}

// ClampPoint 把点限制在矩形范围内
func ClampPoint(p Point, r Rect) Point {
	return Point{
		X: math.Min(math.Max(p.X, r.X), r.X+r.Width),
		Y: math.Min(math.Max(p.Y, r.Y), r.Y+r.Height),
	}
}
