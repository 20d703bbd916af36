package render

import "math"

// Bounds 场景可视范围
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Viewport 场景坐标 -> 屏幕坐标的等比例变换
//
// 场景 Y 轴向上，屏幕 Y 轴向下。CellAspect 为单个屏幕单元的高宽比：
// 像素为 1，终端字符单元约为 2。变换保持场景单位在物理上是正方形。
type Viewport struct {
	bounds  Bounds
	scaleX  float64
	scaleY  float64
	offsetX float64
	offsetY float64
}

// NewViewport 创建视口
//
// 参数:
//   - bounds: 场景可视范围
//   - width, height: 屏幕尺寸（像素或单元格）
//   - top: 顶部保留给标题的高度
//   - cellAspect: 屏幕单元高宽比，<= 0 时按 1 处理
func NewViewport(bounds Bounds, width, height, top int, cellAspect float64) Viewport {
	if cellAspect <= 0 {
		cellAspect = 1
	}

	spanX := bounds.XMax - bounds.XMin
	spanY := bounds.YMax - bounds.YMin
	usableH := float64(height - top)
	if usableH < 0 {
		usableH = 0
	}

	// 水平方向每场景单位的单元数
	s := math.Min(float64(width)/spanX, usableH*cellAspect/spanY)

	v := Viewport{
		bounds: bounds,
		scaleX: s,
		scaleY: s / cellAspect,
	}
	v.offsetX = (float64(width) - spanX*v.scaleX) / 2
	v.offsetY = float64(top) + (usableH-spanY*v.scaleY)/2
	return v
}

// ToScreen 将场景坐标转换为屏幕坐标
func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	sx := v.offsetX + (x-v.bounds.XMin)*v.scaleX
	sy := v.offsetY + (v.bounds.YMax-y)*v.scaleY
	return sx, sy
}

// RectToScreen 将场景矩形转换为屏幕矩形，返回左上角和尺寸
func (v Viewport) RectToScreen(r Rect) (x, y, w, h float64) {
	x, y = v.ToScreen(r.X, r.Y+r.H)
	return x, y, r.W * v.scaleX, r.H * v.scaleY
}

// Scale 返回水平、垂直方向每场景单位对应的屏幕单元数
func (v Viewport) Scale() (float64, float64) {
	return v.scaleX, v.scaleY
}
