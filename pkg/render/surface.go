// Package render 定义场景与具体绘制后端之间的绘制接口
//
// 场景只通过显式传入的 Surface 绘制，不依赖任何全局画布。
// 所有坐标都是场景坐标，由各后端通过 Viewport 转换到像素或终端单元格。
package render

import "image/color"

// Rect 场景坐标中的矩形，(X, Y) 为左下角
type Rect struct {
	X, Y float64
	W, H float64
}

// Style 矩形样式
type Style struct {
	// Fill 为 true 时填充，否则只描边
	Fill      bool
	Color     color.NRGBA
	LineWidth float32
}

// Point 点簇中的一个点，每个点有自己的颜色
type Point struct {
	X, Y  float64
	Color color.NRGBA
}

// Surface 绘制目标
type Surface interface {
	// Rect 绘制矩形
	Rect(r Rect, style Style)
	// Text 以 (x, y) 为中心绘制文本
	Text(x, y float64, label string, clr color.NRGBA)
	// Points 绘制点簇，radius 为像素半径
	Points(points []Point, radius float32)
	// Title 设置画面标题（状态文本）
	Title(title string)
}

// Discard 丢弃所有绘制调用，用于无界面运行
var Discard Surface = discard{}

type discard struct{}

func (discard) Rect(Rect, Style) {}
func (discard) Text(float64, float64, string, color.NRGBA) {}
func (discard) Points([]Point, float32) {}
func (discard) Title(string) {}
