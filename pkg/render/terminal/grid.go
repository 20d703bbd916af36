// Package terminal 把场景绘制到终端字符网格上
//
// Grid 实现 render.Surface，绘制结果保存在内存中，Flush 时一次性写入 tcell.Screen。
// 静态层和动态帧各用一个 Grid：每帧先 CopyFrom 静态层，再叠加人员标记和标题。
package terminal

import (
	"image/color"
	"math"

	"github.com/decker502/factorysim/pkg/render"
	"github.com/gdamore/tcell/v2"
)

const (
	// TitleRows 顶部保留给标题的行数
	TitleRows = 1
	// CellAspect 终端字符单元的高宽比
	CellAspect = 2.0

	markerRune = '●'
)

var (
	canvasColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	inkColor    = color.NRGBA{A: 255}
)

type cell struct {
	r  rune
	fg color.NRGBA
	bg color.NRGBA
}

// Grid 终端字符网格
type Grid struct {
	width, height int
	cells         []cell
	viewport      render.Viewport
	title         string
}

// NewGrid 创建指定尺寸的网格
//
// 参数:
//   - width, height: 网格尺寸（字符单元）
//   - bounds: 场景可视范围
func NewGrid(width, height int, bounds render.Bounds) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:    width,
		height:   height,
		cells:    make([]cell, width*height),
		viewport: render.NewViewport(bounds, width, height, TitleRows, CellAspect),
	}
	g.Clear()
	return g
}

// Size 返回网格尺寸
func (g *Grid) Size() (int, int) {
	return g.width, g.height
}

// Clear 清空为白色背景
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', fg: inkColor, bg: canvasColor}
	}
	g.title = ""
}

// CopyFrom 复制另一个同尺寸网格的内容
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.cells, src.cells)
	g.title = src.title
}

// Cell 返回单元格内容
func (g *Grid) Cell(x, y int) (r rune, fg, bg color.NRGBA) {
	if !g.inside(x, y) {
		return 0, color.NRGBA{}, color.NRGBA{}
	}
	c := g.cells[y*g.width+x]
	return c.r, c.fg, c.bg
}

// Rect 绘制矩形：填充改变背景色，描边使用制表符
func (g *Grid) Rect(r render.Rect, style render.Style) {
	sx, sy, sw, sh := g.viewport.RectToScreen(r)
	x0, x1 := span(sx, sw)
	y0, y1 := span(sy, sh)

	if style.Fill {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if c := g.at(x, y); c != nil {
					c.bg = blend(style.Color, c.bg)
				}
			}
		}
		return
	}

	right, bottom := x1-1, y1-1
	for x := x0; x <= right; x++ {
		g.stroke(x, y0, '─', style.Color)
		g.stroke(x, bottom, '─', style.Color)
	}
	for y := y0; y <= bottom; y++ {
		g.stroke(x0, y, '│', style.Color)
		g.stroke(right, y, '│', style.Color)
	}
	g.stroke(x0, y0, '┌', style.Color)
	g.stroke(right, y0, '┐', style.Color)
	g.stroke(x0, bottom, '└', style.Color)
	g.stroke(right, bottom, '┘', style.Color)
}

// Text 以 (x, y) 为中心写入文本，保留原背景色
func (g *Grid) Text(x, y float64, label string, clr color.NRGBA) {
	sx, sy := g.viewport.ToScreen(x, y)
	runes := []rune(label)
	col := int(math.Floor(sx)) - len(runes)/2
	row := int(math.Floor(sy))
	g.write(col, row, runes, clr)
}

// Points 每个点占一个单元格
func (g *Grid) Points(points []render.Point, radius float32) {
	for _, p := range points {
		sx, sy := g.viewport.ToScreen(p.X, p.Y)
		c := g.at(int(math.Floor(sx)), int(math.Floor(sy)))
		if c == nil {
			continue
		}
		c.r = markerRune
		c.fg = blend(p.Color, c.bg)
	}
}

// Title 在第一行居中写入标题
func (g *Grid) Title(title string) {
	g.title = title
	runes := []rune(title)
	g.write(g.width/2-len(runes)/2, 0, runes, inkColor)
}

// Flush 把网格写入屏幕并刷新
func (g *Grid) Flush(screen tcell.Screen) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			style := tcell.StyleDefault.Foreground(toTcell(c.fg)).Background(toTcell(c.bg))
			screen.SetContent(x, y, c.r, nil, style)
		}
	}
	screen.Show()
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) at(x, y int) *cell {
	if !g.inside(x, y) {
		return nil
	}
	return &g.cells[y*g.width+x]
}

func (g *Grid) stroke(x, y int, r rune, clr color.NRGBA) {
	if c := g.at(x, y); c != nil {
		c.r = r
		c.fg = blend(clr, c.bg)
	}
}

func (g *Grid) write(col, row int, runes []rune, clr color.NRGBA) {
	for i, r := range runes {
		if c := g.at(col+i, row); c != nil {
			c.r = r
			c.fg = clr
		}
	}
}

// span 把屏幕区间 [start, start+size) 转换为单元格区间，至少一格
func span(start, size float64) (int, int) {
	a := int(math.Round(start))
	b := int(math.Round(start + size))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// blend 把 src 按透明度叠加到不透明的 dst 上
func blend(src, dst color.NRGBA) color.NRGBA {
	a := uint32(src.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	return color.NRGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 255}
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
