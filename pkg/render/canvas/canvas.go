// Package canvas 使用 Ebitengine 把场景绘制到 *ebiten.Image
package canvas

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/decker502/factorysim/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// TitleHeight 顶部保留给标题的高度（像素）
	TitleHeight = 40

	labelFontSize = 14
	titleFontSize = 18
)

var titleColor = color.NRGBA{A: 255}

// Fonts 标签和标题字体
type Fonts struct {
	Label *text.GoTextFace
	Title *text.GoTextFace
}

// LoadFonts 加载 Go Regular 字体（包含罗马尼亚语变音字符）
//
// 返回:
//   - *Fonts: 标签和标题字体
//   - error: 字体数据解析失败
func LoadFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Fonts{
		Label: &text.GoTextFace{Source: source, Size: labelFontSize},
		Title: &text.GoTextFace{Source: source, Size: titleFontSize},
	}, nil
}

// Surface 绘制到 ebiten 图像上的 render.Surface
type Surface struct {
	target   *ebiten.Image
	viewport render.Viewport
	fonts    *Fonts
}

// NewSurface 创建绘制目标
func NewSurface(target *ebiten.Image, viewport render.Viewport, fonts *Fonts) *Surface {
	return &Surface{target: target, viewport: viewport, fonts: fonts}
}

// NewViewport 按图像尺寸创建视口，顶部保留标题区域
func NewViewport(bounds render.Bounds, width, height int) render.Viewport {
	return render.NewViewport(bounds, width, height, TitleHeight, 1)
}

// Rect 绘制矩形
func (s *Surface) Rect(r render.Rect, style render.Style) {
	x, y, w, h := s.viewport.RectToScreen(r)
	if style.Fill {
		vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), style.Color, true)
		return
	}
	vector.StrokeRect(s.target, float32(x), float32(y), float32(w), float32(h), style.LineWidth, style.Color, true)
}

// Text 以场景坐标 (x, y) 为中心绘制文本
func (s *Surface) Text(x, y float64, label string, clr color.NRGBA) {
	sx, sy := s.viewport.ToScreen(x, y)
	drawCentered(s.target, label, s.fonts.Label, sx, sy, clr)
}

// Points 绘制点簇
func (s *Surface) Points(points []render.Point, radius float32) {
	for _, p := range points {
		sx, sy := s.viewport.ToScreen(p.X, p.Y)
		vector.DrawFilledCircle(s.target, float32(sx), float32(sy), radius, p.Color, true)
	}
}

// Title 在标题区域居中绘制
func (s *Surface) Title(title string) {
	w := s.target.Bounds().Dx()
	drawCentered(s.target, title, s.fonts.Title, float64(w)/2, TitleHeight/2, titleColor)
}

func drawCentered(dst *ebiten.Image, label string, face *text.GoTextFace, x, y float64, clr color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, label, face, op)
}
