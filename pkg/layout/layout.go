// Package layout 描述工厂院子的静态几何：院子围栏、大厅、道路和停车位
//
// Layout 构造后不再修改，只负责在初始化时向 Surface 输出静态绘制调用。
package layout

import (
	"image/color"

	"github.com/decker502/factorysim/pkg/config"
	"github.com/decker502/factorysim/pkg/render"
)

// labelColor 大厅标签颜色
var labelColor = color.NRGBA{A: 255}

// Zone 目标大厅
type Zone struct {
	Name  string
	X, Y  float64 // 锚点（矩形左下角），人员以此为目标
	W, H  float64
	Color color.NRGBA
}

// Anchor 返回大厅锚点
func (z Zone) Anchor() (float64, float64) {
	return z.X, z.Y
}

// Layout 院子静态布局
type Layout struct {
	yard        render.Rect
	yardStyle   render.Style
	zones       []Zone
	zoneIndex   map[string]int
	labelOffset config.Vec2

	road      render.Rect
	roadStyle render.Style

	parking      []render.Rect
	parkingStyle render.Style
}

// NewLayout 根据已验证的配置构建布局
func NewLayout(cfg *config.FactoryConfig) *Layout {
	l := &Layout{
		yard: render.Rect{X: 0, Y: 0, W: cfg.Yard.Width, H: cfg.Yard.Height},
		yardStyle: render.Style{
			Color:     config.ResolveColor(cfg.Yard.Color),
			LineWidth: cfg.Yard.LineWidth,
		},
		zones:       make([]Zone, 0, len(cfg.Halls)),
		zoneIndex:   make(map[string]int, len(cfg.Halls)),
		labelOffset: cfg.LabelOffset,
		road:        render.Rect{X: 0, Y: cfg.Road.Y, W: cfg.Yard.Width, H: cfg.Road.Width},
		roadStyle: render.Style{
			Fill:  true,
			Color: config.WithAlpha(config.ResolveColor(cfg.Road.Color), cfg.Road.Alpha),
		},
		parkingStyle: render.Style{
			Color:     config.ResolveColor(cfg.Parking.Color),
			LineWidth: cfg.Parking.LineWidth,
		},
	}

	for _, h := range cfg.Halls {
		l.zoneIndex[h.Name] = len(l.zones)
		l.zones = append(l.zones, Zone{
			Name:  h.Name,
			X:     h.Pos.X,
			Y:     h.Pos.Y,
			W:     h.Size.W,
			H:     h.Size.H,
			Color: config.ResolveColor(h.Color),
		})
	}

	half := cfg.Parking.Size / 2
	for _, c := range cfg.Parking.ParkingCenters() {
		l.parking = append(l.parking, render.Rect{
			X: c.X - half,
			Y: c.Y - half,
			W: cfg.Parking.Size,
			H: cfg.Parking.Size,
		})
	}

	return l
}

// Zone 按名称查找大厅
func (l *Layout) Zone(name string) (Zone, bool) {
	i, ok := l.zoneIndex[name]
	if !ok {
		return Zone{}, false
	}
	return l.zones[i], true
}

// Zones 返回所有大厅（配置中的声明顺序）
func (l *Layout) Zones() []Zone {
	out := make([]Zone, len(l.zones))
	copy(out, l.zones)
	return out
}

// ZoneNames 返回所有大厅名称
func (l *Layout) ZoneNames() []string {
	names := make([]string, len(l.zones))
	for i, z := range l.zones {
		names[i] = z.Name
	}
	return names
}

// Yard 返回院子矩形
func (l *Layout) Yard() render.Rect {
	return l.yard
}

// ParkingSpots 返回停车位矩形
func (l *Layout) ParkingSpots() []render.Rect {
	out := make([]render.Rect, len(l.parking))
	copy(out, l.parking)
	return out
}

// Draw 向 Surface 输出所有静态元素，每个元素一次调用
//
// 顺序: 院子 -> 每个大厅(矩形 + 标签) -> 道路 -> 停车位
func (l *Layout) Draw(s render.Surface) {
	s.Rect(l.yard, l.yardStyle)

	for _, z := range l.zones {
		s.Rect(render.Rect{X: z.X, Y: z.Y, W: z.W, H: z.H}, render.Style{Fill: true, Color: z.Color})
		s.Text(z.X+l.labelOffset.X, z.Y+l.labelOffset.Y, z.Name, labelColor)
	}

	s.Rect(l.road, l.roadStyle)

	for _, p := range l.parking {
		s.Rect(p, l.parkingStyle)
	}
}
