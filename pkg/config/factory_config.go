package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFactoryConfigPath 嵌入资源中的默认工厂配置路径
const DefaultFactoryConfigPath = "data/factory.yaml"

// ErrNoHalls 配置中没有任何大厅
var ErrNoHalls = errors.New("factory config defines no halls")

// FactoryConfig 工厂场景完整配置
//
// 包含窗口、可视区域、动画节拍、院子、大厅、道路、停车位和人员参数。
// 所有几何值都是场景坐标（Y 轴向上，院子左下角为原点）。
//
// 配置文件位置: data/factory.yaml
type FactoryConfig struct {
	Window      WindowConfig    `yaml:"window"`
	View        ViewConfig      `yaml:"view"`
	Animation   AnimationConfig `yaml:"animation"`
	Yard        YardConfig      `yaml:"yard"`
	Halls       []HallConfig    `yaml:"halls"`
	LabelOffset Vec2            `yaml:"labelOffset"`
	Road        RoadConfig      `yaml:"road"`
	Parking     ParkingConfig   `yaml:"parking"`
	People      PeopleConfig    `yaml:"people"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ViewConfig 可视区域（场景坐标）
type ViewConfig struct {
	XMin float64 `yaml:"xMin"`
	XMax float64 `yaml:"xMax"`
	YMin float64 `yaml:"yMin"`
	YMax float64 `yaml:"yMax"`
}

// AnimationConfig 动画驱动配置
type AnimationConfig struct {
	// Frames 总帧数，播放完后停留在最后一帧
	Frames int `yaml:"frames"`
	// IntervalMs 每帧间隔（毫秒）
	IntervalMs int `yaml:"intervalMs"`
}

// YardConfig 院子围栏
type YardConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Color     string  `yaml:"color"`
	LineWidth float32 `yaml:"lineWidth"`
}

// Vec2 二维坐标
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Size2 二维尺寸
type Size2 struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// HallConfig 大厅（目标区域）配置
type HallConfig struct {
	// Name 唯一名称，人员通过名称引用目标大厅
	Name  string `yaml:"name"`
	Pos   Vec2   `yaml:"pos"`
	Size  Size2  `yaml:"size"`
	Color string `yaml:"color"`
}

// RoadConfig 道路（横穿院子的水平带）
type RoadConfig struct {
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
	Color string  `yaml:"color"`
	Alpha float64 `yaml:"alpha"`
}

// ParkingConfig 停车位标记，中心点在 [XStart, XEnd] 上等距分布
type ParkingConfig struct {
	Y         float64 `yaml:"y"`
	XStart    float64 `yaml:"xStart"`
	XEnd      float64 `yaml:"xEnd"`
	Count     int     `yaml:"count"`
	Size      float64 `yaml:"size"`
	Color     string  `yaml:"color"`
	LineWidth float32 `yaml:"lineWidth"`
}

// PeopleConfig 人员生成与移动参数
type PeopleConfig struct {
	Count int `yaml:"count"`
	// StartX 初始X坐标，必须在院子左边界之外
	StartX float64 `yaml:"startX"`
	// BandMin/BandMax 初始Y坐标的均匀分布区间
	BandMin float64 `yaml:"bandMin"`
	BandMax float64 `yaml:"bandMax"`
	// Speed 每步固定步长
	Speed float64 `yaml:"speed"`
	// ArriveThreshold 两个轴的偏差都不超过该值时判定到达
	ArriveThreshold float64 `yaml:"arriveThreshold"`
	// MarkerRadius 标记半径（像素）
	MarkerRadius float32 `yaml:"markerRadius"`
	// Alpha 标记透明度
	Alpha float64 `yaml:"alpha"`
}

// LoadFactoryConfig 从文件系统加载工厂配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *FactoryConfig: 已验证的配置
//   - error: 读取、解析或验证失败
func LoadFactoryConfig(path string) (*FactoryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read factory config: %w", err)
	}
	return ParseFactoryConfig(data)
}

// ParseFactoryConfig 解析 YAML 数据并验证
//
// 可选字段先填入默认值再解码，文件中显式写出的值（包括 0）不会被覆盖。
func ParseFactoryConfig(data []byte) (*FactoryConfig, error) {
	cfg := newOptionalDefaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse factory config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid factory config: %w", err)
	}

	return cfg, nil
}

// newOptionalDefaults 返回只包含可选字段默认值的配置，作为解码的起点
func newOptionalDefaults() *FactoryConfig {
	return &FactoryConfig{
		Window:  WindowConfig{Width: 1200, Height: 800},
		Yard:    YardConfig{LineWidth: 2},
		Road:    RoadConfig{Alpha: 1},
		Parking: ParkingConfig{LineWidth: 1},
		People:  PeopleConfig{MarkerRadius: 7, Alpha: 1},
	}
}

// Validate 验证配置有效性
//
// 检查内容：
//   - 至少一个大厅，名称非空且唯一，尺寸为正
//   - 起始X在院子左边界之外（< 0），Y 区间有序
//   - 步长为正，到达阈值不小于步长
//   - 帧数和帧间隔为正
//   - 所有颜色均可解析
func (c *FactoryConfig) Validate() error {
	if len(c.Halls) == 0 {
		return ErrNoHalls
	}

	seen := make(map[string]bool, len(c.Halls))
	for i, h := range c.Halls {
		if h.Name == "" {
			return fmt.Errorf("hall #%d has an empty name", i)
		}
		if seen[h.Name] {
			return fmt.Errorf("duplicate hall name '%s'", h.Name)
		}
		seen[h.Name] = true
		if h.Size.W <= 0 || h.Size.H <= 0 {
			return fmt.Errorf("hall '%s' size must be positive, got %.2fx%.2f", h.Name, h.Size.W, h.Size.H)
		}
		if _, err := ParseColor(h.Color); err != nil {
			return fmt.Errorf("hall '%s': %w", h.Name, err)
		}
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Yard.Width <= 0 || c.Yard.Height <= 0 {
		return fmt.Errorf("yard size must be positive, got %.2fx%.2f", c.Yard.Width, c.Yard.Height)
	}
	if c.View.XMin >= c.View.XMax || c.View.YMin >= c.View.YMax {
		return fmt.Errorf("view bounds invalid: x[%.1f, %.1f] y[%.1f, %.1f]",
			c.View.XMin, c.View.XMax, c.View.YMin, c.View.YMax)
	}

	if c.Animation.Frames <= 0 {
		return fmt.Errorf("animation frames must be > 0, got %d", c.Animation.Frames)
	}
	if c.Animation.IntervalMs <= 0 {
		return fmt.Errorf("animation interval must be > 0, got %d", c.Animation.IntervalMs)
	}

	p := c.People
	if p.Count < 0 {
		return fmt.Errorf("people count must be >= 0, got %d", p.Count)
	}
	if p.StartX >= 0 {
		return fmt.Errorf("people startX must be left of the yard (< 0), got %.2f", p.StartX)
	}
	if p.BandMin > p.BandMax {
		return fmt.Errorf("people band invalid: min(%.2f) > max(%.2f)", p.BandMin, p.BandMax)
	}
	if p.Speed <= 0 {
		return fmt.Errorf("people speed must be > 0, got %.2f", p.Speed)
	}
	if p.ArriveThreshold < p.Speed {
		return fmt.Errorf("people arriveThreshold(%.2f) must be >= speed(%.2f)", p.ArriveThreshold, p.Speed)
	}
	if p.Alpha < 0 || p.Alpha > 1 {
		return fmt.Errorf("people alpha must be within [0, 1], got %.2f", p.Alpha)
	}

	if c.Parking.Count < 0 {
		return fmt.Errorf("parking count must be >= 0, got %d", c.Parking.Count)
	}
	if c.Parking.XStart > c.Parking.XEnd {
		return fmt.Errorf("parking range invalid: xStart(%.2f) > xEnd(%.2f)", c.Parking.XStart, c.Parking.XEnd)
	}
	if c.Road.Alpha < 0 || c.Road.Alpha > 1 {
		return fmt.Errorf("road alpha must be within [0, 1], got %.2f", c.Road.Alpha)
	}

	for name, value := range map[string]string{
		"yard":    c.Yard.Color,
		"road":    c.Road.Color,
		"parking": c.Parking.Color,
	} {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// ParkingCenters 返回停车位中心点（等距分布，包含两端）
func (p ParkingConfig) ParkingCenters() []Vec2 {
	centers := make([]Vec2, 0, p.Count)
	switch p.Count {
	case 0:
		return centers
	case 1:
		return append(centers, Vec2{X: p.XStart, Y: p.Y})
	}

	step := (p.XEnd - p.XStart) / float64(p.Count-1)
	for i := 0; i < p.Count; i++ {
		centers = append(centers, Vec2{X: p.XStart + float64(i)*step, Y: p.Y})
	}
	return centers
}

// ResolveColor 解析已验证过的颜色字符串
// 仅用于 Validate() 之后的配置，解析失败时返回黑色
func ResolveColor(value string) color.NRGBA {
	c, err := ParseColor(value)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return c
}
