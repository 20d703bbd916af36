package config

// NewDefaultFactoryConfig 返回与 data/factory.yaml 一致的内置配置
//
// 用于测试和不依赖嵌入资源的场景构建，两者的一致性由测试保证。
func NewDefaultFactoryConfig() *FactoryConfig {
	return &FactoryConfig{
		Window: WindowConfig{Width: 1200, Height: 800, Title: "Simulare fabrică"},
		View:   ViewConfig{XMin: -2, XMax: 11, YMin: -1, YMax: 9},
		Animation: AnimationConfig{
			Frames:     200,
			IntervalMs: 50,
		},
		Yard: YardConfig{Width: 10, Height: 8, Color: "green", LineWidth: 2},
		Halls: []HallConfig{
			{Name: "Hala 1", Pos: Vec2{X: 2, Y: 4}, Size: Size2{W: 1.5, H: 1}, Color: "lightblue"},
			{Name: "Hala 2", Pos: Vec2{X: 5, Y: 4}, Size: Size2{W: 1.5, H: 1}, Color: "lightgreen"},
			{Name: "Hala 3", Pos: Vec2{X: 8, Y: 4}, Size: Size2{W: 1.5, H: 1}, Color: "salmon"},
		},
		LabelOffset: Vec2{X: 0.5, Y: 0.5},
		Road:        RoadConfig{Y: 2, Width: 1, Color: "gray", Alpha: 0.3},
		Parking: ParkingConfig{
			Y:         1.5,
			XStart:    2,
			XEnd:      8,
			Count:     6,
			Size:      0.6,
			Color:     "black",
			LineWidth: 1,
		},
		People: PeopleConfig{
			Count:           15,
			StartX:          -1,
			BandMin:         2,
			BandMax:         3,
			Speed:           0.1,
			ArriveThreshold: 0.1,
			MarkerRadius:    7,
			Alpha:           0.6,
		},
	}
}
