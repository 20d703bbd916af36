package components

// PositionComponent 存储实体在场景中的位置（场景坐标，Y 轴向上）
type PositionComponent struct {
	X float64
	Y float64
}
