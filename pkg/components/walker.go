package components

import "image/color"

// WalkerState 表示人员的移动状态
type WalkerState int

const (
	WalkerTraveling WalkerState = iota // 正在走向目标大厅
	WalkerArrived                      // 已到达,位置冻结
)

// String 返回状态名称
func (s WalkerState) String() string {
	switch s {
	case WalkerTraveling:
		return "Traveling"
	case WalkerArrived:
		return "Arrived"
	default:
		return "Unknown"
	}
}

// WalkerComponent 标记实体为人员
//
// Zone 和 Color 在创建后不再修改；颜色从目标大厅复制而来。
// State 只会从 WalkerTraveling 单向变为 WalkerArrived。
type WalkerComponent struct {
	Zone  string      // 目标大厅名称（弱引用，通过 Layout 查找）
	Color color.NRGBA // 显示颜色
	State WalkerState
}

// Arrived 是否已到达
func (w *WalkerComponent) Arrived() bool {
	return w.State == WalkerArrived
}
