package systems

import (
	"math"

	"github.com/decker502/factorysim/pkg/components"
	"github.com/decker502/factorysim/pkg/ecs"
	"github.com/decker502/factorysim/pkg/layout"
)

// WalkerMovementSystem 每次 Update 将所有未到达的人员向目标大厅推进一步
//
// 移动规则（L 形路径）:
//   - 任一轴偏差超过阈值时，X 按 sign(dx) 移动一个步长
//   - 只有在本步开始时已进入院子（X > 0），Y 才按 sign(dy) 移动一个步长
//   - 两轴偏差都不超过阈值时标记为到达，位置保持不变（不吸附到锚点）
type WalkerMovementSystem struct {
	entityManager *ecs.EntityManager
	layout        *layout.Layout
	speed         float64
	threshold     float64
}

// NewWalkerMovementSystem 创建人员移动系统
func NewWalkerMovementSystem(em *ecs.EntityManager, l *layout.Layout, speed, threshold float64) *WalkerMovementSystem {
	return &WalkerMovementSystem{
		entityManager: em,
		layout:        l,
		speed:         speed,
		threshold:     threshold,
	}
}

// Update 推进一步
// 各人员之间互不读取状态，处理顺序不影响结果
func (s *WalkerMovementSystem) Update() {
	entities := ecs.GetEntitiesWith2[
		*components.WalkerComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range entities {
		walker, ok := ecs.GetComponent[*components.WalkerComponent](s.entityManager, id)
		if !ok || walker.Arrived() {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		zone, ok := s.layout.Zone(walker.Zone)
		if !ok {
			continue
		}

		s.step(walker, pos, zone)
	}
}

// step 对单个人员应用移动规则
func (s *WalkerMovementSystem) step(walker *components.WalkerComponent, pos *components.PositionComponent, zone layout.Zone) {
	tx, ty := zone.Anchor()
	dx := tx - pos.X
	dy := ty - pos.Y

	if math.Abs(dx) <= s.threshold && math.Abs(dy) <= s.threshold {
		walker.State = components.WalkerArrived
		return
	}

	insideYard := pos.X > 0
	pos.X += sign(dx) * s.speed
	if insideYard {
		pos.Y += sign(dy) * s.speed
	}
}

// sign 返回 -1、0 或 1
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
