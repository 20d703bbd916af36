package systems

import (
	"github.com/decker502/factorysim/pkg/components"
	"github.com/decker502/factorysim/pkg/config"
	"github.com/decker502/factorysim/pkg/ecs"
	"github.com/decker502/factorysim/pkg/render"
)

// WalkerRenderSystem 每帧把所有人员作为一个点簇绘制
type WalkerRenderSystem struct {
	entityManager *ecs.EntityManager
	radius        float32
	alpha         float64

	// 重用的点缓冲区（避免每帧分配）
	points []render.Point
}

// NewWalkerRenderSystem 创建人员渲染系统
func NewWalkerRenderSystem(em *ecs.EntityManager, radius float32, alpha float64) *WalkerRenderSystem {
	return &WalkerRenderSystem{
		entityManager: em,
		radius:        radius,
		alpha:         alpha,
	}
}

// Draw 绘制所有人员（按实体ID顺序）
func (s *WalkerRenderSystem) Draw(target render.Surface) {
	entities := ecs.GetEntitiesWith2[
		*components.WalkerComponent,
		*components.PositionComponent,
	](s.entityManager)

	s.points = s.points[:0]
	for _, id := range entities {
		walker, _ := ecs.GetComponent[*components.WalkerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.points = append(s.points, render.Point{
			X:     pos.X,
			Y:     pos.Y,
			Color: config.WithAlpha(walker.Color, s.alpha),
		})
	}

	target.Points(s.points, s.radius)
}
