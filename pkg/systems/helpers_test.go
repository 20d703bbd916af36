package systems

import (
	"testing"

	"github.com/decker502/factorysim/pkg/components"
	"github.com/decker502/factorysim/pkg/config"
	"github.com/decker502/factorysim/pkg/ecs"
	"github.com/decker502/factorysim/pkg/entities"
	"github.com/decker502/factorysim/pkg/layout"
)

// newTestLayout 使用默认配置构建布局
func newTestLayout(t *testing.T) (*config.FactoryConfig, *layout.Layout) {
	t.Helper()
	cfg := config.NewDefaultFactoryConfig()
	return cfg, layout.NewLayout(cfg)
}

// spawnWalker 在指定位置创建走向 zoneName 的人员
func spawnWalker(t *testing.T, em *ecs.EntityManager, l *layout.Layout, zoneName string, x, y float64) ecs.EntityID {
	t.Helper()
	zone, ok := l.Zone(zoneName)
	if !ok {
		t.Fatalf("zone %q not found in layout", zoneName)
	}
	return entities.NewWalkerEntity(em, zone, x, y)
}

func mustPosition(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no PositionComponent", id)
	}
	return pos
}

func mustWalker(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.WalkerComponent {
	t.Helper()
	w, ok := ecs.GetComponent[*components.WalkerComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no WalkerComponent", id)
	}
	return w
}
