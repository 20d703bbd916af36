package entities

import (
	"math/rand"

	"github.com/decker502/factorysim/pkg/components"
	"github.com/decker502/factorysim/pkg/config"
	"github.com/decker502/factorysim/pkg/ecs"
	"github.com/decker502/factorysim/pkg/layout"
)

// Spawn 人员的初始位置和目标大厅
type Spawn struct {
	Zone string
	X, Y float64
}

// NewWalkerEntity 创建人员实体
//
// 参数:
//   - em: 实体管理器
//   - zone: 目标大厅，颜色从大厅复制
//   - x, y: 初始位置（场景坐标）
//
// 返回:
//   - ecs.EntityID: 创建的人员实体ID
func NewWalkerEntity(em *ecs.EntityManager, zone layout.Zone, x, y float64) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.WalkerComponent{
		Zone:  zone.Name,
		Color: zone.Color,
		State: components.WalkerTraveling,
	})

	return entityID
}

// RandomSpawns 生成 count 个随机初始位置
//
// X 固定为 people.StartX（院子左边界之外），
// Y 在 [BandMin, BandMax) 内均匀分布，
// 目标大厅从 zoneNames 中有放回地均匀抽取。
// 所有随机性只来自传入的 rng。
func RandomSpawns(rng *rand.Rand, zoneNames []string, people config.PeopleConfig, count int) []Spawn {
	spawns := make([]Spawn, 0, count)
	if len(zoneNames) == 0 {
		return spawns
	}

	band := people.BandMax - people.BandMin
	for i := 0; i < count; i++ {
		spawns = append(spawns, Spawn{
			Zone: zoneNames[rng.Intn(len(zoneNames))],
			X:    people.StartX,
			Y:    people.BandMin + rng.Float64()*band,
		})
	}
	return spawns
}
