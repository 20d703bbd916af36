package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/factorysim/pkg/components"
	"github.com/decker502/factorysim/pkg/config"
	"github.com/decker502/factorysim/pkg/ecs"
	"github.com/decker502/factorysim/pkg/entities"
	"github.com/decker502/factorysim/pkg/layout"
	"github.com/decker502/factorysim/pkg/render"
	"github.com/decker502/factorysim/pkg/systems"
)

// ErrUnknownZone 初始位置引用了布局中不存在的大厅
var ErrUnknownZone = errors.New("unknown zone")

// progressFormat 进度文本格式（罗马尼亚语）
const progressFormat = "Simulare fabrică - %d/%d persoane au ajuns"

// WalkerSnapshot 某一时刻人员状态的只读副本
type WalkerSnapshot struct {
	ID    ecs.EntityID
	Zone  string
	X, Y  float64
	State components.WalkerState
	Color color.NRGBA
}

// EntityField 固定数量的人员集合
//
// 人员在构造时一次性创建，运行期间不增不减。
// 所有状态只由 Advance 修改，调用方只能通过快照读取。
type EntityField struct {
	entityManager  *ecs.EntityManager
	layout         *layout.Layout
	movementSystem *systems.WalkerMovementSystem
	renderSystem   *systems.WalkerRenderSystem
	ids            []ecs.EntityID
}

// NewEntityField 创建随机分布的人员集合
//
// 参数:
//   - l: 院子布局，提供目标大厅
//   - people: 人员参数（数量、起点、步长、阈值）
//   - rng: 随机数来源，所有随机性只来自这里
//
// 返回:
//   - *EntityField: 人员集合
func NewEntityField(l *layout.Layout, people config.PeopleConfig, rng *rand.Rand) *EntityField {
	spawns := entities.RandomSpawns(rng, l.ZoneNames(), people, people.Count)

	// 名称来自布局本身，不会出现未知大厅
	f, err := NewEntityFieldFromSpawns(l, people, spawns)
	if err != nil {
		panic(fmt.Sprintf("random spawns referenced a missing zone: %v", err))
	}
	return f
}

// NewEntityFieldFromSpawns 在指定位置创建人员
//
// 参数:
//   - l: 院子布局
//   - people: 人员参数，这里只使用步长、阈值和标记样式
//   - spawns: 每个人员的初始位置和目标大厅
//
// 返回:
//   - *EntityField: 人员集合
//   - error: 某个初始位置引用了未知大厅（ErrUnknownZone）
func NewEntityFieldFromSpawns(l *layout.Layout, people config.PeopleConfig, spawns []entities.Spawn) (*EntityField, error) {
	em := ecs.NewEntityManager()
	f := &EntityField{
		entityManager:  em,
		layout:         l,
		movementSystem: systems.NewWalkerMovementSystem(em, l, people.Speed, people.ArriveThreshold),
		renderSystem:   systems.NewWalkerRenderSystem(em, people.MarkerRadius, people.Alpha),
		ids:            make([]ecs.EntityID, 0, len(spawns)),
	}

	for i, s := range spawns {
		zone, ok := l.Zone(s.Zone)
		if !ok {
			return nil, fmt.Errorf("spawn #%d: %w '%s'", i, ErrUnknownZone, s.Zone)
		}
		f.ids = append(f.ids, entities.NewWalkerEntity(em, zone, s.X, s.Y))
	}

	log.Printf("[Field] 创建 %d 个人员，目标大厅: %v", len(f.ids), l.ZoneNames())
	return f, nil
}

// Advance 所有人员前进一步
func (f *EntityField) Advance() {
	before := f.ArrivedCount()
	f.movementSystem.Update()
	if after := f.ArrivedCount(); after != before {
		log.Printf("[Field] %d/%d 人员已到达", after, len(f.ids))
	}
}

// Draw 把所有人员标记作为一个点簇绘制
func (f *EntityField) Draw(target render.Surface) {
	f.renderSystem.Draw(target)
}

// Len 返回人员总数
func (f *EntityField) Len() int {
	return len(f.ids)
}

// ArrivedCount 返回已到达的人员数
func (f *EntityField) ArrivedCount() int {
	n := 0
	for _, id := range f.ids {
		if w, ok := ecs.GetComponent[*components.WalkerComponent](f.entityManager, id); ok && w.Arrived() {
			n++
		}
	}
	return n
}

// Walkers 返回所有人员的快照（按创建顺序）
func (f *EntityField) Walkers() []WalkerSnapshot {
	out := make([]WalkerSnapshot, 0, len(f.ids))
	for _, id := range f.ids {
		w, _ := ecs.GetComponent[*components.WalkerComponent](f.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](f.entityManager, id)
		out = append(out, WalkerSnapshot{
			ID:    id,
			Zone:  w.Zone,
			X:     pos.X,
			Y:     pos.Y,
			State: w.State,
			Color: w.Color,
		})
	}
	return out
}

// Progress 返回当前进度文本
func (f *EntityField) Progress() string {
	return FormatProgress(f.ArrivedCount(), f.Len())
}

// FormatProgress 格式化进度文本
func FormatProgress(arrived, total int) string {
	return fmt.Sprintf(progressFormat, arrived, total)
}
