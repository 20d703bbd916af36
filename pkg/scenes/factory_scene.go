package scenes

import (
	"log"

	"github.com/decker502/factorysim/pkg/game"
	"github.com/decker502/factorysim/pkg/layout"
	"github.com/decker502/factorysim/pkg/render"
)

// FactoryScene 工厂院子动画场景
//
// Init 只绘制一次静态布局；每帧 Update 推进所有人员，
// Draw 重绘人员标记并更新进度标题。
type FactoryScene struct {
	layout *layout.Layout
	field  *game.EntityField
	frame  int
}

var _ Scene = (*FactoryScene)(nil)

// NewFactoryScene 创建工厂场景
func NewFactoryScene(l *layout.Layout, field *game.EntityField) *FactoryScene {
	return &FactoryScene{layout: l, field: field}
}

// Init 绘制静态布局
func (s *FactoryScene) Init(static render.Surface) {
	s.layout.Draw(static)
	log.Printf("[FactoryScene] 静态布局已绘制: %d 个大厅", len(s.layout.Zones()))
}

// Update 推进一帧
func (s *FactoryScene) Update(deltaTime float64) {
	s.field.Advance()
	s.frame++
}

// Draw 绘制人员和进度
func (s *FactoryScene) Draw(target render.Surface) {
	s.field.Draw(target)
	target.Title(s.field.Progress())
}

// Frame 返回已推进的帧数
func (s *FactoryScene) Frame() int {
	return s.frame
}

// Field 返回人员集合
func (s *FactoryScene) Field() *game.EntityField {
	return s.field
}
