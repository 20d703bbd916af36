package app

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/factorysim/pkg/config"
	"github.com/decker502/factorysim/pkg/game"
	"github.com/decker502/factorysim/pkg/layout"
	"github.com/decker502/factorysim/pkg/render"
	"github.com/decker502/factorysim/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Factory 已验证的工厂配置
	Factory *config.FactoryConfig
}

// session 一次运行所需的全部对象，三种驱动共用
type session struct {
	cfg          *config.FactoryConfig
	scene        *scenes.FactoryScene
	sceneManager *game.SceneManager
	bounds       render.Bounds
	deltaTime    float64
}

// newSession 根据配置构建布局、人员和场景
func newSession(cfg Config) *session {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] 随机种子: %d", seed)

	f := cfg.Factory
	log.Printf("[Config] 工厂配置: %d 个大厅, %d 个人员", len(f.Halls), f.People.Count)
	l := layout.NewLayout(f)
	field := game.NewEntityField(l, f.People, rand.New(rand.NewSource(seed)))
	scene := scenes.NewFactoryScene(l, field)

	sm := game.NewSceneManager(f.Animation.Frames)
	sm.SwitchTo(scene)

	return &session{
		cfg:          f,
		scene:        scene,
		sceneManager: sm,
		bounds: render.Bounds{
			XMin: f.View.XMin, XMax: f.View.XMax,
			YMin: f.View.YMin, YMax: f.View.YMax,
		},
		deltaTime: float64(f.Animation.IntervalMs) / 1000,
	}
}

// interval 返回帧间隔
func (s *session) interval() time.Duration {
	return time.Duration(s.cfg.Animation.IntervalMs) * time.Millisecond
}
