package scenes

import (
	"testing"

	"github.com/decker502/factorysim/pkg/config"
	"github.com/decker502/factorysim/pkg/entities"
	"github.com/decker502/factorysim/pkg/game"
	"github.com/decker502/factorysim/pkg/layout"
	"github.com/decker502/factorysim/pkg/render"
)

func newTestScene(t *testing.T) (*config.FactoryConfig, *FactoryScene) {
	t.Helper()
	cfg := config.NewDefaultFactoryConfig()
	l := layout.NewLayout(cfg)
	field, err := game.NewEntityFieldFromSpawns(l, cfg.People, []entities.Spawn{
		{Zone: "Hala 1", X: -1, Y: 2.5},
		{Zone: "Hala 2", X: -1, Y: 2.5},
		{Zone: "Hala 3", X: -1, Y: 2.5},
	})
	if err != nil {
		t.Fatalf("failed to create field: %v", err)
	}
	return cfg, NewFactoryScene(l, field)
}

func TestFactorySceneInitDrawsLayoutOnly(t *testing.T) {
	_, scene := newTestScene(t)
	static := &render.Recorder{}
	scene.Init(static)

	// 院子 + 3 大厅 + 道路 + 6 停车位
	if got := static.Count(render.CallRect); got != 11 {
		t.Errorf("expected 11 rects, got %d", got)
	}
	if got := static.Count(render.CallText); got != 3 {
		t.Errorf("expected 3 labels, got %d", got)
	}
	if static.Count(render.CallPoints) != 0 || static.Count(render.CallTitle) != 0 {
		t.Error("static layer should not contain walkers or title")
	}
}

func TestFactorySceneDraw(t *testing.T) {
	_, scene := newTestScene(t)
	scene.Update(0.05)

	rec := &render.Recorder{}
	scene.Draw(rec)

	if rec.Count(render.CallRect) != 0 {
		t.Error("dynamic draw should not redraw static rects")
	}
	call, ok := rec.Last(render.CallPoints)
	if !ok || len(call.Points) != 3 {
		t.Fatalf("expected 3 walker points, got %+v", rec.Calls)
	}
	title, ok := rec.Last(render.CallTitle)
	if !ok {
		t.Fatal("expected a title call")
	}
	if title.Label != "Simulare fabrică - 0/3 persoane au ajuns" {
		t.Errorf("title = %q", title.Label)
	}
	if scene.Frame() != 1 {
		t.Errorf("frame = %d, want 1", scene.Frame())
	}
}

func TestFactorySceneWithManager(t *testing.T) {
	cfg, scene := newTestScene(t)
	sm := game.NewSceneManager(cfg.Animation.Frames)
	sm.SwitchTo(scene)

	static := &render.Recorder{}
	for sm.Step(static, float64(cfg.Animation.IntervalMs)/1000) {
	}

	if scene.Frame() != 200 {
		t.Errorf("scene advanced %d frames, want 200", scene.Frame())
	}
	if static.Count(render.CallRect) != 11 {
		t.Errorf("layout should be drawn exactly once, got %d rects", static.Count(render.CallRect))
	}

	rec := &render.Recorder{}
	sm.Draw(rec)
	title, _ := rec.Last(render.CallTitle)
	if title.Label != "Simulare fabrică - 3/3 persoane au ajuns" {
		t.Errorf("final title = %q", title.Label)
	}
}
