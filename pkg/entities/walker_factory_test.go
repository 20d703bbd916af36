package entities

import (
	"math/rand"
	"testing"

	"github.com/decker502/factorysim/pkg/components"
	"github.com/decker502/factorysim/pkg/config"
	"github.com/decker502/factorysim/pkg/ecs"
	"github.com/decker502/factorysim/pkg/layout"
)

func TestNewWalkerEntity(t *testing.T) {
	cfg := config.NewDefaultFactoryConfig()
	l := layout.NewLayout(cfg)
	em := ecs.NewEntityManager()

	zone, _ := l.Zone("Hala 2")
	id := NewWalkerEntity(em, zone, -1, 2.5)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("walker should have a PositionComponent")
	}
	if pos.X != -1 || pos.Y != 2.5 {
		t.Errorf("position = (%.2f, %.2f), want (-1, 2.5)", pos.X, pos.Y)
	}

	walker, ok := ecs.GetComponent[*components.WalkerComponent](em, id)
	if !ok {
		t.Fatal("walker should have a WalkerComponent")
	}
	if walker.Zone != "Hala 2" {
		t.Errorf("zone = %q, want Hala 2", walker.Zone)
	}
	if walker.Color != zone.Color {
		t.Errorf("color = %v, want zone color %v", walker.Color, zone.Color)
	}
	if walker.State != components.WalkerTraveling {
		t.Errorf("initial state = %v, want Traveling", walker.State)
	}
}

func TestRandomSpawns(t *testing.T) {
	people := config.NewDefaultFactoryConfig().People
	names := []string{"Hala 1", "Hala 2", "Hala 3"}

	spawns := RandomSpawns(rand.New(rand.NewSource(7)), names, people, 300)
	if len(spawns) != 300 {
		t.Fatalf("expected 300 spawns, got %d", len(spawns))
	}

	counts := make(map[string]int)
	for i, s := range spawns {
		if s.X != people.StartX {
			t.Errorf("spawn %d: x = %.2f, want %.2f", i, s.X, people.StartX)
		}
		if s.Y < people.BandMin || s.Y >= people.BandMax {
			t.Errorf("spawn %d: y = %.3f outside [%.1f, %.1f)", i, s.Y, people.BandMin, people.BandMax)
		}
		counts[s.Zone]++
	}

	// 有放回均匀抽样，300 次中每个大厅都应出现
	for _, n := range names {
		if counts[n] == 0 {
			t.Errorf("zone %q was never chosen", n)
		}
	}
}

func TestRandomSpawnsDeterministic(t *testing.T) {
	people := config.NewDefaultFactoryConfig().People
	names := []string{"Hala 1", "Hala 2", "Hala 3"}

	a := RandomSpawns(rand.New(rand.NewSource(42)), names, people, 15)
	b := RandomSpawns(rand.New(rand.NewSource(42)), names, people, 15)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spawn %d differs for same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRandomSpawnsNoZones(t *testing.T) {
	people := config.NewDefaultFactoryConfig().People
	if got := RandomSpawns(rand.New(rand.NewSource(1)), nil, people, 5); len(got) != 0 {
		t.Errorf("expected no spawns without zones, got %d", len(got))
	}
}
