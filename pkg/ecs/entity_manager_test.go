package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testTargetComponent struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pos := &testPositionComponent{X: -1, Y: 2.5}
	em.AddComponent(id, pos)

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != -1 || retrieved.Y != 2.5 {
		t.Errorf("Component data mismatch, expected (-1, 2.5), got (%f, %f)", retrieved.X, retrieved.Y)
	}

	// 组件是指针，修改对后续查询可见
	retrieved.X = 0.5
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 0.5 {
		t.Errorf("Expected mutation to be visible, got X=%f", again.X)
	}
}

func TestAddComponentUnknownEntity(t *testing.T) {
	em := NewEntityManager()

	// 未创建的实体上添加组件应被忽略
	em.AddComponent(42, &testPositionComponent{})
	AddComponent(em, 42, &testTargetComponent{})

	if em.HasComponent(42, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Unknown entity should not receive components")
	}
	if HasComponent[*testTargetComponent](em, 42) {
		t.Error("Unknown entity should not receive components via generic API")
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testPositionComponent{})

	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should have component after adding")
	}
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Generic HasComponent should agree with reflection version")
	}
}

func TestGenericAndReflectionInterop(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 泛型添加，反射读取
	AddComponent(em, id, &testTargetComponent{Name: "Hala 2"})
	comp, ok := em.GetComponent(id, reflect.TypeOf(&testTargetComponent{}))
	if !ok {
		t.Fatal("Component added via generic API should be visible to reflection API")
	}
	if comp.(*testTargetComponent).Name != "Hala 2" {
		t.Errorf("Unexpected component %+v", comp)
	}

	// 类型不存在
	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("Missing component should not be found")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testTargetComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testTargetComponent{})

	entities := GetEntitiesWith2[*testPositionComponent, *testTargetComponent](em)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Expected only id1, got %v", entities)
	}

	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

func TestGetEntitiesWithSorted(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
	}

	entities := GetEntitiesWith1[*testPositionComponent](em)
	if len(entities) != 50 {
		t.Fatalf("Expected 50 entities, got %d", len(entities))
	}
	for i := 1; i < len(entities); i++ {
		if entities[i-1] >= entities[i] {
			t.Fatalf("Entities should be sorted by ID, got %v before %v", entities[i-1], entities[i])
		}
	}
}
