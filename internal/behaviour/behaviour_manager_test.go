package behaviour

import (
	"reflect"
	"testing"
)

type MockBehaviour struct {
	name  string
	log   *[]string
	ticks []Tick
}

func (b *MockBehaviour) Start() {
	*b.log = append(*b.log, "start:"+b.name)
}

func (b *MockBehaviour) Update(tick Tick) {
	*b.log = append(*b.log, "update:"+b.name)
	b.ticks = append(b.ticks, tick)
}

func TestManagerStartsOnceBeforeUpdate(t *testing.T) {
	log := []string{}
	m := NewManager()
	b := &MockBehaviour{name: "light", log: &log}
	m.Add(b)

	m.UpdateAll(Tick{Elapsed: 1, Delta: 0.5})
	m.UpdateAll(Tick{Elapsed: 2, Delta: 1})

	want := []string{"start:light", "update:light", "update:light"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
	if b.ticks[1] != (Tick{Elapsed: 2, Delta: 1}) {
		t.Errorf("Tick not forwarded, got %+v", b.ticks[1])
	}
}

func TestManagerUpdateOrder(t *testing.T) {
	log := []string{}
	m := NewManager()
	first := &MockBehaviour{name: "a", log: &log}
	second := &MockBehaviour{name: "b", log: &log}
	third := &MockBehaviour{name: "c", log: &log}
	m.Add(first)
	m.Add(second)
	m.Add(third)
	m.UpdateAll(Tick{})
	log = log[:0]

	m.Remove(second)
	m.UpdateAll(Tick{})

	want := []string{"update:a", "update:c"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
	if m.Len() != 2 {
		t.Errorf("Expected 2 behaviours, got %d", m.Len())
	}
}

func TestManagerClear(t *testing.T) {
	log := []string{}
	m := NewManager()
	m.Add(&MockBehaviour{name: "a", log: &log})

	m.Clear()
	m.UpdateAll(Tick{})

	if len(log) != 0 {
		t.Errorf("Cleared manager should not run behaviours, got %v", log)
	}
}

func TestManagerRemoveUnknownIsNoop(t *testing.T) {
	log := []string{}
	m := NewManager()
	m.Add(&MockBehaviour{name: "a", log: &log})

	m.Remove(&MockBehaviour{name: "other", log: &log})

	if m.Len() != 1 {
		t.Errorf("Expected 1 behaviour, got %d", m.Len())
	}
}
