package signet

import (
	"errors"
	"testing"
)

// Test component types
type Position struct {
	Tag
	X, Y float64
}

type Velocity struct {
	Tag
	X, Y float64
}

type Health struct {
	Tag
	Current, Max int
}

type testKinds struct {
	position, velocity, health Kind
}

func newTestWorld(t *testing.T) (*World, testKinds) {
	t.Helper()
	world := Factory.NewWorld()
	var kinds testKinds
	var err error
	if kinds.position, err = world.RegisterKind("position"); err != nil {
		t.Fatalf("RegisterKind(position) error = %v", err)
	}
	if kinds.velocity, err = world.RegisterKind("velocity"); err != nil {
		t.Fatalf("RegisterKind(velocity) error = %v", err)
	}
	if kinds.health, err = world.RegisterKind("health"); err != nil {
		t.Fatalf("RegisterKind(health) error = %v", err)
	}
	return world, kinds
}

func TestEntityCreation(t *testing.T) {
	world, _ := newTestWorld(t)

	e, err := world.NewEntity()
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}
	if e.ID() != 1 {
		t.Errorf("first entity ID = %d, want 1", e.ID())
	}
	if e.Mask() != 0 {
		t.Errorf("new entity mask = %v, want {}", e.Mask())
	}
	if e.Len() != 0 {
		t.Errorf("new entity has %d components, want 0", e.Len())
	}
}

func TestComponentAddRemove(t *testing.T) {
	world, kinds := newTestWorld(t)
	pos := &Position{Tag: NewTag(kinds.position)}
	vel := &Velocity{Tag: NewTag(kinds.velocity)}
	health := &Health{Tag: NewTag(kinds.health)}

	tests := []struct {
		name       string
		add        []Component
		remove     []Signature
		wantAddErr bool
		wantRmErr  bool
		wantMask   Mask
		wantCount  int
	}{
		{
			name:      "Add component",
			add:       []Component{pos},
			wantMask:  kinds.position.Mask(),
			wantCount: 1,
		},
		{
			name:      "Add several",
			add:       []Component{pos, vel, health},
			wantMask:  MaskOf(kinds.position.Signature, kinds.velocity.Signature, kinds.health.Signature),
			wantCount: 3,
		},
		{
			name:      "Add and remove",
			add:       []Component{pos, vel},
			remove:    []Signature{kinds.position.Signature},
			wantMask:  kinds.velocity.Mask(),
			wantCount: 1,
		},
		{
			name:       "Duplicate kind",
			add:        []Component{pos, &Position{Tag: NewTag(kinds.position), X: 9}},
			wantAddErr: true,
			wantMask:   kinds.position.Mask(),
			wantCount:  1,
		},
		{
			name:      "Remove absent",
			add:       []Component{vel},
			remove:    []Signature{kinds.health.Signature},
			wantRmErr: true,
			wantMask:  kinds.velocity.Mask(),
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := world.NewEntity()

			var addErr error
			for _, c := range tt.add {
				if _, err := e.Add(c); err != nil {
					addErr = err
				}
			}
			if (addErr != nil) != tt.wantAddErr {
				t.Errorf("Add() error = %v, wantError %v", addErr, tt.wantAddErr)
			}

			var rmErr error
			for _, sig := range tt.remove {
				if err := e.Remove(sig); err != nil {
					rmErr = err
				}
			}
			if (rmErr != nil) != tt.wantRmErr {
				t.Errorf("Remove() error = %v, wantError %v", rmErr, tt.wantRmErr)
			}

			if e.Mask() != tt.wantMask {
				t.Errorf("mask = %v, want %v", e.Mask(), tt.wantMask)
			}
			if e.Len() != tt.wantCount {
				t.Errorf("entity has %d components, want %d", e.Len(), tt.wantCount)
			}
			// mask bits and mapping entries stay in step
			for _, sig := range e.Mask().Signatures() {
				if _, ok := e.Lookup(sig); !ok {
					t.Errorf("mask bit %d has no component", sig)
				}
			}
		})
	}
}

func TestAddChains(t *testing.T) {
	world, kinds := newTestWorld(t)
	e, _ := world.NewEntity()

	got, err := e.Add(&Position{Tag: NewTag(kinds.position)})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got != e {
		t.Fatalf("Add() returned %v, want the receiver", got)
	}

	e.MustAdd(&Velocity{Tag: NewTag(kinds.velocity)}, &Health{Tag: NewTag(kinds.health)})
	if e.Len() != 3 {
		t.Errorf("entity has %d components after chaining, want 3", e.Len())
	}
}

func TestMustAddPanicsOnDuplicate(t *testing.T) {
	world, kinds := newTestWorld(t)
	e, _ := world.NewEntity()
	e.MustAdd(&Health{Tag: NewTag(kinds.health)})

	defer func() {
		if recover() == nil {
			t.Error("MustAdd() with a duplicate kind did not panic")
		}
	}()
	e.MustAdd(&Health{Tag: NewTag(kinds.health)})
}

func TestAddRejectsInvalidSignature(t *testing.T) {
	world, _ := newTestWorld(t)
	e, _ := world.NewEntity()

	for _, sig := range []Signature{0, 3, 6} {
		_, err := e.Add(&Health{Tag: Tag{sig: sig}})
		var invalid InvalidSignatureError
		if !errors.As(err, &invalid) {
			t.Errorf("Add() with signature %d error = %v, want InvalidSignatureError", sig, err)
		}
	}
	if e.Mask() != 0 {
		t.Errorf("mask = %v after rejected adds, want {}", e.Mask())
	}
}

func TestHasAfterAddAndRemove(t *testing.T) {
	world, kinds := newTestWorld(t)
	e, _ := world.NewEntity()

	e.MustAdd(&Position{Tag: NewTag(kinds.position)})
	if !e.Has(kinds.position.Mask()) {
		t.Error("Has(position) = false right after Add")
	}

	if err := e.Remove(kinds.position.Signature); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if e.Has(kinds.position.Mask()) {
		t.Error("Has(position) = true right after Remove")
	}

	err := e.Remove(kinds.position.Signature)
	var missing MissingComponentError
	if !errors.As(err, &missing) {
		t.Fatalf("second Remove() error = %v, want MissingComponentError", err)
	}
	if missing.Entity != e.ID() || missing.Signature != kinds.position.Signature {
		t.Errorf("MissingComponentError = %+v", missing)
	}
}

func TestHasIsAnyOf(t *testing.T) {
	world, kinds := newTestWorld(t)
	e, _ := world.NewEntity()
	e.MustAdd(&Position{Tag: NewTag(kinds.position)})

	tests := []struct {
		name  string
		query Mask
		want  bool
	}{
		{"Present kind", kinds.position.Mask(), true},
		{"Absent kind", kinds.velocity.Mask(), false},
		{"Composite with one present", MaskOf(kinds.position.Signature, kinds.velocity.Signature), true},
		{"Composite with none present", MaskOf(kinds.velocity.Signature, kinds.health.Signature), false},
		{"Empty mask", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Has(tt.query); got != tt.want {
				t.Errorf("Has(%v) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestComponentValues(t *testing.T) {
	world, kinds := newTestWorld(t)
	pos := &Position{Tag: NewTag(kinds.position), X: 1, Y: 2}
	e, err := world.NewEntity(pos)
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}

	got, err := e.Get(kinds.position.Signature)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != Component(pos) {
		t.Errorf("Get() = %v, want the attached instance %v", got, pos)
	}

	typed, err := ComponentOf[*Position](e, kinds.position.Signature)
	if err != nil {
		t.Fatalf("ComponentOf() error = %v", err)
	}
	typed.X = 5
	if pos.X != 5 {
		t.Errorf("Position.X = %v after update through ComponentOf, want 5", pos.X)
	}

	if _, err := ComponentOf[*Velocity](e, kinds.position.Signature); err == nil {
		t.Error("ComponentOf() with the wrong type returned no error")
	}

	_, err = e.Get(kinds.health.Signature)
	var missing MissingComponentError
	if !errors.As(err, &missing) {
		t.Errorf("Get(absent) error = %v, want MissingComponentError", err)
	}
}

func TestComponentsIterateInSignatureOrder(t *testing.T) {
	world, kinds := newTestWorld(t)
	e, _ := world.NewEntity(
		&Health{Tag: NewTag(kinds.health)},
		&Position{Tag: NewTag(kinds.position)},
	)

	var sigs []Signature
	for sig, c := range e.Components() {
		if c.Signature() != sig {
			t.Errorf("component under %d reports signature %d", sig, c.Signature())
		}
		sigs = append(sigs, sig)
	}
	want := []Signature{kinds.position.Signature, kinds.health.Signature}
	if len(sigs) != len(want) || sigs[0] != want[0] || sigs[1] != want[1] {
		t.Errorf("Components() order = %v, want %v", sigs, want)
	}
}

func TestEntityEquality(t *testing.T) {
	world, kinds := newTestWorld(t)
	a, _ := world.NewEntity(&Position{Tag: NewTag(kinds.position), X: 1})
	b, _ := world.NewEntity(&Position{Tag: NewTag(kinds.position), X: 1})

	if a.ID() == b.ID() {
		t.Fatalf("two entities share ID %d", a.ID())
	}
	if a.Equal(b) {
		t.Error("entities with identical components compare equal")
	}

	restored, err := RestoreEntity(a.ID())
	if err != nil {
		t.Fatalf("RestoreEntity() error = %v", err)
	}
	if !a.Equal(restored) {
		t.Error("entities with the same ID compare unequal")
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) = true")
	}
}
