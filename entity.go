package signet

import (
	"fmt"
	"iter"
	"sort"
)

// Entity is an identity plus the components currently attached to it. The
// mask always holds exactly the signatures present in the component map.
type Entity struct {
	id         EntityID
	mask       Mask
	components map[Signature]Component
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		id:         id,
		components: make(map[Signature]Component),
	}
}

// RestoreEntity rebuilds an entity with a previously issued identity. It is
// meant for loaders; live entities come from World.NewEntity.
func RestoreEntity(id EntityID, components ...Component) (*Entity, error) {
	e := newEntity(id)
	for _, c := range components {
		if _, err := e.Add(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Entity) ID() EntityID {
	return e.id
}

// Mask is the OR of every attached component's signature.
func (e *Entity) Mask() Mask {
	return e.mask
}

// Len is the number of attached components.
func (e *Entity) Len() int {
	return len(e.components)
}

// Add attaches c and returns the entity so calls can be chained. Attaching a
// kind that is already present fails and leaves the entity unchanged.
func (e *Entity) Add(c Component) (*Entity, error) {
	sig := c.Signature()
	if !sig.Valid() {
		return e, InvalidSignatureError{Signature: sig}
	}
	if e.Has(sig.Mask()) {
		return e, DuplicateComponentError{Entity: e.id, Signature: sig}
	}
	e.mask |= sig.Mask()
	e.components[sig] = c
	return e, nil
}

// MustAdd is Add for fluent construction of entities whose composition is
// known to be valid. It panics on error.
func (e *Entity) MustAdd(components ...Component) *Entity {
	for _, c := range components {
		if _, err := e.Add(c); err != nil {
			panic(err)
		}
	}
	return e
}

// Remove detaches the component of the given kind.
func (e *Entity) Remove(sig Signature) error {
	if _, ok := e.components[sig]; !ok {
		return MissingComponentError{Entity: e.id, Signature: sig}
	}
	e.mask &^= sig.Mask()
	delete(e.components, sig)
	return nil
}

// Has reports whether the entity carries any of the kinds in m. Use
// ContainsAll on Mask() when every kind is required.
func (e *Entity) Has(m Mask) bool {
	return e.mask.Intersects(m)
}

// Get returns the component of the given kind.
func (e *Entity) Get(sig Signature) (Component, error) {
	c, ok := e.components[sig]
	if !ok {
		return nil, MissingComponentError{Entity: e.id, Signature: sig}
	}
	return c, nil
}

// Lookup is Get with a boolean result.
func (e *Entity) Lookup(sig Signature) (Component, bool) {
	c, ok := e.components[sig]
	return c, ok
}

// Components yields the attached components in ascending signature order.
func (e *Entity) Components() iter.Seq2[Signature, Component] {
	return func(yield func(Signature, Component) bool) {
		for _, sig := range e.mask.Signatures() {
			if !yield(sig, e.components[sig]) {
				return
			}
		}
	}
}

// Equal compares identities only.
func (e *Entity) Equal(other *Entity) bool {
	return other != nil && e.id == other.id
}

func (e *Entity) String() string {
	return fmt.Sprintf("entity(%d, mask=%v)", e.id, e.mask)
}

// ComponentOf fetches the component of kind sig from e and asserts it to T.
func ComponentOf[T Component](e *Entity, sig Signature) (T, error) {
	var zero T
	c, err := e.Get(sig)
	if err != nil {
		return zero, err
	}
	typed, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("component %d on entity %d is %T, not %T", sig, e.id, c, zero)
	}
	return typed, nil
}

func sortByID(entities []*Entity) {
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].id < entities[j].id
	})
}
