package signet

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// Scene is the live set of entities. Membership is by identity.
type Scene struct {
	locked   bool
	entities map[EntityID]*Entity
	opQueue  opQueue
}

func newScene() *Scene {
	return &Scene{
		entities: make(map[EntityID]*Entity),
		opQueue:  newOpQueue(),
	}
}

// Create adds e to the scene. Adding an entity whose identity is already
// present keeps the existing member.
func (s *Scene) Create(e *Entity) error {
	if s.locked {
		return LockedSceneError{}
	}
	if _, found := s.entities[e.id]; found {
		return nil
	}
	s.entities[e.id] = e
	Config.logger().Debug("entity created", zap.Uint64("entity", uint64(e.id)), zap.Uint64("mask", uint64(e.mask)))
	return nil
}

// Destroy removes e from the scene. Removing a non-member is an error.
func (s *Scene) Destroy(e *Entity) error {
	if s.locked {
		return LockedSceneError{}
	}
	if _, found := s.entities[e.id]; !found {
		return EntityNotFoundError{Entity: e.id}
	}
	delete(s.entities, e.id)
	Config.logger().Debug("entity destroyed", zap.Uint64("entity", uint64(e.id)))
	return nil
}

func (s *Scene) EnqueueCreate(entities ...*Entity) error {
	if !s.locked {
		for _, e := range entities {
			if err := s.Create(e); err != nil {
				return err
			}
		}
		return nil
	}
	s.opQueue.EnqueueCreate(entities)
	return nil
}

func (s *Scene) EnqueueDestroy(entities ...*Entity) error {
	if !s.locked {
		for _, e := range entities {
			if err := s.Destroy(e); err != nil {
				return err
			}
		}
		return nil
	}
	s.opQueue.EnqueueDestroy(entities)
	return nil
}

// Contains reports whether an entity with e's identity is a member.
func (s *Scene) Contains(e *Entity) bool {
	_, found := s.entities[e.id]
	return found
}

// Entity returns the member with the given identity.
func (s *Scene) Entity(id EntityID) (*Entity, error) {
	e, found := s.entities[id]
	if !found {
		return nil, EntityNotFoundError{Entity: id}
	}
	return e, nil
}

func (s *Scene) Len() int {
	return len(s.entities)
}

// Entities yields every member in ascending identity order.
func (s *Scene) Entities() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, e := range s.sorted() {
			if !yield(e) {
				return
			}
		}
	}
}

// Filter returns every member whose mask contains all bits of the OR of
// masks. With no masks the required mask is empty and every member matches.
func (s *Scene) Filter(masks ...Mask) []*Entity {
	required := Union(masks...)
	matched := make([]*Entity, 0)
	for _, e := range s.entities {
		if e.mask.ContainsAll(required) {
			matched = append(matched, e)
		}
	}
	sortByID(matched)
	return matched
}

// Query returns every member the node accepts.
func (s *Scene) Query(node QueryNode) []*Entity {
	matched := make([]*Entity, 0)
	for _, e := range s.entities {
		if node.Evaluate(e) {
			matched = append(matched, e)
		}
	}
	sortByID(matched)
	return matched
}

// Each calls fn for every member matching the masks with the scene locked.
// Creates and destroys requested through the Enqueue methods during the scan
// are applied once it finishes.
func (s *Scene) Each(fn func(*Entity), masks ...Mask) (err error) {
	matched := s.Filter(masks...)
	if !s.locked {
		s.Lock()
		defer func() {
			if unlockErr := s.Unlock(); err == nil {
				err = unlockErr
			}
		}()
	}
	for _, e := range matched {
		fn(e)
	}
	return nil
}

// Replace swaps the whole member set for entities.
func (s *Scene) Replace(entities []*Entity) error {
	if s.locked {
		return LockedSceneError{}
	}
	next := make(map[EntityID]*Entity, len(entities))
	for _, e := range entities {
		next[e.id] = e
	}
	s.entities = next
	return nil
}

// Clear drops every member.
func (s *Scene) Clear() error {
	return s.Replace(nil)
}

func (s *Scene) Locked() bool {
	return s.locked
}

func (s *Scene) Lock() {
	s.locked = true
}

// Unlock releases the scene and applies queued operations.
func (s *Scene) Unlock() error {
	s.locked = false
	if err := s.processOperationQueue(); err != nil {
		return fmt.Errorf("failed to apply queued scene operations: %w", err)
	}
	return nil
}

func (s *Scene) sorted() []*Entity {
	all := make([]*Entity, 0, len(s.entities))
	for _, e := range s.entities {
		all = append(all, e)
	}
	sortByID(all)
	return all
}
