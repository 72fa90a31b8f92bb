package signet

import (
	"errors"
	"fmt"
)

type operation struct {
	typ      operationType
	entities []*Entity
}

type operationType int

const (
	opCreate operationType = iota
	opDestroy
)

type opQueue struct {
	createOps      []operation
	destroyOps     []operation
	pendingCreate  map[EntityID]struct{}
	pendingDestroy map[EntityID]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingCreate:  make(map[EntityID]struct{}),
		pendingDestroy: make(map[EntityID]struct{}),
	}
}

func (q *opQueue) empty() bool {
	return len(q.createOps) == 0 && len(q.destroyOps) == 0
}

func (s *Scene) processOperationQueue() error {
	if s.opQueue.empty() {
		return nil
	}
	defer s.opQueue.reset()

	// Every queued operation is attempted; one failure does not drop the rest.
	var errs []error
	for _, op := range s.opQueue.createOps {
		for _, e := range op.entities {
			if err := s.Create(e); err != nil {
				errs = append(errs, fmt.Errorf("failed to process queued entity creation: %w", err))
			}
		}
	}

	// Process destroys last
	for _, op := range s.opQueue.destroyOps {
		for _, e := range op.entities {
			if err := s.Destroy(e); err != nil {
				errs = append(errs, fmt.Errorf("failed to process queued entity destruction: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

func (q *opQueue) reset() {
	q.createOps = q.createOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingCreate)
	clear(q.pendingDestroy)
}

func (q *opQueue) EnqueueCreate(entities []*Entity) {
	var fresh []*Entity
	for _, e := range entities {
		if _, queued := q.pendingCreate[e.id]; queued {
			continue
		}
		q.pendingCreate[e.id] = struct{}{}
		fresh = append(fresh, e)
	}
	if len(fresh) > 0 {
		q.createOps = append(q.createOps, operation{typ: opCreate, entities: fresh})
	}
}

func (q *opQueue) EnqueueDestroy(entities []*Entity) {
	// Filter out already queued entities
	var fresh []*Entity
	for _, e := range entities {
		if _, queued := q.pendingDestroy[e.id]; queued {
			continue
		}
		q.pendingDestroy[e.id] = struct{}{}
		fresh = append(fresh, e)
	}
	if len(fresh) > 0 {
		q.destroyOps = append(q.destroyOps, operation{typ: opDestroy, entities: fresh})
	}
}
