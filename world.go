package signet

import (
	"go.uber.org/zap"
)

// World is the ECS context: it issues identities and signatures, keeps the
// component kind registry, and references the active scene.
type World struct {
	alloc *Allocator
	kinds Cache[Kind]
	scene *Scene
}

func newWorld() *World {
	return &World{
		alloc: NewAllocator(),
		kinds: FactoryNewCache[Kind](MaxKinds),
		scene: newScene(),
	}
}

// RegisterKind registers a component kind under name and returns its stable
// signature. Registering a name twice returns the kind issued the first time.
func (w *World) RegisterKind(name string) (Kind, error) {
	if name == "" {
		return Kind{}, InvalidKindNameError{}
	}
	if idx, found := w.kinds.GetIndex(name); found {
		return *w.kinds.GetItem(idx), nil
	}
	sig, err := w.alloc.NextSignature()
	if err != nil {
		return Kind{}, err
	}
	k := Kind{Name: name, Signature: sig}
	if _, err := w.kinds.Register(name, k); err != nil {
		return Kind{}, err
	}
	Config.logger().Debug("component kind registered", zap.String("kind", name), zap.Uint64("signature", uint64(sig)))
	return k, nil
}

// Kind looks a registered kind up by name.
func (w *World) Kind(name string) (Kind, error) {
	idx, found := w.kinds.GetIndex(name)
	if !found {
		return Kind{}, UnknownKindError{Name: name}
	}
	return *w.kinds.GetItem(idx), nil
}

// KindOf looks a registered kind up by signature.
func (w *World) KindOf(sig Signature) (Kind, bool) {
	for i := 0; i < w.kinds.Len(); i++ {
		if k := w.kinds.GetItem(i); k.Signature == sig {
			return *k, true
		}
	}
	return Kind{}, false
}

// Kinds returns every registered kind in registration order.
func (w *World) Kinds() []Kind {
	kinds := make([]Kind, w.kinds.Len())
	for i := range kinds {
		kinds[i] = *w.kinds.GetItem(i)
	}
	return kinds
}

// NewEntity returns an empty entity with a fresh identity. The entity is not
// added to any scene.
func (w *World) NewEntity(components ...Component) (*Entity, error) {
	e := newEntity(w.alloc.NextID())
	for _, c := range components {
		if _, err := e.Add(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Spawn creates an entity with the given components and adds it to the
// active scene. While the scene is locked the addition waits for Unlock.
func (w *World) Spawn(components ...Component) (*Entity, error) {
	e, err := w.NewEntity(components...)
	if err != nil {
		return nil, err
	}
	if err := w.scene.EnqueueCreate(e); err != nil {
		return nil, err
	}
	return e, nil
}

// NextID issues an identity without building an entity.
func (w *World) NextID() EntityID {
	return w.alloc.NextID()
}

// Allocator exposes the counters, mostly to loaders that restore identities.
func (w *World) Allocator() *Allocator {
	return w.alloc
}

func (w *World) Scene() *Scene {
	return w.scene
}

// SetScene makes s the active scene.
func (w *World) SetScene(s *Scene) {
	w.scene = s
}

// NewScene installs and returns a fresh, empty active scene.
func (w *World) NewScene() *Scene {
	w.scene = newScene()
	return w.scene
}

// Reset returns the world to its freshly constructed state: counters, kind
// registry and active scene.
func (w *World) Reset() {
	w.alloc.Reset()
	w.kinds.Clear()
	w.scene = newScene()
	Config.logger().Debug("world reset")
}
