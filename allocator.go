package signet

// MaxKinds bounds the number of component kinds a single allocator can issue.
// Signatures are single bits of a 64-bit mask.
const MaxKinds = 64

// EntityID is an entity's identity. IDs start at 1 and are never reused.
type EntityID uint64

// Allocator issues signatures and entity identities.
type Allocator struct {
	nextSig Signature
	lastID  EntityID
	issued  int
}

// NewAllocator returns an allocator in its fresh state.
func NewAllocator() *Allocator {
	a := &Allocator{}
	a.Reset()
	return a
}

// NextSignature returns the current signature counter and shifts it left for
// the next call: 1, 2, 4, 8, ...
func (a *Allocator) NextSignature() (Signature, error) {
	if a.issued >= MaxKinds {
		return 0, SignatureOverflowError{Limit: MaxKinds}
	}
	current := a.nextSig
	a.nextSig <<= 1
	a.issued++
	return current, nil
}

// NextID increments and returns the identity counter: 1, 2, 3, ...
func (a *Allocator) NextID() EntityID {
	a.lastID++
	return a.lastID
}

// Observe records an identity issued elsewhere (a restored save) so that later
// calls to NextID never collide with it.
func (a *Allocator) Observe(id EntityID) {
	if id > a.lastID {
		a.lastID = id
	}
}

// LastID is the most recently issued or observed identity, 0 when fresh.
func (a *Allocator) LastID() EntityID {
	return a.lastID
}

// Issued is the number of signatures handed out so far.
func (a *Allocator) Issued() int {
	return a.issued
}

// Reset returns both counters to their initial values.
func (a *Allocator) Reset() {
	a.nextSig = 1
	a.lastID = 0
	a.issued = 0
}
