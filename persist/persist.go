// Package persist saves a world's active scene to a single file and loads it back.
//
// The file is a YAML document listing the registered kinds with their
// signatures and every entity with its identity, mask and component data.
// Loading checks the saved kinds against the world so that a save taken with a
// different registration order is rejected instead of silently misread.
package persist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/TheBitDrifter/signet"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the game keeps its save.
const DefaultPath = "./save.data"

const formatVersion = 1

// DecodeFunc rebuilds one component of kind from its saved data.
type DecodeFunc func(kind signet.Kind, data *yaml.Node) (signet.Component, error)

// Codecs maps kind names to their decoders.
type Codecs map[string]DecodeFunc

type document struct {
	Version  int            `yaml:"version"`
	LastID   uint64         `yaml:"last_id"`
	Kinds    []kindRecord   `yaml:"kinds"`
	Entities []entityRecord `yaml:"entities"`
}

type kindRecord struct {
	Name      string `yaml:"name"`
	Signature uint64 `yaml:"signature"`
}

type entityRecord struct {
	ID         uint64            `yaml:"id"`
	Mask       uint64            `yaml:"mask"`
	Components []componentRecord `yaml:"components"`
}

type componentRecord struct {
	Kind string    `yaml:"kind"`
	Data yaml.Node `yaml:"data"`
}

// State is a decoded save.
type State struct {
	LastID   signet.EntityID
	Entities []*signet.Entity
}

// Encode writes the world's active scene to w.
func Encode(w io.Writer, world *signet.World) error {
	doc := document{
		Version: formatVersion,
		LastID:  uint64(world.Allocator().LastID()),
	}
	for _, k := range world.Kinds() {
		doc.Kinds = append(doc.Kinds, kindRecord{Name: k.Name, Signature: uint64(k.Signature)})
	}
	for e := range world.Scene().Entities() {
		rec := entityRecord{ID: uint64(e.ID()), Mask: uint64(e.Mask())}
		for sig, c := range e.Components() {
			kind, ok := world.KindOf(sig)
			if !ok {
				return fmt.Errorf("entity %d: component %d has no registered kind", e.ID(), sig)
			}
			cr := componentRecord{Kind: kind.Name}
			if err := cr.Data.Encode(c); err != nil {
				return fmt.Errorf("entity %d: encode %s: %w", e.ID(), kind.Name, err)
			}
			rec.Components = append(rec.Components, cr)
		}
		doc.Entities = append(doc.Entities, rec)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	return enc.Close()
}

// Decode reads a save from r. The world is consulted for kinds but not modified.
func Decode(r io.Reader, world *signet.World, codecs Codecs) (State, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return State{}, errors.New("decode save: empty document")
		}
		return State{}, fmt.Errorf("decode save: %w", err)
	}
	if doc.Version != formatVersion {
		return State{}, fmt.Errorf("decode save: unsupported version %d", doc.Version)
	}

	kinds := make(map[string]signet.Kind, len(doc.Kinds))
	for _, rec := range doc.Kinds {
		k, err := world.Kind(rec.Name)
		if err != nil {
			return State{}, err
		}
		if k.Signature != signet.Signature(rec.Signature) {
			return State{}, signet.KindMismatchError{Name: rec.Name, Want: k.Signature, Got: signet.Signature(rec.Signature)}
		}
		kinds[rec.Name] = k
	}

	state := State{LastID: signet.EntityID(doc.LastID)}
	seen := make(map[uint64]struct{}, len(doc.Entities))
	for _, rec := range doc.Entities {
		if _, dup := seen[rec.ID]; dup {
			return State{}, fmt.Errorf("decode save: entity %d appears twice", rec.ID)
		}
		seen[rec.ID] = struct{}{}

		comps := make([]signet.Component, 0, len(rec.Components))
		for i := range rec.Components {
			cr := &rec.Components[i]
			kind, ok := kinds[cr.Kind]
			if !ok {
				return State{}, signet.UnknownKindError{Name: cr.Kind}
			}
			decode, ok := codecs[cr.Kind]
			if !ok {
				return State{}, fmt.Errorf("decode save: no codec for kind %q", cr.Kind)
			}
			c, err := decode(kind, &cr.Data)
			if err != nil {
				return State{}, fmt.Errorf("decode save: entity %d %s: %w", rec.ID, cr.Kind, err)
			}
			comps = append(comps, c)
		}

		e, err := signet.RestoreEntity(signet.EntityID(rec.ID), comps...)
		if err != nil {
			return State{}, fmt.Errorf("decode save: entity %d: %w", rec.ID, err)
		}
		if e.Mask() != signet.Mask(rec.Mask) {
			return State{}, fmt.Errorf("decode save: entity %d mask %d does not match its components (%d)", rec.ID, rec.Mask, e.Mask())
		}
		if e.ID() > state.LastID {
			state.LastID = e.ID()
		}
		state.Entities = append(state.Entities, e)
	}
	return state, nil
}

// fileMode is applied to a save file that does not exist yet. An existing
// file keeps its permissions.
const fileMode os.FileMode = 0o644

// Save writes the world's active scene to path, replacing any previous file
// only once the new one is fully written.
func Save(path string, world *signet.World, log *zap.Logger) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".save-*")
	if err != nil {
		return fmt.Errorf("create save %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, world); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write save %s: %w", path, err)
	}
	mode := fileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("write save %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write save %s: %w", path, err)
	}
	orNop(log).Info("scene saved", zap.String("path", path), zap.Int("entities", world.Scene().Len()))
	return nil
}

// Load replaces the active scene's entities with the ones saved at path and
// moves the world's identity counter past every loaded identity.
func Load(path string, world *signet.World, codecs Codecs, log *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open save %s: %w", path, err)
	}
	defer f.Close()

	state, err := Decode(f, world, codecs)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := world.Scene().Replace(state.Entities); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	world.Allocator().Observe(state.LastID)
	orNop(log).Info("scene loaded", zap.String("path", path), zap.Int("entities", len(state.Entities)))
	return nil
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
