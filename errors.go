package signet

import "fmt"

type LockedSceneError struct{}

func (e LockedSceneError) Error() string {
	return "scene is currently locked"
}

type InvalidKindNameError struct{}

func (e InvalidKindNameError) Error() string {
	return "component kind name must not be empty"
}

type DuplicateComponentError struct {
	Entity    EntityID
	Signature Signature
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("component %d already exists on entity %d", e.Signature, e.Entity)
}

type MissingComponentError struct {
	Entity    EntityID
	Signature Signature
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf("component %d does not exist on entity %d", e.Signature, e.Entity)
}

type EntityNotFoundError struct {
	Entity EntityID
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d is not in the scene", e.Entity)
}

type SignatureOverflowError struct {
	Limit int
}

func (e SignatureOverflowError) Error() string {
	return fmt.Sprintf("signature allocator exhausted after %d kinds", e.Limit)
}

type InvalidSignatureError struct {
	Signature Signature
}

func (e InvalidSignatureError) Error() string {
	return fmt.Sprintf("signature %d is not a single bit", e.Signature)
}

type UnknownKindError struct {
	Name string
}

func (e UnknownKindError) Error() string {
	return fmt.Sprintf("component kind %q is not registered", e.Name)
}

type KindMismatchError struct {
	Name      string
	Want, Got Signature
}

func (e KindMismatchError) Error() string {
	return fmt.Sprintf("component kind %q has signature %d, saved as %d", e.Name, e.Want, e.Got)
}
