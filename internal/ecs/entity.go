package ecs

import (
	"errors"
	"fmt"
)

// EntityID uniquely identifies an entity in the world.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
// Components are stored as pointers so systems mutate them in place.
type Component interface {
	Type() ComponentType
}

// ErrNotFound is wrapped by every NotFoundError.
var ErrNotFound = errors.New("component not found")

// NotFoundError reports a must-exist lookup that failed.
type NotFoundError struct {
	Entity EntityID
	Type   ComponentType
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity %d: component %d not found", e.Entity, e.Type)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
