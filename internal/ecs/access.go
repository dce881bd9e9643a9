package ecs

// typeOf returns the store key for T. Component Type methods must not
// dereference their receiver so a nil pointer of T answers.
func typeOf[T Component]() ComponentType {
	var zero T
	return zero.Type()
}

// Get returns the T component of id, or a *NotFoundError.
func Get[T Component](w *World, id EntityID) (T, error) {
	t := typeOf[T]()
	if c, ok := w.Get(id, t).(T); ok {
		return c, nil
	}
	var zero T
	return zero, &NotFoundError{Entity: id, Type: t}
}

// TryGet returns the T component of id and whether it was present.
func TryGet[T Component](w *World, id EntityID) (T, bool) {
	c, ok := w.Get(id, typeOf[T]()).(T)
	return c, ok
}

// MustGet returns the T component of id and panics when it is absent.
// Use it where a missing component is a programming error.
func MustGet[T Component](w *World, id EntityID) T {
	c, err := Get[T](w, id)
	if err != nil {
		panic(err)
	}
	return c
}

// Each2 calls fn for every entity holding both A and B, in creation order.
// Entities destroyed by fn before their turn are skipped.
func Each2[A, B Component](w *World, fn func(EntityID, A, B)) {
	for _, id := range w.Query(typeOf[A](), typeOf[B]()) {
		a, okA := TryGet[A](w, id)
		b, okB := TryGet[B](w, id)
		if !okA || !okB {
			continue
		}
		fn(id, a, b)
	}
}
