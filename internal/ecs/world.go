package ecs

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// World is the central entity registry and component store.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
	tags       map[string]mapset.Set[EntityID]
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
		tags:       make(map[string]mapset.Set[EntityID]),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Spawn creates an entity carrying the given components and tags.
func (w *World) Spawn(tags []string, comps ...Component) EntityID {
	id := w.CreateEntity()
	for _, c := range comps {
		w.Add(id, c)
	}
	for _, tag := range tags {
		w.Tag(id, tag)
	}
	return id
}

// DestroyEntity removes the entity from every component store and tag set.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
	for _, set := range w.tags {
		set.Remove(id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Entities returns every alive entity in creation order.
func (w *World) Entities() []EntityID {
	out := make([]EntityID, 0, len(w.alive))
	for id := range w.alive {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Add attaches a component to an entity, replacing any of the same type.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// in creation order. The result is a snapshot: destroying entities while
// ranging over it is safe.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// Row is one query match with its components in the requested order.
type Row struct {
	ID         EntityID
	Components []Component
}

// Join is Query that also returns the matched components.
func (w *World) Join(types ...ComponentType) []Row {
	ids := w.Query(types...)
	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		cs := make([]Component, len(types))
		for i, t := range types {
			cs[i] = w.Get(id, t)
		}
		rows = append(rows, Row{ID: id, Components: cs})
	}
	return rows
}
