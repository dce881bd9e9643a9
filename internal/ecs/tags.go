package ecs

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Tag adds the entity to the named tag set.
func (w *World) Tag(id EntityID, tag string) {
	if !w.alive[id] {
		return
	}
	set, ok := w.tags[tag]
	if !ok {
		set = mapset.New[EntityID]()
		w.tags[tag] = set
	}
	set.Put(id)
}

// Untag removes the entity from the named tag set.
func (w *World) Untag(id EntityID, tag string) {
	if set, ok := w.tags[tag]; ok {
		set.Remove(id)
	}
}

// HasTag reports whether the entity is under tag.
func (w *World) HasTag(id EntityID, tag string) bool {
	set, ok := w.tags[tag]
	return ok && set.Has(id)
}

// Tagged returns the entities under tag in creation order.
func (w *World) Tagged(tag string) []EntityID {
	set, ok := w.tags[tag]
	if !ok {
		return nil
	}
	out := make([]EntityID, 0, set.Size())
	set.Each(func(id EntityID) {
		out = append(out, id)
	})
	slices.Sort(out)
	return out
}

// TagsOf returns the sorted tag names the entity carries.
func (w *World) TagsOf(id EntityID) []string {
	var out []string
	for tag, set := range w.tags {
		if set.Has(id) {
			out = append(out, tag)
		}
	}
	slices.Sort(out)
	return out
}

// PurgeTag destroys every entity currently under tag and returns how many
// were removed.
func (w *World) PurgeTag(tag string) int {
	ids := w.Tagged(tag)
	for _, id := range ids {
		w.DestroyEntity(id)
	}
	return len(ids)
}
