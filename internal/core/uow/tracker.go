// internal/core/uow/tracker.go

// Package uow implements change tracking for one transaction: an identity
// map, load-time snapshots and ordered insert/update/delete schedules.
package uow

import (
	"github.com/google/uuid"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
)

type identity struct {
	kind domain.EntityKind
	id   uuid.UUID
}

// Tracker is not safe for concurrent use. A tracker belongs to exactly one
// transaction.
type Tracker struct {
	identities map[identity]domain.Entity
	snapshots  map[domain.Entity]domain.FieldSet
	managed    []domain.Entity
	inserts    []domain.Entity
	deletes    []domain.Entity
	scheduled  []domain.Entity
	inserted   map[domain.Entity]bool
	deleted    map[domain.Entity]bool
}

var _ ports.UnitOfWork = (*Tracker)(nil)

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		identities: make(map[identity]domain.Entity),
		snapshots:  make(map[domain.Entity]domain.FieldSet),
		inserted:   make(map[domain.Entity]bool),
		deleted:    make(map[domain.Entity]bool),
	}
}

// Lookup returns a managed entity by kind and id
func (t *Tracker) Lookup(kind domain.EntityKind, id uuid.UUID) (domain.Entity, bool) {
	e, ok := t.identities[identity{kind: kind, id: id}]
	return e, ok
}

// Register adds a loaded entity to the identity map without taking a
// snapshot. Loaders call it before resolving relations so that cycles
// resolve to the same instance.
func (t *Tracker) Register(e domain.Entity) {
	key := identity{kind: e.Kind(), id: e.EntityID()}
	if _, ok := t.identities[key]; ok {
		return
	}
	t.identities[key] = e
	t.managed = append(t.managed, e)
}

// Snapshot records the current field values of a loaded entity as its
// baseline for change detection.
func (t *Tracker) Snapshot(e domain.Entity) {
	t.snapshots[e] = e.Fields()
}

// Attach registers and snapshots a fully loaded entity
func (t *Tracker) Attach(e domain.Entity) {
	t.Register(e)
	t.Snapshot(e)
}

// Persist schedules a new entity for insertion
func (t *Tracker) Persist(e domain.Entity) {
	if t.inserted[e] {
		return
	}
	t.Register(e)
	t.inserted[e] = true
	t.inserts = append(t.inserts, e)
}

// Remove schedules an entity for deletion. Removing a pending insert
// cancels it.
func (t *Tracker) Remove(e domain.Entity) {
	if t.inserted[e] {
		delete(t.inserted, e)
		t.inserts = without(t.inserts, e)
		t.managed = without(t.managed, e)
		delete(t.identities, identity{kind: e.Kind(), id: e.EntityID()})
		return
	}
	if t.deleted[e] {
		return
	}
	t.deleted[e] = true
	t.deletes = append(t.deletes, e)
}

// PendingInserts returns a copy of the insert schedule
func (t *Tracker) PendingInserts() []domain.Entity {
	return append([]domain.Entity(nil), t.inserts...)
}

// PendingUpdates returns managed entities whose fields differ from their
// snapshot, explicitly scheduled entities first.
func (t *Tracker) PendingUpdates() []domain.Entity {
	seen := make(map[domain.Entity]bool)
	var out []domain.Entity
	collect := func(e domain.Entity) {
		if seen[e] || t.inserted[e] || t.deleted[e] {
			return
		}
		seen[e] = true
		if len(t.ChangedFields(e)) > 0 {
			out = append(out, e)
		}
	}
	for _, e := range t.scheduled {
		collect(e)
	}
	for _, e := range t.managed {
		collect(e)
	}
	return out
}

// PendingDeletes returns a copy of the delete schedule
func (t *Tracker) PendingDeletes() []domain.Entity {
	return append([]domain.Entity(nil), t.deletes...)
}

// ChangedFields diffs the entity against its snapshot. Inserted entities
// report every non-nil field.
func (t *Tracker) ChangedFields(e domain.Entity) domain.ChangeSet {
	if t.inserted[e] {
		return domain.Diff(nil, e.Fields())
	}
	before, ok := t.snapshots[e]
	if !ok {
		return domain.ChangeSet{}
	}
	return domain.Diff(before, e.Fields())
}

// RecomputeChangeSet schedules a modified entity for update. Entities that
// were never loaded or persisted are attached as inserts.
func (t *Tracker) RecomputeChangeSet(e domain.Entity) {
	if t.inserted[e] || t.deleted[e] {
		return
	}
	if _, ok := t.snapshots[e]; !ok {
		t.Persist(e)
		return
	}
	for _, s := range t.scheduled {
		if s == e {
			return
		}
	}
	t.scheduled = append(t.scheduled, e)
}

// IsInserted reports whether the entity is pending insertion
func (t *Tracker) IsInserted(e domain.Entity) bool {
	return t.inserted[e]
}

// MarkFlushed re-baselines every written entity and clears the schedules
func (t *Tracker) MarkFlushed() {
	for _, e := range t.deletes {
		delete(t.identities, identity{kind: e.Kind(), id: e.EntityID()})
		delete(t.snapshots, e)
		t.managed = without(t.managed, e)
	}
	for _, e := range t.managed {
		t.snapshots[e] = e.Fields()
	}
	t.inserts = nil
	t.deletes = nil
	t.scheduled = nil
	t.inserted = make(map[domain.Entity]bool)
	t.deleted = make(map[domain.Entity]bool)
}

func without(list []domain.Entity, e domain.Entity) []domain.Entity {
	out := list[:0]
	for _, item := range list {
		if item != e {
			out = append(out, item)
		}
	}
	return out
}
