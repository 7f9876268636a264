// internal/core/services/recompute_queue.go
package services

import "github.com/google/uuid"

// RecomputeQueue collects the parent ids whose aggregates must be rebuilt
// after the session flush. A queue belongs to a single commit and is
// discarded with it.
type RecomputeQueue struct {
	requests        idSet
	offers          idSet
	validatedOffers idSet
}

// NewRecomputeQueue creates an empty queue
func NewRecomputeQueue() *RecomputeQueue {
	return &RecomputeQueue{}
}

// AuditRequest marks an audit request for quantity recomputation
func (q *RecomputeQueue) AuditRequest(id uuid.UUID) { q.requests.add(id) }

// BuybackOffer marks an offer for totals recomputation
func (q *RecomputeQueue) BuybackOffer(id uuid.UUID) { q.offers.add(id) }

// OfferValidated marks an offer whose devices become buybacked
func (q *RecomputeQueue) OfferValidated(id uuid.UUID) { q.validatedOffers.add(id) }

// RequestIDs returns the queued audit request ids in insertion order
func (q *RecomputeQueue) RequestIDs() []uuid.UUID { return q.requests.list() }

// OfferIDs returns the queued offer ids in insertion order
func (q *RecomputeQueue) OfferIDs() []uuid.UUID { return q.offers.list() }

// ValidatedOfferIDs returns the offers validated in this commit
func (q *RecomputeQueue) ValidatedOfferIDs() []uuid.UUID { return q.validatedOffers.list() }

// Empty reports whether nothing was queued
func (q *RecomputeQueue) Empty() bool {
	return q.requests.len() == 0 && q.offers.len() == 0 && q.validatedOffers.len() == 0
}

type idSet struct {
	seen  map[uuid.UUID]struct{}
	order []uuid.UUID
}

func (s *idSet) add(id uuid.UUID) {
	if id == uuid.Nil {
		return
	}
	if s.seen == nil {
		s.seen = make(map[uuid.UUID]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *idSet) list() []uuid.UUID {
	return append([]uuid.UUID(nil), s.order...)
}

func (s *idSet) len() int { return len(s.order) }
