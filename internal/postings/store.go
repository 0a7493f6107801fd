package postings

import (
	"sort"
	"sync"

	"studioops/pkg/models"
)

// Store holds job postings. Implementations must return deep-enough copies
// that callers cannot mutate stored applicant slices behind the store's
// back.
type Store interface {
	Put(posting models.JobPosting)
	Get(id string) (models.JobPosting, bool)
	List() []models.JobPosting
	Delete(id string)
	Snapshot() []models.JobPosting
	Restore(postings []models.JobPosting)
}

// MemoryStore is an in-memory Store safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	postings map[string]models.JobPosting
	order    map[string]int
	seq      int
}

// NewMemoryStore creates an empty in-memory posting store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		postings: make(map[string]models.JobPosting),
		order:    make(map[string]int),
	}
}

// Put inserts or replaces a posting.
func (s *MemoryStore) Put(posting models.JobPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.postings[posting.ID]; !exists {
		s.order[posting.ID] = s.seq
		s.seq++
	}
	s.postings[posting.ID] = clonePosting(posting)
}

// Get returns the posting with the given id.
func (s *MemoryStore) Get(id string) (models.JobPosting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posting, ok := s.postings[id]
	if !ok {
		return models.JobPosting{}, false
	}
	return clonePosting(posting), true
}

// List returns all postings in insertion order.
func (s *MemoryStore) List() []models.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.JobPosting, 0, len(s.postings))
	for _, p := range s.postings {
		out = append(out, clonePosting(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return s.order[out[i].ID] < s.order[out[j].ID]
	})
	return out
}

// Delete removes a posting. Deleting an unknown id is a no-op.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.postings, id)
	delete(s.order, id)
}

// Snapshot returns a copy of all postings for persistence.
func (s *MemoryStore) Snapshot() []models.JobPosting {
	return s.List()
}

// Restore replaces the store contents with the given postings.
func (s *MemoryStore) Restore(postings []models.JobPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.postings = make(map[string]models.JobPosting, len(postings))
	s.order = make(map[string]int, len(postings))
	s.seq = 0
	for _, p := range postings {
		s.postings[p.ID] = clonePosting(p)
		s.order[p.ID] = s.seq
		s.seq++
	}
}

func clonePosting(p models.JobPosting) models.JobPosting {
	p.Applicants = append([]models.JobApplicant(nil), p.Applicants...)
	return p
}
