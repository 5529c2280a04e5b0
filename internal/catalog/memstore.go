package catalog

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/sundayezeilo/repocatalog/internal/errx"
)

// ErrNotFound is the cause carried by NotFound errors from the store.
var ErrNotFound = errors.New("repository not found")

// MemoryStore keeps the catalog in a slice for the lifetime of the process.
// A single mutex covers each whole operation.
type MemoryStore struct {
	mu    sync.Mutex
	repos []Repository
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) List(ctx context.Context) ([]Repository, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Repository, len(s.repos))
	for i, r := range s.repos {
		out[i] = r.clone()
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, repo Repository) (Repository, error) {
	const op = "catalog.store.Create"

	if repo.ID == uuid.Nil {
		return Repository{}, errx.E(op, errx.Internal, errors.New("repository id is nil"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(repo.ID) >= 0 {
		return Repository{}, errx.E(op, errx.Internal, errors.New("duplicate repository id"))
	}

	stored := repo.clone()
	s.repos = append(s.repos, stored)
	return stored.clone(), nil
}

func (s *MemoryStore) Update(ctx context.Context, id uuid.UUID, mutate func(*Repository)) (Repository, error) {
	const op = "catalog.store.Update"

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Repository{}, errx.E(op, errx.NotFound, ErrNotFound)
	}

	// mutate works on a copy; the id is restored so it can never change.
	repo := s.repos[i].clone()
	mutate(&repo)
	repo.ID = id
	repo.Techs = normalizeTechs(repo.Techs)

	s.repos[i] = repo
	return repo.clone(), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "catalog.store.Delete"

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errx.E(op, errx.NotFound, ErrNotFound)
	}

	s.repos = slices.Delete(s.repos, i, i+1)
	return nil
}

// indexOf scans in order and returns the first match, or -1. Callers hold mu.
func (s *MemoryStore) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.repos, func(r Repository) bool {
		return r.ID == id
	})
}
