package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/sundayezeilo/repocatalog/internal/errx"
	"github.com/sundayezeilo/repocatalog/internal/idgen"
)

// CreateRepositoryRequest holds the client-settable fields of a new repository.
type CreateRepositoryRequest struct {
	Title string
	URL   string
	Techs []string
}

// UpdateRepositoryRequest holds the fields Update overwrites. Likes is
// deliberately absent: only Like changes the counter.
type UpdateRepositoryRequest struct {
	Title string
	URL   string
	Techs []string
}

// Service defines the catalog operations.
type Service interface {
	List(ctx context.Context) ([]Repository, error)
	Create(ctx context.Context, req CreateRepositoryRequest) (Repository, error)
	Update(ctx context.Context, id string, req UpdateRepositoryRequest) (Repository, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, id string) (int, error)
}

type service struct {
	store     Store
	generator idgen.Generator
	validator idgen.Validator
}

// ServiceConfig holds optional collaborators; nil fields get defaults.
type ServiceConfig struct {
	IDGenerator idgen.Generator // default: UUID v4
	IDValidator idgen.Validator // default: idgen.NewValidator()
}

// NewService creates a Service over store.
func NewService(store Store, config *ServiceConfig) Service {
	if config == nil {
		config = &ServiceConfig{}
	}

	gen := config.IDGenerator
	if gen == nil {
		gen = idgen.NewV4()
	}

	val := config.IDValidator
	if val == nil {
		val = idgen.NewValidator()
	}

	return &service{
		store:     store,
		generator: gen,
		validator: val,
	}
}

func (s *service) List(ctx context.Context) ([]Repository, error) {
	const op = "catalog.service.List"

	repos, err := s.store.List(ctx)
	if err != nil {
		return nil, errx.E(op, errx.KindOf(err), err)
	}
	return repos, nil
}

func (s *service) Create(ctx context.Context, req CreateRepositoryRequest) (Repository, error) {
	const op = "catalog.service.Create"

	id, err := s.generator.Generate()
	if err != nil {
		return Repository{}, errx.E(op, errx.Unavailable, err)
	}

	created, err := s.store.Create(ctx, Repository{
		ID:    id,
		Title: req.Title,
		URL:   req.URL,
		Techs: req.Techs,
		Likes: 0,
	})
	if err != nil {
		return Repository{}, errx.E(op, errx.KindOf(err), err)
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRepositoryRequest) (Repository, error) {
	const op = "catalog.service.Update"

	repoID, err := s.parseID(id)
	if err != nil {
		return Repository{}, errx.E(op, errx.Invalid, err)
	}

	updated, err := s.store.Update(ctx, repoID, func(r *Repository) {
		r.Title = req.Title
		r.URL = req.URL
		r.Techs = req.Techs
	})
	if err != nil {
		return Repository{}, errx.E(op, errx.KindOf(err), err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "catalog.service.Delete"

	repoID, err := s.parseID(id)
	if err != nil {
		return errx.E(op, errx.Invalid, err)
	}

	if err := s.store.Delete(ctx, repoID); err != nil {
		return errx.E(op, errx.KindOf(err), err)
	}
	return nil
}

func (s *service) Like(ctx context.Context, id string) (int, error) {
	const op = "catalog.service.Like"

	repoID, err := s.parseID(id)
	if err != nil {
		return 0, errx.E(op, errx.Invalid, err)
	}

	liked, err := s.store.Update(ctx, repoID, func(r *Repository) {
		r.Likes++
	})
	if err != nil {
		return 0, errx.E(op, errx.KindOf(err), err)
	}
	return liked.Likes, nil
}

func (s *service) parseID(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, idgen.ErrInvalidID
	}
	return s.validator.Validate(id)
}
