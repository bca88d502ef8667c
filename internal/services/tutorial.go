package services

import (
	"context"

	"github.com/tutorialhub/tutorials-service/internal/models"
	"github.com/tutorialhub/tutorials-service/internal/store"
)

type TutorialService struct {
	store *store.Store
}

func NewTutorialService(st *store.Store) *TutorialService {
	return &TutorialService{store: st}
}

type TutorialListParams struct {
	Published *bool
}

func (s *TutorialService) List(ctx context.Context, params TutorialListParams) ([]models.Tutorial, error) {
	var opts []store.ListOption
	if params.Published != nil {
		opts = append(opts, store.ByPublished(*params.Published))
	}
	return s.store.Tutorials().List(ctx, opts...)
}

func (s *TutorialService) Get(ctx context.Context, id int64) (*models.Tutorial, error) {
	return s.store.Tutorials().Get(ctx, id)
}

func (s *TutorialService) Create(ctx context.Context, t models.Tutorial) (*models.Tutorial, error) {
	return s.store.Tutorials().Create(ctx, t)
}

// Update replaces the mutable fields of an existing tutorial. The identifier
// itself never changes.
func (s *TutorialService) Update(ctx context.Context, t models.Tutorial) (*models.Tutorial, error) {
	return s.store.Tutorials().Update(ctx, t)
}

func (s *TutorialService) Delete(ctx context.Context, id int64) error {
	return s.store.Tutorials().Delete(ctx, id)
}

func (s *TutorialService) DeleteAll(ctx context.Context) error {
	return s.store.Tutorials().DeleteAll(ctx)
}
