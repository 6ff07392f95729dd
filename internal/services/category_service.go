package services

import (
	"context"

	"github.com/gatherly/api/internal/models"
)

type CategoryService struct {
	store models.Store
}

func NewCategoryService(store models.Store) *CategoryService {
	return &CategoryService{store: store}
}

func (cs *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return cs.store.ListCategories(ctx)
}

func (cs *CategoryService) Get(ctx context.Context, id int) (models.Category, error) {
	return cs.store.GetCategory(ctx, id)
}
