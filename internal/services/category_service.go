package services

import (
	"easybudget/internal/budget"
	"easybudget/internal/ledger"
	"easybudget/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	registry *Registry
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(registry *Registry) CategoryServicer {
	return &categoryService{registry: registry}
}

// CreateCategory adds a category to the user's budget.
func (s *categoryService) CreateCategory(userID, name, color string) (*models.Category, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	category, err := state.AddCategory(budget.CategoryInput{Name: name, ColorTag: color})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetUserCategories lists the categories in display order with their totals.
func (s *categoryService) GetUserCategories(userID string) ([]CategoryWithTotal, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}

	snap := state.Snapshot()
	out := make([]CategoryWithTotal, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		out = append(out, CategoryWithTotal{
			Category:  c,
			Total:     ledger.TotalForCategory(snap, c.ID),
			IsDefault: c.IsDefault(),
		})
	}
	return out, nil
}

// UpdateCategory renames or recolors a category.
func (s *categoryService) UpdateCategory(userID, categoryID, name, color string) (*models.Category, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	category, err := state.UpdateCategory(categoryID, budget.CategoryInput{Name: name, ColorTag: color})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category and its expenses.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	state, err := s.registry.Get(userID)
	if err != nil {
		return err
	}
	return state.DeleteCategory(categoryID)
}
