package budget

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "easybudget/internal/errors"
	"easybudget/internal/models"
)

// CategoryInput is the editable part of a category.
type CategoryInput struct {
	Name     string
	ColorTag string
}

// SetGrossIncome replaces the gross income of the pay period.
func (s *State) SetGrossIncome(amount decimal.Decimal) error {
	if err := requirePositive("gross income", amount); err != nil {
		return err
	}
	return s.apply(func(next *models.Snapshot) error {
		next.Budget.GrossIncome = amount
		return nil
	})
}

// AddCategory appends a category. Names are trimmed and must be unique,
// ignoring case.
func (s *State) AddCategory(in CategoryInput) (models.Category, error) {
	name, err := requireName("category name", in.Name)
	if err != nil {
		return models.Category{}, err
	}

	var created models.Category
	err = s.apply(func(next *models.Snapshot) error {
		if err := checkCategoryName(next.Categories, name, ""); err != nil {
			return err
		}
		created = models.Category{Entry: models.NewEntry(), Name: name, ColorTag: in.ColorTag}
		next.Categories = append(next.Categories, created)
		return nil
	})
	return created, err
}

// UpdateCategory renames and recolors a category. The default categories
// keep their names but may change color.
func (s *State) UpdateCategory(id string, in CategoryInput) (models.Category, error) {
	name, err := requireName("category name", in.Name)
	if err != nil {
		return models.Category{}, err
	}

	var updated models.Category
	err = s.apply(func(next *models.Snapshot) error {
		i := indexOfCategory(next.Categories, id)
		if i < 0 {
			return apperrors.ErrCategoryNotFound
		}
		c := &next.Categories[i]
		if c.IsDefault() && name != c.Name {
			return apperrors.WithMessage(apperrors.ErrCategoryProtected, "default categories cannot be renamed")
		}
		if err := checkCategoryName(next.Categories, name, id); err != nil {
			return err
		}
		c.Name = name
		c.ColorTag = in.ColorTag
		c.Touch()
		updated = *c
		return nil
	})
	return updated, err
}

// DeleteCategory removes a category together with every expense filed
// under it. The default categories cannot be deleted.
func (s *State) DeleteCategory(id string) error {
	return s.apply(func(next *models.Snapshot) error {
		i := indexOfCategory(next.Categories, id)
		if i < 0 {
			return apperrors.ErrCategoryNotFound
		}
		if next.Categories[i].IsDefault() {
			return apperrors.ErrCategoryProtected
		}

		next.Categories = append(next.Categories[:i], next.Categories[i+1:]...)
		kept := next.Expenses[:0]
		for _, e := range next.Expenses {
			if e.CategoryID != id {
				kept = append(kept, e)
			}
		}
		next.Expenses = kept
		return nil
	})
}

func checkCategoryName(categories []models.Category, name, exceptID string) error {
	for _, c := range categories {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return apperrors.WithMessage(apperrors.ErrDuplicateName, "a category named \""+c.Name+"\" already exists")
		}
	}
	return nil
}

func indexOfCategory(categories []models.Category, id string) int {
	for i, c := range categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
