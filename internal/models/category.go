package models

import "strings"

// Names of the categories every budget is seeded with.
const (
	NonDiscretionaryCategoryName = "Non-Discretionary"
	DiscretionaryCategoryName    = "Discretionary"
)

// Default category colors.
const (
	NonDiscretionaryCategoryColor = "#007AFF"
	DiscretionaryCategoryColor    = "#FF9500"
)

// Category groups expenses. Names are unique within a budget, ignoring case.
type Category struct {
	Entry
	Name     string `gorm:"not null" json:"name"`
	ColorTag string `gorm:"column:color" json:"color_tag"`
}

// IsNonDiscretionary reports whether c is the seeded non-discretionary category.
func (c Category) IsNonDiscretionary() bool {
	return strings.EqualFold(c.Name, NonDiscretionaryCategoryName)
}

// IsDefault reports whether c is one of the two seeded categories.
func (c Category) IsDefault() bool {
	return c.IsNonDiscretionary() || strings.EqualFold(c.Name, DiscretionaryCategoryName)
}
