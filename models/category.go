package models

// Category groups questions under a display label
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"not null;size:100" json:"type"`
}

// FormatCategories maps category ids to their display labels
func FormatCategories(categories []Category) map[uint]string {
	formatted := make(map[uint]string, len(categories))
	for _, category := range categories {
		formatted[category.ID] = category.Type
	}
	return formatted
}
