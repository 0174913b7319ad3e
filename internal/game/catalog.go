package game

import "github.com/aaronzipp/impostor/internal/models"

// Catalog is the read-only category/word dataset the Machine draws from
type Catalog interface {
	// Category looks up a category by id
	Category(id string) (models.Category, bool)
	// Categories lists every category in display order
	Categories() []models.Category
}
