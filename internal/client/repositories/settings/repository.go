package settings

import (
	"context"

	"github.com/sam-ezra/todo/internal/client/models"
)

// Repository describes persistence for the two preference keys in the local
// database.
type Repository interface {
	// Get returns the stored preferences; absent keys read as nil.
	Get(ctx context.Context) (*models.Settings, error)

	// Update writes only the fields present in the partial input. An empty
	// partial never changes stored values.
	Update(ctx context.Context, settings *models.Settings) error
}
