package contracts

import (
	"context"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
)

// CourseStore persists the committed courses. The whole list is the unit
// of update: Save replaces what Load returns.
type CourseStore interface {
	Load(ctx context.Context) ([]models.Course, error)
	Save(ctx context.Context, courses []models.Course) error
}
