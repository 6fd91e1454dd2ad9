package contracts

import (
	"context"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
)

type CommitNotifier interface {
	CourseCommitted(ctx context.Context, course models.Course) error
}
