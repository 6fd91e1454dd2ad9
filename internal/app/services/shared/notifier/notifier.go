package notifier

import (
	"context"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
)

type noopNotifier struct{}

func NewNoopNotifier() contracts.CommitNotifier {
	return noopNotifier{}
}

func (noopNotifier) CourseCommitted(ctx context.Context, course models.Course) error {
	return nil
}
