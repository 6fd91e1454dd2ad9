package contracts

import (
	"context"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/responses"
)

type PlannerUsecase interface {
	BuildIndex(ctx context.Context) (*schedule.WeeklyIndex, []models.ParseProblem, error)
	FindFitting(ctx context.Context, candidates []models.Course) (*models.FitReport, error)
	AddCourse(ctx context.Context, section string, pool []models.Course, force bool) (*models.Course, error)
	Timetable(ctx context.Context) (responses.Weekly, error)
	CheckInline(ctx context.Context, committed, candidates []models.Course) (*responses.ScheduleCheck, error)
	CheckSlots(ctx context.Context, committed []models.Course, slots []schedule.Slot) (*responses.SlotCheck, error)
}
