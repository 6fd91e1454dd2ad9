package planner

import (
	"context"
	"time"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/responses"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type plannerUsecase struct {
	CommittedStore contracts.CourseStore
	Notifier       contracts.CommitNotifier
	Locker         contracts.LockerService
	Log            *zap.Logger
}

func NewPlannerUsecase(
	committedStore contracts.CourseStore,
	notifier contracts.CommitNotifier,
	locker contracts.LockerService,
	logger *zap.Logger,
) contracts.PlannerUsecase {
	return &plannerUsecase{
		CommittedStore: committedStore,
		Notifier:       notifier,
		Locker:         locker,
		Log:            logger,
	}
}

func (uc *plannerUsecase) BuildIndex(ctx context.Context) (*schedule.WeeklyIndex, []models.ParseProblem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	committed, err := uc.CommittedStore.Load(ctx)
	if err != nil {
		uc.Log.Error("plannerUsecase.BuildIndex error loading committed courses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	idx, problems := indexCourses(committed)
	uc.logProblems(requestID, "plannerUsecase.BuildIndex", problems)

	uc.Log.Debug("plannerUsecase.BuildIndex succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, idx.Len()),
	)
	return idx, problems, nil
}

func (uc *plannerUsecase) FindFitting(ctx context.Context, candidates []models.Course) (*models.FitReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	idx, _, err := uc.BuildIndex(ctx)
	if err != nil {
		return nil, err
	}

	fitting, problems := filterCourses(idx, candidates)
	uc.logProblems(requestID, "plannerUsecase.FindFitting", problems)
	return &models.FitReport{Index: idx, Fitting: fitting, Problems: problems}, nil
}

func (uc *plannerUsecase) AddCourse(ctx context.Context, section string, pool []models.Course, force bool) (*models.Course, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	course, ok := findSection(pool, section)
	if !ok {
		uc.Log.Info("plannerUsecase.AddCourse section not found in pool",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSectionKey, section),
		)
		return nil, exceptions.ErrCourseNotFound(nil, section)
	}

	acquired, lockValue, err := uc.Locker.TryLock(ctx, constvars.CommitLockKey, constvars.CommitLockTTLSeconds*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrCommitInProgress(nil, constvars.CommitLockKey)
	}
	defer func() {
		if err := uc.Locker.Unlock(ctx, constvars.CommitLockKey, lockValue); err != nil {
			uc.Log.Warn("plannerUsecase.AddCourse error releasing commit lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	committed, err := uc.CommittedStore.Load(ctx)
	if err != nil {
		return nil, err
	}

	if !force {
		idx, _ := indexCourses(committed)
		slots, _ := schedule.ParseOptionalSchedule(course.Schedule)
		if conflicts := conflictLabels(idx, slots); len(conflicts) > 0 {
			uc.Log.Info("plannerUsecase.AddCourse course conflicts with committed schedule",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSectionKey, section),
				zap.Strings("conflicts", conflicts),
			)
			return nil, exceptions.ErrScheduleConflict(nil, section, conflicts)
		}
	}

	committed = append(committed, course)
	if err := uc.CommittedStore.Save(ctx, committed); err != nil {
		uc.Log.Error("plannerUsecase.AddCourse error saving committed courses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// The course is already stored, so a notification failure is only logged.
	if err := uc.Notifier.CourseCommitted(ctx, course); err != nil {
		uc.Log.Warn("plannerUsecase.AddCourse commit notification failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSectionKey, section),
			zap.Error(err),
		)
	}

	uc.Log.Info("plannerUsecase.AddCourse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSectionKey, section),
		zap.Int(constvars.LoggingCountKey, len(committed)),
	)
	return &course, nil
}

func (uc *plannerUsecase) Timetable(ctx context.Context) (responses.Weekly, error) {
	idx, _, err := uc.BuildIndex(ctx)
	if err != nil {
		return responses.Weekly{}, err
	}
	return WeeklyResponse(idx), nil
}

// CheckInline filters candidates against a committed list the caller sends
// along, without touching the configured store.
func (uc *plannerUsecase) CheckInline(ctx context.Context, committed, candidates []models.Course) (*responses.ScheduleCheck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	idx, problems := indexCourses(committed)
	fitting, candidateProblems := filterCourses(idx, candidates)
	problems = append(problems, candidateProblems...)

	result := &responses.ScheduleCheck{
		Fitting:  make([]responses.Course, 0, len(fitting)),
		Weekly:   WeeklyResponse(idx),
		Problems: problemResponses(problems),
	}
	for _, fit := range fitting {
		result.Fitting = append(result.Fitting, fit.Course.ConvertIntoResponse(fit.Slots))
	}

	uc.Log.Info("plannerUsecase.CheckInline succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("candidate_count", len(candidates)),
		zap.Int("fitting_count", len(result.Fitting)),
		zap.Int("problem_count", len(result.Problems)),
	)
	return result, nil
}

func (uc *plannerUsecase) CheckSlots(ctx context.Context, committed []models.Course, slots []schedule.Slot) (*responses.SlotCheck, error) {
	idx, _ := indexCourses(committed)

	result := &responses.SlotCheck{Fits: idx.FitsAll(slots), Slots: make([]responses.SlotVerdict, 0, len(slots))}
	for _, slot := range slots {
		verdict := responses.SlotVerdict{
			Day:   string(slot.Day),
			Start: slot.Interval.Start.String(),
			End:   slot.Interval.End.String(),
			Fits:  idx.Fits(slot.Day, slot.Interval),
		}
		for _, entry := range idx.Conflicts(slot.Day, slot.Interval) {
			verdict.Conflicts = append(verdict.Conflicts, entry.Label())
		}
		result.Slots = append(result.Slots, verdict)
	}
	return result, nil
}

func (uc *plannerUsecase) logProblems(requestID, operation string, problems []models.ParseProblem) {
	for _, problem := range problems {
		uc.Log.Warn(operation+" skipped unparseable schedule fragment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSectionKey, problem.Section),
			zap.Error(problem.Err),
		)
	}
}
