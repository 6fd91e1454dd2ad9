package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/requests"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func decodeBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return exceptions.ErrRequestTooLarge(err, tooLarge.Limit)
		}
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func slotsFromRequest(reqs []requests.SlotRequest) ([]schedule.Slot, error) {
	slots := make([]schedule.Slot, 0, len(reqs))
	for _, req := range reqs {
		start, err := schedule.ParseTimeOfDay(req.Start)
		if err != nil {
			return nil, exceptions.ErrInvalidTimeRange(err, req.Start, req.End)
		}
		end, err := schedule.ParseTimeOfDay(req.End)
		if err != nil {
			return nil, exceptions.ErrInvalidTimeRange(err, req.Start, req.End)
		}
		iv, err := schedule.NewInterval(start, end)
		if err != nil {
			return nil, exceptions.ErrInvalidTimeRange(err, req.Start, req.End)
		}
		slots = append(slots, schedule.Slot{Day: schedule.DayOfWeek(req.Day), Interval: iv})
	}
	return slots, nil
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
