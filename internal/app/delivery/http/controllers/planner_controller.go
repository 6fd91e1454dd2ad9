package controllers

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/timetable"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/requests"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/utils"

	"go.uber.org/zap"
)

type PlannerController struct {
	Log            *zap.Logger
	PlannerUsecase contracts.PlannerUsecase
}

func NewPlannerController(logger *zap.Logger, plannerUsecase contracts.PlannerUsecase) *PlannerController {
	return &PlannerController{
		Log:            logger,
		PlannerUsecase: plannerUsecase,
	}
}

// Check filters candidates against the committed courses sent with the request.
func (ctrl *PlannerController) Check(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PlannerController.Check requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PlannerController.Check called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.CheckScheduleRequest
	if err := decodeBody(r, &request); err != nil {
		ctrl.Log.Error("PlannerController.Check error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeCheckScheduleRequest(&request)
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("PlannerController.Check validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PlannerUsecase.CheckInline(ctx, models.CoursesFromRequest(request.Committed), models.CoursesFromRequest(request.Candidates))
	if err != nil {
		ctrl.Log.Error("PlannerController.Check error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PlannerController.Check succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Fitting)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckScheduleSuccessMessage, result)
}

// Fits checks loose slots against the committed courses sent with the request.
func (ctrl *PlannerController) Fits(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PlannerController.Fits requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PlannerController.Fits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.FitsRequest
	if err := decodeBody(r, &request); err != nil {
		ctrl.Log.Error("PlannerController.Fits error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeFitsRequest(&request)
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("PlannerController.Fits validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	slots, err := slotsFromRequest(request.Slots)
	if err != nil {
		ctrl.Log.Error("PlannerController.Fits invalid slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PlannerUsecase.CheckSlots(ctx, models.CoursesFromRequest(request.Committed), slots)
	if err != nil {
		ctrl.Log.Error("PlannerController.Fits error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PlannerController.Fits succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("fits", result.Fits),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FitsSuccessMessage, result)
}

// Weekly returns the committed timetable from the configured store.
func (ctrl *PlannerController) Weekly(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PlannerController.Weekly requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PlannerController.Weekly called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PlannerUsecase.Timetable(ctx)
	if err != nil {
		ctrl.Log.Error("PlannerController.Weekly error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PlannerController.Weekly succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWeeklySuccessMessage, result)
}

// Image draws the posted {"selected_courses": [...]} selection as a PNG.
func (ctrl *PlannerController) Image(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PlannerController.Image requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	var selected models.SelectedCourses
	if err := decodeBody(r, &selected); err != nil {
		ctrl.Log.Error("PlannerController.Image error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	var buf bytes.Buffer
	if err := timetable.RenderImage(selected, &buf); err != nil {
		ctrl.Log.Error("PlannerController.Image error rendering timetable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PlannerController.Image succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(selected.SelectedCourses)),
	)
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEImagePNG)
	w.WriteHeader(constvars.StatusOK)
	w.Write(buf.Bytes())
}
