package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/requests"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/utils"

	"go.uber.org/zap"
)

// ClassFileController serves the browser planner page. Both endpoints
// answer with bare JSON arrays.
type ClassFileController struct {
	Log              *zap.Logger
	ClassFileUsecase contracts.ClassFileUsecase
}

func NewClassFileController(logger *zap.Logger, classFileUsecase contracts.ClassFileUsecase) *ClassFileController {
	return &ClassFileController{
		Log:              logger,
		ClassFileUsecase: classFileUsecase,
	}
}

func (ctrl *ClassFileController) ListJSONFiles(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ClassFileController.ListJSONFiles requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ClassFileController.ListJSONFiles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	files, err := ctrl.ClassFileUsecase.ListJSONFiles(ctx)
	if err != nil {
		ctrl.Log.Error("ClassFileController.ListJSONFiles error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ClassFileController.ListJSONFiles succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(files)),
	)
	utils.BuildRawResponse(w, constvars.StatusOK, files)
}

func (ctrl *ClassFileController) LoadJSON(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ClassFileController.LoadJSON requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ClassFileController.LoadJSON called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.LoadClassFileRequest
	if err := decodeBody(r, &request); err != nil {
		ctrl.Log.Error("ClassFileController.LoadJSON error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeLoadClassFileRequest(&request)
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ClassFileController.LoadJSON validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	classes, err := ctrl.ClassFileUsecase.LoadClassFile(ctx, request.Filename)
	if err != nil {
		ctrl.Log.Error("ClassFileController.LoadJSON error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKey, request.Filename),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ClassFileController.LoadJSON succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileKey, request.Filename),
		zap.Int(constvars.LoggingCountKey, len(classes)),
	)
	utils.BuildRawResponse(w, constvars.StatusOK, classes)
}
