package controllers

import (
	"context"
	"errors"
	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/pkg/constvars"
	"meetingassist-service/internal/pkg/dto/requests"
	"meetingassist-service/internal/pkg/exceptions"
	"meetingassist-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type MeetingAssistController struct {
	Log                  *zap.Logger
	MeetingAssistUsecase contracts.MeetingAssistUsecase
}

func NewMeetingAssistController(logger *zap.Logger, meetingAssistUsecase contracts.MeetingAssistUsecase) *MeetingAssistController {
	return &MeetingAssistController{
		Log:                  logger,
		MeetingAssistUsecase: meetingAssistUsecase,
	}
}

func (ctrl *MeetingAssistController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("MeetingAssistController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	var request requests.CreateMeetingAssist
	if err := utils.BindAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.MeetingAssistUsecase.CreateMeetingAssist(ctx, &request)
	if err != nil {
		ctrl.Log.Error("Error in MeetingAssistUsecase.CreateMeetingAssist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(context.DeadlineExceeded))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMeetingAssistSuccessMessage, response)
}

func (ctrl *MeetingAssistController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	meetingID := chi.URLParam(r, "meetingID")
	if meetingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "meetingID"))
		return
	}

	ctrl.Log.Info("MeetingAssistController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMeetingIDKey, meetingID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	meeting, err := ctrl.MeetingAssistUsecase.FindMeetingAssistByID(ctx, meetingID)
	if err != nil {
		ctrl.Log.Error("Error in MeetingAssistUsecase.FindMeetingAssistByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMeetingAssistSuccessMessage, meeting)
}

func (ctrl *MeetingAssistController) FindByHost(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	hostUserID := r.URL.Query().Get("userId")
	if hostUserID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "userId"))
		return
	}

	ctrl.Log.Info("MeetingAssistController.FindByHost called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHostIDKey, hostUserID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	meetings, err := ctrl.MeetingAssistUsecase.FindMeetingAssistsByHost(ctx, hostUserID)
	if err != nil {
		ctrl.Log.Error("Error in MeetingAssistUsecase.FindMeetingAssistsByHost",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMeetingAssistSuccessMessage, meetings)
}

func (ctrl *MeetingAssistController) FindGenerated(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	meetingID := chi.URLParam(r, "meetingID")
	if meetingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "meetingID"))
		return
	}

	ctrl.Log.Info("MeetingAssistController.FindGenerated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMeetingIDKey, meetingID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	meetings, err := ctrl.MeetingAssistUsecase.FindGeneratedMeetings(ctx, meetingID)
	if err != nil {
		ctrl.Log.Error("Error in MeetingAssistUsecase.FindGeneratedMeetings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMeetingAssistSuccessMessage, meetings)
}

func (ctrl *MeetingAssistController) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	meetingID := chi.URLParam(r, "meetingID")
	if meetingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "meetingID"))
		return
	}

	ctrl.Log.Info("MeetingAssistController.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMeetingIDKey, meetingID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	meeting, err := ctrl.MeetingAssistUsecase.CancelMeetingAssist(ctx, meetingID)
	if err != nil {
		ctrl.Log.Error("Error in MeetingAssistUsecase.CancelMeetingAssist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelMeetingAssistSuccessMessage, meeting)
}
