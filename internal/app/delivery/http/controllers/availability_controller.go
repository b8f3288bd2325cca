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
	"strconv"

	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) ListAvailableSlots(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AvailabilityController.ListAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery))

	request, err := buildListAvailableSlotsRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.AvailabilityUsecase.ListAvailableSlots(ctx, request)
	if err != nil {
		ctrl.Log.Error("Error in AvailabilityUsecase.ListAvailableSlots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(context.DeadlineExceeded))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, response)
}

func buildListAvailableSlotsRequest(r *http.Request) (*requests.ListAvailableSlots, error) {
	query := r.URL.Query()

	slotDuration := 0
	if raw := query.Get("slotDuration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		slotDuration = parsed
	}

	request := &requests.ListAvailableSlots{
		HostID:          query.Get("hostId"),
		UserID:          query.Get("userId"),
		WindowStartDate: query.Get("windowStart"),
		WindowEndDate:   query.Get("windowEnd"),
		SlotDuration:    slotDuration,
		HostTimezone:    query.Get("hostTimezone"),
		UserTimezone:    query.Get("userTimezone"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	return request, nil
}
