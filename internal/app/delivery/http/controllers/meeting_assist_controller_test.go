package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/dto/requests"
	"meetingassist-service/internal/pkg/dto/responses"
	"meetingassist-service/internal/pkg/exceptions"
)

type stubMeetingAssistUsecase struct {
	err error
}

func (s *stubMeetingAssistUsecase) CreateMeetingAssist(ctx context.Context, request *requests.CreateMeetingAssist) (*responses.CreateMeetingAssistResponse, error) {
	return nil, s.err
}

func (s *stubMeetingAssistUsecase) FindMeetingAssistByID(ctx context.Context, meetingID string) (*models.MeetingAssist, error) {
	return nil, s.err
}

func (s *stubMeetingAssistUsecase) FindMeetingAssistsByHost(ctx context.Context, hostUserID string) ([]models.MeetingAssist, error) {
	return nil, s.err
}

func (s *stubMeetingAssistUsecase) FindGeneratedMeetings(ctx context.Context, originalMeetingID string) ([]models.MeetingAssist, error) {
	return nil, s.err
}

func (s *stubMeetingAssistUsecase) CancelMeetingAssist(ctx context.Context, meetingID string) (*models.MeetingAssist, error) {
	return nil, s.err
}

const createBody = `{
	"userId": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	"windowStartDate": "2024-03-04T09:00:00Z",
	"windowEndDate": "2024-03-04T10:00:00Z",
	"duration": 60,
	"timezone": "UTC"
}`

func TestCreateMapsDeadlineToGatewayTimeout(t *testing.T) {
	usecaseErr := exceptions.ErrCannotParseTime(context.DeadlineExceeded)
	ctrl := NewMeetingAssistController(zap.NewNop(), &stubMeetingAssistUsecase{err: usecaseErr})

	req := httptest.NewRequest(http.MethodPost, "/meeting-assists", strings.NewReader(createBody))
	rec := httptest.NewRecorder()

	ctrl.Create(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code,
		"a deadline wrapped inside a usecase error still maps to 504")
}

func TestCreateKeepsUsecaseErrorStatus(t *testing.T) {
	usecaseErr := exceptions.ErrMeetingAssistNotFound(nil)
	ctrl := NewMeetingAssistController(zap.NewNop(), &stubMeetingAssistUsecase{err: usecaseErr})

	req := httptest.NewRequest(http.MethodPost, "/meeting-assists", strings.NewReader(createBody))
	rec := httptest.NewRecorder()

	ctrl.Create(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
