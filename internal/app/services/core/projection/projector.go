package projection

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/constvars"
)

// Projector clones attendees and their preferred-time ranges onto meetings
// generated by recurrence expansion, rebinding every foreign key to the new
// meeting and attendee.
type Projector struct {
	Logger *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewProjector(logger *zap.Logger) *Projector {
	return &Projector{
		Logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Project clones the original attendees onto one generated meeting. Each
// clone gets a fresh id and timestamps, and its timezone is overridden to
// the new meeting's timezone rather than copied from the source attendee.
// Preferred-time entries follow their attendee; a dayOfWeek survives only
// when it is a positive weekday.
func (p *Projector) Project(
	newMeeting models.MeetingAssist,
	attendees []models.Attendee,
	preferred []models.PreferredTimeRange,
) ([]models.Attendee, []models.PreferredTimeRange) {
	now := p.now()

	clonedAttendees := make([]models.Attendee, 0, len(attendees))
	var clonedPreferred []models.PreferredTimeRange

	for _, attendee := range attendees {
		clone := attendee
		clone.ID = p.newID()
		clone.MeetingID = newMeeting.ID
		clone.Timezone = newMeeting.Timezone
		clone.CreatedDate = now
		clone.UpdatedAt = now
		clonedAttendees = append(clonedAttendees, clone)

		for _, rng := range preferred {
			if rng.AttendeeID != attendee.ID {
				continue
			}
			rangeClone := rng
			rangeClone.ID = p.newID()
			rangeClone.MeetingID = newMeeting.ID
			rangeClone.AttendeeID = clone.ID
			rangeClone.HostID = clone.HostID
			if !rng.HasDayOfWeek() {
				rangeClone.DayOfWeek = nil
			}
			rangeClone.CreatedDate = now
			rangeClone.UpdatedAt = now
			clonedPreferred = append(clonedPreferred, rangeClone)
		}
	}

	return clonedAttendees, clonedPreferred
}

// ProjectAll applies Project to every generated meeting and concatenates
// the results. N original attendees across M meetings always produce
// exactly N times M attendee clones.
func (p *Projector) ProjectAll(
	newMeetings []models.MeetingAssist,
	attendees []models.Attendee,
	preferred []models.PreferredTimeRange,
) ([]models.Attendee, []models.PreferredTimeRange) {
	var allAttendees []models.Attendee
	var allPreferred []models.PreferredTimeRange

	for _, meeting := range newMeetings {
		clonedAttendees, clonedPreferred := p.Project(meeting, attendees, preferred)
		allAttendees = append(allAttendees, clonedAttendees...)
		allPreferred = append(allPreferred, clonedPreferred...)
	}

	p.Logger.Debug("projected attendees onto generated meetings",
		zap.Int(constvars.LoggingGeneratedCountKey, len(allAttendees)),
	)
	return allAttendees, allPreferred
}
