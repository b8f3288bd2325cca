package contracts

import "context"

// RecurrenceQueueService publishes meeting ids whose recurrence expansion
// artifacts need downstream processing (notifications, calendar sync).
type RecurrenceQueueService interface {
	PublishMeetingExpanded(ctx context.Context, meetingID string, generatedIDs []string) error
	Close() error
}
