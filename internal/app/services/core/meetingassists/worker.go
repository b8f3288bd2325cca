package meetingassists

import (
	"context"
	"time"

	"meetingassist-service/internal/app/config"
	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/app/services/core/recurrence"
	"meetingassist-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockKey is the fixed key used to ensure a single expansion leader.
const leaderLockKey = "meetingassist:worker:leader"

// Worker periodically tops up recurrence expansions: templates created while
// the expansion lock was contended, or whose expansion was cut short by the
// occurrence cap, get their missing siblings on the next pass.
type Worker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	meetings contracts.MeetingAssistDataClient
	usecase  *MeetingAssistUsecase
	expander *recurrence.Expander
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	meetings contracts.MeetingAssistDataClient,
	usecase *MeetingAssistUsecase,
	expander *recurrence.Expander,
) *Worker {
	return &Worker{
		log:      log,
		cfg:      cfg,
		locker:   lockerSvc,
		meetings: meetings,
		usecase:  usecase,
		expander: expander,
	}
}

// Start schedules the periodic loop using the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.MeetingAssist.WorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("meetingassist.worker: failed to schedule with provided cron spec; falling back to @daily", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the cron and any in-flight run.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop() // wait for running jobs to finish
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, ttl)
	if err != nil {
		w.log.Warn("meetingassist.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("meetingassist.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, leaderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, leaderLockKey, token, ttl); err != nil {
					w.log.Warn("meetingassist.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	templates, err := w.meetings.FindActiveRecurringTemplates(ctx, time.Now().UTC())
	if err != nil {
		w.log.Warn("meetingassist.worker: template scan failed", zap.Error(err))
		return
	}

	for _, template := range templates {
		w.topUpTemplate(ctx, template)
	}
}

// topUpTemplate re-runs the expansion for one template and persists only the
// occurrences that are not in the store yet.
func (w *Worker) topUpTemplate(ctx context.Context, template models.MeetingAssist) {
	existing, err := w.meetings.FindMeetingAssistsByOriginalID(ctx, template.ID)
	if err != nil {
		w.log.Warn("meetingassist.worker: sibling lookup failed",
			zap.String(constvars.LoggingMeetingIDKey, template.ID),
			zap.Error(err),
		)
		return
	}

	existingStarts := make(map[string]struct{}, len(existing))
	for _, sibling := range existing {
		existingStarts[sibling.WindowStartDate.UTC().Format(time.RFC3339)] = struct{}{}
	}

	expansion, err := w.expander.Expand(template)
	if err != nil {
		w.log.Warn("meetingassist.worker: expansion failed",
			zap.String(constvars.LoggingMeetingIDKey, template.ID),
			zap.Error(err),
		)
		return
	}
	if !expansion.Expanded {
		return
	}

	var missing []models.MeetingAssist
	for _, generated := range expansion.Meetings {
		key := generated.WindowStartDate.UTC().Format(time.RFC3339)
		if _, ok := existingStarts[key]; ok {
			continue
		}
		missing = append(missing, generated)
	}
	if len(missing) == 0 {
		return
	}

	attendees, err := w.usecase.attendees.FindAttendeesByMeetingID(ctx, template.ID)
	if err != nil {
		w.log.Warn("meetingassist.worker: attendee lookup failed",
			zap.String(constvars.LoggingMeetingIDKey, template.ID),
			zap.Error(err),
		)
		return
	}
	preferred, err := w.usecase.preferred.FindPreferredTimesByMeetingID(ctx, template.ID)
	if err != nil {
		w.log.Warn("meetingassist.worker: preferred time lookup failed",
			zap.String(constvars.LoggingMeetingIDKey, template.ID),
			zap.Error(err),
		)
		return
	}

	persisted, err := w.meetings.CreateMeetingAssists(ctx, missing)
	if err != nil {
		w.log.Warn("meetingassist.worker: persisting missing siblings failed",
			zap.String(constvars.LoggingMeetingIDKey, template.ID),
			zap.Error(err),
		)
		return
	}

	clonedAttendees, clonedPreferred := w.usecase.projector.ProjectAll(persisted, attendees, preferred)
	if _, err := w.usecase.attendees.CreateAttendees(ctx, clonedAttendees); err != nil {
		w.log.Warn("meetingassist.worker: persisting projected attendees failed",
			zap.String(constvars.LoggingMeetingIDKey, template.ID),
			zap.Error(err),
		)
		return
	}
	if _, err := w.usecase.preferred.CreatePreferredTimes(ctx, clonedPreferred); err != nil {
		w.log.Warn("meetingassist.worker: persisting projected preferred times failed",
			zap.String(constvars.LoggingMeetingIDKey, template.ID),
			zap.Error(err),
		)
		return
	}

	generatedIDs := make([]string, 0, len(persisted))
	for _, generated := range persisted {
		generatedIDs = append(generatedIDs, generated.ID)
	}
	if err := w.usecase.queue.PublishMeetingExpanded(ctx, template.ID, generatedIDs); err != nil {
		w.log.Warn("meetingassist.worker: publishing expansion message failed",
			zap.String(constvars.LoggingMeetingIDKey, template.ID),
			zap.Error(err),
		)
	}

	w.log.Info("meetingassist.worker: topped up recurrence expansion",
		zap.String(constvars.LoggingMeetingIDKey, template.ID),
		zap.Int(constvars.LoggingGeneratedCountKey, len(persisted)),
	)
}
