package recurrence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/constvars"
)

const (
	// DefaultMaxOccurrences caps how many recurrences a single template may
	// produce against a distant until date. One year of daily meetings.
	DefaultMaxOccurrences = 366

	warnStreamLengthMismatch = "recurrence start and end streams differ in length, extra occurrences were dropped"
	warnOccurrenceCapReached = "recurrence expansion reached the occurrence cap, remaining occurrences were dropped"
)

// Expansion is the result of expanding one meeting template. Expanded is
// false when the template carries no complete recurrence rule, which is an
// ordinary outcome rather than an error.
type Expansion struct {
	Expanded bool
	Meetings []models.MeetingAssist
	Warning  string
}

// Expander turns a meeting template with a recurrence rule into sibling
// templates for every future occurrence of the rule.
type Expander struct {
	Logger         *zap.Logger
	MaxOccurrences int

	now   func() time.Time
	newID func() string
}

func NewExpander(logger *zap.Logger, maxOccurrences int) *Expander {
	if maxOccurrences <= 0 {
		maxOccurrences = DefaultMaxOccurrences
	}
	return &Expander{
		Logger:         logger,
		MaxOccurrences: maxOccurrences,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

// Expand evaluates the template's {frequency, interval, until} rule twice,
// once anchored at the window start and once at the window end, pairs the
// streams positionally and clones the template onto every pair after the
// first. Pair zero reproduces the original window and is always discarded.
func (e *Expander) Expand(original models.MeetingAssist) (Expansion, error) {
	if !original.HasRecurrenceRule() {
		e.Logger.Info("meeting has no complete recurrence rule, skipping expansion",
			zap.String(constvars.LoggingMeetingIDKey, original.ID),
		)
		return Expansion{}, nil
	}

	freq, err := rruleFrequency(*original.Frequency)
	if err != nil {
		return Expansion{}, err
	}

	starts, startsCapped, err := e.occurrences(freq, *original.Interval, original.WindowStartDate, *original.Until)
	if err != nil {
		return Expansion{}, err
	}
	ends, endsCapped, err := e.occurrences(freq, *original.Interval, original.WindowEndDate, *original.Until)
	if err != nil {
		return Expansion{}, err
	}

	var warning string
	if len(starts) != len(ends) {
		warning = warnStreamLengthMismatch
		if len(ends) < len(starts) {
			starts = starts[:len(ends)]
		} else {
			ends = ends[:len(starts)]
		}
	} else if startsCapped || endsCapped {
		warning = warnOccurrenceCapReached
	}

	expansion := Expansion{Expanded: true, Warning: warning}
	now := e.now()
	for i := 1; i < len(starts); i++ {
		clone := original
		clone.ID = e.newID()
		clone.WindowStartDate = starts[i]
		clone.WindowEndDate = ends[i]
		clone.OriginalMeetingID = original.ID
		clone.Priority = 1
		clone.CreatedDate = now
		clone.UpdatedAt = now
		expansion.Meetings = append(expansion.Meetings, clone)
	}

	e.Logger.Info("expanded recurring meeting",
		zap.String(constvars.LoggingMeetingIDKey, original.ID),
		zap.Int(constvars.LoggingGeneratedCountKey, len(expansion.Meetings)),
		zap.String(constvars.LoggingWarningKey, warning),
	)
	return expansion, nil
}

// occurrences evaluates the rule in UTC from the given anchor. The until
// date is inclusive of its whole calendar day so that an occurrence whose
// time-of-day lands after midnight on the until date still counts. The
// second return reports whether the occurrence cap cut the stream short.
func (e *Expander) occurrences(freq rrule.Frequency, interval int, anchor, until time.Time) ([]time.Time, bool, error) {
	untilEndOfDay := time.Date(until.Year(), until.Month(), until.Day(), 23, 59, 59, 0, time.UTC)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  anchor.UTC(),
		Until:    untilEndOfDay,
	})
	if err != nil {
		return nil, false, err
	}

	var out []time.Time
	next := rule.Iterator()
	for {
		occurrence, ok := next()
		if !ok {
			return out, false, nil
		}
		if len(out) == e.MaxOccurrences {
			return out, true, nil
		}
		out = append(out, occurrence)
	}
}

func rruleFrequency(frequency models.RecurrenceFrequency) (rrule.Frequency, error) {
	switch frequency {
	case models.RecurrenceFrequencyDaily:
		return rrule.DAILY, nil
	case models.RecurrenceFrequencyWeekly:
		return rrule.WEEKLY, nil
	case models.RecurrenceFrequencyMonthly:
		return rrule.MONTHLY, nil
	case models.RecurrenceFrequencyYearly:
		return rrule.YEARLY, nil
	default:
		return 0, fmt.Errorf("unsupported recurrence frequency %q", frequency)
	}
}
