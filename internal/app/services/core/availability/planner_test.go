package availability

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meetingassist-service/internal/app/models"
)

func testPlanner() *Planner {
	p := NewPlanner(NewTimezones(), zap.NewNop())
	n := 0
	p.newID = func() string {
		n++
		return fmt.Sprintf("slot-%d", n)
	}
	return p
}

func weekdayPrefs(startHour, endHour int) models.HostPreferences {
	prefs := models.HostPreferences{ID: "pref-1", UserID: "host-1"}
	for day := 1; day <= 7; day++ {
		prefs.StartTimes = append(prefs.StartTimes, models.WorkTime{Day: day, Hour: startHour})
		prefs.EndTimes = append(prefs.EndTimes, models.WorkTime{Day: day, Hour: endHour})
	}
	return prefs
}

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestPlanWindowSingleDay(t *testing.T) {
	planner := testPlanner()
	prefs := weekdayPrefs(9, 17)

	t.Run("Half Hour Slots Fill The Afternoon", func(t *testing.T) {
		result, err := planner.PlanWindow(PlanWindowInput{
			WindowStart:         utc(2024, time.March, 4, 14, 0),
			WindowEnd:           utc(2024, time.March, 4, 17, 0),
			SlotDurationMinutes: 30,
			HostPreferences:     prefs,
			HostTimezone:        "UTC",
			UserTimezone:        "UTC",
		})
		require.NoError(t, err)

		require.Len(t, result.Slots, 6, "three hours at 30 minutes should yield six slots")
		assert.Equal(t, utc(2024, time.March, 4, 14, 0), result.Slots[0].StartDate)
		assert.Equal(t, utc(2024, time.March, 4, 16, 30), result.Slots[5].StartDate)
		assert.Equal(t, utc(2024, time.March, 4, 17, 0), result.Slots[5].EndDate)
	})

	t.Run("Every Slot Has Exact Duration", func(t *testing.T) {
		result, err := planner.PlanWindow(PlanWindowInput{
			WindowStart:         utc(2024, time.March, 4, 14, 0),
			WindowEnd:           utc(2024, time.March, 4, 16, 50),
			SlotDurationMinutes: 45,
			HostPreferences:     prefs,
			HostTimezone:        "UTC",
			UserTimezone:        "UTC",
		})
		require.NoError(t, err)

		require.NotEmpty(t, result.Slots)
		for _, slot := range result.Slots {
			assert.Equal(t, 45*time.Minute, slot.EndDate.Sub(slot.StartDate))
		}
		last := result.Slots[len(result.Slots)-1]
		assert.False(t, last.EndDate.After(utc(2024, time.March, 4, 16, 45)), "truncated trailing slot must be dropped")
	})

	t.Run("Window Start Beyond Working Hours Yields Nothing", func(t *testing.T) {
		result, err := planner.PlanWindow(PlanWindowInput{
			WindowStart:         utc(2024, time.March, 4, 18, 0),
			WindowEnd:           utc(2024, time.March, 4, 21, 0),
			SlotDurationMinutes: 30,
			HostPreferences:     prefs,
			HostTimezone:        "UTC",
			UserTimezone:        "UTC",
		})
		require.NoError(t, err)
		assert.Empty(t, result.Slots)
		assert.Empty(t, result.SlotsByDate)
	})

	t.Run("Missing Weekday Preference Falls Back To Default Hours", func(t *testing.T) {
		result, err := planner.PlanWindow(PlanWindowInput{
			WindowStart:         utc(2024, time.March, 4, 6, 0),
			WindowEnd:           utc(2024, time.March, 4, 23, 0),
			SlotDurationMinutes: 60,
			HostPreferences:     models.HostPreferences{},
			HostTimezone:        "UTC",
			UserTimezone:        "UTC",
		})
		require.NoError(t, err)

		require.Len(t, result.Slots, 12, "default day runs 08:00 to 20:00")
		assert.Equal(t, utc(2024, time.March, 4, 8, 0), result.Slots[0].StartDate)
		assert.Equal(t, utc(2024, time.March, 4, 20, 0), result.Slots[11].EndDate)
	})
}

func TestPlanWindowBusyFiltering(t *testing.T) {
	planner := testPlanner()
	prefs := weekdayPrefs(9, 17)

	input := PlanWindowInput{
		WindowStart:         utc(2024, time.March, 4, 14, 0),
		WindowEnd:           utc(2024, time.March, 4, 17, 0),
		SlotDurationMinutes: 30,
		HostPreferences:     prefs,
		HostTimezone:        "UTC",
		UserTimezone:        "UTC",
	}

	t.Run("Exactly Matching Busy Interval Removes The Slot", func(t *testing.T) {
		in := input
		in.BusyIntervals = []models.BusyInterval{
			{StartDate: utc(2024, time.March, 4, 15, 0), EndDate: utc(2024, time.March, 4, 15, 30)},
		}
		result, err := planner.PlanWindow(in)
		require.NoError(t, err)

		require.Len(t, result.Slots, 5)
		for _, slot := range result.Slots {
			assert.False(t, slot.StartDate.Equal(utc(2024, time.March, 4, 15, 0)))
		}
	})

	t.Run("Busy Interval Touching A Boundary Keeps Adjacent Slots", func(t *testing.T) {
		in := input
		in.BusyIntervals = []models.BusyInterval{
			{StartDate: utc(2024, time.March, 4, 15, 0), EndDate: utc(2024, time.March, 4, 16, 0)},
		}
		result, err := planner.PlanWindow(in)
		require.NoError(t, err)

		starts := make([]time.Time, 0, len(result.Slots))
		for _, slot := range result.Slots {
			starts = append(starts, slot.StartDate)
		}
		assert.Contains(t, starts, utc(2024, time.March, 4, 14, 30), "slot ending at busy start survives")
		assert.Contains(t, starts, utc(2024, time.March, 4, 16, 0), "slot starting at busy end survives")
		assert.NotContains(t, starts, utc(2024, time.March, 4, 15, 0))
		assert.NotContains(t, starts, utc(2024, time.March, 4, 15, 30))
	})

	t.Run("Duplicate Busy Intervals Are Collapsed", func(t *testing.T) {
		in := input
		in.BusyIntervals = []models.BusyInterval{
			{StartDate: utc(2024, time.March, 4, 15, 0), EndDate: utc(2024, time.March, 4, 15, 30)},
			{StartDate: utc(2024, time.March, 4, 15, 0), EndDate: utc(2024, time.March, 4, 15, 30)},
		}
		result, err := planner.PlanWindow(in)
		require.NoError(t, err)
		assert.Len(t, result.Slots, 5)
	})
}

func TestPlanWindowMultiDay(t *testing.T) {
	planner := testPlanner()
	prefs := weekdayPrefs(9, 17)

	result, err := planner.PlanWindow(PlanWindowInput{
		WindowStart:         utc(2024, time.March, 4, 14, 0),
		WindowEnd:           utc(2024, time.March, 6, 12, 0),
		SlotDurationMinutes: 60,
		HostPreferences:     prefs,
		HostTimezone:        "UTC",
		UserTimezone:        "UTC",
	})
	require.NoError(t, err)

	require.Len(t, result.SlotsByDate, 3)

	firstDay := result.SlotsByDate["2024-03-04"]
	require.NotEmpty(t, firstDay)
	assert.Equal(t, utc(2024, time.March, 4, 14, 0), firstDay[0].StartDate, "first day starts at the window start")
	assert.Equal(t, utc(2024, time.March, 4, 17, 0), firstDay[len(firstDay)-1].EndDate, "first day runs to the end of working hours")

	interior := result.SlotsByDate["2024-03-05"]
	require.Len(t, interior, 8, "interior days cover the full working day")
	assert.Equal(t, utc(2024, time.March, 5, 9, 0), interior[0].StartDate)

	lastDay := result.SlotsByDate["2024-03-06"]
	require.NotEmpty(t, lastDay)
	assert.Equal(t, utc(2024, time.March, 6, 9, 0), lastDay[0].StartDate)
	assert.Equal(t, utc(2024, time.March, 6, 12, 0), lastDay[len(lastDay)-1].EndDate, "last day is clipped at the window end")
}

func TestPlanWindowAcrossTimezones(t *testing.T) {
	planner := testPlanner()
	prefs := weekdayPrefs(9, 17)

	result, err := planner.PlanWindow(PlanWindowInput{
		WindowStart:         utc(2024, time.June, 3, 13, 0),
		WindowEnd:           utc(2024, time.June, 3, 21, 0),
		SlotDurationMinutes: 60,
		HostPreferences:     prefs,
		HostTimezone:        "America/New_York",
		UserTimezone:        "Europe/London",
	})
	require.NoError(t, err)

	// 09:00 to 17:00 New York is 14:00 to 22:00 London in June; the window
	// start at 13:00 UTC is inside working hours, the window end clips it.
	require.NotEmpty(t, result.Slots)
	assert.Equal(t, utc(2024, time.June, 3, 13, 0), result.Slots[0].StartDate.UTC())
	last := result.Slots[len(result.Slots)-1]
	assert.Equal(t, utc(2024, time.June, 3, 21, 0), last.EndDate.UTC())
}

func TestPlanWindowBusyAcrossUserMidnight(t *testing.T) {
	planner := testPlanner()
	prefs := weekdayPrefs(9, 20)

	// A Tokyo working day of 09:00 to 20:00 is 19:00 to 06:00 in New York,
	// crossing the user's midnight. The busy interval sits on the far side
	// of it, at 01:00 to 02:00 EST (06:00 to 07:00 UTC) on March 4th.
	result, err := planner.PlanWindow(PlanWindowInput{
		WindowStart:         utc(2024, time.March, 4, 0, 0),
		WindowEnd:           utc(2024, time.March, 4, 11, 0),
		SlotDurationMinutes: 60,
		HostPreferences:     prefs,
		HostTimezone:        "Asia/Tokyo",
		UserTimezone:        "America/New_York",
		BusyIntervals: []models.BusyInterval{
			{StartDate: utc(2024, time.March, 4, 6, 0), EndDate: utc(2024, time.March, 4, 7, 0)},
		},
	})
	require.NoError(t, err)

	assert.Len(t, result.Slots, 10)
	for _, slot := range result.Slots {
		assert.False(t, slot.StartDate.UTC().Equal(utc(2024, time.March, 4, 6, 0)),
			"the slot matching the busy interval must be filtered out")
	}
}

func TestPlanWindowDeterministic(t *testing.T) {
	prefs := weekdayPrefs(9, 17)
	input := PlanWindowInput{
		WindowStart:         utc(2024, time.March, 4, 14, 10),
		WindowEnd:           utc(2024, time.March, 5, 12, 0),
		SlotDurationMinutes: 30,
		HostPreferences:     prefs,
		HostTimezone:        "UTC",
		UserTimezone:        "UTC",
		BusyIntervals: []models.BusyInterval{
			{StartDate: utc(2024, time.March, 4, 15, 0), EndDate: utc(2024, time.March, 4, 15, 30)},
		},
	}

	first, err := testPlanner().PlanWindow(input)
	require.NoError(t, err)
	second, err := testPlanner().PlanWindow(input)
	require.NoError(t, err)

	require.Equal(t, len(first.Slots), len(second.Slots))
	for i := range first.Slots {
		assert.True(t, first.Slots[i].StartDate.Equal(second.Slots[i].StartDate))
		assert.True(t, first.Slots[i].EndDate.Equal(second.Slots[i].EndDate))
	}
}

func TestPlanWindowInvalidInput(t *testing.T) {
	planner := testPlanner()

	t.Run("Zero Duration", func(t *testing.T) {
		_, err := planner.PlanWindow(PlanWindowInput{
			WindowStart:         utc(2024, time.March, 4, 14, 0),
			WindowEnd:           utc(2024, time.March, 4, 17, 0),
			SlotDurationMinutes: 0,
			HostTimezone:        "UTC",
			UserTimezone:        "UTC",
		})
		assert.Error(t, err)
	})

	t.Run("Inverted Window", func(t *testing.T) {
		_, err := planner.PlanWindow(PlanWindowInput{
			WindowStart:         utc(2024, time.March, 4, 17, 0),
			WindowEnd:           utc(2024, time.March, 4, 14, 0),
			SlotDurationMinutes: 30,
			HostTimezone:        "UTC",
			UserTimezone:        "UTC",
		})
		assert.Error(t, err)
	})

	t.Run("Unknown Timezone", func(t *testing.T) {
		_, err := planner.PlanWindow(PlanWindowInput{
			WindowStart:         utc(2024, time.March, 4, 14, 0),
			WindowEnd:           utc(2024, time.March, 4, 17, 0),
			SlotDurationMinutes: 30,
			HostTimezone:        "Mars/Olympus",
			UserTimezone:        "UTC",
		})
		assert.Error(t, err)
	})
}

func TestSnapStartToBucket(t *testing.T) {
	base := utc(2024, time.March, 4, 14, 0)

	t.Run("Aligned Minute Stays Put", func(t *testing.T) {
		assert.Equal(t, base, snapStartToBucket(base, 30))
	})

	t.Run("Unaligned Minute Rounds Forward", func(t *testing.T) {
		assert.Equal(t, utc(2024, time.March, 4, 14, 30), snapStartToBucket(utc(2024, time.March, 4, 14, 10), 30))
	})

	t.Run("Past The Last Bucket Rolls To The Next Hour", func(t *testing.T) {
		assert.Equal(t, utc(2024, time.March, 4, 15, 0), snapStartToBucket(utc(2024, time.March, 4, 14, 50), 45))
	})

	t.Run("Within The Single Bucket Rounds To It", func(t *testing.T) {
		assert.Equal(t, utc(2024, time.March, 4, 14, 45), snapStartToBucket(utc(2024, time.March, 4, 14, 20), 45))
	})
}

func TestSnapEndToBucket(t *testing.T) {
	t.Run("Unaligned Minute Rounds Backward", func(t *testing.T) {
		assert.Equal(t, utc(2024, time.March, 4, 16, 30), snapEndToBucket(utc(2024, time.March, 4, 16, 50), 30))
	})

	t.Run("Aligned Minute Stays Put", func(t *testing.T) {
		assert.Equal(t, utc(2024, time.March, 4, 16, 30), snapEndToBucket(utc(2024, time.March, 4, 16, 30), 30))
	})
}
