package availability

import "time"

// Slot boundaries live on a bucket grid of durationMinutes within each hour:
// :00, :D, :2D, ... up to floor(60/D)*D. Starts snap forward onto the grid,
// ends snap backward, so no generated slot ever leaks past a window edge.

// snapStartToBucket rounds t forward to the nearest bucket boundary. A time
// already on the grid is left untouched. Minutes past the last bucket of the
// hour roll over to the top of the next hour.
func snapStartToBucket(t time.Time, durationMinutes int) time.Time {
	t = t.Truncate(time.Minute)
	m := t.Minute()
	if m == 0 {
		return t
	}

	lastBucket := (60 / durationMinutes) * durationMinutes
	if m > lastBucket {
		return t.Add(time.Duration(60-m) * time.Minute)
	}

	snapped := ((m + durationMinutes - 1) / durationMinutes) * durationMinutes
	if snapped >= 60 {
		return t.Add(time.Duration(60-m) * time.Minute)
	}
	return t.Add(time.Duration(snapped-m) * time.Minute)
}

// snapEndToBucket rounds t backward to the nearest bucket boundary.
func snapEndToBucket(t time.Time, durationMinutes int) time.Time {
	t = t.Truncate(time.Minute)
	m := t.Minute()
	if m == 0 {
		return t
	}

	floored := (m / durationMinutes) * durationMinutes
	return t.Add(time.Duration(floored-m) * time.Minute)
}
