package utils

import "time"

// DeltaTimer measures the time between consecutive calls to Next.
type DeltaTimer struct {
	time.Time
}

// Next returns the time since the previous call, or 0 on the first.
func (d *DeltaTimer) Next() time.Duration {
	now := time.Now()
	prev := d.Time
	d.Set(now)
	if prev.IsZero() {
		return 0
	}
	return now.Sub(prev)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.Time = t
}
