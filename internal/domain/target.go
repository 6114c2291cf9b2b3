package domain

import "time"

// Target is a deadline tracker row.
type Target struct {
	ID        int64
	Date      time.Time
	CreatedAt time.Time
	Message   string
}

// TargetProgress annotates a target with countdown values for the dashboard.
type TargetProgress struct {
	Target
	Months             int
	Days               int
	Hours              int
	Minutes            int
	ProgressPercentage int
}

// Progress computes the countdown fields relative to now.
func (t Target) Progress(now time.Time) TargetProgress {
	remaining := t.Date.Sub(now)
	total := t.Date.Sub(t.CreatedAt)
	elapsed := now.Sub(t.CreatedAt)

	p := TargetProgress{Target: t}
	p.Months = int(remaining / (30 * 24 * time.Hour))
	p.Days = int(remaining / (24 * time.Hour))
	p.Hours = int((remaining % (24 * time.Hour)) / time.Hour)
	p.Minutes = int((remaining % time.Hour) / time.Minute)

	if total > 0 {
		pct := float64(elapsed) / float64(total) * 100
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		p.ProgressPercentage = int(pct)
	}
	return p
}
