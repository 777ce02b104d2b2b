package domain

import "time"

// StudyZone is the fixed civil calendar for all streak, daily-stat and boss
// bucketing. Day boundaries are UTC+8 regardless of server or client zone.
var StudyZone = time.FixedZone("UTC+8", 8*60*60)

// Clock is the single time source injected into the reward engine so tests
// can supply fixed dates.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().In(StudyZone) }

// NewClock returns the wall-clock time source in the study zone.
func NewClock() Clock { return realClock{} }

// FixedClock always reports the same instant. For tests.
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T.In(StudyZone) }

const civilDateLayout = "2006-01-02"

// CivilDate formats t as a civil date in the study zone.
func CivilDate(t time.Time) string {
	return t.In(StudyZone).Format(civilDateLayout)
}

// MonthBucket formats t as a civil year-month in the study zone.
func MonthBucket(t time.Time) string {
	return t.In(StudyZone).Format("2006-01")
}

// DayDiff returns the whole-day difference to - from between two civil
// dates. Negative when to precedes from. Unparseable input counts as a
// broken streak, so it maps to a large positive gap.
func DayDiff(from, to string) int {
	a, err1 := time.ParseInLocation(civilDateLayout, from, StudyZone)
	b, err2 := time.ParseInLocation(civilDateLayout, to, StudyZone)
	if err1 != nil || err2 != nil {
		return 1 << 20
	}
	return int(b.Sub(a).Hours() / 24)
}

// DayBounds returns the [start, end) unix-second range of t's civil day.
func DayBounds(t time.Time) (int64, int64) {
	t = t.In(StudyZone)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, StudyZone)
	return start.Unix(), start.AddDate(0, 0, 1).Unix()
}
