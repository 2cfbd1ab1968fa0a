package billing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid billing period")

// Period is the month a bill covers, labelled "January 2025".
type Period struct {
	Month time.Month
	Year  int
}

// ParsePeriod accepts an English month name (any case) and a four-digit year.
func ParsePeriod(month, year string) (Period, error) {
	var m time.Month
	for i := time.January; i <= time.December; i++ {
		if strings.EqualFold(strings.TrimSpace(month), i.String()) {
			m = i
			break
		}
	}
	if m == 0 {
		return Period{}, fmt.Errorf("%w: month %q", ErrInvalidPeriod, month)
	}

	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y < 1000 || y > 9999 {
		return Period{}, fmt.Errorf("%w: year %q", ErrInvalidPeriod, year)
	}
	return Period{Month: m, Year: y}, nil
}

// CurrentPeriod is the month containing now.
func CurrentPeriod(now time.Time) Period {
	return Period{Month: now.Month(), Year: now.Year()}
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}
