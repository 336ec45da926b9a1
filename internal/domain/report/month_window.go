package report

import (
	"fmt"
	"time"
)

// YearMonth identifies one calendar month
type YearMonth struct {
	Year  int
	Month time.Month
}

// YearMonthOf returns the YearMonth containing t
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Prev returns the preceding month, rolling January back to December
func (ym YearMonth) Prev() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// Next returns the following month, rolling December over to January
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// Before reports whether ym is earlier than other
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// After reports whether ym is later than other
func (ym YearMonth) After(other YearMonth) bool {
	return other.Before(ym)
}

// Start returns midnight UTC on the first day of the month
func (ym YearMonth) Start() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the exclusive upper bound, the start of the next month
func (ym YearMonth) End() time.Time {
	return ym.Next().Start()
}

// String formats the month as YYYY-MM
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Window is a resolved reporting month with its navigation neighbours.
// Previous and Next are nil exactly at the data bounds.
type Window struct {
	Current  YearMonth
	Previous *YearMonth
	Next     *YearMonth
}

// From returns the inclusive start of the window
func (w Window) From() time.Time {
	return w.Current.Start()
}

// To returns the exclusive end of the window
func (w Window) To() time.Time {
	return w.Current.End()
}

// ResolveWindow picks the effective reporting month. The default is the
// month of the latest date in the data (or now when there is none); an
// explicit request is honoured but clamped into [earliest, latest].
func ResolveWindow(requested *YearMonth, minDate, maxDate *time.Time, now time.Time) Window {
	def := YearMonthOf(now)
	if maxDate != nil {
		def = YearMonthOf(*maxDate)
	}

	minMonth := def
	if minDate != nil {
		minMonth = YearMonthOf(*minDate)
	}
	maxMonth := def

	current := def
	if requested != nil {
		current = *requested
	}
	if current.Before(minMonth) {
		current = minMonth
	}
	if current.After(maxMonth) {
		current = maxMonth
	}

	w := Window{Current: current}
	if current.After(minMonth) {
		prev := current.Prev()
		w.Previous = &prev
	}
	if current.Before(maxMonth) {
		next := current.Next()
		w.Next = &next
	}
	return w
}
