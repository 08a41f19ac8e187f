package taxdate

import (
	"fmt"
	"time"
)

// Korean statutory holidays for years where the lunar-calendar dates are
// known, keyed "YYYY-MM-DD". Substitute holidays included.
var holidays2025 = []string{
	"2025-01-01", // 신정
	"2025-01-28", // 설날
	"2025-01-29", // 설날
	"2025-01-30", // 설날 대체공휴일
	"2025-03-01", // 삼일절
	"2025-05-05", // 어린이날
	"2025-05-06", // 부처님오신날
	"2025-06-06", // 현충일
	"2025-08-15", // 광복절
	"2025-10-03", // 개천절
	"2025-10-06", // 추석
	"2025-10-07", // 추석
	"2025-10-08", // 추석 대체공휴일
	"2025-10-09", // 한글날
	"2025-12-25", // 크리스마스
}

var holidays2026 = []string{
	"2026-01-01",
	"2026-02-16", // 설날 전날
	"2026-02-17", // 설날
	"2026-02-18", // 설날 다음날
	"2026-03-01",
	"2026-05-05",
	"2026-06-06",
	"2026-08-15",
	"2026-10-03",
	"2026-10-09",
	"2026-12-25",
}

// customHolidays holds extra dates loaded from the database at startup.
// Loaded once before serving begins, read-only afterwards.
var customHolidays = map[string]bool{}

// LoadCustomHolidays registers additional holiday dates ("YYYY-MM-DD").
// Must be called during startup, before any matching traffic.
func LoadCustomHolidays(dates []string) {
	for _, d := range dates {
		customHolidays[d] = true
	}
}

// Holidays returns the known holiday list for a year. Years without a
// maintained table fall back to the fixed-date holidays only, omitting the
// lunar ones (설날, 부처님오신날, 추석) whose dates shift every year.
func Holidays(year int) []string {
	switch year {
	case 2025:
		return holidays2025
	case 2026:
		return holidays2026
	}
	return []string{
		fmt.Sprintf("%d-01-01", year), // 신정
		fmt.Sprintf("%d-03-01", year), // 삼일절
		fmt.Sprintf("%d-05-05", year), // 어린이날
		fmt.Sprintf("%d-06-06", year), // 현충일
		fmt.Sprintf("%d-08-15", year), // 광복절
		fmt.Sprintf("%d-10-03", year), // 개천절
		fmt.Sprintf("%d-10-09", year), // 한글날
		fmt.Sprintf("%d-12-25", year), // 성탄절
	}
}

// IsWeekend reports whether d falls on Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether d is a statutory or custom-loaded holiday.
func IsHoliday(d time.Time) bool {
	iso := FormatISO(d)
	for _, h := range Holidays(d.Year()) {
		if h == iso {
			return true
		}
	}
	return customHolidays[iso]
}

// IsBusinessDay reports whether d is neither a weekend nor a holiday.
func IsBusinessDay(d time.Time) bool {
	return !IsWeekend(d) && !IsHoliday(d)
}

// NextBusinessDay advances d one day at a time until it lands on a business
// day. A date that already is one is returned unchanged.
func NextBusinessDay(d time.Time) time.Time {
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// AdjustDeadline moves a statutory deadline falling on a weekend or holiday
// forward to the next business day.
func AdjustDeadline(d time.Time) time.Time {
	return NextBusinessDay(d)
}
