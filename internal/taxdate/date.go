// Package taxdate extracts dates from free-text Korean questions and
// computes the statutory deadlines of the e-invoicing regulation: issuance,
// transmission, VAT filing and corrected-invoice deadlines, with
// business-day adjustment and penalty judgement.
package taxdate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ExtractedDate is a date reconstructed from one of the recognized textual
// patterns, normalized to a Korean long form, a month-day short form and an
// ISO form. Missing parts are defaulted during extraction (day->1,
// year->current), so a populated value always carries Year/Month/Day.
type ExtractedDate struct {
	FullDate string `json:"full_date"` // "2025년 11월 20일"
	MonthDay string `json:"month_day"` // "11월 20일"
	ISODate  string `json:"iso_date"`  // "2025-11-20"
	Year     int    `json:"year,omitempty"`
	Month    int    `json:"month,omitempty"`
	Day      int    `json:"day,omitempty"`
}

// Time converts the extracted date to a calendar date. Year, month and day
// must all be set; a zero field means the value was built outside Extract
// and is a programming error, not bad user input.
func (e *ExtractedDate) Time() (time.Time, error) {
	if e.Year == 0 || e.Month == 0 || e.Day == 0 {
		return time.Time{}, errors.New("taxdate: extracted date missing year, month or day")
	}
	return time.Date(e.Year, time.Month(e.Month), e.Day, 0, 0, 0, 0, time.UTC), nil
}

var (
	fullDatePattern  = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`)
	monthDayPattern  = regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`)
	isoDatePattern   = regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	dotDatePattern   = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})`)
	monthOnlyPattern = regexp.MustCompile(`(\d{1,2})월\s*거래`)
)

// Extract parses a date reference out of a free-text question. Patterns are
// tried in strict precedence: full Korean date, month-day, ISO/slash date,
// dotted short date, then a bare "N월 거래" month reference (day assumed 1).
// Returns nil when no pattern matches.
func Extract(query string) *ExtractedDate {
	if m := fullDatePattern.FindStringSubmatch(query); m != nil {
		return buildDate(m[1], m[2], m[3])
	}

	if m := monthDayPattern.FindStringSubmatch(query); m != nil {
		year := strconv.Itoa(time.Now().Year())
		return buildDate(year, m[1], m[2])
	}

	if m := isoDatePattern.FindStringSubmatch(query); m != nil {
		return buildDate(m[1], m[2], m[3])
	}

	if m := dotDatePattern.FindStringSubmatch(query); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			year := strconv.Itoa(time.Now().Year())
			return buildDate(year, m[1], m[2])
		}
	}

	if m := monthOnlyPattern.FindStringSubmatch(query); m != nil {
		month, _ := strconv.Atoi(m[1])
		if month >= 1 && month <= 12 {
			year := time.Now().Year()
			return &ExtractedDate{
				FullDate: fmt.Sprintf("%d년 %s월", year, m[1]),
				MonthDay: m[1] + "월",
				ISODate:  fmt.Sprintf("%d-%02d-01", year, month),
				Year:     year,
				Month:    month,
				Day:      1,
			}
		}
	}

	return nil
}

// buildDate assembles an ExtractedDate from raw captured digit strings,
// keeping the user's own digits in the Korean forms ("05월" stays "05월").
func buildDate(year, month, day string) *ExtractedDate {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return &ExtractedDate{
		FullDate: fmt.Sprintf("%s년 %s월 %s일", year, month, day),
		MonthDay: fmt.Sprintf("%s월 %s일", month, day),
		ISODate:  fmt.Sprintf("%s-%02d-%02d", year, m, d),
		Year:     y,
		Month:    m,
		Day:      d,
	}
}

// FormatISO renders a date as "YYYY-MM-DD".
func FormatISO(d time.Time) string {
	return d.Format("2006-01-02")
}

// FormatKorean renders a date in the long Korean form, "2025년 11월 10일".
func FormatKorean(d time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", d.Year(), int(d.Month()), d.Day())
}

// TodayFormatted returns today's date in the long Korean form.
func TodayFormatted() string {
	return FormatKorean(time.Now())
}

var koreanDatePattern = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`)

// ParseKoreanDate parses a "YYYY년 MM월 DD일" string back into a calendar
// date. Unparseable input yields the current date, mirroring how deadline
// strings are only ever produced by this package.
func ParseKoreanDate(s string) time.Time {
	m := koreanDatePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Now()
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
