package taxdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssuanceDeadline(t *testing.T) {
	t.Run("Should be the 10th of the following month", func(t *testing.T) {
		d := &ExtractedDate{Year: 2025, Month: 11, Day: 20}
		assert.Equal(t, "2025년 12월 10일", IssuanceDeadline(d))
	})

	t.Run("Should roll December into January of the next year", func(t *testing.T) {
		d := &ExtractedDate{Year: 2025, Month: 12, Day: 3}
		// 2026-01-10 is a Saturday, adjusted to Monday the 12th.
		assert.Equal(t, "2026년 1월 12일", IssuanceDeadline(d))
	})

	t.Run("Should return empty for incomplete dates", func(t *testing.T) {
		assert.Equal(t, "", IssuanceDeadline(nil))
		assert.Equal(t, "", IssuanceDeadline(&ExtractedDate{Day: 5}))
	})
}

func TestVATFilingDeadline(t *testing.T) {
	cases := []struct {
		month int
		want  string
	}{
		{2, "2025년 4월 25일"},
		{5, "2025년 7월 25일"},
		{8, "2025년 10월 27일"}, // Oct 25 2025 is a Saturday
		{11, "2026년 1월 26일"}, // Jan 25 2026 is a Sunday
	}
	for _, tc := range cases {
		d := &ExtractedDate{Year: 2025, Month: tc.month, Day: 15}
		assert.Equal(t, tc.want, VATFilingDeadline(d), "month %d", tc.month)
	}
}

func TestTransmissionDeadline(t *testing.T) {
	issue := time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025년 12월 11일", TransmissionDeadline(issue))

	// Friday issuance transmits on Monday.
	friday := time.Date(2025, time.November, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025년 11월 10일", TransmissionDeadline(friday))
}

func TestAdjustDeadline(t *testing.T) {
	t.Run("Should skip the Chuseok holiday block", func(t *testing.T) {
		// 개천절 Friday, weekend, 추석 Mon-Wed, 한글날 Thursday.
		d := time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC), AdjustDeadline(d))
	})

	t.Run("Should never move backwards and always land on a business day", func(t *testing.T) {
		start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 365; i++ {
			d := start.AddDate(0, 0, i)
			adjusted := AdjustDeadline(d)
			assert.False(t, adjusted.Before(d))
			assert.True(t, IsBusinessDay(adjusted))
		}
	})
}

func TestHolidays(t *testing.T) {
	t.Run("Should use the year-specific table when available", func(t *testing.T) {
		assert.Contains(t, Holidays(2025), "2025-10-06")
	})

	t.Run("Should fall back to fixed holidays for unknown years", func(t *testing.T) {
		hs := Holidays(2031)
		assert.Contains(t, hs, "2031-03-01")
		assert.Contains(t, hs, "2031-12-25")
		assert.Len(t, hs, 8)
	})
}

func TestLoadCustomHolidays(t *testing.T) {
	// 2030-04-01 is a regular Monday until loaded as a custom holiday.
	d := time.Date(2030, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsBusinessDay(d))

	LoadCustomHolidays([]string{"2030-04-01"})
	assert.False(t, IsBusinessDay(d))
	assert.Equal(t, d.AddDate(0, 0, 1), NextBusinessDay(d))
}
