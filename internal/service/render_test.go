package service

import (
	"testing"
	"time"

	"billy-chat/internal/taxdate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractedNov20() *taxdate.ExtractedDate {
	d := taxdate.Extract("2025년 11월 20일 거래")
	if d == nil {
		panic("extraction fixture failed")
	}
	return d
}

func TestRenderResponse(t *testing.T) {
	t.Run("Should always substitute today", func(t *testing.T) {
		got := RenderResponse("오늘은 {today}입니다.", nil, "")
		assert.Equal(t, "오늘은 "+taxdate.TodayFormatted()+"입니다.", got)
	})

	t.Run("Should substitute date-derived placeholders when a date exists", func(t *testing.T) {
		template := "{date} 거래분: 발급 {issueDeadline}, 신고 {vatDeadline}, 전송 {transmitDeadline}"
		got := RenderResponse(template, extractedNov20(), "")

		assert.Contains(t, got, "2025년 11월 20일 거래분")
		assert.Contains(t, got, "발급 2025년 12월 10일")
		assert.Contains(t, got, "신고 2026년 1월 26일") // Jan 25 2026 is a Sunday
		assert.Contains(t, got, "전송 2025년 11월 21일")
	})

	t.Run("Should honor the legacy deadline alias", func(t *testing.T) {
		got := RenderResponse("{deadline}", extractedNov20(), "")
		assert.Equal(t, "2026년 1월 26일", got)
	})

	t.Run("Should leave date placeholders verbatim without a date", func(t *testing.T) {
		template := "{date} / {issueDeadline} / {amendmentDeadline}"
		assert.Equal(t, template, RenderResponse(template, nil, ""))
	})

	t.Run("Should substitute the amendment deadline only with a reason", func(t *testing.T) {
		date := extractedNov20()

		withReason := RenderResponse("{amendmentDeadline}", date, taxdate.ReasonReturn)
		assert.Equal(t, "2025년 12월 10일", withReason)

		withoutReason := RenderResponse("{amendmentDeadline}", date, "")
		assert.Equal(t, "{amendmentDeadline}", withoutReason)
	})

	t.Run("Should substitute penalty info per the reason group", func(t *testing.T) {
		date := extractedNov20()
		got := RenderResponse("{penaltyInfo}", date, taxdate.ReasonClericalError)
		expected := taxdate.PenaltyInfo(date, taxdate.ReasonClericalError, time.Now())
		require.NotEmpty(t, expected)
		assert.Equal(t, expected, got)
	})

	t.Run("Should leave unknown placeholders verbatim", func(t *testing.T) {
		got := RenderResponse("{unknownThing} {date}", extractedNov20(), "")
		assert.Equal(t, "{unknownThing} 2025년 11월 20일", got)
	})
}
