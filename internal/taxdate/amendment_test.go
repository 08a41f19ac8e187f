package taxdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmendmentReason(t *testing.T) {
	cases := []struct {
		question string
		want     AmendmentReason
	}{
		{"물건이 반품되어서 수정세금계산서 발급해야 해요", ReasonReturn},
		{"계약파기 후에는 어떻게 하나요", ReasonCancellation},
		{"단가변경으로 금액이 달라졌어요", ReasonPriceChange},
		{"사업자번호를 잘못 기재했어요", ReasonClericalError},
		{"같은 세금계산서를 두번 발급했어요", ReasonDuplicate},
		{"내국신용장이 사후개설 되었습니다", ReasonPostHocLC},
	}
	for _, tc := range cases {
		got, ok := ParseAmendmentReason(tc.question)
		require.True(t, ok, tc.question)
		assert.Equal(t, tc.want, got, tc.question)
	}

	t.Run("Should ignore whitespace inside keywords", func(t *testing.T) {
		got, ok := ParseAmendmentReason("두 번 발급된 것 같아요")
		require.True(t, ok)
		assert.Equal(t, ReasonDuplicate, got)
	})

	t.Run("Should return false below the score threshold", func(t *testing.T) {
		_, ok := ParseAmendmentReason("세금계산서 발급 방법 알려주세요")
		assert.False(t, ok)
	})

	t.Run("Should let negative keywords veto a reason", func(t *testing.T) {
		// 반품 is a negative keyword for 계약해제, so the return reason
		// wins even though 해제-family words score too.
		got, ok := ParseAmendmentReason("반품이라 계약을 해제합니다")
		require.True(t, ok)
		assert.Equal(t, ReasonReturn, got)
	})
}

func TestAmendmentDeadline(t *testing.T) {
	may := &ExtractedDate{Year: 2025, Month: 5, Day: 10}

	t.Run("Should anchor clerical errors on the VAT filing deadline", func(t *testing.T) {
		assert.Equal(t, "2025년 7월 25일", AmendmentDeadline(ReasonClericalError, may))
	})

	t.Run("Should anchor returns on the issuance deadline", func(t *testing.T) {
		assert.Equal(t, "2025년 6월 10일", AmendmentDeadline(ReasonReturn, may))
	})

	t.Run("Should default unknown reasons to the VAT filing rule", func(t *testing.T) {
		assert.Equal(t, "2025년 7월 25일", AmendmentDeadline(AmendmentReason("기타"), may))
	})
}

func TestAmendmentWriteDate(t *testing.T) {
	event := &ExtractedDate{FullDate: "2025년 6월 2일", Year: 2025, Month: 6, Day: 2}
	original := &ExtractedDate{FullDate: "2025년 5월 10일", Year: 2025, Month: 5, Day: 10}

	assert.Equal(t, "2025년 6월 2일 (사유 발생일)", AmendmentWriteDate(ReasonReturn, event, original))
	assert.Equal(t, "2025년 5월 10일 (원본 작성일 고정)", AmendmentWriteDate(ReasonDuplicate, event, original))
	assert.Equal(t, "2025년 6월 2일 (원본 작성일 고정)", AmendmentWriteDate(ReasonDuplicate, event, nil))
}

func TestUsesOriginalDate(t *testing.T) {
	assert.True(t, ReasonClericalError.UsesOriginalDate())
	assert.True(t, ReasonDuplicate.UsesOriginalDate())
	assert.True(t, ReasonPostHocLC.UsesOriginalDate())
	assert.False(t, ReasonReturn.UsesOriginalDate())
	assert.False(t, ReasonCancellation.UsesOriginalDate())
	assert.False(t, ReasonPriceChange.UsesOriginalDate())
}

func TestPenaltyInfo(t *testing.T) {
	may := &ExtractedDate{Year: 2025, Month: 5, Day: 10}
	day := func(month time.Month, d int) time.Time {
		return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("Should grade a plain issuance by issue then filing deadline", func(t *testing.T) {
		assert.Equal(t, "✅ 가산세 없음 (발급기한 이내)", PenaltyInfo(may, "", day(time.June, 1)))
		assert.Equal(t, "⚠️ 지연발급 가산세 1% 예상", PenaltyInfo(may, "", day(time.July, 1)))
		assert.Equal(t, "🚨 미발급 가산세 2% 예상", PenaltyInfo(may, "", day(time.August, 1)))
	})

	t.Run("Should grade event-date amendments with the 1% tier", func(t *testing.T) {
		assert.Equal(t, "✅ 가산세 없음 (발급기한 이내)", PenaltyInfo(may, ReasonReturn, day(time.June, 1)))
		assert.Equal(t, "⚠️ 지연발급 가산세 1% (발급기한 경과)", PenaltyInfo(may, ReasonReturn, day(time.July, 1)))
		assert.Equal(t, "🚨 미발급 가산세 2% (신고기한 경과)", PenaltyInfo(may, ReasonReturn, day(time.August, 1)))
	})

	t.Run("Should grade original-date amendments without a 1% tier", func(t *testing.T) {
		assert.Equal(t, "✅ 가산세 없음 (부가세 확정신고기한 이내)", PenaltyInfo(may, ReasonClericalError, day(time.July, 1)))
		assert.Equal(t, "⚠️ 확정신고기한 경과 - 세무사 상담 권장", PenaltyInfo(may, ReasonClericalError, day(time.August, 1)))
	})

	t.Run("Should return empty for incomplete dates", func(t *testing.T) {
		assert.Equal(t, "", PenaltyInfo(nil, "", day(time.June, 1)))
	})
}

func TestPenaltyDetails(t *testing.T) {
	may := &ExtractedDate{Year: 2025, Month: 5, Day: 10}
	today := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Should judge unissued invoices by today", func(t *testing.T) {
		got := PenaltyDetails(may, time.Time{}, today)
		assert.Equal(t, PenaltyLateIssue, got.Type)
		assert.Equal(t, 1.0, got.Rate)
	})

	t.Run("Should judge issued invoices by their issue date", func(t *testing.T) {
		issued := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
		got := PenaltyDetails(may, issued, today)
		assert.Equal(t, PenaltyNone, got.Type)
		assert.Equal(t, 0.0, got.Rate)

		lateIssued := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
		got = PenaltyDetails(may, lateIssued, today)
		assert.Equal(t, PenaltyNotIssued, got.Type)
		assert.Equal(t, 2.0, got.Rate)
	})
}
