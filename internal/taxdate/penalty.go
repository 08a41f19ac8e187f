package taxdate

import "time"

// PenaltyType classifies the surcharge applied to a late invoice.
type PenaltyType string

const (
	PenaltyNone      PenaltyType = "없음"
	PenaltyLateIssue PenaltyType = "지연발급"
	PenaltyNotIssued PenaltyType = "미발급"
)

// PenaltyResult is the detailed surcharge judgement for one transaction.
type PenaltyResult struct {
	Type    PenaltyType `json:"type"`
	Rate    float64     `json:"rate"`
	Message string      `json:"message"`
}

// PenaltyInfo judges the surcharge situation for a transaction as of today
// and returns the user-facing one-liner. With an amendment reason the
// judgement follows that reason's deadline group; original-date reasons have
// no intermediate 1% tier, only "inside the filing window" or "consult a
// professional".
func PenaltyInfo(transaction *ExtractedDate, reason AmendmentReason, today time.Time) string {
	if transaction == nil || transaction.Year == 0 || transaction.Month == 0 {
		return ""
	}

	issueDeadline := ParseKoreanDate(IssuanceDeadline(transaction))
	vatDeadline := ParseKoreanDate(VATFilingDeadline(transaction))

	if reason != "" {
		if reason.UsesOriginalDate() {
			if !today.After(vatDeadline) {
				return "✅ 가산세 없음 (부가세 확정신고기한 이내)"
			}
			return "⚠️ 확정신고기한 경과 - 세무사 상담 권장"
		}

		amendDeadline := ParseKoreanDate(AmendmentDeadline(reason, transaction))
		switch {
		case !today.After(amendDeadline):
			return "✅ 가산세 없음 (발급기한 이내)"
		case !today.After(vatDeadline):
			return "⚠️ 지연발급 가산세 1% (발급기한 경과)"
		default:
			return "🚨 미발급 가산세 2% (신고기한 경과)"
		}
	}

	switch {
	case !today.After(issueDeadline):
		return "✅ 가산세 없음 (발급기한 이내)"
	case !today.After(vatDeadline):
		return "⚠️ 지연발급 가산세 1% 예상"
	default:
		return "🚨 미발급 가산세 2% 예상"
	}
}

// PenaltyDetails returns the structured surcharge judgement. issueDate is
// the actual issuance date when known; zero means the invoice has not been
// issued yet.
func PenaltyDetails(transaction *ExtractedDate, issueDate time.Time, today time.Time) PenaltyResult {
	if transaction == nil || transaction.Year == 0 || transaction.Month == 0 {
		return PenaltyResult{Type: PenaltyNone, Rate: 0, Message: "날짜 정보 부족"}
	}

	issueDeadline := ParseKoreanDate(IssuanceDeadline(transaction))
	vatDeadline := ParseKoreanDate(VATFilingDeadline(transaction))

	if issueDate.IsZero() {
		switch {
		case today.After(vatDeadline):
			return PenaltyResult{Type: PenaltyNotIssued, Rate: 2.0, Message: "부가세 신고기한 경과로 미발급 가산세 2% 부과"}
		case today.After(issueDeadline):
			return PenaltyResult{Type: PenaltyLateIssue, Rate: 1.0, Message: "발급기한 경과, 지금 발급하면 지연발급 가산세 1%"}
		default:
			return PenaltyResult{Type: PenaltyNone, Rate: 0, Message: "발급기한 내 발급하면 가산세 없음"}
		}
	}

	switch {
	case !issueDate.After(issueDeadline):
		return PenaltyResult{Type: PenaltyNone, Rate: 0, Message: "정상 발급"}
	case !issueDate.After(vatDeadline):
		return PenaltyResult{Type: PenaltyLateIssue, Rate: 1.0, Message: "지연발급 가산세 1% 부과"}
	default:
		return PenaltyResult{Type: PenaltyNotIssued, Rate: 2.0, Message: "미발급 가산세 2% 부과"}
	}
}
