package taxdate

import "strings"

// AmendmentReason is one of the six statutory reasons for issuing a
// corrected invoice (수정세금계산서).
type AmendmentReason string

const (
	ReasonReturn        AmendmentReason = "환입"
	ReasonCancellation  AmendmentReason = "계약해제"
	ReasonPriceChange   AmendmentReason = "공급가액변동"
	ReasonClericalError AmendmentReason = "착오정정"
	ReasonDuplicate     AmendmentReason = "이중발급"
	ReasonPostHocLC     AmendmentReason = "내국신용장사후개설"
)

// amendmentReasons fixes the iteration order so the strictly-greater
// tie-break in ParseAmendmentReason is deterministic.
var amendmentReasons = []AmendmentReason{
	ReasonReturn,
	ReasonCancellation,
	ReasonPriceChange,
	ReasonClericalError,
	ReasonDuplicate,
	ReasonPostHocLC,
}

var amendmentKeywords = map[AmendmentReason][]string{
	ReasonReturn: {
		"반품", "환불", "환입", "리턴", "반환", "되돌려", "돌려보내",
		"돌려받", "취소됐", "물건돌려",
	},
	ReasonCancellation: {
		"계약해제", "계약취소", "계약파기", "해제", "파기", "무효",
		"계약무효", "계약철회", "전부취소",
	},
	ReasonPriceChange: {
		"할인", "추가청구", "금액변동", "가격변경", "단가변경",
		"증가", "감소", "추가금액", "에누리", "가격조정",
	},
	ReasonClericalError: {
		"오타", "오류", "잘못", "착오", "정정", "틀림", "틀렸",
		"주소오류", "상호오류", "사업자번호", "기재사항",
	},
	ReasonDuplicate: {
		"중복", "이중", "두번", "2번", "두 번", "같은거또",
		"또발급", "중복발급", "두장",
	},
	ReasonPostHocLC: {
		"내국신용장", "신용장", "사후개설", "영세율", "0%",
		"영세", "LC", "엘씨",
	},
}

// Keywords that rule a reason out when present in the question.
var amendmentNegativeKeywords = map[AmendmentReason][]string{
	ReasonReturn:        {"계약취소", "오타", "중복"},
	ReasonCancellation:  {"반품", "환불", "오타"},
	ReasonPriceChange:   {"반품", "오타", "취소"},
	ReasonClericalError: {"반품", "취소", "할인", "중복"},
	ReasonDuplicate:     {"반품", "착오정정", "오타"},
	ReasonPostHocLC:     {"반품", "오타"},
}

// UsesOriginalDate reports whether the reason's amendment deadline is
// anchored on the original transaction date (VAT filing rule, no penalty
// risk inside the window) rather than the event date (issuance rule, penalty
// risk when missed). This split is the crux of the corrected-invoice rules.
func (r AmendmentReason) UsesOriginalDate() bool {
	switch r {
	case ReasonClericalError, ReasonDuplicate, ReasonPostHocLC:
		return true
	}
	return false
}

// ParseAmendmentReason detects the amendment reason in a free-text
// question. Each reason scores +10 per matched keyword and -20 per matched
// negative keyword, whitespace removed on both sides before the substring
// comparison. The highest scorer wins if it reaches 10; ties keep the
// earliest reason.
func ParseAmendmentReason(question string) (AmendmentReason, bool) {
	normalized := squeeze(strings.ToLower(question))

	var best AmendmentReason
	maxScore := 0
	for _, reason := range amendmentReasons {
		score := 0
		for _, kw := range amendmentKeywords[reason] {
			if strings.Contains(normalized, squeeze(kw)) {
				score += 10
			}
		}
		for _, kw := range amendmentNegativeKeywords[reason] {
			if strings.Contains(normalized, squeeze(kw)) {
				score -= 20
			}
		}
		if score > maxScore {
			maxScore = score
			best = reason
		}
	}

	if maxScore >= 10 {
		return best, true
	}
	return "", false
}

func squeeze(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// AmendmentDeadline returns the filing cutoff for a corrected invoice.
// Event-date reasons (환입, 계약해제, 공급가액변동) follow the issuance rule
// on the event date; original-date reasons (착오정정, 이중발급,
// 내국신용장사후개설) follow the VAT filing rule on the original
// transaction. Unknown reasons fall back to the VAT filing rule.
func AmendmentDeadline(reason AmendmentReason, eventDate *ExtractedDate) string {
	switch reason {
	case ReasonReturn, ReasonCancellation, ReasonPriceChange:
		return IssuanceDeadline(eventDate)
	}
	return VATFilingDeadline(eventDate)
}

// AmendmentWriteDate returns the 작성일자 rule for the corrected invoice:
// event-date reasons write the event date, original-date reasons keep the
// original invoice date.
func AmendmentWriteDate(reason AmendmentReason, eventDate, originalDate *ExtractedDate) string {
	if reason.UsesOriginalDate() {
		date := originalDate
		if date == nil {
			date = eventDate
		}
		return date.FullDate + " (원본 작성일 고정)"
	}
	switch reason {
	case ReasonReturn, ReasonCancellation, ReasonPriceChange:
		return eventDate.FullDate + " (사유 발생일)"
	}
	return eventDate.FullDate
}
