package taxdate

import "time"

// IssuanceDeadline returns the invoice issuance deadline for a supply date:
// the 10th of the following month, adjusted forward past weekends and
// holidays. Formats the adjusted date in the long Korean form; an
// incomplete date yields "".
func IssuanceDeadline(supply *ExtractedDate) string {
	if supply == nil || supply.Year == 0 || supply.Month == 0 {
		return ""
	}
	return FormatKorean(issuanceDeadlineDate(supply.Year, supply.Month))
}

func issuanceDeadlineDate(year, month int) time.Time {
	month++
	if month > 12 {
		month = 1
		year++
	}
	return AdjustDeadline(time.Date(year, time.Month(month), 10, 0, 0, 0, 0, time.UTC))
}

// VATFilingDeadline returns the VAT return deadline covering the supply
// month:
//
//	1~3월  → 4월 25일 (1기 예정)
//	4~6월  → 7월 25일 (1기 확정)
//	7~9월  → 10월 25일 (2기 예정)
//	10~12월 → 다음해 1월 25일 (2기 확정)
//
// adjusted forward past weekends and holidays.
func VATFilingDeadline(transaction *ExtractedDate) string {
	if transaction == nil || transaction.Year == 0 || transaction.Month == 0 {
		return ""
	}
	return FormatKorean(vatFilingDeadlineDate(transaction.Year, transaction.Month))
}

// VATFilingDeadlineDate is the calendar-date variant used for penalty
// comparisons.
func VATFilingDeadlineDate(transaction time.Time) time.Time {
	return vatFilingDeadlineDate(transaction.Year(), int(transaction.Month()))
}

func vatFilingDeadlineDate(year, month int) time.Time {
	var deadline time.Time
	switch {
	case month >= 1 && month <= 3:
		deadline = time.Date(year, time.April, 25, 0, 0, 0, 0, time.UTC)
	case month >= 4 && month <= 6:
		deadline = time.Date(year, time.July, 25, 0, 0, 0, 0, time.UTC)
	case month >= 7 && month <= 9:
		deadline = time.Date(year, time.October, 25, 0, 0, 0, 0, time.UTC)
	default:
		deadline = time.Date(year+1, time.January, 25, 0, 0, 0, 0, time.UTC)
	}
	return AdjustDeadline(deadline)
}

// TransmissionDeadline returns the NTS transmission deadline for an invoice
// issued on issueDate: the following day, adjusted to a business day.
func TransmissionDeadline(issueDate time.Time) string {
	return FormatKorean(AdjustDeadline(issueDate.AddDate(0, 0, 1)))
}
