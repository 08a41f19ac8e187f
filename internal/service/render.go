package service

import (
	"strings"
	"time"

	"billy-chat/internal/taxdate"
)

// RenderResponse substitutes the dynamic placeholders of an answer
// template. {today} is always replaced; the date-derived placeholders only
// when a date was extracted from the question, and {amendmentDeadline} only
// when an amendment reason was detected on top of that. Placeholders that
// cannot be resolved stay verbatim in the output.
func RenderResponse(template string, date *taxdate.ExtractedDate, reason taxdate.AmendmentReason) string {
	result := strings.ReplaceAll(template, "{today}", taxdate.TodayFormatted())

	if date == nil || date.Year == 0 || date.Month == 0 {
		return result
	}

	result = strings.ReplaceAll(result, "{date}", date.FullDate)

	vatDeadline := taxdate.VATFilingDeadline(date)
	result = strings.ReplaceAll(result, "{vatDeadline}", vatDeadline)
	// {deadline} is the legacy alias from older templates.
	result = strings.ReplaceAll(result, "{deadline}", vatDeadline)

	result = strings.ReplaceAll(result, "{issueDeadline}", taxdate.IssuanceDeadline(date))

	// The actual issuance date is unknown at question time, so the supply
	// date stands in for the transmission-deadline computation.
	if supply, err := date.Time(); err == nil {
		result = strings.ReplaceAll(result, "{transmitDeadline}", taxdate.TransmissionDeadline(supply))
	}

	if reason != "" {
		result = strings.ReplaceAll(result, "{amendmentDeadline}", taxdate.AmendmentDeadline(reason, date))
	}
	result = strings.ReplaceAll(result, "{penaltyInfo}", taxdate.PenaltyInfo(date, reason, time.Now()))

	return result
}
