package service

import (
	"strings"

	"billy-chat/internal/models"
)

var (
	casualMarkers = []string{"해", "야", "어", "음", "ㅋ", "ㅎ", "요 없이"}
	formalMarkers = []string{"습니다", "십시오", "세요", "요"}
)

// DetectTone guesses the register of a question from its speech-level
// markers. Mixed or markerless questions default to formal; the plain tone
// is never auto-detected, it has to be requested explicitly.
func DetectTone(query string) models.Tone {
	hasCasual := containsAny(query, casualMarkers)
	hasFormal := containsAny(query, formalMarkers)

	if hasCasual && !hasFormal {
		return models.ToneCasual
	}
	return models.ToneFormal
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
