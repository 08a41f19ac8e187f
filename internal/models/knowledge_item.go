package models

import (
	"time"

	"github.com/google/uuid"
)

// Tone is the register of generated answers.
type Tone string

const (
	ToneFormal Tone = "formal"
	ToneCasual Tone = "casual"
	TonePlain  Tone = "plain"
)

// Valid reports whether t is one of the supported tones.
func (t Tone) Valid() bool {
	switch t {
	case ToneFormal, ToneCasual, TonePlain:
		return true
	}
	return false
}

// KnowledgeType classifies an item's retrieval priority tier.
type KnowledgeType string

const (
	KnowledgeTypeIntent    KnowledgeType = "intent"
	KnowledgeTypeCase      KnowledgeType = "case"
	KnowledgeTypeKnowledge KnowledgeType = "knowledge"
	KnowledgeTypeFAQ       KnowledgeType = "faq"
	KnowledgeTypeError     KnowledgeType = "error"
)

// TierRank returns the matching precedence of a knowledge type, lower first.
// Error-code entries sit between general knowledge and Q&A pairs.
func (t KnowledgeType) TierRank() int {
	switch t {
	case KnowledgeTypeIntent:
		return 0
	case KnowledgeTypeCase:
		return 1
	case KnowledgeTypeKnowledge:
		return 2
	case KnowledgeTypeError:
		return 3
	case KnowledgeTypeFAQ:
		return 4
	}
	return 5
}

// RelatedGuide is a link shown alongside an answer.
type RelatedGuide struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// KnowledgeItem is one retrievable canned-answer record. Items are loaded
// once at startup and never mutated by the matching path; admin edits happen
// out-of-band and require a reload.
type KnowledgeItem struct {
	ID                uuid.UUID       `db:"id"`
	Type              KnowledgeType   `db:"type"`
	Category          string          `db:"category"`
	Title             string          `db:"title"`
	Keywords          []string        `db:"keywords"`
	NegativeKeywords  []string        `db:"negative_keywords"`
	Priority          int             `db:"priority"`
	DateTemplate      bool            `db:"date_template"`
	Responses         map[Tone]string `db:"responses"`
	RelatedGuides     []RelatedGuide  `db:"related_guides"`
	FollowUpQuestions []string        `db:"follow_up_questions"`
	RelatedQuestions  []string        `db:"related_questions"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

// Response returns the answer text for the requested tone, falling back to
// the formal variant when the requested one is empty. Every item carries a
// non-empty formal response by producer contract.
func (k *KnowledgeItem) Response(tone Tone) string {
	if text, ok := k.Responses[tone]; ok && text != "" {
		return text
	}
	return k.Responses[ToneFormal]
}

// SynonymTable maps a canonical term to its alternate surface forms.
// Membership is bidirectional: either the canonical key or any alternate
// appearing in a query activates the whole group.
type SynonymTable map[string][]string

// MatchResult is what the matcher hands back to its caller. When RequiresAI
// is set the caller is expected to fall back to the generative service.
type MatchResult struct {
	Found             bool           `json:"found"`
	Response          string         `json:"response,omitempty"`
	RelatedGuides     []RelatedGuide `json:"related_guides"`
	FollowUpQuestions []string       `json:"follow_up_questions"`
	RelatedQuestions  []string       `json:"related_questions"`
	Score             int            `json:"score"`
	RequiresAI        bool           `json:"requires_ai"`
	Query             string         `json:"query,omitempty"`
}
