package models

import "github.com/google/uuid"

// AnswerSource tells where a chat answer came from.
type AnswerSource string

const (
	SourceKnowledge AnswerSource = "knowledge" // matched canned answer
	SourceAI        AnswerSource = "ai"        // generative fallback
	SourceFallback  AnswerSource = "fallback"  // static apology
)

// ChatAnswer is the final answer handed to the chat surface, after the
// AI-fallback orchestration has run.
type ChatAnswer struct {
	ID                uuid.UUID      `json:"id"`
	Query             string         `json:"query"`
	Tone              Tone           `json:"tone"`
	Response          string         `json:"response"`
	Source            AnswerSource   `json:"source"`
	Score             int            `json:"score"`
	RelatedGuides     []RelatedGuide `json:"related_guides"`
	FollowUpQuestions []string       `json:"follow_up_questions"`
	RelatedQuestions  []string       `json:"related_questions"`
}
