package dto

import "billy-chat/internal/models"

// ChatQueryRequest is one question from the widget. Tone is optional; when
// empty the server detects it from the question's speech level.
type ChatQueryRequest struct {
	Question string `json:"question"`
	Tone     string `json:"tone,omitempty"`
}

type RelatedGuideResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

type ChatQueryResponse struct {
	ID                string                 `json:"id"`
	Query             string                 `json:"query"`
	Tone              string                 `json:"tone"`
	Response          string                 `json:"response"`
	Source            string                 `json:"source"`
	Score             int                    `json:"score"`
	RelatedGuides     []RelatedGuideResponse `json:"related_guides"`
	FollowUpQuestions []string               `json:"follow_up_questions"`
	RelatedQuestions  []string               `json:"related_questions"`
}

// NewChatQueryResponse converts a chat answer into its wire form.
func NewChatQueryResponse(answer *models.ChatAnswer) ChatQueryResponse {
	guides := make([]RelatedGuideResponse, 0, len(answer.RelatedGuides))
	for _, g := range answer.RelatedGuides {
		guides = append(guides, RelatedGuideResponse{
			Title: g.Title,
			URL:   g.URL,
			Icon:  g.Icon,
		})
	}
	return ChatQueryResponse{
		ID:                answer.ID.String(),
		Query:             answer.Query,
		Tone:              string(answer.Tone),
		Response:          answer.Response,
		Source:            string(answer.Source),
		Score:             answer.Score,
		RelatedGuides:     guides,
		FollowUpQuestions: answer.FollowUpQuestions,
		RelatedQuestions:  answer.RelatedQuestions,
	}
}
