package dto

import "billy-chat/internal/models"

type FAQItemResponse struct {
	ID               string   `json:"id"`
	Category         string   `json:"category"`
	Title            string   `json:"title"`
	Answer           string   `json:"answer"`
	RelatedQuestions []string `json:"related_questions"`
}

// NewFAQItemResponse converts a FAQ knowledge item into its wire form,
// always using the formal answer text.
func NewFAQItemResponse(item *models.KnowledgeItem) FAQItemResponse {
	related := item.RelatedQuestions
	if related == nil {
		related = []string{}
	}
	return FAQItemResponse{
		ID:               item.ID.String(),
		Category:         item.Category,
		Title:            item.Title,
		Answer:           item.Response(models.ToneFormal),
		RelatedQuestions: related,
	}
}
