package handlers

import (
	"billy-chat/internal/dto"
	"billy-chat/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type FAQHandler struct {
	faqService *service.FAQService
	logger     *zap.Logger
}

func NewFAQHandler(faqService *service.FAQService, logger *zap.Logger) *FAQHandler {
	return &FAQHandler{
		faqService: faqService,
		logger:     logger,
	}
}

// List godoc
// @Summary List FAQ entries
// @Description Returns the FAQ knowledge items shown below the chat, optionally filtered by category
// @Tags faq
// @Produce json
// @Param category query string false "Category label"
// @Success 200 {array} dto.FAQItemResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/faq [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")

	items, err := h.faqService.ListFAQ(c.Context(), category)
	if err != nil {
		h.logger.Error("Failed to list FAQ", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list FAQ",
		})
	}

	out := make([]dto.FAQItemResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewFAQItemResponse(&items[i]))
	}
	return c.JSON(out)
}
