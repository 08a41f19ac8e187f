package handlers

import (
	"strings"

	"billy-chat/internal/dto"
	"billy-chat/internal/models"
	"billy-chat/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Query godoc
// @Summary Answer a support question
// @Description Matches the question against the knowledge base and falls back to the AI assistant when no confident answer exists
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatQueryRequest true "Question and optional tone (formal, casual or plain)"
// @Success 200 {object} dto.ChatQueryResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/chat/query [post]
func (h *ChatHandler) Query(c *fiber.Ctx) error {
	var req dto.ChatQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question is required",
		})
	}

	tone := models.Tone(req.Tone)
	if req.Tone != "" && !tone.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tone must be formal, casual or plain",
		})
	}

	answer := h.chatService.Ask(c.Context(), question, tone)

	h.logger.Info("chat query answered",
		zap.String("id", answer.ID.String()),
		zap.String("source", string(answer.Source)),
		zap.Int("score", answer.Score),
	)

	return c.JSON(dto.NewChatQueryResponse(answer))
}
