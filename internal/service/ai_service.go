package service

import (
	"context"
	"fmt"
	"strings"

	"billy-chat/internal/models"
	"billy-chat/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// AIService is the thin client for the generative fallback. It only sends
// the question with a tone-specific system prompt and returns the text;
// everything smarter than that lives on the model side.
type AIService struct {
	client *gigago.Client
	models map[models.Tone]*gigago.GenerativeModel
	logger *zap.Logger
}

func NewAIService(cfg *config.AIConfig, chatCfg *config.ChatConfig, logger *zap.Logger) (*AIService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	// One model instance per tone: the system instruction carries the
	// register, the per-request payload is just the question.
	tones := map[models.Tone]*gigago.GenerativeModel{}
	for _, tone := range []models.Tone{models.ToneFormal, models.ToneCasual, models.TonePlain} {
		model := client.GenerativeModel(cfg.Model)
		model.SystemInstruction = systemInstruction(tone, chatCfg.SupportPhone)
		model.Temperature = 0.3
		tones[tone] = model
	}

	return &AIService{
		client: client,
		models: tones,
		logger: logger,
	}, nil
}

// Answer generates a free-form reply for a question the knowledge base
// could not match.
func (s *AIService) Answer(ctx context.Context, question string, tone models.Tone) (string, error) {
	model, ok := s.models[tone]
	if !ok {
		model = s.models[models.ToneFormal]
	}

	resp, err := model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: question},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate AI answer: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *AIService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

func systemInstruction(tone models.Tone, supportPhone string) string {
	var register string
	switch tone {
	case models.ToneCasual:
		register = "당신은 바로빌의 세무 전문 AI 상담원 '빌리'야.\n반말을 사용하여 친근하고 편하게 답변해줘."
	case models.TonePlain:
		register = "당신은 바로빌의 세무 전문 AI 상담원 '빌리'입니다.\n군더더기 없는 간결한 문장으로 핵심만 답변하세요."
	default:
		register = "당신은 바로빌의 세무 전문 AI 상담원 '빌리'입니다.\n존댓말을 사용하여 전문적이고 친절하게 답변해주세요."
	}

	return register + fmt.Sprintf(`

전문 분야:
- 세금계산서 발급 및 수정
- 부가세 신고 (예정신고, 확정신고)
- 전자세금계산서 시스템
- 바로빌 서비스 이용 방법
- 세무 관련 일반 상담

답변 시 주의사항:
- 정확한 정보를 바탕으로 답변
- 복잡한 세무 문제는 전문가 상담 권유
- 바로빌 고객센터: %s
- 친절하고 이해하기 쉬운 설명`, supportPhone)
}
