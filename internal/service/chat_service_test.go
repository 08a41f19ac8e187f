package service

import (
	"context"
	"errors"
	"testing"

	"billy-chat/internal/models"
	"billy-chat/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	text string
	err  error
	tone models.Tone
}

func (s *stubGenerator) Answer(_ context.Context, _ string, tone models.Tone) (string, error) {
	s.tone = tone
	return s.text, s.err
}

func testChatConfig() *config.ChatConfig {
	return &config.ChatConfig{
		SupportPhone:    "1600-6399",
		FallbackMessage: "죄송합니다. 고객센터(%s)로 문의해 주세요.",
	}
}

func TestChatServiceAsk(t *testing.T) {
	kb := []models.KnowledgeItem{item("세금계산서 발급방법", []string{"발급", "세금계산서"}, 5)}
	matcher := newTestMatcher(kb, nil, config.MatchModeUnified)

	t.Run("Should answer from the knowledge base without touching the AI", func(t *testing.T) {
		ai := &stubGenerator{text: "AI 응답"}
		svc := NewChatService(matcher, ai, testChatConfig(), zap.NewNop())

		answer := svc.Ask(context.Background(), "세금계산서 발급 어떻게 하나요", models.ToneFormal)
		assert.Equal(t, models.SourceKnowledge, answer.Source)
		assert.Equal(t, "세금계산서 발급방법 안내입니다.", answer.Response)
		assert.Equal(t, 25, answer.Score)
	})

	t.Run("Should fall back to the AI on no match", func(t *testing.T) {
		ai := &stubGenerator{text: "부가세는 분기별로 신고합니다."}
		svc := NewChatService(matcher, ai, testChatConfig(), zap.NewNop())

		answer := svc.Ask(context.Background(), "점심 뭐 먹을까요", models.ToneFormal)
		assert.Equal(t, models.SourceAI, answer.Source)
		assert.Equal(t, "부가세는 분기별로 신고합니다.", answer.Response)
	})

	t.Run("Should degrade to the apology when the AI fails", func(t *testing.T) {
		ai := &stubGenerator{err: errors.New("rate_limit")}
		svc := NewChatService(matcher, ai, testChatConfig(), zap.NewNop())

		answer := svc.Ask(context.Background(), "점심 뭐 먹을까요", models.ToneFormal)
		assert.Equal(t, models.SourceFallback, answer.Source)
		assert.Equal(t, "죄송합니다. 고객센터(1600-6399)로 문의해 주세요.", answer.Response)
	})

	t.Run("Should work without an AI client at all", func(t *testing.T) {
		svc := NewChatService(matcher, nil, testChatConfig(), zap.NewNop())

		answer := svc.Ask(context.Background(), "점심 뭐 먹을까요", models.ToneFormal)
		assert.Equal(t, models.SourceFallback, answer.Source)
	})

	t.Run("Should auto-detect the tone when omitted", func(t *testing.T) {
		ai := &stubGenerator{text: "응답"}
		svc := NewChatService(matcher, ai, testChatConfig(), zap.NewNop())

		answer := svc.Ask(context.Background(), "이거 어떻게 해 ㅋㅋ", "")
		require.Equal(t, models.ToneCasual, answer.Tone)
		assert.Equal(t, models.ToneCasual, ai.tone)
	})
}

func TestFallbackMessage(t *testing.T) {
	assert.Equal(t, "죄송합니다. 고객센터(1600-6399)로 문의해 주세요.", FallbackMessage(testChatConfig()))

	plain := &config.ChatConfig{SupportPhone: "1600-6399", FallbackMessage: "고정 메시지"}
	assert.Equal(t, "고정 메시지", FallbackMessage(plain))
}
