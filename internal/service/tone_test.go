package service

import (
	"testing"

	"billy-chat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDetectTone(t *testing.T) {
	cases := []struct {
		query string
		want  models.Tone
	}{
		{"세금계산서 언제까지 발급해야 합니다", models.ToneFormal},
		{"이거 어떻게 해 ㅋㅋ", models.ToneCasual},
		{"발급 방법 알려줘 빨리 해", models.ToneCasual},
		// Mixed markers default to formal.
		{"해주세요", models.ToneFormal},
		{"", models.ToneFormal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectTone(tc.query), "query %q", tc.query)
	}
}
