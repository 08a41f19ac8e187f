package service

import (
	"testing"

	"billy-chat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Run("Should lowercase and strip whitespace and punctuation", func(t *testing.T) {
		assert.Equal(t, "세금계산서발급", NormalizeText(" 세금계산서 발급? "))
		assert.Equal(t, "vatinvoice", NormalizeText("VAT Invoice!~"))
		assert.Equal(t, "", NormalizeText(""))
		assert.Equal(t, "", NormalizeText(" ,.?!~ "))
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		inputs := []string{
			"세금계산서 발급, 어떻게?",
			"HELLO World!!",
			"  11월   20일  거래  ",
			"",
			"~?!.,",
		}
		for _, in := range inputs {
			once := NormalizeText(in)
			assert.Equal(t, once, NormalizeText(once), "input %q", in)
		}
	})
}

func TestNormalizeLoose(t *testing.T) {
	t.Run("Should keep single spaces but drop punctuation", func(t *testing.T) {
		assert.Equal(t, "세금계산서 발급", NormalizeLoose("  세금계산서   발급?! "))
		assert.Equal(t, "hello world", NormalizeLoose("Hello, World: ;"))
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		inputs := []string{"A, B;  C:", "안녕하세요!", ""}
		for _, in := range inputs {
			once := NormalizeLoose(in)
			assert.Equal(t, once, NormalizeLoose(once), "input %q", in)
		}
	})
}

func TestExpandQuery(t *testing.T) {
	synonyms := models.SynonymTable{
		"세금계산서": {"계산서", "인보이스"},
		"발급":    {"발행", "끊다"},
		"환불":    {"반품", "리턴"},
	}

	t.Run("Should always include the normalized original", func(t *testing.T) {
		variants := ExpandQuery("날씨 알려줘", synonyms)
		assert.Equal(t, []string{"날씨알려줘"}, variants)
	})

	t.Run("Should activate the whole group from the canonical term", func(t *testing.T) {
		variants := ExpandQuery("세금계산서 주세요", synonyms)
		assert.Contains(t, variants, "세금계산서주세요")
		assert.Contains(t, variants, "세금계산서")
		assert.Contains(t, variants, "계산서")
		assert.Contains(t, variants, "인보이스")
	})

	t.Run("Should activate the whole group from an alternate", func(t *testing.T) {
		variants := ExpandQuery("인보이스 발행 방법", synonyms)
		// alternate of one group plus alternate of another
		assert.Contains(t, variants, "세금계산서")
		assert.Contains(t, variants, "계산서")
		assert.Contains(t, variants, "발급")
		assert.Contains(t, variants, "끊다")
	})

	t.Run("Should deduplicate variants", func(t *testing.T) {
		variants := ExpandQuery("계산서 계산서", synonyms)
		seen := map[string]int{}
		for _, v := range variants {
			seen[v]++
		}
		for v, n := range seen {
			assert.Equal(t, 1, n, "variant %q duplicated", v)
		}
	})

	t.Run("Should not activate anything on an empty query", func(t *testing.T) {
		variants := ExpandQuery("", synonyms)
		assert.Equal(t, []string{""}, variants)
	})
}

func TestSynonymSymmetry(t *testing.T) {
	synonyms := models.SynonymTable{"세금계산서": {"인보이스"}}

	fromAlternate := ExpandQuery("인보이스 발급", synonyms)
	assert.Contains(t, fromAlternate, "세금계산서")

	fromCanonical := ExpandQuery("세금계산서 발급", synonyms)
	assert.Contains(t, fromCanonical, "인보이스")
}
