package service

import (
	"sort"
	"strings"
	"unicode/utf8"

	"billy-chat/internal/models"
	"billy-chat/internal/taxdate"
	"billy-chat/pkg/config"

	"go.uber.org/zap"
)

// MatchService ranks knowledge-base items against user questions. The item
// list and synonym table are injected once at construction and never
// mutated afterwards, so a single instance is safe for concurrent use and
// multiple knowledge-base versions can coexist in tests.
type MatchService struct {
	items    []models.KnowledgeItem
	synonyms models.SynonymTable
	cfg      *config.MatchConfig
	fallback string
	logger   *zap.Logger
}

func NewMatchService(
	items []models.KnowledgeItem,
	synonyms models.SynonymTable,
	cfg *config.MatchConfig,
	fallbackMessage string,
	logger *zap.Logger,
) *MatchService {
	return &MatchService{
		items:    items,
		synonyms: synonyms,
		cfg:      cfg,
		fallback: fallbackMessage,
		logger:   logger,
	}
}

// MatchQuery finds the best canned answer for a question. Date references
// and amendment reasons are extracted from the raw query up front and flow
// into both scoring and template substitution. When no item clears the
// confidence bar the result carries RequiresAI and the static apology; the
// caller decides whether to call the generative fallback.
func (s *MatchService) MatchQuery(query string, tone models.Tone) models.MatchResult {
	if !tone.Valid() {
		tone = models.ToneFormal
	}

	normalized := NormalizeText(query)
	variants := ExpandQuery(query, s.synonyms)
	date := taxdate.Extract(query)
	reason, _ := taxdate.ParseAmendmentReason(query)

	var result models.MatchResult
	if s.cfg.Mode == config.MatchModeTiered {
		result = s.matchTiered(normalized, variants, tone, date, reason)
	} else {
		result = s.matchUnified(normalized, variants, tone, date, reason)
	}

	if result.RequiresAI {
		result.Query = query
		result.Response = s.fallback
	}

	s.logger.Debug("query matched",
		zap.String("query", query),
		zap.String("tone", string(tone)),
		zap.Int("score", result.Score),
		zap.Bool("requires_ai", result.RequiresAI),
	)
	return result
}

// matchUnified scores every non-excluded item:
//
//	keywordWeight x matched keywords + title bonus + priority + date bonus
//
// and returns the strict maximum, or the AI fallback below MinScore.
func (s *MatchService) matchUnified(
	normalized string,
	variants []string,
	tone models.Tone,
	date *taxdate.ExtractedDate,
	reason taxdate.AmendmentReason,
) models.MatchResult {
	var best *models.KnowledgeItem
	bestScore := 0

	for i := range s.items {
		item := &s.items[i]
		if s.excluded(item, normalized, variants) {
			continue
		}

		score := 0
		for _, kw := range item.Keywords {
			if matchesAnyVariant(NormalizeText(kw), variants) {
				score += s.cfg.KeywordWeight
			}
		}
		if title := NormalizeText(item.Title); title != "" && strings.Contains(normalized, title) {
			score += s.cfg.TitleBonus
		}
		score += item.Priority
		if item.DateTemplate && date != nil {
			score += s.cfg.DateBonus
		}

		if score > bestScore {
			bestScore = score
			best = item
		}
	}

	if best == nil || bestScore < s.cfg.MinScore {
		return fallbackResult(bestScore)
	}
	return s.itemResult(best, bestScore, tone, date, reason)
}

// matchTiered is the legacy precedence algorithm: item types are evaluated
// in strict tier order and the first tier producing a result wins.
func (s *MatchService) matchTiered(
	normalized string,
	variants []string,
	tone models.Tone,
	date *taxdate.ExtractedDate,
	reason taxdate.AmendmentReason,
) models.MatchResult {
	for _, tier := range s.tiers() {
		var result models.MatchResult
		switch tier[0].Type {
		case models.KnowledgeTypeIntent:
			result = s.matchIntents(tier, normalized, variants, tone, date, reason)
		case models.KnowledgeTypeCase:
			result = s.matchCases(tier, normalized, variants, tone, date, reason)
		default:
			result = s.matchFirst(tier, normalized, variants, tone, date, reason)
		}
		if result.Found {
			return result
		}
	}
	return fallbackResult(0)
}

// tiers groups items by type, ordered intent > case > knowledge > error >
// faq, preserving knowledge-base order within each group.
func (s *MatchService) tiers() [][]*models.KnowledgeItem {
	grouped := map[models.KnowledgeType][]*models.KnowledgeItem{}
	for i := range s.items {
		item := &s.items[i]
		grouped[item.Type] = append(grouped[item.Type], item)
	}

	types := make([]models.KnowledgeType, 0, len(grouped))
	for t := range grouped {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].TierRank() < types[j].TierRank()
	})

	out := make([][]*models.KnowledgeItem, 0, len(types))
	for _, t := range types {
		out = append(out, grouped[t])
	}
	return out
}

// matchIntents handles exact-purpose triggers such as greetings. Patterns
// shorter than MinPatternLength runes never trigger; the bidirectional
// substring rule makes short patterns too permissive otherwise. First
// match wins.
func (s *MatchService) matchIntents(
	tier []*models.KnowledgeItem,
	normalized string,
	variants []string,
	tone models.Tone,
	date *taxdate.ExtractedDate,
	reason taxdate.AmendmentReason,
) models.MatchResult {
	for _, item := range tier {
		if s.excluded(item, normalized, variants) {
			continue
		}
		for _, pattern := range item.Keywords {
			p := NormalizeText(pattern)
			if utf8.RuneCountInString(p) < s.cfg.MinPatternLength {
				continue
			}
			for _, v := range variants {
				if v == "" {
					continue
				}
				if strings.Contains(v, p) || strings.Contains(p, v) {
					return s.itemResult(item, 0, tone, date, reason)
				}
			}
		}
	}
	return models.MatchResult{}
}

// matchCases scores scenario items: +1 per matched pattern, +2 more for
// high-priority items and +1 for mid-priority ones. Any positive score wins
// the tier; ties keep the earliest item.
func (s *MatchService) matchCases(
	tier []*models.KnowledgeItem,
	normalized string,
	variants []string,
	tone models.Tone,
	date *taxdate.ExtractedDate,
	reason taxdate.AmendmentReason,
) models.MatchResult {
	var best *models.KnowledgeItem
	bestScore := 0

	for _, item := range tier {
		if s.excluded(item, normalized, variants) {
			continue
		}
		score := 0
		for _, pattern := range item.Keywords {
			if !matchesEitherDirection(NormalizeText(pattern), variants) {
				continue
			}
			score++
			switch {
			case item.Priority >= 8:
				score += 2
			case item.Priority >= 5:
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = item
		}
	}

	if best == nil {
		return models.MatchResult{}
	}
	return s.itemResult(best, bestScore, tone, date, reason)
}

// matchFirst is the first-match rule of the knowledge, error and Q&A tiers:
// the first item whose keyword set intersects the expanded query wins.
func (s *MatchService) matchFirst(
	tier []*models.KnowledgeItem,
	normalized string,
	variants []string,
	tone models.Tone,
	date *taxdate.ExtractedDate,
	reason taxdate.AmendmentReason,
) models.MatchResult {
	for _, item := range tier {
		if s.excluded(item, normalized, variants) {
			continue
		}
		for _, kw := range item.Keywords {
			if matchesEitherDirection(NormalizeText(kw), variants) {
				return s.itemResult(item, 0, tone, date, reason)
			}
		}
	}
	return models.MatchResult{}
}

// excluded applies the negative-keyword rule before any scoring: one hit in
// the normalized query or any expanded variant disqualifies the item
// outright, no matter how high it would score.
func (s *MatchService) excluded(item *models.KnowledgeItem, normalized string, variants []string) bool {
	for _, neg := range item.NegativeKeywords {
		n := NormalizeText(neg)
		if n == "" {
			continue
		}
		if strings.Contains(normalized, n) {
			return true
		}
		for _, v := range variants {
			if strings.Contains(v, n) {
				return true
			}
		}
	}
	return false
}

func (s *MatchService) itemResult(
	item *models.KnowledgeItem,
	score int,
	tone models.Tone,
	date *taxdate.ExtractedDate,
	reason taxdate.AmendmentReason,
) models.MatchResult {
	return models.MatchResult{
		Found:             true,
		Response:          RenderResponse(item.Response(tone), date, reason),
		RelatedGuides:     guidesOrEmpty(item.RelatedGuides),
		FollowUpQuestions: sliceOrEmpty(item.FollowUpQuestions),
		RelatedQuestions:  sliceOrEmpty(item.RelatedQuestions),
		Score:             score,
	}
}

func fallbackResult(score int) models.MatchResult {
	return models.MatchResult{
		RelatedGuides:     []models.RelatedGuide{},
		FollowUpQuestions: []string{},
		RelatedQuestions:  []string{},
		Score:             score,
		RequiresAI:        true,
	}
}

// matchesAnyVariant reports whether the keyword occurs inside any expanded
// query variant.
func matchesAnyVariant(keyword string, variants []string) bool {
	if keyword == "" {
		return false
	}
	for _, v := range variants {
		if strings.Contains(v, keyword) {
			return true
		}
	}
	return false
}

// matchesEitherDirection additionally accepts the query variant occurring
// inside the keyword, so short questions still hit long patterns.
func matchesEitherDirection(keyword string, variants []string) bool {
	if keyword == "" {
		return false
	}
	for _, v := range variants {
		if v == "" {
			continue
		}
		if strings.Contains(v, keyword) || strings.Contains(keyword, v) {
			return true
		}
	}
	return false
}

func guidesOrEmpty(guides []models.RelatedGuide) []models.RelatedGuide {
	if guides == nil {
		return []models.RelatedGuide{}
	}
	return guides
}

func sliceOrEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
