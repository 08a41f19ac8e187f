package repository

import (
	"context"
	"fmt"

	"billy-chat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// KnowledgeRepository reads and writes the chat reference data. The serving
// path only reads, once at startup; writes happen from the seed command.
type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

const itemColumns = "id, type, category, title, keywords, negative_keywords, priority, " +
	"date_template, responses, related_guides, follow_up_questions, related_questions, " +
	"created_at, updated_at"

// ListItems returns every knowledge item in insertion order. The matcher's
// tie-break keeps the first item among equal scores, so the order here is
// part of the matching behavior.
func (r *KnowledgeRepository) ListItems(ctx context.Context) ([]models.KnowledgeItem, error) {
	query := squirrel.Select(itemColumns).
		From("knowledge_items").
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge items: %w", err)
	}
	defer rows.Close()

	var items []models.KnowledgeItem
	for rows.Next() {
		var item models.KnowledgeItem
		if err := rows.Scan(
			&item.ID, &item.Type, &item.Category, &item.Title,
			&item.Keywords, &item.NegativeKeywords, &item.Priority,
			&item.DateTemplate, &item.Responses, &item.RelatedGuides,
			&item.FollowUpQuestions, &item.RelatedQuestions,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// ListItemsByType returns items of one retrieval tier, optionally filtered
// by category. Used by the FAQ listing.
func (r *KnowledgeRepository) ListItemsByType(ctx context.Context, itemType models.KnowledgeType, category string) ([]models.KnowledgeItem, error) {
	query := squirrel.Select(itemColumns).
		From("knowledge_items").
		Where(squirrel.Eq{"type": itemType}).
		OrderBy("priority DESC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s items: %w", itemType, err)
	}
	defer rows.Close()

	var items []models.KnowledgeItem
	for rows.Next() {
		var item models.KnowledgeItem
		if err := rows.Scan(
			&item.ID, &item.Type, &item.Category, &item.Title,
			&item.Keywords, &item.NegativeKeywords, &item.Priority,
			&item.DateTemplate, &item.Responses, &item.RelatedGuides,
			&item.FollowUpQuestions, &item.RelatedQuestions,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// CreateItem inserts one knowledge item.
func (r *KnowledgeRepository) CreateItem(ctx context.Context, item *models.KnowledgeItem) error {
	query := squirrel.Insert("knowledge_items").
		Columns("id", "type", "category", "title", "keywords", "negative_keywords",
			"priority", "date_template", "responses", "related_guides",
			"follow_up_questions", "related_questions", "created_at", "updated_at").
		Values(item.ID, item.Type, item.Category, item.Title, item.Keywords,
			item.NegativeKeywords, item.Priority, item.DateTemplate, item.Responses,
			item.RelatedGuides, item.FollowUpQuestions, item.RelatedQuestions,
			item.CreatedAt, item.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListSynonyms loads the synonym table.
func (r *KnowledgeRepository) ListSynonyms(ctx context.Context) (models.SynonymTable, error) {
	query := squirrel.Select("canonical", "alternates").
		From("synonyms").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list synonyms: %w", err)
	}
	defer rows.Close()

	table := models.SynonymTable{}
	for rows.Next() {
		var canonical string
		var alternates []string
		if err := rows.Scan(&canonical, &alternates); err != nil {
			return nil, err
		}
		table[canonical] = alternates
	}

	return table, rows.Err()
}

// CreateSynonymGroup upserts one synonym group.
func (r *KnowledgeRepository) CreateSynonymGroup(ctx context.Context, canonical string, alternates []string) error {
	query := squirrel.Insert("synonyms").
		Columns("canonical", "alternates").
		Values(canonical, alternates).
		Suffix("ON CONFLICT (canonical) DO UPDATE SET alternates = EXCLUDED.alternates").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListHolidays returns custom holiday dates as "YYYY-MM-DD" strings, merged
// into the static holiday tables at startup.
func (r *KnowledgeRepository) ListHolidays(ctx context.Context) ([]string, error) {
	query := squirrel.Select("to_char(holiday_date, 'YYYY-MM-DD')").
		From("holidays").
		OrderBy("holiday_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}

	return dates, rows.Err()
}

// CreateHoliday registers one custom holiday.
func (r *KnowledgeRepository) CreateHoliday(ctx context.Context, date, name string) error {
	query := squirrel.Insert("holidays").
		Columns("holiday_date", "name").
		Values(date, name).
		Suffix("ON CONFLICT (holiday_date) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
