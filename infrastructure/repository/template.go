package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/mcc-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
)

type TemplateRepository interface {
	Create(template *domain.CampaignTemplate) error
	Update(template *domain.CampaignTemplate) error
	Delete(id string) error
	GetByID(id string) (*domain.CampaignTemplate, error)
	List(family domain.TemplateFamily, category domain.TemplateCategory) ([]*domain.CampaignTemplate, error)
}

type templateRepository struct {
	conn *postgres.Connection
}

func NewTemplateRepository(conn *postgres.Connection) TemplateRepository {
	return &templateRepository{
		conn: conn,
	}
}

func (r *templateRepository) Create(template *domain.CampaignTemplate) error {
	data, err := json.Marshal(template.Data)
	if err != nil {
		return fmt.Errorf("failed to serialize template data: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("campaign_templates").
		Columns("id", "name", "description", "family", "category", "data", "created_at", "updated_at").
		Values(
			template.ID,
			template.Name,
			template.Description,
			template.Family,
			nullableCategory(template.Category),
			data,
			template.CreatedAt,
			template.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *templateRepository) Update(template *domain.CampaignTemplate) error {
	data, err := json.Marshal(template.Data)
	if err != nil {
		return fmt.Errorf("failed to serialize template data: %w", err)
	}

	sqlQuery, args, err := squirrel.
		Update("campaign_templates").
		Set("name", template.Name).
		Set("description", template.Description).
		Set("family", template.Family).
		Set("category", nullableCategory(template.Category)).
		Set("data", data).
		Set("updated_at", template.UpdatedAt).
		Where(squirrel.Eq{"id": template.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("template not found: %s", template.ID)
	}

	return nil
}

func (r *templateRepository) Delete(id string) error {
	sqlQuery, args, err := squirrel.
		Delete("campaign_templates").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("template not found: %s", id)
	}

	return nil
}

func (r *templateRepository) GetByID(id string) (*domain.CampaignTemplate, error) {
	templateSQL, templateArgs, err := squirrel.
		Select("id", "name", "description", "family", "category", "data", "created_at", "updated_at").
		From("campaign_templates").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(templateSQL, templateArgs...)

	template, err := deserializeTemplate(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return template, nil
}

func (r *templateRepository) List(family domain.TemplateFamily, category domain.TemplateCategory) ([]*domain.CampaignTemplate, error) {
	queryBuilder := squirrel.
		Select("id", "name", "description", "family", "category", "data", "created_at", "updated_at").
		From("campaign_templates").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if family != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"family": family})
	}

	if category != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"category": category})
	}

	templatesSQL, templatesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(templatesSQL, templatesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.CampaignTemplate, 0)

	for rows.Next() {
		template, err := deserializeTemplate(rows.Scan)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return templates, nil
}

func deserializeTemplate(scan func(dest ...interface{}) error) (*domain.CampaignTemplate, error) {
	template := &domain.CampaignTemplate{}
	var category sql.NullString
	var data []byte

	if err := scan(
		&template.ID,
		&template.Name,
		&template.Description,
		&template.Family,
		&category,
		&data,
		&template.CreatedAt,
		&template.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if category.Valid {
		template.Category = domain.TemplateCategory(category.String)
	}

	if err := json.Unmarshal(data, &template.Data); err != nil {
		return nil, fmt.Errorf("failed to deserialize template data: %w", err)
	}

	return template, nil
}

func nullableCategory(category domain.TemplateCategory) interface{} {
	if category == "" {
		return nil
	}
	return string(category)
}
