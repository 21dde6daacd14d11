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

type AdScheduleRepository interface {
	Create(schedule *domain.AdScheduleTemplate) error
	Update(schedule *domain.AdScheduleTemplate) error
	Delete(id string) error
	GetByID(id string) (*domain.AdScheduleTemplate, error)
	List() ([]*domain.AdScheduleTemplate, error)
}

type adScheduleRepository struct {
	conn *postgres.Connection
}

func NewAdScheduleRepository(conn *postgres.Connection) AdScheduleRepository {
	return &adScheduleRepository{
		conn: conn,
	}
}

func (r *adScheduleRepository) Create(schedule *domain.AdScheduleTemplate) error {
	slots, err := json.Marshal(schedule.Slots)
	if err != nil {
		return fmt.Errorf("failed to serialize schedule slots: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("ad_schedule_templates").
		Columns("id", "name", "description", "slots", "created_at", "updated_at").
		Values(
			schedule.ID,
			schedule.Name,
			schedule.Description,
			slots,
			schedule.CreatedAt,
			schedule.UpdatedAt,
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

func (r *adScheduleRepository) Update(schedule *domain.AdScheduleTemplate) error {
	slots, err := json.Marshal(schedule.Slots)
	if err != nil {
		return fmt.Errorf("failed to serialize schedule slots: %w", err)
	}

	sqlQuery, args, err := squirrel.
		Update("ad_schedule_templates").
		Set("name", schedule.Name).
		Set("description", schedule.Description).
		Set("slots", slots).
		Set("updated_at", schedule.UpdatedAt).
		Where(squirrel.Eq{"id": schedule.ID}).
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
		return fmt.Errorf("ad schedule not found: %s", schedule.ID)
	}

	return nil
}

func (r *adScheduleRepository) Delete(id string) error {
	sqlQuery, args, err := squirrel.
		Delete("ad_schedule_templates").
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
		return fmt.Errorf("ad schedule not found: %s", id)
	}

	return nil
}

func (r *adScheduleRepository) GetByID(id string) (*domain.AdScheduleTemplate, error) {
	scheduleSQL, scheduleArgs, err := squirrel.
		Select("id", "name", "description", "slots", "created_at", "updated_at").
		From("ad_schedule_templates").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(scheduleSQL, scheduleArgs...)

	schedule, err := deserializeAdSchedule(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return schedule, nil
}

func (r *adScheduleRepository) List() ([]*domain.AdScheduleTemplate, error) {
	schedulesSQL, schedulesArgs, err := squirrel.
		Select("id", "name", "description", "slots", "created_at", "updated_at").
		From("ad_schedule_templates").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(schedulesSQL, schedulesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	schedules := make([]*domain.AdScheduleTemplate, 0)

	for rows.Next() {
		schedule, err := deserializeAdSchedule(rows.Scan)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return schedules, nil
}

func deserializeAdSchedule(scan func(dest ...interface{}) error) (*domain.AdScheduleTemplate, error) {
	schedule := &domain.AdScheduleTemplate{}
	var slots []byte

	if err := scan(
		&schedule.ID,
		&schedule.Name,
		&schedule.Description,
		&slots,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(slots, &schedule.Slots); err != nil {
		return nil, fmt.Errorf("failed to deserialize schedule slots: %w", err)
	}

	return schedule, nil
}
