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

type CacheMetaRepository interface {
	Get(mccID string, metaType domain.CacheMetaType) (*domain.CacheMeta, error)
	Upsert(meta *domain.CacheMeta) error
	ListByMcc(mccID string) ([]*domain.CacheMeta, error)
}

type cacheMetaRepository struct {
	conn *postgres.Connection
}

func NewCacheMetaRepository(conn *postgres.Connection) CacheMetaRepository {
	return &cacheMetaRepository{
		conn: conn,
	}
}

func (r *cacheMetaRepository) Get(mccID string, metaType domain.CacheMetaType) (*domain.CacheMeta, error) {
	metaSQL, metaArgs, err := squirrel.
		Select("mcc_id", "type", "status", "started_at", "completed_at", "error", "counts").
		From("cache_meta").
		Where(squirrel.Eq{"mcc_id": mccID, "type": metaType}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(metaSQL, metaArgs...)

	meta, err := deserializeCacheMeta(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return meta, nil
}

func (r *cacheMetaRepository) ListByMcc(mccID string) ([]*domain.CacheMeta, error) {
	metaSQL, metaArgs, err := squirrel.
		Select("mcc_id", "type", "status", "started_at", "completed_at", "error", "counts").
		From("cache_meta").
		Where(squirrel.Eq{"mcc_id": mccID}).
		OrderBy("type ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(metaSQL, metaArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	metas := make([]*domain.CacheMeta, 0)

	for rows.Next() {
		meta, err := deserializeCacheMeta(rows.Scan)
		if err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return metas, nil
}

func (r *cacheMetaRepository) Upsert(meta *domain.CacheMeta) error {
	var counts interface{}
	if meta.Counts != nil {
		serialized, err := json.Marshal(meta.Counts)
		if err != nil {
			return fmt.Errorf("failed to serialize counts: %w", err)
		}
		counts = serialized
	}

	query := squirrel.StatementBuilder.
		Insert("cache_meta").
		Columns("mcc_id", "type", "status", "started_at", "completed_at", "error", "counts").
		Values(
			meta.MccID,
			meta.Type,
			meta.Status,
			meta.StartedAt,
			meta.CompletedAt,
			meta.Error,
			counts,
		).
		Suffix(`
			ON CONFLICT (mcc_id, type) DO UPDATE SET
				status = EXCLUDED.status,
				started_at = EXCLUDED.started_at,
				completed_at = EXCLUDED.completed_at,
				error = EXCLUDED.error,
				counts = EXCLUDED.counts
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
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

func deserializeCacheMeta(scan func(dest ...interface{}) error) (*domain.CacheMeta, error) {
	meta := &domain.CacheMeta{}
	var counts []byte
	var errMsg sql.NullString

	if err := scan(
		&meta.MccID,
		&meta.Type,
		&meta.Status,
		&meta.StartedAt,
		&meta.CompletedAt,
		&errMsg,
		&counts,
	); err != nil {
		return nil, err
	}

	if errMsg.Valid {
		meta.Error = errMsg.String
	}

	if len(counts) > 0 {
		if err := json.Unmarshal(counts, &meta.Counts); err != nil {
			return nil, fmt.Errorf("failed to deserialize counts: %w", err)
		}
	}

	return meta, nil
}
