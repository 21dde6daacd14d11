package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/mcc-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
)

const cachedAccountsTable = "cached_accounts ca"

const cachedAccountColumns = "ca.mcc_id, ca.account_id, ca.name, ca.currency, ca.time_zone, " +
	"ca.status, ca.test_account, ca.level, ca.is_suspended, ca.campaign_count, " +
	"ca.campaign_count_updated_at, ca.has_real_campaign_over20, ca.last_real_check_at"

type AccountCacheRepository interface {
	SaveOrUpdateAccounts(accounts []*domain.CachedAccount) error
	GetAccount(mccID, accountID string) (*domain.CachedAccount, error)
	ListAccounts(mccID string) ([]*domain.CachedAccount, error)
	ListSuspended(mccID string) ([]*domain.CachedAccount, error)
	ListZeroCampaignAccounts(mccID string) ([]*domain.CachedAccount, error)
	UpdateCampaignCount(mccID, accountID string, count int, checkedAt time.Time) error
	UpdateRealOver20(mccID, accountID string, hasReal bool, checkedAt time.Time) error
	PruneMissing(mccID string, presentAccountIDs []string) (int, error)
}

type accountCacheRepository struct {
	conn *postgres.Connection
}

func NewAccountCacheRepository(conn *postgres.Connection) AccountCacheRepository {
	return &accountCacheRepository{
		conn: conn,
	}
}

// SaveOrUpdateAccounts grava o snapshot de contas vindo do Google Ads.
// Os campos calculados localmente (contagem de campanhas, flag over20)
// são preservados em caso de conflito.
func (r *accountCacheRepository) SaveOrUpdateAccounts(accounts []*domain.CachedAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("cached_accounts").
		Columns("mcc_id", "account_id", "name", "currency", "time_zone", "status", "test_account", "level", "is_suspended").
		PlaceholderFormat(squirrel.Dollar)

	for _, account := range accounts {
		query = query.Values(
			account.MccID,
			account.AccountID,
			account.Name,
			account.Currency,
			account.TimeZone,
			account.Status,
			account.TestAccount,
			account.Level,
			account.IsSuspended,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (mcc_id, account_id) DO UPDATE SET
				name = EXCLUDED.name,
				currency = EXCLUDED.currency,
				time_zone = EXCLUDED.time_zone,
				status = EXCLUDED.status,
				test_account = EXCLUDED.test_account,
				level = EXCLUDED.level,
				is_suspended = EXCLUDED.is_suspended,
				updated_at = NOW()
		`)

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

func (r *accountCacheRepository) GetAccount(mccID, accountID string) (*domain.CachedAccount, error) {
	accountSQL, accountArgs, err := squirrel.
		Select(cachedAccountColumns).
		From(cachedAccountsTable).
		Where(squirrel.Eq{"ca.mcc_id": mccID, "ca.account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(accountSQL, accountArgs...)

	acc, err := deserializeCachedAccountRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (r *accountCacheRepository) ListAccounts(mccID string) ([]*domain.CachedAccount, error) {
	return r.listAccounts(squirrel.Eq{"ca.mcc_id": mccID})
}

func (r *accountCacheRepository) ListSuspended(mccID string) ([]*domain.CachedAccount, error) {
	return r.listAccounts(squirrel.Eq{"ca.mcc_id": mccID, "ca.is_suspended": true})
}

// ListZeroCampaignAccounts retorna contas ativas com contagem de campanhas
// conhecida e igual a zero
func (r *accountCacheRepository) ListZeroCampaignAccounts(mccID string) ([]*domain.CachedAccount, error) {
	return r.listAccounts(squirrel.And{
		squirrel.Eq{"ca.mcc_id": mccID, "ca.is_suspended": false, "ca.campaign_count": 0},
	})
}

func (r *accountCacheRepository) listAccounts(whereClause squirrel.Sqlizer) ([]*domain.CachedAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select(cachedAccountColumns).
		From(cachedAccountsTable).
		Where(whereClause).
		OrderBy("ca.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.CachedAccount, 0)

	for rows.Next() {
		acc, err := deserializeCachedAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func (r *accountCacheRepository) UpdateCampaignCount(mccID, accountID string, count int, checkedAt time.Time) error {
	return r.updateAccount(mccID, accountID, map[string]interface{}{
		"campaign_count":            count,
		"campaign_count_updated_at": checkedAt,
	})
}

func (r *accountCacheRepository) UpdateRealOver20(mccID, accountID string, hasReal bool, checkedAt time.Time) error {
	return r.updateAccount(mccID, accountID, map[string]interface{}{
		"has_real_campaign_over20": hasReal,
		"last_real_check_at":       checkedAt,
	})
}

func (r *accountCacheRepository) updateAccount(mccID, accountID string, fields map[string]interface{}) error {
	queryBuilder := squirrel.
		Update("cached_accounts").
		Where(squirrel.Eq{"mcc_id": mccID, "account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar)

	for column, value := range fields {
		queryBuilder = queryBuilder.Set(column, value)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
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

// PruneMissing remove contas do cache que não aparecem mais na listagem da
// MCC. Retorna quantas linhas foram removidas.
func (r *accountCacheRepository) PruneMissing(mccID string, presentAccountIDs []string) (int, error) {
	queryBuilder := squirrel.
		Delete("cached_accounts").
		Where(squirrel.Eq{"mcc_id": mccID}).
		PlaceholderFormat(squirrel.Dollar)

	if len(presentAccountIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.NotEq{"account_id": presentAccountIDs})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

func deserializeCachedAccountRow(row *sql.Row) (*domain.CachedAccount, error) {
	acc := &domain.CachedAccount{}

	if err := row.Scan(
		&acc.MccID,
		&acc.AccountID,
		&acc.Name,
		&acc.Currency,
		&acc.TimeZone,
		&acc.Status,
		&acc.TestAccount,
		&acc.Level,
		&acc.IsSuspended,
		&acc.CampaignCount,
		&acc.CampaignCountUpdatedAt,
		&acc.HasRealCampaignOver20,
		&acc.LastRealCheckAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}

func deserializeCachedAccount(rows *sql.Rows) (*domain.CachedAccount, error) {
	acc := &domain.CachedAccount{}

	if err := rows.Scan(
		&acc.MccID,
		&acc.AccountID,
		&acc.Name,
		&acc.Currency,
		&acc.TimeZone,
		&acc.Status,
		&acc.TestAccount,
		&acc.Level,
		&acc.IsSuspended,
		&acc.CampaignCount,
		&acc.CampaignCountUpdatedAt,
		&acc.HasRealCampaignOver20,
		&acc.LastRealCheckAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}
