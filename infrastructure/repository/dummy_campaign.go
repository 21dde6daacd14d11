package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/mcc-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
)

const (
	dummyCampaignsTable   = "dummy_campaigns dc"
	dummyPerformanceTable = "dummy_campaign_performance dp"
)

type DummyCampaignRepository interface {
	Create(campaign *domain.DummyCampaign) error
	GetByID(id string) (*domain.DummyCampaign, error)
	GetByAccountAndCampaign(accountID, campaignID string) (*domain.DummyCampaign, error)
	ListAll() ([]*domain.DummyCampaign, error)
	ListByAccount(accountID string) ([]*domain.DummyCampaign, error)
	UpsertPerformance(dummyCampaignID string, entries []domain.PerformanceEntry) error
	UpdateTracking(id string, lastChecked time.Time, totalSpentMicros int64, isReadyForReal bool) error
	Delete(id string) error
	DeleteByAccounts(accountIDs []string) (int, error)
}

type dummyCampaignRepository struct {
	conn *postgres.Connection
}

func NewDummyCampaignRepository(conn *postgres.Connection) DummyCampaignRepository {
	return &dummyCampaignRepository{
		conn: conn,
	}
}

func (r *dummyCampaignRepository) Create(campaign *domain.DummyCampaign) error {
	query := squirrel.StatementBuilder.
		Insert("dummy_campaigns").
		Columns("id", "account_id", "campaign_id", "campaign_name", "budget_id", "template_name", "created_at").
		Values(
			campaign.ID,
			campaign.AccountID,
			campaign.CampaignID,
			campaign.CampaignName,
			campaign.BudgetID,
			campaign.TemplateName,
			campaign.CreatedAt,
		).
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

func (r *dummyCampaignRepository) GetByID(id string) (*domain.DummyCampaign, error) {
	return r.getCampaign(squirrel.Eq{"dc.id": id})
}

func (r *dummyCampaignRepository) GetByAccountAndCampaign(accountID, campaignID string) (*domain.DummyCampaign, error) {
	return r.getCampaign(squirrel.Eq{"dc.account_id": accountID, "dc.campaign_id": campaignID})
}

func (r *dummyCampaignRepository) getCampaign(whereClause squirrel.Sqlizer) (*domain.DummyCampaign, error) {
	campaignSQL, campaignArgs, err := squirrel.
		Select("dc.id, dc.account_id, dc.campaign_id, dc.campaign_name, dc.budget_id, dc.template_name, dc.created_at, dc.last_checked, dc.total_spent_micros, dc.is_ready_for_real").
		From(dummyCampaignsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(campaignSQL, campaignArgs...)

	campaign, err := deserializeDummyCampaign(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	history, err := r.listPerformance(campaign.ID)
	if err != nil {
		return nil, err
	}
	campaign.History = history

	return campaign, nil
}

func (r *dummyCampaignRepository) ListAll() ([]*domain.DummyCampaign, error) {
	return r.listCampaigns(nil)
}

func (r *dummyCampaignRepository) ListByAccount(accountID string) ([]*domain.DummyCampaign, error) {
	return r.listCampaigns(squirrel.Eq{"dc.account_id": accountID})
}

func (r *dummyCampaignRepository) listCampaigns(whereClause squirrel.Sqlizer) ([]*domain.DummyCampaign, error) {
	queryBuilder := squirrel.
		Select("dc.id, dc.account_id, dc.campaign_id, dc.campaign_name, dc.budget_id, dc.template_name, dc.created_at, dc.last_checked, dc.total_spent_micros, dc.is_ready_for_real").
		From(dummyCampaignsTable).
		OrderBy("dc.account_id ASC, dc.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if whereClause != nil {
		queryBuilder = queryBuilder.Where(whereClause)
	}

	campaignsSQL, campaignsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(campaignsSQL, campaignsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]*domain.DummyCampaign, 0)
	byID := make(map[string]*domain.DummyCampaign)

	for rows.Next() {
		campaign, err := deserializeDummyCampaign(rows.Scan)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
		byID[campaign.ID] = campaign
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	if len(campaigns) == 0 {
		return campaigns, nil
	}

	// Carrega o histórico de todas as campanhas em uma única query
	if err := r.attachPerformance(byID); err != nil {
		return nil, err
	}

	return campaigns, nil
}

// UpsertPerformance grava o histórico diário garantindo no máximo uma
// entrada por data.
func (r *dummyCampaignRepository) UpsertPerformance(dummyCampaignID string, entries []domain.PerformanceEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("dummy_campaign_performance").
		Columns("dummy_campaign_id", "date", "spent_micros", "impressions", "clicks").
		PlaceholderFormat(squirrel.Dollar)

	for _, entry := range entries {
		query = query.Values(
			dummyCampaignID,
			entry.Date,
			entry.SpentMicros,
			entry.Impressions,
			entry.Clicks,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (dummy_campaign_id, date) DO UPDATE SET
				spent_micros = EXCLUDED.spent_micros,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks
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

func (r *dummyCampaignRepository) UpdateTracking(id string, lastChecked time.Time, totalSpentMicros int64, isReadyForReal bool) error {
	sqlQuery, args, err := squirrel.
		Update("dummy_campaigns").
		Set("last_checked", lastChecked).
		Set("total_spent_micros", totalSpentMicros).
		Set("is_ready_for_real", isReadyForReal).
		Where(squirrel.Eq{"id": id}).
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
		return fmt.Errorf("dummy campaign not found: %s", id)
	}

	return nil
}

func (r *dummyCampaignRepository) Delete(id string) error {
	sqlQuery, args, err := squirrel.
		Delete("dummy_campaigns").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// DeleteByAccounts remove os registros de campanhas dummy de contas que não
// existem mais. O histórico é removido em cascata.
func (r *dummyCampaignRepository) DeleteByAccounts(accountIDs []string) (int, error) {
	if len(accountIDs) == 0 {
		return 0, nil
	}

	sqlQuery, args, err := squirrel.
		Delete("dummy_campaigns").
		Where(squirrel.Eq{"account_id": accountIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

func (r *dummyCampaignRepository) listPerformance(dummyCampaignID string) ([]domain.PerformanceEntry, error) {
	perfSQL, perfArgs, err := squirrel.
		Select("dp.date", "dp.spent_micros", "dp.impressions", "dp.clicks").
		From(dummyPerformanceTable).
		Where(squirrel.Eq{"dp.dummy_campaign_id": dummyCampaignID}).
		OrderBy("dp.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(perfSQL, perfArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.PerformanceEntry, 0)

	for rows.Next() {
		var entry domain.PerformanceEntry
		var date time.Time
		if err := rows.Scan(&date, &entry.SpentMicros, &entry.Impressions, &entry.Clicks); err != nil {
			return nil, err
		}
		entry.Date = date.Format("2006-01-02")
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return entries, nil
}

func (r *dummyCampaignRepository) attachPerformance(byID map[string]*domain.DummyCampaign) error {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	perfSQL, perfArgs, err := squirrel.
		Select("dp.dummy_campaign_id", "dp.date", "dp.spent_micros", "dp.impressions", "dp.clicks").
		From(dummyPerformanceTable).
		Where(squirrel.Eq{"dp.dummy_campaign_id": ids}).
		OrderBy("dp.dummy_campaign_id ASC, dp.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.conn.Query(perfSQL, perfArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var campaignID string
		var entry domain.PerformanceEntry
		var date time.Time
		if err := rows.Scan(&campaignID, &date, &entry.SpentMicros, &entry.Impressions, &entry.Clicks); err != nil {
			return err
		}
		entry.Date = date.Format("2006-01-02")

		if campaign, ok := byID[campaignID]; ok {
			campaign.History = append(campaign.History, entry)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return nil
}

func deserializeDummyCampaign(scan func(dest ...interface{}) error) (*domain.DummyCampaign, error) {
	campaign := &domain.DummyCampaign{}

	if err := scan(
		&campaign.ID,
		&campaign.AccountID,
		&campaign.CampaignID,
		&campaign.CampaignName,
		&campaign.BudgetID,
		&campaign.TemplateName,
		&campaign.CreatedAt,
		&campaign.LastChecked,
		&campaign.TotalSpentMicros,
		&campaign.IsReadyForReal,
	); err != nil {
		return nil, err
	}

	return campaign, nil
}
