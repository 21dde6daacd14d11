package googleads

import (
	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
)

// Integrator expõe as operações do Google Ads já traduzidas para o domínio
type Integrator interface {
	ListClientAccounts() ([]*domain.CachedAccount, error)
	CountCampaigns(accountID string) (int, error)
	ListCampaigns(accountID string) ([]gadomain.Campaign, error)
	CampaignDailyMetrics(accountID, campaignID string, dateRange domain.DateRange) ([]domain.PerformanceEntry, error)
	AccountSpendMicros(accountID string, dateRange domain.DateRange) (int64, error)
	CreateCampaign(accountID string, spec *gadomain.CampaignSpec) (*gadomain.CreatedCampaign, error)
}

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// ListClientAccounts lista as contas sob a MCC configurada, já com o status
// normalizado e a flag de suspensão derivada.
func (s *GoogleAdsIntegrator) ListClientAccounts() ([]*domain.CachedAccount, error) {
	mccID := s.cfg.GoogleAds.MccID

	clients, err := s.Client.ListClientAccounts(mccID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"mcc_id": mccID,
			"error":  err.Error(),
		}).Error("accounts: failed to list client accounts from API")
		return nil, err
	}

	accounts := make([]*domain.CachedAccount, 0, len(clients))

	for _, client := range clients {
		status := domain.NormalizeStatusText(client.Status)

		accounts = append(accounts, &domain.CachedAccount{
			MccID:       mccID,
			AccountID:   client.ID,
			Name:        client.Name,
			Currency:    client.Currency,
			TimeZone:    client.TimeZone,
			Status:      status,
			TestAccount: client.TestAccount,
			Level:       client.Level,
			IsSuspended: domain.IsSuspendedStatus(status),
		})
	}

	logrus.WithFields(logrus.Fields{
		"mcc_id": mccID,
		"total":  len(accounts),
	}).Debug("accounts: successfully listed client accounts")

	return accounts, nil
}

func (s *GoogleAdsIntegrator) CountCampaigns(accountID string) (int, error) {
	count, err := s.Client.CountCampaigns(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("campaigns: failed to count campaigns")
		return 0, err
	}

	return count, nil
}

func (s *GoogleAdsIntegrator) ListCampaigns(accountID string) ([]gadomain.Campaign, error) {
	campaigns, err := s.Client.ListCampaigns(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("campaigns: failed to list campaigns")
		return nil, err
	}

	return campaigns, nil
}

func (s *GoogleAdsIntegrator) CampaignDailyMetrics(accountID, campaignID string, dateRange domain.DateRange) ([]domain.PerformanceEntry, error) {
	metrics, err := s.Client.CampaignDailyMetrics(accountID, campaignID, dateRange.StartDate, dateRange.EndDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("campaigns: failed to get campaign metrics")
		return nil, err
	}

	entries := make([]domain.PerformanceEntry, 0, len(metrics))
	for _, m := range metrics {
		entries = append(entries, domain.PerformanceEntry{
			Date:        m.Date,
			SpentMicros: m.CostMicros,
			Impressions: m.Impressions,
			Clicks:      m.Clicks,
		})
	}

	return entries, nil
}

func (s *GoogleAdsIntegrator) AccountSpendMicros(accountID string, dateRange domain.DateRange) (int64, error) {
	total, err := s.Client.AccountSpendMicros(accountID, dateRange.StartDate, dateRange.EndDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("spend: failed to get account spend")
		return 0, err
	}

	return total, nil
}

func (s *GoogleAdsIntegrator) CreateCampaign(accountID string, spec *gadomain.CampaignSpec) (*gadomain.CreatedCampaign, error) {
	created, err := s.Client.CreateSearchCampaign(accountID, spec)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":    accountID,
			"campaign_name": spec.Name,
			"error":         err.Error(),
		}).Error("campaigns: failed to create campaign")
		return nil, err
	}

	return created, nil
}
