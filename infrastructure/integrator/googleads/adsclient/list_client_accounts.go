package adsclient

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
)

const listClientAccountsQuery = `
	SELECT
		customer_client.id,
		customer_client.descriptive_name,
		customer_client.currency_code,
		customer_client.time_zone,
		customer_client.status,
		customer_client.test_account,
		customer_client.level,
		customer_client.manager
	FROM customer_client
	WHERE customer_client.level <= 1`

type customerClientRow struct {
	CustomerClient struct {
		ID              string `json:"id"`
		DescriptiveName string `json:"descriptiveName"`
		CurrencyCode    string `json:"currencyCode"`
		TimeZone        string `json:"timeZone"`
		Status          string `json:"status"`
		TestAccount     bool   `json:"testAccount"`
		Level           string `json:"level"`
		Manager         bool   `json:"manager"`
	} `json:"customerClient"`
}

// ListClientAccounts lista as contas de cliente diretamente abaixo da MCC.
// Contas manager intermediárias são ignoradas.
func (c *GoogleAdsClient) ListClientAccounts(mccID string) ([]gadomain.CustomerClient, error) {
	results, err := c.search(mccID, listClientAccountsQuery)
	if err != nil {
		return nil, err
	}

	accounts := make([]gadomain.CustomerClient, 0, len(results))

	for _, raw := range results {
		var row customerClientRow
		if err := json.Unmarshal(raw, &row); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar linha de customer_client")
			return nil, err
		}

		if row.CustomerClient.Manager {
			continue
		}

		level, err := parseInt(row.CustomerClient.Level)
		if err != nil {
			return nil, fmt.Errorf("nível da conta %s: %w", row.CustomerClient.ID, err)
		}

		accounts = append(accounts, gadomain.CustomerClient{
			ID:          row.CustomerClient.ID,
			Name:        row.CustomerClient.DescriptiveName,
			Currency:    row.CustomerClient.CurrencyCode,
			TimeZone:    row.CustomerClient.TimeZone,
			Status:      row.CustomerClient.Status,
			TestAccount: row.CustomerClient.TestAccount,
			Level:       level,
			Manager:     row.CustomerClient.Manager,
		})
	}

	return accounts, nil
}
