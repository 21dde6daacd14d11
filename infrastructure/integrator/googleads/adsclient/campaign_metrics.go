package adsclient

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
)

type metricsRow struct {
	Segments struct {
		Date string `json:"date"`
	} `json:"segments"`
	Metrics struct {
		CostMicros  string `json:"costMicros"`
		Impressions string `json:"impressions"`
		Clicks      string `json:"clicks"`
	} `json:"metrics"`
}

// CampaignDailyMetrics retorna as métricas diárias de uma campanha dentro do
// intervalo de datas (inclusive).
func (c *GoogleAdsClient) CampaignDailyMetrics(customerID, campaignID, startDate, endDate string) ([]gadomain.DailyMetrics, error) {
	query := fmt.Sprintf(`
		SELECT
			segments.date,
			metrics.cost_micros,
			metrics.impressions,
			metrics.clicks
		FROM campaign
		WHERE campaign.id = %s
			AND segments.date BETWEEN '%s' AND '%s'
		ORDER BY segments.date ASC`, campaignID, startDate, endDate)

	results, err := c.search(customerID, query)
	if err != nil {
		return nil, err
	}

	metrics := make([]gadomain.DailyMetrics, 0, len(results))

	for _, raw := range results {
		var row metricsRow
		if err := json.Unmarshal(raw, &row); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar linha de métricas")
			return nil, err
		}

		cost, err := parseInt64(row.Metrics.CostMicros)
		if err != nil {
			return nil, fmt.Errorf("custo do dia %s: %w", row.Segments.Date, err)
		}
		impressions, err := parseInt64(row.Metrics.Impressions)
		if err != nil {
			return nil, fmt.Errorf("impressões do dia %s: %w", row.Segments.Date, err)
		}
		clicks, err := parseInt64(row.Metrics.Clicks)
		if err != nil {
			return nil, fmt.Errorf("cliques do dia %s: %w", row.Segments.Date, err)
		}

		metrics = append(metrics, gadomain.DailyMetrics{
			Date:        row.Segments.Date,
			CostMicros:  cost,
			Impressions: impressions,
			Clicks:      clicks,
		})
	}

	return metrics, nil
}

// AccountSpendMicros retorna o gasto total da conta no intervalo de datas
func (c *GoogleAdsClient) AccountSpendMicros(customerID, startDate, endDate string) (int64, error) {
	query := fmt.Sprintf(`
		SELECT metrics.cost_micros
		FROM customer
		WHERE segments.date BETWEEN '%s' AND '%s'`, startDate, endDate)

	results, err := c.search(customerID, query)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, raw := range results {
		var row metricsRow
		if err := json.Unmarshal(raw, &row); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar linha de métricas")
			return 0, err
		}
		cost, err := parseInt64(row.Metrics.CostMicros)
		if err != nil {
			return 0, err
		}
		total += cost
	}

	return total, nil
}
