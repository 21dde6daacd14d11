package adsclient

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
)

const listCampaignsQuery = `
	SELECT
		campaign.id,
		campaign.name,
		campaign.status,
		campaign_budget.amount_micros
	FROM campaign
	WHERE campaign.status != 'REMOVED'`

// A contagem serve só para distinguir zero de não-zero e dimensionar lotes,
// então o limite mantém a consulta barata em contas grandes.
const countCampaignsQuery = `SELECT campaign.id FROM campaign LIMIT 500`

type campaignRow struct {
	Campaign struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"campaign"`
	CampaignBudget struct {
		AmountMicros string `json:"amountMicros"`
	} `json:"campaignBudget"`
}

// ListCampaigns retorna as campanhas não removidas da conta com o valor de
// orçamento diário em micros.
func (c *GoogleAdsClient) ListCampaigns(customerID string) ([]gadomain.Campaign, error) {
	results, err := c.search(customerID, listCampaignsQuery)
	if err != nil {
		return nil, err
	}

	campaigns := make([]gadomain.Campaign, 0, len(results))

	for _, raw := range results {
		var row campaignRow
		if err := json.Unmarshal(raw, &row); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar linha de campanha")
			return nil, err
		}

		budget, err := parseInt64(row.CampaignBudget.AmountMicros)
		if err != nil {
			return nil, fmt.Errorf("orçamento da campanha %s: %w", row.Campaign.ID, err)
		}

		campaigns = append(campaigns, gadomain.Campaign{
			ID:                 row.Campaign.ID,
			Name:               row.Campaign.Name,
			Status:             row.Campaign.Status,
			BudgetAmountMicros: budget,
		})
	}

	return campaigns, nil
}

// CountCampaigns retorna a quantidade de campanhas da conta, limitada a 500
func (c *GoogleAdsClient) CountCampaigns(customerID string) (int, error) {
	results, err := c.search(customerID, countCampaignsQuery)
	if err != nil {
		return 0, err
	}

	return len(results), nil
}

// parseInt64 trata campo ausente como zero; valor presente mas malformado é
// erro, nunca silenciosamente zero.
func parseInt64(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("valor numérico inválido na resposta da API: %q", value)
	}

	return parsed, nil
}

func parseInt(value string) (int, error) {
	parsed, err := parseInt64(value)
	return int(parsed), err
}
