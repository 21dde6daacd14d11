package domain

import "time"

// DummyCampaign é o registro de uma campanha dummy criada para aquecer uma
// conta nova. A chave natural é (account_id, campaign_id).
type DummyCampaign struct {
	ID               string             `json:"id"`
	AccountID        string             `json:"accountId"`
	CampaignID       string             `json:"campaignId"`
	CampaignName     string             `json:"campaignName"`
	BudgetID         string             `json:"budgetId"`
	TemplateName     string             `json:"templateName"`
	CreatedAt        time.Time          `json:"createdAt"`
	LastChecked      *time.Time         `json:"lastChecked,omitempty"`
	TotalSpentMicros int64              `json:"totalSpentMicros"`
	IsReadyForReal   bool               `json:"isReadyForReal"`
	History          []PerformanceEntry `json:"performanceHistory,omitempty"`
}

// PerformanceEntry é uma linha diária do histórico de performance.
// Nunca existe mais de uma entrada por data.
type PerformanceEntry struct {
	Date        string `json:"date"` // YYYY-MM-DD
	SpentMicros int64  `json:"spentMicros"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

// SpentSince soma os gastos das entradas com data >= cutoff (YYYY-MM-DD).
// As datas em formato ISO permitem comparação lexicográfica direta.
func (d *DummyCampaign) SpentSince(cutoff string) int64 {
	var total int64
	for _, e := range d.History {
		if e.Date >= cutoff {
			total += e.SpentMicros
		}
	}
	return total
}

// ReadyAccount é o resumo por conta da agregação "pronta para campanha real"
type ReadyAccount struct {
	AccountID           string          `json:"accountId"`
	AccountName         string          `json:"accountName,omitempty"`
	CampaignCount       int             `json:"campaignCount"`
	TotalSpentLast7Days float64         `json:"totalSpentLast7Days"` // em euros
	DummyCampaigns      []ReadyCampaign `json:"dummyCampaigns"`
}

// ReadyCampaign é uma campanha dummy dentro do resumo de conta pronta
type ReadyCampaign struct {
	CampaignID     string  `json:"campaignId"`
	CampaignName   string  `json:"campaignName"`
	SpentLast7Days float64 `json:"spentLast7Days"` // em euros
	TemplateName   string  `json:"templateName"`
}

// ReadyCriteria descreve os critérios usados na agregação de contas prontas
type ReadyCriteria struct {
	MinSpendLast7Days float64          `json:"minSpendLast7Days"` // em euros
	TrailingDays      int              `json:"trailingDays"`
	Policy            DeploymentPolicy `json:"policy"`
}

// ReadyAccountsResult é a resposta da agregação de contas prontas para
// campanha real
type ReadyAccountsResult struct {
	ReadyAccounts      []ReadyAccount `json:"readyAccounts"`
	TotalReadyAccounts int            `json:"totalReadyAccounts"`
	Criteria           ReadyCriteria  `json:"criteria"`
}
