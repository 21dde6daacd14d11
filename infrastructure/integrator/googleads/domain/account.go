package domain

// CustomerClient é a linha de customer_client retornada pela listagem da MCC
type CustomerClient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Currency    string `json:"currency"`
	TimeZone    string `json:"timeZone"`
	Status      string `json:"status"` // enum textual da API (ENABLED, SUSPENDED, ...)
	TestAccount bool   `json:"testAccount"`
	Level       int    `json:"level"`
	Manager     bool   `json:"manager"`
}

// Campaign é a projeção de campanha usada nas consultas GAQL
type Campaign struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Status             string `json:"status"`
	BudgetAmountMicros int64  `json:"budgetAmountMicros"`
}

// DailyMetrics é uma linha de métricas segmentada por data
type DailyMetrics struct {
	Date        string `json:"date"` // YYYY-MM-DD
	CostMicros  int64  `json:"costMicros"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

// CreatedCampaign é o resultado da criação de uma campanha completa
type CreatedCampaign struct {
	CampaignID   string `json:"campaignId"`
	CampaignName string `json:"campaignName"`
	BudgetID     string `json:"budgetId"`
	AdGroupID    string `json:"adGroupId"`
	AdID         string `json:"adId"`
}
