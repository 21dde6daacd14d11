package domain

// SuspendedAccount é uma conta detectada como suspensa ou cancelada
type SuspendedAccount struct {
	AccountID        string        `json:"accountId"`
	Name             string        `json:"name"`
	Currency         string        `json:"currency"`
	TimeZone         string        `json:"timeZone"`
	Status           AccountStatus `json:"status"`
	SuspensionReason string        `json:"suspensionReason"`
	DetectedAt       string        `json:"detectedAt"`
}

// SuspendedSummary resume uma passada de detecção de contas suspensas
type SuspendedSummary struct {
	TotalSuspended int    `json:"totalSuspended"`
	Suspended      int    `json:"suspended"`
	Canceled       int    `json:"canceled"`
	DetectedAt     string `json:"detectedAt"`
}

// EligibleAccount é uma conta ENABLED com zero campanhas, elegível para
// receber uma campanha dummy
type EligibleAccount struct {
	AccountID     string `json:"accountId"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	TimeZone      string `json:"timeZone"`
	CampaignCount int    `json:"campaignCount"`
	FromCache     bool   `json:"fromCache"`
}

// EligibleResult é o resultado da listagem de contas elegíveis. A amostragem
// ao vivo é limitada; uma atualização completa roda em background.
type EligibleResult struct {
	MccID            string            `json:"mccId"`
	Accounts         []EligibleAccount `json:"eligibleAccounts"`
	TotalEligible    int               `json:"totalEligible"`
	TotalChecked     int               `json:"totalChecked"`
	SampledLive      int               `json:"sampledLive"`
	RefreshTriggered bool              `json:"refreshTriggered"`
}

// AccountSpend é o gasto agregado de uma conta em uma janela
type AccountSpend struct {
	AccountID   string  `json:"accountId"`
	AccountName string  `json:"accountName"`
	Spend       float64 `json:"spend"` // em euros
}

// ToBeDeletedAccount é uma conta ENABLED que gastou acima da marca nos
// últimos 30 dias mas parou de entregar (gasto zero ontem e hoje)
type ToBeDeletedAccount struct {
	AccountID       string  `json:"accountId"`
	AccountName     string  `json:"accountName"`
	Last30DaysCost  float64 `json:"last30DaysCost"`
	YesterdayCost   float64 `json:"yesterdayCost"`
	TodayCost       float64 `json:"todayCost"`
	DetectionReason string  `json:"detectionReason"`
}

// ManualAccountStatus é o estado de validação de uma conta carregada manualmente
type ManualAccountStatus string

const (
	ManualAccountReady    ManualAccountStatus = "ready"
	ManualAccountDeployed ManualAccountStatus = "campaign-deployed"
	ManualAccountError    ManualAccountStatus = "error"
)

// ManualAccount é o resultado da validação de uma conta informada manualmente
type ManualAccount struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Status           ManualAccountStatus `json:"status"`
	Error            string              `json:"error,omitempty"`
	HasRealCampaigns *bool               `json:"hasRealCampaigns,omitempty"`
}

// DateRange é uma janela de datas no formato YYYY-MM-DD, inclusiva
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
