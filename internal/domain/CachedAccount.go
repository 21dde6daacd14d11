package domain

import "time"

// AccountStatus é o status normalizado de uma conta no Google Ads
type AccountStatus string

const (
	AccountStatusUnspecified AccountStatus = "UNSPECIFIED"
	AccountStatusUnknown     AccountStatus = "UNKNOWN"
	AccountStatusEnabled     AccountStatus = "ENABLED"
	AccountStatusCanceled    AccountStatus = "CANCELED"
	AccountStatusSuspended   AccountStatus = "SUSPENDED"
)

// statusByCode mapeia os códigos numéricos retornados pela API para o enum textual
var statusByCode = map[int]AccountStatus{
	0: AccountStatusUnspecified,
	1: AccountStatusUnknown,
	2: AccountStatusEnabled,
	3: AccountStatusCanceled,
	4: AccountStatusSuspended,
}

// NormalizeStatusCode converte o código numérico da API para o enum textual
func NormalizeStatusCode(code int) AccountStatus {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return AccountStatusUnknown
}

// NormalizeStatusText valida um status textual, caindo para UNKNOWN quando desconhecido
func NormalizeStatusText(s string) AccountStatus {
	switch AccountStatus(s) {
	case AccountStatusUnspecified, AccountStatusUnknown, AccountStatusEnabled,
		AccountStatusCanceled, AccountStatusSuspended:
		return AccountStatus(s)
	}
	return AccountStatusUnknown
}

// IsSuspendedStatus indica se o status representa uma conta suspensa ou cancelada
func IsSuspendedStatus(s AccountStatus) bool {
	return s == AccountStatusSuspended || s == AccountStatusCanceled
}

// CachedAccount é a projeção em cache de uma conta de cliente sob uma MCC.
// Os campos derivados possuem timestamps próprios de atualização, pois cada
// um tem staleness independente.
type CachedAccount struct {
	MccID       string        `json:"mccId"`
	AccountID   string        `json:"accountId"`
	Name        string        `json:"name"`
	Currency    string        `json:"currency"`
	TimeZone    string        `json:"timeZone"`
	Status      AccountStatus `json:"status"`
	TestAccount bool          `json:"testAccount"`
	Level       int           `json:"level"`
	IsSuspended bool          `json:"isSuspended"`

	CampaignCount          *int       `json:"campaignCount,omitempty"`
	CampaignCountUpdatedAt *time.Time `json:"campaignCountUpdatedAt,omitempty"`
	HasRealCampaignOver20  *bool      `json:"hasRealCampaignOver20,omitempty"`
	LastRealCheckAt        *time.Time `json:"lastRealCheckAt,omitempty"`
}

// CampaignCountFresh indica se a contagem de campanhas ainda está dentro do TTL
func (a *CachedAccount) CampaignCountFresh(ttl time.Duration, now time.Time) bool {
	if a.CampaignCount == nil || a.CampaignCountUpdatedAt == nil {
		return false
	}
	return now.Sub(*a.CampaignCountUpdatedAt) < ttl
}
