package domain

import "time"

// CacheMetaType identifica a rotina de atualização de cache
type CacheMetaType string

const (
	CacheMetaSuspended        CacheMetaType = "suspended"
	CacheMetaEligibleZero     CacheMetaType = "eligible_zero_campaigns"
	CacheMetaSpendSummary     CacheMetaType = "spend_summary"
	CacheMetaCampaignCounts   CacheMetaType = "campaign_counts"
	CacheMetaRealOver20       CacheMetaType = "real_over20"
	CacheMetaDummyPerformance CacheMetaType = "dummy_performance"
)

// CacheMetaStatus é o estado de uma rotina de atualização
type CacheMetaStatus string

const (
	CacheStatusIdle     CacheMetaStatus = "idle"
	CacheStatusRunning  CacheMetaStatus = "running"
	CacheStatusError    CacheMetaStatus = "error"
	CacheStatusComplete CacheMetaStatus = "complete"
)

// CacheMeta permite que chamadores consultem se uma atualização em background
// está em andamento, concluída ou falhou, sem bloquear esperando por ela.
type CacheMeta struct {
	MccID       string          `json:"mccId"`
	Type        CacheMetaType   `json:"type"`
	Status      CacheMetaStatus `json:"status"`
	StartedAt   *time.Time      `json:"startedAt,omitempty"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	Error       string          `json:"error,omitempty"`
	Counts      map[string]int  `json:"counts,omitempty"`
}

// PruneResult resume a remoção de contas que não existem mais na listagem da MCC
type PruneResult struct {
	RemovedAccounts  int      `json:"removedAccounts"`
	RemovedCampaigns int      `json:"removedCampaigns"`
	AffectedAccounts []string `json:"affectedAccounts"`
}
