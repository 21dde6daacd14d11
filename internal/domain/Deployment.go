package domain

import (
	"fmt"
	"time"
)

// CampaignName monta o nome padrão de uma campanha criada a partir de um
// template: "<template> - <data> - <sequencial>"
func CampaignName(templateName string, date time.Time, n int) string {
	return fmt.Sprintf("%s - %s - %d", templateName, date.Format("2006-01-02"), n)
}

// DeploymentPolicy controla se contas que já possuem campanha real podem
// receber novas implantações. Substitui o antigo flag global de teste.
type DeploymentPolicy string

const (
	PolicyStrict             DeploymentPolicy = "strict"
	PolicyAllowRealCampaigns DeploymentPolicy = "allow_real_campaigns"
)

// BulkDeployItem é um par (conta, URL final) de uma implantação em lote
type BulkDeployItem struct {
	CustomerID string `json:"customerId"`
	FinalURL   string `json:"finalUrl"`
}

// BulkDeployRequest é a requisição de implantação em lote de campanhas reais
type BulkDeployRequest struct {
	TemplateID         string            `json:"templateId"`
	Overrides          TemplateOverrides `json:"overrides"`
	Items              []BulkDeployItem  `json:"items"`
	SelectedAccountIDs []string          `json:"selectedAccountIds,omitempty"`
	Policy             DeploymentPolicy  `json:"policy,omitempty"`
}

// DeployResult é o resultado individual de um par da implantação.
// O sucesso do lote é independente do sucesso de cada par.
type DeployResult struct {
	CustomerID string `json:"customerId"`
	Success    bool   `json:"success"`
	CampaignID string `json:"campaignId,omitempty"`
	AdGroupID  string `json:"adGroupId,omitempty"`
	AdID       string `json:"adId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BulkDeployResponse agrega os resultados por par de uma implantação em lote
type BulkDeployResponse struct {
	Success bool           `json:"success"`
	Results []DeployResult `json:"results"`
}
