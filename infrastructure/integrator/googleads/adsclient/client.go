package adsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/pkg/utils"
)

type Client interface {
	ListClientAccounts(mccID string) ([]gadomain.CustomerClient, error)
	ListCampaigns(customerID string) ([]gadomain.Campaign, error)
	CountCampaigns(customerID string) (int, error)
	CampaignDailyMetrics(customerID, campaignID, startDate, endDate string) ([]gadomain.DailyMetrics, error)
	AccountSpendMicros(customerID, startDate, endDate string) (int64, error)
	CreateSearchCampaign(customerID string, spec *gadomain.CampaignSpec) (*gadomain.CreatedCampaign, error)
}

type GoogleAdsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		Cfg:        cfg,
		httpClient: newHTTPClient(cfg),
	}
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchResponse struct {
	Results       []json.RawMessage `json:"results"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
}

// search executa uma consulta GAQL via googleAds:search, percorrendo todas
// as páginas do resultado.
func (c *GoogleAdsClient) search(customerID, query string) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, customerID)

	results := make([]json.RawMessage, 0)
	pageToken := ""

	for {
		payload, err := json.Marshal(searchRequest{Query: query, PageToken: pageToken})
		if err != nil {
			return nil, err
		}

		body, err := c.post(endpoint, payload)
		if err != nil {
			return nil, err
		}

		var page searchResponse
		if err := json.Unmarshal(body, &page); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON da resposta de busca")
			return nil, err
		}

		results = append(results, page.Results...)

		if page.NextPageToken == "" {
			return results, nil
		}
		pageToken = page.NextPageToken
	}
}

// mutate executa operações via googleAds:mutate em uma única transação,
// com partialFailure desabilitado.
func (c *GoogleAdsClient) mutate(customerID string, operations []interface{}) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:mutate", c.Cfg.GoogleAds.URL, customerID)

	payload, err := json.Marshal(map[string]interface{}{
		"mutateOperations": operations,
	})
	if err != nil {
		return nil, err
	}

	body, err := c.post(endpoint, payload)
	if err != nil {
		return nil, err
	}

	var response struct {
		MutateOperationResponses []json.RawMessage `json:"mutateOperationResponses"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da resposta de mutação")
		return nil, err
	}

	return response.MutateOperationResponses, nil
}

func (c *GoogleAdsClient) post(endpoint string, payload []byte) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	if c.Cfg.GoogleAds.MccID != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.MccID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse lê o corpo e converte respostas de erro da API em APIError
func (c *GoogleAdsClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("status", resp.StatusCode).Debug("Resposta de erro da API:\n", utils.PrettyJson(body))
	}

	var errorResponse gadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err != nil {
		return nil, &gadomain.APIError{
			HTTPStatus: resp.StatusCode,
			Message:    string(body),
		}
	}

	return nil, &gadomain.APIError{
		HTTPStatus: resp.StatusCode,
		Code:       errorResponse.Error.Code,
		Status:     errorResponse.Error.Status,
		Message:    errorResponse.Error.Message,
	}
}
