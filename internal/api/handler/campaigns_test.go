package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mcc-manager-api/internal/api/handler"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/deploying"
	errorcodes "github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
)

type stubDeployer struct {
	response *domain.BulkDeployResponse
	err      error

	received *domain.BulkDeployRequest
}

func (s *stubDeployer) BulkDeploy(_ context.Context, req *domain.BulkDeployRequest) (*domain.BulkDeployResponse, error) {
	s.received = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func TestBulkDeployHandler(t *testing.T) {
	deployer := &stubDeployer{
		response: &domain.BulkDeployResponse{
			Success: true,
			Results: []domain.DeployResult{
				{CustomerID: "1111111111", Success: true, CampaignID: "c-1"},
				{CustomerID: "2222222222", Success: true, CampaignID: "c-2"},
			},
		},
	}

	payload := `{
		"templateId": "tpl001",
		"items": [
			{"customerId": "1111111111", "finalUrl": "https://a.example.com"},
			{"customerId": "2222222222", "finalUrl": "https://b.example.com"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/bulk-deploy", strings.NewReader(payload))
	resp := httptest.NewRecorder()

	handler.BulkDeploy(deployer)(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body domain.BulkDeployResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Len(t, body.Results, 2)

	require.NotNil(t, deployer.received)
	assert.Equal(t, "tpl001", deployer.received.TemplateID)
	assert.Len(t, deployer.received.Items, 2)
}

func TestBulkDeployHandlerCorpoInvalido(t *testing.T) {
	deployer := &stubDeployer{}

	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/bulk-deploy", strings.NewReader("{invalid"))
	resp := httptest.NewRecorder()

	handler.BulkDeploy(deployer)(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Nil(t, deployer.received)
}

func TestBulkDeployHandlerErroDeValidacao(t *testing.T) {
	deployer := &stubDeployer{
		err: deploying.NewDeployError(deploying.ErrBatchTooLarge, errorcodes.ErrInvalidRequest, "21"),
	}

	payload := `{"templateId": "tpl001", "items": [{"customerId": "1111111111", "finalUrl": "https://a.example.com"}]}`

	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/bulk-deploy", strings.NewReader(payload))
	resp := httptest.NewRecorder()

	handler.BulkDeploy(deployer)(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr errorcodes.APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, errorcodes.ErrInvalidRequest, apiErr.Code)
}
