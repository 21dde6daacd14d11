package deploying_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
	gamocks "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/deploying"
	templatingmocks "github.com/vfg2006/mcc-manager-api/internal/usecases/templating/mocks"
	"go.uber.org/mock/gomock"
)

// stubReady devolve sempre a mesma quantidade de contas prontas
type stubReady struct {
	total int
	err   error
}

func (s *stubReady) AccountsReadyForReal(_ context.Context, policy domain.DeploymentPolicy, _ bool) (*domain.ReadyAccountsResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.ReadyAccountsResult{
		TotalReadyAccounts: s.total,
		Criteria:           domain.ReadyCriteria{Policy: policy},
	}, nil
}

type testDeps struct {
	integrator *gamocks.MockIntegrator
	templates  *templatingmocks.MockService
	ready      *stubReady
}

func newService(t *testing.T, totalReady int) (deploying.Service, *testDeps) {
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		integrator: gamocks.NewMockIntegrator(ctrl),
		templates:  templatingmocks.NewMockService(ctrl),
		ready:      &stubReady{total: totalReady},
	}

	cfg := &config.Config{
		BulkDeploy: config.BulkDeploy{MaxBatch: 20, MaxConcurrency: 3},
	}

	return deploying.NewService(cfg, deps.integrator, deps.templates, deps.ready), deps
}

func items(n int) []domain.BulkDeployItem {
	out := make([]domain.BulkDeployItem, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.BulkDeployItem{
			CustomerID: fmt.Sprintf("%010d", i+1),
			FinalURL:   fmt.Sprintf("https://example.com/landing-%d", i+1),
		})
	}
	return out
}

func TestBulkDeployPrecondicoes(t *testing.T) {
	tests := []struct {
		name       string
		totalReady int
		req        *domain.BulkDeployRequest
		wantErr    error
	}{
		{
			name:       "LoteVazio",
			totalReady: 10,
			req:        &domain.BulkDeployRequest{TemplateID: "tpl001"},
			wantErr:    deploying.ErrEmptyBatch,
		},
		{
			name:       "LoteAcimaDoTeto",
			totalReady: 30,
			req:        &domain.BulkDeployRequest{TemplateID: "tpl001", Items: items(21)},
			wantErr:    deploying.ErrBatchTooLarge,
		},
		{
			name:       "URLsDuplicadas",
			totalReady: 10,
			req: &domain.BulkDeployRequest{
				TemplateID: "tpl001",
				Items: []domain.BulkDeployItem{
					{CustomerID: "0000000001", FinalURL: "https://example.com/a"},
					{CustomerID: "0000000002", FinalURL: "https://example.com/a"},
				},
			},
			wantErr: deploying.ErrDuplicateFinalURLs,
		},
		{
			name:       "MaisItensQueContasProntas",
			totalReady: 3,
			req:        &domain.BulkDeployRequest{TemplateID: "tpl001", Items: items(5)},
			wantErr:    deploying.ErrNotEnoughReady,
		},
		{
			name:       "SelecaoComTamanhoErrado",
			totalReady: 10,
			req: &domain.BulkDeployRequest{
				TemplateID:         "tpl001",
				Items:              items(3),
				SelectedAccountIDs: []string{"0000000001", "0000000002"},
			},
			wantErr: deploying.ErrSelectionMismatch,
		},
		{
			name:       "SemTemplate",
			totalReady: 10,
			req:        &domain.BulkDeployRequest{Items: items(2)},
			wantErr:    deploying.ErrMissingTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t, tt.totalReady)

			// Nenhuma chamada remota acontece quando a pré-condição falha
			response, err := svc.BulkDeploy(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, response)
		})
	}
}

func TestBulkDeployMapeiaResultadosPorConta(t *testing.T) {
	svc, deps := newService(t, 5)

	template := &domain.CampaignTemplate{ID: "tpl001", Name: "Beauty NL"}
	deps.templates.EXPECT().GetTemplate("tpl001").Return(template, nil)

	req := &domain.BulkDeployRequest{
		TemplateID: "tpl001",
		Items:      items(3),
	}

	urlsSeen := make(chan string, 3)
	deps.templates.EXPECT().
		Resolve("tpl001", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, name string, overrides *domain.TemplateOverrides) (*gadomain.CampaignSpec, error) {
			urlsSeen <- *overrides.FinalURL
			return &gadomain.CampaignSpec{Name: name, FinalURL: *overrides.FinalURL}, nil
		}).
		Times(3)

	deps.integrator.EXPECT().
		CreateCampaign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(customerID string, spec *gadomain.CampaignSpec) (*gadomain.CreatedCampaign, error) {
			return &gadomain.CreatedCampaign{
				CampaignID:   "c-" + customerID,
				CampaignName: spec.Name,
				AdGroupID:    "g-" + customerID,
				AdID:         "a-" + customerID,
			}, nil
		}).
		Times(3)

	response, err := svc.BulkDeploy(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, response.Success)
	require.Len(t, response.Results, 3)

	// Cada par produz um resultado amarrado à sua conta, sem URL repetida
	close(urlsSeen)
	urls := make(map[string]struct{})
	for u := range urlsSeen {
		urls[u] = struct{}{}
	}
	assert.Len(t, urls, 3)

	for i, result := range response.Results {
		assert.Equal(t, req.Items[i].CustomerID, result.CustomerID)
		assert.True(t, result.Success)
		assert.Equal(t, "c-"+result.CustomerID, result.CampaignID)
		assert.Equal(t, "g-"+result.CustomerID, result.AdGroupID)
		assert.Equal(t, "a-"+result.CustomerID, result.AdID)
	}
}

func TestBulkDeployFalhaParcialNaoAbortaOLote(t *testing.T) {
	svc, deps := newService(t, 5)

	template := &domain.CampaignTemplate{ID: "tpl001", Name: "Beauty NL"}
	deps.templates.EXPECT().GetTemplate("tpl001").Return(template, nil)
	deps.templates.EXPECT().
		Resolve("tpl001", gomock.Any(), gomock.Any()).
		Return(&gadomain.CampaignSpec{Name: "Beauty NL"}, nil).
		Times(2)

	deps.integrator.EXPECT().
		CreateCampaign("0000000001", gomock.Any()).
		Return(nil, errors.New("permission denied"))
	deps.integrator.EXPECT().
		CreateCampaign("0000000002", gomock.Any()).
		Return(&gadomain.CreatedCampaign{CampaignID: "c-2"}, nil)

	response, err := svc.BulkDeploy(context.Background(), &domain.BulkDeployRequest{
		TemplateID: "tpl001",
		Items:      items(2),
	})
	require.NoError(t, err)

	assert.False(t, response.Success)
	require.Len(t, response.Results, 2)
	assert.False(t, response.Results[0].Success)
	assert.Contains(t, response.Results[0].Error, "permission denied")
	assert.True(t, response.Results[1].Success)
}

func TestBulkDeployRepeteUmaVezEmErroTransitorio(t *testing.T) {
	svc, deps := newService(t, 5)

	template := &domain.CampaignTemplate{ID: "tpl001", Name: "Beauty NL"}
	deps.templates.EXPECT().GetTemplate("tpl001").Return(template, nil)
	deps.templates.EXPECT().
		Resolve("tpl001", gomock.Any(), gomock.Any()).
		Return(&gadomain.CampaignSpec{Name: "Beauty NL"}, nil)

	transient := &gadomain.APIError{
		HTTPStatus: http.StatusTooManyRequests,
		Status:     "RESOURCE_EXHAUSTED",
		Message:    "Quota exceeded",
	}

	gomock.InOrder(
		deps.integrator.EXPECT().
			CreateCampaign("0000000001", gomock.Any()).
			Return(nil, transient),
		deps.integrator.EXPECT().
			CreateCampaign("0000000001", gomock.Any()).
			Return(&gadomain.CreatedCampaign{CampaignID: "c-1"}, nil),
	)

	response, err := svc.BulkDeploy(context.Background(), &domain.BulkDeployRequest{
		TemplateID: "tpl001",
		Items:      items(1),
	})
	require.NoError(t, err)

	assert.True(t, response.Success)
	require.Len(t, response.Results, 1)
	assert.True(t, response.Results[0].Success)
	assert.Equal(t, "c-1", response.Results[0].CampaignID)
}

func TestBulkDeployNaoRepeteErroPermanente(t *testing.T) {
	svc, deps := newService(t, 5)

	template := &domain.CampaignTemplate{ID: "tpl001", Name: "Beauty NL"}
	deps.templates.EXPECT().GetTemplate("tpl001").Return(template, nil)
	deps.templates.EXPECT().
		Resolve("tpl001", gomock.Any(), gomock.Any()).
		Return(&gadomain.CampaignSpec{Name: "Beauty NL"}, nil)

	permanent := &gadomain.APIError{
		HTTPStatus: http.StatusForbidden,
		Status:     "PERMISSION_DENIED",
		Message:    "The caller does not have permission",
	}

	deps.integrator.EXPECT().
		CreateCampaign("0000000001", gomock.Any()).
		Return(nil, permanent)

	response, err := svc.BulkDeploy(context.Background(), &domain.BulkDeployRequest{
		TemplateID: "tpl001",
		Items:      items(1),
	})
	require.NoError(t, err)
	assert.False(t, response.Success)
	assert.False(t, response.Results[0].Success)
}
