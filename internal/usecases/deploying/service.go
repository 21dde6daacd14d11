package deploying

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/templating"
	errorcodes "github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
	"github.com/vfg2006/mcc-manager-api/pkg/fanout"
	"github.com/vfg2006/mcc-manager-api/pkg/utils"
)

// ReadyLister fornece a agregação de contas prontas usada nas pré-condições
// do lote. Satisfeita pelo serviço de acompanhamento de campanhas dummy.
type ReadyLister interface {
	AccountsReadyForReal(ctx context.Context, policy domain.DeploymentPolicy, updatePerformance bool) (*domain.ReadyAccountsResult, error)
}

type Service interface {
	BulkDeploy(ctx context.Context, req *domain.BulkDeployRequest) (*domain.BulkDeployResponse, error)
}

type service struct {
	cfg        *config.Config
	integrator googleads.Integrator
	templates  templating.Service
	ready      ReadyLister
}

func NewService(
	cfg *config.Config,
	integrator googleads.Integrator,
	templates templating.Service,
	ready ReadyLister,
) Service {
	return &service{
		cfg:        cfg,
		integrator: integrator,
		templates:  templates,
		ready:      ready,
	}
}

// BulkDeploy implanta uma campanha real por conta, pareando cada conta com
// uma URL final do chamador. As pré-condições invalidam o lote inteiro antes
// de qualquer chamada remota; depois disso cada par tem resultado próprio.
func (s *service) BulkDeploy(ctx context.Context, req *domain.BulkDeployRequest) (*domain.BulkDeployResponse, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	// Resolve o template uma vez antes de tocar nas contas
	template, err := s.templates.GetTemplate(req.TemplateID)
	if err != nil {
		return nil, err
	}

	type pair struct {
		index int
		item  domain.BulkDeployItem
	}

	pairs := make([]pair, 0, len(req.Items))
	for i, item := range req.Items {
		pairs = append(pairs, pair{index: i, item: item})
	}

	concurrency := utils.Clamp(s.cfg.BulkDeploy.MaxConcurrency, 1, 5)
	deployedAt := time.Now()

	results := fanout.Run(ctx, pairs, concurrency, func(_ context.Context, p pair) (*gadomain.CreatedCampaign, error) {
		overrides := req.Overrides
		overrides.FinalURL = &p.item.FinalURL

		name := domain.CampaignName(template.Name, deployedAt, p.index+1)

		spec, err := s.templates.Resolve(req.TemplateID, name, &overrides)
		if err != nil {
			return nil, err
		}

		return s.createWithRetry(p.item.CustomerID, spec)
	})

	response := &domain.BulkDeployResponse{
		Success: true,
		Results: make([]domain.DeployResult, 0, len(results)),
	}

	for _, r := range results {
		result := domain.DeployResult{CustomerID: r.Item.item.CustomerID}

		if r.Err != nil {
			response.Success = false
			result.Error = r.Err.Error()

			logrus.WithFields(logrus.Fields{
				"customer_id": r.Item.item.CustomerID,
				"error":       r.Err.Error(),
			}).Warn("Falha ao implantar campanha na conta")
		} else {
			result.Success = true
			result.CampaignID = r.Value.CampaignID
			result.AdGroupID = r.Value.AdGroupID
			result.AdID = r.Value.AdID
		}

		response.Results = append(response.Results, result)
	}

	return response, nil
}

// createWithRetry repete a criação uma única vez quando o erro é transitório
// (limite de requisições ou instabilidade do lado remoto)
func (s *service) createWithRetry(customerID string, spec *gadomain.CampaignSpec) (*gadomain.CreatedCampaign, error) {
	created, err := s.integrator.CreateCampaign(customerID, spec)
	if err == nil {
		return created, nil
	}

	var apiErr *gadomain.APIError
	if !errors.As(err, &apiErr) || !apiErr.IsTransient() {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"error":       err.Error(),
	}).Info("Erro transitório na criação da campanha, repetindo uma vez")

	return s.integrator.CreateCampaign(customerID, spec)
}

func (s *service) validate(ctx context.Context, req *domain.BulkDeployRequest) error {
	if req.TemplateID == "" {
		return NewDeployError(ErrMissingTemplate, errorcodes.ErrMissingRequiredData, "")
	}

	n := len(req.Items)
	if n == 0 {
		return NewDeployError(ErrEmptyBatch, errorcodes.ErrInvalidRequest, "")
	}
	if n > s.cfg.BulkDeploy.MaxBatch {
		return NewDeployError(ErrBatchTooLarge, errorcodes.ErrInvalidRequest,
			fmt.Sprintf("%d itens, máximo %d", n, s.cfg.BulkDeploy.MaxBatch))
	}

	urls := make(map[string]struct{}, n)
	for _, item := range req.Items {
		if _, seen := urls[item.FinalURL]; seen {
			return NewDeployError(ErrDuplicateFinalURLs, errorcodes.ErrInvalidRequest, item.FinalURL)
		}
		urls[item.FinalURL] = struct{}{}
	}

	if len(req.SelectedAccountIDs) > 0 && len(req.SelectedAccountIDs) != n {
		return NewDeployError(ErrSelectionMismatch, errorcodes.ErrInvalidRequest,
			fmt.Sprintf("%d contas selecionadas para %d itens", len(req.SelectedAccountIDs), n))
	}

	ready, err := s.ready.AccountsReadyForReal(ctx, req.Policy, false)
	if err != nil {
		return err
	}
	if n > ready.TotalReadyAccounts {
		return NewDeployError(ErrNotEnoughReady, errorcodes.ErrInvalidRequest,
			fmt.Sprintf("%d itens para %d contas prontas", n, ready.TotalReadyAccounts))
	}

	return nil
}
