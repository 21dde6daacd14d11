package templating

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/mcc-manager-api/infrastructure/repository"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	errorcodes "github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
	"github.com/vfg2006/mcc-manager-api/pkg/utils"
)

type Service interface {
	ListTemplates(family domain.TemplateFamily, category domain.TemplateCategory) ([]*domain.CampaignTemplate, error)
	GetTemplate(id string) (*domain.CampaignTemplate, error)
	CreateTemplate(template *domain.CampaignTemplate) (*domain.CampaignTemplate, error)
	UpdateTemplate(template *domain.CampaignTemplate) error
	DeleteTemplate(id string) error
	DuplicateTemplate(id string) (*domain.CampaignTemplate, error)

	ListSchedules() ([]*domain.AdScheduleTemplate, error)
	GetSchedule(id string) (*domain.AdScheduleTemplate, error)
	CreateSchedule(schedule *domain.AdScheduleTemplate) (*domain.AdScheduleTemplate, error)
	UpdateSchedule(schedule *domain.AdScheduleTemplate) error
	DeleteSchedule(id string) error

	Resolve(templateID, campaignName string, overrides *domain.TemplateOverrides) (*gadomain.CampaignSpec, error)
}

type service struct {
	templateRepo repository.TemplateRepository
	scheduleRepo repository.AdScheduleRepository
}

func NewService(templateRepo repository.TemplateRepository, scheduleRepo repository.AdScheduleRepository) Service {
	return &service{
		templateRepo: templateRepo,
		scheduleRepo: scheduleRepo,
	}
}

func (s *service) ListTemplates(family domain.TemplateFamily, category domain.TemplateCategory) ([]*domain.CampaignTemplate, error) {
	return s.templateRepo.List(family, category)
}

func (s *service) GetTemplate(id string) (*domain.CampaignTemplate, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, NewTemplateError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar template")
	}
	if template == nil {
		return nil, NewTemplateError(ErrTemplateNotFound, errorcodes.ErrResourceNotFound, id)
	}
	return template, nil
}

func (s *service) CreateTemplate(template *domain.CampaignTemplate) (*domain.CampaignTemplate, error) {
	if err := validateTemplate(template); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewTemplateError(ErrGenerateID, errorcodes.ErrInternalServer, err.Error())
	}

	now := time.Now()
	template.ID = id
	template.CreatedAt = now
	template.UpdatedAt = now

	if template.Family == "" {
		template.Family = domain.TemplateFamilyReal
	}

	if err := s.templateRepo.Create(template); err != nil {
		return nil, NewTemplateError(err, errorcodes.ErrDatabaseOperation, "Erro ao criar template")
	}

	logrus.WithFields(logrus.Fields{
		"template_id":   template.ID,
		"template_name": template.Name,
	}).Info("Template criado")

	return template, nil
}

func (s *service) UpdateTemplate(template *domain.CampaignTemplate) error {
	existing, err := s.GetTemplate(template.ID)
	if err != nil {
		return err
	}

	if err := validateTemplate(template); err != nil {
		return err
	}

	template.CreatedAt = existing.CreatedAt
	template.UpdatedAt = time.Now()

	if err := s.templateRepo.Update(template); err != nil {
		return NewTemplateError(err, errorcodes.ErrDatabaseOperation, "Erro ao atualizar template")
	}

	return nil
}

func (s *service) DeleteTemplate(id string) error {
	if _, err := s.GetTemplate(id); err != nil {
		return err
	}

	if err := s.templateRepo.Delete(id); err != nil {
		return NewTemplateError(err, errorcodes.ErrDatabaseOperation, "Erro ao excluir template")
	}

	return nil
}

// DuplicateTemplate cria uma cópia do template com novo ID e sufixo no nome
func (s *service) DuplicateTemplate(id string) (*domain.CampaignTemplate, error) {
	original, err := s.GetTemplate(id)
	if err != nil {
		return nil, err
	}

	duplicate := *original
	duplicate.Name = original.Name + " (Copy)"

	return s.CreateTemplate(&duplicate)
}

func (s *service) ListSchedules() ([]*domain.AdScheduleTemplate, error) {
	custom, err := s.scheduleRepo.List()
	if err != nil {
		return nil, NewTemplateError(err, errorcodes.ErrDatabaseOperation, "Erro ao listar programações")
	}

	// As embutidas vêm primeiro, seguidas das definidas pelo usuário
	schedules := BuiltinSchedules()
	schedules = append(schedules, custom...)

	return schedules, nil
}

func (s *service) GetSchedule(id string) (*domain.AdScheduleTemplate, error) {
	if builtin, ok := BuiltinSchedule(id); ok {
		return builtin, nil
	}

	schedule, err := s.scheduleRepo.GetByID(id)
	if err != nil {
		return nil, NewTemplateError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar programação")
	}
	if schedule == nil {
		return nil, NewTemplateError(ErrScheduleNotFound, errorcodes.ErrResourceNotFound, id)
	}

	return schedule, nil
}

func (s *service) CreateSchedule(schedule *domain.AdScheduleTemplate) (*domain.AdScheduleTemplate, error) {
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewTemplateError(ErrGenerateID, errorcodes.ErrInternalServer, err.Error())
	}

	now := time.Now()
	schedule.ID = id
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	if err := s.scheduleRepo.Create(schedule); err != nil {
		return nil, NewTemplateError(err, errorcodes.ErrDatabaseOperation, "Erro ao criar programação")
	}

	return schedule, nil
}

func (s *service) UpdateSchedule(schedule *domain.AdScheduleTemplate) error {
	if _, ok := BuiltinSchedule(schedule.ID); ok {
		return NewTemplateError(ErrBuiltinImmutable, errorcodes.ErrInvalidRequest, schedule.ID)
	}

	if err := validateSchedule(schedule); err != nil {
		return err
	}

	schedule.UpdatedAt = time.Now()

	if err := s.scheduleRepo.Update(schedule); err != nil {
		return NewTemplateError(err, errorcodes.ErrDatabaseOperation, "Erro ao atualizar programação")
	}

	return nil
}

func (s *service) DeleteSchedule(id string) error {
	if _, ok := BuiltinSchedule(id); ok {
		return NewTemplateError(ErrBuiltinImmutable, errorcodes.ErrInvalidRequest, id)
	}

	if err := s.scheduleRepo.Delete(id); err != nil {
		return NewTemplateError(err, errorcodes.ErrDatabaseOperation, "Erro ao excluir programação")
	}

	return nil
}

// Resolve aplica os overrides sobre o template e monta o payload completo de
// criação de campanha. Overrides não preenchidos mantêm o valor do template.
func (s *service) Resolve(templateID, campaignName string, overrides *domain.TemplateOverrides) (*gadomain.CampaignSpec, error) {
	template, err := s.GetTemplate(templateID)
	if err != nil {
		return nil, err
	}

	data := template.Data

	if overrides != nil {
		if overrides.DeviceTargeting != nil {
			data.DeviceTargeting = *overrides.DeviceTargeting
		}
		if overrides.AdScheduleTemplateID != nil {
			data.AdScheduleTemplateID = *overrides.AdScheduleTemplateID
		}
		if overrides.FinalURL != nil {
			data.FinalURL = *overrides.FinalURL
		}
		if len(overrides.Locations) > 0 {
			data.Locations = overrides.Locations
		}
		if overrides.Budget != nil {
			data.Budget = *overrides.Budget
		}
	}

	if !strings.HasPrefix(data.FinalURL, "http") {
		return nil, NewTemplateError(ErrInvalidTemplate, errorcodes.ErrInvalidRequest, "URL final deve começar com http")
	}

	spec := &gadomain.CampaignSpec{
		Name:               campaignName,
		BudgetAmountMicros: utils.EurosToMicros(data.Budget),
		FinalURL:           data.FinalURL,
		FinalMobileURL:     data.FinalMobileURL,
		Path1:              data.Path1,
		Path2:              data.Path2,
		Headlines:          data.Headlines,
		Descriptions:       data.Descriptions,
		Keywords:           data.Keywords,
		LocationIDs:        data.Locations,
		LanguageCode:       data.LanguageCode,
		MobileOnly:         data.DeviceTargeting == domain.DeviceTargetingMobileOnly,
	}

	if data.AdScheduleTemplateID != "" {
		schedule, err := s.GetSchedule(data.AdScheduleTemplateID)
		if err != nil {
			return nil, err
		}

		for _, slot := range schedule.Slots {
			spec.Schedule = append(spec.Schedule, gadomain.ScheduleSlot{
				DayOfWeek:   slot.DayOfWeek,
				StartHour:   slot.StartHour,
				StartMinute: slot.StartMinute,
				EndHour:     slot.EndHour,
				EndMinute:   slot.EndMinute,
				BidModifier: slot.BidModifier,
			})
		}
	}

	return spec, nil
}

// validateTemplate garante o mínimo exigido pela API de anúncios responsivos
func validateTemplate(template *domain.CampaignTemplate) error {
	if template.Name == "" {
		return NewTemplateError(ErrInvalidTemplate, errorcodes.ErrMissingRequiredData, "Nome é obrigatório")
	}
	if len(template.Data.Headlines) < 3 {
		return NewTemplateError(ErrInvalidTemplate, errorcodes.ErrInvalidRequest, "Template precisa de pelo menos 3 títulos")
	}
	if len(template.Data.Descriptions) < 2 {
		return NewTemplateError(ErrInvalidTemplate, errorcodes.ErrInvalidRequest, "Template precisa de pelo menos 2 descrições")
	}
	if len(template.Data.Keywords) < 1 {
		return NewTemplateError(ErrInvalidTemplate, errorcodes.ErrInvalidRequest, "Template precisa de pelo menos 1 palavra-chave")
	}
	if !strings.HasPrefix(template.Data.FinalURL, "http") {
		return NewTemplateError(ErrInvalidTemplate, errorcodes.ErrInvalidRequest, "URL final deve começar com http")
	}
	if template.Data.Budget <= 0 {
		return NewTemplateError(ErrInvalidTemplate, errorcodes.ErrInvalidRequest, "Orçamento deve ser maior que zero")
	}
	return nil
}

func validateSchedule(schedule *domain.AdScheduleTemplate) error {
	if schedule.Name == "" {
		return NewTemplateError(ErrInvalidSchedule, errorcodes.ErrMissingRequiredData, "Nome é obrigatório")
	}
	if len(schedule.Slots) == 0 {
		return NewTemplateError(ErrInvalidSchedule, errorcodes.ErrInvalidRequest, "Programação precisa de pelo menos um intervalo")
	}

	for _, slot := range schedule.Slots {
		if slot.StartHour < 0 || slot.StartHour > 23 || slot.EndHour < 1 || slot.EndHour > 24 {
			return NewTemplateError(ErrInvalidSchedule, errorcodes.ErrInvalidRequest,
				fmt.Sprintf("Horário inválido no intervalo de %s", slot.DayOfWeek))
		}
		if slot.EndHour*60+slot.EndMinute <= slot.StartHour*60+slot.StartMinute {
			return NewTemplateError(ErrInvalidSchedule, errorcodes.ErrInvalidRequest,
				fmt.Sprintf("Fim deve ser depois do início no intervalo de %s", slot.DayOfWeek))
		}
		if slot.BidModifier < -90 || slot.BidModifier > 900 {
			return NewTemplateError(ErrInvalidSchedule, errorcodes.ErrInvalidRequest,
				"Ajuste de lance deve estar entre -90 e 900")
		}
	}

	return nil
}
