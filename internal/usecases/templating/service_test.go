package templating_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/mcc-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/templating"
	errorcodes "github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	templateRepo *repomocks.MockTemplateRepository
	scheduleRepo *repomocks.MockAdScheduleRepository
}

func newService(t *testing.T) (templating.Service, *testDeps) {
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		templateRepo: repomocks.NewMockTemplateRepository(ctrl),
		scheduleRepo: repomocks.NewMockAdScheduleRepository(ctrl),
	}

	return templating.NewService(deps.templateRepo, deps.scheduleRepo), deps
}

func baseTemplate() *domain.CampaignTemplate {
	return &domain.CampaignTemplate{
		ID:     "tpl001",
		Name:   "Real NL Search",
		Family: domain.TemplateFamilyReal,
		Data: domain.TemplateData{
			Budget:          25.0,
			FinalURL:        "https://example.nl",
			FinalMobileURL:  "https://m.example.nl",
			Path1:           "ofertas",
			Headlines:       []string{"Título 1", "Título 2", "Título 3"},
			Descriptions:    []string{"Descrição 1", "Descrição 2"},
			Keywords:        []string{"palavra"},
			Locations:       []string{"2528"},
			LanguageCode:    "nl",
			DeviceTargeting: domain.DeviceTargetingAll,
		},
	}
}

func validSchedule() *domain.AdScheduleTemplate {
	return &domain.AdScheduleTemplate{
		Name: "Manhãs",
		Slots: []domain.AdScheduleSlot{
			{DayOfWeek: "MONDAY", StartHour: 8, StartMinute: 0, EndHour: 12, EndMinute: 0, BidModifier: 10},
		},
	}
}

func TestResolveSemOverridesUsaDadosDoTemplate(t *testing.T) {
	service, deps := newService(t)

	template := baseTemplate()
	deps.templateRepo.EXPECT().GetByID("tpl001").Return(template, nil)

	spec, err := service.Resolve("tpl001", "Campanha NL", nil)

	require.NoError(t, err)
	assert.Equal(t, "Campanha NL", spec.Name)
	assert.Equal(t, int64(25_000_000), spec.BudgetAmountMicros)
	assert.Equal(t, "https://example.nl", spec.FinalURL)
	assert.Equal(t, []string{"2528"}, spec.LocationIDs)
	assert.False(t, spec.MobileOnly)
	assert.Empty(t, spec.Schedule)
}

func TestResolveAplicaOverridesSobreOTemplate(t *testing.T) {
	service, deps := newService(t)

	template := baseTemplate()
	deps.templateRepo.EXPECT().GetByID("tpl001").Return(template, nil)

	mobileOnly := domain.DeviceTargetingMobileOnly
	finalURL := "https://override.nl"
	budget := 3.0
	scheduleID := templating.PresetBusinessHours

	spec, err := service.Resolve("tpl001", "Campanha Override", &domain.TemplateOverrides{
		DeviceTargeting:      &mobileOnly,
		FinalURL:             &finalURL,
		Budget:               &budget,
		Locations:            []string{"2840"},
		AdScheduleTemplateID: &scheduleID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3_000_000), spec.BudgetAmountMicros)
	assert.Equal(t, "https://override.nl", spec.FinalURL)
	assert.Equal(t, []string{"2840"}, spec.LocationIDs)
	assert.True(t, spec.MobileOnly)

	// business_hours cobre os cinco dias úteis
	require.Len(t, spec.Schedule, 5)
	assert.Equal(t, "MONDAY", spec.Schedule[0].DayOfWeek)
	assert.Equal(t, 9, spec.Schedule[0].StartHour)
	assert.Equal(t, 17, spec.Schedule[0].EndHour)
}

func TestResolveOverrideVazioMantemValoresDoTemplate(t *testing.T) {
	service, deps := newService(t)

	template := baseTemplate()
	deps.templateRepo.EXPECT().GetByID("tpl001").Return(template, nil)

	spec, err := service.Resolve("tpl001", "Campanha", &domain.TemplateOverrides{})

	require.NoError(t, err)
	assert.Equal(t, int64(25_000_000), spec.BudgetAmountMicros)
	assert.Equal(t, "https://example.nl", spec.FinalURL)
	assert.False(t, spec.MobileOnly)
}

func TestResolveRejeitaURLSemPrefixoHTTP(t *testing.T) {
	service, deps := newService(t)

	template := baseTemplate()
	deps.templateRepo.EXPECT().GetByID("tpl001").Return(template, nil)

	badURL := "ftp://example.nl"
	_, err := service.Resolve("tpl001", "Campanha", &domain.TemplateOverrides{FinalURL: &badURL})

	require.Error(t, err)
	var templateErr *templating.TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Equal(t, errorcodes.ErrInvalidRequest, templateErr.Code)
	assert.ErrorIs(t, err, templating.ErrInvalidTemplate)
}

func TestResolveProgramacaoCadastradaNoBanco(t *testing.T) {
	service, deps := newService(t)

	template := baseTemplate()
	template.Data.AdScheduleTemplateID = "sch001"
	deps.templateRepo.EXPECT().GetByID("tpl001").Return(template, nil)

	// IDs fora do conjunto embutido caem no repositório
	deps.scheduleRepo.EXPECT().GetByID("sch001").Return(&domain.AdScheduleTemplate{
		ID:   "sch001",
		Name: "Tardes",
		Slots: []domain.AdScheduleSlot{
			{DayOfWeek: "WEDNESDAY", StartHour: 13, StartMinute: 30, EndHour: 18, EndMinute: 0, BidModifier: -20},
		},
	}, nil)

	spec, err := service.Resolve("tpl001", "Campanha", nil)

	require.NoError(t, err)
	require.Len(t, spec.Schedule, 1)
	assert.Equal(t, "WEDNESDAY", spec.Schedule[0].DayOfWeek)
	assert.Equal(t, 30, spec.Schedule[0].StartMinute)
	assert.Equal(t, -20, spec.Schedule[0].BidModifier)
}

func TestResolveProgramacaoEmbutidaNaoConsultaRepositorio(t *testing.T) {
	service, deps := newService(t)

	template := baseTemplate()
	template.Data.AdScheduleTemplateID = templating.PresetEveningRush
	deps.templateRepo.EXPECT().GetByID("tpl001").Return(template, nil)

	spec, err := service.Resolve("tpl001", "Campanha", nil)

	require.NoError(t, err)
	require.Len(t, spec.Schedule, 5)
	assert.Equal(t, 17, spec.Schedule[0].StartHour)
	assert.Equal(t, 50, spec.Schedule[0].BidModifier)
}

func TestResolveProgramacaoInexistente(t *testing.T) {
	service, deps := newService(t)

	template := baseTemplate()
	template.Data.AdScheduleTemplateID = "sch999"
	deps.templateRepo.EXPECT().GetByID("tpl001").Return(template, nil)
	deps.scheduleRepo.EXPECT().GetByID("sch999").Return(nil, nil)

	_, err := service.Resolve("tpl001", "Campanha", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, templating.ErrScheduleNotFound)
}

func TestResolveTemplateInexistente(t *testing.T) {
	service, deps := newService(t)

	deps.templateRepo.EXPECT().GetByID("tpl999").Return(nil, nil)

	_, err := service.Resolve("tpl999", "Campanha", nil)

	require.Error(t, err)
	var templateErr *templating.TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Equal(t, errorcodes.ErrResourceNotFound, templateErr.Code)
}

func TestCreateTemplateValidaConteudo(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(template *domain.CampaignTemplate)
		code   string
	}{
		{
			name:   "nome obrigatório",
			mutate: func(template *domain.CampaignTemplate) { template.Name = "" },
			code:   errorcodes.ErrMissingRequiredData,
		},
		{
			name: "mínimo de três títulos",
			mutate: func(template *domain.CampaignTemplate) {
				template.Data.Headlines = []string{"Título 1", "Título 2"}
			},
			code: errorcodes.ErrInvalidRequest,
		},
		{
			name: "mínimo de duas descrições",
			mutate: func(template *domain.CampaignTemplate) {
				template.Data.Descriptions = []string{"Descrição 1"}
			},
			code: errorcodes.ErrInvalidRequest,
		},
		{
			name: "pelo menos uma palavra-chave",
			mutate: func(template *domain.CampaignTemplate) {
				template.Data.Keywords = nil
			},
			code: errorcodes.ErrInvalidRequest,
		},
		{
			name: "URL final sem http",
			mutate: func(template *domain.CampaignTemplate) {
				template.Data.FinalURL = "example.nl"
			},
			code: errorcodes.ErrInvalidRequest,
		},
		{
			name: "orçamento positivo",
			mutate: func(template *domain.CampaignTemplate) {
				template.Data.Budget = 0
			},
			code: errorcodes.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService(t)

			template := baseTemplate()
			tt.mutate(template)

			_, err := service.CreateTemplate(template)

			require.Error(t, err)
			var templateErr *templating.TemplateError
			require.ErrorAs(t, err, &templateErr)
			assert.Equal(t, tt.code, templateErr.Code)
		})
	}
}

func TestCreateTemplateGeraIDEFamiliaPadrao(t *testing.T) {
	service, deps := newService(t)

	template := baseTemplate()
	template.ID = ""
	template.Family = ""

	deps.templateRepo.EXPECT().Create(gomock.Any()).Return(nil)

	created, err := service.CreateTemplate(template)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.TemplateFamilyReal, created.Family)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateScheduleValidaIntervalos(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(schedule *domain.AdScheduleTemplate)
		code   string
	}{
		{
			name:   "nome obrigatório",
			mutate: func(schedule *domain.AdScheduleTemplate) { schedule.Name = "" },
			code:   errorcodes.ErrMissingRequiredData,
		},
		{
			name:   "sem intervalos",
			mutate: func(schedule *domain.AdScheduleTemplate) { schedule.Slots = nil },
			code:   errorcodes.ErrInvalidRequest,
		},
		{
			name: "hora de início fora do dia",
			mutate: func(schedule *domain.AdScheduleTemplate) {
				schedule.Slots[0].StartHour = 24
			},
			code: errorcodes.ErrInvalidRequest,
		},
		{
			name: "fim antes do início",
			mutate: func(schedule *domain.AdScheduleTemplate) {
				schedule.Slots[0].StartHour = 12
				schedule.Slots[0].EndHour = 12
			},
			code: errorcodes.ErrInvalidRequest,
		},
		{
			name: "ajuste de lance abaixo do mínimo",
			mutate: func(schedule *domain.AdScheduleTemplate) {
				schedule.Slots[0].BidModifier = -91
			},
			code: errorcodes.ErrInvalidRequest,
		},
		{
			name: "ajuste de lance acima do máximo",
			mutate: func(schedule *domain.AdScheduleTemplate) {
				schedule.Slots[0].BidModifier = 901
			},
			code: errorcodes.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService(t)

			schedule := validSchedule()
			tt.mutate(schedule)

			_, err := service.CreateSchedule(schedule)

			require.Error(t, err)
			var templateErr *templating.TemplateError
			require.ErrorAs(t, err, &templateErr)
			assert.Equal(t, tt.code, templateErr.Code)
			assert.ErrorIs(t, err, templating.ErrInvalidSchedule)
		})
	}
}

func TestProgramacoesEmbutidasSaoImutaveis(t *testing.T) {
	service, _ := newService(t)

	err := service.UpdateSchedule(&domain.AdScheduleTemplate{
		ID:    templating.PresetBusinessHours,
		Name:  "Business Hours",
		Slots: validSchedule().Slots,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, templating.ErrBuiltinImmutable)

	err = service.DeleteSchedule(templating.PresetWeekendsOnly)
	require.Error(t, err)
	assert.ErrorIs(t, err, templating.ErrBuiltinImmutable)
}

func TestListSchedulesIncluiEmbutidasPrimeiro(t *testing.T) {
	service, deps := newService(t)

	deps.scheduleRepo.EXPECT().List().Return([]*domain.AdScheduleTemplate{
		{ID: "sch001", Name: "Tardes"},
	}, nil)

	schedules, err := service.ListSchedules()

	require.NoError(t, err)
	require.Len(t, schedules, 4)
	assert.Equal(t, templating.PresetBusinessHours, schedules[0].ID)
	assert.Equal(t, "sch001", schedules[3].ID)
}

func TestDuplicateTemplateCriaCopiaComNovoID(t *testing.T) {
	service, deps := newService(t)

	original := baseTemplate()
	deps.templateRepo.EXPECT().GetByID("tpl001").Return(original, nil)
	deps.templateRepo.EXPECT().Create(gomock.Any()).Return(nil)

	duplicate, err := service.DuplicateTemplate("tpl001")

	require.NoError(t, err)
	assert.NotEqual(t, original.ID, duplicate.ID)
	assert.Equal(t, "Real NL Search (Copy)", duplicate.Name)
}

func TestGetTemplateErroDeBanco(t *testing.T) {
	service, deps := newService(t)

	deps.templateRepo.EXPECT().GetByID("tpl001").Return(nil, errors.New("connection refused"))

	_, err := service.GetTemplate("tpl001")

	require.Error(t, err)
	var templateErr *templating.TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Equal(t, errorcodes.ErrDatabaseOperation, templateErr.Code)
}
