package domain

import "time"

// TemplateFamily separa os templates genéricos de campanha dummy dos
// templates categorizados de campanha real
type TemplateFamily string

const (
	TemplateFamilyDummy TemplateFamily = "dummy"
	TemplateFamilyReal  TemplateFamily = "real"
)

// TemplateCategory é a categoria de mercado de um template real
type TemplateCategory string

const (
	TemplateCategoryNL TemplateCategory = "NL"
	TemplateCategoryUS TemplateCategory = "US"
)

// DeviceTargeting define o direcionamento de dispositivos de um template
type DeviceTargeting string

const (
	DeviceTargetingAll        DeviceTargeting = "ALL"
	DeviceTargetingMobileOnly DeviceTargeting = "MOBILE_ONLY"
)

// CampaignTemplate é um template reutilizável de criação de campanha
type CampaignTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Family      TemplateFamily   `json:"family"`
	Category    TemplateCategory `json:"category,omitempty"`
	Data        TemplateData     `json:"data"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// TemplateData é o conteúdo do template resolvido em um payload de campanha
type TemplateData struct {
	Budget               float64         `json:"budget"` // orçamento diário em euros
	FinalURL             string          `json:"finalUrl"`
	FinalMobileURL       string          `json:"finalMobileUrl,omitempty"`
	Path1                string          `json:"path1,omitempty"`
	Path2                string          `json:"path2,omitempty"`
	Headlines            []string        `json:"headlines"`
	Descriptions         []string        `json:"descriptions"`
	Keywords             []string        `json:"keywords"`
	Locations            []string        `json:"locations"`
	LanguageCode         string          `json:"languageCode"`
	AdScheduleTemplateID string          `json:"adScheduleTemplateId,omitempty"`
	DeviceTargeting      DeviceTargeting `json:"deviceTargeting"`
}

// TemplateOverrides são ajustes por implantação aplicados sobre o template.
// Campos não preenchidos mantêm o valor do template.
type TemplateOverrides struct {
	DeviceTargeting      *DeviceTargeting `json:"deviceTargeting,omitempty"`
	AdScheduleTemplateID *string          `json:"adScheduleTemplateId,omitempty"`
	FinalURL             *string          `json:"finalUrl,omitempty"`
	Locations            []string         `json:"locations,omitempty"`
	Budget               *float64         `json:"budget,omitempty"`
}

// AdScheduleSlot é um intervalo de exibição dentro de uma programação
type AdScheduleSlot struct {
	DayOfWeek   string `json:"dayOfWeek"` // MONDAY..SUNDAY
	StartHour   int    `json:"startHour"`
	StartMinute int    `json:"startMinute"`
	EndHour     int    `json:"endHour"`
	EndMinute   int    `json:"endMinute"`
	BidModifier int    `json:"bidModifier"` // percentual, -90 a 900
}

// AdScheduleTemplate é uma programação de anúncio definida pelo usuário
type AdScheduleTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Slots       []AdScheduleSlot `json:"schedule"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
