package domain

// ScheduleSlot é um intervalo de veiculação aplicado à campanha criada
type ScheduleSlot struct {
	DayOfWeek   string
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	BidModifier int // percentual, -90 a 900; 0 significa sem ajuste
}

// CampaignSpec é o payload completo de criação de campanha de pesquisa,
// já resolvido a partir do template e dos overrides.
type CampaignSpec struct {
	Name               string
	BudgetAmountMicros int64
	FinalURL           string
	FinalMobileURL     string
	Path1              string
	Path2              string
	Headlines          []string
	Descriptions       []string
	Keywords           []string
	LocationIDs        []string
	LanguageCode       string
	MobileOnly         bool
	Schedule           []ScheduleSlot
}
