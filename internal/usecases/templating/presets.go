package templating

import "github.com/vfg2006/mcc-manager-api/internal/domain"

// IDs das programações embutidas. Programações embutidas têm precedência
// sobre as definidas pelo usuário na resolução de templates.
const (
	PresetBusinessHours = "business_hours"
	PresetWeekendsOnly  = "weekends_only"
	PresetEveningRush   = "evening_rush"
)

var weekdays = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"}

// builtinSchedules são as programações pré-definidas disponíveis sem cadastro
var builtinSchedules = map[string]*domain.AdScheduleTemplate{
	PresetBusinessHours: {
		ID:          PresetBusinessHours,
		Name:        "Business Hours",
		Description: "Segunda a sexta, das 9h às 17h",
		Slots:       weekdaySlots(9, 17, 0),
	},
	PresetWeekendsOnly: {
		ID:          PresetWeekendsOnly,
		Name:        "Weekends Only",
		Description: "Sábado e domingo, o dia inteiro",
		Slots: []domain.AdScheduleSlot{
			{DayOfWeek: "SATURDAY", StartHour: 0, StartMinute: 0, EndHour: 23, EndMinute: 45, BidModifier: 0},
			{DayOfWeek: "SUNDAY", StartHour: 0, StartMinute: 0, EndHour: 23, EndMinute: 45, BidModifier: 0},
		},
	},
	PresetEveningRush: {
		ID:          PresetEveningRush,
		Name:        "Evening Rush",
		Description: "Segunda a sexta, das 17h às 21h, com lance +50%",
		Slots:       weekdaySlots(17, 21, 50),
	},
}

func weekdaySlots(startHour, endHour, bidModifier int) []domain.AdScheduleSlot {
	slots := make([]domain.AdScheduleSlot, 0, len(weekdays))
	for _, day := range weekdays {
		slots = append(slots, domain.AdScheduleSlot{
			DayOfWeek:   day,
			StartHour:   startHour,
			StartMinute: 0,
			EndHour:     endHour,
			EndMinute:   0,
			BidModifier: bidModifier,
		})
	}
	return slots
}

// BuiltinSchedule retorna a programação embutida com o ID informado
func BuiltinSchedule(id string) (*domain.AdScheduleTemplate, bool) {
	schedule, ok := builtinSchedules[id]
	return schedule, ok
}

// BuiltinSchedules lista as programações embutidas
func BuiltinSchedules() []*domain.AdScheduleTemplate {
	return []*domain.AdScheduleTemplate{
		builtinSchedules[PresetBusinessHours],
		builtinSchedules[PresetWeekendsOnly],
		builtinSchedules[PresetEveningRush],
	}
}
