package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/templating"
	"github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
)

// ListTemplates lista os templates de campanha, com filtros opcionais de
// família (dummy/real) e categoria
func ListTemplates(service templating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		templates, err := service.ListTemplates(
			domain.TemplateFamily(query.Get("family")),
			domain.TemplateCategory(query.Get("category")),
		)
		if err != nil {
			writeTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"templates": templates,
			"total":     len(templates),
		})
	}
}

func GetTemplate(service templating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		template, err := service.GetTemplate(id)
		if err != nil {
			writeTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(template)
	}
}

func CreateTemplate(service templating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var template domain.CampaignTemplate
		if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateTemplate(&template)
		if err != nil {
			writeTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateTemplate(service templating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var template domain.CampaignTemplate
		if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		template.ID = id

		if err := service.UpdateTemplate(&template); err != nil {
			writeTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(template)
	}
}

func DeleteTemplate(service templating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTemplate(id); err != nil {
			writeTemplateError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DuplicateTemplate cria uma cópia do template com " (Copy)" no nome
func DuplicateTemplate(service templating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		duplicate, err := service.DuplicateTemplate(id)
		if err != nil {
			writeTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(duplicate)
	}
}

// ListAdSchedules lista as programações de anúncio, embutidas e personalizadas
func ListAdSchedules(service templating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schedules, err := service.ListSchedules()
		if err != nil {
			writeTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"adSchedules": schedules,
			"total":       len(schedules),
		})
	}
}

func CreateAdSchedule(service templating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var schedule domain.AdScheduleTemplate
		if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateSchedule(&schedule)
		if err != nil {
			writeTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func DeleteAdSchedule(service templating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteSchedule(id); err != nil {
			writeTemplateError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeTemplateError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var tmplErr *templating.TemplateError
	if errors.As(err, &tmplErr) {
		apiErrors.WriteError(w, tmplErr.Code, tmplErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerenciar templates", nil)
}
