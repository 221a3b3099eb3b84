package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/internal/usecases/prioritizing"
	"github.com/vfg2006/collections-manager-api/pkg/apiErrors"
	"github.com/vfg2006/collections-manager-api/pkg/middleware"
)

type UpdateWeightsRequest struct {
	Weights map[string]float64 `json:"weights" validate:"required,min=1"`
}

type WorkloadRequest struct {
	Collectors []string `json:"collectors" validate:"dive,required"`
	Limit      int      `json:"limit" validate:"gte=0"`
}

type PrioritizedListResponse struct {
	Total     int                          `json:"total"`
	Customers []domain.PrioritizedCustomer `json:"customers"`
}

// GetPrioritizedList retorna a fila de cobrança ordenada por score
func GetPrioritizedList(service prioritizing.Prioritizer, defaultLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", defaultLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		items, err := service.GetPrioritizedList(limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PrioritizedListResponse{
			Total:     len(items),
			Customers: items,
		})
	}
}

// GetCategories retorna os IDs dos clientes agrupados por faixa de prioridade
func GetCategories(service prioritizing.Prioritizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.GetCategories()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, categories)
	}
}

func GetCustomerRecommendations(service prioritizing.Prioritizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		item, err := service.GetCustomerRecommendations(customerID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

func GetWeights(service prioritizing.Prioritizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weights, err := service.GetWeights()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"weights": weights,
		})
	}
}

// UpdateWeights grava uma nova configuração de pesos. Fatores omitidos voltam ao padrão.
func UpdateWeights(service prioritizing.Prioritizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateWeightsRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		weights := make(domain.Weights, len(req.Weights))
		for factor, weight := range req.Weights {
			weights[domain.Factor(factor)] = weight
		}

		var updatedBy *string
		if userClaims, ok := middleware.UserFromContext(r.Context()); ok {
			email := userClaims.UserEmail
			updatedBy = &email
		}

		settings, err := service.UpdateWeights(weights, updatedBy)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}

// DistributeWorkload reparte a fila priorizada entre os cobradores informados
func DistributeWorkload(service prioritizing.Prioritizer, defaultLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WorkloadRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		limit := req.Limit
		if limit == 0 {
			limit = defaultLimit
		}

		workload, err := service.DistributeWorkload(req.Collectors, limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, workload)
	}
}

// GetPriorityRanking retorna o último ranking gravado pela rotina diária
func GetPriorityRanking(service prioritizing.Prioritizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranking, err := service.GetRanking()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ranking)
	}
}
