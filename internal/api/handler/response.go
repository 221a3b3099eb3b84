package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/internal/scheduler"
	"github.com/vfg2006/collections-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/collections-manager-api/internal/usecases/efficiency"
	"github.com/vfg2006/collections-manager-api/internal/usecases/prioritizing"
	"github.com/vfg2006/collections-manager-api/internal/usecases/promising"
	"github.com/vfg2006/collections-manager-api/pkg/apiErrors"
	"github.com/vfg2006/collections-manager-api/pkg/log"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeAndValidate lê o corpo JSON e aplica as regras de validação do DTO
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make(map[string]string, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields[fieldErr.Field()] = fieldErr.Tag()
			}
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados da requisição inválidos", fields)
			return false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return false
	}

	return true
}

// queryInt lê um inteiro não negativo da query string, usando o padrão quando ausente
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.New("parâmetro " + name + " deve ser um inteiro não negativo")
	}
	return value, nil
}

// writeServiceError converte os erros dos casos de uso na resposta padronizada da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)

	logger := log.ForContext(r.Context()).WithError(err)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao processar requisição")
	} else {
		logger.Warn("Requisição rejeitada")
	}

	apiErrors.WriteError(w, code, err.Error(), nil)
}

func errorCode(err error) string {
	var (
		prioritizingErr *prioritizing.PrioritizingError
		efficiencyErr   *efficiency.EfficiencyError
		promisingErr    *promising.PromisingError
		authErr         *authenticating.AuthError
	)

	switch {
	case errors.As(err, &prioritizingErr):
		return prioritizingErr.Code
	case errors.As(err, &efficiencyErr):
		return efficiencyErr.Code
	case errors.As(err, &promisingErr):
		return promisingErr.Code
	case errors.As(err, &authErr):
		return authErr.Code
	case errors.Is(err, scheduler.ErrJobAlreadyRunning):
		return apiErrors.ErrJobAlreadyRunning
	case domain.IsInvalidInput(err):
		return apiErrors.ErrInvalidInput
	default:
		return apiErrors.ErrInternalServer
	}
}
