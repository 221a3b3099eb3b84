package promising

import (
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/collections-manager-api/infrastructure/repository"
	"github.com/vfg2006/collections-manager-api/internal/config"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/pkg/apiErrors"
	"github.com/vfg2006/collections-manager-api/pkg/utils"
)

var (
	ErrFetchPromises = errors.New("erro ao consultar promessas de pagamento")
	ErrFetchPayments = errors.New("erro ao consultar pagamentos da promessa")
	ErrSavePromise   = errors.New("erro ao gravar apuração da promessa")
	ErrSaveActivity  = errors.New("erro ao registrar atividade da promessa")
)

// PromisingError é um erro com contexto adicional para a apuração de promessas
type PromisingError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	PromiseID string // ID da promessa relacionada
}

// Error implementa a interface error
func (e *PromisingError) Error() string {
	if e.PromiseID != "" {
		return fmt.Sprintf("%s (promessa: %s)", e.Err.Error(), e.PromiseID)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PromisingError) Unwrap() error {
	return e.Err
}

func NewPromisingError(err error, code string, promiseID string) *PromisingError {
	return &PromisingError{
		Err:       err,
		Code:      code,
		PromiseID: promiseID,
	}
}

// ProcessResult resume uma execução da apuração
type ProcessResult struct {
	ProcessedAt time.Time    `json:"processed_at"`
	Overdue     int          `json:"overdue"`
	Kept        int          `json:"kept"`
	Partial     int          `json:"partial"`
	Broken      int          `json:"broken"`
	Escalations int          `json:"escalations"`
	Failed      int          `json:"failed"`
	Resolutions []Resolution `json:"resolutions"`
}

type Resolver interface {
	ProcessOverduePromises() (*ProcessResult, error)
}

var _ Resolver = (*Service)(nil)

type Service struct {
	promiseRepo  repository.PromiseRepository
	paymentRepo  repository.PaymentRepository
	activityRepo repository.ActivityRepository
	settings     Settings
	now          func() time.Time
}

func NewService(
	promiseRepo repository.PromiseRepository,
	paymentRepo repository.PaymentRepository,
	activityRepo repository.ActivityRepository,
	cfg config.PromiseResolution,
) *Service {
	return &Service{
		promiseRepo:  promiseRepo,
		paymentRepo:  paymentRepo,
		activityRepo: activityRepo,
		settings: Settings{
			GraceDays:         cfg.GraceDays,
			PaymentWindowDays: cfg.PaymentWindowDays,
			KeptRatio:         cfg.KeptRatio,
			PartialRatio:      cfg.PartialRatio,
			EscalationCount:   cfg.EscalationCount,
		},
		now: time.Now,
	}
}

// ProcessOverduePromises apura todas as promessas pendentes que passaram da carência.
// Falhas em uma promessa são registradas e não interrompem as demais.
func (s *Service) ProcessOverduePromises() (*ProcessResult, error) {
	asOf := domain.DateOnly(s.now())

	pending, err := s.promiseRepo.ListByStatus(domain.PromiseStatusPending)
	if err != nil {
		return nil, NewPromisingError(pkgerrors.Wrap(err, ErrFetchPromises.Error()), apiErrors.ErrDatabaseOperation, "")
	}

	broken, err := s.promiseRepo.ListByStatus(domain.PromiseStatusBroken)
	if err != nil {
		return nil, NewPromisingError(pkgerrors.Wrap(err, ErrFetchPromises.Error()), apiErrors.ErrDatabaseOperation, "")
	}

	result := &ProcessResult{
		ProcessedAt: s.now(),
		Resolutions: make([]Resolution, 0),
	}

	for _, promise := range pending {
		if !IsOverdue(promise, asOf, s.settings) {
			continue
		}
		result.Overdue++

		resolution, err := s.resolve(promise)
		if err != nil {
			result.Failed++
			logrus.WithError(err).WithField("promise_id", promise.ID).Error("Erro ao apurar promessa de pagamento")
			continue
		}

		if resolution.Status == domain.PromiseStatusBroken {
			// A promessa recém quebrada entra na contagem
			recent := RecentBrokenCount(broken, promise.CustomerID, asOf) + 1
			resolution.EscalationRequired = s.settings.EscalationCount > 0 && recent >= s.settings.EscalationCount
			broken = append(broken, resolution.Apply(promise))
		}

		if err := s.recordActivity(promise, resolution, asOf); err != nil {
			logrus.WithError(err).WithField("promise_id", promise.ID).Warn("Promessa apurada sem registro de atividade")
		}

		switch resolution.Status {
		case domain.PromiseStatusKept:
			result.Kept++
		case domain.PromiseStatusPartial:
			result.Partial++
		case domain.PromiseStatusBroken:
			result.Broken++
		}
		if resolution.EscalationRequired {
			result.Escalations++
		}

		result.Resolutions = append(result.Resolutions, resolution)
	}

	logrus.WithFields(logrus.Fields{
		"overdue":     result.Overdue,
		"kept":        result.Kept,
		"partial":     result.Partial,
		"broken":      result.Broken,
		"escalations": result.Escalations,
		"failed":      result.Failed,
	}).Info("Apuração de promessas concluída")

	return result, nil
}

func (s *Service) resolve(promise domain.Promise) (Resolution, error) {
	start, end := PaymentWindow(promise, s.settings)

	payments, err := s.paymentRepo.ListByCustomerBetween(promise.CustomerID, start, end)
	if err != nil {
		return Resolution{}, NewPromisingError(pkgerrors.Wrap(err, ErrFetchPayments.Error()), apiErrors.ErrDatabaseOperation, promise.ID)
	}

	resolution, err := ResolvePromise(promise, payments, s.settings)
	if err != nil {
		return Resolution{}, NewPromisingError(err, apiErrors.ErrInvalidInput, promise.ID)
	}

	resolved := resolution.Apply(promise)
	if err := s.promiseRepo.UpdateResolution(&resolved); err != nil {
		return Resolution{}, NewPromisingError(pkgerrors.Wrap(err, ErrSavePromise.Error()), apiErrors.ErrDatabaseOperation, promise.ID)
	}

	return resolution, nil
}

func (s *Service) recordActivity(promise domain.Promise, resolution Resolution, asOf time.Time) error {
	id, err := utils.GenerateID()
	if err != nil {
		return NewPromisingError(pkgerrors.Wrap(err, ErrSaveActivity.Error()), apiErrors.ErrInternalServer, promise.ID)
	}

	outcome := domain.OutcomeOther
	if resolution.Status == domain.PromiseStatusKept {
		outcome = domain.OutcomePaymentReceived
	}

	notes := fmt.Sprintf("Promessa %s apurada como %s: recebido %.2f de %.2f prometido",
		promise.ID, resolution.Status, resolution.ReceivedAmount, resolution.PromisedAmount)
	if resolution.EscalationRequired {
		notes += ". Escalonamento necessário"
	}

	activity := &domain.Activity{
		ID:           id,
		CustomerID:   promise.CustomerID,
		InvoiceID:    promise.InvoiceID,
		ActivityDate: asOf,
		Type:         domain.ActivityTypeNote,
		Outcome:      outcome,
		PerformedBy:  domain.SystemPerformer,
		Notes:        &notes,
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return NewPromisingError(pkgerrors.Wrap(err, ErrSaveActivity.Error()), apiErrors.ErrDatabaseOperation, promise.ID)
	}
	return nil
}
