package prioritizing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/collections-manager-api/infrastructure/repository"
	"github.com/vfg2006/collections-manager-api/internal/config"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/pkg/apiErrors"
	"github.com/vfg2006/collections-manager-api/pkg/utils"
)

type Prioritizer interface {
	GetPrioritizedList(limit int) ([]domain.PrioritizedCustomer, error)
	GetCategories() (map[domain.Tier][]string, error)
	GetCustomerRecommendations(customerID string) (*domain.PrioritizedCustomer, error)
	GetWeights() (domain.Weights, error)
	UpdateWeights(weights domain.Weights, updatedBy *string) (*domain.PrioritySettings, error)
	DistributeWorkload(collectors []string, limit int) (map[string][]domain.PrioritizedCustomer, error)
	GetRanking() (*domain.PriorityRankingResponse, error)
}

var _ Prioritizer = (*Service)(nil)

type Service struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	promiseRepo  repository.PromiseRepository
	settingsRepo repository.PrioritySettingsRepository
	rankingRepo  repository.PriorityRankingRepository
	weights      domain.Weights
	thresholds   domain.Thresholds
	now          func() time.Time
}

func NewService(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	promiseRepo repository.PromiseRepository,
	settingsRepo repository.PrioritySettingsRepository,
	rankingRepo repository.PriorityRankingRepository,
	cfg config.Scoring,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		promiseRepo:  promiseRepo,
		settingsRepo: settingsRepo,
		rankingRepo:  rankingRepo,
		weights:      cfg.Weights(),
		thresholds:   cfg.Thresholds(),
		now:          time.Now,
	}
}

// Thresholds retorna os limites usados na classificação
func (s *Service) Thresholds() domain.Thresholds {
	return s.thresholds
}

func (s *Service) GetPrioritizedList(limit int) ([]domain.PrioritizedCustomer, error) {
	weights, err := s.GetWeights()
	if err != nil {
		return nil, err
	}

	snapshots, err := s.loadPortfolio()
	if err != nil {
		return nil, err
	}

	items, err := PrioritizedList(snapshots, weights, s.thresholds, limit)
	if err != nil {
		return nil, NewPrioritizingError(err, apiErrors.ErrInvalidInput, "dados da carteira inválidos")
	}

	logrus.WithFields(logrus.Fields{
		"customers": len(snapshots),
		"returned":  len(items),
	}).Debug("Lista de cobrança priorizada")

	return items, nil
}

func (s *Service) GetCategories() (map[domain.Tier][]string, error) {
	items, err := s.GetPrioritizedList(0)
	if err != nil {
		return nil, err
	}

	return CategorizePrioritized(items), nil
}

// GetCustomerRecommendations calcula score, faixa e recomendações de um único cliente
func (s *Service) GetCustomerRecommendations(customerID string) (*domain.PrioritizedCustomer, error) {
	if customerID == "" {
		return nil, NewPrioritizingError(ErrCustomerIDMissing, apiErrors.ErrMissingRequiredData, "")
	}

	weights, err := s.GetWeights()
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, NewCustomerPrioritizingError(errors.Wrap(err, ErrFetchPortfolio.Error()), apiErrors.ErrDatabaseOperation, customerID, "")
	}
	if customer == nil {
		return nil, NewCustomerPrioritizingError(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, customerID, customerID)
	}

	invoices, err := s.invoiceRepo.ListByCustomerID(customerID)
	if err != nil {
		return nil, NewCustomerPrioritizingError(errors.Wrap(err, ErrFetchPortfolio.Error()), apiErrors.ErrDatabaseOperation, customerID, "")
	}

	brokenPromises, err := s.promiseRepo.ListByStatus(domain.PromiseStatusBroken)
	if err != nil {
		return nil, NewCustomerPrioritizingError(errors.Wrap(err, ErrFetchPortfolio.Error()), apiErrors.ErrDatabaseOperation, customerID, "")
	}

	snapshot := domain.NewCustomerSnapshot(*customer, invoices, brokenPromises, s.now())

	items, err := Prioritize([]domain.CustomerSnapshot{snapshot}, weights, s.thresholds)
	if err != nil {
		return nil, NewCustomerPrioritizingError(err, apiErrors.ErrInvalidInput, customerID, "dados do cliente inválidos")
	}

	item := items[0]
	item.CurrentRank, err = s.rankingRepo.GetByCustomerID(customerID, s.now().Format(time.DateOnly))
	if err != nil {
		return nil, NewCustomerPrioritizingError(errors.Wrap(err, ErrFetchRanking.Error()), apiErrors.ErrDatabaseOperation, customerID, "")
	}

	return &item, nil
}

// GetWeights retorna os pesos efetivos: padrão, sobrescritos pela configuração e pela última linha gravada
func (s *Service) GetWeights() (domain.Weights, error) {
	weights := domain.DefaultWeights().Merge(s.weights)

	settings, err := s.settingsRepo.GetLatest()
	if err != nil {
		return nil, NewPrioritizingError(errors.Wrap(err, ErrFetchSettings.Error()), apiErrors.ErrDatabaseOperation, "")
	}
	if settings != nil {
		weights = weights.Merge(settings.Weights)
	}

	resolved, err := weights.Resolve()
	if err != nil {
		return nil, NewPrioritizingError(err, apiErrors.ErrInvalidInput, "pesos gravados inválidos")
	}

	return resolved, nil
}

// UpdateWeights valida e grava uma nova configuração de pesos. Fatores omitidos assumem o peso padrão.
func (s *Service) UpdateWeights(weights domain.Weights, updatedBy *string) (*domain.PrioritySettings, error) {
	resolved, err := weights.Resolve()
	if err != nil {
		return nil, NewPrioritizingError(err, apiErrors.ErrInvalidInput, "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewPrioritizingError(errors.Wrap(err, ErrGenerateID.Error()), apiErrors.ErrInternalServer, "")
	}

	settings := &domain.PrioritySettings{
		ID:        id,
		Weights:   resolved,
		UpdatedBy: updatedBy,
	}

	if err := s.settingsRepo.Create(settings); err != nil {
		if domain.IsInvalidInput(err) {
			return nil, NewPrioritizingError(err, apiErrors.ErrInvalidInput, "")
		}
		return nil, NewPrioritizingError(errors.Wrap(err, ErrSaveSettings.Error()), apiErrors.ErrDatabaseOperation, "")
	}

	logrus.WithField("settings_id", settings.ID).Info("Pesos de prioridade atualizados")

	return settings, nil
}

func (s *Service) DistributeWorkload(collectors []string, limit int) (map[string][]domain.PrioritizedCustomer, error) {
	items, err := s.GetPrioritizedList(limit)
	if err != nil {
		return nil, err
	}

	return DistributeWorkload(items, collectors), nil
}

func (s *Service) GetRanking() (*domain.PriorityRankingResponse, error) {
	ranking, err := s.rankingRepo.GetLatestRanking()
	if err != nil {
		return nil, NewPrioritizingError(errors.Wrap(err, ErrFetchRanking.Error()), apiErrors.ErrDatabaseOperation, "")
	}

	return ranking, nil
}

// loadPortfolio monta os snapshots dos clientes com saldo em aberto
func (s *Service) loadPortfolio() ([]domain.CustomerSnapshot, error) {
	customers, err := s.customerRepo.List()
	if err != nil {
		return nil, NewPrioritizingError(errors.Wrap(err, ErrFetchPortfolio.Error()), apiErrors.ErrDatabaseOperation, "clientes")
	}

	invoices, err := s.invoiceRepo.ListByStatus(domain.InvoiceStatusOpen, domain.InvoiceStatusPartial)
	if err != nil {
		return nil, NewPrioritizingError(errors.Wrap(err, ErrFetchPortfolio.Error()), apiErrors.ErrDatabaseOperation, "faturas")
	}

	brokenPromises, err := s.promiseRepo.ListByStatus(domain.PromiseStatusBroken)
	if err != nil {
		return nil, NewPrioritizingError(errors.Wrap(err, ErrFetchPortfolio.Error()), apiErrors.ErrDatabaseOperation, "promessas")
	}

	return BuildSnapshots(customers, invoices, brokenPromises, s.now()), nil
}

// BuildSnapshots agrega faturas e promessas por cliente e descarta clientes sem saldo em aberto
func BuildSnapshots(customers []domain.Customer, invoices []domain.Invoice, promises []domain.Promise, asOf time.Time) []domain.CustomerSnapshot {
	invoicesByCustomer := make(map[string][]domain.Invoice)
	for _, invoice := range invoices {
		invoicesByCustomer[invoice.CustomerID] = append(invoicesByCustomer[invoice.CustomerID], invoice)
	}

	promisesByCustomer := make(map[string][]domain.Promise)
	for _, promise := range promises {
		promisesByCustomer[promise.CustomerID] = append(promisesByCustomer[promise.CustomerID], promise)
	}

	snapshots := make([]domain.CustomerSnapshot, 0, len(customers))
	for _, customer := range customers {
		snapshot := domain.NewCustomerSnapshot(customer, invoicesByCustomer[customer.ID], promisesByCustomer[customer.ID], asOf)
		if snapshot.OutstandingBalance <= 0 {
			continue
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots
}
