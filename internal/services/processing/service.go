package processing

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ledger-classifier-backend/internal/models"
	"ledger-classifier-backend/internal/repository"
	"ledger-classifier-backend/internal/services/classification"
)

type Service struct {
	statements     *repository.StatementRepository
	bankStatements *repository.BankStatementRepository
	cards          *repository.CardRepository
	rules          *repository.RuleRepository
	records        *repository.RecordRepository
	db             *gorm.DB
	logger         *log.Logger
}

func NewService(
	statements *repository.StatementRepository,
	bankStatements *repository.BankStatementRepository,
	cards *repository.CardRepository,
	rules *repository.RuleRepository,
	records *repository.RecordRepository,
	logger *log.Logger,
) *Service {
	return &Service{
		statements:     statements,
		bankStatements: bankStatements,
		cards:          cards,
		rules:          rules,
		records:        records,
		db:             statements.DB(),
		logger:         logger,
	}
}

// CreateStatement inserts a single pending statement. details may be nil.
func (s *Service) CreateStatement(description string, amount decimal.Decimal, occurredAt time.Time, details datatypes.JSON) (*models.Statement, error) {
	st := &models.Statement{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		OccurredAt:  occurredAt,
		Details:     details,
		CreatedAt:   time.Now(),
	}
	if err := s.db.Create(st).Error; err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) CreateBankStatement(description string, amount decimal.Decimal, postDate time.Time, document string, kind models.TransactionKind) (*models.BankStatement, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid transaction kind %q", kind)
	}
	st := &models.BankStatement{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		PostDate:    postDate,
		Document:    document,
		Kind:        kind,
		CreatedAt:   time.Now(),
	}
	if err := s.db.Create(st).Error; err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) CreateCard(document, payerName string) (*models.Card, error) {
	card := &models.Card{
		ID:        uuid.New(),
		Document:  document,
		PayerName: payerName,
		CreatedAt: time.Now(),
	}

	// Re-registering the same document is a no-op.
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(card).Error
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *Service) CreateRule(description string, checkName *string, checkValue *decimal.Decimal, operator, category, name, typeEntry string) (*models.ClassificationRule, error) {
	if !classification.ValidOperator(operator) {
		return nil, fmt.Errorf("invalid check value operator %q", operator)
	}

	rule := &models.ClassificationRule{
		ID:                 uuid.New(),
		DescriptionSlug:    classification.Slugify(description),
		CheckName:          checkName,
		CheckValueOperator: operator,
		Category:           category,
		Name:               name,
		TypeEntry:          typeEntry,
		CreatedAt:          time.Now(),
	}
	if checkValue != nil {
		rule.CheckValue = decimal.NullDecimal{Decimal: *checkValue, Valid: true}
	}

	if err := s.db.Create(rule).Error; err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *Service) ListRules() ([]models.ClassificationRule, error) {
	return s.rules.GetAll()
}

func (s *Service) ListRecords(limit int) ([]models.LedgerRecord, error) {
	return s.records.ListRecent(limit)
}

func (s *Service) GetStatement(id string) (*models.Statement, error) {
	return s.statements.GetByID(id)
}

func (s *Service) ListPendingStatements() ([]models.Statement, error) {
	return s.statements.FindUnprocessed()
}
