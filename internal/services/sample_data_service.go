package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"walletwise/internal/models"
	"walletwise/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// sampleDataService fabricates realistic demo accounts for non-production
// environments: one of each account type plus a linked transfer pair so
// deletion-eligibility flows can be exercised against real rows.
type sampleDataService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	familyRepo      repositories.FamilyRepositoryInterface
	logger          *slog.Logger
}

// NewSampleDataService creates the demo-data seeder
func NewSampleDataService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	familyRepo repositories.FamilyRepositoryInterface,
	logger *slog.Logger,
) SampleDataServiceInterface {
	return &sampleDataService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		familyRepo:      familyRepo,
		logger:          logger,
	}
}

// SeedDemoData creates a representative account set for the given owner,
// fabricating the owner record itself when it does not exist yet.
func (s *sampleDataService) SeedDemoData(owner models.Owner) ([]*models.Account, error) {
	if err := s.ensureOwner(owner); err != nil {
		return nil, err
	}

	specs := []struct {
		accountType string
		source      string
		balance     decimal.Decimal
		creditLimit *decimal.Decimal
	}{
		{models.AccountTypeChecking, models.AccountSourcePlaid, randomBalance(500, 8000), nil},
		{models.AccountTypeSavings, models.AccountSourcePlaid, randomBalance(1000, 25000), nil},
		{models.AccountTypeCreditCard, models.AccountSourcePlaid, randomBalance(500, 4000).Neg(), decimalPtr(decimal.NewFromInt(10000))},
		{models.AccountTypeLoan, models.AccountSourceSaltEdge, randomBalance(5000, 30000).Neg(), nil},
		{models.AccountTypeMortgage, models.AccountSourceManual, randomBalance(100000, 400000).Neg(), nil},
		{models.AccountTypeInvestment, models.AccountSourceManual, randomBalance(2000, 60000), nil},
	}

	accounts := make([]*models.Account, 0, len(specs))
	for _, spec := range specs {
		account := &models.Account{
			Name:               fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), spec.accountType),
			AccountType:        spec.accountType,
			Source:             spec.source,
			CurrentBalance:     spec.balance,
			CreditLimit:        spec.creditLimit,
			InstitutionName:    gofakeit.Company(),
			AccountNumberLast4: gofakeit.DigitN(4),
		}
		account.SetOwner(owner)

		if err := s.accountRepo.Create(account); err != nil {
			return nil, fmt.Errorf("failed to seed account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := s.seedTransferPair(accounts[0], accounts[1]); err != nil {
		return nil, err
	}

	s.logger.Info("demo data seeded", "accounts", len(accounts))

	return accounts, nil
}

// ensureOwner makes sure the owning user or family row exists so the seeded
// accounts have a real owner behind their foreign key.
func (s *sampleDataService) ensureOwner(owner models.Owner) error {
	switch owner.Kind {
	case models.OwnerFamily:
		_, err := s.familyRepo.GetByID(owner.ID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repositories.ErrFamilyNotFound) {
			return fmt.Errorf("failed to look up demo family: %w", err)
		}
		family := &models.Family{
			ID:   owner.ID,
			Name: fmt.Sprintf("The %s Family", gofakeit.LastName()),
		}
		if err := s.familyRepo.Create(family); err != nil {
			return fmt.Errorf("failed to seed demo family: %w", err)
		}
	default:
		_, err := s.userRepo.GetByID(owner.ID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return fmt.Errorf("failed to look up demo user: %w", err)
		}
		user := &models.User{
			ID:        owner.ID,
			Email:     gofakeit.Email(),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
		}
		if err := s.userRepo.Create(user); err != nil {
			return fmt.Errorf("failed to seed demo user: %w", err)
		}
	}

	return nil
}

// seedTransferPair writes the two legs of one inter-account transfer so the
// first account carries a deletion blocker out of the box.
func (s *sampleDataService) seedTransferPair(from, to *models.Account) error {
	groupID := uuid.New()
	amount := randomBalance(50, 500)
	date := gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now())
	description := fmt.Sprintf("Transfer to %s", to.Name)

	legs := []models.Transaction{
		{
			AccountID:       from.ID,
			Amount:          amount.Neg(),
			Date:            date,
			Description:     description,
			TransferGroupID: &groupID,
			TransferRole:    models.TransferRoleSource,
		},
		{
			AccountID:       to.ID,
			Amount:          amount,
			Date:            date,
			Description:     fmt.Sprintf("Transfer from %s", from.Name),
			TransferGroupID: &groupID,
			TransferRole:    models.TransferRoleDestination,
		},
	}

	if err := s.transactionRepo.CreateBatch(legs); err != nil {
		return fmt.Errorf("failed to seed transfer pair: %w", err)
	}

	return nil
}

func randomBalance(min, max int) decimal.Decimal {
	dollars := gofakeit.Number(min, max)
	cents := gofakeit.Number(0, 99)
	return decimal.NewFromInt(int64(dollars)).Add(decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100)))
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
