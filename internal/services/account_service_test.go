package services

import (
	"log/slog"
	"testing"
	"time"

	"walletwise/internal/models"
	"walletwise/internal/repositories"
	"walletwise/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Test doubles for the service collaborators. The normalizer is used for
// real since it is pure; the rest are simple stand-ins.

type stubConnectionService struct {
	status string
	err    error
}

func (s *stubConnectionService) Status(account *models.Account) (string, error) {
	return s.status, s.err
}

type recordingAuditRecorder struct {
	actions []string
}

func (r *recordingAuditRecorder) RecordAccountEvent(actor models.Actor, action string, accountID uuid.UUID, metadata models.JSONBMap) {
	r.actions = append(r.actions, action)
}

type noopMetricsRecorder struct{}

func (noopMetricsRecorder) RecordAccountOperation(operation, status string)            {}
func (noopMetricsRecorder) RecordDeletionBlocked(blockerCount int)                     {}
func (noopMetricsRecorder) RecordSync(source, status string)                           {}
func (noopMetricsRecorder) ObserveSummaryDuration(kind string, duration time.Duration) {}

// AccountServiceSuite defines the test suite for AccountServiceInterface
type AccountServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	accountRepo     *repository_mocks.MockAccountRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	connections     *stubConnectionService
	audit           *recordingAuditRecorder
	service         *accountService
	testUserID      uuid.UUID
	testFamilyID    uuid.UUID
	testAccountID   uuid.UUID
	userActor       models.Actor
	familyActor     models.Actor
}

// SetupTest runs before each test in the suite
func (s *AccountServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.connections = &stubConnectionService{status: models.ConnectionStatusHealthy}
	s.audit = &recordingAuditRecorder{}
	s.service = NewAccountService(
		s.accountRepo,
		s.transactionRepo,
		NewBalanceNormalizer(),
		s.connections,
		s.audit,
		noopMetricsRecorder{},
		models.SyncStaleAfter,
		slog.Default(),
	).(*accountService)

	s.testUserID = uuid.New()
	s.testFamilyID = uuid.New()
	s.testAccountID = uuid.New()
	s.userActor = models.Actor{UserID: &s.testUserID, Role: models.RoleMember}
	s.familyActor = models.Actor{FamilyID: &s.testFamilyID, Role: models.RoleMember}
}

// TearDownTest runs after each test in the suite
func (s *AccountServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAccountServiceSuite runs the test suite
func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) userAccount() *models.Account {
	userID := s.testUserID
	return &models.Account{
		ID:             s.testAccountID,
		UserID:         &userID,
		Name:           "Everyday Checking",
		AccountType:    models.AccountTypeChecking,
		Status:         models.AccountStatusActive,
		Source:         models.AccountSourceManual,
		CurrentBalance: decimal.NewFromInt(5000),
		Currency:       "USD",
		IsActive:       true,
	}
}

// Test Create functionality

func (s *AccountServiceSuite) TestCreate_UserScope() {
	s.accountRepo.EXPECT().Create(gomock.Any()).Return(nil)

	account, err := s.service.Create(s.userActor, models.CreateAccountParams{
		Name:           "Everyday Checking",
		AccountType:    models.AccountTypeChecking,
		CurrentBalance: decimal.NewFromInt(5000),
	})
	s.NoError(err)
	s.NotNil(account)
	s.Require().NotNil(account.UserID)
	s.Equal(s.testUserID, *account.UserID)
	s.Nil(account.FamilyID)
	s.Equal(models.AccountStatusActive, account.Status)
	s.True(account.SyncEnabled)
	s.True(account.IsActive)
	s.Contains(s.audit.actions, models.AuditActionAccountCreated)
}

func (s *AccountServiceSuite) TestCreate_FamilyScope() {
	s.accountRepo.EXPECT().Create(gomock.Any()).Return(nil)

	account, err := s.service.Create(s.familyActor, models.CreateAccountParams{
		Name:        "Household Savings",
		AccountType: models.AccountTypeSavings,
	})
	s.NoError(err)
	s.Require().NotNil(account.FamilyID)
	s.Equal(s.testFamilyID, *account.FamilyID)
	s.Nil(account.UserID)
}

func (s *AccountServiceSuite) TestCreate_AmbiguousScopeRejected() {
	userID := s.testUserID
	familyID := s.testFamilyID
	actor := models.Actor{UserID: &userID, FamilyID: &familyID, Role: models.RoleMember}

	account, err := s.service.Create(actor, models.CreateAccountParams{
		Name:        "Bad Scope",
		AccountType: models.AccountTypeChecking,
	})
	s.ErrorIs(err, models.ErrScopeViolation)
	s.Nil(account)
}

func (s *AccountServiceSuite) TestCreate_SyncEnabledOverride() {
	s.accountRepo.EXPECT().Create(gomock.Any()).Return(nil)

	disabled := false
	account, err := s.service.Create(s.userActor, models.CreateAccountParams{
		Name:        "No Sync",
		AccountType: models.AccountTypeChecking,
		SyncEnabled: &disabled,
	})
	s.NoError(err)
	s.False(account.SyncEnabled)
}

// Test Get functionality

func (s *AccountServiceSuite) TestGet_Success() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(s.userAccount(), nil)

	account, err := s.service.Get(s.userActor, s.testAccountID)
	s.NoError(err)
	s.Equal(s.testAccountID, account.ID)
}

func (s *AccountServiceSuite) TestGet_NotFound() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(nil, repositories.ErrAccountNotFound)

	account, err := s.service.Get(s.userActor, s.testAccountID)
	s.ErrorIs(err, ErrAccountNotFound)
	s.Nil(account)
}

func (s *AccountServiceSuite) TestGet_AccessDeniedForOtherUser() {
	otherUserID := uuid.New()
	account := s.userAccount()
	account.UserID = &otherUserID

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	result, err := s.service.Get(s.userActor, s.testAccountID)
	s.ErrorIs(err, ErrAccessDenied)
	s.Nil(result)
}

func (s *AccountServiceSuite) TestGet_NotFoundReportedBeforeAuthorization() {
	// A missing account must read as 404 even for an actor who could never
	// have accessed it, so existence is not leaked through 403s.
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(nil, repositories.ErrAccountNotFound)

	otherUserID := uuid.New()
	stranger := models.Actor{UserID: &otherUserID, Role: models.RoleMember}

	_, err := s.service.Get(stranger, s.testAccountID)
	s.ErrorIs(err, ErrAccountNotFound)
	s.NotErrorIs(err, ErrAccessDenied)
}

func (s *AccountServiceSuite) TestGet_FamilyMemberCanAccessFamilyAccount() {
	familyID := s.testFamilyID
	account := s.userAccount()
	account.UserID = nil
	account.FamilyID = &familyID

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	result, err := s.service.Get(s.familyActor, s.testAccountID)
	s.NoError(err)
	s.Equal(s.testAccountID, result.ID)
}

func (s *AccountServiceSuite) TestGet_AdminBypassesOwnership() {
	otherUserID := uuid.New()
	account := s.userAccount()
	account.UserID = &otherUserID

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	adminID := uuid.New()
	admin := models.Actor{UserID: &adminID, Role: models.RoleAdmin}

	result, err := s.service.Get(admin, s.testAccountID)
	s.NoError(err)
	s.Equal(s.testAccountID, result.ID)
}

// Test GetBalance functionality

func (s *AccountServiceSuite) TestGetBalance_AvailableBalanceStaysNil() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(s.userAccount(), nil)

	balance, err := s.service.GetBalance(s.userActor, s.testAccountID)
	s.NoError(err)
	s.Equal(s.testAccountID, balance.AccountID)
	s.True(balance.CurrentBalance.Equal(decimal.NewFromInt(5000)))
	s.Nil(balance.AvailableBalance)
}

// Test Update functionality

func (s *AccountServiceSuite) TestUpdate_PartialFieldsOnly() {
	account := s.userAccount()
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().Update(gomock.Any()).Return(nil)

	newName := "Renamed Checking"
	updated, err := s.service.Update(s.userActor, s.testAccountID, models.UpdateAccountParams{
		Name: &newName,
	})
	s.NoError(err)
	s.Equal("Renamed Checking", updated.Name)
	// Untouched fields keep their values
	s.Equal(models.AccountTypeChecking, updated.AccountType)
	s.True(updated.CurrentBalance.Equal(decimal.NewFromInt(5000)))
}

func (s *AccountServiceSuite) TestUpdate_SettingsShallowReplace() {
	account := s.userAccount()
	account.Settings = models.JSONBMap{"color": "blue", "pinned": true}

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().Update(gomock.Any()).Return(nil)

	updated, err := s.service.Update(s.userActor, s.testAccountID, models.UpdateAccountParams{
		Settings: models.JSONBMap{"color": "green"},
	})
	s.NoError(err)
	s.Equal("green", updated.Settings["color"])
	// Keys absent from the new map are gone, not merged
	_, pinned := updated.Settings["pinned"]
	s.False(pinned)
}

func (s *AccountServiceSuite) TestUpdate_NilSettingsLeavesStoredMap() {
	account := s.userAccount()
	account.Settings = models.JSONBMap{"color": "blue"}

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().Update(gomock.Any()).Return(nil)

	newName := "Still Blue"
	updated, err := s.service.Update(s.userActor, s.testAccountID, models.UpdateAccountParams{
		Name: &newName,
	})
	s.NoError(err)
	s.Equal("blue", updated.Settings["color"])
}

// Test Hide functionality

func (s *AccountServiceSuite) TestHide_Success() {
	account := s.userAccount()
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().Update(gomock.Any()).Return(nil)

	hidden, err := s.service.Hide(s.userActor, s.testAccountID)
	s.NoError(err)
	s.Equal(models.AccountStatusHidden, hidden.Status)
	s.Contains(s.audit.actions, models.AuditActionAccountHidden)
}

func (s *AccountServiceSuite) TestHide_AlreadyHidden() {
	account := s.userAccount()
	account.Status = models.AccountStatusHidden

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	result, err := s.service.Hide(s.userActor, s.testAccountID)
	s.ErrorIs(err, models.ErrAccountAlreadyHidden)
	s.Nil(result)
}

// Test Restore functionality

func (s *AccountServiceSuite) TestRestore_ManualAccount() {
	account := s.userAccount()
	account.Status = models.AccountStatusHidden

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().Update(gomock.Any()).Return(nil)

	restored, err := s.service.Restore(s.userActor, s.testAccountID)
	s.NoError(err)
	s.Equal(models.AccountStatusActive, restored.Status)
	s.Contains(s.audit.actions, models.AuditActionAccountRestored)
}

func (s *AccountServiceSuite) TestRestore_NotHidden() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(s.userAccount(), nil)

	result, err := s.service.Restore(s.userActor, s.testAccountID)
	s.ErrorIs(err, models.ErrAccountNotHidden)
	s.Nil(result)
}

func (s *AccountServiceSuite) TestRestore_RevokedConnectionRequiresRelink() {
	account := s.userAccount()
	account.Status = models.AccountStatusHidden
	account.Source = models.AccountSourcePlaid
	s.connections.status = models.ConnectionStatusRevoked

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	result, err := s.service.Restore(s.userActor, s.testAccountID)
	s.ErrorIs(err, ErrRelinkRequired)
	s.Nil(result)
}

func (s *AccountServiceSuite) TestRestore_ProviderUnavailableSurfacesSentinel() {
	account := s.userAccount()
	account.Status = models.AccountStatusHidden
	account.Source = models.AccountSourcePlaid
	s.connections.status = models.ConnectionStatusUnknown
	s.connections.err = ErrProviderUnavailable

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	result, err := s.service.Restore(s.userActor, s.testAccountID)
	s.ErrorIs(err, ErrProviderUnavailable)
	s.Nil(result)
}

func (s *AccountServiceSuite) TestRestore_HealthyConnectionSucceeds() {
	account := s.userAccount()
	account.Status = models.AccountStatusHidden
	account.Source = models.AccountSourcePlaid

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().Update(gomock.Any()).Return(nil)

	restored, err := s.service.Restore(s.userActor, s.testAccountID)
	s.NoError(err)
	s.Equal(models.AccountStatusActive, restored.Status)
}

// Test Sync functionality

func (s *AccountServiceSuite) TestSync_ManualAccountRejected() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(s.userAccount(), nil)

	result, err := s.service.Sync(s.userActor, s.testAccountID)
	s.ErrorIs(err, ErrSyncNotSupported)
	s.Contains(err.Error(), "requires a")
	s.Nil(result)
}

func (s *AccountServiceSuite) TestSync_ProviderLinkedAccount() {
	account := s.userAccount()
	account.Source = models.AccountSourcePlaid
	syncErr := "ITEM_LOGIN_REQUIRED"
	account.SyncError = &syncErr

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().Update(gomock.Any()).Return(nil)

	synced, err := s.service.Sync(s.userActor, s.testAccountID)
	s.NoError(err)
	s.NotNil(synced.LastSyncAt)
	s.Nil(synced.SyncError)
	s.Contains(s.audit.actions, models.AuditActionAccountSynced)
}

// Test CheckRestoreEligibility functionality

func (s *AccountServiceSuite) TestCheckRestoreEligibility_NotHidden() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(s.userAccount(), nil)

	eligibility, err := s.service.CheckRestoreEligibility(s.userActor, s.testAccountID)
	s.NoError(err)
	s.False(eligibility.CanRestore)
	s.Contains(eligibility.Reason, "hidden")
}

func (s *AccountServiceSuite) TestCheckRestoreEligibility_ManualAlwaysRestorable() {
	account := s.userAccount()
	account.Status = models.AccountStatusHidden

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	eligibility, err := s.service.CheckRestoreEligibility(s.userActor, s.testAccountID)
	s.NoError(err)
	s.True(eligibility.CanRestore)
	s.False(eligibility.RequiresRelink)
}

func (s *AccountServiceSuite) TestCheckRestoreEligibility_RevokedConnection() {
	account := s.userAccount()
	account.Status = models.AccountStatusHidden
	account.Source = models.AccountSourcePlaid
	s.connections.status = models.ConnectionStatusRevoked

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	eligibility, err := s.service.CheckRestoreEligibility(s.userActor, s.testAccountID)
	s.NoError(err)
	s.False(eligibility.CanRestore)
	s.True(eligibility.RequiresRelink)
	s.Equal(models.ConnectionStatusRevoked, eligibility.ConnectionStatus)
}
