// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	reflect "reflect"
	time "time"
	models "walletwise/internal/models"
	services "walletwise/internal/services"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
	decimal "github.com/shopspring/decimal"
)

// MockAccountServiceInterface is a mock of AccountServiceInterface interface.
type MockAccountServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAccountServiceInterfaceMockRecorder
}

// MockAccountServiceInterfaceMockRecorder is the mock recorder for MockAccountServiceInterface.
type MockAccountServiceInterfaceMockRecorder struct {
	mock *MockAccountServiceInterface
}

// NewMockAccountServiceInterface creates a new mock instance.
func NewMockAccountServiceInterface(ctrl *gomock.Controller) *MockAccountServiceInterface {
	mock := &MockAccountServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAccountServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountServiceInterface) EXPECT() *MockAccountServiceInterfaceMockRecorder {
	return m.recorder
}

// CheckDeletionEligibility mocks base method.
func (m *MockAccountServiceInterface) CheckDeletionEligibility(actor models.Actor, accountID uuid.UUID) (*models.DeletionEligibility, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckDeletionEligibility", actor, accountID)
	ret0, _ := ret[0].(*models.DeletionEligibility)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckDeletionEligibility indicates an expected call of CheckDeletionEligibility.
func (mr *MockAccountServiceInterfaceMockRecorder) CheckDeletionEligibility(actor, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckDeletionEligibility", reflect.TypeOf((*MockAccountServiceInterface)(nil).CheckDeletionEligibility), actor, accountID)
}

// CheckRestoreEligibility mocks base method.
func (m *MockAccountServiceInterface) CheckRestoreEligibility(actor models.Actor, accountID uuid.UUID) (*models.RestoreEligibility, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckRestoreEligibility", actor, accountID)
	ret0, _ := ret[0].(*models.RestoreEligibility)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckRestoreEligibility indicates an expected call of CheckRestoreEligibility.
func (mr *MockAccountServiceInterfaceMockRecorder) CheckRestoreEligibility(actor, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckRestoreEligibility", reflect.TypeOf((*MockAccountServiceInterface)(nil).CheckRestoreEligibility), actor, accountID)
}

// Create mocks base method.
func (m *MockAccountServiceInterface) Create(actor models.Actor, params models.CreateAccountParams) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", actor, params)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockAccountServiceInterfaceMockRecorder) Create(actor, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAccountServiceInterface)(nil).Create), actor, params)
}

// Get mocks base method.
func (m *MockAccountServiceInterface) Get(actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", actor, accountID)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockAccountServiceInterfaceMockRecorder) Get(actor, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockAccountServiceInterface)(nil).Get), actor, accountID)
}

// GetBalance mocks base method.
func (m *MockAccountServiceInterface) GetBalance(actor models.Actor, accountID uuid.UUID) (*models.AccountBalance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBalance", actor, accountID)
	ret0, _ := ret[0].(*models.AccountBalance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBalance indicates an expected call of GetBalance.
func (mr *MockAccountServiceInterfaceMockRecorder) GetBalance(actor, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBalance", reflect.TypeOf((*MockAccountServiceInterface)(nil).GetBalance), actor, accountID)
}

// GetFinancialSummary mocks base method.
func (m *MockAccountServiceInterface) GetFinancialSummary(actor models.Actor) (*models.FinancialSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFinancialSummary", actor)
	ret0, _ := ret[0].(*models.FinancialSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetFinancialSummary indicates an expected call of GetFinancialSummary.
func (mr *MockAccountServiceInterfaceMockRecorder) GetFinancialSummary(actor interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFinancialSummary", reflect.TypeOf((*MockAccountServiceInterface)(nil).GetFinancialSummary), actor)
}

// GetSummary mocks base method.
func (m *MockAccountServiceInterface) GetSummary(actor models.Actor) (*models.AccountSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSummary", actor)
	ret0, _ := ret[0].(*models.AccountSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSummary indicates an expected call of GetSummary.
func (mr *MockAccountServiceInterfaceMockRecorder) GetSummary(actor interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSummary", reflect.TypeOf((*MockAccountServiceInterface)(nil).GetSummary), actor)
}

// Hide mocks base method.
func (m *MockAccountServiceInterface) Hide(actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Hide", actor, accountID)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Hide indicates an expected call of Hide.
func (mr *MockAccountServiceInterfaceMockRecorder) Hide(actor, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Hide", reflect.TypeOf((*MockAccountServiceInterface)(nil).Hide), actor, accountID)
}

// List mocks base method.
func (m *MockAccountServiceInterface) List(actor models.Actor, filters models.AccountFilters) ([]*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", actor, filters)
	ret0, _ := ret[0].([]*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockAccountServiceInterfaceMockRecorder) List(actor, filters interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockAccountServiceInterface)(nil).List), actor, filters)
}

// Remove mocks base method.
func (m *MockAccountServiceInterface) Remove(actor models.Actor, accountID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", actor, accountID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Remove indicates an expected call of Remove.
func (mr *MockAccountServiceInterfaceMockRecorder) Remove(actor, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockAccountServiceInterface)(nil).Remove), actor, accountID)
}

// Restore mocks base method.
func (m *MockAccountServiceInterface) Restore(actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Restore", actor, accountID)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Restore indicates an expected call of Restore.
func (mr *MockAccountServiceInterfaceMockRecorder) Restore(actor, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Restore", reflect.TypeOf((*MockAccountServiceInterface)(nil).Restore), actor, accountID)
}

// Sync mocks base method.
func (m *MockAccountServiceInterface) Sync(actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sync", actor, accountID)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Sync indicates an expected call of Sync.
func (mr *MockAccountServiceInterfaceMockRecorder) Sync(actor, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sync", reflect.TypeOf((*MockAccountServiceInterface)(nil).Sync), actor, accountID)
}

// Update mocks base method.
func (m *MockAccountServiceInterface) Update(actor models.Actor, accountID uuid.UUID, params models.UpdateAccountParams) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", actor, accountID, params)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockAccountServiceInterfaceMockRecorder) Update(actor, accountID, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockAccountServiceInterface)(nil).Update), actor, accountID, params)
}

// MockBalanceNormalizerInterface is a mock of BalanceNormalizerInterface interface.
type MockBalanceNormalizerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockBalanceNormalizerInterfaceMockRecorder
}

// MockBalanceNormalizerInterfaceMockRecorder is the mock recorder for MockBalanceNormalizerInterface.
type MockBalanceNormalizerInterfaceMockRecorder struct {
	mock *MockBalanceNormalizerInterface
}

// NewMockBalanceNormalizerInterface creates a new mock instance.
func NewMockBalanceNormalizerInterface(ctrl *gomock.Controller) *MockBalanceNormalizerInterface {
	mock := &MockBalanceNormalizerInterface{ctrl: ctrl}
	mock.recorder = &MockBalanceNormalizerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBalanceNormalizerInterface) EXPECT() *MockBalanceNormalizerInterfaceMockRecorder {
	return m.recorder
}

// Normalize mocks base method.
func (m *MockBalanceNormalizerInterface) Normalize(accountType string, balance decimal.Decimal, creditLimit *decimal.Decimal) models.NormalizedBalance {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Normalize", accountType, balance, creditLimit)
	ret0, _ := ret[0].(models.NormalizedBalance)
	return ret0
}

// Normalize indicates an expected call of Normalize.
func (mr *MockBalanceNormalizerInterfaceMockRecorder) Normalize(accountType, balance, creditLimit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Normalize", reflect.TypeOf((*MockBalanceNormalizerInterface)(nil).Normalize), accountType, balance, creditLimit)
}

// MockConnectionServiceInterface is a mock of ConnectionServiceInterface interface.
type MockConnectionServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockConnectionServiceInterfaceMockRecorder
}

// MockConnectionServiceInterfaceMockRecorder is the mock recorder for MockConnectionServiceInterface.
type MockConnectionServiceInterfaceMockRecorder struct {
	mock *MockConnectionServiceInterface
}

// NewMockConnectionServiceInterface creates a new mock instance.
func NewMockConnectionServiceInterface(ctrl *gomock.Controller) *MockConnectionServiceInterface {
	mock := &MockConnectionServiceInterface{ctrl: ctrl}
	mock.recorder = &MockConnectionServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConnectionServiceInterface) EXPECT() *MockConnectionServiceInterfaceMockRecorder {
	return m.recorder
}

// Status mocks base method.
func (m *MockConnectionServiceInterface) Status(account *models.Account) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Status", account)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Status indicates an expected call of Status.
func (mr *MockConnectionServiceInterfaceMockRecorder) Status(account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Status", reflect.TypeOf((*MockConnectionServiceInterface)(nil).Status), account)
}

// MockCircuitBreakerInterface is a mock of CircuitBreakerInterface interface.
type MockCircuitBreakerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCircuitBreakerInterfaceMockRecorder
}

// MockCircuitBreakerInterfaceMockRecorder is the mock recorder for MockCircuitBreakerInterface.
type MockCircuitBreakerInterfaceMockRecorder struct {
	mock *MockCircuitBreakerInterface
}

// NewMockCircuitBreakerInterface creates a new mock instance.
func NewMockCircuitBreakerInterface(ctrl *gomock.Controller) *MockCircuitBreakerInterface {
	mock := &MockCircuitBreakerInterface{ctrl: ctrl}
	mock.recorder = &MockCircuitBreakerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCircuitBreakerInterface) EXPECT() *MockCircuitBreakerInterfaceMockRecorder {
	return m.recorder
}

// GetState mocks base method.
func (m *MockCircuitBreakerInterface) GetState() services.CircuitBreakerState {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetState")
	ret0, _ := ret[0].(services.CircuitBreakerState)
	return ret0
}

// GetState indicates an expected call of GetState.
func (mr *MockCircuitBreakerInterfaceMockRecorder) GetState() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetState", reflect.TypeOf((*MockCircuitBreakerInterface)(nil).GetState))
}

// IsOpen mocks base method.
func (m *MockCircuitBreakerInterface) IsOpen() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsOpen")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsOpen indicates an expected call of IsOpen.
func (mr *MockCircuitBreakerInterfaceMockRecorder) IsOpen() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsOpen", reflect.TypeOf((*MockCircuitBreakerInterface)(nil).IsOpen))
}

// RecordFailure mocks base method.
func (m *MockCircuitBreakerInterface) RecordFailure() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordFailure")
}

// RecordFailure indicates an expected call of RecordFailure.
func (mr *MockCircuitBreakerInterfaceMockRecorder) RecordFailure() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordFailure", reflect.TypeOf((*MockCircuitBreakerInterface)(nil).RecordFailure))
}

// RecordSuccess mocks base method.
func (m *MockCircuitBreakerInterface) RecordSuccess() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordSuccess")
}

// RecordSuccess indicates an expected call of RecordSuccess.
func (mr *MockCircuitBreakerInterfaceMockRecorder) RecordSuccess() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordSuccess", reflect.TypeOf((*MockCircuitBreakerInterface)(nil).RecordSuccess))
}

// Reset mocks base method.
func (m *MockCircuitBreakerInterface) Reset() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Reset")
}

// Reset indicates an expected call of Reset.
func (mr *MockCircuitBreakerInterfaceMockRecorder) Reset() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reset", reflect.TypeOf((*MockCircuitBreakerInterface)(nil).Reset))
}

// MockAuditRecorderInterface is a mock of AuditRecorderInterface interface.
type MockAuditRecorderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuditRecorderInterfaceMockRecorder
}

// MockAuditRecorderInterfaceMockRecorder is the mock recorder for MockAuditRecorderInterface.
type MockAuditRecorderInterfaceMockRecorder struct {
	mock *MockAuditRecorderInterface
}

// NewMockAuditRecorderInterface creates a new mock instance.
func NewMockAuditRecorderInterface(ctrl *gomock.Controller) *MockAuditRecorderInterface {
	mock := &MockAuditRecorderInterface{ctrl: ctrl}
	mock.recorder = &MockAuditRecorderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuditRecorderInterface) EXPECT() *MockAuditRecorderInterfaceMockRecorder {
	return m.recorder
}

// RecordAccountEvent mocks base method.
func (m *MockAuditRecorderInterface) RecordAccountEvent(actor models.Actor, action string, accountID uuid.UUID, metadata models.JSONBMap) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordAccountEvent", actor, action, accountID, metadata)
}

// RecordAccountEvent indicates an expected call of RecordAccountEvent.
func (mr *MockAuditRecorderInterfaceMockRecorder) RecordAccountEvent(actor, action, accountID, metadata interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordAccountEvent", reflect.TypeOf((*MockAuditRecorderInterface)(nil).RecordAccountEvent), actor, action, accountID, metadata)
}

// MockMetricsRecorderInterface is a mock of MetricsRecorderInterface interface.
type MockMetricsRecorderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsRecorderInterfaceMockRecorder
}

// MockMetricsRecorderInterfaceMockRecorder is the mock recorder for MockMetricsRecorderInterface.
type MockMetricsRecorderInterfaceMockRecorder struct {
	mock *MockMetricsRecorderInterface
}

// NewMockMetricsRecorderInterface creates a new mock instance.
func NewMockMetricsRecorderInterface(ctrl *gomock.Controller) *MockMetricsRecorderInterface {
	mock := &MockMetricsRecorderInterface{ctrl: ctrl}
	mock.recorder = &MockMetricsRecorderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetricsRecorderInterface) EXPECT() *MockMetricsRecorderInterfaceMockRecorder {
	return m.recorder
}

// ObserveSummaryDuration mocks base method.
func (m *MockMetricsRecorderInterface) ObserveSummaryDuration(kind string, duration time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveSummaryDuration", kind, duration)
}

// ObserveSummaryDuration indicates an expected call of ObserveSummaryDuration.
func (mr *MockMetricsRecorderInterfaceMockRecorder) ObserveSummaryDuration(kind, duration interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveSummaryDuration", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).ObserveSummaryDuration), kind, duration)
}

// RecordAccountOperation mocks base method.
func (m *MockMetricsRecorderInterface) RecordAccountOperation(operation, status string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordAccountOperation", operation, status)
}

// RecordAccountOperation indicates an expected call of RecordAccountOperation.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordAccountOperation(operation, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordAccountOperation", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordAccountOperation), operation, status)
}

// RecordDeletionBlocked mocks base method.
func (m *MockMetricsRecorderInterface) RecordDeletionBlocked(blockerCount int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordDeletionBlocked", blockerCount)
}

// RecordDeletionBlocked indicates an expected call of RecordDeletionBlocked.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordDeletionBlocked(blockerCount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordDeletionBlocked", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordDeletionBlocked), blockerCount)
}

// RecordSync mocks base method.
func (m *MockMetricsRecorderInterface) RecordSync(source, status string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordSync", source, status)
}

// RecordSync indicates an expected call of RecordSync.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordSync(source, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordSync", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordSync), source, status)
}

// MockTokenServiceInterface is a mock of TokenServiceInterface interface.
type MockTokenServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceInterfaceMockRecorder
}

// MockTokenServiceInterfaceMockRecorder is the mock recorder for MockTokenServiceInterface.
type MockTokenServiceInterfaceMockRecorder struct {
	mock *MockTokenServiceInterface
}

// NewMockTokenServiceInterface creates a new mock instance.
func NewMockTokenServiceInterface(ctrl *gomock.Controller) *MockTokenServiceInterface {
	mock := &MockTokenServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTokenServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenServiceInterface) EXPECT() *MockTokenServiceInterfaceMockRecorder {
	return m.recorder
}

// ExtractTokenFromHeader mocks base method.
func (m *MockTokenServiceInterface) ExtractTokenFromHeader(header string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtractTokenFromHeader", header)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExtractTokenFromHeader indicates an expected call of ExtractTokenFromHeader.
func (mr *MockTokenServiceInterfaceMockRecorder) ExtractTokenFromHeader(header interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtractTokenFromHeader", reflect.TypeOf((*MockTokenServiceInterface)(nil).ExtractTokenFromHeader), header)
}

// GenerateToken mocks base method.
func (m *MockTokenServiceInterface) GenerateToken(actor models.Actor, subject string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateToken", actor, subject)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateToken indicates an expected call of GenerateToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateToken(actor, subject interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateToken), actor, subject)
}

// ValidateToken mocks base method.
func (m *MockTokenServiceInterface) ValidateToken(token string) (*services.ActorClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateToken", token)
	ret0, _ := ret[0].(*services.ActorClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateToken indicates an expected call of ValidateToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateToken(token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateToken), token)
}

// MockSampleDataServiceInterface is a mock of SampleDataServiceInterface interface.
type MockSampleDataServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSampleDataServiceInterfaceMockRecorder
}

// MockSampleDataServiceInterfaceMockRecorder is the mock recorder for MockSampleDataServiceInterface.
type MockSampleDataServiceInterfaceMockRecorder struct {
	mock *MockSampleDataServiceInterface
}

// NewMockSampleDataServiceInterface creates a new mock instance.
func NewMockSampleDataServiceInterface(ctrl *gomock.Controller) *MockSampleDataServiceInterface {
	mock := &MockSampleDataServiceInterface{ctrl: ctrl}
	mock.recorder = &MockSampleDataServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSampleDataServiceInterface) EXPECT() *MockSampleDataServiceInterfaceMockRecorder {
	return m.recorder
}

// SeedDemoData mocks base method.
func (m *MockSampleDataServiceInterface) SeedDemoData(owner models.Owner) ([]*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SeedDemoData", owner)
	ret0, _ := ret[0].([]*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SeedDemoData indicates an expected call of SeedDemoData.
func (mr *MockSampleDataServiceInterfaceMockRecorder) SeedDemoData(owner interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SeedDemoData", reflect.TypeOf((*MockSampleDataServiceInterface)(nil).SeedDemoData), owner)
}
