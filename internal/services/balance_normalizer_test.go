package services

import (
	"testing"

	"walletwise/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BalanceNormalizerSuite defines the test suite for the balance normalizer
type BalanceNormalizerSuite struct {
	suite.Suite
	normalizer BalanceNormalizerInterface
}

func (s *BalanceNormalizerSuite) SetupTest() {
	s.normalizer = NewBalanceNormalizer()
}

func TestBalanceNormalizerSuite(t *testing.T) {
	suite.Run(t, new(BalanceNormalizerSuite))
}

func (s *BalanceNormalizerSuite) TestNormalize_CheckingPositiveBalance() {
	result := s.normalizer.Normalize(models.AccountTypeChecking, decimal.NewFromInt(5000), nil)

	s.Equal(models.AccountNatureAsset, result.Nature)
	s.True(result.DisplayAmount.Equal(decimal.NewFromInt(5000)))
	s.Equal(models.BalanceLabelAvailable, result.DisplayLabel)
	s.Equal(models.NetWorthEffectPositive, result.NetWorthEffect)
	s.True(result.AssetContribution.Equal(decimal.NewFromInt(5000)))
	s.True(result.LiabilityContribution.IsZero())
}

func (s *BalanceNormalizerSuite) TestNormalize_OverdrawnCheckingBecomesLiability() {
	result := s.normalizer.Normalize(models.AccountTypeChecking, decimal.NewFromInt(-250), nil)

	s.Equal(models.AccountNatureLiability, result.Nature)
	s.True(result.DisplayAmount.Equal(decimal.NewFromInt(250)))
	s.Equal(models.BalanceLabelOverdrawn, result.DisplayLabel)
	s.Equal(models.NetWorthEffectNegative, result.NetWorthEffect)
	s.True(result.AssetContribution.IsZero())
	s.True(result.LiabilityContribution.Equal(decimal.NewFromInt(250)))
}

func (s *BalanceNormalizerSuite) TestNormalize_CreditCardOwedWithAvailableCredit() {
	limit := decimal.NewFromInt(10000)
	result := s.normalizer.Normalize(models.AccountTypeCreditCard, decimal.NewFromInt(-2500), &limit)

	s.Equal(models.AccountNatureLiability, result.Nature)
	s.True(result.DisplayAmount.Equal(decimal.NewFromInt(2500)))
	s.Equal(models.BalanceLabelOwed, result.DisplayLabel)
	s.Equal(models.NetWorthEffectNegative, result.NetWorthEffect)
	s.True(result.LiabilityContribution.Equal(decimal.NewFromInt(2500)))
	s.True(result.AvailableCredit.Equal(decimal.NewFromInt(7500)))
}

func (s *BalanceNormalizerSuite) TestNormalize_CreditCardNoLimitNoAvailableCredit() {
	result := s.normalizer.Normalize(models.AccountTypeCreditCard, decimal.NewFromInt(-2500), nil)

	s.True(result.AvailableCredit.IsZero())
	s.True(result.LiabilityContribution.Equal(decimal.NewFromInt(2500)))
}

func (s *BalanceNormalizerSuite) TestNormalize_CreditCardOverLimitClampsToZero() {
	limit := decimal.NewFromInt(1000)
	result := s.normalizer.Normalize(models.AccountTypeCreditCard, decimal.NewFromInt(-1500), &limit)

	s.True(result.AvailableCredit.IsZero())
}

func (s *BalanceNormalizerSuite) TestNormalize_PaidOffLiabilityIsNeutral() {
	result := s.normalizer.Normalize(models.AccountTypeLoan, decimal.Zero, nil)

	s.Equal(models.AccountNatureLiability, result.Nature)
	s.True(result.DisplayAmount.IsZero())
	s.Equal(models.BalanceLabelPaidOff, result.DisplayLabel)
	s.Equal(models.NetWorthEffectNeutral, result.NetWorthEffect)
	s.True(result.LiabilityContribution.IsZero())
}

func (s *BalanceNormalizerSuite) TestNormalize_LoanHasNoAvailableCredit() {
	limit := decimal.NewFromInt(50000)
	result := s.normalizer.Normalize(models.AccountTypeLoan, decimal.NewFromInt(-15000), &limit)

	s.Equal(models.AccountNatureLiability, result.Nature)
	s.True(result.DisplayAmount.Equal(decimal.NewFromInt(15000)))
	s.True(result.AvailableCredit.IsZero())
}

func (s *BalanceNormalizerSuite) TestNormalize_MortgageIsLiability() {
	result := s.normalizer.Normalize(models.AccountTypeMortgage, decimal.NewFromInt(-200000), nil)

	s.Equal(models.AccountNatureLiability, result.Nature)
	s.True(result.LiabilityContribution.Equal(decimal.NewFromInt(200000)))
}

func (s *BalanceNormalizerSuite) TestNormalize_InvestmentIsAsset() {
	result := s.normalizer.Normalize(models.AccountTypeInvestment, decimal.NewFromInt(31000), nil)

	s.Equal(models.AccountNatureAsset, result.Nature)
	s.True(result.AssetContribution.Equal(decimal.NewFromInt(31000)))
}

func (s *BalanceNormalizerSuite) TestNormalize_UnknownTypeTreatedAsAsset() {
	result := s.normalizer.Normalize("collectibles", decimal.NewFromInt(100), nil)

	s.Equal(models.AccountNatureAsset, result.Nature)
}

func (s *BalanceNormalizerSuite) TestNormalize_ZeroBalanceAsset() {
	result := s.normalizer.Normalize(models.AccountTypeSavings, decimal.Zero, nil)

	s.Equal(models.AccountNatureAsset, result.Nature)
	s.Equal(models.BalanceLabelAvailable, result.DisplayLabel)
	s.Equal(models.NetWorthEffectPositive, result.NetWorthEffect)
}
