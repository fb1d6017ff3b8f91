package services

import (
	"walletwise/internal/models"

	"github.com/shopspring/decimal"
)

// balanceNormalizer implements BalanceNormalizerInterface. Stateless: the
// same inputs always produce the same view.
type balanceNormalizer struct{}

// NewBalanceNormalizer creates the normalizer
func NewBalanceNormalizer() BalanceNormalizerInterface {
	return &balanceNormalizer{}
}

// Normalize maps an account type and raw balance to its asset/liability
// classification, display form, and aggregate contributions. Raw balances
// keep the provider's sign convention: liability balances arrive at or
// below zero, and a negative balance on an asset-type account is an
// overdraft.
func (n *balanceNormalizer) Normalize(accountType string, balance decimal.Decimal, creditLimit *decimal.Decimal) models.NormalizedBalance {
	switch accountType {
	case models.AccountTypeCreditCard, models.AccountTypeLoan, models.AccountTypeMortgage:
		return normalizeLiability(accountType, balance, creditLimit)
	case models.AccountTypeChecking, models.AccountTypeSavings, models.AccountTypeInvestment,
		models.AccountTypeOther:
		return normalizeAsset(balance)
	default:
		// Unknown types get the OTHER treatment rather than a panic; the
		// validator keeps them out of storage in the first place.
		return normalizeAsset(balance)
	}
}

func normalizeAsset(balance decimal.Decimal) models.NormalizedBalance {
	if balance.IsNegative() {
		// An overdrawn asset account counts against net worth, not for it.
		overdrawn := balance.Abs()
		return models.NormalizedBalance{
			Nature:                models.AccountNatureLiability,
			DisplayAmount:         overdrawn,
			DisplayLabel:          models.BalanceLabelOverdrawn,
			NetWorthEffect:        models.NetWorthEffectNegative,
			AssetContribution:     decimal.Zero,
			LiabilityContribution: overdrawn,
			AvailableCredit:       decimal.Zero,
		}
	}

	return models.NormalizedBalance{
		Nature:                models.AccountNatureAsset,
		DisplayAmount:         balance,
		DisplayLabel:          models.BalanceLabelAvailable,
		NetWorthEffect:        models.NetWorthEffectPositive,
		AssetContribution:     balance,
		LiabilityContribution: decimal.Zero,
		AvailableCredit:       decimal.Zero,
	}
}

func normalizeLiability(accountType string, balance decimal.Decimal, creditLimit *decimal.Decimal) models.NormalizedBalance {
	owed := balance.Abs()

	label := models.BalanceLabelOwed
	effect := models.NetWorthEffectNegative
	if balance.IsZero() {
		label = models.BalanceLabelPaidOff
		effect = models.NetWorthEffectNeutral
	}

	return models.NormalizedBalance{
		Nature:                models.AccountNatureLiability,
		DisplayAmount:         owed,
		DisplayLabel:          label,
		NetWorthEffect:        effect,
		AssetContribution:     decimal.Zero,
		LiabilityContribution: owed,
		AvailableCredit:       availableCredit(accountType, owed, creditLimit),
	}
}

// availableCredit contributes only for credit cards with a known limit.
func availableCredit(accountType string, owed decimal.Decimal, creditLimit *decimal.Decimal) decimal.Decimal {
	if accountType != models.AccountTypeCreditCard || creditLimit == nil {
		return decimal.Zero
	}

	remaining := creditLimit.Sub(owed)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
