package paychangu

import "slices"

type currencySet struct {
	codes         []string
	unsupportedAs string
}

var (
	generalCurrencies = currencySet{
		codes:         []string{"MWK", "NGN", "ZAR", "GBP", "USD", "ZMW"},
		unsupportedAs: " currency not supported!",
	}
	cardCurrencies = currencySet{
		codes:         []string{"USD"},
		unsupportedAs: " currency not supported for cards!",
	}
)

// SupportedCurrencies returns the currency codes accepted by payment links,
// direct charges and payouts.
func SupportedCurrencies() []string {
	return slices.Clone(generalCurrencies.codes)
}

// CardCurrencies returns the currency codes accepted when creating a virtual card.
func CardCurrencies() []string {
	return slices.Clone(cardCurrencies.codes)
}

func (s currencySet) validate(code string) error {
	if slices.Contains(s.codes, code) {
		return nil
	}
	return &InvalidInputError{Message: code + s.unsupportedAs}
}
