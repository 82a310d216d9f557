package finance

import "time"

// Loans at or below this amount always get the small-loan tier, regardless
// of vehicle year.
const smallLoanMax = 5000

type rateTier struct {
	nominal    float64
	comparison float64
}

func (t rateTier) quote() RateQuote {
	return RateQuote{NominalRatePercent: t.nominal, ComparisonRatePercent: t.comparison}
}

var (
	tierSmallLoan = rateTier{nominal: 8.49, comparison: 9.19}
	tierFrom2024  = rateTier{nominal: 6.99, comparison: 7.69}
	tier2020to2023 = rateTier{nominal: 7.49, comparison: 8.19}
	// Same numbers as the 2020-2023 band today, but the bands are priced
	// independently and may diverge; keep them separate.
	tier2013to2019 = rateTier{nominal: 7.49, comparison: 8.19}
	tierPre2013    = rateTier{nominal: 8.49, comparison: 9.19}
)

// LookupRates picks the rate tier for a loan. A nil vehicleYear means the
// year was absent or unparsable and is treated as the current calendar year.
// Every input yields a quote; there are no error cases.
func LookupRates(vehicleYear *int, loanAmount float64) RateQuote {
	if loanAmount <= smallLoanMax {
		return tierSmallLoan.quote()
	}

	year := time.Now().Year()
	if vehicleYear != nil {
		year = *vehicleYear
	}

	switch {
	case year >= 2024:
		return tierFrom2024.quote()
	case year >= 2020:
		return tier2020to2023.quote()
	case year >= 2013:
		return tier2013to2019.quote()
	default:
		return tierPre2013.quote()
	}
}
