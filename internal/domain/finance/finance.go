package finance

// Frequency is how often a repayment falls due.
type Frequency string

const (
	FrequencyMonthly     Frequency = "monthly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyWeekly      Frequency = "weekly"
)

// PeriodsPerYear returns 0 for an unknown frequency, which propagates to a
// zero payment rather than an error.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencyFortnightly:
		return 26
	case FrequencyWeekly:
		return 52
	}
	return 0
}

// LoanInputs are the parameters the customer picks in the calculator.
// DepositAmount may exceed VehiclePrice; the calculator does not reject it.
type LoanInputs struct {
	VehiclePrice       float64   `json:"vehiclePrice"`
	VehicleYear        *int      `json:"vehicleYear,omitempty"`
	DepositAmount      float64   `json:"depositAmount"`
	LoanTermYears      int       `json:"loanTermYears"`
	RepaymentFrequency Frequency `json:"repaymentFrequency"`
	HasBalloonPayment  bool      `json:"hasBalloonPayment"`
	BalloonPercentage  int       `json:"balloonPercentage"`
}

// RateQuote is a (nominal, comparison) rate pair in percent per annum.
type RateQuote struct {
	NominalRatePercent    float64 `json:"nominalRatePercent"`
	ComparisonRatePercent float64 `json:"comparisonRatePercent"`
}

// LoanBreakdown is the calculator output. Values are unrounded; formatting
// to whole currency units happens at display time.
type LoanBreakdown struct {
	LoanAmount      float64 `json:"loanAmount"`
	PeriodicPayment float64 `json:"periodicPayment"`
	TotalInterest   float64 `json:"totalInterest"`
	BalloonAmount   float64 `json:"balloonAmount"`
	TotalCostOfLoan float64 `json:"totalCostOfLoan"`
}
