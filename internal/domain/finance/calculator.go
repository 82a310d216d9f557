package finance

import "math"

// Calculate computes the repayment breakdown for a fixed-rate annuity loan.
//
// The balloon (residual) amount is a percentage of the vehicle price added to
// the total cost as a lump sum; it is deliberately NOT discounted into the
// periodic payment, matching the published calculator.
//
// Calculate is total: out-of-domain inputs (negative amounts, zero term)
// degrade to a zero payment instead of returning an error. In particular
// loanAmount <= 0 is allowed and produces PeriodicPayment == 0.
func Calculate(in LoanInputs, rate RateQuote) LoanBreakdown {
	loanAmount := in.VehiclePrice - in.DepositAmount

	var balloonAmount float64
	if in.HasBalloonPayment {
		balloonAmount = in.VehiclePrice * float64(in.BalloonPercentage) / 100
	}

	periodsPerYear := in.RepaymentFrequency.PeriodsPerYear()
	totalPeriods := in.LoanTermYears * periodsPerYear

	var periodicRate float64
	if periodsPerYear > 0 {
		periodicRate = rate.NominalRatePercent / 100 / float64(periodsPerYear)
	}

	var periodicPayment float64
	if loanAmount > 0 && periodicRate > 0 && totalPeriods > 0 {
		growth := math.Pow(1+periodicRate, float64(totalPeriods))
		periodicPayment = loanAmount * periodicRate * growth / (growth - 1)
	}

	totalRegularPayments := periodicPayment * float64(totalPeriods)
	totalInterest := totalRegularPayments + balloonAmount - loanAmount

	return LoanBreakdown{
		LoanAmount:      loanAmount,
		PeriodicPayment: periodicPayment,
		TotalInterest:   totalInterest,
		BalloonAmount:   balloonAmount,
		TotalCostOfLoan: loanAmount + totalInterest,
	}
}
