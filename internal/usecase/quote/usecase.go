package quote

import "dealer-finance-api/internal/domain/finance"

// Usecase runs the finance calculation engine: rate tier lookup followed by
// the amortization breakdown. Stateless and side-effect free.
type Usecase struct{}

func NewUsecase() *Usecase { return &Usecase{} }

type QuoteDTO struct {
	Rates     finance.RateQuote     `json:"rates"`
	Breakdown finance.LoanBreakdown `json:"breakdown"`
}

func (u *Usecase) Quote(in finance.LoanInputs) QuoteDTO {
	rates := finance.LookupRates(in.VehicleYear, in.VehiclePrice-in.DepositAmount)
	return QuoteDTO{Rates: rates, Breakdown: finance.Calculate(in, rates)}
}
