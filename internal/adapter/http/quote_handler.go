package http

import (
	"net/http"

	"dealer-finance-api/internal/domain/finance"
	"dealer-finance-api/internal/usecase/quote"

	"github.com/labstack/echo/v4"
)

type QuoteHandler struct{ uc *quote.Usecase }

func NewQuoteHandler(u *quote.Usecase) *QuoteHandler { return &QuoteHandler{uc: u} }

type quoteReq struct {
	VehiclePrice       float64 `json:"vehiclePrice"       validate:"gte=0"`
	VehicleYear        *int    `json:"vehicleYear"`
	DepositAmount      float64 `json:"depositAmount"      validate:"gte=0"`
	LoanTermYears      int     `json:"loanTermYears"      validate:"required,gte=1,lte=7"`
	RepaymentFrequency string  `json:"repaymentFrequency" validate:"required,oneof=monthly fortnightly weekly"`
	HasBalloonPayment  bool    `json:"hasBalloonPayment"`
	BalloonPercentage  int     `json:"balloonPercentage"  validate:"gte=0,lte=100,mult5"`
}

// POST /api/finance/quote
//
// Field-level validation only: a deposit above the vehicle price is allowed
// and yields the calculator's degraded zero-payment breakdown.
func (h *QuoteHandler) Quote(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto := h.uc.Quote(finance.LoanInputs{
		VehiclePrice:       req.VehiclePrice,
		VehicleYear:        req.VehicleYear,
		DepositAmount:      req.DepositAmount,
		LoanTermYears:      req.LoanTermYears,
		RepaymentFrequency: finance.Frequency(req.RepaymentFrequency),
		HasBalloonPayment:  req.HasBalloonPayment,
		BalloonPercentage:  req.BalloonPercentage,
	})
	return c.JSON(http.StatusOK, dto)
}
