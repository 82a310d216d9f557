package http

import (
	"errors"
	"net/http"

	"dealer-finance-api/internal/domain/finance"
	domain "dealer-finance-api/internal/domain/raterequest"
	uc "dealer-finance-api/internal/usecase/raterequest"

	"github.com/labstack/echo/v4"
)

type RateRequestHandler struct{ uc *uc.Usecase }

func NewRateRequestHandler(u *uc.Usecase) *RateRequestHandler {
	return &RateRequestHandler{uc: u}
}

// calculationPayload is the calculator snapshot the UI submits: loan inputs,
// the quoted rates and the computed breakdown, flattened into one object.
type calculationPayload struct {
	VehiclePrice       float64 `json:"vehiclePrice"       validate:"gte=0"`
	VehicleYear        *int    `json:"vehicleYear"`
	DepositAmount      float64 `json:"depositAmount"      validate:"gte=0"`
	LoanTermYears      int     `json:"loanTermYears"      validate:"required,gte=1,lte=7"`
	RepaymentFrequency string  `json:"repaymentFrequency" validate:"required,oneof=monthly fortnightly weekly"`
	HasBalloonPayment  bool    `json:"hasBalloonPayment"`
	BalloonPercentage  int     `json:"balloonPercentage"  validate:"gte=0,lte=100,mult5"`

	NominalRatePercent    float64 `json:"nominalRatePercent"    validate:"gte=0"`
	ComparisonRatePercent float64 `json:"comparisonRatePercent" validate:"gte=0"`

	LoanAmount      float64 `json:"loanAmount"`
	PeriodicPayment float64 `json:"periodicPayment" validate:"gte=0"`
	TotalInterest   float64 `json:"totalInterest"`
	BalloonAmount   float64 `json:"balloonAmount"   validate:"gte=0"`
	TotalCostOfLoan float64 `json:"totalCostOfLoan"`
}

type saveRateRequestReq struct {
	Name            string             `json:"name"   validate:"required"`
	Email           string             `json:"email"  validate:"required,email"`
	Mobile          string             `json:"mobile" validate:"required"`
	CalculationData calculationPayload `json:"calculationData" validate:"required"`
}

func (p calculationPayload) toSubmitInput(name, email, mobile string) uc.SubmitInput {
	return uc.SubmitInput{
		Name:   name,
		Email:  email,
		Mobile: mobile,
		Inputs: finance.LoanInputs{
			VehiclePrice:       p.VehiclePrice,
			VehicleYear:        p.VehicleYear,
			DepositAmount:      p.DepositAmount,
			LoanTermYears:      p.LoanTermYears,
			RepaymentFrequency: finance.Frequency(p.RepaymentFrequency),
			HasBalloonPayment:  p.HasBalloonPayment,
			BalloonPercentage:  p.BalloonPercentage,
		},
		Rates: finance.RateQuote{
			NominalRatePercent:    p.NominalRatePercent,
			ComparisonRatePercent: p.ComparisonRatePercent,
		},
		Breakdown: finance.LoanBreakdown{
			LoanAmount:      p.LoanAmount,
			PeriodicPayment: p.PeriodicPayment,
			TotalInterest:   p.TotalInterest,
			BalloonAmount:   p.BalloonAmount,
			TotalCostOfLoan: p.TotalCostOfLoan,
		},
	}
}

// POST /api/save-rate-request
func (h *RateRequestHandler) SaveRateRequest(c echo.Context) error {
	var req saveRateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Submit(c.Request().Context(), req.CalculationData.toSubmitInput(req.Name, req.Email, req.Mobile))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidContact) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save rate request"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Rate request saved",
		"id":      dto.ID,
	})
}

// GET /api/rate-requests
func (h *RateRequestHandler) ListRateRequests(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list rate requests"})
	}
	return c.JSON(http.StatusOK, dtos)
}

type replyRateRequestReq struct {
	RequestID  string `json:"requestId"  validate:"required"`
	AdminReply string `json:"adminReply"`
	RepliedBy  string `json:"repliedBy"  validate:"required"`
}

// PUT /api/rate-requests
func (h *RateRequestHandler) ReplyRateRequest(c echo.Context) error {
	var req replyRateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Reply(c.Request().Context(), uc.ReplyInput{
		RequestID:  req.RequestID,
		AdminReply: req.AdminReply,
		RepliedBy:  req.RepliedBy,
	})
	switch {
	case errors.Is(err, domain.ErrEmptyReply):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to reply to rate request"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":     "Reply sent",
		"rateRequest": dto,
	})
}

type deleteRateRequestReq struct {
	RequestID string `json:"requestId" validate:"required"`
}

// DELETE /api/rate-requests
func (h *RateRequestHandler) DeleteRateRequest(c echo.Context) error {
	var req deleteRateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	if err := h.uc.Delete(c.Request().Context(), req.RequestID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete rate request"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Rate request deleted"})
}
