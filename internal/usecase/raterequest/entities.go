package raterequest

import (
	"time"

	"dealer-finance-api/internal/domain/finance"
	domain "dealer-finance-api/internal/domain/raterequest"
)

type SubmitInput struct {
	Name      string
	Email     string
	Mobile    string
	Inputs    finance.LoanInputs
	Rates     finance.RateQuote
	Breakdown finance.LoanBreakdown
}

type ReplyInput struct {
	RequestID  string
	AdminReply string
	RepliedBy  string
}

// CalculationData flattens the snapshot into one JSON object, the shape the
// calculator UI submits and the back office reads.
type CalculationData struct {
	finance.LoanInputs
	finance.RateQuote
	finance.LoanBreakdown
}

type RateRequestDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Mobile          string          `json:"mobile"`
	CalculationData CalculationData `json:"calculationData"`
	Status          string          `json:"status"`
	AdminReply      string          `json:"adminReply,omitempty"`
	RepliedBy       string          `json:"repliedBy,omitempty"`
	RepliedAt       *time.Time      `json:"repliedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func toDTO(r *domain.RateRequest) *RateRequestDTO {
	return &RateRequestDTO{
		ID:     r.RequestID,
		Name:   r.Name,
		Email:  r.Email,
		Mobile: r.Mobile,
		CalculationData: CalculationData{
			LoanInputs:    r.Inputs,
			RateQuote:     r.Rates,
			LoanBreakdown: r.Breakdown,
		},
		Status:     string(r.Status),
		AdminReply: r.AdminReply,
		RepliedBy:  r.RepliedBy,
		RepliedAt:  r.RepliedAt,
		CreatedAt:  r.CreatedAt,
	}
}
