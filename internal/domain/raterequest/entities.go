package raterequest

import (
	"time"

	"dealer-finance-api/internal/domain/finance"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAnswered Status = "answered"
)

// RateRequest is a finance-rate lead: the customer's contact details plus a
// snapshot of the calculator inputs and breakdown at submission time.
type RateRequest struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	RequestID string `gorm:"size:24;uniqueIndex:ux_rate_requests_request_id" json:"id"`

	Name   string `gorm:"size:120" json:"name"`
	Email  string `gorm:"size:254" json:"email"`
	Mobile string `gorm:"size:32" json:"mobile"`

	Inputs    finance.LoanInputs    `gorm:"embedded" json:"-"`
	Rates     finance.RateQuote     `gorm:"embedded" json:"-"`
	Breakdown finance.LoanBreakdown `gorm:"embedded" json:"-"`

	Status     Status     `gorm:"type:enum('pending','answered');default:'pending'" json:"status"`
	AdminReply string     `gorm:"type:text" json:"adminReply,omitempty"`
	RepliedBy  string     `gorm:"size:120" json:"repliedBy,omitempty"`
	RepliedAt  *time.Time `json:"repliedAt,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (RateRequest) TableName() string { return "rate_requests" }

// Answer records an admin reply. Setting a non-empty reply on a pending
// request flips it to answered; the transition happens at most once and an
// answered request never reverts to pending, even when the reply is edited.
func (r *RateRequest) Answer(reply, repliedBy string, at time.Time) {
	r.AdminReply = reply
	r.RepliedBy = repliedBy
	r.RepliedAt = &at
	r.Status = StatusAnswered
}
