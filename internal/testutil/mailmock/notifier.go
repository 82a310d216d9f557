package mailmock

import (
	"context"

	domain "dealer-finance-api/internal/domain/raterequest"
)

// Notifier is a function-backed mock for the usecase Notifier port. The
// zero value succeeds silently on both sends.
type Notifier struct {
	NotifyStaffFn    func(ctx context.Context, r *domain.RateRequest) error
	NotifyCustomerFn func(ctx context.Context, r *domain.RateRequest) error
}

func (m *Notifier) NotifyStaff(ctx context.Context, r *domain.RateRequest) error {
	if m.NotifyStaffFn != nil {
		return m.NotifyStaffFn(ctx, r)
	}
	return nil
}

func (m *Notifier) NotifyCustomer(ctx context.Context, r *domain.RateRequest) error {
	if m.NotifyCustomerFn != nil {
		return m.NotifyCustomerFn(ctx, r)
	}
	return nil
}
