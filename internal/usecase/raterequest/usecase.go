package raterequest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	domain "dealer-finance-api/internal/domain/raterequest"
	"dealer-finance-api/pkg/id"

	"gorm.io/gorm"
)

// Notifier sends the two lead emails. Both sends are best-effort: a failure
// is logged by the usecase and never fails the enclosing operation.
type Notifier interface {
	NotifyStaff(ctx context.Context, r *domain.RateRequest) error
	NotifyCustomer(ctx context.Context, r *domain.RateRequest) error
}

type Usecase struct {
	repo     domain.Repository
	notifier Notifier
}

func NewUsecase(r domain.Repository, n Notifier) *Usecase {
	return &Usecase{repo: r, notifier: n}
}

// Submit persists the lead with status pending, then notifies staff.
// Persist-then-notify is deliberately non-atomic: a crash between the two
// steps leaves a stored record without a notification, which is accepted.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*RateRequestDTO, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Mobile) == "" {
		return nil, domain.ErrInvalidContact
	}

	r := &domain.RateRequest{
		RequestID: id.NewID24(),
		Name:      in.Name,
		Email:     in.Email,
		Mobile:    in.Mobile,
		Inputs:    in.Inputs,
		Rates:     in.Rates,
		Breakdown: in.Breakdown,
		Status:    domain.StatusPending,
	}
	if err := u.repo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create rate request: %w", err)
	}

	if err := u.notifier.NotifyStaff(ctx, r); err != nil {
		log.Printf("rate request %s: staff notification failed: %v", r.RequestID, err)
	}
	return toDTO(r), nil
}

func (u *Usecase) List(ctx context.Context) ([]RateRequestDTO, error) {
	rs, err := u.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rate requests: %w", err)
	}
	out := make([]RateRequestDTO, 0, len(rs))
	for i := range rs {
		out = append(out, *toDTO(&rs[i]))
	}
	return out, nil
}

// Reply stores the admin's answer and flips a pending request to answered,
// then notifies the customer (best-effort).
func (u *Usecase) Reply(ctx context.Context, in ReplyInput) (*RateRequestDTO, error) {
	if strings.TrimSpace(in.AdminReply) == "" {
		return nil, domain.ErrEmptyReply
	}

	r, err := u.repo.GetByRequestID(ctx, in.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("load rate request %s: %w", in.RequestID, err)
	}

	r.Answer(in.AdminReply, in.RepliedBy, time.Now().UTC())
	if err := u.repo.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("save reply for %s: %w", in.RequestID, err)
	}

	if err := u.notifier.NotifyCustomer(ctx, r); err != nil {
		log.Printf("rate request %s: customer notification failed: %v", r.RequestID, err)
	}
	return toDTO(r), nil
}

func (u *Usecase) Delete(ctx context.Context, requestID string) error {
	rows, err := u.repo.Delete(ctx, requestID)
	if err != nil {
		return fmt.Errorf("delete rate request %s: %w", requestID, err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
