package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain "dealer-finance-api/internal/domain/raterequest"
	"dealer-finance-api/internal/testutil/mailmock"
	"dealer-finance-api/internal/testutil/ratereqmock"
	uc "dealer-finance-api/internal/usecase/raterequest"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func validSaveBody() map[string]any {
	return map[string]any{
		"name":   "Alex Carter",
		"email":  "alex@example.com",
		"mobile": "0400000000",
		"calculationData": map[string]any{
			"vehiclePrice":          30000,
			"vehicleYear":           2024,
			"depositAmount":         5000,
			"loanTermYears":         5,
			"repaymentFrequency":    "monthly",
			"hasBalloonPayment":     false,
			"balloonPercentage":     0,
			"nominalRatePercent":    6.99,
			"comparisonRatePercent": 7.69,
			"loanAmount":            25000,
			"periodicPayment":       494.91,
			"totalInterest":         4694.6,
			"balloonAmount":         0,
			"totalCostOfLoan":       29694.6,
		},
	}
}

func newRateRequestHandler(repo *ratereqmock.Repo, notifier *mailmock.Notifier) *RateRequestHandler {
	return NewRateRequestHandler(uc.NewUsecase(repo, notifier))
}

// -------- tests --------

func TestSaveRateRequest_Success(t *testing.T) {
	e := newEchoWithValidator()

	repo := &ratereqmock.Repo{
		CreateFn: func(ctx context.Context, r *domain.RateRequest) error {
			r.CreatedAt = time.Now().UTC()
			return nil
		},
	}
	h := newRateRequestHandler(repo, &mailmock.Notifier{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/save-rate-request", mustJSON(validSaveBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SaveRateRequest(c); err != nil {
		t.Fatalf("SaveRateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	id, _ := got["id"].(string)
	if len(id) != 24 {
		t.Fatalf("id = %q, want 24 hex chars", id)
	}
	if got["message"] == "" {
		t.Fatalf("missing message: %v", got)
	}
}

func TestSaveRateRequest_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := newRateRequestHandler(&ratereqmock.Repo{}, &mailmock.Notifier{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/save-rate-request", strings.NewReader(`{"name":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SaveRateRequest(c); err != nil {
		t.Fatalf("SaveRateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSaveRateRequest_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := newRateRequestHandler(&ratereqmock.Repo{}, &mailmock.Notifier{})

	body := validSaveBody()
	body["email"] = "not-an-email"
	calc := body["calculationData"].(map[string]any)
	calc["loanTermYears"] = 9       // above the 1..7 range
	calc["repaymentFrequency"] = "yearly"
	calc["balloonPercentage"] = 13 // not a multiple of 5

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/save-rate-request", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SaveRateRequest(c); err != nil {
		t.Fatalf("SaveRateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if er.Error != "validation failed" {
		t.Fatalf("error = %q, want %q", er.Error, "validation failed")
	}
	if !containsFieldMsg(er.Details, "Email", "valid email") {
		t.Fatalf("missing email detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "LoanTermYears", "less than or equal to 7") {
		t.Fatalf("missing term detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "BalloonPercentage", "multiple of 5") {
		t.Fatalf("missing mult5 detail: %+v", er.Details)
	}
}

func TestSaveRateRequest_RepoFailureIs500(t *testing.T) {
	e := newEchoWithValidator()
	repo := &ratereqmock.Repo{
		CreateFn: func(ctx context.Context, r *domain.RateRequest) error {
			return gorm.ErrInvalidDB
		},
	}
	h := newRateRequestHandler(repo, &mailmock.Notifier{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/save-rate-request", mustJSON(validSaveBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SaveRateRequest(c); err != nil {
		t.Fatalf("SaveRateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestListRateRequests_Success(t *testing.T) {
	e := newEchoWithValidator()
	repo := &ratereqmock.Repo{
		ListNewestFirstFn: func(ctx context.Context) ([]domain.RateRequest, error) {
			return []domain.RateRequest{
				{RequestID: "aaaaaaaaaaaaaaaaaaaaaaaa", Status: domain.StatusPending},
				{RequestID: "bbbbbbbbbbbbbbbbbbbbbbbb", Status: domain.StatusAnswered},
			}, nil
		},
	}
	h := newRateRequestHandler(repo, &mailmock.Notifier{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/rate-requests", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListRateRequests(c); err != nil {
		t.Fatalf("ListRateRequests error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var dtos []uc.RateRequestDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dtos); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(dtos) != 2 || dtos[0].ID != "aaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("unexpected dtos: %+v", dtos)
	}
}

func TestReplyRateRequest_BlankReply(t *testing.T) {
	e := newEchoWithValidator()
	h := newRateRequestHandler(&ratereqmock.Repo{}, &mailmock.Notifier{})

	body := map[string]any{"requestId": "aaaaaaaaaaaaaaaaaaaaaaaa", "adminReply": "   ", "repliedBy": "Dana"}
	req := httptest.NewRequest(stdhttp.MethodPut, "/api/rate-requests", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ReplyRateRequest(c); err != nil {
		t.Fatalf("ReplyRateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReplyRateRequest_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	repo := &ratereqmock.Repo{
		GetByRequestIDFn: func(ctx context.Context, id string) (*domain.RateRequest, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newRateRequestHandler(repo, &mailmock.Notifier{})

	body := map[string]any{"requestId": "ffffffffffffffffffffffff", "adminReply": "hello", "repliedBy": "Dana"}
	req := httptest.NewRequest(stdhttp.MethodPut, "/api/rate-requests", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ReplyRateRequest(c); err != nil {
		t.Fatalf("ReplyRateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestReplyRateRequest_Success(t *testing.T) {
	e := newEchoWithValidator()
	repo := &ratereqmock.Repo{
		GetByRequestIDFn: func(ctx context.Context, id string) (*domain.RateRequest, error) {
			return &domain.RateRequest{
				RequestID: id,
				Name:      "Alex Carter",
				Email:     "alex@example.com",
				Status:    domain.StatusPending,
				CreatedAt: time.Now().UTC().Add(-time.Hour),
			}, nil
		},
	}
	h := newRateRequestHandler(repo, &mailmock.Notifier{})

	body := map[string]any{"requestId": "aaaaaaaaaaaaaaaaaaaaaaaa", "adminReply": "We can do 6.99%.", "repliedBy": "Dana"}
	req := httptest.NewRequest(stdhttp.MethodPut, "/api/rate-requests", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ReplyRateRequest(c); err != nil {
		t.Fatalf("ReplyRateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var got struct {
		Message     string            `json:"message"`
		RateRequest uc.RateRequestDTO `json:"rateRequest"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.RateRequest.Status != string(domain.StatusAnswered) {
		t.Fatalf("status = %s, want answered", got.RateRequest.Status)
	}
	if got.RateRequest.RepliedAt == nil {
		t.Fatal("repliedAt not set")
	}
}

func TestDeleteRateRequest_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	repo := &ratereqmock.Repo{
		DeleteFn: func(ctx context.Context, id string) (int64, error) { return 0, nil },
	}
	h := newRateRequestHandler(repo, &mailmock.Notifier{})

	body := map[string]any{"requestId": "ffffffffffffffffffffffff"}
	req := httptest.NewRequest(stdhttp.MethodDelete, "/api/rate-requests", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.DeleteRateRequest(c); err != nil {
		t.Fatalf("DeleteRateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteRateRequest_Success(t *testing.T) {
	e := newEchoWithValidator()
	repo := &ratereqmock.Repo{
		DeleteFn: func(ctx context.Context, id string) (int64, error) { return 1, nil },
	}
	h := newRateRequestHandler(repo, &mailmock.Notifier{})

	body := map[string]any{"requestId": "aaaaaaaaaaaaaaaaaaaaaaaa"}
	req := httptest.NewRequest(stdhttp.MethodDelete, "/api/rate-requests", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.DeleteRateRequest(c); err != nil {
		t.Fatalf("DeleteRateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
