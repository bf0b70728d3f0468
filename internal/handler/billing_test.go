package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"edumath-pro/internal/client"
	"edumath-pro/internal/dto"
	"edumath-pro/internal/model"
)

// recordingAttemptRepo captures attempt transitions for assertions.
type recordingAttemptRepo struct {
	created   []*model.PaymentAttempt
	completed []string
	cancelled []string
}

func newRecordingAttemptRepo() *recordingAttemptRepo {
	return &recordingAttemptRepo{}
}

func (r *recordingAttemptRepo) Create(ctx context.Context, attempt *model.PaymentAttempt) error {
	r.created = append(r.created, attempt)
	return nil
}

func (r *recordingAttemptRepo) FindByPaymentID(ctx context.Context, mPaymentID string) (*model.PaymentAttempt, error) {
	for _, attempt := range r.created {
		if attempt.MPaymentID == mPaymentID {
			return attempt, nil
		}
	}
	return nil, errors.New("attempt not found")
}

func (r *recordingAttemptRepo) MarkCompleted(ctx context.Context, mPaymentID string) error {
	r.completed = append(r.completed, mPaymentID)
	return nil
}

func (r *recordingAttemptRepo) MarkCancelled(ctx context.Context, mPaymentID string) error {
	r.cancelled = append(r.cancelled, mPaymentID)
	return nil
}

func (a *testApp) checkout(t *testing.T) *client.Checkout {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/auth/signin",
		`{"method":"Google","identifier":"google-user@gmail.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("signin status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = a.do(t, http.MethodPost, "/api/plans/select", `{"plan_type":"basic"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("select plan status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = a.do(t, http.MethodPost, "/api/payment/checkout", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("checkout status = %d, body %s", rec.Code, rec.Body.String())
	}
	checkout := decode[client.Checkout](t, rec)
	return &checkout
}

func TestCheckoutRecordsAttempt(t *testing.T) {
	app := newTestApp()
	checkout := app.checkout(t)

	if len(app.attempts.created) != 1 {
		t.Fatalf("%d attempts recorded, want 1", len(app.attempts.created))
	}
	attempt := app.attempts.created[0]
	if attempt.MPaymentID != checkout.Fields["m_payment_id"] {
		t.Fatalf("attempt reference = %q, checkout reference = %q",
			attempt.MPaymentID, checkout.Fields["m_payment_id"])
	}
	if attempt.Status != model.AttemptInitiated {
		t.Fatalf("attempt status = %q, want %q", attempt.Status, model.AttemptInitiated)
	}
	if attempt.PlanType != "basic" || attempt.Amount != 299 {
		t.Fatalf("attempt = %+v", attempt)
	}
}

func TestCancelReturnMarksAttemptCancelled(t *testing.T) {
	app := newTestApp()
	checkout := app.checkout(t)
	ref := checkout.Fields["m_payment_id"]

	// Drive the cancel return through the literal cancel_url the checkout
	// emitted; the gateway passes it through verbatim.
	cancelURL := checkout.Fields["cancel_url"]
	if !strings.Contains(cancelURL, "m_payment_id=") {
		t.Fatalf("cancel_url %q carries no payment reference", cancelURL)
	}
	rec := app.do(t, http.MethodGet, cancelURL, "")
	if rec.Code != http.StatusFound {
		t.Fatalf("cancel return status = %d, want 302", rec.Code)
	}

	if len(app.attempts.cancelled) != 1 || app.attempts.cancelled[0] != ref {
		t.Fatalf("cancelled = %v, want [%q]", app.attempts.cancelled, ref)
	}

	// With no flags raised the next load is the signed-out main site.
	rec = app.do(t, http.MethodGet, "/api/auth/state", "")
	state := decode[dto.StateResponse](t, rec)
	if state.Authenticated {
		t.Fatal("cancelled payment restored a session")
	}
}

func TestNotifyMarksAttemptCompleted(t *testing.T) {
	app := newTestApp()
	checkout := app.checkout(t)
	ref := checkout.Fields["m_payment_id"]

	form := url.Values{}
	form.Set("m_payment_id", ref)
	form.Set("payment_status", "COMPLETE")
	rec := app.doForm(t, "/api/payment/notify", form)
	if rec.Code != http.StatusOK {
		t.Fatalf("notify status = %d, want 200", rec.Code)
	}

	if len(app.attempts.completed) != 1 || app.attempts.completed[0] != ref {
		t.Fatalf("completed = %v, want [%q]", app.attempts.completed, ref)
	}
}
