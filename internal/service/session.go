package service

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"edumath-pro/internal/client"
	"edumath-pro/internal/model"
	"edumath-pro/internal/repository"
	"edumath-pro/internal/store"
)

// SessionService orchestrates sign-in, plan selection and the payment
// handoff for a browser session. Auth here is a demo stub throughout: no
// identity provider is contacted and no credential is ever checked.
type SessionService interface {
	// Resolve returns the live session for an id, reconstructing it from
	// the durable store when no in-memory session exists. This is the only
	// place cross-navigation continuity is rebuilt.
	Resolve(ctx context.Context, sessionID string) *model.Session

	SignIn(ctx context.Context, sess *model.Session, method, identifier string) error
	SendOTP(sess *model.Session, countryCode, phoneNumber string) (string, error)
	VerifyOTP(ctx context.Context, sess *model.Session, code string) error
	SignOut(ctx context.Context, sess *model.Session)

	SelectPlan(ctx context.Context, sess *model.Session, planType string) (*model.Plan, error)
	InitiatePayment(ctx context.Context, sess *model.Session, firstName, lastName string) (*client.Checkout, error)

	CompletePayment(ctx context.Context, sess *model.Session) error
	CancelPayment(ctx context.Context, sess *model.Session, mPaymentID string) error
	HandleNotify(ctx context.Context, form url.Values) error
}

type sessionServiceImpl struct {
	mu       sync.Mutex
	sessions map[string]*model.Session

	store       store.Store
	payfast     client.PayfastClient
	attemptRepo repository.AttemptRepository
}

// NewSessionService wires the controller. attemptRepo may be nil when no
// database is configured; attempt tracking then degrades to nothing.
func NewSessionService(
	kv store.Store,
	payfast client.PayfastClient,
	attemptRepo repository.AttemptRepository,
) SessionService {
	return &sessionServiceImpl{
		sessions:    make(map[string]*model.Session),
		store:       kv,
		payfast:     payfast,
		attemptRepo: attemptRepo,
	}
}

func (s *sessionServiceImpl) Resolve(ctx context.Context, sessionID string) *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}

	sess := model.NewSession(sessionID)
	s.recover(ctx, sess)
	s.sessions[sessionID] = sess
	return sess
}

// evict drops the in-memory session so that the next resolution starts
// fresh. A full-page navigation to the gateway ends execution on the
// client; evicting mirrors that reset, leaving only the durable store.
func (s *sessionServiceImpl) evict(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// recover restores a session after the payment redirect round trip. It
// consumes the paymentCompleted flag at most once: a second recovery after
// the flag was cleared falls through to the signed-out main site.
func (s *sessionServiceImpl) recover(ctx context.Context, sess *model.Session) {
	completed, ok, err := s.store.Get(ctx, sess.ID, store.KeyPaymentCompleted)
	if err != nil || !ok || completed != "true" {
		return
	}
	active, ok, err := s.store.Get(ctx, sess.ID, store.KeySubscriptionActive)
	if err != nil || !ok || active != "true" {
		return
	}

	userJSON, ok, err := s.store.Get(ctx, sess.ID, store.KeyCurrentUser)
	if err != nil || !ok {
		return
	}
	planJSON, ok, err := s.store.Get(ctx, sess.ID, store.KeySelectedPlan)
	if err != nil || !ok {
		return
	}

	var user model.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return
	}
	var saved model.Plan
	if err := json.Unmarshal([]byte(planJSON), &saved); err != nil {
		return
	}
	// Price is always re-derived from the tier, never trusted from the
	// snapshot.
	plan, err := model.PlanFor(saved.Type)
	if err != nil {
		return
	}

	sess.SignIn(&user)
	sess.Plan = plan
	sess.View.ShowDashboard(true)
	sess.Notice = "Welcome back! Your subscription is now active."

	if err := s.store.Remove(ctx, sess.ID, store.KeyPaymentCompleted); err != nil {
		log.Printf("clear payment flag for session %s: %v", sess.ID, err)
	}
}

func (s *sessionServiceImpl) SignIn(ctx context.Context, sess *model.Session, method, identifier string) error {
	user, err := model.NewUser(method, identifier)
	if err != nil {
		return err
	}

	sess.SignIn(user)
	sess.Notice = "Please select a subscription plan to continue"
	return nil
}

func (s *sessionServiceImpl) SendOTP(sess *model.Session, countryCode, phoneNumber string) (string, error) {
	if phoneNumber == "" {
		return "", model.Validationf("please enter a phone number")
	}

	fullPhone := countryCode + phoneNumber
	sess.PendingPhone = fullPhone
	return fullPhone, nil
}

func (s *sessionServiceImpl) VerifyOTP(ctx context.Context, sess *model.Session, code string) error {
	if len(code) != 6 || !allDigits(code) {
		return model.Validationf("please enter a 6-digit verification code")
	}
	if sess.PendingPhone == "" {
		return model.Validationf("no phone verification in progress")
	}

	// Demo stub: any well-formed code verifies.
	return s.SignIn(ctx, sess, model.MethodPhone, sess.PendingPhone)
}

func (s *sessionServiceImpl) SignOut(ctx context.Context, sess *model.Session) {
	sess.Clear()

	for _, key := range []string{
		store.KeyPaymentCompleted,
		store.KeySubscriptionActive,
		store.KeyCurrentUser,
		store.KeySelectedPlan,
	} {
		if err := s.store.Remove(ctx, sess.ID, key); err != nil {
			log.Printf("remove %s for session %s: %v", key, sess.ID, err)
		}
	}
}

func (s *sessionServiceImpl) SelectPlan(ctx context.Context, sess *model.Session, planType string) (*model.Plan, error) {
	if !sess.Authenticated {
		return nil, model.ErrAuthRequired
	}

	plan, err := model.PlanFor(planType)
	if err != nil {
		return nil, err
	}

	sess.Plan = plan
	return plan, nil
}

func (s *sessionServiceImpl) InitiatePayment(ctx context.Context, sess *model.Session, firstName, lastName string) (*client.Checkout, error) {
	if !sess.Authenticated || sess.User == nil {
		return nil, model.ErrAuthRequired
	}
	if sess.Plan == nil {
		return nil, model.Validationf("no plan selected")
	}

	mPaymentID := "EDU-" + uuid.NewString()

	// Snapshot user and plan before the browser navigates away; the
	// gateway discards all in-memory state. Store failures are non-fatal:
	// the session simply will not survive the round trip.
	s.persistSnapshot(ctx, sess)

	if s.attemptRepo != nil {
		attempt := &model.PaymentAttempt{
			MPaymentID: mPaymentID,
			SessionID:  sess.ID,
			Email:      sess.User.Email,
			PlanType:   sess.Plan.Type,
			Amount:     sess.Plan.Price,
			Status:     model.AttemptInitiated,
		}
		if err := s.attemptRepo.Create(ctx, attempt); err != nil {
			log.Printf("record payment attempt %s: %v", mPaymentID, err)
		}
	}

	checkout := s.payfast.BuildCheckout(sess.User, sess.Plan, firstName, lastName, mPaymentID)

	// The client now submits a form POST to the gateway and navigates
	// away; drop the in-memory session so the return landing starts fresh
	// from the durable store.
	s.evict(sess.ID)

	return checkout, nil
}

func (s *sessionServiceImpl) persistSnapshot(ctx context.Context, sess *model.Session) {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		log.Printf("marshal user snapshot: %v", err)
		return
	}
	planJSON, err := json.Marshal(sess.Plan)
	if err != nil {
		log.Printf("marshal plan snapshot: %v", err)
		return
	}

	if err := s.store.Put(ctx, sess.ID, store.KeyCurrentUser, string(userJSON)); err != nil {
		log.Printf("persist user snapshot for session %s: %v", sess.ID, err)
	}
	if err := s.store.Put(ctx, sess.ID, store.KeySelectedPlan, string(planJSON)); err != nil {
		log.Printf("persist plan snapshot for session %s: %v", sess.ID, err)
	}
}

// CompletePayment is the success return page's write: it raises both
// handoff flags and evicts the session so the next page load recovers from
// the store.
func (s *sessionServiceImpl) CompletePayment(ctx context.Context, sess *model.Session) error {
	if err := s.store.Put(ctx, sess.ID, store.KeyPaymentCompleted, "true"); err != nil {
		return err
	}
	if err := s.store.Put(ctx, sess.ID, store.KeySubscriptionActive, "true"); err != nil {
		return err
	}

	s.evict(sess.ID)
	return nil
}

// CancelPayment marks the attempt cancelled and evicts the session; with
// no flags raised the next load falls through to the signed-out main site.
func (s *sessionServiceImpl) CancelPayment(ctx context.Context, sess *model.Session, mPaymentID string) error {
	if mPaymentID != "" && s.attemptRepo != nil {
		if err := s.attemptRepo.MarkCancelled(ctx, mPaymentID); err != nil {
			log.Printf("mark attempt %s cancelled: %v", mPaymentID, err)
		}
	}

	s.evict(sess.ID)
	return nil
}

// HandleNotify processes the gateway's server-to-server ITN callback.
func (s *sessionServiceImpl) HandleNotify(ctx context.Context, form url.Values) error {
	mPaymentID := form.Get("m_payment_id")
	if mPaymentID == "" {
		return model.Validationf("missing m_payment_id")
	}

	if form.Get("payment_status") != "COMPLETE" {
		return nil
	}
	if s.attemptRepo == nil {
		return nil
	}
	return s.attemptRepo.MarkCompleted(ctx, mPaymentID)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
