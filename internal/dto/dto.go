package dto

import "edumath-pro/internal/model"

type SignInRequest struct {
	Method     string `json:"method"`
	Identifier string `json:"identifier"`
}

type SendOTPRequest struct {
	CountryCode string `json:"country_code"`
	PhoneNumber string `json:"phone_number"`
}

type SendOTPResponse struct {
	Phone string `json:"phone"`
}

type VerifyOTPRequest struct {
	Code string `json:"code"`
}

type SelectPlanRequest struct {
	PlanType string `json:"plan_type"`
}

// SelectPlanResponse pre-fills the payment step: the selected plan, the
// signed-in user's email and the monthly amount.
type SelectPlanResponse struct {
	Plan   *model.Plan `json:"plan"`
	Email  string      `json:"email"`
	Amount int32       `json:"amount"`
}

type CheckoutRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type OpenSubjectRequest struct {
	Subject string `json:"subject"`
}

type OpenLessonRequest struct {
	Subject  string `json:"subject"`
	LessonID string `json:"lesson_id"`
}

type LessonResponse struct {
	Subject  string `json:"subject"`
	LessonID string `json:"lesson_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// StateResponse mirrors the session for the client: who is signed in,
// which plan is selected, which panel is visible, and any one-time notice.
type StateResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          *model.User `json:"user,omitempty"`
	Plan          *model.Plan `json:"plan,omitempty"`
	Panel         string      `json:"panel"`
	Subject       string      `json:"subject,omitempty"`
	Lesson        string      `json:"lesson,omitempty"`
	Notice        string      `json:"notice,omitempty"`
}
