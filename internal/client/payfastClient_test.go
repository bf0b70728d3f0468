package client

import (
	"testing"

	"edumath-pro/internal/config"
	"edumath-pro/internal/model"
)

func newTestClient() PayfastClient {
	return NewPayfastClient(&config.Payfast{
		MerchantID:  "11568073",
		MerchantKey: "vj06t0nj2hdyr",
		ProcessURL:  "https://sandbox.payfast.co.za/eng/process",
	}, "http://localhost:8080")
}

func TestBuildCheckoutFields(t *testing.T) {
	plan, err := model.PlanFor(model.PlanPremium)
	if err != nil {
		t.Fatalf("PlanFor: %v", err)
	}
	user := &model.User{Name: "John Doe", Email: "google-user@gmail.com", Method: model.MethodGoogle}

	checkout := newTestClient().BuildCheckout(user, plan, "John", "Doe", "EDU-ref-1")

	if checkout.ProcessURL != "https://sandbox.payfast.co.za/eng/process" {
		t.Fatalf("ProcessURL = %q", checkout.ProcessURL)
	}

	want := map[string]string{
		"merchant_id":      "11568073",
		"merchant_key":     "vj06t0nj2hdyr",
		"return_url":       "http://localhost:8080/payment/success",
		"cancel_url":       "http://localhost:8080/payment/cancel?m_payment_id=EDU-ref-1",
		"notify_url":       "http://localhost:8080/api/payment/notify",
		"name_first":       "John",
		"name_last":        "Doe",
		"email_address":    "google-user@gmail.com",
		"m_payment_id":     "EDU-ref-1",
		"amount":           "499.00",
		"item_name":        "EduMath Pro - Premium Plan",
		"item_description": "Monthly subscription to Premium plan",
		"custom_str1":      "google-user@gmail.com",
		"custom_str2":      "premium",
	}
	for key, wantValue := range want {
		if got := checkout.Fields[key]; got != wantValue {
			t.Fatalf("Fields[%q] = %q, want %q", key, got, wantValue)
		}
	}
	if len(checkout.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(checkout.Fields), len(want))
	}
}

func TestBuildCheckoutTwoDecimalAmounts(t *testing.T) {
	user := &model.User{Name: "Phone User", Email: "+27821234567", Method: model.MethodPhone}

	tests := []struct {
		planType string
		amount   string
	}{
		{model.PlanBasic, "299.00"},
		{model.PlanPremium, "499.00"},
		{model.PlanPro, "799.00"},
	}
	for _, tc := range tests {
		plan, err := model.PlanFor(tc.planType)
		if err != nil {
			t.Fatalf("PlanFor(%q): %v", tc.planType, err)
		}
		checkout := newTestClient().BuildCheckout(user, plan, "", "", "ref")
		if got := checkout.Fields["amount"]; got != tc.amount {
			t.Fatalf("amount for %s = %q, want %q", tc.planType, got, tc.amount)
		}
	}
}

func TestBuildCheckoutNameDefaults(t *testing.T) {
	plan, _ := model.PlanFor(model.PlanBasic)
	user := &model.User{Name: "Jane Smith", Email: "facebook-user@facebook.com", Method: model.MethodFacebook}

	checkout := newTestClient().BuildCheckout(user, plan, "", "", "ref")
	if checkout.Fields["name_first"] != "Student" || checkout.Fields["name_last"] != "User" {
		t.Fatalf("defaults = (%q, %q), want (Student, User)",
			checkout.Fields["name_first"], checkout.Fields["name_last"])
	}
}
