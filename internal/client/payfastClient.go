package client

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"edumath-pro/internal/config"
	"edumath-pro/internal/model"
)

// PayfastClient builds the checkout handoff to PayFast. Unlike an API
// gateway there is no server-to-server order call: the browser submits a
// form POST of these fields to the process URL and navigates away, and
// PayFast reports the outcome through the return pages and the notify
// callback.
type PayfastClient interface {
	BuildCheckout(user *model.User, plan *model.Plan, firstName, lastName, mPaymentID string) *Checkout
}

// Checkout is the redirect payload: the gateway process URL plus the form
// fields the client must POST to it.
type Checkout struct {
	ProcessURL string            `json:"process_url"`
	Fields     map[string]string `json:"fields"`
}

type payfastClientImpl struct {
	merchantID  string
	merchantKey string
	processURL  string
	baseURL     string
}

func NewPayfastClient(payfastCfg *config.Payfast, baseURL string) PayfastClient {
	return &payfastClientImpl{
		merchantID:  payfastCfg.MerchantID,
		merchantKey: payfastCfg.MerchantKey,
		processURL:  payfastCfg.ProcessURL,
		baseURL:     baseURL,
	}
}

func (c *payfastClientImpl) BuildCheckout(user *model.User, plan *model.Plan, firstName, lastName, mPaymentID string) *Checkout {
	if firstName == "" {
		firstName = "Student"
	}
	if lastName == "" {
		lastName = "User"
	}

	// PayFast requires the amount as a decimal string with exactly two
	// fraction digits.
	amount := decimal.NewFromInt32(plan.Price).StringFixed(2)

	fields := map[string]string{
		"merchant_id":  c.merchantID,
		"merchant_key": c.merchantKey,
		"return_url":   c.baseURL + "/payment/success",
		// The cancel return carries the reference so the abandoned attempt
		// can be marked cancelled; PayFast passes the URL through verbatim.
		"cancel_url":       c.baseURL + "/payment/cancel?m_payment_id=" + url.QueryEscape(mPaymentID),
		"notify_url":       c.baseURL + "/api/payment/notify",
		"name_first":       firstName,
		"name_last":        lastName,
		"email_address":    user.Email,
		"m_payment_id":     mPaymentID,
		"amount":           amount,
		"item_name":        fmt.Sprintf("EduMath Pro - %s Plan", plan.Name),
		"item_description": fmt.Sprintf("Monthly subscription to %s plan", plan.Name),
		"custom_str1":      user.Email,
		"custom_str2":      plan.Type,
	}

	return &Checkout{
		ProcessURL: c.processURL,
		Fields:     fields,
	}
}
