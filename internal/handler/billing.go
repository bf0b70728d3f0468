package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"edumath-pro/internal/dto"
	"edumath-pro/internal/middleware"
	"edumath-pro/internal/service"
)

type BillingHandler struct {
	sessionService service.SessionService
}

func NewBillingHandler(sessionService service.SessionService) *BillingHandler {
	return &BillingHandler{
		sessionService: sessionService,
	}
}

func (h *BillingHandler) SelectPlan(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.CurrentSession(c)

	var req dto.SelectPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	plan, err := h.sessionService.SelectPlan(ctx, sess, req.PlanType)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, &dto.SelectPlanResponse{
		Plan:   plan,
		Email:  sess.User.Email,
		Amount: plan.Price,
	})
}

// Checkout hands the session off to the payment gateway: the response
// carries the process URL and form fields the client submits, after which
// the browser navigates away entirely.
func (h *BillingHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.CurrentSession(c)

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	checkout, err := h.sessionService.InitiatePayment(ctx, sess, req.FirstName, req.LastName)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, checkout)
}

// PaymentSuccess is the gateway's return page. It raises the handoff
// flags; the main page consumes them on the next load.
func (h *BillingHandler) PaymentSuccess(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.CurrentSession(c)

	if err := h.sessionService.CompletePayment(ctx, sess); err != nil {
		log.Printf("complete payment for session %s: %v", sess.ID, err)
	}

	html := `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<title>Payment Successful</title>
		<style>
			body {
				font-family: Arial, sans-serif;
				text-align: center;
				margin-top: 80px;
			}
			.countdown {
				font-size: 24px;
				font-weight: bold;
			}
		</style>
	</head>
	<body>
		<h2>Payment successful</h2>
		<p>Your subscription is being activated</p>
		<p>Redirecting to homepage in <span class="countdown" id="countdown">5</span> seconds…</p>

		<script>
			let seconds = 5;
			const el = document.getElementById("countdown");

			const timer = setInterval(function () {
				seconds--;
				el.textContent = seconds;

				if (seconds <= 0) {
					clearInterval(timer);
					window.location.href = "/";
				}
			}, 1000);
		</script>
	</body>
	</html>
	`

	return c.HTML(http.StatusOK, html)
}

// PaymentCancel is the gateway's cancel page: no flags are raised, so the
// next load falls through to the signed-out main site.
func (h *BillingHandler) PaymentCancel(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.CurrentSession(c)

	if err := h.sessionService.CancelPayment(ctx, sess, c.QueryParam("m_payment_id")); err != nil {
		log.Printf("cancel payment for session %s: %v", sess.ID, err)
	}

	return c.Redirect(http.StatusFound, "/")
}

// PaymentNotify handles the gateway's server-to-server ITN callback. The
// gateway only wants an acknowledgement; failures are logged, not surfaced.
func (h *BillingHandler) PaymentNotify(c echo.Context) error {
	ctx := c.Request().Context()

	form, err := c.FormParams()
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.sessionService.HandleNotify(ctx, form); err != nil {
		log.Printf("handle payment notify: %v", err)
	}

	return c.NoContent(http.StatusOK)
}
