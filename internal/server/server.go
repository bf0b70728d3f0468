package server

import (
	"edumath-pro/internal/catalog"
	"edumath-pro/internal/config"
	"edumath-pro/internal/handler"
	appmw "edumath-pro/internal/middleware"
	"edumath-pro/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	authHandler    *handler.AuthHandler
	billingHandler *handler.BillingHandler
	contentHandler *handler.ContentHandler
}

func NewServer(cfg *config.Config, sessionService service.SessionService, cat *catalog.Catalog) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmw.Session(sessionService, &cfg.Session))

	authHandler := handler.NewAuthHandler(sessionService)
	billingHandler := handler.NewBillingHandler(sessionService)
	contentHandler := handler.NewContentHandler(cat)

	s := &Server{
		echo:           e,
		authHandler:    authHandler,
		billingHandler: billingHandler,
		contentHandler: contentHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/signin", s.authHandler.SignIn)
	auth.POST("/otp/send", s.authHandler.SendOTP)
	auth.POST("/otp/verify", s.authHandler.VerifyOTP)
	auth.POST("/logout", s.authHandler.SignOut)
	auth.GET("/state", s.authHandler.State)

	// -------- plans / payment --------
	api.POST("/plans/select", s.billingHandler.SelectPlan)
	payment := api.Group("/payment")
	payment.POST("/checkout", s.billingHandler.Checkout)
	payment.POST("/notify", s.billingHandler.PaymentNotify)

	// -------- content navigation --------
	view := api.Group("/view")
	view.POST("/dashboard", s.contentHandler.ShowDashboard)
	view.POST("/subject", s.contentHandler.OpenSubject)
	view.POST("/lesson", s.contentHandler.OpenLesson)
	view.POST("/back-to-subject", s.contentHandler.BackToSubject)
	view.POST("/back-to-dashboard", s.contentHandler.BackToDashboard)
	api.GET("/subjects", s.contentHandler.Subjects)

	// -------- gateway return pages --------
	s.echo.GET("/payment/success", s.billingHandler.PaymentSuccess)
	s.echo.GET("/payment/cancel", s.billingHandler.PaymentCancel)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
