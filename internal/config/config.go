package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"edumath.db"`

	Session Session `envPrefix:"SESSION_"`
	Payfast Payfast `envPrefix:"PAYFAST_"`
}

type Payfast struct {
	MerchantID  string `env:"MERCHANT_ID"`
	MerchantKey string `env:"MERCHANT_KEY"`
	// Sandbox endpoint by default; use https://www.payfast.co.za/eng/process for live.
	ProcessURL string `env:"PROCESS_URL" envDefault:"https://sandbox.payfast.co.za/eng/process"`
}

type Session struct {
	Secret     string `env:"SECRET" envDefault:"edumath-demo-secret"`
	CookieName string `env:"COOKIE_NAME" envDefault:"edumath_session"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
