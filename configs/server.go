package configs

type Server struct {
	Port           int      `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RequestTimeout int      `env:"REQUEST_TIMEOUT_SECONDS" envDefault:"60"`
}
