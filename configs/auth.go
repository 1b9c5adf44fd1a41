package configs

type Auth struct {
	JWTSecret          string `env:"JWT_SECRET"`
	AccessTokenMinutes int    `env:"ACCESS_TOKEN_MINUTES" envDefault:"15"`
	RefreshTokenHours  int    `env:"REFRESH_TOKEN_HOURS" envDefault:"168"`
}
