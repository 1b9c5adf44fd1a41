package configs

type App struct {
	Environment string `env:"ENVIRONMENT" envDefault:"production"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
