package configs

type Routing struct {
	URL string `env:"ROUTING_ENGINE_URL" envDefault:"https://router.project-osrm.org"`
}
