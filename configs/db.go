package configs

type DB struct {
	URL string `env:"DATABASE_URL"`
}

// IsConfigured reports whether the remote data source is available.
// When it is not, the server runs in static-document mode.
func (c DB) IsConfigured() bool {
	return c.URL != ""
}
