package configs

type Map struct {
	StaticDocumentPath string   `env:"STATIC_MAP_DOCUMENT"`
	HikeCategory       string   `env:"HIKE_CATEGORY" envDefault:"Hike"`
	PeaksCategory      string   `env:"PEAKS_CATEGORY" envDefault:"Peaks"`
	VotableCategories  []string `env:"VOTABLE_CATEGORIES" envSeparator:"," envDefault:"Hike,Tourist Activity"`
}
