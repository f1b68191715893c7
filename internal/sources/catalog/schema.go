package catalog

// File is the top-level structure of locations.yaml: cities mapped to
// their location entries.
type File struct {
	Cities map[string][]LocationProps `yaml:"cities"`
}

// LocationProps is one catalog entry. Almost everything is optional;
// the mapper translates absence into the domain's neutral defaults.
type LocationProps struct {
	ID          string   `yaml:"id,omitempty"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Lat         *float64 `yaml:"lat,omitempty"`
	Lng         *float64 `yaml:"lng,omitempty"`
	PriceTier   int      `yaml:"price_tier,omitempty"`
	Rating      float64  `yaml:"rating,omitempty"`
	Reviews     int      `yaml:"reviews,omitempty"`
	VisitMin    int      `yaml:"visit_minutes,omitempty"`
	Description string   `yaml:"description,omitempty"`

	// Tri-state meal flags: absent means unknown, not false.
	ServesBreakfast *bool `yaml:"serves_breakfast,omitempty"`
	ServesBrunch    *bool `yaml:"serves_brunch,omitempty"`
	ServesLunch     *bool `yaml:"serves_lunch,omitempty"`
	ServesDinner    *bool `yaml:"serves_dinner,omitempty"`

	Hours []HoursProps `yaml:"hours,omitempty"`
}

// HoursProps is one weekday's opening window.
type HoursProps struct {
	Day       string `yaml:"day"`
	Open      string `yaml:"open"`
	Close     string `yaml:"close"`
	Overnight bool   `yaml:"overnight,omitempty"`
}
