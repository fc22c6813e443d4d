package planet

// Planet is a world of the saga. Rows are immutable once stored.
type Planet struct {
	ID             int    `db:"id" json:"id" yaml:"-"`
	Name           string `db:"name" json:"name" yaml:"name"`
	Diameter       int    `db:"diameter" json:"diameter" yaml:"diameter"`
	RotationPeriod int    `db:"rotation_period" json:"rotation_period" yaml:"rotation_period"`
	OrbitalPeriod  int    `db:"orbital_period" json:"orbital_period" yaml:"orbital_period"`
	Population     int64  `db:"population" json:"population" yaml:"population"`
	SurfaceWater   int    `db:"surface_water" json:"surface_water" yaml:"surface_water"`
	Gravity        string `db:"gravity" json:"gravity" yaml:"gravity"`
	Climate        string `db:"climate" json:"climate" yaml:"climate"`
	Terrain        string `db:"terrain" json:"terrain" yaml:"terrain"`
}
