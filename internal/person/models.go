package person

// Person is a character of the saga. Rows are immutable once stored.
type Person struct {
	ID        int    `db:"id" json:"id" yaml:"-"`
	Name      string `db:"name" json:"name" yaml:"name"`
	HairColor string `db:"hair_color" json:"hair_color" yaml:"hair_color"`
	EyeColor  string `db:"eye_color" json:"eye_color" yaml:"eye_color"`
	SkinColor string `db:"skin_color" json:"skin_color" yaml:"skin_color"`
	Gender    string `db:"gender" json:"gender" yaml:"gender"`
	Specie    string `db:"specie" json:"specie" yaml:"specie"`
	HomeWorld string `db:"home_world" json:"home_world" yaml:"home_world"`
	Height    int    `db:"height" json:"height" yaml:"height"`
	Mass      int    `db:"mass" json:"mass" yaml:"mass"`
}
