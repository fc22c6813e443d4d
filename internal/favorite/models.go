package favorite

// FavoritePeople links a user to a person they marked as favorite.
type FavoritePeople struct {
	ID       int `db:"id" json:"id"`
	UserID   int `db:"user_id" json:"user_id"`
	PersonID int `db:"person_id" json:"person_id"`
}

// FavoritePlanet links a user to a planet they marked as favorite.
type FavoritePlanet struct {
	ID       int `db:"id" json:"id"`
	UserID   int `db:"user_id" json:"user_id"`
	PlanetID int `db:"planet_id" json:"planet_id"`
}

type UserFavorites struct {
	FavoritePeople  []FavoritePeople `json:"favorite_people"`
	FavoritePlanets []FavoritePlanet `json:"favorite_planets"`
}

type DeleteResult struct {
	Done bool `json:"done"`
}
