package models

// AlphabetSettings remembers which alphabet mode the player last chose.
type AlphabetSettings struct {
	Type string `json:"type"`
}

// MathSettings remembers the pure-math operation and digit width.
type MathSettings struct {
	Operation string `json:"operation"`
	Digits    int    `json:"digits"`
}

// Preferences bundles everything the settings menu shows.
type Preferences struct {
	Alphabet AlphabetSettings `json:"alphabet"`
	Math     MathSettings     `json:"math"`
	Music    bool             `json:"music"`
}
