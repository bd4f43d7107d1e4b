package models

// DefaultUsername is used until the player picks a name.
const DefaultUsername = "Player"

// Profile is the player's cross-session aggregate. TotalTimeMs is stored under
// "totalTime" in milliseconds.
type Profile struct {
	Username       string `json:"username"`
	TotalGames     int    `json:"totalGames"`
	TotalCorrect   int    `json:"totalCorrect"`
	TotalIncorrect int    `json:"totalIncorrect"`
	TotalTimeMs    int64  `json:"totalTime"`
	HighScore      int    `json:"highScore"`
}

// DefaultProfile is the profile of a player who never played.
func DefaultProfile(username string) Profile {
	if username == "" {
		username = DefaultUsername
	}
	return Profile{Username: username}
}
