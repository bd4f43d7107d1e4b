package kv

// Storage keys. KeyLegacyHighScore predates the profile document and holds a
// bare integer.
const (
	KeyProfile          = "letterflash.profile"
	KeyAlphabetSettings = "letterflash.settings.alphabet"
	KeyMathSettings     = "letterflash.settings.math"
	KeyLeaderboard      = "letterflash.leaderboard"
	KeyMusic            = "letterflash.music"
	KeyLegacyHighScore  = "highScore"
)
