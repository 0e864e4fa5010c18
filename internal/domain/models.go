package domain

// Genres offered by the form, in display order
var Genres = []string{"action", "animation", "comedy", "drama", "horror", "thriller"}

// Submission represents a validated prediction request
type Submission struct {
	Title           string   `json:"title"`
	OpeningTheaters int      `json:"opening_theaters"`
	ReleaseDays     int      `json:"release_days"`
	Genres          []string `json:"genres"`
}
