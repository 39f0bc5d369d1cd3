// Package entity contains the core business objects of the project.
package entity

// Food is a per-100-unit nutrition profile of a single food item.
// Calories is an integer count, the other macros are grams.
type Food struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
	Carbs       float64 `json:"carbs"`
	Country     string  `json:"country"`
	City        string  `json:"city,omitempty"`
	// IsLiked is derived from the user's preferences and never persisted with the food.
	IsLiked bool `json:"is_liked"`
}

// WithLiked returns a copy of the food carrying the given liked flag.
func (f Food) WithLiked(liked bool) Food {
	f.IsLiked = liked

	return f
}

// FoodFilter narrows a food listing.
type FoodFilter struct {
	Country string
	City    string
	Search  string
	Limit   int
}
