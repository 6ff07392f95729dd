package models

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`  // glyph tag, e.g. "music"
	Color string `json:"color"` // theme token, e.g. "primary"
}

// DefaultCategories is seeded into a fresh store at construction.
var DefaultCategories = []Category{
	{Name: "Music", Icon: "music", Color: "primary"},
	{Name: "Movies", Icon: "film", Color: "secondary"},
	{Name: "Food & Drink", Icon: "utensils", Color: "accent"},
	{Name: "Sports", Icon: "zap", Color: "green"},
	{Name: "Education", Icon: "book-open", Color: "yellow"},
	{Name: "Business", Icon: "briefcase", Color: "red"},
}
