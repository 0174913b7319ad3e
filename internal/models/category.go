package models

// WordPair is a crew word and the similar word handed to impostors
type WordPair struct {
	Crew     string `json:"crew" yaml:"crew"`
	Impostor string `json:"impostor" yaml:"impostor"`
}

// Category is a themed set of secret words
type Category struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Emoji       string     `json:"emoji,omitempty" yaml:"emoji"`
	Description string     `json:"description,omitempty" yaml:"description"`
	Words       []string   `json:"words,omitempty" yaml:"words"`
	Pairs       []WordPair `json:"pairs,omitempty" yaml:"pairs"`
}

// HasWords reports whether the category has a flat word list
func (c Category) HasWords() bool {
	return len(c.Words) > 0
}

// HasPairs reports whether the category has crew/impostor pairs
func (c Category) HasPairs() bool {
	return len(c.Pairs) > 0
}
