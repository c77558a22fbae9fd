package db

// Word is one entry of a stored word bank.
type Word struct {
	ID       int64
	Category string
	Text     string
	// Position is the word's index in its category as declared in the source document.
	Position int
}
