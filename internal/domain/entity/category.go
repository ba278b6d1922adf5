package entity

// Category groups products. Name is globally unique.
type Category struct {
	ID          int64
	Name        string
	Description string
}
