package entity

// Product is a stocked item. Quantity zero means out of stock.
type Product struct {
	ID         int64
	Name       string
	Price      float64
	Quantity   int
	CategoryID *int64
	Category   *Category
}
