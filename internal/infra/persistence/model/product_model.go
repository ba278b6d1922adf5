package model

// ProductModel mirrors the 'products' table. CategoryID is nullable: a
// product may exist before it is filed under a category.
type ProductModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	Name       string  `gorm:"type:varchar(255);not null"`
	Price      float64 `gorm:"not null"`
	Quantity   int     `gorm:"not null"`
	CategoryID *int64  `gorm:"index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
