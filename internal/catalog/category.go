package catalog

// Category is a product family shown on the storefront. The category's
// product list is not stored on the row; the Store derives it from the
// product table by tag so the two can never drift apart.
type Category struct {
	ID            string `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"not null"`
	NameEN        string `json:"nameEn"`
	Description   string `json:"description"`
	DescriptionEN string `json:"descriptionEn"`
}
