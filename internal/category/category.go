package category

import "github.com/wichananm65/printvogue-backend/internal/product"

// CategoryItem is the public DTO returned by the category API.
// JSON tags follow the camelCase convention used elsewhere in the project.
type CategoryItem struct {
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	CategoryImg  string `json:"categoryImg"`
	ProductCount int    `json:"productCount"`
}

type details struct {
	description string
	image       string
}

var categoryDetails = map[product.Category]details{
	product.CategoryShirts: {
		description: "Elegant and sophisticated printed shirts for every occasion. From formal meetings to weekend outings.",
		image:       "https://images.pexels.com/photos/1926769/pexels-photo-1926769.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
	product.CategoryTShirts: {
		description: "Comfortable and stylish printed t-shirts that express your personality with premium quality.",
		image:       "https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
	product.CategoryShorts: {
		description: "Trendy and comfortable printed shorts perfect for casual days and summer adventures.",
		image:       "https://images.pexels.com/photos/7679717/pexels-photo-7679717.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
	product.CategoryPants: {
		description: "Premium printed pants that combine comfort with style for the modern fashion enthusiast.",
		image:       "https://images.pexels.com/photos/7679718/pexels-photo-7679718.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
}
