package catalog

import "github.com/clorywears/storefront/internal/domain/models"

// seedProducts — базовый ассортимент. Идентификаторы стабильные:
// они попадают в корзину и в снимки позиций заказов.
var seedProducts = []*models.Product{
	// брюки
	{
		ID:          "trouser-001",
		Slug:        "signature-slim-trouser-wine",
		Category:    models.CategoryTrousers,
		Name:        "Signature Slim Trouser",
		Subtitle:    "Sharp fit, clean finish, all-day comfort.",
		Description: "A premium slim trouser designed for a confident silhouette, with a refined waistline and a smooth fall from hip to hem.",
		PriceNGN:    18500,
		Images:      []string{"/images/trouser-1.jpg", "/images/trouser-2.jpg", "/images/trouser-3.jpg"},
		Sizes:       []string{"28", "30", "32", "34", "36", "38", "40"},
		Colors:      []string{"Wine", "Black", "Ash"},
		Highlights:  []string{"Slim fit with comfort stretch feel", "Clean front and structured waist"},
		Details:     []string{"Care: gentle wash, low heat iron", "Style: slim trouser"},
	},
	{
		ID:          "trouser-002",
		Slug:        "everyday-straight-trouser-black",
		Category:    models.CategoryTrousers,
		Name:        "Everyday Straight Trouser",
		Subtitle:    "Relaxed confidence in a classic cut.",
		Description: "A straight-leg trouser built for daily wear. Comfortable through the thigh with a neat taper down the leg.",
		PriceNGN:    16500,
		Images:      []string{"/images/trouser-2.jpg", "/images/trouser-1.jpg", "/images/trouser-3.jpg"},
		Sizes:       []string{"28", "30", "32", "34", "36", "38", "40", "42"},
		Colors:      []string{"Black", "Navy", "Chocolate"},
		Highlights:  []string{"Classic straight fit", "Comfort-first waist construction"},
		Details:     []string{"Care: wash inside out for longevity", "Style: straight trouser"},
	},
	{
		ID:          "trouser-003",
		Slug:        "smart-taper-trouser-ash",
		Category:    models.CategoryTrousers,
		Name:        "Smart Taper Trouser",
		Subtitle:    "A polished taper built for style.",
		Description: "Balances comfort and structure, with a refined taper that keeps the look neat and premium.",
		PriceNGN:    17500,
		Images:      []string{"/images/trouser-3.jpg", "/images/trouser-1.jpg", "/images/trouser-2.jpg"},
		Sizes:       []string{"28", "30", "32", "34", "36", "38", "40"},
		Colors:      []string{"Ash", "Black", "Wine"},
		Highlights:  []string{"Tapered leg for a neat silhouette", "Comfort fit waist"},
		Details:     []string{"Care: hand wash recommended", "Style: tapered trouser"},
	},
	{
		ID:          "trouser-004",
		Slug:        "classic-formal-trouser-navy",
		Category:    models.CategoryTrousers,
		Name:        "Classic Formal Trouser",
		Subtitle:    "Formal done properly.",
		Description: "A formal trouser with a clean drape and sharp lines, designed for elevated looks.",
		PriceNGN:    19500,
		Images:      []string{"/images/trouser-4.jpg", "/images/trouser-1.jpg", "/images/trouser-2.jpg"},
		Sizes:       []string{"30", "32", "34", "36", "38", "40", "42"},
		Colors:      []string{"Navy", "Black", "Charcoal"},
		Highlights:  []string{"Elegant drape and sharp finishing", "Formal-ready fit"},
		Details:     []string{"Care: dry clean preferred", "Style: formal trouser"},
	},
	{
		ID:          "trouser-005",
		Slug:        "street-cargo-trouser-chocolate",
		Category:    models.CategoryTrousers,
		Name:        "Street Cargo Trouser",
		Subtitle:    "Utility meets premium streetwear.",
		Description: "A cargo trouser with structured pockets and a relaxed leg for an effortless street look.",
		PriceNGN:    20500,
		Images:      []string{"/images/trouser-5.jpg", "/images/trouser-1.jpg", "/images/trouser-2.jpg"},
		Sizes:       []string{"28", "30", "32", "34", "36", "38", "40"},
		Colors:      []string{"Chocolate", "Black", "Olive"},
		Highlights:  []string{"Functional cargo pockets", "Relaxed streetwear fit"},
		Details:     []string{"Care: machine wash cold", "Style: cargo trouser"},
	},
	// рубашки
	{
		ID:          "shirt-001",
		Slug:        "premium-oxford-shirt-white",
		Category:    models.CategoryShirts,
		Name:        "Premium Oxford Shirt",
		Subtitle:    "Clean, crisp and confident.",
		Description: "An oxford shirt with a structured collar and a tailored body, easy to dress up or down.",
		PriceNGN:    14500,
		Images:      []string{"/images/shirt-1.jpg", "/images/shirt-2.jpg", "/images/shirt-3.jpg"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"White", "Sky Blue", "Black"},
		Highlights:  []string{"Structured collar", "Tailored body"},
		Details:     []string{"Care: low heat iron", "Style: oxford shirt"},
	},
	{
		ID:          "shirt-002",
		Slug:        "classic-buttondown-shirt-wine",
		Category:    models.CategoryShirts,
		Name:        "Classic Buttondown Shirt",
		Subtitle:    "A staple piece with premium finishing.",
		Description: "A buttondown shirt that works for the office and the weekend alike.",
		PriceNGN:    13500,
		Images:      []string{"/images/shirt-2.jpg", "/images/shirt-1.jpg", "/images/shirt-3.jpg"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Wine", "White", "Black"},
		Highlights:  []string{"Versatile buttondown cut", "Premium stitching"},
		Details:     []string{"Care: gentle wash", "Style: buttondown shirt"},
	},
	{
		ID:          "shirt-003",
		Slug:        "minimal-poplin-shirt-black",
		Category:    models.CategoryShirts,
		Name:        "Minimal Poplin Shirt",
		Subtitle:    "Minimal design. Maximum impact.",
		Description: "A poplin shirt with a smooth finish and a clean minimal front.",
		PriceNGN:    15500,
		Images:      []string{"/images/shirt-3.jpg", "/images/shirt-1.jpg", "/images/shirt-2.jpg"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Black", "White", "Ash"},
		Highlights:  []string{"Smooth poplin fabric", "Clean minimal front"},
		Details:     []string{"Care: machine wash cold", "Style: poplin shirt"},
	},
	{
		ID:          "shirt-004",
		Slug:        "smart-casual-shirt-sky",
		Category:    models.CategoryShirts,
		Name:        "Smart Casual Shirt",
		Subtitle:    "Fresh, simple, and sharp.",
		Description: "A smart casual shirt with a relaxed collar, made for easy everyday styling.",
		PriceNGN:    14000,
		Images:      []string{"/images/shirt-4.jpg", "/images/shirt-1.jpg", "/images/shirt-2.jpg"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Sky Blue", "White", "Navy"},
		Highlights:  []string{"Relaxed collar", "Everyday versatility"},
		Details:     []string{"Care: gentle wash", "Style: smart casual shirt"},
	},
	{
		ID:          "shirt-005",
		Slug:        "statement-shirt-ash",
		Category:    models.CategoryShirts,
		Name:        "Statement Shirt",
		Subtitle:    "Simple statement. Clean power.",
		Description: "A statement shirt with a bold silhouette and premium finishing.",
		PriceNGN:    16000,
		Images:      []string{"/images/shirt-5.jpg", "/images/shirt-1.jpg", "/images/shirt-2.jpg"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Ash", "Black", "White"},
		Highlights:  []string{"Bold silhouette", "Premium finishing"},
		Details:     []string{"Care: hand wash recommended", "Style: statement shirt"},
	},
}
