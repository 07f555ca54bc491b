package catalog

import "github.com/omkaralabs/divinestore/internal/domain"

// Stock storefront data. Prices are whole rupees.

var defaultCategories = []domain.Category{
	{ID: "all", Name: "All Items", Icon: "🕉️"},
	{ID: "idols", Name: "Idols & Statues", Icon: "🙏"},
	{ID: "malas", Name: "Malas & Beads", Icon: "📿"},
	{ID: "pooja", Name: "Pooja Essentials", Icon: "🪔"},
	{ID: "incense", Name: "Incense & Dhoop", Icon: "🌸"},
	{ID: "books", Name: "Sacred Books", Icon: "📖"},
}

var defaultProducts = []domain.Product{
	{
		ID:          "1",
		Name:        "Rudraksha Mala (108 Beads)",
		Description: "Authentic five-mukhi rudraksha mala for japa meditation, hand-knotted with a guru bead.",
		Price:       1100,
		Image:       "https://images.unsplash.com/photo-1600181958051-c73ad5c39c6a?w=400&h=400&fit=crop",
		Rating:      4.8,
		Category:    "malas",
		InStock:     true,
	},
	{
		ID:          "2",
		Name:        "Brass Ganesha Idol",
		Description: "Hand-cast brass idol of Lord Ganesha, 6 inches, with antique finish.",
		Price:       2499,
		Image:       "https://images.unsplash.com/photo-1567591391848-cf5b3afcf6ba?w=400&h=400&fit=crop",
		Rating:      4.9,
		Category:    "idols",
		InStock:     true,
	},
	{
		ID:          "3",
		Name:        "Pure Brass Diya Set",
		Description: "Set of five traditional brass diyas for daily aarti and festive decoration.",
		Price:       799,
		Image:       "https://images.unsplash.com/photo-1605369179590-014a88d4560e?w=400&h=400&fit=crop",
		Rating:      4.7,
		Category:    "pooja",
		InStock:     true,
	},
	{
		ID:          "4",
		Name:        "Sandalwood Incense Sticks",
		Description: "Hand-rolled Mysore sandalwood agarbatti, pack of 100 sticks.",
		Price:       299,
		Image:       "https://images.unsplash.com/photo-1602080279632-44f24a1bb9ce?w=400&h=400&fit=crop",
		Rating:      4.6,
		Category:    "incense",
		InStock:     true,
	},
	{
		ID:          "5",
		Name:        "Bhagavad Gita (Hardcover)",
		Description: "Complete Bhagavad Gita with Sanskrit verses, transliteration, and commentary.",
		Price:       599,
		Image:       "https://images.unsplash.com/photo-1592496431122-2349e0fbc666?w=400&h=400&fit=crop",
		Rating:      4.9,
		Category:    "books",
		InStock:     true,
	},
	{
		ID:          "6",
		Name:        "Tulsi Japa Mala",
		Description: "Sacred tulsi wood mala with 108 beads, ideal for Vishnu and Krishna mantras.",
		Price:       450,
		Image:       "https://images.unsplash.com/photo-1611800065908-233b597db552?w=400&h=400&fit=crop",
		Rating:      4.5,
		Category:    "malas",
		InStock:     true,
	},
	{
		ID:          "7",
		Name:        "Complete Pooja Thali Set",
		Description: "Brass pooja thali with kumkum holder, bell, diya, and incense stand.",
		Price:       1899,
		Image:       "https://images.unsplash.com/photo-1604423043492-41303788de25?w=400&h=400&fit=crop",
		Rating:      4.8,
		Category:    "pooja",
		InStock:     false,
	},
	{
		ID:          "8",
		Name:        "Marble Krishna Idol",
		Description: "Hand-carved white marble idol of Lord Krishna playing the flute, 8 inches.",
		Price:       4999,
		Image:       "https://images.unsplash.com/photo-1620370802334-8b10f868e75a?w=400&h=400&fit=crop",
		Rating:      5.0,
		Category:    "idols",
		InStock:     true,
	},
	{
		ID:          "9",
		Name:        "Camphor & Dhoop Combo",
		Description: "Pure bhimseni camphor tablets with natural havan dhoop cones.",
		Price:       349,
		Image:       "https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?w=400&h=400&fit=crop",
		Rating:      4.4,
		Category:    "incense",
		InStock:     true,
	},
	{
		ID:          "10",
		Name:        "Hanuman Chalisa Pocket Edition",
		Description: "Pocket-sized Hanuman Chalisa with Hindi text and English translation.",
		Price:       99,
		Image:       "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400&h=400&fit=crop",
		Rating:      4.7,
		Category:    "books",
		InStock:     true,
	},
}
