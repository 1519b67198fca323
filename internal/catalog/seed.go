package catalog

import "handicraft-catalog/internal/models"

// Seed retorna el catálogo estático con el que arranca el servicio
func Seed() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Lepakshi Handicrafts Wooden Etikoppaka Six in One Dolls Female", Category: "Toys & Dolls", Price: 15, SalePrice: models.PriceOf(12), RatingValue: 3, TotalRating: 10, Images: []string{"product10.png"}, Label: "-20%"},
		{ID: 2, Name: "Lepakshi Handicrafts Leather Puppetry Lamp Shades Flower Design", Category: "Lighting", Price: 19, SalePrice: models.PriceOf(22), RatingValue: 5, TotalRating: 2, Images: []string{"product1012.png"}},
		{ID: 3, Name: "Lepakshi Handicrafts Leather Puppetry Door & Wall Hangings Gowri Ganesh", Category: "Home Decor", Price: 14, Images: []string{"product112.png"}},
		{ID: 4, Name: "Lepakshi Handicrafts Wooden Etikoppaka Natraj Ganapathi", Category: "Home Decor", Price: 12, RatingValue: 4, TotalRating: 50, Images: []string{"product13.png"}},
		{ID: 5, Name: "Lepakshi Handicrafts Wooden Kondapalli Vegetable cart", Category: "Toys & Dolls", Price: 12, RatingValue: 4, TotalRating: 50, Images: []string{"product14.png"}},
		{ID: 6, Name: "Lepakshi Handicrafts Wooden Etikoppaka Home Decorative Kissan (Farmer) Family Dolls", Category: "Toys & Dolls", Price: 12, RatingValue: 4, TotalRating: 50, Images: []string{"product15.png"}},
		{ID: 7, Name: "Lepakshi Handicrafts Clay Home Decorative Full Elephant Hanging Pair (Right Trunk and Left Trunk)", Category: "Home Decor", Price: 12, RatingValue: 4, TotalRating: 50, Images: []string{"product16.png"}},
		{ID: 8, Name: "Kalamkari Hand Painted Cotton Saree", Category: "Ethnic Wear", Price: 48, SalePrice: models.PriceOf(39), RatingValue: 4.5, TotalRating: 31, Images: []string{"https://images.lepakshi.example/kalamkari-saree-1.jpg", "https://images.lepakshi.example/kalamkari-saree-2.jpg"}, Label: "NEW"},
		{ID: 9, Name: "Pochampally Ikat Silk Dupatta", Category: "Ethnic Wear", Price: 30, RatingValue: 4.2, TotalRating: 18, Images: []string{"https://images.lepakshi.example/ikat-dupatta.jpg"}},
		{ID: 10, Name: "Handloom Mangalagiri Cotton Kurta", Category: "Fashion", Price: 25, SalePrice: models.PriceOf(20), RatingValue: 3.8, TotalRating: 12, Images: []string{"https://images.lepakshi.example/mangalagiri-kurta.jpg"}, Label: "-20%"},
		{ID: 11, Name: "Bidriware Silver Inlay Jewellery Box", Category: "Home Decor", Price: 40, SalePrice: models.PriceOf(34), RatingValue: 4.8, TotalRating: 22, Images: []string{"https://images.lepakshi.example/bidri-box.jpg"}},
		{ID: 12, Name: "Nirmal Painted Wooden Serving Tray", Category: "Home & Kitchen", Price: 18, RatingValue: 4.1, TotalRating: 9, Images: []string{"https://images.lepakshi.example/nirmal-tray.jpg"}},
		{ID: 13, Name: "Terracotta Kitchen Water Pot with Tap", Category: "Home & Kitchen", Price: 22, SalePrice: models.PriceOf(17.5), RatingValue: 4.3, TotalRating: 27, Images: []string{"https://images.lepakshi.example/terracotta-pot.jpg"}},
		{ID: 14, Name: "Brass Diya Set of Five", Category: "Lighting", Price: 16, RatingValue: 4.6, TotalRating: 41, Images: []string{"https://images.lepakshi.example/brass-diya.jpg"}},
		{ID: 15, Name: "Cheriyal Scroll Painting Mask", Category: "Home Decor", Price: 35, RatingValue: 4.9, TotalRating: 6, Images: []string{"https://images.lepakshi.example/cheriyal-mask.jpg"}, Label: "NEW"},
		{ID: 16, Name: "Kondapalli Dasavatharam Wooden Toy Set", Category: "Toys & Dolls", Price: 28, SalePrice: models.PriceOf(21), RatingValue: 4.4, TotalRating: 15, Images: []string{"https://images.lepakshi.example/dasavatharam.jpg"}, Label: "-25%"},
		{ID: 17, Name: "Organic Neem Cake Fertiliser 1kg", Category: "Agri Inputs", Price: 6, RatingValue: 4, TotalRating: 4, Images: []string{"https://images.lepakshi.example/neem-cake.jpg"}},
		{ID: 18, Name: "Handcrafted Bamboo Bluetooth Speaker", Category: "Electronics", Price: 45, SalePrice: models.PriceOf(38), RatingValue: 3.9, TotalRating: 11, Images: []string{"https://images.lepakshi.example/bamboo-speaker.jpg"}},
	}
}
