package db

import "github.com/johnadams78/capstoneproject/internal/models"

// Catalog returns the stock showroom inventory used by `showroom db seed`.
func Catalog() []models.Vehicle {
	return []models.Vehicle{
		{Make: "Mercedes-Benz", Model: "S-Class", Year: 2024, Price: 114000, Category: "Luxury", BodyType: "Sedan",
			Engine: "4.0L V8 Twin-Turbo", Horsepower: 496, Color: "Obsidian Black", Mileage: 1250,
			Transmission: "9-Speed Automatic", FuelType: "Premium Gasoline",
			Description: "The pinnacle of luxury sedans featuring cutting-edge technology, supreme comfort, and timeless elegance. Equipped with MBUX infotainment, Burmester 4D surround sound, and active suspension.",
			ImageURL:    "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=400"},
		{Make: "BMW", Model: "7 Series", Year: 2024, Price: 95000, Category: "Luxury", BodyType: "Sedan",
			Engine: "3.0L I6 Twin-Turbo", Horsepower: 375, Color: "Alpine White", Mileage: 890,
			Transmission: "8-Speed Automatic", FuelType: "Premium Gasoline",
			Description: "Experience ultimate driving luxury with BMW flagship sedan. Features iDrive 8, Executive Lounge seating, and Sky Lounge panoramic roof.",
			ImageURL:    "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=400"},
		{Make: "Audi", Model: "A8 L", Year: 2024, Price: 87400, Category: "Luxury", BodyType: "Sedan",
			Engine: "3.0L V6 TFSI", Horsepower: 335, Color: "Glacier White", Mileage: 1100,
			Transmission: "8-Speed Tiptronic", FuelType: "Premium Gasoline",
			Description: "Sophisticated luxury meets advanced technology. Featuring Audi Virtual Cockpit, Matrix LED headlights, and Bang & Olufsen 3D sound.",
			ImageURL:    "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=400"},
		{Make: "Lexus", Model: "LS 500", Year: 2024, Price: 76900, Category: "Luxury", BodyType: "Sedan",
			Engine: "3.5L V6 Twin-Turbo", Horsepower: 416, Color: "Liquid Platinum", Mileage: 750,
			Transmission: "10-Speed Automatic", FuelType: "Premium Gasoline",
			Description: "Japanese craftsmanship at its finest. Hand-pleated door panels, Kiriko glass accents, and 28-way power front seats.",
			ImageURL:    "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=400"},
		{Make: "Porsche", Model: "911 Turbo S", Year: 2024, Price: 218000, Category: "Sports", BodyType: "Coupe",
			Engine: "3.7L Flat-6 Twin-Turbo", Horsepower: 640, Color: "Guards Red", Mileage: 320,
			Transmission: "8-Speed PDK", FuelType: "Premium Gasoline",
			Description: "The ultimate 911 combines breathtaking performance with everyday usability. 0-60 in 2.6 seconds with launch control.",
			ImageURL:    "https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=400"},
		{Make: "Ferrari", Model: "Roma", Year: 2024, Price: 245000, Category: "Sports", BodyType: "Coupe",
			Engine: "3.9L V8 Twin-Turbo", Horsepower: 612, Color: "Rosso Corsa", Mileage: 180,
			Transmission: "8-Speed DCT", FuelType: "Premium Gasoline",
			Description: "La Nuova Dolce Vita - elegant GT styling meets Ferrari performance. Features SF90 Stradale-derived technology.",
			ImageURL:    "https://images.unsplash.com/photo-1592198084033-aade902d1aae?w=400"},
		{Make: "Lamborghini", Model: "Huracán EVO", Year: 2024, Price: 268000, Category: "Sports", BodyType: "Coupe",
			Engine: "5.2L V10", Horsepower: 631, Color: "Giallo Orion", Mileage: 290,
			Transmission: "7-Speed LDF", FuelType: "Premium Gasoline",
			Description: "Naturally aspirated perfection with predictive logic. LDVI system reads driver intent for perfect response.",
			ImageURL:    "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=400"},
		{Make: "McLaren", Model: "720S", Year: 2024, Price: 299000, Category: "Sports", BodyType: "Coupe",
			Engine: "4.0L V8 Twin-Turbo", Horsepower: 710, Color: "Papaya Spark", Mileage: 410,
			Transmission: "7-Speed SSG", FuelType: "Premium Gasoline",
			Description: "Proactive Chassis Control II delivers telepathic handling. Dihedral doors and carbon fiber monocoque construction.",
			ImageURL:    "https://images.unsplash.com/photo-1621135802920-133df287f89c?w=400"},
		{Make: "Tesla", Model: "Model S Plaid", Year: 2024, Price: 108990, Category: "Electric", BodyType: "Sedan",
			Engine: "Tri-Motor AWD", Horsepower: 1020, Color: "Pearl White", Mileage: 650,
			Transmission: "Single-Speed", FuelType: "Electric",
			Description: "The quickest production car ever made. 0-60 in under 2 seconds with 390+ miles of range.",
			ImageURL:    "https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=400"},
		{Make: "Porsche", Model: "Taycan Turbo S", Year: 2024, Price: 187400, Category: "Electric", BodyType: "Sedan",
			Engine: "Dual-Motor AWD", Horsepower: 750, Color: "Frozen Blue", Mileage: 520,
			Transmission: "2-Speed Automatic", FuelType: "Electric",
			Description: "Electric performance without compromise. 800V architecture enables 270kW DC fast charging.",
			ImageURL:    "https://images.unsplash.com/photo-1619767886558-efdc259cde1a?w=400"},
		{Make: "Range Rover", Model: "Autobiography", Year: 2024, Price: 185000, Category: "Luxury", BodyType: "SUV",
			Engine: "4.4L V8 Twin-Turbo", Horsepower: 523, Color: "Santorini Black", Mileage: 980,
			Transmission: "8-Speed Automatic", FuelType: "Premium Gasoline",
			Description: "The original luxury SUV, elevated. Features Executive Class rear seats and Meridian Signature Sound.",
			ImageURL:    "https://images.unsplash.com/photo-1606016159991-dfe4f2746ad5?w=400"},
		{Make: "Mercedes-Benz", Model: "G63 AMG", Year: 2024, Price: 179000, Category: "Luxury", BodyType: "SUV",
			Engine: "4.0L V8 Biturbo", Horsepower: 577, Color: "Manufaktur White", Mileage: 1450,
			Transmission: "9-Speed Automatic", FuelType: "Premium Gasoline",
			Description: "Iconic design meets AMG performance. Handcrafted engine with 627 lb-ft of torque.",
			ImageURL:    "https://images.unsplash.com/photo-1520031441872-265e4ff70366?w=400"},
		{Make: "BMW", Model: "X7 M60i", Year: 2024, Price: 112000, Category: "Luxury", BodyType: "SUV",
			Engine: "4.4L V8 Twin-Turbo", Horsepower: 523, Color: "Carbon Black", Mileage: 870,
			Transmission: "8-Speed Automatic", FuelType: "Premium Gasoline",
			Description: "Ultimate luxury meets commanding presence. Panoramic Sky Lounge LED roof and Bowers & Wilkins Diamond audio.",
			ImageURL:    "https://images.unsplash.com/photo-1619682817481-e994891cd1f5?w=400"},
		{Make: "Cadillac", Model: "Escalade V", Year: 2024, Price: 152000, Category: "Luxury", BodyType: "SUV",
			Engine: "6.2L Supercharged V8", Horsepower: 682, Color: "Black Raven", Mileage: 620,
			Transmission: "10-Speed Automatic", FuelType: "Premium Gasoline",
			Description: "Supercharged American luxury. 38-inch curved OLED display and Super Cruise hands-free driving.",
			ImageURL:    "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?w=400"},
		{Make: "Aston Martin", Model: "DB12", Year: 2024, Price: 245000, Category: "Sports", BodyType: "Coupe",
			Engine: "4.0L V8 Twin-Turbo", Horsepower: 671, Color: "Q Midnight Blue", Mileage: 150,
			Transmission: "8-Speed Automatic", FuelType: "Premium Gasoline",
			Description: "The worlds first super tourer. Bespoke interior by Q and 198 mph top speed.",
			ImageURL:    "https://images.unsplash.com/photo-1596468138838-0f34c2d0773b?w=400"},
		{Make: "Bentley", Model: "Continental GT", Year: 2024, Price: 235000, Category: "Luxury", BodyType: "Coupe",
			Engine: "6.0L W12 Twin-Turbo", Horsepower: 650, Color: "Barnato Green", Mileage: 430,
			Transmission: "8-Speed DCT", FuelType: "Premium Gasoline",
			Description: "Grand touring perfected. Hand-stitched interior takes 150 hours to complete.",
			ImageURL:    "https://images.unsplash.com/photo-1580414057403-c5f451f30e1c?w=400"},
		{Make: "Maserati", Model: "MC20", Year: 2024, Price: 215000, Category: "Sports", BodyType: "Coupe",
			Engine: "3.0L V6 Nettuno", Horsepower: 621, Color: "Bianco Audace", Mileage: 280,
			Transmission: "8-Speed DCT", FuelType: "Premium Gasoline",
			Description: "100% Maserati with revolutionary Nettuno engine featuring F1-derived pre-chamber combustion.",
			ImageURL:    "https://images.unsplash.com/photo-1618843479619-f3d0d81e4d10?w=400"},
		{Make: "Rolls-Royce", Model: "Ghost", Year: 2024, Price: 340000, Category: "Luxury", BodyType: "Sedan",
			Engine: "6.75L V12 Twin-Turbo", Horsepower: 563, Color: "Arctic White", Mileage: 890,
			Transmission: "8-Speed Automatic", FuelType: "Premium Gasoline",
			Description: "Post Opulent design philosophy. Features Illuminated Fascia and Starlight Headliner with 1,340 fiber optic lights.",
			ImageURL:    "https://images.unsplash.com/photo-1563720360172-67b8f3dce741?w=400"},
		{Make: "Rivian", Model: "R1S", Year: 2024, Price: 84500, Category: "Electric", BodyType: "SUV",
			Engine: "Quad-Motor AWD", Horsepower: 835, Color: "Rivian Blue", Mileage: 1200,
			Transmission: "Single-Speed", FuelType: "Electric",
			Description: "Adventure-ready electric SUV with 316 miles range. Gear Guard security system and Camp Mode included.",
			ImageURL:    "https://images.unsplash.com/photo-1617788138017-80ad40651399?w=400"},
		{Make: "Lucid", Model: "Air Grand Touring", Year: 2024, Price: 169000, Category: "Electric", BodyType: "Sedan",
			Engine: "Dual-Motor AWD", Horsepower: 1111, Color: "Stellar White", Mileage: 580,
			Transmission: "Single-Speed", FuelType: "Electric",
			Description: "Longest range EV at 516 miles. DreamDrive Pro semi-autonomous driving and Glass Cockpit display.",
			ImageURL:    "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=400"},
	}
}
