package seed

import "github.com/shopspring/decimal"

// DefaultFixture returns the sample catalog: ten categories with five products
// each. Every call returns a fresh copy.
func DefaultFixture() Fixture {
	return Fixture{Categories: []CategoryFixture{
		{
			Title:    "Electronics",
			Products: []ProductFixture{
				{Title: "55\" 4K Smart TV", Price: decimal.RequireFromString("599.99"), Stock: 35, Description: "55-inch 4K UHD HDR smart television with built-in apps."},
				{Title: "Wireless Noise-Cancelling Headphones", Price: decimal.RequireFromString("199.99"), Stock: 120, Description: "Over-ear Bluetooth headphones with ANC and 30h battery."},
				{Title: "14\" Ultrabook Laptop", Price: decimal.RequireFromString("1099.00"), Stock: 18, Description: "Lightweight 14-inch laptop with SSD and 16GB RAM."},
				{Title: "Bluetooth Speaker", Price: decimal.RequireFromString("79.90"), Stock: 85, Description: "Portable speaker with deep bass and IPX7 water resistance."},
				{Title: "Smartphone 128GB", Price: decimal.RequireFromString("699.00"), Stock: 42, Description: "6.1-inch display, dual camera, 5G, 128GB storage."},
			},
		},
		{
			Title:    "Books",
			Products: []ProductFixture{
				{Title: "Clean Code", Price: decimal.RequireFromString("34.99"), Stock: 64, Description: "A handbook of agile software craftsmanship."},
				{Title: "The Pragmatic Programmer", Price: decimal.RequireFromString("39.99"), Stock: 52, Description: "Journey to mastery for modern developers."},
				{Title: "Design Patterns", Price: decimal.RequireFromString("49.99"), Stock: 40, Description: "Elements of reusable object-oriented software."},
				{Title: "Refactoring", Price: decimal.RequireFromString("44.99"), Stock: 33, Description: "Improving the design of existing code."},
				{Title: "Domain-Driven Design", Price: decimal.RequireFromString("59.99"), Stock: 28, Description: "Tackling complexity in the heart of software."},
			},
		},
		{
			Title:    "Clothing",
			Products: []ProductFixture{
				{Title: "Men's Cotton T-Shirt", Price: decimal.RequireFromString("14.99"), Stock: 200, Description: "100% cotton classic fit tee."},
				{Title: "Women's Denim Jacket", Price: decimal.RequireFromString("49.90"), Stock: 75, Description: "Stylish denim jacket with pockets."},
				{Title: "Running Shoes", Price: decimal.RequireFromString("89.00"), Stock: 60, Description: "Breathable running shoes for everyday training."},
				{Title: "Wool Sweater", Price: decimal.RequireFromString("59.50"), Stock: 40, Description: "Soft merino wool crew-neck sweater."},
				{Title: "Baseball Cap", Price: decimal.RequireFromString("19.99"), Stock: 150, Description: "Adjustable cap with curved brim."},
			},
		},
		{
			Title:    "Home & Kitchen",
			Products: []ProductFixture{
				{Title: "Air Fryer 5 Qt", Price: decimal.RequireFromString("99.99"), Stock: 55, Description: "Oil-less air fryer with digital controls."},
				{Title: "Stainless Steel Cookware Set", Price: decimal.RequireFromString("129.99"), Stock: 22, Description: "10-piece pots and pans set for all cooktops."},
				{Title: "Memory Foam Pillow", Price: decimal.RequireFromString("29.99"), Stock: 110, Description: "Ergonomic pillow with washable cover."},
				{Title: "Robot Vacuum", Price: decimal.RequireFromString("229.00"), Stock: 18, Description: "Self-charging vacuum with app control."},
				{Title: "Electric Kettle 1.7L", Price: decimal.RequireFromString("34.90"), Stock: 90, Description: "Fast-boil kettle with auto shut-off."},
			},
		},
		{
			Title:    "Sports & Outdoors",
			Products: []ProductFixture{
				{Title: "Yoga Mat", Price: decimal.RequireFromString("24.99"), Stock: 130, Description: "Non-slip 6mm thick exercise mat."},
				{Title: "Mountain Bike Helmet", Price: decimal.RequireFromString("69.99"), Stock: 48, Description: "Lightweight helmet with MIPS-like protection."},
				{Title: "Adjustable Dumbbells 2x25lb", Price: decimal.RequireFromString("179.00"), Stock: 26, Description: "Space-saving adjustable free weights."},
				{Title: "Camping Tent 2-Person", Price: decimal.RequireFromString("119.00"), Stock: 34, Description: "Water-resistant tent with vestibule."},
				{Title: "Fitness Tracker", Price: decimal.RequireFromString("59.99"), Stock: 77, Description: "Activity tracker with heart rate and sleep monitor."},
			},
		},
		{
			Title:    "Toys & Games",
			Products: []ProductFixture{
				{Title: "Building Blocks Set 500 pcs", Price: decimal.RequireFromString("39.99"), Stock: 80, Description: "Creative building set compatible with major brands."},
				{Title: "Remote Control Car", Price: decimal.RequireFromString("49.99"), Stock: 65, Description: "Fast RC car with rechargeable battery."},
				{Title: "Board Game Strategy", Price: decimal.RequireFromString("29.99"), Stock: 70, Description: "Competitive strategy game for 2-4 players."},
				{Title: "Plush Teddy Bear", Price: decimal.RequireFromString("19.99"), Stock: 95, Description: "Soft plush bear, 30 cm tall."},
				{Title: "Puzzle 1000 Pieces", Price: decimal.RequireFromString("16.99"), Stock: 120, Description: "High-quality jigsaw puzzle with poster."},
			},
		},
		{
			Title:    "Beauty & Personal Care",
			Products: []ProductFixture{
				{Title: "Facial Cleanser 200ml", Price: decimal.RequireFromString("12.99"), Stock: 140, Description: "Gentle daily face wash for all skin types."},
				{Title: "Moisturizing Cream 50ml", Price: decimal.RequireFromString("17.99"), Stock: 90, Description: "Hydrating cream with hyaluronic acid."},
				{Title: "Shampoo 400ml", Price: decimal.RequireFromString("8.49"), Stock: 160, Description: "Sulfate-free shampoo for shiny hair."},
				{Title: "Electric Toothbrush", Price: decimal.RequireFromString("39.99"), Stock: 55, Description: "Rechargeable sonic toothbrush with timer."},
				{Title: "Hair Dryer 1800W", Price: decimal.RequireFromString("29.99"), Stock: 60, Description: "Compact dryer with ionic technology."},
			},
		},
		{
			Title:    "Automotive",
			Products: []ProductFixture{
				{Title: "Car Phone Mount", Price: decimal.RequireFromString("14.99"), Stock: 150, Description: "Dashboard and windshield compatible mount."},
				{Title: "All-Weather Floor Mats", Price: decimal.RequireFromString("69.99"), Stock: 30, Description: "Heavy-duty mats for most vehicles."},
				{Title: "Portable Jump Starter", Price: decimal.RequireFromString("79.99"), Stock: 24, Description: "Compact 1000A jump starter with USB-C."},
				{Title: "LED Headlight Bulbs", Price: decimal.RequireFromString("49.99"), Stock: 42, Description: "Bright, energy-efficient replacement bulbs."},
				{Title: "Tire Inflator", Price: decimal.RequireFromString("39.99"), Stock: 58, Description: "Portable air compressor with pressure gauge."},
			},
		},
		{
			Title:    "Grocery",
			Products: []ProductFixture{
				{Title: "Organic Arabica Coffee Beans 1kg", Price: decimal.RequireFromString("19.99"), Stock: 100, Description: "Fresh medium roast whole beans."},
				{Title: "Extra Virgin Olive Oil 1L", Price: decimal.RequireFromString("15.99"), Stock: 85, Description: "Cold-pressed olive oil, first harvest."},
				{Title: "Whole Grain Pasta 500g", Price: decimal.RequireFromString("2.49"), Stock: 200, Description: "Durum wheat pasta, al dente texture."},
				{Title: "Almond Butter 340g", Price: decimal.RequireFromString("8.99"), Stock: 70, Description: "No added sugar or palm oil."},
				{Title: "Protein Bars Pack of 12", Price: decimal.RequireFromString("21.99"), Stock: 60, Description: "12g protein per bar, assorted flavors."},
			},
		},
		{
			Title:    "Garden & Tools",
			Products: []ProductFixture{
				{Title: "Cordless Drill 20V", Price: decimal.RequireFromString("89.99"), Stock: 33, Description: "Compact drill with 2 batteries and charger."},
				{Title: "Gardening Tool Set 10 pcs", Price: decimal.RequireFromString("39.99"), Stock: 44, Description: "Hand tools set with tote bag."},
				{Title: "Pruning Shears", Price: decimal.RequireFromString("16.99"), Stock: 120, Description: "Bypass pruner with sharp stainless blade."},
				{Title: "Lawn Sprinkler", Price: decimal.RequireFromString("24.99"), Stock: 65, Description: "Adjustable oscillating sprinkler."},
				{Title: "LED Work Light", Price: decimal.RequireFromString("29.99"), Stock: 52, Description: "Rechargeable flood light with stand."},
			},
		},
	}}
}
