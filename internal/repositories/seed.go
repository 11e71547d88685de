package repositories

import "marketplace-service/internal/models"

// SampleProducts is the demo catalog loaded into a fresh store.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Premium Leather Watch",
			Description: "Handcrafted luxury timepiece featuring genuine Italian leather straps, Swiss movement, and sapphire crystal face. Water-resistant up to 100m with a stunning brushed steel finish. Perfect for both formal occasions and daily wear.",
			Price:       29999,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30",
			MerchantID:  1,
		},
		{
			Name:        "Wireless Noise-Canceling Headphones",
			Description: "Premium wireless headphones with active noise cancellation, 40-hour battery life, and premium audio drivers. Features touch controls, voice assistant support, and premium memory foam ear cushions for ultimate comfort.",
			Price:       19999,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
			MerchantID:  1,
		},
		{
			Name:        "Professional Camera DSLR Kit",
			Description: "Professional-grade DSLR camera with 24.2MP sensor, 4K video capability, and advanced autofocus system. Includes 18-55mm lens, camera bag, and SD card. Perfect for both photography enthusiasts and professionals.",
			Price:       129999,
			Image:       "https://images.unsplash.com/photo-1516035069371-29a1b244cc32",
			MerchantID:  2,
		},
		{
			Name:        "Smart Fitness Tracker",
			Description: "Advanced fitness tracking device with heart rate monitoring, sleep analysis, and GPS. Features a vibrant OLED display, 7-day battery life, and water resistance up to 50m. Syncs with all major fitness apps.",
			Price:       9999,
			Image:       "https://images.unsplash.com/photo-1575311373937-040b8e1fd5b6",
			MerchantID:  2,
		},
		{
			Name:        "Ergonomic Gaming Chair",
			Description: "Premium gaming chair with adjustable lumbar support, 4D armrests, and premium PU leather. Features a robust steel frame, smooth-rolling casters, and supports up to 300 lbs. Perfect for long gaming sessions.",
			Price:       24999,
			Image:       "https://images.unsplash.com/photo-1598550476439-6847785fcea6",
			MerchantID:  3,
		},
		{
			Name:        "Mechanical Gaming Keyboard",
			Description: "Professional mechanical keyboard with RGB backlighting, N-key rollover, and premium Cherry MX switches. Features dedicated macro keys, multimedia controls, and a detachable wrist rest.",
			Price:       14999,
			Image:       "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae",
			MerchantID:  3,
		},
		{
			Name:        "4K Ultra HD Smart TV",
			Description: "55-inch 4K Smart TV with QLED display, HDR support, and 120Hz refresh rate. Features built-in streaming apps, voice control, and HDMI 2.1 ports for next-gen gaming consoles.",
			Price:       89999,
			Image:       "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1",
			MerchantID:  1,
		},
		{
			Name:        "Premium Coffee Maker",
			Description: "Professional-grade coffee maker with 10-cup capacity, programmable brewing, and built-in grinder. Features temperature control, multiple brew strengths, and a thermal carafe to keep coffee hot for hours.",
			Price:       19999,
			Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085",
			MerchantID:  2,
		},
	}
}
