package catalog

import "github.com/debghosh/kreations/models"

// seedItems is the built-in demo catalog. It is never mutated: admin edits
// materialize a copy into the products key first (see Catalog).
var seedItems = []models.Item{
	{
		ID:              "w1",
		Title:           "Amber Sunset Pillar Candle",
		Category:        "wax",
		Subcategory:     "candles",
		Price:           45,
		Description:     "Hand-poured soy wax candle with natural amber essence. Each piece features unique swirls reminiscent of a golden sunset, creating warm ambient lighting that transforms any space.",
		LongDescription: "Crafted with premium sustainable soy wax and infused with pure essential oils, this pillar candle burns for over 60 hours. The amber coloring comes from natural mineral pigments, ensuring an eco-friendly product that enriches your home with both light and fragrance.",
		Dimensions:      `4" diameter × 6" height`,
		Weight:          "1.2 lbs",
		Materials:       "Soy wax, cotton wick, essential oils",
		BurnTime:        "60+ hours",
		Image:           "https://images.unsplash.com/photo-1602874801006-90c27c6e0ca5?w=800",
		Tags:            []string{"sustainable", "handmade", "aromatherapy"},
		Featured:        true,
		InStock:         true,
		Popularity:      95,
	},
	{
		ID:              "w2",
		Title:           "Honeycomb Beeswax Taper Set",
		Category:        "wax",
		Subcategory:     "candles",
		Price:           32,
		Description:     "Pure beeswax tapers with natural honeycomb texture. Burns clean with a subtle honey aroma, perfect for elegant dining or meditation spaces.",
		LongDescription: "These tapers are rolled from 100% pure beeswax sheets harvested from local apiaries. The natural hexagonal pattern and golden hue celebrate the artistry of nature itself. Beeswax naturally purifies the air as it burns.",
		Dimensions:      `0.75" diameter × 10" height (pair)`,
		Weight:          "8 oz",
		Materials:       "100% pure beeswax, cotton wick",
		BurnTime:        "8 hours per taper",
		Image:           "https://images.unsplash.com/photo-1603006905003-be475563bc59?w=800",
		Tags:            []string{"natural", "beeswax", "elegant"},
		Featured:        true,
		InStock:         true,
		Popularity:      88,
	},
	{
		ID:              "w3",
		Title:           "Geometric Wax Coaster Set",
		Category:        "wax",
		Subcategory:     "coasters",
		Price:           28,
		Description:     "Modern hexagonal coasters with embedded botanicals. Each coaster is a unique piece of functional art featuring pressed flowers and leaves.",
		LongDescription: "These statement coasters blend form and function beautifully. Made from durable wax composite with real pressed botanicals, they protect surfaces while adding natural elegance to your coffee table or workspace.",
		Dimensions:      `4" hexagon × 0.5" thick (set of 4)`,
		Weight:          "12 oz",
		Materials:       "Wax composite, pressed botanicals, cork backing",
		Image:           "https://images.unsplash.com/photo-1565123409695-7b5ef23ec3b5?w=800",
		Tags:            []string{"modern", "botanical", "functional"},
		Featured:        false,
		InStock:         true,
		Popularity:      76,
	},
	{
		ID:              "w4",
		Title:           "Lavender Dreams Votive Collection",
		Category:        "wax",
		Subcategory:     "candles",
		Price:           38,
		Description:     "Set of six hand-poured lavender votives in frosted glass holders. Perfect for creating a calming atmosphere with gentle fragrance.",
		LongDescription: "Each votive in this collection features layers of purple hues, from deep violet to soft lilac. Infused with pure lavender essential oil from Provence, these candles promote relaxation and peaceful sleep.",
		Dimensions:      `2" diameter × 2.5" height each`,
		Weight:          "1.5 lbs total",
		Materials:       "Coconut-soy blend, lavender essential oil, frosted glass",
		BurnTime:        "15 hours per votive",
		Image:           "https://images.unsplash.com/photo-1598511726623-d2e9996892f0?w=800",
		Tags:            []string{"aromatherapy", "relaxation", "gift-set"},
		Featured:        false,
		InStock:         true,
		Popularity:      82,
	},
	{
		ID:              "w5",
		Title:           "Sculptural Sphere Candle",
		Category:        "wax",
		Subcategory:     "candles",
		Price:           52,
		Description:     "Award-winning spherical candle with intricate surface patterns. A true statement piece that doubles as modern sculpture.",
		LongDescription: "This museum-quality piece took months to perfect. Cast in a custom silicone mold, each sphere features complex geometric patterns inspired by sacred geometry. The candle burns from the inside out, creating a mesmerizing glow effect.",
		Dimensions:      `5" diameter`,
		Weight:          "1.8 lbs",
		Materials:       "Premium paraffin-soy blend, internal wick system",
		BurnTime:        "40 hours",
		Image:           "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=800",
		Tags:            []string{"sculpture", "luxury", "statement-piece"},
		Featured:        true,
		InStock:         false,
		Popularity:      92,
	},
	{
		ID:              "w6",
		Title:           "Ocean Wave Wax Tray",
		Category:        "wax",
		Subcategory:     "trays",
		Price:           42,
		Description:     "Flowing resin-wax hybrid tray with turquoise and white swirls. Perfect for jewelry, keys, or as decorative centerpiece.",
		LongDescription: "This tray captures the essence of ocean waves with its dynamic color blend. The combination of resin and wax creates a unique texture that is both durable and beautiful. Each piece has slightly different wave patterns.",
		Dimensions:      `8" × 6" × 1" deep`,
		Weight:          "14 oz",
		Materials:       "Resin-wax composite, mica pigments, gold leaf accents",
		Image:           "https://images.unsplash.com/photo-1621784563330-caee0b138a00?w=800",
		Tags:            []string{"functional-art", "ocean", "organizer"},
		Featured:        false,
		InStock:         true,
		Popularity:      79,
	},
	{
		ID:              "r1",
		Title:           "Galaxy Resin Catchall Tray",
		Category:        "resin",
		Subcategory:     "trays",
		Price:           55,
		Description:     "Deep space-inspired resin tray with swirling nebula colors and holographic glitter accents. A cosmic masterpiece for your entryway.",
		LongDescription: "This tray brings the universe to your home. Created using multiple pours of pigmented resin with carefully placed metallic and holographic elements, each tray is truly one-of-a-kind. The depth and dimension achieved make it look like you are gazing into deep space.",
		Dimensions:      `10" × 8" × 1.5" deep`,
		Weight:          "1.3 lbs",
		Materials:       "Premium epoxy resin, mica pigments, holographic glitter, gold leaf",
		Image:           "https://images.unsplash.com/photo-1618172193622-ae2d025f4032?w=800",
		Tags:            []string{"galaxy", "cosmic", "statement"},
		Featured:        true,
		InStock:         true,
		Popularity:      94,
	},
	{
		ID:              "r2",
		Title:           "Pressed Flower Resin Coasters",
		Category:        "resin",
		Subcategory:     "coasters",
		Price:           36,
		Description:     "Set of four circular coasters with real pressed flowers suspended in crystal-clear resin. Nature preserved forever.",
		LongDescription: "Each coaster in this set features different wildflowers carefully pressed and arranged before being encased in archival-quality resin. The flowers maintain their color and beauty indefinitely, creating functional art that celebrates nature.",
		Dimensions:      `4" diameter × 0.5" thick (set of 4)`,
		Weight:          "10 oz",
		Materials:       "Epoxy resin, pressed wildflowers, cork backing",
		Image:           "https://images.unsplash.com/photo-1621784564315-d2a91e3bb134?w=800",
		Tags:            []string{"botanical", "nature", "preserved"},
		Featured:        true,
		InStock:         true,
		Popularity:      89,
	},
	{
		ID:              "r3",
		Title:           "Agate Slice Resin Serving Board",
		Category:        "resin",
		Subcategory:     "boards",
		Price:           85,
		Description:     "Luxury serving board featuring real agate slice edge with food-safe resin surface. Perfect for charcuterie and entertaining.",
		LongDescription: "This extraordinary piece combines natural agate crystal with functional design. The agate edge is carefully selected for its vibrant colors and patterns, then incorporated into a smooth resin surface that is both beautiful and practical for food service.",
		Dimensions:      `16" × 10" × 0.75" thick`,
		Weight:          "2.5 lbs",
		Materials:       "Food-safe epoxy resin, natural agate, cork feet",
		Image:           "https://images.unsplash.com/photo-1589010588553-46e8e7c21788?w=800",
		Tags:            []string{"luxury", "functional", "entertaining"},
		Featured:        true,
		InStock:         true,
		Popularity:      91,
	},
	{
		ID:              "r4",
		Title:           "Abstract Art Resin Wall Panel",
		Category:        "resin",
		Subcategory:     "art",
		Price:           125,
		Description:     "Large format abstract resin art panel with flowing alcohol ink patterns. Ready to hang statement piece.",
		LongDescription: "This wall art piece pushes the boundaries of resin art. Multiple layers of alcohol inks create organic flowing patterns that seem to move before your eyes. The high-gloss finish and dimensional quality make it a true focal point.",
		Dimensions:      `24" × 18" × 2" deep`,
		Weight:          "4 lbs",
		Materials:       "Epoxy resin, alcohol inks, wood backing, hanging hardware",
		Image:           "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=800",
		Tags:            []string{"abstract", "wall-art", "statement"},
		Featured:        false,
		InStock:         true,
		Popularity:      86,
	},
	{
		ID:              "r5",
		Title:           "Ocean Waves Resin Cheese Board",
		Category:        "resin",
		Subcategory:     "boards",
		Price:           68,
		Description:     "Beach-inspired cheese board with layered blue and white resin waves. Includes walnut wood handle.",
		LongDescription: "Bring the serenity of the ocean to your table. This cheese board features realistic wave patterns created through meticulous layering technique. The walnut handle provides beautiful contrast and practical functionality.",
		Dimensions:      `14" × 8" × 0.75" thick`,
		Weight:          "1.8 lbs",
		Materials:       "Food-safe resin, walnut wood, mineral oil finish",
		Image:           "https://images.unsplash.com/photo-1576867757603-05b134ebc379?w=800",
		Tags:            []string{"ocean", "functional", "entertaining"},
		Featured:        false,
		InStock:         true,
		Popularity:      83,
	},
	{
		ID:              "r6",
		Title:           "Geode Resin Jewelry Tray",
		Category:        "resin",
		Subcategory:     "trays",
		Price:           48,
		Description:     "Sparkling geode-style tray with crushed glass and metallic pigments. Perfect for displaying jewelry and treasures.",
		LongDescription: "Inspired by natural geode formations, this tray features layers of crushed glass and mica that create incredible depth and sparkle. The metallic gold rim adds luxurious detail.",
		Dimensions:      `7" × 5" × 1" deep`,
		Weight:          "12 oz",
		Materials:       "Epoxy resin, crushed glass, mica pigments, metallic leaf",
		Image:           "https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=800",
		Tags:            []string{"geode", "sparkle", "jewelry"},
		Featured:        false,
		InStock:         true,
		Popularity:      77,
	},
}

// SeedItems returns a copy of the built-in catalog.
func SeedItems() []models.Item {
	return append([]models.Item(nil), seedItems...)
}
