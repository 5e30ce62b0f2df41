package catalog

import (
	"strings"

	"solevara/models"
)

// Static reference data. Loaded once, never mutated.

var ScentFamilies = []models.ScentFamily{
	{ID: "floral", Name: "Floral"},
	{ID: "citrus", Name: "Citrus"},
	{ID: "woody", Name: "Woody"},
	{ID: "oriental", Name: "Oriental"},
	{ID: "fresh", Name: "Fresh"},
}

var Categories = []models.Category{
	{ID: "eau-de-parfum", Name: "Eau de Parfum"},
	{ID: "eau-de-toilette", Name: "Eau de Toilette"},
	{ID: "body-mist", Name: "Body Mist"},
	{ID: "essential-oil", Name: "Essential Oil"},
}

var Products = []models.Product{
	{
		ID:          1,
		Name:        "Rose Absolute",
		Description: "A deep, velvety rose built on organic Damask rose otto and a soft amber base.",
		Price:       2500,
		Image:       "rose-absolute.jpg",
		Category:    "eau-de-parfum",
		ScentFamily: "floral",
		Volume:      "50ml",
		Ingredients: []string{"Damask rose otto", "Organic jojoba oil", "Amber resin", "Sugarcane alcohol"},
		IsOrganic:   true, IsBestSeller: true,
	},
	{
		ID:          2,
		Name:        "Neroli Dawn",
		Description: "Bright orange blossom over a green petitgrain heart; a clean morning citrus.",
		Price:       2100,
		Image:       "neroli-dawn.jpg",
		Category:    "eau-de-toilette",
		ScentFamily: "citrus",
		Volume:      "50ml",
		Ingredients: []string{"Neroli", "Petitgrain", "Bergamot", "Sugarcane alcohol"},
		IsOrganic:   true, IsNew: true,
	},
	{
		ID:          3,
		Name:        "Cedar & Smoke",
		Description: "Dry Atlas cedarwood with a whisper of vetiver smoke and cardamom.",
		Price:       2800,
		Image:       "cedar-smoke.jpg",
		Category:    "eau-de-parfum",
		ScentFamily: "woody",
		Volume:      "50ml",
		Ingredients: []string{"Atlas cedarwood", "Vetiver", "Cardamom", "Sugarcane alcohol"},
		IsOrganic:   true,
	},
	{
		ID:          4,
		Name:        "Amber Noir",
		Description: "Resinous labdanum and vanilla orchid wrapped in warm sandalwood.",
		Price:       3200,
		Image:       "amber-noir.jpg",
		Category:    "eau-de-parfum",
		ScentFamily: "oriental",
		Volume:      "50ml",
		Ingredients: []string{"Labdanum", "Vanilla orchid", "Sandalwood", "Sugarcane alcohol"},
		IsOrganic:   true, IsBestSeller: true,
	},
	{
		ID:          5,
		Name:        "Verbena Fields",
		Description: "Lemon verbena and crushed mint, light enough for every day.",
		Price:       1400,
		Image:       "verbena-fields.jpg",
		Category:    "body-mist",
		ScentFamily: "fresh",
		Volume:      "100ml",
		Ingredients: []string{"Lemon verbena", "Peppermint", "Aloe water"},
		IsOrganic:   true,
	},
	{
		ID:          6,
		Name:        "Jasmine Veil",
		Description: "Night-blooming jasmine sambac softened with creamy tonka.",
		Price:       2600,
		Image:       "jasmine-veil.jpg",
		Category:    "eau-de-parfum",
		ScentFamily: "floral",
		Volume:      "50ml",
		Ingredients: []string{"Jasmine sambac", "Tonka bean", "Iris root", "Sugarcane alcohol"},
		IsOrganic:   true, IsNew: true,
	},
	{
		ID:          7,
		Name:        "Bergamot Grove",
		Description: "Sparkling bergamot and basil over a pale musk drydown.",
		Price:       1900,
		Image:       "bergamot-grove.jpg",
		Category:    "eau-de-toilette",
		ScentFamily: "citrus",
		Volume:      "50ml",
		Ingredients: []string{"Bergamot", "Basil", "White musk", "Sugarcane alcohol"},
		IsOrganic:   true,
	},
	{
		ID:          8,
		Name:        "Vetiver Root Oil",
		Description: "Single-origin Haitian vetiver, undiluted, for layering or solo wear.",
		Price:       1700,
		Image:       "vetiver-root.jpg",
		Category:    "essential-oil",
		ScentFamily: "woody",
		Volume:      "15ml",
		Ingredients: []string{"Haitian vetiver root"},
		IsOrganic:   true,
	},
}

// Filter returns products matching all supplied predicates. Empty values
// mean "no filter". Search matches name or description, case-insensitive.
func Filter(search, category, scentFamily string) []models.Product {
	result := make([]models.Product, 0, len(Products))
	term := strings.ToLower(strings.TrimSpace(search))

	for _, p := range Products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if scentFamily != "" && p.ScentFamily != scentFamily {
			continue
		}
		result = append(result, p)
	}
	return result
}

// ByID returns the product with the given id, or false when absent.
func ByID(id int) (models.Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
