package models

// Product is static catalog data, loaded once and never mutated at runtime.
type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"` // unit price
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	ScentFamily  string   `json:"scentFamily"`
	Volume       string   `json:"volume"`
	Ingredients  []string `json:"ingredients"`
	IsOrganic    bool     `json:"isOrganic"`
	IsNew        bool     `json:"isNew"`
	IsBestSeller bool     `json:"isBestSeller"`
}

// ScentFamily and Category are the filter facets the catalog exposes.
type ScentFamily struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
