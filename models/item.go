package models

type Item struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"` // e.g. "wax", "resin"
	Subcategory     string   `json:"subcategory,omitempty"`
	Price           float64  `json:"price"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Dimensions      string   `json:"dimensions,omitempty"`
	Weight          string   `json:"weight,omitempty"`
	Materials       string   `json:"materials,omitempty"`
	BurnTime        string   `json:"burnTime,omitempty"`
	Image           string   `json:"image"`
	Tags            []string `json:"tags"`
	Featured        bool     `json:"featured"`
	InStock         bool     `json:"inStock"`
	Popularity      int      `json:"popularity"` // 0-100
}
