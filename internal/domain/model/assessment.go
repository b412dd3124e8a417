package model

// Assessment is the product-neutral snapshot of a scoring engine run, as
// persisted on the Application. Polarity of the score is product-specific;
// Category carries the product's own band label so the two are never
// compared across products.
type Assessment struct {
	Score    int      `json:"score"`
	Category string   `json:"category"`
	Reasons  []string `json:"reasons"`
}
