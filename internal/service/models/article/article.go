package article

// Article is static editorial content shown in the tips section. Articles
// are read-only and never persisted remotely.
type Article struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Body    string   `json:"body"`
	Tags    []string `json:"tags"`
}

// Seed returns the built-in editorial content.
func Seed() []Article {
	return []Article{
		{
			ID:      "keeping-burgers-warm",
			Title:   "Keeping your burger warm on the way home",
			Excerpt: "Small tricks that make a big difference between our kitchen and your table.",
			Body: "Leave the bag closed until everyone is at the table, and keep it away " +
				"from the car air conditioning vent. If you ordered fries, open their box " +
				"first so the steam does not soften the bun.",
			Tags: []string{"delivery", "burgers"},
		},
		{
			ID:      "pix-payment-guide",
			Title:   "Paying with PIX in three steps",
			Excerpt: "Scan, confirm, done. No change, no waiting at the door.",
			Body: "Choose PIX at checkout, scan the QR code we show on the confirmation " +
				"screen and confirm the transfer with the payer name you typed. The driver " +
				"is notified as soon as the payment clears.",
			Tags: []string{"payment", "pix"},
		},
		{
			ID:      "storing-leftovers",
			Title:   "Storing leftovers the right way",
			Excerpt: "Yes, the combo was big. Here is how to enjoy the rest tomorrow.",
			Body: "Separate the bun from the patty before refrigerating and reheat them " +
				"apart: the patty in a hot pan for two minutes per side, the bun for " +
				"thirty seconds. Never microwave fries.",
			Tags: []string{"food", "tips"},
		},
	}
}
