package domain

// BookDetails describes a book as it appears in the external catalog.
// BookID is the catalog volume ID and identifies the book within a library.
type BookDetails struct {
	BookID        string   `json:"book_id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	Description   string   `json:"description,omitempty"`
	Image         string   `json:"image,omitempty"`
	InfoLink      string   `json:"info_link,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	AverageRating float64  `json:"average_rating,omitempty"`
	RatingsCount  int      `json:"ratings_count,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
}
