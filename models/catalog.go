package models

// CatalogProduct is one entry of the static product catalog file the
// category screens browse. Approved donations get synced in with their
// donation ID so the sync stays idempotent.
type CatalogProduct struct {
	DonationID  string `json:"donationId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
