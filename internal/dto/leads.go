package dto

// LeadListFilter contains query parameters for the admin lead listing.
type LeadListFilter struct {
	Q       string
	City    string
	Type    string
	Status  string
	Page    int
	PerPage int
}
