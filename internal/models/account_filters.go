package models

// AccountFilters narrows account list queries. HIDDEN accounts are excluded
// unless IncludeHidden is set, which removes the status filter entirely
// rather than inverting it.
type AccountFilters struct {
	IncludeHidden bool
	OnlyActive    bool
	AccountType   string
	Source        string
}

// SummaryFilters returns the filter set both summary operations share:
// active accounts only, hidden accounts excluded.
func SummaryFilters() AccountFilters {
	return AccountFilters{OnlyActive: true}
}
