package driven

import "context"

// IDList is the result of an identifier search: the identifiers to fetch
// plus the database's total match count, which may be larger than the
// number of identifiers returned.
type IDList struct {
	// IDs are the matched record identifiers, in database order.
	IDs []string

	// Total is the database's reported total match count.
	Total int
}

// LiteratureSearcher provides access to an external literature database.
// Backed by the NCBI Entrez E-utilities for PubMed.
type LiteratureSearcher interface {
	// SearchIDs searches the database by term and returns at most retMax
	// matching identifiers together with the total match count.
	SearchIDs(ctx context.Context, term string, retMax int) (*IDList, error)

	// FetchRecords fetches the raw formatted record text for exactly the
	// given identifiers, concatenated in order.
	FetchRecords(ctx context.Context, ids []string) (string, error)
}
