package index

// Posting is one document's normalized term frequency for a term.
type Posting struct {
	DocID  int     `json:"doc_id"`
	Weight float64 `json:"weight"`
}

type PostingList []Posting

type TermEntry struct {
	Term     string
	Postings PostingList
}
