// Package ingestion defines the record format of corpus files loaded into the
// search engine in bulk.
package ingestion

// Record is one document as written in a corpus file.
type Record struct {
	ID      int    `yaml:"id" json:"id"`
	Text    string `yaml:"text" json:"text"`
	Status  string `yaml:"status" json:"status"`
	Ratings []int  `yaml:"ratings" json:"ratings"`
}

// Corpus is the top-level shape of a corpus file.
type Corpus struct {
	StopWords []string `yaml:"stopWords" json:"stopWords"`
	Documents []Record `yaml:"documents" json:"documents"`
}
