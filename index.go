package handbook

import "strings"

// Record is the indexed representation of a content block.
type Record struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Searcher answers free-text queries against indexed content.
type Searcher interface {
	// Query returns the results matching q in index order.
	// An empty or whitespace-only query returns no results.
	Query(q string) []Result
}

var _ Searcher = (*Index)(nil)

// Index holds the records built from a page's content blocks.
// It is built once and never mutated; if the page changes after indexing
// the index is stale.
type Index struct {
	records []Record

	// Lowercased title and content, parallel to records.
	titles   []string
	contents []string
}

// NewIndex builds an index from blocks in the given order.
// Blocks with an empty heading or an empty body are skipped.
func NewIndex(blocks []Block) *Index {
	idx := &Index{}
	for _, b := range blocks {
		title := strings.TrimSpace(b.Heading)
		content := strings.TrimSpace(b.Body)
		if title == "" || content == "" {
			continue
		}

		idx.records = append(idx.records, Record{
			ID:      b.ID,
			Title:   title,
			Content: content,
		})
		idx.titles = append(idx.titles, strings.ToLower(title))
		idx.contents = append(idx.contents, strings.ToLower(content))
	}
	return idx
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.records)
}

// Records returns a copy of the indexed records in index order.
func (idx *Index) Records() []Record {
	if idx == nil || len(idx.records) == 0 {
		return nil
	}
	records := make([]Record, len(idx.records))
	copy(records, idx.records)
	return records
}

// Record returns the record with the given ID.
func (idx *Index) Record(id string) (Record, bool) {
	if idx == nil {
		return Record{}, false
	}
	for _, r := range idx.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Query returns every record whose title or content contains q as a
// case-insensitive substring, in index order. An empty or whitespace-only
// query returns no results. Querying a nil index returns no results.
func (idx *Index) Query(q string) []Result {
	if idx == nil || strings.TrimSpace(q) == "" {
		return nil
	}

	needle := strings.ToLower(q)

	var results []Result
	for i, r := range idx.records {
		if strings.Contains(idx.titles[i], needle) || strings.Contains(idx.contents[i], needle) {
			results = append(results, NewResult(r))
		}
	}
	return results
}
