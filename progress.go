package handbook

// Progress records the blocks a reader has visited, in visiting order.
// The zero value is an empty progress.
type Progress struct {
	ids  []string
	seen map[string]bool
}

// NewProgress returns progress containing ids, dropping duplicates and
// empty IDs.
func NewProgress(ids []string) *Progress {
	p := &Progress{}
	for _, id := range ids {
		p.Mark(id)
	}
	return p
}

// Mark records id as read. It reports whether id was new.
func (p *Progress) Mark(id string) bool {
	if id == "" || p.Contains(id) {
		return false
	}
	if p.seen == nil {
		p.seen = make(map[string]bool)
	}
	p.seen[id] = true
	p.ids = append(p.ids, id)
	return true
}

// Contains reports whether id has been read.
func (p *Progress) Contains(id string) bool {
	return p.seen[id]
}

// IDs returns the read IDs in visiting order.
func (p *Progress) IDs() []string {
	ids := make([]string, len(p.ids))
	copy(ids, p.ids)
	return ids
}

// Len returns the number of read blocks.
func (p *Progress) Len() int {
	return len(p.ids)
}

// Completion returns how many of the index's records have been read along
// with the number of records. IDs that are not in the index do not count.
func (p *Progress) Completion(idx *Index) (read, total int) {
	for _, r := range idx.Records() {
		if p.Contains(r.ID) {
			read++
		}
	}
	return read, idx.Len()
}
