package handbook

// PreviewLength is the number of characters of content shown in a result.
const PreviewLength = 100

// TruncationMarker is appended to previews of content longer than
// PreviewLength.
const TruncationMarker = "..."

// Result is a search match prepared for display.
type Result struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Preview string `json:"preview"`
}

// NewResult returns the display form of a record.
func NewResult(r Record) Result {
	return Result{
		ID:      r.ID,
		Title:   r.Title,
		Preview: Preview(r.Content),
	}
}

// Preview returns the first PreviewLength characters of content, followed
// by TruncationMarker when content is longer.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= PreviewLength {
		return content
	}
	return string(runes[:PreviewLength]) + TruncationMarker
}
