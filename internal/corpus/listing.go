package corpus

// JobListing is one row of the matching corpus. Skills is the comma-joined
// wire form ("go, postgresql, docker"); SimilarityScore is derived per
// ranking call and never persisted.
type JobListing struct {
	ID          string
	Title       string
	Company     string
	Location    string
	Description string
	Skills      string

	EmploymentType string
	ApplyLink      string
	Logo           string
	Providers      string

	SimilarityScore float64
}
