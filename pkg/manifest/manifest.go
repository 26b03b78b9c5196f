package manifest

// SummaryManifest represents the structure of the run summary YAML file.
// It gives a quick overview of a batch without opening the ledger.
type SummaryManifest struct {
	GeneratedAt       string        `yaml:"generated_at"`
	RunID             int64         `yaml:"run_id,omitempty"`
	FilesFound        int           `yaml:"files_found"`
	Successful        int           `yaml:"successful"`
	Partial           int           `yaml:"partial"`
	Failed            int           `yaml:"failed"`
	AggregateKeywords []string      `yaml:"aggregate_keywords,omitempty"`
	Results           []FileSummary `yaml:"results"`
}

// FileSummary represents summary information for a single input file.
type FileSummary struct {
	File          string   `yaml:"file"`
	Status        string   `yaml:"status"` // success, partial or failed
	ErrorType     string   `yaml:"error_type,omitempty"`
	ErrorMessage  string   `yaml:"error_message,omitempty"`
	Tokens        int      `yaml:"tokens,omitempty"`
	DistinctWords int      `yaml:"distinct_words,omitempty"`
	Language      string   `yaml:"language,omitempty"`
	FailedBuckets []string `yaml:"failed_buckets,omitempty"`
	TopKeywords   []string `yaml:"top_keywords,omitempty"`
}
