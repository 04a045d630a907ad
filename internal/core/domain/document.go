package domain

// Document represents one indexed edital (tender notice) PDF.
// Identity is positional: callers refer to a document by its insertion
// index within the Index document sequence. There is no per-document
// delete, only a whole-index clear, so positions stay stable until the
// index is cleared.
type Document struct {
	// Name is the display identifier, normally the source file name.
	Name string `json:"name"`

	// PageCount is the number of pages the extractor produced (>= 1).
	PageCount int `json:"pageCount"`
}

// Chunk is a bounded-size, paragraph-aligned slice of one page's
// extracted text. It is the unit of retrieval and is never re-split
// after creation.
type Chunk struct {
	// DocumentIndex is the position of the owning document within the
	// Index document sequence.
	DocumentIndex int `json:"documentIndex"`

	// Page is the 1-based source page the text was extracted from.
	Page int `json:"page"`

	// Text is the normalised chunk text.
	Text string `json:"text"`
}

// Index is the aggregate persisted as the durable record. The in-memory
// value is only a cache: it is rebuilt from the durable record at the
// start of every listing, ingestion or search operation, so unsaved
// in-memory state is discarded by the reload.
type Index struct {
	Documents []Document `json:"documents"`
	Chunks    []Chunk    `json:"chunks"`
}

// DocumentSummary is one row of a document listing.
type DocumentSummary struct {
	Name       string `json:"name"`
	ChunkCount int    `json:"chunkCount"`
}

// IngestResult summarises one successful ingestion.
type IngestResult struct {
	Name       string `json:"name"`
	ChunkCount int    `json:"chunkCount"`
	PageCount  int    `json:"pageCount"`
}
