package model

// PartsImported is published by the ingestion side once a batch is stored.
type PartsImported struct {
	ImportID    string `json:"import_id"`
	Source      string `json:"source"`
	RecordCount int    `json:"record_count"`
}

type ImportResult struct {
	ImportID string
	Read     int
	Created  int
	Skipped  int
}
