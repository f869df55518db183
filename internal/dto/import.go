package dto

// RowError describes one failed spreadsheet row of an import run. Row is the
// 1-based sheet row the failing stride starts at.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportRunResult is the tally of one spreadsheet import run. Row-level
// failures accumulate in Errors instead of aborting the run.
type ImportRunResult struct {
	Sheet           string     `json:"sheet"`
	Year            int        `json:"year"`
	Created         int        `json:"created"`
	Updated         int        `json:"updated"`
	SkippedRows     int        `json:"skippedRows"`
	ClientsCreated  int        `json:"clientsCreated"`
	ClientsNotFound int        `json:"clientsNotFound"`
	Errors          []RowError `json:"errors"`
}

// GenerationResult is the tally of one pending-fee generation run.
type GenerationResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
