package output

// JSON payload shapes shared by commands that support --format json.

// CheckFileResult is one file's validation outcome.
type CheckFileResult struct {
	Path  string `json:"path"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// CheckSummary totals a validation run.
type CheckSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// CheckOutput is the payload for the check command.
type CheckOutput struct {
	Files   []CheckFileResult `json:"files"`
	Summary CheckSummary      `json:"summary"`
}

// TokenInfo is one token row emitted by the tokens command.
type TokenInfo struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// TokensOutput is the payload for the tokens command.
type TokensOutput struct {
	Tokens []TokenInfo `json:"tokens"`
	Count  int         `json:"count"`
}
