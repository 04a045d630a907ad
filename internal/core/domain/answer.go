package domain

// Answer is the terminal result of one question-answering call.
// The answering path never fails: a no-match, degraded or error outcome
// is still a well-formed Answer.
type Answer struct {
	// Title is the display heading for the answer.
	Title string `json:"title"`

	// Markdown is the rendered answer body.
	Markdown string `json:"answer"`

	// Sources are the citations ("<name> · pág. <page>") behind the
	// answer, in rank order.
	Sources []string `json:"sources"`

	// Authoritative is false for empty-question, no-match, degraded and
	// internal-error outcomes.
	Authoritative bool `json:"authoritative"`
}

// Facts holds candidate values mined from assembled context by fixed
// pattern rules. Any field may be empty; absence means "not found",
// never falsity.
type Facts struct {
	// Dates are dd/mm/yyyy matches in order of first appearance.
	Dates []string

	// Times are HH:MM strings in order of first appearance.
	Times []string

	// Platform is the first known procurement platform mentioned.
	Platform string

	// Links are http(s) URLs, capped to the first three found.
	Links []string

	// Validity is the proposal validity period, e.g. "60 dias".
	Validity string

	// Deadline is the execution/delivery deadline, e.g. "30 dias".
	Deadline string

	// Habilitacao are qualification document lines, capped to 20.
	Habilitacao []string
}

// Empty reports whether no fact field was found at all.
func (f Facts) Empty() bool {
	return len(f.Dates) == 0 && len(f.Times) == 0 && f.Platform == "" &&
		len(f.Links) == 0 && f.Validity == "" && f.Deadline == "" &&
		len(f.Habilitacao) == 0
}
