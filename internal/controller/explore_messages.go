package controller

// expandedMsg carries the outcome of one expansion back to the explorer.
type expandedMsg struct {
	expression string
	result     string
	err        error
}
