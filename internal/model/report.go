package model

// Expansion holds the outcome of expanding one named type.
type Expansion struct {
	Name       string
	Expression string
	Result     string
	Err        error // error expanding this expression, not fatal for a batch
}

// Failed reports whether the expansion produced an error.
func (e Expansion) Failed() bool {
	return e.Err != nil
}
