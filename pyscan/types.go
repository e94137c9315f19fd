package pyscan

// CallRecord is a top-level rule call such as `python_test(name = "x")`.
type CallRecord struct {
	Kind string `json:"id"` // called identifier
	Name string `json:"name"`
	Line int    `json:"line"`
}

// TestFunction is a test method declared in a TestCase class.
type TestFunction struct {
	ID   string `json:"id"`
	Line int    `json:"line"`
}
