package export

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Field is a labelled summary value printed below the table.
type Field struct {
	Label string
	Value string
}

// Document is a titled report consisting of a table, summary fields and free-text notes.
type Document struct {
	Title   string
	Table   Dataset
	Summary []Field
	Notes   []string
}
