// Package parse parses JSON text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
// Parsing is permissive about comments: "//...", "#..." and "/* ... */"
// are tolerated anywhere whitespace is.  Everything else is strict
// JSON.  A repeated object key keeps only its last value.
//
// # Related Packages
//
//   - github.com/sqlgrid/jsonval/ir - value tree representation
//   - github.com/sqlgrid/jsonval/encode - encode ir to text
//   - github.com/sqlgrid/jsonval/token - tokenization
package parse
