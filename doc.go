// Package jsonval implements the JSON value type of a SQL query
// engine.
//
// A Document wraps an immutable parsed value tree together with the
// verbatim input text when one exists.  Duplicate object keys keep
// only their last value; the verbatim text is retained precisely
// because that collapse is lossy.
//
//	doc, err := jsonval.Parse(`{"f2":{"f3":1},"f4":{"f5":99,"f6":{"f7":"2"}}}`)
//	if err != nil {
//	    return err
//	}
//	sub, err := doc.Resolve([]string{"f4", "f6"})  // {"f7":"2"}
//
// Documents are immutable: navigation, patching and queries all yield
// new Documents, and concurrent reads need no synchronization.
//
// # Related Packages
//
//   - github.com/sqlgrid/jsonval/ir - value tree representation
//   - github.com/sqlgrid/jsonval/parse - JSON text to ir
//   - github.com/sqlgrid/jsonval/encode - ir to JSON text
//   - github.com/sqlgrid/jsonval/sqlerr - coded errors
//   - github.com/sqlgrid/jsonval/stats - table statistics collaborator
package jsonval
