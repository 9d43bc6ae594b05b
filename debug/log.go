package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sqlgrid/jsonval/encode"
	"github.com/sqlgrid/jsonval/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
