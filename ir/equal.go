package ir

// Equal reports structural equality of two trees.  Scalars compare by
// value within the same number representation, arrays element-wise in
// order, objects by key set with order ignored.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return numbersEqual(a, b)
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, field := range a.Fields {
			bv, ok := Get(b, field)
			if !ok {
				return false
			}
			if !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	}
	return false
}

func numbersEqual(a, b *Node) bool {
	if (a.Int64 == nil) != (b.Int64 == nil) {
		return false
	}
	if (a.Float64 == nil) != (b.Float64 == nil) {
		return false
	}
	if a.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	if a.Float64 != nil {
		return *a.Float64 == *b.Float64
	}
	return a.Number == b.Number
}
