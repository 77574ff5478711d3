package model

// Record is an open-ended mapping from field name to value.
type Record map[string]any

// Clone returns a deep copy of the record. Nested maps and slices are copied,
// other values are copied by assignment.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Record:
		return val.Clone()
	case map[string]any:
		return map[string]any(Record(val).Clone())
	case []Record:
		if val == nil {
			return val
		}
		c := make([]Record, len(val))
		for i, r := range val {
			c[i] = r.Clone()
		}
		return c
	case []map[string]any:
		if val == nil {
			return val
		}
		c := make([]map[string]any, len(val))
		for i, m := range val {
			c[i] = Record(m).Clone()
		}
		return c
	case []any:
		if val == nil {
			return val
		}
		c := make([]any, len(val))
		for i, e := range val {
			c[i] = cloneValue(e)
		}
		return c
	case []string:
		return append([]string(nil), val...)
	case []int:
		return append([]int(nil), val...)
	case []int64:
		return append([]int64(nil), val...)
	case []float64:
		return append([]float64(nil), val...)
	case []byte:
		return append([]byte(nil), val...)
	default:
		return v
	}
}

// merge copies every field of patch into r except skip.
func (r Record) merge(patch Record, skip string) {
	for k, v := range patch {
		if k == skip {
			continue
		}
		r[k] = cloneValue(v)
	}
}

func cloneAll(records []Record) []Record {
	result := make([]Record, len(records))
	for i, r := range records {
		result[i] = r.Clone()
	}
	return result
}
