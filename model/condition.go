package model

import (
	"fmt"
	"reflect"
	"strings"
)

// CE the condition element
type CE struct {
	Key   string
	Value any
	C     Condition
}

// C the conditions, a record matches when it matches every element.
type C []CE

// String print the condition as string
func (c C) String() (result string) {
	for _, v := range c {
		result += fmt.Sprintf("[%s %v %v]", v.Key, v.C, v.Value)
	}
	return
}

// Condition the comparison of a condition element.
type Condition uint8

// Condition
const (
	// Eq =
	Eq Condition = iota
	// Ne !=
	Ne
	// Lt <
	Lt
	// Lte <=
	Lte
	// Gt >
	Gt
	// Gte >=
	Gte
	// In [a,b,c]
	In
	// Nin Not in [a,b,c]
	Nin
)

var conditionNames = [...]string{"=", "!=", "<", "<=", ">", ">=", "in", "nin"}

func (c Condition) String() string {
	if int(c) < len(conditionNames) {
		return conditionNames[c]
	}
	return fmt.Sprintf("Condition(%d)", c)
}

// match checks if a record matches all conditions.
func (c C) match(r Record) bool {
	for _, cond := range c {
		if !cond.match(r) {
			return false
		}
	}
	return true
}

func (ce CE) match(r Record) bool {
	value, ok := r[ce.Key]
	if !ok {
		return ce.C == Ne || ce.C == Nin
	}
	switch ce.C {
	case Eq:
		return valueEqual(value, ce.Value)
	case Ne:
		return !valueEqual(value, ce.Value)
	case Gt:
		cmp, ok := compareValues(value, ce.Value)
		return ok && cmp > 0
	case Gte:
		cmp, ok := compareValues(value, ce.Value)
		return ok && cmp >= 0
	case Lt:
		cmp, ok := compareValues(value, ce.Value)
		return ok && cmp < 0
	case Lte:
		cmp, ok := compareValues(value, ce.Value)
		return ok && cmp <= 0
	case In:
		return containsValue(value, ce.Value)
	case Nin:
		return !containsValue(value, ce.Value)
	default:
		return false
	}
}

// compareValues orders two values of the same kind, numbers of different Go
// types are compared by value.
func compareValues(a, b any) (int, bool) {
	if s1, ok := a.(string); ok {
		s2, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(s1, s2), true
	}
	f1, ok1 := toFloat(a)
	f2, ok2 := toFloat(b)
	if !ok1 || !ok2 {
		return 0, false
	}
	switch {
	case f1 > f2:
		return 1, true
	case f1 < f2:
		return -1, true
	default:
		return 0, true
	}
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// containsValue checks if value is in the slice
func containsValue(value any, slice any) bool {
	sliceValue := reflect.ValueOf(slice)
	if sliceValue.Kind() != reflect.Slice && sliceValue.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < sliceValue.Len(); i++ {
		if valueEqual(value, sliceValue.Index(i).Interface()) {
			return true
		}
	}
	return false
}
