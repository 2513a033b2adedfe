package dropdown

import (
	"fmt"
	"reflect"
	"strings"
)

// Labeler is implemented by items that know their own display label.
type Labeler interface {
	Label() string
}

// Valuer is implemented by items that know their own identity value.
type Valuer interface {
	Value() any
}

// Extractor maps arbitrary items to a label and an identity value.
//
// Fields take precedence over the defaults, functions take precedence over
// fields. Strings, numbers and booleans are always their own label and value.
type Extractor[T any] struct {
	LabelField string
	LabelFunc  func(T) string
	ValueField string
	ValueFunc  func(T) any
}

// Label returns the display label of item.
func (e Extractor[T]) Label(item T) string {
	v := indirect(reflect.ValueOf(item))
	if !v.IsValid() {
		return ""
	}
	if isScalar(v.Kind()) {
		return fmt.Sprint(v.Interface())
	}
	if e.LabelFunc != nil {
		return e.LabelFunc(item)
	}
	if e.LabelField != "" {
		f, ok := lookupField(v, e.LabelField)
		if !ok || isNil(f) {
			return ""
		}
		return fmt.Sprint(f.Interface())
	}

	if l, ok := any(item).(Labeler); ok {
		return l.Label()
	}
	if f, ok := lookupField(v, "label"); ok && !isNil(f) && !f.IsZero() {
		return fmt.Sprint(f.Interface())
	}
	if s, ok := any(item).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v.Interface())
}

// Value returns the identity value of item.
func (e Extractor[T]) Value(item T) any {
	v := indirect(reflect.ValueOf(item))
	if !v.IsValid() {
		return nil
	}
	if isScalar(v.Kind()) {
		return v.Interface()
	}
	if e.ValueFunc != nil {
		return e.ValueFunc(item)
	}
	if e.ValueField != "" {
		f, ok := lookupField(v, e.ValueField)
		if !ok || isNil(f) {
			return nil
		}
		return f.Interface()
	}

	if vv, ok := any(item).(Valuer); ok {
		return vv.Value()
	}
	if f, ok := lookupField(v, "value"); ok && !isNil(f) {
		return f.Interface()
	}
	return any(item)
}

// Equal reports whether a and b identify the same selection member.
func (e Extractor[T]) Equal(a, b T) bool {
	return equalValues(e.Value(a), e.Value(b))
}

func equalValues(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	// Comparable types can still hold uncomparable dynamic values.
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}

// lookupField resolves name on a struct (exact name, case-insensitive name,
// then json/yaml tag) or on a map with string keys.
func lookupField(v reflect.Value, name string) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
			// Promoted through a nil embedded pointer counts as missing.
			fv, err := v.FieldByIndexErr(sf.Index)
			if err != nil {
				return reflect.Value{}, false
			}
			return fv, true
		}
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			if strings.EqualFold(sf.Name, name) || tagName(sf, "json") == name || tagName(sf, "yaml") == name {
				return v.Field(i), true
			}
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		mv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return reflect.Value{}, false
		}
		if mv.Kind() == reflect.Interface && !mv.IsNil() {
			mv = mv.Elem()
		}
		return mv, true
	}
	return reflect.Value{}, false
}

func tagName(sf reflect.StructField, key string) string {
	tag := sf.Tag.Get(key)
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return !v.IsValid()
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
