package shape

import (
	"encoding"
	"encoding/json"
	"reflect"
	"strings"
)

// Record is the field listing of one record-like value.
type Record struct {
	Type   string
	Fields []Field
}

// Field is a single named field. Record is set when the field holds a nested
// record, Items when it holds a sequence of records. Items[i] always
// describes element i; nil elements and elements closing a cycle are the
// zero Record.
type Field struct {
	Name  string
	Key   string
	Type  string
	Value any

	Record *Record
	Items  []Record
}

// Lookup returns the field with the given Go name or JSON key.
func (r Record) Lookup(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name || f.Key == name {
			return f, true
		}
	}
	return Field{}, false
}

// Describe lists the fields of a record-like value, descending into nested
// records and sequences of records.
func Describe(v any) (Record, error) {
	rv := reflect.ValueOf(v)
	if err := check(rv); err != nil {
		return Record{}, err
	}
	d := describer{onPath: map[uintptr]bool{}}
	return d.record(rv), nil
}

var (
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

type describer struct {
	onPath map[uintptr]bool
}

func (d *describer) record(rv reflect.Value) Record {
	if rv.Type().Implements(introspectorType) {
		in := rv.Interface().(Introspector)
		return Record{Type: rv.Type().String(), Fields: in.Fields()}
	}

	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	t := rv.Type()
	rec := Record{Type: t.String()}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key, skip := jsonKey(sf)
		if skip {
			continue
		}
		rec.Fields = append(rec.Fields, d.field(sf, key, rv.Field(i)))
	}
	return rec
}

func (d *describer) field(sf reflect.StructField, key string, fv reflect.Value) Field {
	f := Field{
		Name:  sf.Name,
		Key:   key,
		Type:  sf.Type.String(),
		Value: fv.Interface(),
	}

	if nested, ok := d.nested(fv); ok {
		f.Record = &nested
		return f
	}

	switch fv.Kind() {
	case reflect.Slice, reflect.Array:
		if !isRecordType(sf.Type.Elem()) {
			return f
		}
		items := make([]Record, fv.Len())
		for i := range items {
			items[i], _ = d.nested(fv.Index(i))
		}
		f.Items = items
	}
	return f
}

// nested describes fv when it holds a record, stopping at pointer cycles.
func (d *describer) nested(fv reflect.Value) (Record, bool) {
	if fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return Record{}, false
		}
		fv = fv.Elem()
	}
	if !isRecordType(fv.Type()) {
		return Record{}, false
	}
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() || d.onPath[fv.Pointer()] {
			return Record{}, false
		}
		d.onPath[fv.Pointer()] = true
		defer delete(d.onPath, fv.Pointer())
	}
	return d.record(fv), true
}

// isRecordType treats structs as records unless they marshal themselves,
// which keeps time.Time and decimal values as scalars.
func isRecordType(t reflect.Type) bool {
	if t.Implements(introspectorType) {
		return true
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	ptr := reflect.PointerTo(t)
	for _, m := range []reflect.Type{jsonMarshalerType, textMarshalerType} {
		if t.Implements(m) || ptr.Implements(m) {
			return false
		}
	}
	return true
}

func jsonKey(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	name := strings.SplitN(tag, ",", 2)[0]
	if name == "" {
		return sf.Name, false
	}
	return name, false
}
