package postgres

import (
	"reflect"
	"sync"
)

// ExtractDBColumns collects column names from a struct's "db" tags,
// descending into embedded structs. Called once at repo construction.
func ExtractDBColumns[T any]() []string {
	var zero T
	return columnsOf(reflect.TypeOf(zero))
}

func columnsOf(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			cols = append(cols, columnsOf(field.Type)...)
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, tag)
	}
	return cols
}

type fieldInfo struct {
	index int
	dbTag string
}

type typeMetadata struct {
	fields          []fieldInfo
	embeddedIndices []int
}

// typeCache memoizes per-type reflection so StructToMap stays cheap on
// the hot path.
var typeCache sync.Map // map[reflect.Type]*typeMetadata

func metadataFor(t reflect.Type) *typeMetadata {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := typeCache.Load(t); ok {
		return cached.(*typeMetadata)
	}

	meta := &typeMetadata{}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.Anonymous {
				meta.embeddedIndices = append(meta.embeddedIndices, i)
				continue
			}
			tag := field.Tag.Get("db")
			if tag == "" || tag == "-" {
				continue
			}
			meta.fields = append(meta.fields, fieldInfo{index: i, dbTag: tag})
		}
	}

	typeCache.Store(t, meta)
	return meta
}

// StructToMap converts a struct to a column map using "db" tags,
// including fields of embedded structs.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	meta := metadataFor(rv.Type())
	res := make(map[string]any, len(meta.fields))

	for _, fi := range meta.fields {
		res[fi.dbTag] = rv.Field(fi.index).Interface()
	}
	for _, idx := range meta.embeddedIndices {
		for k, v := range StructToMap(rv.Field(idx).Interface()) {
			res[k] = v
		}
	}

	return res
}
