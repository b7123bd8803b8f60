package importer

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// JSON lays out an array of objects. The keys of the first object, in
// document order, become the header row; each record fills the next row.
// Keys missing from a record and null values leave the cell empty. Numbers
// keep their literal text; nested objects and arrays keep their raw JSON.
func JSON(data []byte, limit int) (*Result, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidImport)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of records, got %s", ErrInvalidImport, root.Type)
	}

	records := root.Array()
	b := newBuilder(FormatJSON, limit)
	if len(records) == 0 {
		return b.result(), nil
	}
	if !records[0].IsObject() {
		return nil, fmt.Errorf("%w: first record is %s, want object", ErrInvalidImport, records[0].Type)
	}

	var keys []string
	records[0].ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	b.header(keys)

	for i, rec := range records {
		if b.full(i) {
			break
		}
		if !rec.IsObject() {
			continue
		}
		values := make(map[string]gjson.Result, len(keys))
		rec.ForEach(func(k, v gjson.Result) bool {
			values[k.String()] = v
			return true
		})
		for col, key := range keys {
			if v, ok := values[key]; ok {
				b.set(col+1, i+2, jsonText(v))
			}
		}
	}
	return b.result(), nil
}

func jsonText(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.JSON:
		return v.Raw
	default:
		return ""
	}
}
