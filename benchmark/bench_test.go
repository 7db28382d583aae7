// Comparative benchmarks: jsearch against gjson/sjson (byte scanning),
// gabs and fastjson (materialized trees) and oliveagle/jsonpath (JSONPath
// over decoded interface{} trees). Engines differ in what they parse and
// when; benchmarks that mutate re-parse per iteration for every engine so
// the comparison stays fair.
package jsearch_test

import (
	"encoding/json"
	"fmt"
)

var mediumJSON = []byte(`{
  "name": "John Smith",
  "age": 35,
  "address": {
    "street": "123 Main St",
    "city": "San Francisco",
    "state": "CA",
    "zip": "94103"
  },
  "phones": [
    {"type": "home", "number": "555-1234"},
    {"type": "work", "number": "555-5678"}
  ],
  "email": "john@example.com",
  "active": true,
  "scores": [95, 87, 92, 78, 85]
}`)
var mediumJSONParsed interface{}

var largeJSON []byte

func init() {
	json.Unmarshal(mediumJSON, &mediumJSONParsed)

	// Large document with 1000 items for wildcard fan-out benchmarks.
	largeJSON = []byte(`{"items":[`)
	for i := 0; i < 1000; i++ {
		if i > 0 {
			largeJSON = append(largeJSON, ',')
		}
		item := fmt.Sprintf(`{"id":%d,"name":"Item %d","value":%d,"active":%v}`,
			i, i, i*10, i%3 == 0)
		largeJSON = append(largeJSON, []byte(item)...)
	}
	largeJSON = append(largeJSON, []byte(`],"metadata":{"count":1000}}`)...)
}
