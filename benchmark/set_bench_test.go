package jsearch_test

import (
	"testing"

	"github.com/Jeffail/gabs/v2"
	"github.com/dhawalhost/jsearch"
	"github.com/tidwall/sjson"
)

//------------------------------------------------------------------------------
// SET (replace an existing nested value)
//------------------------------------------------------------------------------

func BenchmarkSet_NestedKey_JSEARCH(b *testing.B) {
	doc := jsearch.MustParseDocument(string(mediumJSON))
	path := jsearch.NewResolvedPath(jsearch.KeyStep("address"), jsearch.KeyStep("city"))
	replacement := jsearch.MustParseDocument(`"Oakland"`)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := jsearch.Set(doc, path, replacement); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSet_NestedKey_SJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sjson.SetBytes(mediumJSON, "address.city", "Oakland"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSet_NestedKey_GABS(b *testing.B) {
	doc, err := gabs.ParseJSON(mediumJSON)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := doc.SetP("Oakland", "address.city"); err != nil {
			b.Fatal(err)
		}
	}
}

//------------------------------------------------------------------------------
// DELETE (includes per-iteration parse for tree engines, since deletion is
// not repeatable on the same tree)
//------------------------------------------------------------------------------

func BenchmarkDelete_ArrayElement_JSEARCH(b *testing.B) {
	path := jsearch.NewResolvedPath(jsearch.KeyStep("scores"), jsearch.IndexStep(2))
	for i := 0; i < b.N; i++ {
		doc := jsearch.MustParseDocument(string(mediumJSON))
		if err := jsearch.Delete(doc, path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDelete_ArrayElement_SJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sjson.DeleteBytes(mediumJSON, "scores.2"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDelete_ObjectKey_JSEARCH(b *testing.B) {
	path := jsearch.NewResolvedPath(jsearch.KeyStep("address"), jsearch.KeyStep("zip"))
	for i := 0; i < b.N; i++ {
		doc := jsearch.MustParseDocument(string(mediumJSON))
		if err := jsearch.Delete(doc, path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDelete_ObjectKey_GABS(b *testing.B) {
	for i := 0; i < b.N; i++ {
		doc, err := gabs.ParseJSON(mediumJSON)
		if err != nil {
			b.Fatal(err)
		}
		if err := doc.DeleteP("address.zip"); err != nil {
			b.Fatal(err)
		}
	}
}
