package joblinks

import (
	"reflect"
	"testing"
)

func TestParse_KeepsFirstTwo(t *testing.T) {
	raw := `[{"jobProvider":"LinkedIn","url":"https://l/1"},{"jobProvider":"Indeed","url":"https://i/2"},{"jobProvider":"Glassdoor","url":"https://g/3"}]`
	got := Parse(raw, nil)
	want := []JobLink{
		{JobProvider: "LinkedIn", URL: "https://l/1"},
		{JobProvider: "Indeed", URL: "https://i/2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected links: %+v", got)
	}
}

func TestParse_SkipsEmptyURLs(t *testing.T) {
	raw := `[{"jobProvider":"LinkedIn","url":""},{"jobProvider":"Indeed","url":"https://i/2"}]`
	got := Parse(raw, nil)
	if len(got) != 1 || got[0].JobProvider != "Indeed" {
		t.Fatalf("unexpected links: %+v", got)
	}
}

func TestParse_MalformedField(t *testing.T) {
	if got := Parse(`{"not":"a list"}`, nil); got != nil {
		t.Fatalf("expected nil for malformed field, got %+v", got)
	}
	if got := Parse("", nil); got != nil {
		t.Fatalf("expected nil for empty field, got %+v", got)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	links := []JobLink{{JobProvider: "LinkedIn", URL: "https://l/1"}}
	got := Parse(Encode(links), nil)
	if !reflect.DeepEqual(got, links) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
