package parser

import (
	"net/url"
	"reflect"
	"testing"
)

func TestSplitColorTokens(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want []string
	}{
		{"commas", "#fff000, #111827,#ffffff", []string{"#fff000", "#111827", "#ffffff"}},
		{"newlines and blanks", "#ff6f61\n\n  #111827 \r\n,,", []string{"#ff6f61", "#111827"}},
		{"rgb keeps its commas", "rgb(1, 2, 3), #111827", []string{"rgb(1, 2, 3)", "#111827"}},
		{"empty", "  \n , ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitColorTokens(tt.blob)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitColorTokens(%q) = %q, want %q", tt.blob, got, tt.want)
			}
		})
	}
}

func TestParseBulkCollectsFailures(t *testing.T) {
	parsed := ParseBulk("#zzz, #111827")

	if len(parsed.Colors) != 1 || parsed.Colors[0].Hex() != "#111827" {
		t.Fatalf("expected only #111827, got %v", parsed.Colors)
	}
	if got := parsed.FailedTokens(); !reflect.DeepEqual(got, []string{"#zzz"}) {
		t.Errorf("FailedTokens() = %q, want [#zzz]", got)
	}
}

func TestParseBulkKeepsOrderAndDuplicates(t *testing.T) {
	parsed := ParseBulk("#FFFFFF\nrgb(17, 24, 39)\n#ffffff")

	var got []string
	for _, c := range parsed.Colors {
		got = append(got, c.Hex())
	}
	want := []string{"#ffffff", "#111827", "#ffffff"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("colors = %q, want %q", got, want)
	}
}

func TestParseBulkLegacyStudioCode(t *testing.T) {
	names := `[{"hex":"#FF6F61","name":"Coral"},{"hex":"#111827","name":"Ink"},{"hex":"","name":"Empty"}]`
	code := "studiocode?colorNames=" + url.QueryEscape(names)

	parsed := ParseBulk(code)

	if len(parsed.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", parsed.FailedTokens())
	}
	if len(parsed.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(parsed.Colors))
	}
	if parsed.Names["#ff6f61"] != "Coral" || parsed.Names["#111827"] != "Ink" {
		t.Errorf("names not carried over: %v", parsed.Names)
	}
}

func TestParseBulkDoubleEncodedStudioCode(t *testing.T) {
	names := `[{"hex":"#6FA8FF","name":"Sky"}]`
	code := "studiocode?colorNames=" + url.QueryEscape(url.QueryEscape(names))

	parsed := ParseBulk(code)
	if len(parsed.Colors) != 1 || parsed.Colors[0].Hex() != "#6fa8ff" {
		t.Fatalf("expected #6fa8ff, got %v (failures %v)", parsed.Colors, parsed.FailedTokens())
	}
}

func TestParseBulkPayloadStudioCode(t *testing.T) {
	payload := `{"colorNames":["Color 1","Color 2"],"colors":["#ffffff","#111827"]}`
	code := StudioCodePrefix + url.QueryEscape(payload)

	parsed := ParseBulk(code)
	if len(parsed.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %v", parsed.Colors)
	}
	if parsed.Names["#111827"] != "Color 2" {
		t.Errorf("expected name Color 2, got %q", parsed.Names["#111827"])
	}
}

func TestParseBulkMalformedStudioCodeFallsBack(t *testing.T) {
	parsed := ParseBulk("studiocode?colorNames=%5Bnot-json")

	if len(parsed.Colors) != 0 {
		t.Errorf("expected no colors, got %v", parsed.Colors)
	}
	if len(parsed.Failures) != 1 {
		t.Errorf("expected the whole code to be reported once, got %v", parsed.FailedTokens())
	}
}

func TestIsStudioCode(t *testing.T) {
	if !IsStudioCode("  studiocode?abc") {
		t.Error("prefix should be detected")
	}
	if !IsStudioCode("https://example.com/?colorNames=%5B%5D") {
		t.Error("colorNames parameter should be detected")
	}
	if IsStudioCode("#ffffff, #000000") {
		t.Error("plain colors are not a studio code")
	}
}
