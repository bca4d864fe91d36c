package vcf

import (
	"reflect"
	"testing"
)

func TestParseInfo(t *testing.T) {
	info := ParseInfo("DP=112;SOMATIC;CSQ=A|missense_variant")

	want := Info{
		"DP":      "112",
		"SOMATIC": "",
		"CSQ":     "A|missense_variant",
	}
	if !reflect.DeepEqual(info, want) {
		t.Errorf("ParseInfo = %v, want %v", info, want)
	}
}

func TestParseInfoEmpty(t *testing.T) {
	for _, raw := range []string{"", "."} {
		if info := ParseInfo(raw); len(info) != 0 {
			t.Errorf("ParseInfo(%q) = %v, want empty", raw, info)
		}
	}
}

func TestDecodeCSQ(t *testing.T) {
	schema := []string{"Allele", "Consequence", "Feature"}

	entries := DecodeCSQ("A|missense_variant|ENST1,T|synonymous_variant|ENST2", schema)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0]["Allele"] != "A" || entries[0]["Feature"] != "ENST1" {
		t.Errorf("unexpected first entry: %v", entries[0])
	}
	if entries[1]["Consequence"] != "synonymous_variant" {
		t.Errorf("unexpected second entry: %v", entries[1])
	}
}

func TestDecodeCSQRagged(t *testing.T) {
	schema := []string{"Allele", "Consequence", "Feature"}

	entries := DecodeCSQ("A|missense_variant|ENST1|extra,T", schema)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	// Values beyond the schema are dropped.
	if !reflect.DeepEqual(entries[0], Entry{
		"Allele": "A", "Consequence": "missense_variant", "Feature": "ENST1",
	}) {
		t.Errorf("unexpected long entry: %v", entries[0])
	}

	// Missing trailing values map to the empty string.
	if !reflect.DeepEqual(entries[1], Entry{
		"Allele": "T", "Consequence": "", "Feature": "",
	}) {
		t.Errorf("unexpected short entry: %v", entries[1])
	}
}

func TestDecodeCSQEmpty(t *testing.T) {
	if entries := DecodeCSQ("", []string{"Allele"}); entries != nil {
		t.Errorf("Expected nil for empty value, got %v", entries)
	}
	if entries := DecodeCSQ("A|x", nil); entries != nil {
		t.Errorf("Expected nil for empty schema, got %v", entries)
	}
}

func TestEncodeCSQ(t *testing.T) {
	schema := []string{"Allele", "Consequence", "Feature"}
	entries := []Entry{
		{"Allele": "A", "Consequence": "missense_variant", "Feature": "ENST1"},
		{"Allele": "T", "Consequence": "", "Feature": ""},
	}

	got := EncodeCSQ(entries, schema)
	want := "A|missense_variant|ENST1,T||"
	if got != want {
		t.Errorf("EncodeCSQ = %q, want %q", got, want)
	}
}

func TestEncodeInfo(t *testing.T) {
	info := Info{"SOMATIC": "", "DP": "112"}
	schema := []string{"Allele", "Consequence"}
	entries := []Entry{{"Allele": "A", "Consequence": "missense_variant"}}

	got := EncodeInfo(info, entries, schema)
	want := "DP=112;SOMATIC;CSQ=A|missense_variant"
	if got != want {
		t.Errorf("EncodeInfo = %q, want %q", got, want)
	}
}

func TestEncodeInfoNoEntries(t *testing.T) {
	info := Info{"DP": "112"}

	got := EncodeInfo(info, nil, []string{"Allele"})
	if got != "DP=112" {
		t.Errorf("EncodeInfo = %q, want DP=112", got)
	}
}
