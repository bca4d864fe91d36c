package vcf

import (
	"sort"
	"strings"
)

// Standard VCF column and field names.
const (
	ColChrom  = "CHROM"
	ColFilter = "FILTER"
	ColInfo   = "INFO"

	KeyCSQ = "CSQ"

	FieldConsequence  = "Consequence"
	FieldVariantClass = "VARIANT_CLASS"
	FieldFeature      = "Feature"

	// FilterPass marks calls that passed all filters.
	FilterPass = "PASS"
)

// Info holds a decoded INFO field. Flag keys map to the empty string.
type Info map[string]string

// Entry is one decoded CSQ sub-record, keyed by schema field name. Every
// schema field is present; empty values hold the empty string.
type Entry map[string]string

// ParseInfo decodes a raw INFO field into key-value pairs. Tokens without
// '=' are flags and map to the empty string.
func ParseInfo(raw string) Info {
	info := make(Info)
	if raw == "" || raw == "." {
		return info
	}

	for _, kv := range strings.Split(raw, ";") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			info[parts[0]] = parts[1]
		} else {
			// Flag-type INFO field
			info[parts[0]] = ""
		}
	}

	return info
}

// DecodeCSQ decodes a raw CSQ value into one entry per comma-separated
// sub-record, mapping pipe-delimited values positionally onto the schema.
// Values beyond the schema length are dropped; missing trailing values map
// to the empty string. Returns nil when the raw value or schema is empty.
func DecodeCSQ(raw string, schema []string) []Entry {
	if raw == "" || len(schema) == 0 {
		return nil
	}

	entries := make([]Entry, 0, strings.Count(raw, ",")+1)
	for _, sub := range strings.Split(raw, ",") {
		values := strings.Split(sub, "|")
		e := make(Entry, len(schema))
		for i, field := range schema {
			if i < len(values) {
				e[field] = values[i]
			} else {
				e[field] = ""
			}
		}
		entries = append(entries, e)
	}

	return entries
}

// EncodeCSQ renders entries back into comma-joined, pipe-delimited form in
// schema order.
func EncodeCSQ(entries []Entry, schema []string) string {
	subs := make([]string, len(entries))
	for i, e := range entries {
		values := make([]string, len(schema))
		for j, field := range schema {
			values[j] = e[field]
		}
		subs[i] = strings.Join(values, "|")
	}
	return strings.Join(subs, ",")
}

// EncodeInfo renders an INFO map back into key=value;... form with keys
// sorted, flag keys bare, and the CSQ entries (when present) appended last.
func EncodeInfo(info Info, entries []Entry, schema []string) string {
	keys := make([]string, 0, len(info))
	for k := range info {
		if k == KeyCSQ {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		if v := info[k]; v == "" {
			parts = append(parts, k)
		} else {
			parts = append(parts, k+"="+v)
		}
	}
	if len(entries) > 0 {
		parts = append(parts, KeyCSQ+"="+EncodeCSQ(entries, schema))
	}

	return strings.Join(parts, ";")
}
