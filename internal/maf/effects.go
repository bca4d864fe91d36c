// Package maf processes MAF files: it decodes the per-transcript all_effects
// column against its fixed schema, filters effects by consequence and joins
// the effect matching a transcript of interest back onto the row.
package maf

import (
	"strings"

	"github.com/jorgeholguin/VCF-functions/internal/idlist"
)

// EffectsSuffix distinguishes decoded effect fields from the MAF's own
// columns of the same name.
const EffectsSuffix = "_all_effects"

// Standard MAF column names.
const (
	ColAllEffects            = "all_effects"
	ColVariantClassification = "Variant_Classification"
	ColOneConsequence        = "One_Consequence"
	ColMutationStatus        = "Mutation_Status"
	ColVariantType           = "Variant_Type"
)

// Decoded effect field names used for filtering and resolution.
const (
	FieldConsequence  = "Consequence" + EffectsSuffix
	FieldTranscriptID = "Transcript_ID" + EffectsSuffix
)

// effectFields is the fixed ordered schema of one all_effects record.
var effectFields = []string{
	"Symbol" + EffectsSuffix,
	"Consequence" + EffectsSuffix,
	"HGVSp_Short" + EffectsSuffix,
	"Transcript_ID" + EffectsSuffix,
	"RefSeq" + EffectsSuffix,
	"HGVSc" + EffectsSuffix,
	"Impact" + EffectsSuffix,
	"Canonical" + EffectsSuffix,
	"Sift" + EffectsSuffix,
	"PolyPhen" + EffectsSuffix,
	"Strand" + EffectsSuffix,
}

// EffectFields returns the ordered decoded field names.
func EffectFields() []string {
	return append([]string(nil), effectFields...)
}

// Entry is one decoded all_effects record, keyed by suffixed field name.
// Every field is present; empty values hold the empty string.
type Entry map[string]string

// DecodeEffects decodes a raw all_effects value into one entry per
// semicolon-separated record, mapping comma-delimited values positionally
// onto the fixed schema. Values beyond the schema are dropped; missing
// trailing values map to the empty string.
func DecodeEffects(raw string) []Entry {
	if raw == "" {
		return nil
	}

	entries := make([]Entry, 0, strings.Count(raw, ";")+1)
	for _, sub := range strings.Split(raw, ";") {
		values := strings.Split(sub, ",")
		e := make(Entry, len(effectFields))
		for i, field := range effectFields {
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

// FilterEffects keeps entries whose consequence value contains the target
// substring. Containment is case-sensitive.
func FilterEffects(entries []Entry, consequence string) []Entry {
	var kept []Entry
	for _, e := range entries {
		if strings.Contains(e[FieldConsequence], consequence) {
			kept = append(kept, e)
		}
	}
	return kept
}

// ResolveEffect returns the last entry whose transcript identifier is a
// member of ids. Later matches overwrite earlier ones. The bool reports
// whether any entry matched.
func ResolveEffect(entries []Entry, ids idlist.Set) (Entry, bool) {
	var selected Entry
	for _, e := range entries {
		if ids.Contains(e[FieldTranscriptID]) {
			selected = e
		}
	}
	return selected, selected != nil
}

// EncodeEffects renders entries back into semicolon-joined, comma-delimited
// form in schema order.
func EncodeEffects(entries []Entry) string {
	subs := make([]string, len(entries))
	for i, e := range entries {
		values := make([]string, len(effectFields))
		for j, field := range effectFields {
			values[j] = e[field]
		}
		subs[i] = strings.Join(values, ",")
	}
	return strings.Join(subs, ";")
}
