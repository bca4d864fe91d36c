package maf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorgeholguin/VCF-functions/internal/idlist"
)

func TestDecodeEffects(t *testing.T) {
	raw := "KRAS,missense_variant,p.G12C,ENST00000311936,NM_033360.4,c.34G>T,MODERATE,YES,,,1;" +
		"KRAS,missense_variant,p.G12C,ENST00000256078,NM_004985.5,c.34G>T,MODERATE,,,,1"

	entries := DecodeEffects(raw)
	require.Len(t, entries, 2)

	assert.Equal(t, "KRAS", entries[0]["Symbol_all_effects"])
	assert.Equal(t, "ENST00000311936", entries[0]["Transcript_ID_all_effects"])
	assert.Equal(t, "YES", entries[0]["Canonical_all_effects"])
	assert.Equal(t, "", entries[0]["Sift_all_effects"])
	assert.Equal(t, "1", entries[0]["Strand_all_effects"])

	assert.Equal(t, "ENST00000256078", entries[1]["Transcript_ID_all_effects"])
	assert.Equal(t, "", entries[1]["Canonical_all_effects"])
}

func TestDecodeEffectsRagged(t *testing.T) {
	entries := DecodeEffects("BRAF,missense_variant;GNAS,missense_variant,p.R201C,ENST1,NM_1,c.601C>T,MODERATE,YES,sift,polyphen,1,extra")
	require.Len(t, entries, 2)

	// Missing trailing values map to the empty string.
	assert.Equal(t, "BRAF", entries[0]["Symbol_all_effects"])
	assert.Equal(t, "", entries[0]["Transcript_ID_all_effects"])
	assert.Equal(t, "", entries[0]["Strand_all_effects"])

	// Values beyond the schema are dropped.
	assert.Equal(t, "1", entries[1]["Strand_all_effects"])
	assert.Len(t, entries[1], len(effectFields))
}

func TestDecodeEffectsEmpty(t *testing.T) {
	assert.Nil(t, DecodeEffects(""))
}

func TestFilterEffects(t *testing.T) {
	entries := []Entry{
		{FieldConsequence: "missense_variant"},
		{FieldConsequence: "synonymous_variant"},
		{FieldConsequence: "missense_variant&splice_region_variant"},
	}

	kept := FilterEffects(entries, "missense_variant")
	require.Len(t, kept, 2)
	assert.Equal(t, "missense_variant&splice_region_variant", kept[1][FieldConsequence])

	assert.Empty(t, FilterEffects(entries, "MISSENSE_VARIANT"))
}

func TestResolveEffectLastWins(t *testing.T) {
	entries := []Entry{
		{FieldTranscriptID: "ENST1", "Impact_all_effects": "first"},
		{FieldTranscriptID: "ENST2", "Impact_all_effects": "second"},
		{FieldTranscriptID: "ENST1", "Impact_all_effects": "third"},
	}

	selected, ok := ResolveEffect(entries, idlist.New("ENST1"))
	require.True(t, ok)
	assert.Equal(t, "third", selected["Impact_all_effects"])

	_, ok = ResolveEffect(entries, idlist.New("ENST9"))
	assert.False(t, ok)
}

func TestEncodeEffects(t *testing.T) {
	raw := "KRAS,missense_variant,p.G12C,ENST00000311936,NM_033360.4,c.34G>T,MODERATE,YES,,,1;" +
		"KRAS,missense_variant,p.G12C,ENST00000256078,NM_004985.5,c.34G>T,MODERATE,,,,1"

	assert.Equal(t, raw, EncodeEffects(DecodeEffects(raw)))
}

func TestEffectFields(t *testing.T) {
	fields := EffectFields()
	require.Len(t, fields, 11)
	assert.Equal(t, "Symbol_all_effects", fields[0])
	assert.Equal(t, "Strand_all_effects", fields[10])

	// Callers get a copy.
	fields[0] = "changed"
	assert.Equal(t, "Symbol_all_effects", EffectFields()[0])
}
