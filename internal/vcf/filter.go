package vcf

import (
	"strings"

	"github.com/jorgeholguin/VCF-functions/internal/idlist"
)

// FilterEntries keeps entries whose Consequence value contains consequence
// and whose VARIANT_CLASS value contains class. Containment is
// case-sensitive; compound terms such as
// missense_variant&splice_region_variant match their parts.
func FilterEntries(entries []Entry, consequence, class string) []Entry {
	var kept []Entry
	for _, e := range entries {
		if strings.Contains(e[FieldConsequence], consequence) &&
			strings.Contains(e[FieldVariantClass], class) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Resolve returns the last entry whose Feature value is a member of ids.
// Later matches overwrite earlier ones. The bool reports whether any entry
// matched.
func Resolve(entries []Entry, ids idlist.Set) (Entry, bool) {
	var selected Entry
	for _, e := range entries {
		if ids.Contains(e[FieldFeature]) {
			selected = e
		}
	}
	return selected, selected != nil
}
