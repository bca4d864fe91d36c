package vcf

import (
	"fmt"

	"github.com/jorgeholguin/VCF-functions/internal/table"
)

// CollisionPolicy controls what happens when a CSQ schema field carries the
// same name as an existing table column during row expansion.
type CollisionPolicy int

const (
	// CollideError rejects the expansion with a CollisionError.
	CollideError CollisionPolicy = iota
	// CollidePrefix renames the incoming column with a "CSQ_" prefix.
	CollidePrefix
	// CollideOverwrite replaces the existing column value.
	CollideOverwrite
)

// csqColumnPrefix disambiguates colliding schema fields under CollidePrefix.
const csqColumnPrefix = "CSQ_"

// String returns the policy name as accepted by ParseCollisionPolicy.
func (p CollisionPolicy) String() string {
	switch p {
	case CollidePrefix:
		return "prefix"
	case CollideOverwrite:
		return "overwrite"
	default:
		return "error"
	}
}

// ParseCollisionPolicy parses a policy name: error, prefix or overwrite.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "error":
		return CollideError, nil
	case "prefix":
		return CollidePrefix, nil
	case "overwrite":
		return CollideOverwrite, nil
	}
	return CollideError, fmt.Errorf("unknown collision policy %q (want error, prefix or overwrite)", s)
}

// CollisionError reports a CSQ schema field that collides with an existing
// table column.
type CollisionError struct {
	Column string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("csq field %q collides with an existing table column", e.Column)
}

// ExtensionColumns maps every schema field to its output column name under
// the collision policy, checked against the existing columns. It returns the
// mapping, the fields that collided, and a CollisionError under CollideError.
func ExtensionColumns(schema, existing []string, policy CollisionPolicy) (map[string]string, []string, error) {
	taken := make(map[string]bool, len(existing))
	for _, c := range existing {
		taken[c] = true
	}

	names := make(map[string]string, len(schema))
	var collisions []string
	for _, field := range schema {
		name := field
		if taken[field] {
			collisions = append(collisions, field)
			switch policy {
			case CollideError:
				return nil, nil, &CollisionError{Column: field}
			case CollidePrefix:
				name = csqColumnPrefix + field
			}
		}
		names[field] = name
	}

	return names, collisions, nil
}

// ExpandRow flattens a selected entry onto a row under the column names
// resolved by ExtensionColumns. The input row is not modified.
func ExpandRow(row table.Row, selected Entry, names map[string]string) table.Row {
	out := row.Clone()
	for field, value := range selected {
		out[names[field]] = value
	}
	return out
}
