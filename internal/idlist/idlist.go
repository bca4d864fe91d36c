// Package idlist provides transcript identifier sets used to pick one
// annotation entry per variant row.
package idlist

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jorgeholguin/VCF-functions/internal/table"
)

// Set holds transcript identifiers of interest.
type Set map[string]struct{}

// New builds a set from identifiers. Empty identifiers are dropped so blank
// input never matches rows with an empty transcript field.
func New(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// Contains returns true if id is a member.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers.
func (s Set) Len() int {
	return len(s)
}

// Load reads identifiers from a file, one per line. Blank lines and
// #-comment lines are skipped. Gzip input is detected by magic bytes.
func Load(path string) (Set, error) {
	f, err := table.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript list: %w", err)
	}
	defer f.Close()

	s := make(Set)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transcript list: %w", err)
	}

	return s, nil
}
