package resolve

import (
	"github.com/hoopsight/courtside/internal/store"
)

// TeamMatch is the result of resolving a team query against the directory.
type TeamMatch struct {
	// Abbreviations is the union over every matching directory entry, in
	// directory order. A relocated franchise resolves under one name into
	// all of its historical abbreviations.
	Abbreviations []string

	// Entry is the first matching directory entry, used for display
	// metadata when a single name is needed.
	Entry store.TeamDirectoryEntry
}

// Set returns the matched abbreviations as a membership set for filtering.
func (m TeamMatch) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(m.Abbreviations))
	for _, abbr := range m.Abbreviations {
		set[abbr] = struct{}{}
	}
	return set
}

// Teams resolves a free-text query against the team directory. An entry
// matches when the query is a normalized substring of its full name, or a
// normalized exact match of its abbreviation. Both checks run; the result
// is the union over all entries satisfying either. The second return is
// false when nothing matched.
func Teams(directory []store.TeamDirectoryEntry, query string) (TeamMatch, bool) {
	var match TeamMatch
	for _, entry := range directory {
		if !ContainsFold(entry.FullName, query) && !EqualFold(entry.Abbreviation, query) {
			continue
		}
		if len(match.Abbreviations) == 0 {
			match.Entry = entry
		}
		match.Abbreviations = append(match.Abbreviations, entry.Abbreviation)
	}
	return match, len(match.Abbreviations) > 0
}
