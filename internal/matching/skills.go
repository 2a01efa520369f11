package matching

import (
	"sort"
	"strings"
)

// SkillSet holds normalized skill tokens. Insertion order is irrelevant;
// equality of members is reliable because every token went through Normalize.
type SkillSet map[string]struct{}

// Normalize lower-cases and trims a single skill token. Idempotent.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeSet normalizes and de-duplicates a list of skills. Elements may
// themselves be comma-delimited ("python, REACT"): some job sources send
// the whole required-skill field as one string. Blank tokens are dropped,
// never kept as empty entries.
func NormalizeSet(skills []string) SkillSet {
	set := make(SkillSet)
	for _, raw := range skills {
		for _, part := range strings.Split(raw, ",") {
			if token := Normalize(part); token != "" {
				set[token] = struct{}{}
			}
		}
	}
	return set
}

func (s SkillSet) Contains(skill string) bool {
	_, ok := s[Normalize(skill)]
	return ok
}

func (s SkillSet) Intersects(other SkillSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for token := range small {
		if _, ok := large[token]; ok {
			return true
		}
	}
	return false
}

// Slice returns the tokens in sorted order for stable output.
func (s SkillSet) Slice() []string {
	out := make([]string, 0, len(s))
	for token := range s {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}
