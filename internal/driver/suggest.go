package driver

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggest returns up to 3 candidates fuzzy-matching name, used for the
// "unknown command %q, did you mean ...?" diagnostics of SPEC_FULL §2.
func suggest(name string, candidates []string) []string {
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	sort.Sort(ranks)
	out := make([]string, 0, 3)
	for i := 0; i < len(ranks) && i < 3; i++ {
		out = append(out, ranks[i].Target)
	}
	return out
}
