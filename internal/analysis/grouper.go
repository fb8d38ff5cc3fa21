package analysis

import (
	"sort"

	"github.com/MKlolbullen/hashhound/internal/model"
)

// Group folds parsed records into shared-password groups: accounts are
// bucketed by NT hash, buckets with fewer than two members are dropped,
// and the survivors are sorted by descending member count with the hash
// string (ascending) as tie-breaker, so two runs over the same dump give
// byte-identical output. Member order inside a group is first-seen order.
func Group(records []model.Record) []model.HashGroup {
	byHash := make(map[string][]string)
	for _, r := range records {
		byHash[r.NTHash] = append(byHash[r.NTHash], r.Username)
	}

	groups := make([]model.HashGroup, 0, len(byHash))
	for hash, members := range byHash {
		if len(members) < 2 {
			continue
		}
		groups = append(groups, model.HashGroup{Hash: hash, Members: members})
	}

	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Members) != len(groups[j].Members) {
			return len(groups[i].Members) > len(groups[j].Members)
		}
		return groups[i].Hash < groups[j].Hash
	})
	return groups
}

// BuildReport bundles one analysis pass into the structure every renderer
// consumes.
func BuildReport(source string, records []model.Record, stats model.DumpStats) *model.Report {
	return &model.Report{
		SourceFile: source,
		Stats:      stats,
		Groups:     Group(records),
	}
}
