package plan

import (
	"fmt"
	"sort"

	"bulk-seeder/core/seed"
)

// IssueKind classifies a plan ordering problem.
type IssueKind string

const (
	// IssueMissingProducer means no unit creates the referenced entity.
	IssueMissingProducer IssueKind = "missing_producer"
	// IssueOutOfOrder means the producer runs at or after the consumer.
	IssueOutOfOrder IssueKind = "out_of_order"
	// IssueNoSource means the producer has no source in the selected environment.
	IssueNoSource IssueKind = "no_source"
)

// Issue is a reference that would fail to resolve at run time.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Unit   string    `json:"unit"`
	Field  string    `json:"field"`
	Target string    `json:"target"`
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueMissingProducer:
		return fmt.Sprintf("%s.%s references %s, which no unit creates", i.Unit, i.Field, i.Target)
	case IssueNoSource:
		return fmt.Sprintf("%s.%s references %s, which has no source in this environment", i.Unit, i.Field, i.Target)
	default:
		return fmt.Sprintf("%s.%s references %s, which is created at or after it", i.Unit, i.Field, i.Target)
	}
}

// Lint reports references whose target entity is not created by an earlier
// unit. Records of a unit are resolved before any of them is inserted, so a
// unit referencing its own entity is out of order too.
func Lint(units []seed.Unit, production bool) []Issue {
	ordered := make([]seed.Unit, len(units))
	copy(ordered, units)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreationOrder < ordered[j].CreationOrder
	})

	// position of the first unit creating each entity, and whether any
	// creator has a source in this environment
	first := make(map[string]int)
	sourced := make(map[string]bool)
	for pos, u := range ordered {
		if _, ok := first[u.Entity]; !ok {
			first[u.Entity] = pos
		}
		if u.SourcePath(production) != "" {
			sourced[u.Entity] = true
		}
	}

	var issues []Issue
	for pos, u := range ordered {
		if u.SourcePath(production) == "" {
			continue
		}
		for _, field := range u.RefFields() {
			ref, ok := u.Refs[field]
			if !ok {
				continue
			}
			issue := Issue{Unit: u.DisplayName(), Field: field, Target: ref.Entity}
			producer, exists := first[ref.Entity]
			switch {
			case !exists:
				issue.Kind = IssueMissingProducer
			case producer >= pos:
				issue.Kind = IssueOutOfOrder
			case !sourced[ref.Entity]:
				issue.Kind = IssueNoSource
			default:
				continue
			}
			issues = append(issues, issue)
		}
	}
	return issues
}
