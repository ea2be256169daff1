package plan

import (
	"testing"

	"bulk-seeder/core/seed"

	"github.com/stretchr/testify/assert"
)

func TestLint(t *testing.T) {
	units := []seed.Unit{
		{CreationOrder: 2, Entity: "User", PathDev: "users.json", Refs: map[string]seed.Ref{
			"organization_id": {Entity: "Organization"},
		}},
		{CreationOrder: 1, Entity: "Organization", PathDev: "orgs.json"},
	}
	assert.Empty(t, Lint(units, false))

	t.Run("OutOfOrder", func(t *testing.T) {
		swapped := []seed.Unit{units[0], units[1]}
		swapped[1].CreationOrder = 3
		issues := Lint(swapped, false)
		assert.Equal(t, []Issue{{Kind: IssueOutOfOrder, Unit: "User", Field: "organization_id", Target: "Organization"}}, issues)
	})

	t.Run("EqualOrderKeepsPlanPosition", func(t *testing.T) {
		same := []seed.Unit{units[1], units[0]}
		same[0].CreationOrder = 1
		same[1].CreationOrder = 1
		assert.Empty(t, Lint(same, false))
	})

	t.Run("SelfReference", func(t *testing.T) {
		self := []seed.Unit{{Entity: "Node", PathDev: "n.json", Refs: map[string]seed.Ref{"parent_id": {Entity: "Node"}}}}
		issues := Lint(self, false)
		assert.Len(t, issues, 1)
		assert.Equal(t, IssueOutOfOrder, issues[0].Kind)
	})

	t.Run("MissingProducer", func(t *testing.T) {
		issues := Lint(units[:1], false)
		assert.Len(t, issues, 1)
		assert.Equal(t, IssueMissingProducer, issues[0].Kind)
		assert.Contains(t, issues[0].String(), "no unit creates")
	})

	t.Run("NoSourceInEnvironment", func(t *testing.T) {
		prod := []seed.Unit{units[0], units[1]}
		prod[0].PathProd = "users.json"
		issues := Lint(prod, true)
		assert.Len(t, issues, 1)
		assert.Equal(t, IssueNoSource, issues[0].Kind)
	})

	t.Run("SkippedConsumer", func(t *testing.T) {
		assert.Empty(t, Lint(units, true))
	})
}
