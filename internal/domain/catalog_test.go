package domain

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_InsertRejectsDuplicate(t *testing.T) {
	cat := NewCatalog()

	require.True(t, cat.Insert(Course{ID: "CSCI101", Title: "First"}))
	assert.False(t, cat.Insert(Course{ID: "CSCI101", Title: "Second"}))
	assert.Equal(t, 1, cat.Len())

	c, ok := cat.Lookup("CSCI101")
	require.True(t, ok)
	assert.Equal(t, "First", c.Title)
}

func TestCatalog_LookupNormalizes(t *testing.T) {
	cat := NewCatalog()
	cat.Insert(Course{ID: "CSCI101", Title: "Intro"})

	for _, q := range []string{"CSCI101", "csci101", "  CsCi101 "} {
		c, ok := cat.Lookup(q)
		assert.True(t, ok, "query %q", q)
		assert.Equal(t, Identifier("CSCI101"), c.ID)
	}

	_, ok := cat.Lookup("CSCI999")
	assert.False(t, ok)
}

func TestCatalog_LookupReturnsCopy(t *testing.T) {
	cat := NewCatalog()
	cat.Insert(Course{ID: "CSCI200", Title: "DS", Prerequisites: []Identifier{"CSCI101"}})

	c, _ := cat.Lookup("CSCI200")
	c.Prerequisites[0] = "CHANGED"

	again, _ := cat.Lookup("CSCI200")
	assert.Equal(t, []Identifier{"CSCI101"}, again.Prerequisites)
}

func TestCatalog_AllSortedAcrossThreshold(t *testing.T) {
	sizes := []int{0, 1, 2, SmallSortThreshold - 1, SmallSortThreshold, SmallSortThreshold + 1, 500}
	rng := rand.New(rand.NewSource(42))

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			cat := NewCatalog()
			for _, i := range rng.Perm(n) {
				require.True(t, cat.Insert(Course{ID: Identifier(fmt.Sprintf("C%04d", i)), Title: "t"}))
			}

			sorted := cat.AllSorted()

			require.Len(t, sorted, n)
			for i := 1; i < len(sorted); i++ {
				assert.True(t, sorted[i-1].ID <= sorted[i].ID, "%s before %s", sorted[i-1].ID, sorted[i].ID)
			}
			assert.Equal(t, n, cat.Len())
			assert.Equal(t, sorted, cat.AllSorted())
		})
	}
}

func TestCatalog_Resolve(t *testing.T) {
	cat := NewCatalog()
	cat.Insert(Course{ID: "CSCI100", Title: "Intro"})
	cat.Insert(Course{ID: "CSCI200", Title: "DS", Prerequisites: []Identifier{"CSCI100", "MATH201"}})

	detail, ok := cat.Resolve("csci200")
	require.True(t, ok)
	assert.Equal(t, Identifier("CSCI200"), detail.Course.ID)
	assert.Equal(t, []PrerequisiteRef{
		{ID: "CSCI100", Title: "Intro", Found: true},
		{ID: "MATH201"},
	}, detail.Prerequisites)

	_, ok = cat.Resolve("nope")
	assert.False(t, ok)
}
