package treasure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable_Sets(t *testing.T) {
	entries := []Entry{
		{ClassID: 1, Probability: 3},
		{ClassID: 2, Probability: 7},
		{ClassID: 3, Probability: 1, SetStart: true},
		{ClassID: 4, Probability: 1},
	}

	table, err := BuildTable(10, entries)
	require.NoError(t, err)

	require.Len(t, table.Sets, 2)
	assert.Len(t, table.Sets[0].Items, 2)
	assert.Equal(t, 10.0, table.Sets[0].TotalProbability)
	assert.Equal(t, uint32(3), table.Sets[1].Items[0].Entry.ClassID)
	assert.Equal(t, 2.0, table.Sets[1].TotalProbability)
}

func TestBuildTable_Subsets(t *testing.T) {
	entries := []Entry{
		{ClassID: 1, Probability: 1, HasSubSet: true},
		{ClassID: 10, Probability: 0.5},
		{ClassID: 11, Probability: 0.5, HasSubSet: true},
		{ClassID: 100, Probability: 1},
		{ClassID: 12, Probability: 1, ContinuesPreviousSet: true},
		{ClassID: 2, Probability: 1, ContinuesPreviousSet: true},
		{ClassID: 3, Probability: 1, SetStart: true},
	}

	table, err := BuildTable(1, entries)
	require.NoError(t, err)
	require.Len(t, table.Sets, 2)

	top := table.Sets[0]
	require.Len(t, top.Items, 2)
	assert.Equal(t, uint32(1), top.Items[0].Entry.ClassID)
	assert.Equal(t, uint32(2), top.Items[1].Entry.ClassID)
	assert.Equal(t, 3, top.Depth())

	sub := top.Items[0].Subset
	require.NotNil(t, sub)
	require.Len(t, sub.Items, 3)
	assert.Equal(t, []uint32{10, 11, 12}, []uint32{sub.Items[0].Entry.ClassID, sub.Items[1].Entry.ClassID, sub.Items[2].Entry.ClassID})

	require.NotNil(t, sub.Items[1].Subset)
	assert.Len(t, sub.Items[1].Subset.Items, 1)
	assert.Nil(t, top.Items[1].Subset)

	assert.Len(t, table.Sets[1].Items, 1)
}

func TestBuildTable_TrailingSubsetFlag(t *testing.T) {
	table, err := BuildTable(1, []Entry{{ClassID: 1, Probability: 1, HasSubSet: true}})
	require.NoError(t, err)
	require.Len(t, table.Sets, 1)
	assert.Nil(t, table.Sets[0].Items[0].Subset)
}

func TestBuildTable_Invalid(t *testing.T) {
	_, err := BuildTable(1, []Entry{{ClassID: 1, Probability: -1}})
	assert.Error(t, err)

	_, err = BuildTable(1, []Entry{{ClassID: 1, Probability: 1, StackSize: 5, StackSizeVariance: 1.5}})
	assert.Error(t, err)
}
