package exactcover

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildOrdersColumnsByFirstEncounter(t *testing.T) {
	m, err := Build([]Subset[int]{
		NewSubset(3, 1),
		NewSubset(1, 2),
	})
	require.NoError(t, err)

	var labels []int
	for c := m.root.right; c != &m.root.node; c = c.right {
		labels = append(labels, c.column.label)
	}
	require.Equal(t, []int{3, 1, 2}, labels)
}

func TestBuildSkipsEmptySubsets(t *testing.T) {
	m, err := Build([]Subset[int]{
		NewSubset[int](),
		NewSubset(1),
		NewSubset[int](),
	})
	require.NoError(t, err)
	require.Equal(t, 1, m.rows)
	require.Equal(t, 1, columnCount(m.root))
}

func TestBuildEmptyInputProducesEmptyMatrix(t *testing.T) {
	m, err := Build([]Subset[int]{})
	require.NoError(t, err)
	require.Equal(t, 0, m.rows)
	require.Equal(t, 0, columnCount(m.root))
}

func TestBuildRejectsDuplicateElementWithinSubset(t *testing.T) {
	_, err := Build([]Subset[int]{
		NewSubset(1, 1, 2),
	})
	require.Error(t, err)

	var buildErr *BuildError
	require.True(t, errors.As(err, &buildErr))
	require.Equal(t, 0, buildErr.Index)
	require.ErrorIs(t, err, ErrDuplicateElement)
}

func TestBuildDuplicateElementErrorReportsOffendingIndex(t *testing.T) {
	_, err := Build([]Subset[int]{
		NewSubset(1, 2),
		NewSubset(3, 3),
	})
	require.Error(t, err)

	var buildErr *BuildError
	require.True(t, errors.As(err, &buildErr))
	require.Equal(t, 1, buildErr.Index)
}
