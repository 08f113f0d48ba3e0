package collections

import (
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/require"
)

func TestAllAreEqual(t *testing.T) {
	require.True(t, AllAreEqual([]int{}))
	require.True(t, AllAreEqual([]int{5}))
	require.True(t, AllAreEqual([]int{5, 5, 5}))
	require.False(t, AllAreEqual([]int{5, 5, 6}))
	require.False(t, AllAreEqual([]string{"a", "b"}))
}

func TestRequireAllAreEqual(t *testing.T) {
	require.NoError(t, RequireAllAreEqual([]int{}))
	require.NoError(t, RequireAllAreEqual([]string{"a", "a"}))

	err := RequireAllAreEqual([]int{5, 5, 6})
	require.Error(t, err)
	autogold.Expect("elements are not all equal: [5 5 6]").Equal(t, err.Error())
}
