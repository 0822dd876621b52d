package comparisons_test

import (
	"fmt"
	"testing"

	"github.com/Freelancerhu/trx/comparisons"

	"github.com/stretchr/testify/require"
)

func ExampleMin() {
	fmt.Println(comparisons.Min(42, 24))
	// Output: 24
}

func TestMin(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, comparisons.Min(1, 2))
	require.Equal(t, 1, comparisons.Min(2, 1))
	require.Equal(t, 1, comparisons.Min(1, 1))
	require.Equal(t, -2.5, comparisons.Min(-2.5, 0.0))
	require.Equal(t, "a", comparisons.Min("a", "b"))
}
