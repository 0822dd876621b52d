package comparisons_test

import (
	"fmt"
	"testing"

	"github.com/Freelancerhu/trx/comparisons"

	"github.com/stretchr/testify/require"
)

func ExampleMaxAmongFunc() {
	longest := comparisons.MaxAmongFunc(func(a, b string) bool {
		return len(a) < len(b)
	}, "aa", "b", "cccc", "dd")

	fmt.Println(longest)
	// Output: cccc
}

func TestMaxAmongFunc(t *testing.T) {
	t.Parallel()

	byLen := func(a, b string) bool { return len(a) < len(b) }

	t.Run("the ordering decides the winner", func(t *testing.T) {
		require.Equal(t, "cccc", comparisons.MaxAmongFunc(byLen, "aa", "b", "cccc", "dd"))
	})

	t.Run("equivalent arguments keep the leftmost one", func(t *testing.T) {
		// `bb` and `dd` are equivalent under the length based ordering,
		// the earlier of them must win.
		require.Equal(t, "bb", comparisons.MaxAmongFunc(byLen, "a", "bb", "c", "dd"))
		require.Equal(t, "bb", comparisons.MaxAmongFunc(byLen, "bb", "dd"))
	})
}
