package containers_test

import (
	"fmt"
	"testing"

	"github.com/Freelancerhu/trx/containers"

	"github.com/stretchr/testify/require"
)

// both container kinds advertise the reordering capability
var (
	_ containers.Sortable[int] = &containers.List[int]{}
	_ containers.Sortable[int] = containers.Slice[int]{}
)

func ExampleSort() {
	l := containers.NewList(9, 1, 3, 4, 2)
	containers.Sort[int](l)
	fmt.Println(l.Values())

	vs := containers.Slice[int]{9, 1, 3, 4, 2}
	containers.Sort[int](vs)
	fmt.Println(vs)
	// Output:
	// [1 2 3 4 9]
	// [1 2 3 4 9]
}

func ExampleSortFunc() {
	vs := containers.Slice[int]{9, 1, 3, 4, 2}
	containers.SortFunc[int](vs, func(a, b int) bool { return a > b })

	fmt.Println(vs)
	// Output: [9 4 3 2 1]
}

func TestSort(t *testing.T) {
	t.Parallel()

	t.Run("node based container", func(t *testing.T) {
		l := containers.NewList(9, 1, 3, 4, 2)
		containers.Sort[int](l)
		require.Equal(t, []int{1, 2, 3, 4, 9}, l.Values())
	})

	t.Run("random access container", func(t *testing.T) {
		vs := containers.Slice[int]{9, 1, 3, 4, 2}
		containers.Sort[int](vs)
		require.Equal(t, containers.Slice[int]{1, 2, 3, 4, 9}, vs)
	})

	t.Run("ordering by default is the ascending one", func(t *testing.T) {
		vs := containers.Slice[string]{"banana", "apple", "cherry"}
		containers.Sort[string](vs)
		require.Equal(t, containers.Slice[string]{"apple", "banana", "cherry"}, vs)
	})
}

func TestSortFunc(t *testing.T) {
	t.Parallel()

	isGreater := func(a, b int) bool { return a > b }

	t.Run("node based container", func(t *testing.T) {
		l := containers.NewList(9, 1, 3, 4, 2)
		containers.SortFunc[int](l, isGreater)
		require.Equal(t, []int{9, 4, 3, 2, 1}, l.Values())
	})

	t.Run("random access container", func(t *testing.T) {
		vs := containers.Slice[int]{9, 1, 3, 4, 2}
		containers.SortFunc[int](vs, isGreater)
		require.Equal(t, containers.Slice[int]{9, 4, 3, 2, 1}, vs)
	})

	t.Run("a panicking ordering propagates to the caller", func(t *testing.T) {
		require.Panics(t, func() {
			vs := containers.Slice[int]{2, 1}
			containers.SortFunc[int](vs, func(a, b int) bool { panic(`boom`) })
		})
	})
}
