package builder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nocgen/builder"
)

// TestPartition_SizesAndOrder checks subset sizes and order for a grid of N and R.
func TestPartition_SizesAndOrder(t *testing.T) {
	t.Parallel()

	for r := 1; r <= 6; r++ {
		for n := 0; n <= 20; n++ {
			nodes := make([]int, n)
			for i := range nodes {
				nodes[i] = i
			}
			t.Run(fmt.Sprintf("N=%d/R=%d", n, r), func(t *testing.T) {
				p, err := builder.Partition(nodes, r)
				require.NoError(t, err)

				assert.Equal(t, n/r, p.PerRouter)
				assert.Equal(t, n%r, p.Remainder)
				assert.Len(t, p.Uniform, n-n%r)
				assert.Len(t, p.Rest, n%r)

				joined := append(append([]int{}, p.Uniform...), p.Rest...)
				assert.Equal(t, nodes, joined, "uniform ++ rest must reproduce the input")
			})
		}
	}
}

// TestPartition_FewerNodesThanRouters puts every node in the remainder.
func TestPartition_FewerNodesThanRouters(t *testing.T) {
	p, err := builder.Partition([]string{"a", "b"}, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, p.PerRouter)
	assert.Empty(t, p.Uniform)
	assert.Equal(t, []string{"a", "b"}, p.Rest)
}

// TestPartition_DoesNotAlias verifies the result owns its storage.
func TestPartition_DoesNotAlias(t *testing.T) {
	nodes := []int{1, 2, 3, 4, 5}
	p, err := builder.Partition(nodes, 2)
	require.NoError(t, err)

	nodes[0] = 100
	assert.Equal(t, 1, p.Uniform[0])

	// Appending to Uniform must not overwrite Rest.
	_ = append(p.Uniform, 42)
	assert.Equal(t, []int{5}, p.Rest)
}

// TestPartition_InvalidRouterCount rejects R ≤ 0.
func TestPartition_InvalidRouterCount(t *testing.T) {
	for _, r := range []int{0, -1, -8} {
		_, err := builder.Partition([]int{1, 2}, r)
		if !errors.Is(err, builder.ErrInvalidRouterCount) {
			t.Errorf("Partition(R=%d) error = %v; want ErrInvalidRouterCount", r, err)
		}
	}
}

// TestPartition_String summarizes sizes.
func TestPartition_String(t *testing.T) {
	p, err := builder.Partition(make([]int, 9), 4)
	require.NoError(t, err)
	assert.Equal(t, "uniform=8 (2/router) rest=1", p.String())
}
