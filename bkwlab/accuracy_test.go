package bkwlab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jteck44/bkw-lab/bkwlab"
)

func TestAccuracyLPNCountsMatchingBits(t *testing.T) {
	acc, err := bkwlab.AccuracyLPN([]uint8{1, 0, 1, 1}, []uint8{1, 0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 0.75, acc)
}

func TestAccuracyLWECountsMatchingEntries(t *testing.T) {
	acc, err := bkwlab.AccuracyLWE([]int{3, 1, 5, 2}, []int{3, 1, 0, 2})
	require.NoError(t, err)
	require.Equal(t, 0.75, acc)
}

func TestBlockAccuracyLPNScopesToWindow(t *testing.T) {
	recovered := []uint8{1, 0, 1, 1}
	truth := []uint8{1, 0, 0, 1}

	acc, err := bkwlab.BlockAccuracyLPN(recovered, truth, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, acc)

	acc, err = bkwlab.BlockAccuracyLPN(recovered, truth, 2, 4)
	require.NoError(t, err)
	require.Equal(t, 0.5, acc)
}

func TestBlockAccuracyLWEScopesToWindow(t *testing.T) {
	recovered := []int{3, 1, 5, 2}
	truth := []int{3, 1, 0, 9}

	acc, err := bkwlab.BlockAccuracyLWE(recovered, truth, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, acc)

	acc, err = bkwlab.BlockAccuracyLWE(recovered, truth, 2, 4)
	require.NoError(t, err)
	require.Equal(t, 0.0, acc)
}
