// Copyright (c) 2026 ACProxyCam Team
// ACProxyCam - camera proxy toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package slicest

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAndMapI(t *testing.T) {
	in := []int{1, 2, 3}
	assert.Equal(t, []string{"1", "2", "3"}, Map(in, strconv.Itoa))
	assert.Equal(t, []int{1, 3, 5}, MapI(in, func(i, v int) int { return i + v }))
}

func TestMapXI_StopsOnError(t *testing.T) {
	_, err := MapXI([]string{"1", "x", "3"}, func(_ int, s string) (int, error) {
		return strconv.Atoi(s)
	})
	require.Error(t, err)
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3, 4}, func(v, acc int) int { return acc + v })
	assert.Equal(t, 10, sum)
}

func TestFilterI_KeepsOrder(t *testing.T) {
	got := FilterI([]string{"a", "b", "c", "d"}, func(i int, _ string) bool { return i%2 == 1 })
	assert.Equal(t, []string{"b", "d"}, got)
	assert.Empty(t, Filter([]string{}, func(string) bool { return true }))
}
