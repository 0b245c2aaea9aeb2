package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := []string{"A", "B"}
	b := []string{"C"}

	var keys []int
	var values []string
	for key, value := range IterSeq2Concat(slices.All(a), slices.All(b)) {
		keys = append(keys, key)
		values = append(values, value)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"A", "B", "C"}, values)

	count := 0
	for range IterSeq2Concat(slices.All(a), slices.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)

	merged := maps.Collect(IterSeq2Concat(maps.All(map[string]int{"X": 1}), maps.All(map[string]int{"Y": 2})))
	assert.Equal(map[string]int{"X": 1, "Y": 2}, merged)

	assert.Empty(slices.Collect(maps.Keys(maps.Collect(IterSeq2Concat[string, int]()))))
}
