//go:build stress

package lphashmap

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

func TestStress(t *testing.T) {
	t.Run("matches a Go map under a long random workload", func(t *testing.T) {
		// Prepare
		pt := New[string, int]()
		reference := make(map[string]int)
		rnd := rand.New(rand.NewSource(1))

		// Execute
		for i := 0; i < 1_000_000; i++ {
			key := fmt.Sprintf("key-%d", rnd.Intn(50_000))
			switch rnd.Intn(4) {
			case 0:
				_, exists := reference[key]
				if pt.Delete(key) != exists {
					t.Fatalf("delete of %s disagrees with reference in step %d", key, i)
				}
				delete(reference, key)
			case 1:
				value, found := pt.Get(key)
				expected, exists := reference[key]
				if found != exists || value != expected {
					t.Fatalf("get of %s disagrees with reference in step %d", key, i)
				}
			default:
				pt.Put(key, i)
				reference[key] = i
			}
		}

		// Check
		assert.Equal(t, len(reference), pt.Size(), "size matches reference")
		for key, value := range reference {
			got, found := pt.Get(key)
			assert.Truef(t, found, "key %s found", key)
			assert.Equalf(t, value, got, "key %s has correct value", key)
		}

		stat := pt.Stat(false)
		t.Logf("records: %d, table size: %d, clusters: %d, longest cluster: %d, average probe length: %.3f",
			stat.Records, stat.TableSize, stat.Clusters, stat.LongestCluster, stat.AverageProbeLength)
	})

	t.Run("drains back to the floor", func(t *testing.T) {
		// Prepare
		pt := New[int, int]()
		for i := 0; i < 100_000; i++ {
			pt.Put(i, i)
		}

		// Execute
		for i := 0; i < 100_000; i++ {
			assert.Truef(t, pt.Delete(i), "deletes key %d", i)
		}

		// Check
		assert.Zero(t, pt.Size(), "empty")
		assert.LessOrEqual(t, pt.Info().TableSize, 16, "shrunk back near the floor")
	})
}
