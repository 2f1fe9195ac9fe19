package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"slices"
	"testing"

	"github.com/g-m-twostay/avl-tree/Trees"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	bAddN uint32 = 1000000
	bRmvN uint32 = bAddN
	bQryN uint32 = bRmvN
)
var _R *rand.Rand

func create(b *testing.B, all []int) (*Trees.AVLTree[int, uint32], []int) {
	b.Helper()
	tree := Trees.New[int, uint32](bAddN)
	for range bAddN {
		a := _R.Intn(math.MaxInt)
		if tree.Insert(a) {
			all = append(all, a)
		}
	}
	return tree, all
}

var __r1 bool

// BenchmarkDelQry removes the first bRmvN keys then queries the rest plus bQryN random keys.
func BenchmarkDelQry(b *testing.B) {
	all := make([]int, 0, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		var tree *Trees.AVLTree[int, uint32]
		tree, all = create(b, all[:0])
		m := slices.Max(all)
		n := min(int(bRmvN), len(all))
		b.StartTimer()
		for _, v := range all[:n] {
			tree.Remove(v)
		}
		for _, v := range all[n:] {
			__r1 = tree.Has(v)
		}
		for range bQryN {
			__r1 = tree.Has(_R.Intn(m+1))
		}
	}
}

func measure(size, steps uint32) {
	testing.Init()
	bAddN = size
	bar := progressbar.Default(int64(steps-1), "measuring")
	var cs []float64
	var N uint32
	for i := uint32(1); i < steps; i++ {
		bRmvN = bAddN / steps * i
		bQryN = bRmvN
		br := testing.Benchmark(BenchmarkDelQry)
		cs = append(cs, float64(br.T.Milliseconds()))
		N += uint32(br.N)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(N)
	fmt.Printf("average: %fms/op\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(N)))
}

func main() {
	var size, steps uint32
	var seed int64
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Time AVLTree removal and lookup with a growing share of removed keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size == 0 {
				return fmt.Errorf("size must be positive")
			}
			if steps < 2 || steps > size {
				return fmt.Errorf("steps must be within [2, %d], got %d", size, steps)
			}
			_R = rand.New(rand.NewSource(seed))
			measure(size, steps)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&size, "size", bAddN, "number of keys inserted per run")
	cmd.Flags().Uint32Var(&steps, "steps", 50, "number of removal ratios to measure")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed of the key generator")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
