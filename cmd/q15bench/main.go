// Copyright 2025 go-q15 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command q15bench verifies and times the saturating Q15 AXPY kernels.
//
// It runs the saturation edge checks on both kernels, then times the
// serial reference and the strip-mining kernel over a seeded random
// dataset and verifies that their outputs are bit-identical.
//
// Usage:
//
//	q15bench                     # defaults: 4096 elements, alpha 3, seed 1234
//	q15bench -n 65536 --alpha -7
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-q15/q15"
)

var (
	size  int
	alpha int16
	seed  int64
)

var rootCmd = &cobra.Command{
	Use:           "q15bench",
	Short:         "Benchmark and verify the saturating Q15 AXPY kernels",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().IntVarP(&size, "size", "n", 4096, "number of elements per array")
	rootCmd.Flags().Int16Var(&alpha, "alpha", 3, "coefficient broadcast to every element")
	rootCmd.Flags().Int64Var(&seed, "seed", 1234, "seed for the random test vectors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type edgeCase struct {
	name  string
	a, b  int16
	alpha int16
	want  int16
}

var edgeCases = []edgeCase{
	{"overflow", 32767, 1, 1, 32767},
	{"underflow", -32768, 1, -1, -32768},
	{"big positive", 0, 32767, 32767, 32767},
	{"normal case", 100, 200, 5, 1100},
}

func runEdgeCases() bool {
	fmt.Println("Edge case tests:")
	pass := true
	for _, ec := range edgeCases {
		a := []int16{ec.a}
		b := []int16{ec.b}
		yRef := make([]int16, 1)
		yPar := make([]int16, 1)
		q15.AxpyRef(a, b, yRef, ec.alpha)
		q15.Axpy(a, b, yPar, ec.alpha)

		ok := yRef[0] == ec.want && yPar[0] == ec.want
		status := "ok"
		if !ok {
			status = "FAIL"
			pass = false
		}
		fmt.Printf("  %-12s %s\n", ec.name+":", status)
	}
	fmt.Println()
	return pass
}

func report(label string, elapsed time.Duration, n int) {
	perElem := float64(elapsed.Nanoseconds()) / float64(n)
	throughput := float64(n) / elapsed.Seconds() / 1e6
	fmt.Printf("%-8s %10v  (%.2f ns/elem, %.1f Melem/s)\n", label+":", elapsed, perElem, throughput)
}

func run() error {
	ok := runEdgeCases()

	a := make([]int16, size)
	b := make([]int16, size)
	yRef := make([]int16, size)
	yPar := make([]int16, size)

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < size; i++ {
		a[i] = int16(rng.Intn(65536) - 32768)
		b[i] = int16(rng.Intn(65536) - 32768)
	}

	tgt := q15.Native()
	fmt.Printf("Benchmark (N=%d, alpha=%d, target=%s x%d)\n\n", size, alpha, tgt.Name(), tgt.Lanes())

	t0 := time.Now()
	q15.AxpyRef(a, b, yRef, alpha)
	report("Scalar", time.Since(t0), size)

	t0 = time.Now()
	q15.Axpy(a, b, yPar, alpha)
	report("Chunked", time.Since(t0), size)

	match, maxDiff := q15.Match(yRef, yPar)
	status := "PASS"
	if !match {
		status = "FAIL"
		ok = false
	}
	fmt.Printf("Verify:  %s (max diff = %d)\n", status, maxDiff)

	if !ok {
		return fmt.Errorf("verification failed")
	}
	return nil
}
