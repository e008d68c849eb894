package main

import (
	"fmt"
	"math/rand"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"relalg/pkg/index"
	"relalg/pkg/index/linearhash"
	"relalg/pkg/tuple"
	"relalg/pkg/types"
)

var (
	linHashKeys   int
	linHashRandom bool
)

func newLinHashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linhash",
		Short: "exercise the linear-hash index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinHash(cmd)
		},
	}
	cmd.Flags().IntVar(&linHashKeys, "keys", 40, "number of keys to insert")
	cmd.Flags().BoolVar(&linHashRandom, "random", false, "insert random keys")
	return cmd
}

func runLinHash(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	heading := color.New(color.FgCyan).FprintfFunc()

	td, err := tuple.NewTupleDesc(
		[]types.Type{types.IntType, types.IntType}, []string{"key", "value"})
	if err != nil {
		return err
	}

	lh := linearhash.New()
	for i := 1; i <= linHashKeys; i += 2 {
		k := int64(i)
		if linHashRandom {
			k = int64(rand.Intn(2 * linHashKeys))
		}
		t, err := tuple.FromFields(td, types.NewIntField(k), types.NewIntField(int64(i*i)))
		if err != nil {
			return err
		}
		lh.Put(index.NewCompositeKey(types.NewIntField(k)), t)
	}

	lh.Dump(w)

	heading(w, "lookups\n")
	for i := 0; i <= linHashKeys; i++ {
		v, ok := lh.Get(index.NewCompositeKey(types.NewIntField(int64(i))))
		if ok {
			fmt.Fprintf(w, "key = %d, value = %s\n", i, v)
		} else {
			fmt.Fprintf(w, "key = %d, value = <absent>\n", i)
		}
	}

	stats := lh.Stats()
	heading(w, "stats\n")
	fmt.Fprintf(w, "chains=%d buckets=%d keys=%d splits=%d load=%.2f\n",
		stats.Chains, stats.Buckets, stats.Keys, stats.Splits, stats.LoadFactor)
	return nil
}
