package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"relalg/pkg/index"
	"relalg/pkg/relation"
	"relalg/pkg/snapshot"
	"relalg/pkg/types"
)

var (
	demoIndexKind string
	demoStoreDir  string
)

func newDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "run the movie database walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := index.ParseKind(demoIndexKind)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), kind, demoStoreDir)
		},
	}
	cmd.Flags().StringVar(&demoIndexKind, "index", "linhash",
		"index strategy (none, ordered, hash, linhash)")
	cmd.Flags().StringVar(&demoStoreDir, "store", snapshot.DefaultDir,
		"snapshot directory")
	return cmd
}

func runDemo(w io.Writer, kind index.Kind, storeDir string) error {
	trace := color.New(color.FgCyan).FprintfFunc()

	trace(w, "DDL> create movie, studio, cinema\n")
	movie, err := relation.Parse("movie",
		"title year length studioName", "String Integer Integer String",
		"title", kind)
	if err != nil {
		return err
	}
	studio, err := relation.Parse("studio",
		"name presidentName", "String String",
		"name", kind)
	if err != nil {
		return err
	}
	cinema, err := relation.Parse("cinema",
		"title year length studioName", "String Integer Integer String",
		"title", kind)
	if err != nil {
		return err
	}

	insert := func(r *relation.Relation, fields ...types.Field) {
		if err := r.Insert(fields...); err != nil {
			fmt.Fprintf(w, "insert failed: %v\n", err)
		}
	}

	insert(movie, str("Star_Wars"), i64(1977), i64(124), str("Fox"))
	insert(movie, str("Star_Wars_2"), i64(1980), i64(124), str("Fox"))
	insert(movie, str("Rocky"), i64(1976), i64(119), str("MGM"))
	insert(movie, str("Rambo"), i64(1978), i64(100), str("Universal"))

	insert(studio, str("Fox"), str("George"))
	insert(studio, str("MGM"), str("Sylvester"))
	insert(studio, str("Paramount"), str("Sherry"))

	insert(cinema, str("Rambo"), i64(1978), i64(100), str("Universal"))
	insert(cinema, str("Galaxy_Quest"), i64(1999), i64(104), str("DreamWorks"))

	movie.Print(w)
	studio.Print(w)

	trace(w, "RA> movie.project(title year)\n")
	if p, err := movie.Project("title year"); err == nil {
		p.Print(w)
	} else {
		fmt.Fprintln(w, err)
	}

	trace(w, "RA> movie.select(year == 1977)\n")
	if s, err := movie.Select("year == 1977"); err == nil {
		s.Print(w)
	} else {
		fmt.Fprintln(w, err)
	}

	trace(w, "RA> movie.selectKey(Star_Wars)\n")
	if s, err := movie.SelectKey(index.NewCompositeKey(str("Star_Wars"))); err == nil {
		s.Print(w)
	} else {
		fmt.Fprintln(w, err)
	}

	trace(w, "RA> movie.union(cinema)\n")
	if u, err := movie.Union(cinema); err == nil {
		u.Print(w)
	} else {
		fmt.Fprintln(w, err)
	}

	trace(w, "RA> movie.minus(cinema)\n")
	if m, err := movie.Minus(cinema); err == nil {
		m.Print(w)
	} else {
		fmt.Fprintln(w, err)
	}

	trace(w, "RA> movie.join(studioName, name, studio)\n")
	if j, err := movie.Join("studioName", "name", studio); err == nil {
		j.Print(w)
	} else {
		fmt.Fprintln(w, err)
	}

	trace(w, "RA> movie.joinOn(studioName = name, studio)\n")
	if j, err := movie.JoinOn("studioName = name", studio); err == nil {
		j.Print(w)
	} else {
		fmt.Fprintln(w, err)
	}

	trace(w, "RA> movie.naturalJoin(cinema)\n")
	if j, err := movie.NaturalJoin(cinema); err == nil {
		j.Print(w)
	} else {
		fmt.Fprintln(w, err)
	}

	movie.PrintIndex(w)

	trace(w, "IO> save movie, load movie\n")
	store := snapshot.NewStore(storeDir)
	if err := store.Save(movie); err != nil {
		fmt.Fprintln(w, err)
		return nil
	}
	loaded, err := store.Load("movie", kind)
	if err != nil {
		fmt.Fprintln(w, err)
		return nil
	}
	loaded.Print(w)
	return nil
}

func str(s string) types.Field { return types.NewStringField(s) }
func i64(v int64) types.Field  { return types.NewIntField(v) }
