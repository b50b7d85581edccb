package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/go-sod/gesture/internal/database"
	"github.com/go-sod/gesture/internal/gesture"
	"github.com/go-sod/gesture/internal/predictor/knn"
	"github.com/go-sod/gesture/internal/reference"
	refDb "github.com/go-sod/gesture/internal/reference/database"
	"github.com/go-sod/gesture/internal/setup"
)

type classifyOptions struct {
	file     string
	db       string
	set      string
	k        int
	classes  int
	policy   string
	distance string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gesture",
		Short: "Classify 3-axis gesture samples against a labeled reference set",
		Long: `gesture votes live sensor samples against pre-recorded gesture points
with a k-nearest-neighbor classifier.

Examples:
  gesture classify --file ref.yaml --k 3 -- 1.0 -0.2 0.0
  gesture import --file ref.yaml --db gesture.db --set wrist
  gesture export --db gesture.db --set wrist --format toml
  gesture sets --db gesture.db`,
		SilenceUsage: true,
	}
	root.AddCommand(newClassifyCmd(), newImportCmd(), newExportCmd(), newSetsCmd())
	return root
}

func newClassifyCmd() *cobra.Command {
	opts := classifyOptions{}
	cmd := &cobra.Command{
		Use:   "classify [flags] -- readings...",
		Short: "Print class confidences for one sample",
		Long: `Print class confidences for one sample.

Readings follow "--" so that negative values are not parsed as flags:
  gesture classify --file ref.yaml --k 3 -- -0.4 1.2 0.0`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			readings := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("reading %d: %w", i, err)
				}
				readings[i] = v
			}
			return runClassify(cmd, opts, readings)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "reference file (json, yaml or toml)")
	cmd.Flags().StringVar(&opts.db, "db", "", "reference store, used when --file is empty")
	cmd.Flags().StringVar(&opts.set, "set", "default", "reference set name inside the store")
	cmd.Flags().IntVarP(&opts.k, "k", "k", knn.DefaultK, "number of neighbors")
	cmd.Flags().IntVar(&opts.classes, "classes", 0, "number of classes, 0 derives it from the reference set")
	cmd.Flags().StringVar(&opts.policy, "policy", string(knn.PolicyRescale), "policy when k exceeds the reference set: RESCALE or REJECT")
	cmd.Flags().StringVar(&opts.distance, "distance", string(knn.DistanceFuncTypeEuclidean), "EUCLIDEAN, MANHATTAN or CHEBYSHEV")
	return cmd
}

func runClassify(cmd *cobra.Command, opts classifyOptions, readings []float64) error {
	ctx := cmd.Context()
	var db *database.DB
	if opts.file == "" && opts.db != "" {
		opened, err := openDB(ctx, opts.db, true)
		if err != nil {
			return err
		}
		defer opened.Close(ctx)
		db = opened
	}
	set, err := setup.LoadReference(&reference.Config{File: opts.file, Set: opts.set}, db)
	if err != nil {
		return err
	}
	distFunc, err := knn.DistanceFuncFor(knn.DistanceFuncType(opts.distance))
	if err != nil {
		return err
	}
	classes := opts.classes
	if classes <= 0 {
		classes = set.Classes()
	}
	c, err := knn.New(
		set.Points,
		knn.WithK(opts.k),
		knn.WithClasses(classes),
		knn.WithPolicy(knn.InsufficientPolicy(opts.policy)),
		knn.WithDistance(distFunc),
	)
	if err != nil {
		return withHints(err)
	}
	confidences, err := c.Classify(readings)
	if err != nil {
		return withHints(err)
	}

	out := cmd.OutOrStdout()
	for i, v := range confidences {
		_, _ = fmt.Fprintf(out, "%d\t%s\t%.4f\n", i, gesture.LabelFor(set.Gestures, i), v)
	}
	top, score := gesture.Top(confidences)
	_, _ = fmt.Fprintf(out, "top: %s (%.4f)\n", gesture.LabelFor(set.Gestures, top), score)
	return nil
}

func newImportCmd() *cobra.Command {
	var file, dbFile, set string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store a reference file as a named set, replacing any previous content",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loaded, err := reference.LoadFile(file)
			if err != nil {
				return err
			}
			if set != "" {
				loaded.Name = set
			}
			db, err := openDB(ctx, dbFile, false)
			if err != nil {
				return err
			}
			defer db.Close(ctx)
			if err := refDb.New(db).StoreSet(ctx, loaded); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d points into %s\n", len(loaded.Points), loaded.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "reference file (json, yaml or toml)")
	cmd.Flags().StringVar(&dbFile, "db", "gesture.db", "reference store")
	cmd.Flags().StringVar(&set, "set", "", "set name, defaults to the file name")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newExportCmd() *cobra.Command {
	var dbFile, set, format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a stored reference set",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDB(ctx, dbFile, true)
			if err != nil {
				return err
			}
			defer db.Close(ctx)
			loaded, err := refDb.New(db).LoadSet(set)
			if err != nil {
				return err
			}
			return reference.Encode(cmd.OutOrStdout(), reference.Format(format), loaded)
		},
	}
	cmd.Flags().StringVar(&dbFile, "db", "gesture.db", "reference store")
	cmd.Flags().StringVar(&set, "set", "default", "set name")
	cmd.Flags().StringVar(&format, "format", string(reference.FormatYAML), "json, yaml or toml")
	return cmd
}

func newSetsCmd() *cobra.Command {
	var dbFile string
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List stored reference sets with their sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDB(ctx, dbFile, true)
			if err != nil {
				return err
			}
			defer db.Close(ctx)
			store := refDb.New(db)
			sets, err := store.Sets()
			if err != nil {
				return err
			}
			for _, s := range sets {
				n, err := store.CountBySet(s)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", s, n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbFile, "db", "gesture.db", "reference store")
	return cmd
}

func openDB(ctx context.Context, file string, readOnly bool) (*database.DB, error) {
	return database.NewFromEnv(ctx, &database.Config{FileName: file, ReadOnly: readOnly, Timeout: time.Second})
}

func withHints(err error) error {
	if hints := errors.FlattenHints(err); hints != "" {
		return fmt.Errorf("%w (hint: %s)", err, hints)
	}
	return err
}
