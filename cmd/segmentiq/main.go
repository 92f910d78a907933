// SegmentIQ CLI - Customer Segmentation & Revenue Projection
//
// Usage:
//   segmentiq segment --input customers.csv --features purchases,distance,income
//   segmentiq elbow --input customers.csv --features purchases,distance,income --k-max 8
//   segmentiq train --input customers.csv --demographics demographics.csv --categorical gender,region
//   segmentiq pipeline --input customers.csv --demographics demographics.csv --prospects prospects.csv
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"segment-iq/db/clickhouse"
	"segment-iq/internal/classify"
	"segment-iq/internal/cluster"
	"segment-iq/internal/dataset"
	"segment-iq/internal/features"
	"segment-iq/internal/revenue"
	"segment-iq/pkg/api"
	"segment-iq/pkg/platform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	platform.InitLogger()

	app := &cli.App{
		Name:    "segmentiq",
		Usage:   "Customer Segmentation & Revenue Projection - K-means segments, classified prospects, projected revenue",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"SEGMENTIQ_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "clickhouse-host",
				Value:   "localhost",
				Usage:   "ClickHouse host",
				EnvVars: []string{"CLICKHOUSE_HOST"},
			},
			&cli.IntFlag{
				Name:    "clickhouse-port",
				Value:   9000,
				Usage:   "ClickHouse native port",
				EnvVars: []string{"CLICKHOUSE_PORT"},
			},
			&cli.StringFlag{
				Name:    "clickhouse-database",
				Value:   "segmentiq",
				Usage:   "ClickHouse database",
				EnvVars: []string{"CLICKHOUSE_DATABASE"},
			},
			&cli.StringFlag{
				Name:    "clickhouse-user",
				Value:   "default",
				Usage:   "ClickHouse user",
				EnvVars: []string{"CLICKHOUSE_USER"},
			},
			&cli.StringFlag{
				Name:    "clickhouse-password",
				Value:   "",
				Usage:   "ClickHouse password",
				EnvVars: []string{"CLICKHOUSE_PASSWORD"},
			},
		},

		Commands: []*cli.Command{
			segmentCommand(),
			elbowCommand(),
			trainCommand(),
			scoreCommand(),
			pipelineCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// SHARED FLAGS
// =============================================================================

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    "Customer dataset (CSV path, http(s):// URL, or mysql:// DSN)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "mysql-table",
			Usage: "Source table when --input is a mysql:// DSN",
		},
		&cli.StringFlag{
			Name:  "key",
			Value: "customer_id",
			Usage: "Identifier column",
		},
		&cli.StringFlag{
			Name:     "features",
			Aliases:  []string{"F"},
			Usage:    "Comma-separated numeric feature columns for clustering",
			Required: true,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Value:   42,
			Usage:   "Seed for centroid initialization",
			EnvVars: []string{"SEGMENTIQ_SEED"},
		},
	}
}

func trainFlags() []cli.Flag {
	return append(inputFlags(),
		&cli.IntFlag{
			Name:    "k",
			Value:   3,
			Usage:   "Number of segments",
			EnvVars: []string{"SEGMENTIQ_K"},
		},
		&cli.StringFlag{
			Name:     "demographics",
			Aliases:  []string{"d"},
			Usage:    "Demographic attributes CSV (joined on the key column)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "categorical",
			Usage: "Comma-separated categorical demographic columns",
		},
		&cli.StringFlag{
			Name:  "numeric",
			Usage: "Comma-separated numeric demographic columns",
		},
		&cli.StringFlag{
			Name:  "revenue",
			Value: "revenue",
			Usage: "Historical revenue column on the input dataset",
		},
		&cli.Float64Flag{
			Name:  "test-fraction",
			Value: 0.3,
			Usage: "Held-out fraction for evaluation",
		},
		&cli.Int64Flag{
			Name:  "split-seed",
			Value: 101,
			Usage: "Seed for the train/test split",
		},
		&cli.BoolFlag{
			Name:  "zero-fill",
			Usage: "Encode unseen categories as all zeros instead of failing",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "table",
			Usage:   "Output format (table, json)",
		},
	)
}

// =============================================================================
// SEGMENT COMMAND
// =============================================================================

func segmentCommand() *cli.Command {
	return &cli.Command{
		Name:  "segment",
		Usage: "Cluster customers into segments and profile them",
		Flags: append(inputFlags(),
			&cli.IntFlag{
				Name:    "k",
				Value:   3,
				Usage:   "Number of segments",
				EnvVars: []string{"SEGMENTIQ_K"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
			&cli.BoolFlag{
				Name:  "store",
				Usage: "Persist the run and assignments to ClickHouse",
			},
		),
		Action: runSegment,
	}
}

func runSegment(c *cli.Context) error {
	ctx := context.Background()

	seg, err := segmentInput(c)
	if err != nil {
		return err
	}

	fields := splitFields(c.String("features"))
	profiles, err := cluster.Profile(seg.table, seg.km.Labels, fields)
	if err != nil {
		return fmt.Errorf("failed to profile segments: %w", err)
	}

	result := &api.SegmentationResult{
		K:         seg.km.K,
		Seed:      seg.km.Seed,
		Labels:    seg.km.Labels,
		Centroids: seg.km.Centroids,
		Inertia:   seg.km.Inertia,
		Profiles:  profiles,
	}

	if c.Bool("store") {
		if err := persistRun(ctx, c, seg, nil); err != nil {
			return fmt.Errorf("failed to persist run: %w", err)
		}
	}

	if c.String("format") == "json" {
		return outputJSON(result)
	}
	printProfiles(profiles, fields)
	fmt.Printf("\nInertia: %.4f\n", seg.km.Inertia)
	return nil
}

// =============================================================================
// ELBOW COMMAND
// =============================================================================

func elbowCommand() *cli.Command {
	return &cli.Command{
		Name:  "elbow",
		Usage: "Sweep inertia over a K range to support choosing K",
		Flags: append(inputFlags(),
			&cli.IntFlag{
				Name:  "k-min",
				Value: 1,
				Usage: "Lowest K to try",
			},
			&cli.IntFlag{
				Name:  "k-max",
				Value: 8,
				Usage: "Highest K to try",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		),
		Action: runElbow,
	}
}

func runElbow(c *cli.Context) error {
	table, err := loadInput(context.Background(), c, featureSchema(c))
	if err != nil {
		return err
	}

	fields := splitFields(c.String("features"))
	X, err := features.Select(table, fields)
	if err != nil {
		return fmt.Errorf("failed to select features: %w", err)
	}
	scaled, err := features.NewStandardScaler().FitTransform(X)
	if err != nil {
		return fmt.Errorf("failed to standardize features: %w", err)
	}

	points, err := cluster.Elbow(scaled, c.Int("k-min"), c.Int("k-max"), c.Int64("seed"))
	if err != nil {
		return fmt.Errorf("elbow sweep failed: %w", err)
	}

	if c.String("format") == "json" {
		return outputJSON(points)
	}
	fmt.Printf("%-4s %s\n", "K", "INERTIA")
	for _, p := range points {
		fmt.Printf("%-4d %.4f\n", p.K, p.Inertia)
	}
	return nil
}

// =============================================================================
// TRAIN COMMAND
// =============================================================================

func trainCommand() *cli.Command {
	return &cli.Command{
		Name:   "train",
		Usage:  "Segment customers, fit the demographic classifier, and evaluate it",
		Flags:  trainFlags(),
		Action: runTrain,
	}
}

func runTrain(c *cli.Context) error {
	art, err := trainModel(c)
	if err != nil {
		return err
	}

	if c.String("format") == "json" {
		return outputJSON(art.training)
	}
	printEvaluation(art.training)
	return nil
}

// =============================================================================
// SCORE COMMAND
// =============================================================================

func scoreCommand() *cli.Command {
	return &cli.Command{
		Name:  "score",
		Usage: "Train in-process, score a prospect batch, and project revenue",
		Flags: append(trainFlags(),
			&cli.StringFlag{
				Name:     "prospects",
				Aliases:  []string{"p"},
				Usage:    "Prospect CSV (key plus demographic columns, no segment)",
				Required: true,
			},
		),
		Action: runScore,
	}
}

func runScore(c *cli.Context) error {
	art, err := trainModel(c)
	if err != nil {
		return err
	}

	prospects, err := dataset.Load(c.String("prospects"), demographicSchema(c))
	if err != nil {
		return fmt.Errorf("failed to load prospects: %w", err)
	}
	fmt.Fprintf(os.Stderr, "🔮 Scoring %d prospects\n", prospects.Rows())

	predictor := &classify.Predictor{
		Encoder:      art.encoder,
		Model:        art.model,
		ShowProgress: true,
	}
	predicted, err := predictor.Score(prospects)
	if err != nil {
		return fmt.Errorf("failed to score prospects: %w", err)
	}

	projection, err := revenue.Estimate(art.profits, predicted)
	if err != nil {
		return fmt.Errorf("failed to estimate revenue: %w", err)
	}

	if c.String("format") == "json" {
		return outputJSON(struct {
			Scoring api.ScoringResult  `json:"scoring"`
			Revenue *api.RevenueResult `json:"revenue"`
		}{api.ScoringResult{Prospects: len(predicted), Segments: predicted}, projection})
	}

	keys, err := prospects.Strings(c.String("key"))
	if err != nil {
		return err
	}
	fmt.Printf("\n%-16s %s\n", "PROSPECT", "SEGMENT")
	for i, segID := range predicted {
		fmt.Printf("%-16s %d\n", keys[i], segID)
	}
	printRevenue(projection)
	return nil
}

// =============================================================================
// PIPELINE COMMAND
// =============================================================================

func pipelineCommand() *cli.Command {
	return &cli.Command{
		Name:  "pipeline",
		Usage: "Full run: segment, train, score prospects, project revenue",
		Flags: append(trainFlags(),
			&cli.StringFlag{
				Name:     "prospects",
				Aliases:  []string{"p"},
				Usage:    "Prospect CSV (key plus demographic columns, no segment)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "store",
				Usage: "Persist the run, assignments, and profiles to ClickHouse",
			},
		),
		Action: runPipeline,
	}
}

func runPipeline(c *cli.Context) error {
	ctx := context.Background()

	art, err := trainModel(c)
	if err != nil {
		return err
	}

	prospects, err := dataset.Load(c.String("prospects"), demographicSchema(c))
	if err != nil {
		return fmt.Errorf("failed to load prospects: %w", err)
	}
	fmt.Fprintf(os.Stderr, "🔮 Scoring %d prospects\n", prospects.Rows())

	predictor := &classify.Predictor{
		Encoder:      art.encoder,
		Model:        art.model,
		ShowProgress: true,
	}
	predicted, err := predictor.Score(prospects)
	if err != nil {
		return fmt.Errorf("failed to score prospects: %w", err)
	}

	projection, err := revenue.Estimate(art.profits, predicted)
	if err != nil {
		return fmt.Errorf("failed to estimate revenue: %w", err)
	}

	if c.Bool("store") {
		if err := persistRun(ctx, c, art.seg, art); err != nil {
			return fmt.Errorf("failed to persist run: %w", err)
		}
	}

	if c.String("format") == "json" {
		return outputJSON(struct {
			Training api.TrainingResult `json:"training"`
			Scoring  api.ScoringResult  `json:"scoring"`
			Revenue  *api.RevenueResult `json:"revenue"`
		}{art.training, api.ScoringResult{Prospects: len(predicted), Segments: predicted}, projection})
	}

	printEvaluation(art.training)
	printRevenue(projection)
	return nil
}

// =============================================================================
// PIPELINE STAGES
// =============================================================================

type segmentation struct {
	table  *dataset.Table
	scaler *features.StandardScaler
	km     *cluster.KMeans
}

// segmentInput loads the customer dataset, null-checks the feature columns,
// standardizes them, and fits K-means.
func segmentInput(c *cli.Context) (*segmentation, error) {
	table, err := loadInput(context.Background(), c, featureSchema(c))
	if err != nil {
		return nil, err
	}

	fields := splitFields(c.String("features"))
	report, err := table.NullReport(fields)
	if err != nil {
		return nil, err
	}
	for f, n := range report {
		if n > 0 {
			fmt.Fprintf(os.Stderr, "⚠️  Column %s has %d null values\n", f, n)
		}
	}

	X, err := features.Select(table, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to select features: %w", err)
	}
	scaler := features.NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		return nil, fmt.Errorf("failed to standardize features: %w", err)
	}

	km := cluster.NewKMeans(c.Int("k"), c.Int64("seed"))
	if err := km.Fit(scaled); err != nil {
		return nil, fmt.Errorf("clustering failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "📊 Segmented %d customers into %d clusters (inertia %.2f)\n",
		table.Rows(), km.K, km.Inertia)

	return &segmentation{table: table, scaler: scaler, km: km}, nil
}

type artifacts struct {
	seg      *segmentation
	encoder  *classify.Encoder
	model    *classify.Logistic
	training api.TrainingResult
	profits  revenue.ProfitabilityTable
}

// trainModel runs segmentation, joins demographics, fits the encoder and
// classifier on the train split, and evaluates on the held-out split.
func trainModel(c *cli.Context) (*artifacts, error) {
	seg, err := segmentInput(c)
	if err != nil {
		return nil, err
	}

	labels := make([]int64, len(seg.km.Labels))
	for i, s := range seg.km.Labels {
		labels[i] = int64(s)
	}
	if err := seg.table.AddIntColumn("segment", labels); err != nil {
		return nil, err
	}

	profits, err := revenue.BuildProfitability(seg.table, "segment", c.String("revenue"))
	if err != nil {
		return nil, fmt.Errorf("failed to build profitability table: %w", err)
	}

	demo, err := dataset.Load(c.String("demographics"), demographicSchema(c))
	if err != nil {
		return nil, fmt.Errorf("failed to load demographics: %w", err)
	}
	joined, err := dataset.LeftJoin(seg.table, demo, c.String("key"))
	if err != nil {
		return nil, fmt.Errorf("failed to join demographics: %w", err)
	}
	fmt.Fprintf(os.Stderr, "🔗 Joined demographics onto %d customers\n", joined.Rows())

	specs := fieldSpecs(c)
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	if err := joined.RequireComplete(names); err != nil {
		return nil, fmt.Errorf("demographics incomplete after join: %w", err)
	}

	train, test, err := classify.Split(joined.Rows(), c.Float64("test-fraction"), c.Int64("split-seed"))
	if err != nil {
		return nil, err
	}

	encoder := classify.NewEncoder(specs)
	encoder.ZeroFill = c.Bool("zero-fill")
	if err := encoder.Fit(joined, train); err != nil {
		return nil, fmt.Errorf("failed to fit encoder: %w", err)
	}

	segments, err := joined.Ints("segment")
	if err != nil {
		return nil, err
	}
	trainX, err := encoder.Transform(joined, train)
	if err != nil {
		return nil, fmt.Errorf("failed to encode training rows: %w", err)
	}
	trainY := make([]int, len(train))
	for i, r := range train {
		trainY[i] = int(segments[r])
	}

	model := classify.NewLogistic()
	if err := model.Fit(trainX, trainY); err != nil {
		return nil, fmt.Errorf("failed to fit classifier: %w", err)
	}
	fmt.Fprintf(os.Stderr, "🧠 Trained classifier on %d rows (%d encoded features)\n",
		len(train), encoder.Width())

	testX, err := encoder.Transform(joined, test)
	if err != nil {
		return nil, fmt.Errorf("failed to encode test rows: %w", err)
	}
	predicted, err := model.Predict(testX)
	if err != nil {
		return nil, fmt.Errorf("failed to predict test rows: %w", err)
	}
	testY := make([]int, len(test))
	for i, r := range test {
		testY[i] = int(segments[r])
	}
	evaluation, err := classify.Evaluate(testY, predicted)
	if err != nil {
		return nil, err
	}

	return &artifacts{
		seg:     seg,
		encoder: encoder,
		model:   model,
		profits: profits,
		training: api.TrainingResult{
			TrainRows:    len(train),
			TestRows:     len(test),
			Features:     encoder.Width(),
			Classes:      model.Classes(),
			Evaluation:   evaluation,
			SplitSeed:    c.Int64("split-seed"),
			TestFraction: c.Float64("test-fraction"),
		},
	}, nil
}

// =============================================================================
// DATASET LOADING
// =============================================================================

func loadInput(ctx context.Context, c *cli.Context, schema dataset.Schema) (*dataset.Table, error) {
	input := c.String("input")
	switch {
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		t, err := dataset.LoadURL(input, schema)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
		return t, nil
	case strings.HasPrefix(input, "mysql://"), strings.HasPrefix(input, "mariadb://"):
		tableName := c.String("mysql-table")
		if tableName == "" {
			return nil, fmt.Errorf("--mysql-table is required with a database DSN")
		}
		db, err := dataset.OpenMySQL(input)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		t, err := dataset.LoadMySQL(ctx, db, tableName, schema)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
		return t, nil
	default:
		t, err := dataset.Load(input, schema)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
		return t, nil
	}
}

// featureSchema declares the customer dataset: key, clustering features, and
// (for training commands) the revenue column.
func featureSchema(c *cli.Context) dataset.Schema {
	schema := dataset.Schema{{Name: c.String("key"), Kind: dataset.KindString}}
	for _, f := range splitFields(c.String("features")) {
		schema = append(schema, dataset.Column{Name: f, Kind: dataset.KindFloat})
	}
	// The revenue flag only exists on training commands; segment and elbow
	// see an empty value and skip the column.
	if rev := c.String("revenue"); rev != "" {
		schema = append(schema, dataset.Column{Name: rev, Kind: dataset.KindFloat})
	}
	return schema
}

// demographicSchema declares a demographic or prospect dataset: key plus
// categorical and numeric attribute columns.
func demographicSchema(c *cli.Context) dataset.Schema {
	schema := dataset.Schema{{Name: c.String("key"), Kind: dataset.KindString}}
	for _, f := range splitFields(c.String("categorical")) {
		schema = append(schema, dataset.Column{Name: f, Kind: dataset.KindString})
	}
	for _, f := range splitFields(c.String("numeric")) {
		schema = append(schema, dataset.Column{Name: f, Kind: dataset.KindFloat})
	}
	return schema
}

func fieldSpecs(c *cli.Context) []classify.FieldSpec {
	var specs []classify.FieldSpec
	for _, f := range splitFields(c.String("categorical")) {
		specs = append(specs, classify.FieldSpec{Name: f, Categorical: true})
	}
	for _, f := range splitFields(c.String("numeric")) {
		specs = append(specs, classify.FieldSpec{Name: f})
	}
	return specs
}

func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func persistRun(ctx context.Context, c *cli.Context, seg *segmentation, art *artifacts) error {
	store, err := clickhouse.NewStore(&clickhouse.Config{
		Host:     c.String("clickhouse-host"),
		Port:     c.Int("clickhouse-port"),
		Database: c.String("clickhouse-database"),
		Username: c.String("clickhouse-user"),
		Password: c.String("clickhouse-password"),
	})
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	run := &clickhouse.AnalysisRun{
		ID:        uuid.New(),
		Dataset:   c.String("input"),
		K:         int32(seg.km.K),
		Seed:      seg.km.Seed,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.SaveRun(ctx, run); err != nil {
		return err
	}

	keys, err := seg.table.Strings(c.String("key"))
	if err != nil {
		return err
	}
	assignments := make([]clickhouse.Assignment, len(seg.km.Labels))
	for i, label := range seg.km.Labels {
		assignments[i] = clickhouse.Assignment{
			RunID:     run.ID,
			RecordKey: keys[i],
			Segment:   int32(label),
		}
	}
	if err := store.SaveAssignments(ctx, assignments); err != nil {
		return err
	}

	if art != nil {
		profiles := make([]clickhouse.ProfileRow, 0, len(art.profits))
		for segID, profit := range art.profits {
			profiles = append(profiles, clickhouse.ProfileRow{
				RunID:      run.ID,
				Segment:    int32(segID),
				Customers:  int32(profit.Customers),
				AvgRevenue: profit.AvgRevenue,
			})
		}
		if err := store.SaveProfiles(ctx, profiles); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "💾 Persisted run %s\n", run.ID)
	return nil
}

// =============================================================================
// OUTPUT FORMATTERS
// =============================================================================

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printProfiles(profiles []api.SegmentProfile, fields []string) {
	fmt.Printf("\n%-8s %-10s", "SEGMENT", "CUSTOMERS")
	for _, f := range fields {
		fmt.Printf(" %-14s", strings.ToUpper(f))
	}
	fmt.Println()
	for _, p := range profiles {
		fmt.Printf("%-8d %-10d", p.Segment, p.Customers)
		for _, f := range fields {
			fmt.Printf(" %-14.4f", p.FieldMeans[f])
		}
		fmt.Println()
	}
}

func printEvaluation(tr api.TrainingResult) {
	ev := tr.Evaluation
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                 🧠 CLASSIFIER EVALUATION                      ║")
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  Train rows:            %-37d ║\n", tr.TrainRows)
	fmt.Printf("║  Test rows:             %-37d ║\n", tr.TestRows)
	fmt.Printf("║  Encoded features:      %-37d ║\n", tr.Features)
	fmt.Printf("║  Accuracy:              %-37s ║\n", fmt.Sprintf("%.1f%%", ev.Accuracy*100))
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")

	fmt.Println("\nConfusion matrix (rows = true segment, cols = predicted):")
	fmt.Printf("%8s", "")
	for _, class := range ev.Classes {
		fmt.Printf("%8d", class)
	}
	fmt.Println()
	for i, class := range ev.Classes {
		fmt.Printf("%8d", class)
		for j := range ev.Classes {
			fmt.Printf("%8d", ev.Matrix[i][j])
		}
		fmt.Println()
	}
}

func printRevenue(r *api.RevenueResult) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                 💰 REVENUE PROJECTION                         ║")
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  Prospects scored:      %-37d ║\n", r.Prospects)
	fmt.Printf("║  Estimated revenue:     $%-36s ║\n", r.Total.StringFixed(2))
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")

	fmt.Printf("\n%-8s %-10s %-14s %s\n", "SEGMENT", "PROSPECTS", "AVG REVENUE", "SUBTOTAL")
	for _, s := range r.BySegment {
		fmt.Printf("%-8d %-10d %-14s %s\n",
			s.Segment, s.Prospects, s.AvgRevenue.StringFixed(2), s.Subtotal.StringFixed(2))
	}
}
