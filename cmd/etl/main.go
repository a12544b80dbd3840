// Command etl runs the dataset pipeline stages: normalizing raw scrape
// files per country, combining the per-country outputs, computing potential
// park/farm matches, and publishing artifacts to blob storage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ombaa/ombaa/internal/config"
	"github.com/ombaa/ombaa/internal/etl/dataset"
	"github.com/ombaa/ombaa/internal/etl/geomatch"
	"github.com/ombaa/ombaa/internal/etl/normalize"
	"github.com/ombaa/ombaa/internal/etl/regions"
	"github.com/ombaa/ombaa/pkg/storage"
)

const usage = `usage: etl <command> [flags]

commands:
  process   normalize one country's raw scrape file
  combine   merge per-country normalized files
  match     compute potential park/farm matches
  publish   upload a dataset artifact to blob storage
`

func main() {
	godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("system", "etl")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "process":
		err = runProcess(logger, os.Args[2:])
	case "combine":
		err = runCombine(logger, os.Args[2:])
	case "match":
		err = runMatch(logger, os.Args[2:])
	case "publish":
		err = runPublish(logger, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func runProcess(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	kind := fs.String("kind", "sites", "Record kind: sites or farms")
	country := fs.String("country", "", "Country code (NL, UK, FR, DE, BE)")
	in := fs.String("in", "", "Raw scrape JSON file")
	out := fs.String("out", "", "Normalized output JSON file")
	fs.Parse(args)

	if *country == "" || *in == "" || *out == "" {
		return fmt.Errorf("process requires -country, -in, and -out")
	}
	code := strings.ToUpper(*country)

	records, err := dataset.Load[normalize.RawPlace](*in)
	if err != nil {
		return err
	}

	resolver := regions.NewResolver(regions.DefaultTables())

	var count int
	switch *kind {
	case "sites":
		profile, ok := normalize.SiteProfiles()[code]
		if !ok {
			return fmt.Errorf("no site profile for country %s", code)
		}
		sites := normalize.Sites(records, profile, resolver)
		if err := dataset.Write(*out, sites); err != nil {
			return err
		}
		count = len(sites)

	case "farms":
		profile, ok := normalize.FarmProfiles()[code]
		if !ok {
			return fmt.Errorf("no farm profile for country %s", code)
		}
		farms := normalize.Farms(records, profile, resolver)
		if err := dataset.Write(*out, farms); err != nil {
			return err
		}
		count = len(farms)

	default:
		return fmt.Errorf("unknown kind %q", *kind)
	}

	logger.Info(
		"country processed",
		"kind", *kind,
		"country", code,
		"raw", len(records),
		"normalized", count,
		"out", *out,
	)
	return nil
}

// countryFiles builds the combine inputs from the directory convention
// <dir>/<prefix>_<cc>.json in fixed country order.
func countryFiles(dir, prefix string) []dataset.CountryFile {
	inputs := make([]dataset.CountryFile, 0, len(normalize.CountryOrder))
	for _, code := range normalize.CountryOrder {
		name := fmt.Sprintf("%s_%s.json", prefix, strings.ToLower(code))
		inputs = append(inputs, dataset.CountryFile{
			Country: code,
			Path:    filepath.Join(dir, name),
		})
	}
	return inputs
}

func runCombine(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("combine", flag.ExitOnError)
	kind := fs.String("kind", "sites", "Record kind: sites or farms")
	dir := fs.String("dir", ".", "Directory holding per-country normalized files")
	out := fs.String("out", "", "Combined output JSON file")
	fs.Parse(args)

	if *out == "" {
		return fmt.Errorf("combine requires -out")
	}

	var (
		counts map[string]int
		total  int
	)
	switch *kind {
	case "sites":
		combined, err := dataset.Sites(countryFiles(*dir, "solar_sites"))
		if err != nil {
			return err
		}
		if err := dataset.Write(*out, combined.Records); err != nil {
			return err
		}
		counts, total = combined.Counts, combined.Total()

	case "farms":
		combined, err := dataset.Farms(countryFiles(*dir, "sheep_farms"))
		if err != nil {
			return err
		}
		if err := dataset.Write(*out, combined.Records); err != nil {
			return err
		}
		counts, total = combined.Counts, combined.Total()

	default:
		return fmt.Errorf("unknown kind %q", *kind)
	}

	logger.Info("datasets combined", "kind", *kind, "total", total, "out", *out)
	for _, code := range normalize.CountryOrder {
		logger.Info("country count", "country", code, "records", counts[code])
	}
	return nil
}

func runMatch(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	sitesPath := fs.String("sites", "", "Combined solar sites JSON file")
	farmsPath := fs.String("farms", "", "Combined sheep farms JSON file")
	out := fs.String("out", "", "Matches output JSON file")
	maxDistance := fs.Float64("max-distance", geomatch.DefaultMaxDistanceKm, "Maximum match distance in km")
	fs.Parse(args)

	if *sitesPath == "" || *farmsPath == "" || *out == "" {
		return fmt.Errorf("match requires -sites, -farms, and -out")
	}

	sites, err := dataset.Load[normalize.Site](*sitesPath)
	if err != nil {
		return err
	}
	farms, err := dataset.Load[normalize.Farm](*farmsPath)
	if err != nil {
		return err
	}

	matches := geomatch.FindPotentialMatches(sites, farms, *maxDistance)
	if err := dataset.Write(*out, matches); err != nil {
		return err
	}

	logger.Info(
		"matches computed",
		"sites", len(sites),
		"farms", len(farms),
		"matched_parks", len(matches),
		"out", *out,
	)
	return nil
}

func runPublish(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	in := fs.String("in", "", "Artifact file to upload")
	key := fs.String("key", "", "Blob key (defaults to datasets/<filename>)")
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("publish requires -in")
	}
	if *key == "" {
		*key = "datasets/" + filepath.Base(*in)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("storage init: %w", err)
	}

	file, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("open %s: %w", *in, err)
	}
	defer file.Close()

	if err := store.Upload(context.Background(), *key, file, "application/json"); err != nil {
		return fmt.Errorf("upload %s: %w", *key, err)
	}

	logger.Info("artifact published", "key", *key)
	return nil
}
