package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"ned-extinction-service/internal/adapters/ned"
	"ned-extinction-service/internal/domain"
	"ned-extinction-service/internal/services"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	baseURL        string
	timeoutSeconds int
	coordSystem    string
	equinox        string
	obsEpoch       string
	filters        []string
	raArg          string
	decArg         string
)

var rootCmd = &cobra.Command{
	Use:   "nedcalc",
	Short: "Galactic dust extinction lookups against the NED calculator",
	Long: `Queries the NED Galactic Reddening and Extinction Calculator for dust
extinction values (Schlafly & Finkbeiner 2011) at given sky coordinates.`,
}

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Look up extinctions for a single position",
	Long: `Look up extinction values for one sky position. Coordinates may be
decimal degrees or any format NED accepts (e.g. "12h03m45s").`,
	RunE: runPoint,
}

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Look up extinctions for a file of positions",
	Long: `Reads a two-column whitespace-separated file of ra/dec pairs and prints
one extinction value per line. Positions are queried sequentially.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Override the calculator endpoint")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 30, "HTTP timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&coordSystem, "coord-system", "Equatorial", "Input coordinate system (Equatorial, Galactic, Ecliptic, Supergalactic)")
	rootCmd.PersistentFlags().StringVar(&equinox, "equinox", "J2000.0", "Input equinox (J2000.0 or B1950.0)")
	rootCmd.PersistentFlags().StringVar(&obsEpoch, "obs-epoch", "2000", "Observation epoch")
	rootCmd.PersistentFlags().StringSliceVarP(&filters, "filter", "f", []string{"SDSS g"}, "Filter name to resolve (repeatable)")

	pointCmd.Flags().StringVar(&raArg, "ra", "", "Right ascension or longitude")
	pointCmd.Flags().StringVar(&decArg, "dec", "", "Declination or latitude")

	rootCmd.AddCommand(pointCmd, batchCmd)
}

func main() {
	if err := godotenv.Load(); err == nil {
		if baseURL == "" {
			baseURL = os.Getenv("NED_BASE_URL")
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newProvider() *ned.Calculator {
	opts := []ned.Option{ned.WithTimeout(time.Duration(timeoutSeconds) * time.Second)}
	if baseURL != "" {
		opts = append(opts, ned.WithBaseURL(baseURL))
	}
	return ned.NewCalculator(opts...)
}

func frame() domain.Frame {
	return domain.Frame{System: coordSystem, Equinox: equinox, ObsEpoch: obsEpoch}
}

func runPoint(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(raArg) == "" || strings.TrimSpace(decArg) == "" {
		return fmt.Errorf("point requires --ra and --dec")
	}

	req := services.Request{
		RA:      domain.ParseCoordinate(raArg),
		Dec:     domain.ParseCoordinate(decArg),
		Filters: filters,
		Frame:   frame(),
	}

	result, err := services.RequestExtinctions(context.Background(), req, newProvider())
	if err != nil {
		return fmt.Errorf("look up %s %s: %w", raArg, decArg, err)
	}

	logWarnings(result.Warnings)
	for i, f := range result.Filters {
		fmt.Printf("%s\t%s\n", f, formatValue(result.Values[i]))
	}

	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open coordinate file: %w", err)
	}
	defer f.Close()

	provider := newProvider()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected two columns (ra dec), got %d", lineNo, len(fields))
		}

		req := services.Request{
			RA:      domain.ParseCoordinate(fields[0]),
			Dec:     domain.ParseCoordinate(fields[1]),
			Filters: filters,
			Frame:   frame(),
		}

		result, err := services.RequestExtinctions(context.Background(), req, provider)
		if err != nil {
			return fmt.Errorf("line %d (%s %s): %w", lineNo, fields[0], fields[1], err)
		}

		logWarnings(result.Warnings)

		out := make([]string, 0, len(result.Values))
		for _, v := range result.Values {
			out = append(out, formatValue(v))
		}
		fmt.Printf("%s\t%s\t%s\n", fields[0], fields[1], strings.Join(out, "\t"))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read coordinate file: %w", err)
	}

	return nil
}

func formatValue(v domain.Value) string {
	if !v.OK {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", v.Magnitude)
}

func logWarnings(warnings []domain.Warning) {
	for _, w := range warnings {
		log.Printf("warning filter=%q kind=%s msg=%q", w.Filter, w.Kind, w.Message)
	}
}
