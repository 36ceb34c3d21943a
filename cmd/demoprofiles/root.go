package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/tailcircle-api/internal/demo"
)

type options struct {
	region  string
	state   string
	county  string
	lat     float64
	lng     float64
	count   int
	format  string
	catalog string
	at      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "demoprofiles",
		Short: "Print demo dog profiles for a region",
		Long: `Print the demo dog profiles served for a region when no live profiles exist.

Examples:
  # By region key
  demoprofiles --region "ca|los angeles county"

  # Derive the key from a location
  demoprofiles --state CA --county "Los Angeles County" --count 5

  # JSON output with a pinned clock
  demoprofiles --lat 34.05 --lng -118.24 --format json --at 2025-06-01T12:00:00Z`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.region, "region", "", "Region key (overrides --state/--county/--lat/--lng)")
	f.StringVar(&opts.state, "state", "", "State of the viewer")
	f.StringVar(&opts.county, "county", "", "County of the viewer")
	f.Float64Var(&opts.lat, "lat", 0, "Latitude of the viewer")
	f.Float64Var(&opts.lng, "lng", 0, "Longitude of the viewer")
	f.IntVar(&opts.count, "count", 10, "Number of profiles")
	f.StringVar(&opts.format, "format", "text", "Output format: text or json")
	f.StringVar(&opts.catalog, "catalog", "", "Path to a photo catalog YAML file (default: embedded catalog)")
	f.StringVar(&opts.at, "at", "", "RFC 3339 time used as the clock reading (default: now)")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.count < 0 {
		return errors.New("--count must not be negative")
	}
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q: use text or json", opts.format)
	}

	catalog := demo.DefaultCatalog()
	if opts.catalog != "" {
		data, err := os.ReadFile(opts.catalog)
		if err != nil {
			return fmt.Errorf("failed to read catalog: %w", err)
		}
		if catalog, err = demo.LoadCatalog(data); err != nil {
			return err
		}
	}

	var now func() time.Time
	if opts.at != "" {
		at, err := time.Parse(time.RFC3339, opts.at)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
		now = func() time.Time { return at }
	}

	regionKey := opts.region
	if regionKey == "" {
		loc := demo.Location{State: opts.state, County: opts.county}
		flags := cmd.Flags()
		if flags.Changed("lat") && flags.Changed("lng") {
			loc.Lat, loc.Lng = &opts.lat, &opts.lng
		}
		regionKey = demo.RegionKeyFor(loc)
	}

	profiles := demo.NewGenerator(catalog, now).ProfilesForRegion(regionKey, opts.count)
	out := cmd.OutOrStdout()
	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			RegionKey string         `json:"region_key"`
			Seed      uint32         `json:"seed"`
			Profiles  []demo.Profile `json:"profiles"`
		}{regionKey, demo.HashStringToInt(regionKey), profiles})
	}
	return writeText(out, regionKey, profiles)
}

func writeText(w io.Writer, regionKey string, profiles []demo.Profile) error {
	if _, err := fmt.Fprintf(w, "Region %q (seed %d): %d profiles\n\n", regionKey, demo.HashStringToInt(regionKey), len(profiles)); err != nil {
		return err
	}
	for i, p := range profiles {
		verified := ""
		if p.Verified {
			verified = " [verified]"
		}
		_, err := fmt.Fprintf(w, "%2d. %s, %d, %s (%s)%s\n    %.1f mi, %s\n    %s\n    traits: %s\n    photo: %s\n",
			i+1, p.Name, p.Age, p.Breed, p.Size, verified,
			p.DistanceMiles, p.Neighborhood,
			p.About,
			strings.Join(p.Traits, ", "),
			p.PhotoURL)
		if err != nil {
			return err
		}
	}
	return nil
}
