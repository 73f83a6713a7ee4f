package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wildnav/internal/errors"
)

// Supported subcommands:
// - plan:    Build a walking route through waypoints and optionally export it as KML
// - inspect: Print the header of a PMTiles archive

func main() {
	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	inspectCmd := flag.NewFlagSet("inspect", flag.ExitOnError)

	flags := routeFlags{
		Plan: planFlags{
			cmd:        planCmd,
			source:     planCmd.String("source", "", "PMTiles archive (path or URL); straight lines when empty"),
			roadLayer:  planCmd.String("layer", "transportation", "Road layer name in the MVT tiles"),
			zoom:       planCmd.Int("zoom", 14, "Tile zoom level"),
			speed:      planCmd.Float64("speed", 5, "Walking speed in km/h"),
			from:       planCmd.String("from", "", "Origin as lat,lon"),
			kml:        planCmd.String("kml", "", "Write the route as KML to this file"),
			concurrent: planCmd.Int("concurrency", 4, "Maximum concurrent leg requests"),
		},
		Inspect: inspectFlags{
			cmd:    inspectCmd,
			source: inspectCmd.String("source", "", "Local PMTiles archive"),
		},
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type routeFlags struct {
	Plan    planFlags
	Inspect inspectFlags
}

type planFlags struct {
	cmd        *flag.FlagSet
	source     *string
	roadLayer  *string
	zoom       *int
	speed      *float64
	from       *string
	kml        *string
	concurrent *int
}

type inspectFlags struct {
	cmd    *flag.FlagSet
	source *string
}

func runSubcommand(ctx context.Context, flags *routeFlags) error {
	switch os.Args[1] {
	case "plan":
		return handlePlan(ctx, flags)
	case "inspect":
		return handleInspect(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handlePlan(ctx context.Context, flags *routeFlags) error {
	f := flags.Plan
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse plan flags")
	}
	if *f.from == "" {
		return errors.New("--from flag is required for plan command")
	}
	if f.cmd.NArg() == 0 {
		return errors.New("at least one waypoint (lat,lon) is required")
	}

	return runPlan(ctx, os.Stdout, planOptions{
		Source:         *f.source,
		RoadLayer:      *f.roadLayer,
		Zoom:           *f.zoom,
		SpeedKmh:       *f.speed,
		From:           *f.from,
		Waypoints:      f.cmd.Args(),
		KMLPath:        *f.kml,
		MaxConcurrency: *f.concurrent,
	})
}

func handleInspect(flags *routeFlags) error {
	f := flags.Inspect
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse inspect flags")
	}
	if *f.source == "" {
		return errors.New("--source flag is required for inspect command")
	}

	return runInspect(os.Stdout, *f.source)
}

func printUsage() {
	fmt.Println("Usage: wildnav-route <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  plan       Build a walking route: plan -from lat,lon [options] lat,lon [lat,lon...]")
	fmt.Println("  inspect    Print the header of a local PMTiles archive")
	fmt.Println("")
	fmt.Println("Use 'wildnav-route <command> -h' for more information about a command.")
}
