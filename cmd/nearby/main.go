// Command nearby ranks the destination catalog by distance from a position
// given on the command line, or from the caller's public IP when none is.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"travelsurvey/internal/infra"
	"travelsurvey/internal/metrics"
	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/models/response_models"
	"travelsurvey/internal/services"
)

// Dependencies are the parts of the command swapped out in tests.
type Dependencies struct {
	IPLocator func(opts ...infra.LocationOption) services.Locator
	Stdout    io.Writer
}

func DefaultDependencies() Dependencies {
	return Dependencies{
		IPLocator: func(opts ...infra.LocationOption) services.Locator {
			return services.NewIPLocator(infra.NewLocationClient(opts...), nil)
		},
		Stdout: os.Stdout,
	}
}

type options struct {
	lat        float64
	lon        float64
	travelType string
	url        string
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	verbose    bool
}

// fixedLocator reports the position given on the command line.
type fixedLocator dm.Coordinates

func (l fixedLocator) Locate(ctx context.Context) (dm.Coordinates, error) {
	return dm.Coordinates(l), ctx.Err()
}

func newRootCmd(deps Dependencies) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "nearby",
		Short:         "Rank travel destinations by distance",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if t := dm.TravelType(opts.travelType); t != "" && !t.Valid() {
				return fmt.Errorf("unknown travel type %q", opts.travelType)
			}

			logger := zap.NewNop()
			if opts.verbose {
				var err error
				if logger, err = zap.NewDevelopment(); err != nil {
					return err
				}
			}

			var locator services.Locator
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				locator = fixedLocator{Latitude: opts.lat, Longitude: opts.lon}
			} else {
				locator = deps.IPLocator(
					infra.WithURL(opts.url),
					infra.WithTimeout(opts.timeout),
					infra.WithMaxRetries(opts.retries),
					infra.WithRetryDelay(opts.retryDelay),
					infra.WithLogger(logger),
				)
			}

			svc := services.NewNearbyService(metrics.New(prometheus.NewRegistry()), logger)
			view, err := svc.Render(cmd.Context(), dm.IdentityContext{}, dm.TravelType(opts.travelType), locator)
			if err != nil {
				return err
			}
			return printView(deps.Stdout, view)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.lat, "lat", 0, "current latitude in degrees")
	flags.Float64Var(&opts.lon, "lon", 0, "current longitude in degrees")
	flags.StringVarP(&opts.travelType, "travel-type", "t", "", "only show destinations of this travel type")
	flags.StringVar(&opts.url, "lookup-url", "https://am.i.mullvad.net/json", "IP geolocation endpoint")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "IP lookup timeout")
	flags.IntVar(&opts.retries, "retries", 3, "IP lookup retries")
	flags.DurationVar(&opts.retryDelay, "retry-delay", time.Second, "delay before the first retry, doubled on each one")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log lookup progress to stderr")

	return cmd
}

func printView(w io.Writer, view *response_models.NearbyScreenResponse) error {
	if view.Status == response_models.NearbyStatusError {
		_, err := fmt.Fprintln(w, view.Banner)
		return err
	}

	if _, err := fmt.Fprintf(w, "Your location: %s\n%s\n\n", view.LocationLabel, view.Title); err != nil {
		return err
	}
	if len(view.Destinations) == 0 {
		_, err := fmt.Fprintln(w, view.EmptyMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Destination\tCountry\tType\tDistance")
	for _, d := range view.Destinations {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Name, d.Country, d.TravelType, d.DistanceLabel)
	}
	return tw.Flush()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(DefaultDependencies()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "nearby:", err)
		stop()
		os.Exit(1)
	}
}
