package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/astrostay/internal/booking"
	"github.com/papapumpkin/astrostay/internal/ui"
)

var destinationsCmd = &cobra.Command{
	Use:     "destinations [key]",
	Aliases: []string{"dest"},
	Short:   "List destinations or show one in detail",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runDestinations,
}

func init() {
	rootCmd.AddCommand(destinationsCmd)
}

func runDestinations(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	printer := ui.NewWriter(cmd.OutOrStdout())
	if len(args) == 0 {
		printer.Banner()
		printer.Destinations(s.catalog.List())
		return nil
	}

	key, err := booking.ParseDestination(args[0])
	if err != nil {
		return err
	}
	d, ok := s.catalog.Destination(key)
	if !ok {
		return fmt.Errorf("%w %q", booking.ErrUnknownDestination, args[0])
	}
	printer.Destination(d)
	return nil
}
