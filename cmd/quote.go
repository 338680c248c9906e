package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/astrostay/internal/booking"
	"github.com/papapumpkin/astrostay/internal/pricing"
	"github.com/papapumpkin/astrostay/internal/ui"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a stay without opening the terminal UI",
	Long: `Price a stay from flags and print the breakdown. Dates are YYYY-MM-DD.
Missing fields price at $0; an invalid date or a check-out that is not after
the check-in is an error. With --confirm the booking is confirmed and a
reference is printed.`,
	Example: `  astrostay quote --destination mars --checkin 2099-03-01 --checkout 2099-03-04 --travelers 2 --class luxury`,
	Args:    cobra.NoArgs,
	RunE:    runQuote,
}

func init() {
	quoteCmd.Flags().String("destination", "", "luna, mars or orbit")
	quoteCmd.Flags().String("checkin", "", "check-in date (YYYY-MM-DD)")
	quoteCmd.Flags().String("checkout", "", "check-out date (YYYY-MM-DD)")
	quoteCmd.Flags().String("travelers", "1", "number of travelers")
	quoteCmd.Flags().String("class", "standard", "standard, luxury or elite")
	quoteCmd.Flags().Bool("confirm", false, "confirm the booking")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	flags := cmd.Flags()
	dest, _ := flags.GetString("destination")
	checkIn, _ := flags.GetString("checkin")
	checkOut, _ := flags.GetString("checkout")
	travelers, _ := flags.GetString("travelers")
	class, _ := flags.GetString("class")
	confirm, _ := flags.GetBool("confirm")

	desk := s.desk()
	if dest != "" {
		if err := desk.SetDestination(dest); err != nil {
			return err
		}
	}
	if err := enterDate(desk.Picker().Enter, booking.FieldCheckIn, checkIn); err != nil {
		return err
	}
	if err := enterDate(desk.Picker().Enter, booking.FieldCheckOut, checkOut); err != nil {
		return err
	}
	desk.SetTravelers(travelers)
	desk.SetClass(class)

	printer := ui.NewWriter(cmd.OutOrStdout())
	sel := desk.Selection()
	destName := ""
	if d, ok := desk.Catalog().Destination(sel.Destination); ok {
		destName = d.Name
	}
	printer.Quote(pricing.InputOf(&sel), desk.Quote(), destName)

	if !confirm {
		if !desk.Quote().IsZero() {
			printer.Info("add --confirm to book this stay")
		}
		return nil
	}
	c, err := desk.Submit()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	printer.Confirmation(c)
	return nil
}

// enterDate parses raw and applies it to field. An empty value is skipped.
func enterDate(enter func(booking.Field, booking.Date) error, field booking.Field, raw string) error {
	if raw == "" {
		return nil
	}
	d, err := booking.ParseDate(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if err := enter(field, d); err != nil {
		return fmt.Errorf("%s %s: %w", field, d, err)
	}
	return nil
}
