package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/astrostay/internal/booking"
	"github.com/papapumpkin/astrostay/internal/calendar"
	"github.com/papapumpkin/astrostay/internal/ui"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print a month grid with an optional stay highlighted",
	Long: `Print the calendar grid for one month. Past days are dimmed, today is
underlined, and a stay given with --checkin and --checkout is highlighted.
Without --month the month of the check-in, or else the current month, is shown.`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().String("month", "", "month to show (YYYY-MM)")
	calendarCmd.Flags().String("checkin", "", "check-in date (YYYY-MM-DD)")
	calendarCmd.Flags().String("checkout", "", "check-out date (YYYY-MM-DD)")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	monthRaw, _ := cmd.Flags().GetString("month")
	checkIn, _ := cmd.Flags().GetString("checkin")
	checkOut, _ := cmd.Flags().GetString("checkout")

	today := booking.Today(clock)
	sel := booking.NewSelection(today)
	p := calendar.NewPicker(sel, calendar.WithClock(clock))
	if err := enterDate(p.Enter, booking.FieldCheckIn, checkIn); err != nil {
		return err
	}
	if err := enterDate(p.Enter, booking.FieldCheckOut, checkOut); err != nil {
		return err
	}

	month := booking.MonthOf(today)
	if !sel.CheckIn.IsZero() {
		month = booking.MonthOf(sel.CheckIn)
	}
	if monthRaw != "" {
		m, err := booking.ParseMonth(monthRaw)
		if err != nil {
			return err
		}
		month = m
	}

	ui.NewWriter(cmd.OutOrStdout()).Calendar(month, calendar.Render(sel, today, month))
	return nil
}
