package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"recall/models"
	"recall/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusFlag string
	outputPath string
)

var callsCmd = &cobra.Command{
	Use:   "calls",
	Short: "Work with the call history",
}

var callsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List callbacks with the dashboard counters",
	RunE:  runCallsList,
}

var callsLinkCmd = &cobra.Command{
	Use:   "link <id>",
	Short: "Print the Add to Calendar link for a callback",
	Args:  cobra.ExactArgs(1),
	RunE:  runCallsLink,
}

var callsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered list to an xlsx workbook",
	RunE:  runCallsExport,
}

func runCallsList(cmd *cobra.Command, args []string) error {
	snap := services.LoadDashboard(cmd.Context(), source, services.ParseSelector(statusFlag))
	out := cmd.OutOrStdout()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCALLER\tPHONE\tSCHEDULED\tSTATUS")
	for _, call := range snap.Visible {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			call.ID,
			call.CallerName,
			call.CallerPhone,
			services.FormatDisplayDate(call.ScheduledTime),
			statusString(call.Status),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(snap.Visible) == 0 {
		fmt.Fprintln(out, "No calls found")
	}
	fmt.Fprintf(out, "\nTotal: %d  Pending: %d  Completed: %d  Avg Duration: %s\n",
		snap.Stats.Total, snap.Stats.Pending, snap.Stats.Completed, snap.Stats.AvgDuration)
	return nil
}

func statusString(status models.CallStatus) string {
	switch status {
	case models.CallStatusPending:
		return color.YellowString(string(status))
	case models.CallStatusCompleted:
		return color.GreenString(string(status))
	case models.CallStatusMissed:
		return color.RedString(string(status))
	default:
		return string(status)
	}
}

func runCallsLink(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid call id %q", args[0])
	}

	calls := services.LoadCalls(cmd.Context(), source)
	call, ok := services.FindCall(calls, id)
	if !ok {
		return fmt.Errorf("call %d not found", id)
	}

	link, err := services.BuildCalendarLink(call)
	if errors.Is(err, services.ErrNoScheduledTime) {
		return fmt.Errorf("call %d: %s", id, services.NoDateLabel)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), link)
	return nil
}

func runCallsExport(cmd *cobra.Command, args []string) error {
	snap := services.LoadDashboard(cmd.Context(), source, services.ParseSelector(statusFlag))

	buf, err := services.ExportCallsXLSX(snap.Visible, snap.Stats)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d calls to %s\n", len(snap.Visible), outputPath)
	return nil
}
