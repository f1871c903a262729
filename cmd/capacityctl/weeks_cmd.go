package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gti/resource-planner/internal/utilization"
)

type weekRow struct {
	WeekKey utilization.WeekKey `json:"weekKey"`
	Monday  string              `json:"monday"`
}

type weeksOutput struct {
	Window utilization.Window `json:"period"`
	Weeks  []weekRow          `json:"weeks"`
}

// newWeeksCmd shows how a period is normalized and which weeks it covers.
// It needs no data source.
func newWeeksCmd(opts *rootOptions) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Print the ISO weeks a period covers once elapsed weeks are dropped",
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := opts.clock()
			if err != nil {
				return err
			}
			if _, ok := utilization.ParseDate(start); !ok {
				return fmt.Errorf("invalid --start %q: want YYYY-MM-DD", start)
			}
			if _, ok := utilization.ParseDate(end); !ok {
				return fmt.Errorf("invalid --end %q: want YYYY-MM-DD", end)
			}

			scope := utilization.ResolveScope(start, end, clock())
			out := weeksOutput{Window: scope.Window, Weeks: make([]weekRow, 0, len(scope.Weeks))}
			for _, k := range scope.Weeks {
				out.Weeks = append(out.Weeks, weekRow{WeekKey: k, Monday: k.Monday().Format("2006-01-02")})
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Period end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
