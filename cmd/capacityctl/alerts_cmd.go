package main

import (
	"github.com/spf13/cobra"

	"github.com/gti/resource-planner/internal/service"
)

func newAlertsCmd(opts *rootOptions) *cobra.Command {
	var q service.PeriodQuery

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Print the categorized capacity alerts as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := opts.clock()
			if err != nil {
				return err
			}

			log := opts.logger()
			st, err := opts.open(cmd.Context(), log)
			if err != nil {
				return err
			}
			defer st.close()

			alerts := service.NewAlertService(st.resources, st.allocations, st.settings, st.cache, log, now)
			payload, err := alerts.GetAlerts(cmd.Context(), q)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), payload)
		},
	}

	addPeriodFlags(cmd, &q)
	return cmd
}

func addPeriodFlags(cmd *cobra.Command, q *service.PeriodQuery) {
	cmd.Flags().StringVar(&q.Department, "department", "", "Department or role filter")
	cmd.Flags().StringVar(&q.StartDate, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&q.EndDate, "end", "", "Period end (YYYY-MM-DD)")
}
