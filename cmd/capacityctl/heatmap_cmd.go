package main

import (
	"github.com/spf13/cobra"

	"github.com/gti/resource-planner/internal/service"
)

func newHeatmapCmd(opts *rootOptions) *cobra.Command {
	var q service.PeriodQuery

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Print weekly utilization per resource as JSON",
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

			hm, err := service.NewHeatmapService(st.resources, st.allocations, st.settings, log, now).
				GetHeatmap(cmd.Context(), q)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), hm)
		},
	}

	addPeriodFlags(cmd, &q)
	return cmd
}
