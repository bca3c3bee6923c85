package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newRainDayCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rain-day",
		Short: "Move every pending appointment to the next weekday",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed, err := askRainDay(huhConfirmRainDay)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing moved.")
					return nil
				}
			}

			services, closer, err := a.newServices(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			moved, err := services.RainDay(cmd.Context())
			if err != nil {
				a.log.Errorw("rain_day_failed", "err", err)
				return err
			}
			a.log.Infow("rain_day_applied", "moved", moved, "source", "cli")
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %d pending appointment(s).\n", moved)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// askRainDay runs the confirmation prompt. Declining or aborting (Ctrl+C) yields false;
// any other prompt failure, such as no terminal, is returned.
func askRainDay(prompt func(confirmed *bool) error) (bool, error) {
	confirmed := false
	if err := prompt(&confirmed); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm rain day (use --yes when not on a terminal): %w", err)
	}
	return confirmed, nil
}

func huhConfirmRainDay(confirmed *bool) error {
	return huh.NewConfirm().
		Title("Move ALL pending appointments one weekday forward?").
		Affirmative("Move them").
		Negative("Cancel").
		Value(confirmed).
		Run()
}
