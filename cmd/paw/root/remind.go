package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-co-op/gocron/v2"
	"github.com/spf13/cobra"

	"pawmate/internal/config"
	"pawmate/internal/ui"
)

func newRemindCmd() *cobra.Command {
	var daemon bool
	var at string

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print today's motivational reminder (or run the daily reminder daemon)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !daemon {
				msg, err := svc.MotivationalMessage(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconBell, msg)
				return nil
			}

			if at == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				at = cfg.ReminderTime
			}
			hour, minute, err := parseClockTime(at)
			if err != nil {
				return err
			}

			scheduler, err := gocron.NewScheduler()
			if err != nil {
				return fmt.Errorf("create scheduler: %w", err)
			}
			defer func() { _ = scheduler.Shutdown() }()

			_, err = scheduler.NewJob(
				gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
				gocron.NewTask(func() {
					msg, err := svc.MotivationalMessage(ctx)
					if err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), ui.Bad.Render(ui.IconError+" "+err.Error()))
						return
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconBell, msg)
				}),
			)
			if err != nil {
				return fmt.Errorf("schedule reminder: %w", err)
			}

			scheduler.Start()
			fmt.Fprintf(cmd.OutOrStdout(), "%s Daily reminder scheduled at %02d:%02d. Ctrl+C to stop.\n", ui.IconBell, hour, minute)

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().BoolVar(&daemon, "daemon", false, "Keep running and emit the reminder daily")
	cmd.Flags().StringVar(&at, "at", "", "Reminder time, HH:MM (default from PAWMATE_REMINDER_TIME)")

	return cmd
}

func parseClockTime(s string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}
