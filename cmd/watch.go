package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jiraffe/jiraffe/internal/config"
	"github.com/jiraffe/jiraffe/internal/jira"
	"github.com/jiraffe/jiraffe/internal/logging"
	"github.com/jiraffe/jiraffe/internal/notify"
	"github.com/jiraffe/jiraffe/internal/release"
	"github.com/jiraffe/jiraffe/internal/store"
	"github.com/jiraffe/jiraffe/internal/syncer"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Synchronize queues periodically until interrupted",
	Long: `This command runs a synchronization pass on a fixed schedule, delivering
desktop notifications for new and rescheduled issues. A tick that fires while
the previous pass is still running is skipped. It also refreshes the
last-seen release record at most once per day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := cmd.Flags().GetDuration("interval")
		if err != nil {
			return err
		}
		if interval < time.Second {
			return fmt.Errorf("interval must be at least one second")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}

		client, err := jira.NewClient()
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		checker := release.NewChecker(cfg.GitHub.Token)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s := syncer.New(client, notify.NewDesktop())

		// Overlapping ticks are skipped rather than queued; passes at
		// this cadence are cheap to drop.
		var running int32
		pass := func() {
			if !atomic.CompareAndSwapInt32(&running, 0, 1) {
				logging.Debug("previous pass still running, skipping tick")
				return
			}
			defer atomic.StoreInt32(&running, 0)

			s.Run(ctx, st)
			refreshRelease(ctx, checker, st)
		}

		c := cron.New()
		if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), pass); err != nil {
			return fmt.Errorf("failed to schedule sync: %w", err)
		}

		logging.Info("watching queues", "interval", interval.String())
		pass()
		c.Start()
		<-ctx.Done()
		<-c.Stop().Done()
		return nil
	},
}

func init() {
	watchCmd.Flags().Duration("interval", time.Minute, "Time between synchronization passes")
}

// refreshRelease updates the stored last-seen release record, honoring the
// checker's cooldown. Failures only cost the upgrade hint, so they are
// logged by the checker and otherwise ignored.
func refreshRelease(ctx context.Context, checker *release.Checker, st *store.Store) {
	settings, err := st.Load()
	if err != nil || settings.IsZero() {
		return
	}

	updated, refreshed := checker.Refresh(ctx, settings.LastRelease, time.Now())
	if !refreshed {
		return
	}

	if release.IsNewerVersion(Version, updated.Version) {
		logging.Info("a newer release is available",
			"current", Version,
			"latest", updated.Version,
			"url", updated.URL)
	}

	settings.LastRelease = updated
	if err := st.Save(settings); err != nil {
		logging.Warn("failed to persist release record", "error", err)
	}
}
