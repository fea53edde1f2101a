package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/NikolasTh90/healthwatcher/internal/config"
	"github.com/NikolasTh90/healthwatcher/pkg/pidfile"
	"github.com/NikolasTh90/healthwatcher/pkg/statusserver"
	"github.com/NikolasTh90/healthwatcher/pkg/watcher"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	statusListenPort int
	pidFile          string
)

func init() {
	rootCmd.AddCommand(watch)
	watch.PersistentFlags().IntVarP(&statusListenPort, "status-listen-port", "p", 9102, "set the port the status API listens on")
	watch.PersistentFlags().StringVarP(&pidFile, "pidfile", "", "", "write the watcher's process id to this file")
}

var watch = &cobra.Command{
	Use:   "watch",
	Short: "Probe all configured targets on a fixed interval",
	Long:  "This sub-command loads the target configuration, starts the status API and probes every target once per interval, forever, logging the per-target and aggregate health",
	Run: func(cmd *cobra.Command, args []string) {
		pidFileHandle := pidfile.New(pidFile)

		if err := pidFileHandle.Acquire(); err != nil {
			log.Fatalf("failed to write pid file to %q: %s", pidFile, err)
		}

		defer func() {
			if err := pidFileHandle.Release(); err != nil {
				log.Errorf("error while cleaning up the pid file: %s", err)
			}
		}()

		w := watcherFromConfigDir()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		signals := make(chan os.Signal, 1)
		signal.Notify(signals,
			syscall.SIGTERM,
			syscall.SIGINT,
		)

		go func() {
			s := <-signals
			log.Infof("received event %s", s.String())
			cancel()
		}()

		server := statusserver.New(w)
		go func() {
			log.Infof("status server listens on port %d", statusListenPort)
			if err := server.Run(ctx, statusListenPort); err != nil {
				log.Fatalf("status server stopped with error: %s", err)
			} else {
				log.Info("status server stopped without error")
			}
		}()

		if err := w.Run(ctx); err != nil {
			log.WithError(err).Fatal("health watcher stopped with error")
		}
	},
}

// watcherFromConfigDir loads config files, falls back to the built-in
// targets and resolves the check interval. Any configuration fault is fatal
// before the first iteration starts.
func watcherFromConfigDir() *watcher.Watcher {
	cfg := &config.Config{}

	if err := cfg.GenerateFromConfigDir(configDir); err != nil {
		log.Fatalf("failed while trying to generate config from dir %q, err: '%+v'", configDir, err)
	}
	cfg.ApplyDefaults()

	w, err := watcher.FromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to configure health watcher: %s", err)
	}

	return w
}
