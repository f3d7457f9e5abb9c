package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"consig_origination/internal/adapter/http/routes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var noScheduler bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the teimosinha scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if !noScheduler {
				go func() {
					if err := a.teimosinha.Run(ctx, a.cfg.PollInterval); err != nil && !errors.Is(err, context.Canceled) {
						a.log.Error("[teimosinha][scheduler] stopped", zap.Error(err))
					}
				}()
			}

			router := routes.NewRouter(a.handlers(), a.log)
			return routes.Run(ctx, a.cfg.Port, router, a.log)
		},
	}

	cmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "do not run the teimosinha loop in this process")
	return cmd
}

func teimosinhaCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "teimosinha",
		Short: "Process the retry attempts that are due",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if !once {
				err := a.teimosinha.Run(ctx, a.cfg.PollInterval)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

			start := time.Now()
			n, err := a.teimosinha.ProcessDue(ctx)
			if err != nil {
				return err
			}
			a.log.Info("[teimosinha][cli] due attempts processed", zap.Int("processed", n), zap.Duration("took", time.Since(start)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "process the due attempts once and exit")
	return cmd
}
