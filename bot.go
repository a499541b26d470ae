package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/notaneet/rasp43/bot"
	"github.com/notaneet/rasp43/config"
	"github.com/notaneet/rasp43/plugin"
	"github.com/notaneet/rasp43/service"
	"github.com/notaneet/rasp43/users"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBotCommand(debug *bool) *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Запустить телеграм-бота (настройки из окружения и .env)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(*debug)
			if err != nil {
				return err
			}
			defer logger.Sync()

			var envFiles []string
			if envFile != "" {
				envFiles = append(envFiles, envFile)
			}
			cfg, err := config.LoadBotConfig(envFiles...)
			if err != nil {
				return err
			}
			layout, err := config.LoadLayout(cfg.LayoutFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := users.Open(ctx, cfg.UsersDB, cfg.RecentGroups)
			if err != nil {
				return err
			}
			defer store.Close()

			schedule := service.NewSchedule(layout, plugin.DefaultPlugin, logger)
			if _, err := schedule.Reload(cfg.ScheduleFile); err != nil {
				logger.Warn("бот запущен без расписания, ждём файл", zap.String("path", cfg.ScheduleFile), zap.Error(err))
			}

			api, err := tgbotapi.NewBotAPI(cfg.Token)
			if err != nil {
				return err
			}
			api.Debug = *debug
			logger.Info("бот авторизован", zap.String("account", api.Self.UserName))

			u := tgbotapi.NewUpdate(0)
			u.Timeout = 60
			updates := api.GetUpdatesChan(u)
			go func() {
				<-ctx.Done()
				api.StopReceivingUpdates()
			}()

			bot.New(api, schedule, store, cfg, logger).Run(ctx, updates)
			return nil
		},
	}
	cmd.Flags().StringVar(&envFile, "env", "", "Файл с переменными окружения (по умолчанию .env)")

	return cmd
}
