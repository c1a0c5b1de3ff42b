package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// WatchCommandHandler encapsulates logic for running the directory watcher via CLI.
type WatchCommandHandler struct {
	services *serviceSet
}

// NewWatchCommandHandler initializes and returns a WatchCommandHandler instance.
func NewWatchCommandHandler() (*WatchCommandHandler, error) {
	services, err := setupServices()
	if err != nil {
		return nil, err
	}
	return &WatchCommandHandler{services: services}, nil
}

// WatchCmd watches a directory and keeps the index current until interrupted
func (commandHandler *WatchCommandHandler) WatchCmd(cmd *cobra.Command, _ []string) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		commandHandler.services.logger.Error("invalid dir flag ", err)
		return
	}

	if err := commandHandler.services.watch.Start(context.Background(), dir); err != nil {
		commandHandler.services.logger.Error(err)
		return
	}
	commandHandler.services.logger.Info("Watching ", dir, ", press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := commandHandler.services.watch.Stop(); err != nil {
		commandHandler.services.logger.Error(err)
		return
	}

	status := commandHandler.services.watch.Status()
	commandHandler.services.logger.Info("Stopped after handling ", status.EventsHandled, " events")
}

// InitWatchCommands registers the watcher commands with the root command.
func InitWatchCommands(rootCmd *cobra.Command) error {
	handler, err := NewWatchCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create watch command handler: %w", err)
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a directory and keep the index current",
		Run:   handler.WatchCmd,
	}
	watchCmd.Flags().String("dir", ".", "Directory to watch")
	rootCmd.AddCommand(watchCmd)

	return nil
}
