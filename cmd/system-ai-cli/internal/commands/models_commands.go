package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// ModelsCommandHandler encapsulates logic for inspecting the model backend via CLI.
type ModelsCommandHandler struct {
	services *serviceSet
}

// NewModelsCommandHandler initializes and returns a ModelsCommandHandler instance.
func NewModelsCommandHandler() (*ModelsCommandHandler, error) {
	services, err := setupServices()
	if err != nil {
		return nil, err
	}
	return &ModelsCommandHandler{services: services}, nil
}

// ModelsCmd lists the models installed on the backend
func (commandHandler *ModelsCommandHandler) ModelsCmd(_ *cobra.Command, _ []string) {
	ctx := context.Background()

	version, err := commandHandler.services.connector.Version(ctx)
	if err != nil {
		commandHandler.services.logger.Error("model backend unreachable: ", err)
		return
	}
	fmt.Println("Server version:", version)

	models, err := commandHandler.services.connector.ListModels(ctx)
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}
	for _, model := range models {
		fmt.Println("  " + model)
	}
	commandHandler.services.logger.Info(len(models), " models installed")
}

// InitModelsCommands registers the model backend commands with the root command.
func InitModelsCommands(rootCmd *cobra.Command) error {
	handler, err := NewModelsCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create models command handler: %w", err)
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "List the models installed on the backend",
		Run:   handler.ModelsCmd,
	}
	rootCmd.AddCommand(modelsCmd)

	return nil
}
