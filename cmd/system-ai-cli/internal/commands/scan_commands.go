package commands

import (
	"context"
	"fmt"

	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/pkg/fsutil"

	"github.com/spf13/cobra"
)

// ScanCommandHandler encapsulates logic for file index operations via CLI.
type ScanCommandHandler struct {
	services *serviceSet
}

// NewScanCommandHandler initializes and returns a ScanCommandHandler instance.
func NewScanCommandHandler() (*ScanCommandHandler, error) {
	services, err := setupServices()
	if err != nil {
		return nil, err
	}
	return &ScanCommandHandler{services: services}, nil
}

// ScanCmd indexes all matching files below a directory
func (commandHandler *ScanCommandHandler) ScanCmd(cmd *cobra.Command, _ []string) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		commandHandler.services.logger.Error("invalid dir flag ", err)
		return
	}
	extensions, err := cmd.Flags().GetStringSlice("extensions")
	if err != nil {
		commandHandler.services.logger.Error("invalid extensions flag ", err)
		return
	}
	maxFiles, err := cmd.Flags().GetInt("max-files")
	if err != nil {
		commandHandler.services.logger.Error("invalid max-files flag ", err)
		return
	}

	result, err := commandHandler.services.fileScan.Scan(context.Background(), dir, files.ScanOptions{
		Extensions: extensions,
		MaxFiles:   maxFiles,
	})
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}

	commandHandler.services.logger.Info("Indexed ", result.Processed, " files under ", result.Directory,
		" (", result.Skipped, " skipped) in ", result.Duration)
}

// ListFilesCmd lists indexed files
func (commandHandler *ScanCommandHandler) ListFilesCmd(cmd *cobra.Command, _ []string) {
	extension, err := cmd.Flags().GetString("extension")
	if err != nil {
		commandHandler.services.logger.Error("invalid extension flag ", err)
		return
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.services.logger.Error("invalid limit flag ", err)
		return
	}

	query := files.NewFileMetaQuery()
	if extension != "" {
		query.Extension = extension
	}
	if limit > 0 {
		query.Limit = limit
	}

	metas, err := commandHandler.services.fileMetadata.List(context.Background(), query)
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}

	for _, meta := range metas {
		fmt.Printf("%s  %-10s  %s\n", meta.ID, fsutil.FormatSize(meta.Size), meta.Path)
	}
	commandHandler.services.logger.Info(len(metas), " files listed")
}

// DeleteFileCmd removes one file from the index
func (commandHandler *ScanCommandHandler) DeleteFileCmd(cmd *cobra.Command, _ []string) {
	fileID, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.services.logger.Error("invalid id flag ", err)
		return
	}

	if err := commandHandler.services.fileMetadata.DeleteByID(context.Background(), fileID); err != nil {
		commandHandler.services.logger.Error(err)
		return
	}
	commandHandler.services.logger.Info("Deleted file ", fileID, " from the index")
}

// InitScanCommands registers the file index commands with the root command.
func InitScanCommands(rootCmd *cobra.Command) error {
	handler, err := NewScanCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create scan command handler: %w", err)
	}

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Index all matching files below a directory",
		Run:   handler.ScanCmd,
	}
	scanCmd.Flags().String("dir", ".", "Directory to scan")
	scanCmd.Flags().StringSlice("extensions", nil, "Extensions to include, e.g. .go,.py")
	scanCmd.Flags().Int("max-files", 0, "Maximum number of files to index")
	rootCmd.AddCommand(scanCmd)

	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "Work with the file index",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed files",
		Run:   handler.ListFilesCmd,
	}
	listCmd.Flags().String("extension", "", "Filter by extension")
	listCmd.Flags().Int("limit", 0, "Maximum number of results")
	filesCmd.AddCommand(listCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a file from the index",
		Run:   handler.DeleteFileCmd,
	}
	deleteCmd.Flags().String("id", "", "ID of the file to remove")
	if err := deleteCmd.MarkFlagRequired("id"); err != nil {
		return fmt.Errorf("failed to mark id flag required: %w", err)
	}
	filesCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(filesCmd)
	return nil
}
