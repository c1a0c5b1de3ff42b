package commands

import (
	"context"
	"fmt"

	"system_ai_service/internal/domain/files"

	"github.com/spf13/cobra"
)

// DocsCommandHandler encapsulates logic for document store operations via CLI.
type DocsCommandHandler struct {
	services *serviceSet
}

// NewDocsCommandHandler initializes and returns a DocsCommandHandler instance.
func NewDocsCommandHandler() (*DocsCommandHandler, error) {
	services, err := setupServices()
	if err != nil {
		return nil, err
	}
	return &DocsCommandHandler{services: services}, nil
}

// ScanDocsCmd extracts text documents from a directory tree into the store
func (commandHandler *DocsCommandHandler) ScanDocsCmd(cmd *cobra.Command, _ []string) {
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

	result, err := commandHandler.services.documentScan.Scan(context.Background(), dir, files.ScanOptions{
		Extensions: extensions,
	})
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}
	commandHandler.services.logger.Info("Stored ", result.Processed, " documents from ", result.Directory,
		" (", result.Skipped, " skipped)")
}

// SearchDocsCmd lists documents ranked by relevance to a term
func (commandHandler *DocsCommandHandler) SearchDocsCmd(cmd *cobra.Command, _ []string) {
	query, err := cmd.Flags().GetString("query")
	if err != nil {
		commandHandler.services.logger.Error("invalid query flag ", err)
		return
	}
	k, err := cmd.Flags().GetInt("top")
	if err != nil {
		commandHandler.services.logger.Error("invalid top flag ", err)
		return
	}

	docs, err := commandHandler.services.documentQuery.Search(context.Background(), query, k)
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}

	for _, doc := range docs {
		fmt.Printf("%s\n  %s\n", doc.Path, doc.Snippet())
	}
	commandHandler.services.logger.Info(len(docs), " documents found")
}

// AskDocsCmd answers a question grounded on the stored documents
func (commandHandler *DocsCommandHandler) AskDocsCmd(cmd *cobra.Command, _ []string) {
	question, err := cmd.Flags().GetString("question")
	if err != nil {
		commandHandler.services.logger.Error("invalid question flag ", err)
		return
	}
	model, err := cmd.Flags().GetString("model")
	if err != nil {
		commandHandler.services.logger.Error("invalid model flag ", err)
		return
	}
	k, err := cmd.Flags().GetInt("top")
	if err != nil {
		commandHandler.services.logger.Error("invalid top flag ", err)
		return
	}

	answer, err := commandHandler.services.documentQuery.Ask(context.Background(), question, model, k)
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}

	fmt.Println(answer.Response)
	fmt.Println()
	fmt.Println("Sources:")
	for _, source := range answer.Sources {
		fmt.Println("  " + source)
	}
}

// InitDocsCommands registers the document store commands with the root command.
func InitDocsCommands(rootCmd *cobra.Command) error {
	handler, err := NewDocsCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create docs command handler: %w", err)
	}

	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Work with the document store",
	}

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Extract text documents from a directory tree",
		Run:   handler.ScanDocsCmd,
	}
	scanCmd.Flags().String("dir", ".", "Directory to scan")
	scanCmd.Flags().StringSlice("extensions", nil, "Extensions to include, e.g. .md,.txt")
	docsCmd.AddCommand(scanCmd)

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "List documents ranked by relevance to a term",
		Run:   handler.SearchDocsCmd,
	}
	searchCmd.Flags().String("query", "", "Term to search for")
	searchCmd.Flags().Int("top", 0, "Maximum number of results")
	if err := searchCmd.MarkFlagRequired("query"); err != nil {
		return fmt.Errorf("failed to mark query flag required: %w", err)
	}
	docsCmd.AddCommand(searchCmd)

	askCmd := &cobra.Command{
		Use:   "ask",
		Short: "Answer a question grounded on the stored documents",
		Run:   handler.AskDocsCmd,
	}
	askCmd.Flags().String("question", "", "Question to answer")
	askCmd.Flags().String("model", "", "Model to use, defaults to the configured text model")
	askCmd.Flags().Int("top", 0, "Number of documents to ground the answer on")
	if err := askCmd.MarkFlagRequired("question"); err != nil {
		return fmt.Errorf("failed to mark question flag required: %w", err)
	}
	docsCmd.AddCommand(askCmd)

	rootCmd.AddCommand(docsCmd)
	return nil
}
