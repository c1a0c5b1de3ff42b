package commands

import (
	"context"
	"fmt"

	"system_ai_service/internal/pkg/fsutil"

	"github.com/spf13/cobra"
)

// AnalyzeCommandHandler encapsulates logic for code analysis operations via CLI.
type AnalyzeCommandHandler struct {
	services *serviceSet
}

// NewAnalyzeCommandHandler initializes and returns an AnalyzeCommandHandler instance.
func NewAnalyzeCommandHandler() (*AnalyzeCommandHandler, error) {
	services, err := setupServices()
	if err != nil {
		return nil, err
	}
	return &AnalyzeCommandHandler{services: services}, nil
}

// AnalyzeCmd analyzes a single file or a directory tree
func (commandHandler *AnalyzeCommandHandler) AnalyzeCmd(cmd *cobra.Command, _ []string) {
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		commandHandler.services.logger.Error("invalid path flag ", err)
		return
	}
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		commandHandler.services.logger.Error("invalid dir flag ", err)
		return
	}
	recursive, err := cmd.Flags().GetBool("recursive")
	if err != nil {
		commandHandler.services.logger.Error("invalid recursive flag ", err)
		return
	}

	if (path == "") == (dir == "") {
		commandHandler.services.logger.Error("exactly one of --path or --dir must be set")
		return
	}

	if path != "" {
		report, err := commandHandler.services.codeAnalysis.AnalyzeFile(context.Background(), path)
		if err != nil {
			commandHandler.services.logger.Error(err)
			return
		}
		fmt.Printf("%s  %s  lines=%d functions=%d complexity=%d\n",
			report.Path, report.Language, report.Lines, report.Functions, report.Complexity)
		return
	}

	reports, err := commandHandler.services.codeAnalysis.AnalyzeDirectory(context.Background(), dir, recursive)
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}
	for _, report := range reports {
		fmt.Printf("%s  %s  lines=%d functions=%d complexity=%d\n",
			report.Path, report.Language, report.Lines, report.Functions, report.Complexity)
	}
	commandHandler.services.logger.Info("Analyzed ", len(reports), " source files")
}

// SummaryCmd prints the per-language aggregate of all stored reports
func (commandHandler *AnalyzeCommandHandler) SummaryCmd(_ *cobra.Command, _ []string) {
	summary, err := commandHandler.services.codeAnalysis.Summary(context.Background())
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}

	fmt.Printf("Total: %d files, %d lines, %s\n",
		summary.TotalFiles, summary.TotalLines, fsutil.FormatSize(summary.TotalSize))
	for language, stats := range summary.Languages {
		fmt.Printf("  %-16s %d files, %d lines, %s\n",
			language, stats.Files, stats.Lines, fsutil.FormatSize(stats.Size))
	}
}

// PatternsCmd searches analyzed files for a regex pattern
func (commandHandler *AnalyzeCommandHandler) PatternsCmd(cmd *cobra.Command, _ []string) {
	pattern, err := cmd.Flags().GetString("pattern")
	if err != nil {
		commandHandler.services.logger.Error("invalid pattern flag ", err)
		return
	}
	extensions, err := cmd.Flags().GetStringSlice("extensions")
	if err != nil {
		commandHandler.services.logger.Error("invalid extensions flag ", err)
		return
	}

	matches, err := commandHandler.services.codeAnalysis.FindPatterns(context.Background(), pattern, extensions)
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}

	for _, match := range matches {
		fmt.Printf("%s:%d: %s\n", match.Path, match.Line, match.Match)
	}
	commandHandler.services.logger.Info(len(matches), " matches found")
}

// DepsCmd lists the dependencies declared by a project directory
func (commandHandler *AnalyzeCommandHandler) DepsCmd(cmd *cobra.Command, _ []string) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		commandHandler.services.logger.Error("invalid dir flag ", err)
		return
	}

	report, err := commandHandler.services.dependencyScan.AnalyzeDependencies(context.Background(), dir)
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}

	fmt.Printf("Package manager: %s (%s)\n", report.PackageManager, report.Manifest)
	for _, dep := range report.Dependencies {
		if dep.Version != "" {
			fmt.Printf("  %-40s %s\n", dep.Name, dep.Version)
		} else {
			fmt.Printf("  %s\n", dep.Name)
		}
	}
	commandHandler.services.logger.Info(len(report.Dependencies), " dependencies found")
}

// TestsCmd reports static metrics over a project's test files
func (commandHandler *AnalyzeCommandHandler) TestsCmd(cmd *cobra.Command, _ []string) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		commandHandler.services.logger.Error("invalid dir flag ", err)
		return
	}

	report, err := commandHandler.services.testScan.AnalyzeTests(context.Background(), dir)
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}

	fmt.Printf("Test files: %d\n", report.TestFiles)
	fmt.Printf("Test functions: %d\n", report.TestFunctions)
	fmt.Printf("Assertions: %d (density %.2f)\n", report.Assertions, report.AssertionDensity)
	fmt.Println("Categories:")
	for category, count := range report.Categories {
		fmt.Printf("  %-16s %d\n", category, count)
	}
	for _, recommendation := range report.Recommendations {
		fmt.Println("- " + recommendation)
	}
}

// ReviewCmd asks the code model to review a source file
func (commandHandler *AnalyzeCommandHandler) ReviewCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runReview(cmd, commandHandler.services.codeReview.ReviewFile)
}

// SecurityCmd asks the security model to audit a source file
func (commandHandler *AnalyzeCommandHandler) SecurityCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runReview(cmd, commandHandler.services.codeReview.ReviewSecurity)
}

func (commandHandler *AnalyzeCommandHandler) runReview(cmd *cobra.Command, reviewFn func(context.Context, string, string) (string, error)) {
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		commandHandler.services.logger.Error("invalid path flag ", err)
		return
	}
	model, err := cmd.Flags().GetString("model")
	if err != nil {
		commandHandler.services.logger.Error("invalid model flag ", err)
		return
	}

	review, err := reviewFn(context.Background(), path, model)
	if err != nil {
		commandHandler.services.logger.Error(err)
		return
	}
	fmt.Println(review)
}

// InitAnalyzeCommands registers the code analysis commands with the root command.
func InitAnalyzeCommands(rootCmd *cobra.Command) error {
	handler, err := NewAnalyzeCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create analyze command handler: %w", err)
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze source files and store code reports",
		Run:   handler.AnalyzeCmd,
	}
	analyzeCmd.Flags().String("path", "", "Single file to analyze")
	analyzeCmd.Flags().String("dir", "", "Directory to analyze")
	analyzeCmd.Flags().Bool("recursive", true, "Recurse into subdirectories")
	rootCmd.AddCommand(analyzeCmd)

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the per-language aggregate of all stored reports",
		Run:   handler.SummaryCmd,
	}
	rootCmd.AddCommand(summaryCmd)

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Search analyzed files for a regex pattern",
		Run:   handler.PatternsCmd,
	}
	patternsCmd.Flags().String("pattern", "", "Regex pattern to search for")
	patternsCmd.Flags().StringSlice("extensions", nil, "Restrict to extensions, e.g. .go,.py")
	if err := patternsCmd.MarkFlagRequired("pattern"); err != nil {
		return fmt.Errorf("failed to mark pattern flag required: %w", err)
	}
	rootCmd.AddCommand(patternsCmd)

	depsCmd := &cobra.Command{
		Use:   "deps",
		Short: "List the dependencies declared by a project",
		Run:   handler.DepsCmd,
	}
	depsCmd.Flags().String("dir", ".", "Project directory")
	rootCmd.AddCommand(depsCmd)

	testsCmd := &cobra.Command{
		Use:   "tests",
		Short: "Report static metrics over a project's test files",
		Run:   handler.TestsCmd,
	}
	testsCmd.Flags().String("dir", ".", "Project directory")
	rootCmd.AddCommand(testsCmd)

	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Ask the code model to review a source file",
		Run:   handler.ReviewCmd,
	}
	reviewCmd.Flags().String("path", "", "File to review")
	reviewCmd.Flags().String("model", "", "Model to use, defaults to the configured code model")
	if err := reviewCmd.MarkFlagRequired("path"); err != nil {
		return fmt.Errorf("failed to mark path flag required: %w", err)
	}
	rootCmd.AddCommand(reviewCmd)

	securityCmd := &cobra.Command{
		Use:   "security",
		Short: "Ask the security model to audit a source file",
		Run:   handler.SecurityCmd,
	}
	securityCmd.Flags().String("path", "", "File to audit")
	securityCmd.Flags().String("model", "", "Model to use, defaults to the configured security model")
	if err := securityCmd.MarkFlagRequired("path"); err != nil {
		return fmt.Errorf("failed to mark path flag required: %w", err)
	}
	rootCmd.AddCommand(securityCmd)

	return nil
}
