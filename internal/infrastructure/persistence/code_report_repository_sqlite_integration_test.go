//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeReportSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	report := CreateTestCodeReport(t, "/srv/projects/app/main.go", "Go")
	require.NoError(t, ctx.ReportRepo.Create(context.Background(), report))

	fetched, err := ctx.ReportRepo.GetByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Path, fetched.Path)
	assert.Equal(t, report.Complexity, fetched.Complexity)
}

func TestCodeReportSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.ReportRepo.GetByID(context.Background(), "non-existent-id")
	assert.ErrorIs(t, err, analysis.ErrReportNotFound)
}

func TestCodeReportSqliteRepository_GetByPath(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	report := CreateTestCodeReport(t, "/srv/projects/app/worker.py", "Python")
	require.NoError(t, ctx.ReportRepo.Create(context.Background(), report))

	fetched, err := ctx.ReportRepo.GetByPath(context.Background(), "/srv/projects/app/worker.py")
	require.NoError(t, err)
	assert.Equal(t, report.ID, fetched.ID)
}

func TestCodeReportSqliteRepository_List_ByLanguage(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	goReport := CreateTestCodeReport(t, "/srv/projects/app/main.go", "Go")
	pyReport := CreateTestCodeReport(t, "/srv/projects/app/tool.py", "Python")
	require.NoError(t, ctx.ReportRepo.Create(context.Background(), goReport))
	require.NoError(t, ctx.ReportRepo.Create(context.Background(), pyReport))

	query := analysis.NewCodeReportQuery()
	query.Language = "Python"

	results, err := ctx.ReportRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, pyReport.ID, results[0].ID)
}

func TestCodeReportSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	report := CreateTestCodeReport(t, "/srv/projects/app/main.go", "Go")
	require.NoError(t, ctx.ReportRepo.Create(context.Background(), report))

	insights := "nicely factored into small functions"
	report.Insights = &insights
	report.Complexity = 99
	require.NoError(t, ctx.ReportRepo.UpdateByID(context.Background(), report))

	fetched, err := ctx.ReportRepo.GetByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, 99, fetched.Complexity)
	require.NotNil(t, fetched.Insights)
	assert.Equal(t, insights, *fetched.Insights)
}

func TestCodeReportSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	report := CreateTestCodeReport(t, "/srv/projects/app/main.go", "Go")
	require.NoError(t, ctx.ReportRepo.Create(context.Background(), report))

	require.NoError(t, ctx.ReportRepo.DeleteByID(context.Background(), report.ID))

	_, err := ctx.ReportRepo.GetByID(context.Background(), report.ID)
	assert.ErrorIs(t, err, analysis.ErrReportNotFound)
}
