package application

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func TestReportServiceGenerate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo, events := newTestWorkspace(t)
	seedWorkspace(t, repo, now)

	insights := NewInsightService(repo, nil, events).WithClock(func() time.Time { return now })
	svc := NewReportService(insights, repo)

	report, path, err := svc.Generate(context.Background(), "summary")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if report.ID == "" {
		t.Error("report ID not assigned")
	}
	if !strings.Contains(path, "report-2026-03-01") {
		t.Errorf("path = %q, want timestamped report filename", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rendered report: %v", err)
	}
	rendered := string(data)

	for _, want := range []string{
		"Project Health Report",
		"Health Score:",
		"Narrative",
		"Blockers",
		"Team Performance",
		"Recommendations",
		report.ID,
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered report missing %q:\n%s", want, rendered)
		}
	}
}

func TestRenderTruncationNote(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo, events := newTestWorkspace(t)
	seedWorkspace(t, repo, now)

	insights := NewInsightService(repo, nil, events).WithClock(func() time.Time { return now })

	report, err := insights.GenerateReport(context.Background(), "")
	if err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}
	report.Metrics.TotalBlockers = report.Metrics.TotalBlockers + 4

	var buf strings.Builder
	Render(&buf, report)

	if !strings.Contains(buf.String(), "4 more not shown") {
		t.Errorf("Render() missing truncation note:\n%s", buf.String())
	}
}
