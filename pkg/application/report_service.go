package application

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/freshmc/pulse/pkg/domain"
	"github.com/freshmc/pulse/pkg/domain/insight"
)

// ReportService renders full insight reports into the plain-text artifact
// consumed by the tracker's report pipeline. Unlike the JSON summary view,
// the rendered report carries the in-progress count and the untruncated
// blocker and team-performance lists.
type ReportService struct {
	insights *InsightService
	writer   domain.ReportWriter
}

func NewReportService(insights *InsightService, writer domain.ReportWriter) *ReportService {
	return &ReportService{insights: insights, writer: writer}
}

// Generate produces a report for the query and persists the rendered text
// artifact. Returns the report and the artifact path.
func (s *ReportService) Generate(ctx context.Context, query string) (*insight.Report, string, error) {
	report, err := s.insights.GenerateReport(ctx, query)
	if err != nil {
		return nil, "", err
	}

	var buf strings.Builder
	Render(&buf, report)

	name := fmt.Sprintf("report-%s.txt", report.GeneratedAt.Format("2006-01-02-150405"))
	path, err := s.writer.WriteReport(name, []byte(buf.String()))
	if err != nil {
		return nil, "", fmt.Errorf("write report: %w", err)
	}

	return report, path, nil
}

// Render writes the full report view to the writer.
func Render(out io.Writer, r *insight.Report) {
	m := r.Metrics

	fmt.Fprintln(out, "Project Health Report")
	fmt.Fprintln(out, "---------------------")
	if r.Project != "" {
		fmt.Fprintf(out, "Project:      %s\n", r.Project)
	}
	fmt.Fprintf(out, "Generated:    %s\n", r.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "Report ID:    %s\n", r.ID)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Health Score: %d/100\n", m.HealthScore)
	fmt.Fprintf(out, "Modules:      %d total, %d completed, %d in progress, %d delayed, %d on time\n",
		m.TotalModules, m.CompletedModules, m.InProgressModules, m.DelayedModules, m.OnTimeModules)

	fmt.Fprintln(out, "\nNarrative")
	fmt.Fprintln(out, "---------")
	fmt.Fprintln(out, r.Narrative)

	fmt.Fprintln(out, "\nBlockers")
	fmt.Fprintln(out, "--------")
	if len(m.Blockers) == 0 {
		fmt.Fprintln(out, "None.")
	} else {
		for _, b := range m.Blockers {
			overdue := ""
			if b.DaysOverdue > 0 {
				overdue = fmt.Sprintf(" (%d days overdue)", b.DaysOverdue)
			}
			fmt.Fprintf(out, "- [%s] %s: %s%s - %s\n", b.Priority, b.Title, b.Reason, overdue, b.AssignedTo)
		}
		if m.TotalBlockers > len(m.Blockers) {
			fmt.Fprintf(out, "(%d more not shown)\n", m.TotalBlockers-len(m.Blockers))
		}
	}

	fmt.Fprintln(out, "\nTeam Performance")
	fmt.Fprintln(out, "----------------")
	if len(m.TeamPerformance) == 0 {
		fmt.Fprintln(out, "No modules assigned to known team members.")
	} else {
		for _, e := range m.TeamPerformance {
			fmt.Fprintf(out, "- %-20s %3d%%  (%d/%d completed, %d on time, %d delayed)\n",
				e.Name, e.CompletionRate, e.Completed, e.TotalAssigned, e.OnTime, e.Delayed)
		}
	}

	fmt.Fprintln(out, "\nRecommendations")
	fmt.Fprintln(out, "---------------")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(out, "- %s\n", rec)
	}
}
