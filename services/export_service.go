// services/export_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/sirupsen/logrus"
)

const renderTimeout = 30 * time.Second

// ExportService turns an assembled period bundle into a PDF byte stream
// through the external wkhtmltopdf renderer. The renderer is an optional
// collaborator: its absence is a reportable error, never a crash.
type ExportService struct {
	tmpl *template.Template
}

func NewExportService() *ExportService {
	if path := os.Getenv("WKHTMLTOPDF_PATH"); path != "" {
		wkhtmltopdf.SetPath(path)
	}
	return &ExportService{
		tmpl: template.Must(template.New("monthly_report").Parse(monthlyReportTemplate)),
	}
}

// MonthlyReportPDF renders the bundle. The call is synchronous and bounded
// by a timeout so a wedged renderer fails instead of hanging the request.
func (s *ExportService) MonthlyReportPDF(ctx context.Context, bundle *PeriodBundle) ([]byte, error) {
	var html bytes.Buffer
	if err := s.tmpl.Execute(&html, bundle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderingFailed, err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		logrus.WithError(err).Error("wkhtmltopdf not available")
		return nil, ErrRenderingUnavailable
	}
	pdfg.AddPage(wkhtmltopdf.NewPageReader(&html))

	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	if err := pdfg.CreateContext(ctx); err != nil {
		logrus.WithError(err).Error("pdf rendering failed")
		return nil, fmt.Errorf("%w: %v", ErrRenderingFailed, err)
	}
	return pdfg.Bytes(), nil
}

const monthlyReportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; }
h1 { font-size: 18px; }
h2 { font-size: 14px; margin-top: 24px; }
table { width: 100%; border-collapse: collapse; margin-top: 8px; }
th, td { border: 1px solid #999; padding: 4px 6px; text-align: left; }
th { background: #eee; }
.total { margin-top: 16px; font-weight: bold; }
</style>
</head>
<body>
<h1>Monthly Report: {{.Month}} {{.Year}}</h1>

<h2>Daily Sales Reports</h2>
<table>
<tr><th>Date</th><th>Franchisee</th><th>Location</th><th>Total Sales</th><th>Cash Collected</th><th>Banked In</th><th>Expenses</th><th>Description</th></tr>
{{range .Reports}}
<tr>
<td>{{.ReportDate.Format "2006-01-02"}}</td>
<td>{{.Franchisee.Name}}</td>
<td>{{.Franchisee.Location}}</td>
<td>{{printf "%.2f" .TotalSales}}</td>
<td>{{printf "%.2f" .CashCollected}}</td>
<td>{{printf "%.2f" .BankedIn}}</td>
<td>{{printf "%.2f" .Expenses}}</td>
<td>{{.Description}}</td>
</tr>
{{end}}
</table>

<h2>Team Attendance</h2>
<table>
<tr><th>Date</th><th>Franchisee</th><th>Team Member</th><th>Present</th><th>Remarks</th></tr>
{{range .Attendance}}
<tr>
<td>{{.AttendanceDate.Format "2006-01-02"}}</td>
<td>{{.Franchisee.Name}}</td>
<td>{{.TeamMemberName}}</td>
<td>{{if .IsPresent}}Yes{{else}}No{{end}}</td>
<td>{{.Remarks}}</td>
</tr>
{{end}}
</table>

<p class="total">Total sales for the month: {{printf "%.2f" .TotalSales}}</p>
</body>
</html>`
