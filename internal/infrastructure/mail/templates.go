package mail

import (
	"fmt"
	"html/template"
	"strings"

	domain "dealer-finance-api/internal/domain/raterequest"
)

var tmplFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"pct":   func(v float64) string { return fmt.Sprintf("%.2f%%", v) },
}

const snapshotHTML = `<table>
  <tr><td>Vehicle price</td><td>{{money .Inputs.VehiclePrice}}</td></tr>
  {{if .Inputs.VehicleYear}}<tr><td>Vehicle year</td><td>{{.Inputs.VehicleYear}}</td></tr>{{end}}
  <tr><td>Deposit</td><td>{{money .Inputs.DepositAmount}}</td></tr>
  <tr><td>Term</td><td>{{.Inputs.LoanTermYears}} years, {{.Inputs.RepaymentFrequency}}</td></tr>
  {{if .Inputs.HasBalloonPayment}}<tr><td>Balloon</td><td>{{.Inputs.BalloonPercentage}}% ({{money .Breakdown.BalloonAmount}})</td></tr>{{end}}
  <tr><td>Interest rate</td><td>{{pct .Rates.NominalRatePercent}} (comparison {{pct .Rates.ComparisonRatePercent}})</td></tr>
  <tr><td>Loan amount</td><td>{{money .Breakdown.LoanAmount}}</td></tr>
  <tr><td>Repayment</td><td>{{money .Breakdown.PeriodicPayment}} per {{.Inputs.RepaymentFrequency}} period</td></tr>
  <tr><td>Total interest</td><td>{{money .Breakdown.TotalInterest}}</td></tr>
  <tr><td>Total cost of loan</td><td>{{money .Breakdown.TotalCostOfLoan}}</td></tr>
</table>`

var staffTmpl = template.Must(template.New("staff").Funcs(tmplFuncs).Parse(`<h2>New finance rate request</h2>
<p><strong>{{.Name}}</strong> ({{.Email}}, {{.Mobile}}) asked for a rate on the following quote:</p>
` + snapshotHTML + `
<p>Request id: {{.RequestID}}</p>`))

var customerTmpl = template.Must(template.New("customer").Funcs(tmplFuncs).Parse(`<h2>Hi {{.Name}},</h2>
<p>Thanks for your finance rate request. Our team's reply:</p>
<blockquote>{{.AdminReply}}</blockquote>
<p>For reference, the quote you asked about:</p>
` + snapshotHTML + `
<p>Replied by {{.RepliedBy}}.</p>`))

func renderStaffBody(r *domain.RateRequest) (string, error) {
	var b strings.Builder
	if err := staffTmpl.Execute(&b, r); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderCustomerBody(r *domain.RateRequest) (string, error) {
	var b strings.Builder
	if err := customerTmpl.Execute(&b, r); err != nil {
		return "", err
	}
	return b.String(), nil
}
