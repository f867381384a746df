package order

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/tyredepot/admin/internal/domain"
)

// buildInvoicePDF renders a one-page invoice for an order and returns the
// PDF bytes with a download filename.
func buildInvoicePDF(o *domain.Order, now time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+o.Number, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no : "+o.Number)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+now.Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Order date : "+o.OrderedAt.Format("2006-01-02"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name  : "+orDash(o.CustomerName))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email : "+orDash(o.CustomerEmail))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Phone : "+orDash(o.CustomerPhone))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payments:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(o.Payments) == 0 {
		pdf.Cell(0, 6, "No payments recorded.")
		pdf.Ln(6)
	}
	var paid float64
	for i, p := range o.Payments {
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s  %s", i+1, formatAmount(p.Amount), p.Status))
		pdf.Ln(6)
		paid += p.Amount
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+formatAmount(o.Total))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Paid : "+formatAmount(paid))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Payment status: %s", o.PaymentStatus))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for your order.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", o.Number)
	return buf.Bytes(), filename, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
