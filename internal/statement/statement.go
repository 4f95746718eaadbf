// Package statement renders card invoices as PDF statements.
package statement

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/moneta-finance/backend/internal/installment"
	"github.com/moneta-finance/backend/internal/invoice"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/money"
	"github.com/moneta-finance/backend/internal/types"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Line is one installment charged on the invoice.
type Line struct {
	Date        time.Time
	Description string
	Installment string // e.g. "2/10", empty for single payments
	Amount      decimal.Decimal
}

// Statement is the content of an invoice statement.
type Statement struct {
	Card    models.Card
	Invoice models.CardInvoice
	Lines   []Line
}

// New builds the statement for the invoice from the expenses charged
// to the card.
func New(card models.Card, i models.CardInvoice, transactions []models.Transaction) Statement {
	return Statement{
		Card:    card,
		Invoice: i,
		Lines:   Lines(transactions, i.Month),
	}
}

// Lines returns the installments of the transactions that are charged
// in month, ordered by purchase date.
func Lines(transactions []models.Transaction, month types.Month) []Line {
	lines := make([]Line, 0)

	for _, t := range transactions {
		for _, part := range installment.Schedule(t.Amount, t.Installments, t.TransactionDate) {
			if !part.Month.Equal(month) {
				continue
			}

			line := Line{
				Date:        t.TransactionDate,
				Description: t.Description,
				Amount:      part.Amount,
			}
			if t.Installments > 1 {
				line.Installment = fmt.Sprintf("%d/%d", part.Number, t.Installments)
			}

			lines = append(lines, line)
		}
	}

	slices.SortStableFunc(lines, func(a, b Line) int {
		return a.Date.Compare(b.Date)
	})

	return lines
}

// Filename returns the file name for the statement download.
func (s Statement) Filename() string {
	return fmt.Sprintf("fatura-%s-%s.pdf", strings.ToLower(string(s.Card.CardBrand)), s.Invoice.Month)
}

var colWidths = []float64{26, 96, 24, 36}

// Render writes the statement as PDF to w.
func Render(w io.Writer, s Statement, f money.Formatter) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Core fonts use cp1252, names and descriptions are UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r, g, b := hexRGB(s.Card.CardGradientStart)
	pdf.SetFillColor(r, g, b)
	pdf.Rect(14, 14, 182, 24, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(18, 18)
	pdf.Cell(0, 8, tr(s.Card.CardNickname))
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(18, 27)
	pdf.Cell(0, 6, tr(cardLine(s.Card)))

	pdf.SetXY(14, 44)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Fatura %s", s.Invoice.Month)))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	if due, ok := s.Card.DueDate(s.Invoice.Month); ok {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Vencimento: %s", due.Format("02/01/2006"))))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, tr(fmt.Sprintf("Situação: %s", statusLabel(s.Invoice))))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	summary := []float64{60.66, 60.67, 60.67}
	pdf.CellFormat(summary[0], 9, "Total", "1", 0, "C", true, 0, "")
	pdf.CellFormat(summary[1], 9, "Pago", "1", 0, "C", true, 0, "")
	pdf.CellFormat(summary[2], 9, "Restante", "1", 1, "C", true, 0, "")

	remaining := decimal.Max(s.Invoice.TotalAmount.Sub(s.Invoice.PaidAmount), decimal.Zero)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(summary[0], 9, tr(f.Format(s.Invoice.TotalAmount)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(summary[1], 9, tr(f.Format(s.Invoice.PaidAmount)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(summary[2], 9, tr(f.Format(remaining)), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colWidths[0], 8, "Data", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidths[1], 8, tr("Descrição"), "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[2], 8, "Parcela", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidths[3], 8, "Valor", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	header()

	if len(s.Lines) == 0 {
		pdf.CellFormat(0, 8, tr("Nenhuma compra nesta fatura"), "1", 1, "C", false, 0, "")
	}

	for _, line := range s.Lines {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			header()
		}

		pdf.CellFormat(colWidths[0], 8, line.Date.Format("02/01/2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, tr(truncate(line.Description, 60)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, line.Installment, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, tr(f.Format(line.Amount)), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}

func cardLine(c models.Card) string {
	parts := []string{strings.ToUpper(string(c.CardBrand))}
	if c.CardNumberLast4 != "" {
		parts = append(parts, "•••• "+c.CardNumberLast4)
	}
	if c.CardholderName != "" {
		parts = append(parts, c.CardholderName)
	}
	return strings.Join(parts, "  ")
}

func statusLabel(i models.CardInvoice) string {
	switch i.Status {
	case invoice.StatusPaid:
		return "Paga"
	case invoice.StatusPartial:
		return "Parcialmente paga"
	default:
		return "Aberta"
	}
}

func truncate(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max-1]) + "…"
}

// hexRGB parses a #rrggbb color. Invalid colors are rendered gray.
func hexRGB(color string) (int, int, int) {
	var r, g, b int
	_, err := fmt.Sscanf(color, "#%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return 107, 114, 128
	}
	return r, g, b
}
