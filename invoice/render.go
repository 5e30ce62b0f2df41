package invoice

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"image/png"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"solevara/models"

	"github.com/disintegration/imaging"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Brand block printed on every invoice.
const (
	brandName    = "Solevara Organics"
	brandAddress = "12 Botanical Lane, Bengaluru 560001"
	brandEmail   = "hello@solevara.com"
	brandPhone   = "+91 80 4012 3456"

	currencySymbol = "Rs. "
	nameBudget     = 40 // item-name character budget before ellipsis

	hmacSecret = "solevara-invoice-secret" // keep secure
)

// A4 in mm, portrait.
const (
	pageW      = 210.0
	pageH      = 297.0
	marginL    = 20.0
	marginR    = 20.0
	rowStep    = 8.0
	tableBreak = 270.0 // start a fresh page past this y; continuation pages use the blank layout
)

// anchors differ between the blank layout (which draws its own header
// band) and the template layout (whose background carries the labels).
type anchors struct {
	headerY    float64
	customerY  float64
	tableY     float64
	drawHeader bool
}

var blankAnchors = anchors{headerY: 20, customerY: 60, tableY: 95, drawHeader: true}
var templateAnchors = anchors{headerY: 30, customerY: 72, tableY: 104, drawHeader: false}

// formatAmount renders a monetary value with thousands separators.
// Whole amounts drop the decimals ("1,080"); fractional ones keep two
// ("15.99"), matching the storefront's toLocaleString output.
func formatAmount(v float64) string {
	v = math.Round(v*100) / 100
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	frac := int64(math.Round((v - float64(whole)) * 100))

	s := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if frac > 0 {
		out = fmt.Sprintf("%s.%02d", out, frac)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// truncateName caps an item name at the column budget with an ellipsis.
func truncateName(name string, budget int) string {
	runes := []rune(name)
	if len(runes) <= budget {
		return name
	}
	return string(runes[:budget-3]) + "..."
}

// wrapText breaks a long address into lines of at most width characters.
// Tokens longer than the width are hard-split so no line overflows.
func wrapText(text string, width int) []string {
	if width <= 0 {
		width = defaultAddressWrapWidth
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) > width:
			lines = append(lines, current)
			current = word
		default:
			current += " " + word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// taxLabel renders the configured rate as "Tax (8%)".
func taxLabel(rate float64) string {
	return "Tax (" + strconv.FormatFloat(rate*100, 'f', -1, 64) + "%)"
}

// Filename derives the download name from the invoice number.
func Filename(rec models.InvoiceDataRecord) string {
	return "Invoice_" + rec.InvoiceNo + ".pdf"
}

// loadTemplate makes a single attempt to load the template image and
// normalize it to the page's pixel dimensions. Any failure is returned
// to the caller, which falls back to the blank layout.
func loadTemplate(path string) ([]byte, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}

	// stretch to A4 at 150dpi so the overlay anchors line up
	img = imaging.Resize(img, 1240, 1754, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// qrPayload returns a signed verification string for the invoice:
// invoiceNo|email|grandTotal|timestamp|signature.
func qrPayload(rec models.InvoiceDataRecord) string {
	data := fmt.Sprintf("%s|%s|%.2f|%d", rec.InvoiceNo, rec.Email, rec.GrandTotal, time.Now().Unix())
	h := hmac.New(sha256.New, []byte(hmacSecret))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return data + "|" + sig
}

// Render lays the invoice record out on an A4 page and returns the PDF
// bytes. If a template image is configured and loads, the text is overlaid
// on it; otherwise the blank-canvas layout is used. Template failure is
// non-fatal: it is logged and the blank path always produces a document
// with the same computed totals.
func Render(rec models.InvoiceDataRecord, cfg Config) ([]byte, error) {
	if rec.InvoiceNo == "" {
		rec.InvoiceNo = NewNumber()
	}
	if rec.InvoiceDate == "" {
		rec.InvoiceDate = time.Now().Format("02 Jan 2006")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	layout := blankAnchors
	if cfg.TemplatePath != "" {
		if tmpl, err := loadTemplate(cfg.TemplatePath); err != nil {
			log.Printf("Invoice template load failed (%s), using blank layout: %v", cfg.TemplatePath, err)
		} else {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("template", opts, bytes.NewReader(tmpl))
			pdf.ImageOptions("template", 0, 0, pageW, pageH, false, opts, 0, "")
			layout = templateAnchors
		}
	}

	if layout.drawHeader {
		drawHeaderBand(pdf)
	}
	drawHeaderText(pdf, rec, layout)
	drawCustomerBlock(pdf, rec, cfg, layout)
	y := drawItemTable(pdf, rec, layout)
	y = drawTotals(pdf, rec, y)
	drawFooter(pdf, rec)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func drawHeaderBand(pdf *gofpdf.Fpdf) {
	pdf.SetFillColor(16, 78, 66)
	pdf.Rect(0, 0, pageW, 45, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 24)
	pdf.Text(marginL, 20, brandName)

	pdf.SetFont("Arial", "", 10)
	pdf.Text(marginL, 28, brandAddress)
	pdf.Text(marginL, 34, "Email: "+brandEmail)
	pdf.Text(marginL, 40, "Phone: "+brandPhone)
}

func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

func drawHeaderText(pdf *gofpdf.Fpdf, rec models.InvoiceDataRecord, layout anchors) {
	right := pageW - marginR

	if layout.drawHeader {
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Arial", "B", 20)
		textRight(pdf, right, layout.headerY, "INVOICE")
	} else {
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetFont("Arial", "", 10)
	textRight(pdf, right, layout.headerY+8, "Invoice #: "+rec.InvoiceNo)
	textRight(pdf, right, layout.headerY+14, "Date: "+rec.InvoiceDate)
	pdf.SetTextColor(0, 0, 0)
}

func drawCustomerBlock(pdf *gofpdf.Fpdf, rec models.InvoiceDataRecord, cfg Config, layout anchors) {
	y := layout.customerY

	pdf.SetFont("Arial", "B", 12)
	pdf.Text(marginL, y, "Bill To:")
	y += 8

	pdf.SetFont("Arial", "", 10)
	pdf.Text(marginL, y, rec.CustomerName)
	y += 6
	if rec.Email != "" {
		pdf.Text(marginL, y, rec.Email)
		y += 6
	}
	if rec.Phone != "" {
		pdf.Text(marginL, y, rec.Phone)
		y += 6
	}
	for _, line := range wrapText(rec.Address, cfg.AddressWrapWidth) {
		pdf.Text(marginL, y, line)
		y += 5
	}
}

// column layout: name left-aligned, numbers right-aligned
var colWidths = [4]float64{80, 25, 32, 33}

func drawTableHead(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFillColor(16, 78, 66)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(colWidths[0], rowStep, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[1], rowStep, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[2], rowStep, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colWidths[3], rowStep, "Total", "1", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	return y + rowStep
}

// drawItemTable renders every line item exactly once, in input order,
// advancing a fixed step per row. Returns the y below the last row.
func drawItemTable(pdf *gofpdf.Fpdf, rec models.InvoiceDataRecord, layout anchors) float64 {
	y := drawTableHead(pdf, layout.tableY)

	for _, item := range rec.Items {
		if y > tableBreak {
			pdf.AddPage()
			y = drawTableHead(pdf, 20)
		}
		pdf.SetXY(marginL, y)
		pdf.CellFormat(colWidths[0], rowStep, truncateName(item.Name, nameBudget), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], rowStep, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], rowStep, currencySymbol+formatAmount(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], rowStep, currencySymbol+formatAmount(item.LineTotal), "1", 1, "R", false, 0, "")
		y += rowStep
	}
	return y + 10
}

// drawTotals renders subtotal, shipping (when present), the labelled tax
// line, a separator rule, and the emphasized grand total. All values come
// from the record; nothing is recomputed here.
func drawTotals(pdf *gofpdf.Fpdf, rec models.InvoiceDataRecord, y float64) float64 {
	if y > tableBreak-40 {
		pdf.AddPage()
		y = 20
	}

	right := pageW - marginR
	labelX := right - 40.0

	pdf.SetFont("Arial", "", 10)
	pdf.Text(labelX, y, "Subtotal:")
	textRight(pdf, right, y, currencySymbol+formatAmount(rec.Subtotal))
	y += 6

	if rec.Shipping > 0 {
		pdf.Text(labelX, y, "Shipping:")
		textRight(pdf, right, y, currencySymbol+formatAmount(rec.Shipping))
		y += 6
	}

	pdf.Text(labelX, y, taxLabel(rec.TaxRate)+":")
	textRight(pdf, right, y, currencySymbol+formatAmount(rec.Tax))
	y += 4

	pdf.SetDrawColor(16, 78, 66)
	pdf.Line(labelX, y, right, y)
	y += 8

	pdf.SetFont("Arial", "B", 12)
	pdf.Text(labelX, y, "Grand Total:")
	textRight(pdf, right, y, currencySymbol+formatAmount(rec.GrandTotal))
	return y
}

func drawFooter(pdf *gofpdf.Fpdf, rec models.InvoiceDataRecord) {
	footerY := pageH - 20

	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	thanks := "Thank you for your business!"
	pdf.Text((pageW-pdf.GetStringWidth(thanks))/2, footerY, thanks)
	generated := "Generated on " + time.Now().Format("02 Jan 2006")
	pdf.Text((pageW-pdf.GetStringWidth(generated))/2, footerY+5, generated)
	pdf.SetTextColor(0, 0, 0)

	// verification QR in the bottom-right corner
	qrPNG, err := qrcode.Encode(qrPayload(rec), qrcode.Medium, 128)
	if err != nil {
		log.Println("Invoice QR generation failed:", err)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", pageW-marginR-25, footerY-25, 25, 25, false, opts, 0, "")
}
