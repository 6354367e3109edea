package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cafe-management-backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// Receipt carries the fields the renderer needs to draw one bill.
type Receipt struct {
	Name           string
	ContactNumber  string
	Email          string
	PaymentMethod  string
	ProductDetails string
	TotalAmount    string
}

// Renderer writes receipt PDFs into a flat directory, one file per
// bill uuid. Concurrent writes to the same uuid are last-writer-wins.
type Renderer struct {
	storeRoot string
}

func NewRenderer(storeRoot string) *Renderer {
	return &Renderer{storeRoot: storeRoot}
}

func (r *Renderer) ArtifactPath(uuid string) string {
	return filepath.Join(r.storeRoot, uuid+".pdf")
}

func (r *Renderer) Exists(uuid string) bool {
	info, err := os.Stat(r.ArtifactPath(uuid))
	return err == nil && !info.IsDir()
}

func (r *Renderer) Read(uuid string) ([]byte, error) {
	return os.ReadFile(r.ArtifactPath(uuid))
}

var tableHeaders = []string{"Name", "Category", "Quantity", "Price", "Sub Total"}

// Render draws the receipt and writes it to the uuid's artifact path.
func (r *Renderer) Render(uuid string, receipt Receipt) error {
	items, err := ParseLineItems(receipt.ProductDetails)
	if err != nil {
		return fmt.Errorf("parse product details: %w", err)
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()

	drawBorder(pdf)

	setFont(pdf, "Header")
	pdf.CellFormat(0, 26, "Cafe Management System", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	setFont(pdf, "Data")
	info := fmt.Sprintf("Name: %s\nContact Number: %s\nEmail: %s\nPayment Method: %s",
		receipt.Name, receipt.ContactNumber, receipt.Email, receipt.PaymentMethod)
	pdf.MultiCell(0, 14, info, "", "L", false)
	pdf.Ln(14)

	drawTable(pdf, items)

	pdf.Ln(14)
	setFont(pdf, "Data")
	footer := fmt.Sprintf("Total : %s\nThank you for visiting. Please visit again!!", receipt.TotalAmount)
	pdf.MultiCell(0, 14, footer, "", "L", false)

	if err := os.MkdirAll(r.storeRoot, 0o755); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(r.ArtifactPath(uuid))
}

// ParseLineItems decodes the serialized product list stored on a bill.
func ParseLineItems(productDetails string) ([]models.LineItem, error) {
	var items []models.LineItem
	if err := json.Unmarshal([]byte(productDetails), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func setFont(pdf *gofpdf.Fpdf, kind string) {
	switch kind {
	case "Header":
		pdf.SetFont("Arial", "BI", 18)
	case "Data":
		pdf.SetFont("Courier", "B", 11)
	default:
		pdf.SetFont("Arial", "", 12)
	}
	pdf.SetTextColor(0, 0, 0)
}

// drawBorder draws the fixed decorative frame, independent of content.
func drawBorder(pdf *gofpdf.Fpdf) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	pdf.Rect(18, 15, 559, 810, "D")
}

func drawTable(pdf *gofpdf.Fpdf, items []models.LineItem) {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(tableHeaders))

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(255, 255, 0)
	pdf.SetLineWidth(2)
	for _, title := range tableHeaders {
		pdf.CellFormat(colW, 22, title, "1", 0, "CM", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	pdf.SetLineWidth(0.5)
	for _, item := range items {
		pdf.CellFormat(colW, 20, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW, 20, item.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW, 20, item.Quantity, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW, 20, formatAmount(item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW, 20, formatAmount(item.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}

// formatAmount keeps at least one fractional digit: 10 -> "10.0".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
