package vehicle_controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/utils"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// DownloadLoanQuotePDF godoc
// @Summary Download loan quote PDF
// @Description Generate a loan quote PDF with the EMI and a year-wise amortization breakdown
// @Tags Calculators
// @Produce octet-stream
// @Param principal query number true "Loan principal (INR)"
// @Param rate query number true "Annual interest rate (%)"
// @Param tenure query int true "Tenure in months"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid loan inputs"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /vehicles/emi/quote.pdf [get]
func DownloadLoanQuotePDF(c *gin.Context) {
	principal, err1 := strconv.ParseFloat(c.Query("principal"), 64)
	rate, err2 := strconv.ParseFloat(c.Query("rate"), 64)
	tenure, err3 := strconv.Atoi(c.Query("tenure"))
	if err1 != nil || err2 != nil || err3 != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "principal, rate and tenure query params are required"))
		return
	}

	emi, err := utils.CalculateEMI(principal, rate, tenure)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Principal, rate and tenure must form a valid loan"))
		return
	}

	pdfBuffer, err := generateLoanQuotePDF(principal, rate, tenure, emi)
	if err != nil {
		log.Printf("[vehicle.loan-quote] pdf generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate loan quote"))
		return
	}

	filename := fmt.Sprintf("loan-quote-%d.pdf", time.Now().Unix())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", len(pdfBuffer)))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer)

	log.Printf("[vehicle.loan-quote] quote generated (principal=%.0f rate=%.2f tenure=%d)", principal, rate, tenure)
}

// generateLoanQuotePDF lays out the quote: loan summary up top, then a
// year-wise amortization table computed month by month.
func generateLoanQuotePDF(principal, rate float64, tenure int, emi float64) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("LOAN QUOTE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("VAHAN BAZAR", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(time.Now().Format("Jan 02, 2006"), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	totalPayment := emi * float64(tenure)
	summary := [][2]string{
		{"Principal", fmt.Sprintf("INR %.2f", principal)},
		{"Interest rate", fmt.Sprintf("%.2f%% p.a.", rate)},
		{"Tenure", fmt.Sprintf("%d months", tenure)},
		{"Monthly EMI", fmt.Sprintf("INR %.2f", emi)},
		{"Total payment", fmt.Sprintf("INR %.2f", totalPayment)},
		{"Total interest", fmt.Sprintf("INR %.2f", totalPayment-principal)},
	}
	for _, row := range summary {
		label, value := row[0], row[1]
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(label, props.Text{Size: 10, Color: mediumGray})
			})
			m.Col(6, func() {
				m.Text(value, props.Text{Size: 10, Style: consts.Bold, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	// Amortization table header
	m.Row(6, func() {
		headers := []string{"Year", "Principal paid", "Interest paid", "Balance"}
		for i, h := range headers {
			header := h
			align := consts.Right
			if i == 0 {
				align = consts.Left
			}
			m.Col(3, func() {
				m.Text(header, props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: align})
			})
		}
	})

	monthlyRate := rate / 1200
	balance := principal
	month := 0
	year := 1
	for month < tenure {
		var principalPaid, interestPaid float64
		for i := 0; i < 12 && month < tenure; i++ {
			interest := balance * monthlyRate
			repaid := emi - interest
			interestPaid += interest
			principalPaid += repaid
			balance -= repaid
			month++
		}
		if balance < 0 {
			balance = 0
		}

		yearLabel := fmt.Sprintf("%d", year)
		pp := fmt.Sprintf("%.2f", principalPaid)
		ip := fmt.Sprintf("%.2f", interestPaid)
		bal := fmt.Sprintf("%.2f", balance)
		m.Row(6, func() {
			m.Col(3, func() {
				m.Text(yearLabel, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(3, func() {
				m.Text(pp, props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(3, func() {
				m.Text(ip, props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(3, func() {
				m.Text(bal, props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
		year++
	}

	m.Row(10, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Indicative quote only. Final terms depend on the lender.", props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
