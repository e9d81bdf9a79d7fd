package vehicle_controller

import (
	"errors"
	"net/http"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/utils"
	"github.com/gin-gonic/gin"
)

type emiRequest struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Tenure    int     `json:"tenure"`
}

// CalculateEMI godoc
// @Summary EMI calculator
// @Description Compute the equal monthly installment for a vehicle loan
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body emiRequest true "Principal (INR), annual rate (%), tenure (months)"
// @Success 200 {object} models.ApiResponse "emi"
// @Failure 400 {object} models.ApiResponse "Invalid loan inputs"
// @Router /vehicles/emi [post]
func CalculateEMI(c *gin.Context) {
	var req emiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	emi, err := utils.CalculateEMI(req.Principal, req.Rate, req.Tenure)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidLoanTerms):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Loan terms produce a degenerate amortization"))
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Principal, rate and tenure must be positive numbers"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "EMI calculated", gin.H{"emi": emi}))
}
