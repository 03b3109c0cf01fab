package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"rishabgems/invoicegen/utils"
)

type wordsRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// AmountWords renders an amount in Indian-numbering words.
func AmountWords(c *gin.Context) {
	var req wordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, utils.NewBadRequestError("Invalid request payload", err))
		return
	}

	words, err := utils.AmountToWords(*req.Amount)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"words":  words,
		"rupees": "Rupees " + words + " Only.",
	})
}

type summaryRequest struct {
	Amounts []decimal.Decimal `json:"amounts"`
}

// BillingSummary totals line amounts and names the net payable in words.
func BillingSummary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, utils.NewBadRequestError("Invalid request payload", err))
		return
	}

	summary, err := utils.Summarize(req.Amounts)
	if err != nil {
		HandleError(c, err)
		return
	}
	words, err := utils.RupeesInWords(summary.NetPayable)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"subtotal":        summary.Subtotal,
		"rounding":        summary.Rounding,
		"net_payable":     summary.NetPayable,
		"amount_in_words": words,
	})
}
