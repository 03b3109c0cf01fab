package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rishabgems/invoicegen/models"
	"rishabgems/invoicegen/services"
	"rishabgems/invoicegen/utils"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
}

// Preview validates the form and returns the computed invoice without
// rendering a document.
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var req models.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, utils.NewBadRequestError("Invalid request payload", err))
		return
	}

	inv, err := h.Service.Prepare(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// Generate renders the invoice (?format=pdf|xlsx). With ?upload=true the
// document goes to the document store and its URL is returned instead of
// the file.
func (h *InvoiceHandler) Generate(c *gin.Context) {
	var req models.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, utils.NewBadRequestError("Invalid request payload", err))
		return
	}

	format := c.DefaultQuery("format", "pdf")
	upload, _ := strconv.ParseBool(c.DefaultQuery("upload", "false"))

	doc, err := h.Service.Generate(c.Request.Context(), req, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	if upload {
		if err := h.Service.Upload(c.Request.Context(), doc); err != nil {
			HandleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"file":    doc.Filename,
			"url":     doc.URL,
			"summary": doc.Invoice.Summary,
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
