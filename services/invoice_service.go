package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rishabgems/invoicegen/metrics"
	"rishabgems/invoicegen/models"
	"rishabgems/invoicegen/utils"
)

var (
	ErrUnknownFormat  = errors.New("unknown document format")
	ErrUploadDisabled = errors.New("document upload is not configured")
)

type Options struct {
	CompanyName string
	BillPrefix  string
	BillerName  string
	DueDays     int
}

// Document is a rendered invoice ready for download or upload.
type Document struct {
	Invoice     models.Invoice
	Filename    string
	ContentType string
	Data        []byte
	URL         string
}

type InvoiceService struct {
	opts      Options
	renderers map[string]utils.DocumentRenderer
	uploader  utils.Uploader
	now       func() time.Time
}

// NewInvoiceService wires the renderers by extension. uploader may be nil.
func NewInvoiceService(opts Options, uploader utils.Uploader, renderers ...utils.DocumentRenderer) *InvoiceService {
	s := &InvoiceService{
		opts:      opts,
		renderers: make(map[string]utils.DocumentRenderer, len(renderers)),
		uploader:  uploader,
		now:       time.Now,
	}
	for _, r := range renderers {
		s.renderers[r.Extension()] = r
	}
	return s
}

// Prepare validates the request and computes the billing summary and the
// amount in words. A non-empty AmountInWords in the request replaces the
// generated phrase.
func (s *InvoiceService) Prepare(req models.InvoiceRequest) (models.Invoice, error) {
	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentCash
	}

	items, err := ValidateRows(req.Rows)
	var verr *ValidationError
	if !method.Valid() {
		problem := fmt.Sprintf("Payment method %q is not one of Cash, NEFT / IMPS, UPI, Cheque.", method)
		switch {
		case errors.As(err, &verr):
			verr.Problems = append(verr.Problems, problem)
		case errors.Is(err, ErrNoLineItems):
			err = &ValidationError{
				Problems: []string{"No line items entered. Fill at least one row.", problem},
				Err:      ErrNoLineItems,
			}
		case err == nil:
			err = &ValidationError{Problems: []string{problem}}
		}
	}
	if err != nil {
		if errors.As(err, &verr) {
			metrics.ValidationFailures.Inc()
		}
		return models.Invoice{}, err
	}

	amounts := make([]decimal.Decimal, len(items))
	for i, it := range items {
		amounts[i] = it.Amount
	}
	summary, err := utils.Summarize(amounts)
	if err != nil {
		return models.Invoice{}, err
	}

	words := strings.TrimSpace(req.AmountInWords)
	if words == "" {
		if words, err = utils.RupeesInWords(summary.NetPayable); err != nil {
			return models.Invoice{}, err
		}
	}

	return models.Invoice{
		Bill:          s.fillBillDefaults(req.Bill),
		PaymentMethod: method,
		Items:         items,
		Summary:       summary,
		AmountInWords: words,
	}, nil
}

func (s *InvoiceService) fillBillDefaults(b models.BillInfo) models.BillInfo {
	now := s.now()
	if b.BillNo == "" {
		b.BillNo = fmt.Sprintf("%s-%s", s.opts.BillPrefix, now.Format("20060102-150405"))
	}
	if b.BillDate.IsZero() {
		b.BillDate = now
	}
	if b.DueDate.IsZero() {
		b.DueDate = b.BillDate.AddDate(0, 0, s.opts.DueDays)
	}
	if b.BillerName == "" {
		b.BillerName = s.opts.BillerName
	}
	b.ClientAddress = utils.Truncate(strings.TrimSpace(b.ClientAddress), utils.MaxAddressLen)
	return b
}

// Generate prepares the invoice and fills the template for the given format.
func (s *InvoiceService) Generate(ctx context.Context, req models.InvoiceRequest, format string) (*Document, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	inv, err := s.Prepare(req)
	if err != nil {
		return nil, err
	}

	data, dropped := utils.BuildInvoiceDocData(inv, s.opts.CompanyName)
	if dropped > 0 {
		slog.Warn("line items exceed template capacity, extra rows not printed",
			"bill_no", inv.Bill.BillNo, "capacity", utils.MaxLineItems, "dropped", dropped)
	}

	start := time.Now()
	out, err := renderer.Render(ctx, data)
	metrics.RenderSeconds.WithLabelValues(format).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("unexpected error during %s generation: %w", format, err)
	}
	metrics.InvoicesGenerated.WithLabelValues(format).Inc()
	slog.Info("invoice generated", "bill_no", inv.Bill.BillNo, "format", format,
		"items", len(inv.Items), "net_payable", inv.Summary.NetPayable.String())

	return &Document{
		Invoice:     inv,
		Filename:    s.filename(inv, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        out,
	}, nil
}

// Upload sends a generated document to the document store.
func (s *InvoiceService) Upload(ctx context.Context, doc *Document) error {
	if s.uploader == nil {
		return ErrUploadDisabled
	}
	url, err := s.uploader.Upload(ctx, doc.Data, doc.Filename, doc.ContentType)
	if err != nil {
		return err
	}
	doc.URL = url
	slog.Info("invoice uploaded", "bill_no", doc.Invoice.Bill.BillNo, "url", url)
	return nil
}

func (s *InvoiceService) filename(inv models.Invoice, ext string) string {
	name := fmt.Sprintf("%s_%s_%s_%s_%s.%s",
		strings.ReplaceAll(s.opts.CompanyName, " ", ""),
		inv.Bill.BillNo, inv.Bill.ClientBillTo, inv.Bill.ClientPhone,
		inv.Bill.BillDate.Format("20060102"), ext)
	return utils.CleanFileName(name)
}
