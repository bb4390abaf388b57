package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Vishalsnw/Vyap/internal/application/dto"
	"github.com/Vishalsnw/Vyap/internal/domain"
	"github.com/Vishalsnw/Vyap/internal/domain/entity"
	"github.com/Vishalsnw/Vyap/internal/domain/gst"
	"github.com/Vishalsnw/Vyap/internal/domain/repository"
	"github.com/Vishalsnw/Vyap/pkg/logger"
)

// CreateInvoiceUseCase creates an invoice: prices the cart through the
// gst calculator, persists header and items in one transaction, and then
// runs the post-commit bookkeeping (stock decrements, usage counter).
//
// Stock decrements are deliberately outside the transaction and
// at-most-once: an invoice that the user saw saved must stay saved even
// if stock bookkeeping partially fails. Failures are logged, not raised.
type CreateInvoiceUseCase struct {
	txRunner     BillingTxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	invoiceRepo  repository.InvoiceRepository
	usage        UsagePolicy
	numbering    gst.NumberingPolicy
	log          *logger.Logger
}

// NewCreateInvoiceUseCase builds the use case.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	usage UsagePolicy,
	numbering gst.NumberingPolicy,
	log *logger.Logger,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
		usage:        usage,
		numbering:    numbering,
		log:          log,
	}
}

// CreateInvoice validates the cart, snapshots product name/rate into the
// items, computes GST totals and persists the result.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer is required", domain.ErrValidation)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: invoice needs at least one line item", domain.ErrValidation)
	}

	ok, err := uc.usage.CanCreateInvoice(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrLimitReached
	}

	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s", domain.ErrNotFound, in.CustomerID)
	}

	// Snapshot the cart: name, rate and bracket are frozen into the item
	// so later product edits or deletes never rewrite this invoice.
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for i, line := range in.Items {
		if line.ProductID == "" {
			return nil, fmt.Errorf("%w: line %d has no product", domain.ErrValidation, i+1)
		}
		product, err := uc.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, line.ProductID)
		}
		rate := product.SellingPrice
		if line.Rate != nil {
			rate = *line.Rate
		}
		items = append(items, entity.InvoiceItem{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      line.Quantity,
			Rate:          rate,
			GSTPercentage: product.GSTPercentage,
		})
	}

	now := time.Now()
	inv, priced, err := gst.BuildInvoice(in.CustomerID, items, uc.numbering, now)
	if err != nil {
		return nil, err
	}
	inv.ID = uuid.New().String()

	persisted := make([]*entity.InvoiceItem, 0, len(priced))
	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		for i := range priced {
			item := priced[i]
			item.ID = uuid.New().String()
			item.InvoiceID = inv.ID
			if err := invoiceRepo.CreateItem(ctx, &item); err != nil {
				return err
			}
			persisted = append(persisted, &item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Post-commit, best-effort: stock bookkeeping and the usage counter.
	// Neither may fail the already-committed invoice.
	for _, item := range persisted {
		if err := uc.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			uc.log.Warn().Err(err).
				Str("invoice", inv.Number).
				Str("product_id", item.ProductID).
				Msg("stock decrement failed, invoice kept")
		}
	}
	if err := uc.usage.RecordInvoiceCreated(ctx); err != nil {
		uc.log.Warn().Err(err).Str("invoice", inv.Number).Msg("usage counter update failed")
	}

	return toInvoiceResponse(inv, customer.Name, persisted), nil
}

// GetInvoice returns one invoice with its items.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(ctx, id)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer, _ := uc.customerRepo.GetByID(ctx, inv.CustomerID); customer != nil {
		customerName = customer.Name
	}
	return toInvoiceResponse(inv, customerName, items), nil
}

// ListInvoices returns invoice summaries, newest first.
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context, limit, offset int) ([]*dto.InvoiceSummaryResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.invoiceRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceSummaryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, &dto.InvoiceSummaryResponse{
			ID:         inv.ID,
			Number:     inv.Number,
			CustomerID: inv.CustomerID,
			Date:       inv.Date.Format("02/01/2006"),
			GrandTotal: inv.GrandTotal,
		})
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice, customerName string, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		Number:       inv.Number,
		CustomerID:   inv.CustomerID,
		CustomerName: customerName,
		Date:         inv.Date.Format("02/01/2006"),
		Subtotal:     inv.Subtotal,
		CGST:         inv.CGST,
		SGST:         inv.SGST,
		IGST:         inv.IGST,
		TaxTotal:     inv.TaxTotal(),
		GrandTotal:   inv.GrandTotal,
		Items:        make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:            item.ID,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			Rate:          item.Rate,
			GSTPercentage: item.GSTPercentage,
			Amount:        item.Amount,
		})
	}
	return resp
}
