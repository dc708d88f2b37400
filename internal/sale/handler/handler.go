package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/cli"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/pkg/money"
	"github.com/labela/labela-control/internal/product"
	"github.com/labela/labela-control/internal/sale"
	"github.com/labela/labela-control/internal/sale/composer"
)

// searchLimit matches the size of the product suggestion list.
const searchLimit = 5

type SaleHandler struct {
	sales    sale.UseCase
	products product.UseCase
	composer *composer.Composer
	n        *cli.Notifier
	logger   logger.ZapLogger
}

func NewSaleHandler(sales sale.UseCase, products product.UseCase, c *composer.Composer, n *cli.Notifier, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		sales:    sales,
		products: products,
		composer: c,
		n:        n,
		logger:   log,
	}
}

func (h *SaleHandler) Run(ctx context.Context, args []string) error {
	return cli.Dispatch(ctx, h.n, "sales", args, map[string]cli.Action{
		"list":   h.List,
		"get":    h.Get,
		"search": h.Search,
		"create": h.Create,
	})
}

func (h *SaleHandler) List(ctx context.Context, _ []string) error {
	sales, err := h.sales.ListSales(ctx)
	if err != nil {
		h.n.Failure(err, "SalesLoadFailed")
		return cli.ErrReported
	}

	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, saleRow(&s))
	}
	h.n.Table([]string{"ID", "DATA", "CLIENTE", "PAGAMENTO", "TOTAL"}, rows)
	return nil
}

func (h *SaleHandler) Get(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("sales get", h.n)
	id := fs.Int64("id", 0, "sale id")
	if err := cli.Parse(fs, args); err != nil {
		return err
	}
	if err := cli.RequireID(fs, *id); err != nil {
		return err
	}

	s, err := h.sales.GetSale(ctx, *id)
	if err != nil {
		h.n.Failure(err, "SaleLoadFailed")
		if apperror.IsNotFound(err) {
			_ = h.List(ctx, nil)
		}
		return cli.ErrReported
	}

	h.n.Table([]string{"ID", "DATA", "CLIENTE", "PAGAMENTO", "TOTAL"}, [][]string{saleRow(s)})
	if len(s.Products) == 0 {
		return nil
	}

	h.n.Printf("\n")
	rows := make([][]string, 0, len(s.Products))
	for _, p := range s.Products {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			strconv.Itoa(p.Quantity),
			money.Format(p.SalePriceCents),
			money.Format(p.SalePriceCents * int64(p.Quantity)),
		})
	}
	h.n.Table([]string{"PRODUTO", "NOME", "QTD", "UNITÁRIO", "SUBTOTAL"}, rows)
	return nil
}

// Search lists the first matches for a product name, the way the sale form
// suggests products while typing.
func (h *SaleHandler) Search(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("sales search", h.n)
	term := fs.String("term", "", "part of the product name")
	if err := cli.Parse(fs, args); err != nil {
		return err
	}

	catalog, err := h.products.ListProducts(ctx)
	if err != nil {
		h.n.Failure(err, "ProductsLoadFailed")
		return cli.ErrReported
	}

	h.composer.OpenDraft()
	found := composer.Take(h.composer.SearchProducts(catalog, *term), searchLimit)

	rows := make([][]string, 0, len(found))
	for _, p := range found {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			money.Format(p.SalePriceCents),
			strconv.Itoa(p.StockQty),
		})
	}
	h.n.Table([]string{"ID", "NOME", "PREÇO", "ESTOQUE"}, rows)
	return nil
}

type item struct {
	productID int64
	quantity  int
}

// itemsFlag collects repeated -item ID[:QTY] values.
type itemsFlag []item

func (f *itemsFlag) String() string {
	parts := make([]string, 0, len(*f))
	for _, it := range *f {
		parts = append(parts, fmt.Sprintf("%d:%d", it.productID, it.quantity))
	}
	return strings.Join(parts, ",")
}

func (f *itemsFlag) Set(value string) error {
	idPart, qtyPart, hasQty := strings.Cut(value, ":")

	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid product id %q", idPart)
	}

	qty := 1
	if hasQty {
		qty, err = strconv.Atoi(strings.TrimSpace(qtyPart))
		if err != nil {
			return fmt.Errorf("invalid quantity %q", qtyPart)
		}
	}

	*f = append(*f, item{productID: id, quantity: qty})
	return nil
}

var errAborted = errors.New("draft aborted")

// Create composes a draft from the flags against the live catalog and submits it.
func (h *SaleHandler) Create(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("sales create", h.n)
	customerID := fs.Int64("customer", 0, "customer id")
	paymentID := fs.Int64("payment", 0, "payment method id (see payment-methods)")
	var items itemsFlag
	fs.Var(&items, "item", "product as ID or ID:QTY, repeatable")
	if err := cli.Parse(fs, args); err != nil {
		return err
	}

	catalog, err := h.products.ListProducts(ctx)
	if err != nil {
		h.n.Failure(err, "ProductsLoadFailed")
		return cli.ErrReported
	}

	if err := h.compose(catalog, *customerID, *paymentID, items); err != nil {
		return cli.ErrReported
	}
	h.printDraft()

	s, err := h.composer.Submit(ctx)
	if err != nil {
		if errors.Is(err, composer.ErrSubmissionInFlight) {
			h.n.Warn("SubmissionInFlight")
			return cli.ErrReported
		}
		h.n.Failure(err, "SaleCreateFailed")
		return cli.ErrReported
	}

	h.logger.Debug("sale submitted", zap.Int64("sale_id", s.ID))
	h.n.Success("SaleCreated")
	return h.List(ctx, nil)
}

func (h *SaleHandler) compose(catalog []model.Product, customerID, paymentID int64, items itemsFlag) error {
	byID := make(map[int64]model.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	if !h.composer.OpenDraft() {
		h.n.Warn("SubmissionInFlight")
		return errAborted
	}
	h.composer.SetCustomer(customerID)
	h.composer.SetPaymentMethod(paymentID)

	for _, it := range items {
		p, ok := byID[it.productID]
		if !ok {
			h.n.Warn("ProductNotFound", map[string]any{"ID": it.productID})
			return errAborted
		}
		if !h.composer.AddLine(p) {
			h.n.Warn("ProductAlreadyAdded", map[string]any{"ID": it.productID})
			continue
		}
		if it.quantity < 1 {
			h.n.Warn("QuantityInvalid")
			return errAborted
		}
		h.composer.SetQuantity(it.productID, it.quantity)
	}
	return nil
}

func (h *SaleHandler) printDraft() {
	lines := h.composer.Lines()
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			strconv.FormatInt(l.ProductID, 10),
			l.Name,
			strconv.Itoa(l.Quantity),
			money.Format(l.UnitSaleCents),
			money.Format(l.Subtotal()),
		})
		if l.ExceedsStock() {
			h.n.Warn("StockHint", map[string]any{"Name": l.Name, "Stock": l.StockQty})
		}
	}
	if len(rows) > 0 {
		h.n.Table([]string{"PRODUTO", "NOME", "QTD", "UNITÁRIO", "SUBTOTAL"}, rows)
	}
	h.n.Printf("%s\n", h.n.T("SaleTotal", map[string]any{"Total": money.Format(h.composer.Total())}))
}

// PaymentMethods prints the fixed payment method catalogue.
func (h *SaleHandler) PaymentMethods(_ context.Context, _ []string) error {
	rows := make([][]string, 0, len(model.PaymentMethods))
	for _, pm := range model.PaymentMethods {
		rows = append(rows, []string{strconv.FormatInt(pm.ID, 10), pm.Name})
	}
	h.n.Table([]string{"ID", "FORMA DE PAGAMENTO"}, rows)
	return nil
}

func saleRow(s *model.Sale) []string {
	payment := "-"
	if pm, ok := model.PaymentMethodByID(s.PaymentMethodID); ok {
		payment = pm.Name
	}
	return []string{
		strconv.FormatInt(s.ID, 10),
		cli.Date(s.CreatedAt),
		s.CustomerName(),
		payment,
		money.Format(s.TotalCents),
	}
}
