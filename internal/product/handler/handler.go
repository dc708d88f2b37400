package handler

import (
	"context"
	"flag"
	"strconv"

	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/cli"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/pkg/money"
	"github.com/labela/labela-control/internal/product"
	"github.com/labela/labela-control/internal/product/dto"
)

type ProductHandler struct {
	uc     product.UseCase
	n      *cli.Notifier
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, n *cli.Notifier, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		n:      n,
		logger: log,
	}
}

func (h *ProductHandler) Run(ctx context.Context, args []string) error {
	return cli.Dispatch(ctx, h.n, "products", args, map[string]cli.Action{
		"list":   h.List,
		"get":    h.Get,
		"create": h.Create,
		"update": h.Update,
		"delete": h.Delete,
	})
}

func (h *ProductHandler) List(ctx context.Context, _ []string) error {
	products, err := h.uc.ListProducts(ctx)
	if err != nil {
		h.n.Failure(err, "ProductsLoadFailed")
		return cli.ErrReported
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow(&p))
	}
	h.n.Table([]string{"ID", "NOME", "DESCRIÇÃO", "CUSTO", "VENDA", "ESTOQUE"}, rows)
	return nil
}

func (h *ProductHandler) Get(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("products get", h.n)
	id := fs.Int64("id", 0, "product id")
	if err := cli.Parse(fs, args); err != nil {
		return err
	}
	if err := cli.RequireID(fs, *id); err != nil {
		return err
	}

	p, err := h.uc.GetProduct(ctx, *id)
	if err != nil {
		h.n.Failure(err, "ProductLoadFailed")
		if apperror.IsNotFound(err) {
			_ = h.List(ctx, nil)
		}
		return cli.ErrReported
	}

	h.n.Table([]string{"ID", "NOME", "DESCRIÇÃO", "CUSTO", "VENDA", "ESTOQUE"}, [][]string{productRow(p)})
	return nil
}

type productFlags struct {
	name, description, cost, price, stock *string
}

func bindProductFlags(fs *flag.FlagSet) productFlags {
	return productFlags{
		name:        fs.String("name", "", "product name"),
		description: fs.String("description", "", "free-text description"),
		cost:        fs.String("cost", "", "cost price, e.g. 45,50"),
		price:       fs.String("price", "", "sale price, e.g. 89,90"),
		stock:       fs.String("stock", "", "stock quantity"),
	}
}

func (h *ProductHandler) Create(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("products create", h.n)
	f := bindProductFlags(fs)
	if err := cli.Parse(fs, args); err != nil {
		return err
	}

	p, err := h.uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:        *f.name,
		Description: *f.description,
		CostPrice:   *f.cost,
		SalePrice:   *f.price,
		StockQty:    *f.stock,
	})
	if err != nil {
		h.n.Failure(err, "ProductCreateFailed")
		return cli.ErrReported
	}

	h.n.Success("ProductCreated")
	h.logger.Debug("product form submitted", zap.Int64("product_id", p.ID))
	return h.List(ctx, nil)
}

// Update prefills the form from the current product; only flags given on the
// command line replace a value.
func (h *ProductHandler) Update(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("products update", h.n)
	id := fs.Int64("id", 0, "product id")
	f := bindProductFlags(fs)
	if err := cli.Parse(fs, args); err != nil {
		return err
	}
	if err := cli.RequireID(fs, *id); err != nil {
		return err
	}

	current, err := h.uc.GetProduct(ctx, *id)
	if err != nil {
		h.n.Failure(err, "ProductLoadFailed")
		return cli.ErrReported
	}

	input := &dto.UpdateProductInput{ID: *id, CreateProductInput: formFromProduct(current)}
	set := cli.Visited(fs)
	if set["name"] {
		input.Name = *f.name
	}
	if set["description"] {
		input.Description = *f.description
	}
	if set["cost"] {
		input.CostPrice = *f.cost
	}
	if set["price"] {
		input.SalePrice = *f.price
	}
	if set["stock"] {
		input.StockQty = *f.stock
	}

	if _, err := h.uc.UpdateProduct(ctx, input); err != nil {
		h.n.Failure(err, "ProductUpdateFailed")
		return cli.ErrReported
	}

	h.n.Success("ProductUpdated")
	return h.List(ctx, nil)
}

func (h *ProductHandler) Delete(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("products delete", h.n)
	id := fs.Int64("id", 0, "product id")
	if err := cli.Parse(fs, args); err != nil {
		return err
	}
	if err := cli.RequireID(fs, *id); err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(ctx, *id); err != nil {
		h.n.Failure(err, "ProductDeleteFailed")
		return cli.ErrReported
	}

	h.n.Success("ProductDeleted")
	return h.List(ctx, nil)
}

func formFromProduct(p *model.Product) dto.CreateProductInput {
	form := dto.CreateProductInput{
		Name:      p.Name,
		CostPrice: money.Decimal(p.CostPriceCents),
		SalePrice: money.Decimal(p.SalePriceCents),
		StockQty:  strconv.Itoa(p.StockQty),
	}
	if p.Description != nil {
		form.Description = *p.Description
	}
	return form
}

func productRow(p *model.Product) []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		p.Name,
		cli.Deref(p.Description),
		money.Format(p.CostPriceCents),
		money.Format(p.SalePriceCents),
		strconv.Itoa(p.StockQty),
	}
}
