package handler

import (
	"context"
	"flag"
	"strconv"
	"strings"

	"github.com/labela/labela-control/internal/customer"
	"github.com/labela/labela-control/internal/customer/dto"
	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/cli"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/pkg/money"
)

var listHeaders = []string{"ID", "NOME", "TELEFONE", "E-MAIL", "INSTAGRAM", "CRIADO EM"}

type CustomerHandler struct {
	uc     customer.UseCase
	n      *cli.Notifier
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, n *cli.Notifier, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		n:      n,
		logger: log,
	}
}

func (h *CustomerHandler) Run(ctx context.Context, args []string) error {
	return cli.Dispatch(ctx, h.n, "customers", args, map[string]cli.Action{
		"list":   h.List,
		"get":    h.Get,
		"create": h.Create,
		"update": h.Update,
		"delete": h.Delete,
	})
}

func (h *CustomerHandler) List(ctx context.Context, _ []string) error {
	customers, err := h.uc.ListCustomers(ctx)
	if err != nil {
		h.n.Failure(err, "CustomersLoadFailed")
		return cli.ErrReported
	}

	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, customerRow(&c))
	}
	h.n.Table(listHeaders, rows)
	return nil
}

// Get shows the customer and its purchase history. A missing customer falls
// back to the list.
func (h *CustomerHandler) Get(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("customers get", h.n)
	id := fs.Int64("id", 0, "customer id")
	if err := cli.Parse(fs, args); err != nil {
		return err
	}
	if err := cli.RequireID(fs, *id); err != nil {
		return err
	}

	c, err := h.uc.GetCustomer(ctx, *id)
	if err != nil {
		h.n.Failure(err, "CustomerLoadFailed")
		if apperror.IsNotFound(err) {
			_ = h.List(ctx, nil)
		}
		return cli.ErrReported
	}

	h.n.Table(listHeaders, [][]string{customerRow(&c.Customer)})
	if len(c.Sales) == 0 {
		return nil
	}

	h.n.Printf("\n")
	rows := make([][]string, 0, len(c.Sales))
	for _, s := range c.Sales {
		items := make([]string, 0, len(s.Products))
		for _, p := range s.Products {
			items = append(items, strconv.Itoa(p.Quantity)+"x "+p.Name)
		}
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			cli.Date(s.CreatedAt),
			money.Format(s.TotalCents),
			strings.Join(items, ", "),
		})
	}
	h.n.Table([]string{"VENDA", "DATA", "TOTAL", "PRODUTOS"}, rows)
	return nil
}

type customerFlags struct {
	name, phone, email, instagram *string
}

func bindCustomerFlags(fs *flag.FlagSet) customerFlags {
	return customerFlags{
		name:      fs.String("name", "", "customer name"),
		phone:     fs.String("phone", "", "phone number"),
		email:     fs.String("email", "", "e-mail address"),
		instagram: fs.String("instagram", "", "instagram handle"),
	}
}

func (h *CustomerHandler) Create(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("customers create", h.n)
	f := bindCustomerFlags(fs)
	if err := cli.Parse(fs, args); err != nil {
		return err
	}

	_, err := h.uc.CreateCustomer(ctx, &dto.CreateCustomerInput{
		Name:      *f.name,
		Phone:     *f.phone,
		Email:     *f.email,
		Instagram: *f.instagram,
	})
	if err != nil {
		h.n.Failure(err, "CustomerCreateFailed")
		return cli.ErrReported
	}

	h.n.Success("CustomerCreated")
	return h.List(ctx, nil)
}

func (h *CustomerHandler) Update(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("customers update", h.n)
	id := fs.Int64("id", 0, "customer id")
	f := bindCustomerFlags(fs)
	if err := cli.Parse(fs, args); err != nil {
		return err
	}
	if err := cli.RequireID(fs, *id); err != nil {
		return err
	}

	current, err := h.uc.GetCustomer(ctx, *id)
	if err != nil {
		h.n.Failure(err, "CustomerLoadFailed")
		return cli.ErrReported
	}

	input := &dto.UpdateCustomerInput{ID: *id, CreateCustomerInput: formFromCustomer(&current.Customer)}
	set := cli.Visited(fs)
	if set["name"] {
		input.Name = *f.name
	}
	if set["phone"] {
		input.Phone = *f.phone
	}
	if set["email"] {
		input.Email = *f.email
	}
	if set["instagram"] {
		input.Instagram = *f.instagram
	}

	if _, err := h.uc.UpdateCustomer(ctx, input); err != nil {
		h.n.Failure(err, "CustomerUpdateFailed")
		return cli.ErrReported
	}

	h.n.Success("CustomerUpdated")
	return h.List(ctx, nil)
}

func (h *CustomerHandler) Delete(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("customers delete", h.n)
	id := fs.Int64("id", 0, "customer id")
	if err := cli.Parse(fs, args); err != nil {
		return err
	}
	if err := cli.RequireID(fs, *id); err != nil {
		return err
	}

	if err := h.uc.DeleteCustomer(ctx, *id); err != nil {
		h.n.Failure(err, "CustomerDeleteFailed")
		return cli.ErrReported
	}

	h.n.Success("CustomerDeleted")
	return h.List(ctx, nil)
}

func formFromCustomer(c *model.Customer) dto.CreateCustomerInput {
	return dto.CreateCustomerInput{
		Name:      deref(c.Name),
		Phone:     deref(c.Phone),
		Email:     deref(c.Email),
		Instagram: deref(c.Instagram),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func customerRow(c *model.Customer) []string {
	return []string{
		strconv.FormatInt(c.ID, 10),
		c.DisplayName(),
		cli.Deref(c.Phone),
		cli.Deref(c.Email),
		cli.Deref(c.Instagram),
		cli.Date(c.CreatedAt),
	}
}
