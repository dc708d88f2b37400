package handler

import (
	"context"
	"flag"
	"strconv"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/cli"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/supplier"
	"github.com/labela/labela-control/internal/supplier/dto"
)

var headers = []string{"ID", "NOME", "CNPJ", "TELEFONE", "E-MAIL", "INSTAGRAM"}

type SupplierHandler struct {
	uc     supplier.UseCase
	n      *cli.Notifier
	logger logger.ZapLogger
}

func NewSupplierHandler(uc supplier.UseCase, n *cli.Notifier, log logger.ZapLogger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		n:      n,
		logger: log,
	}
}

func (h *SupplierHandler) Run(ctx context.Context, args []string) error {
	return cli.Dispatch(ctx, h.n, "suppliers", args, map[string]cli.Action{
		"list":   h.List,
		"get":    h.Get,
		"create": h.Create,
		"update": h.Update,
		"delete": h.Delete,
	})
}

func (h *SupplierHandler) List(ctx context.Context, _ []string) error {
	suppliers, err := h.uc.ListSuppliers(ctx)
	if err != nil {
		h.n.Failure(err, "SuppliersLoadFailed")
		return cli.ErrReported
	}

	rows := make([][]string, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, supplierRow(&s))
	}
	h.n.Table(headers, rows)
	return nil
}

func (h *SupplierHandler) Get(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("suppliers get", h.n)
	id := fs.Int64("id", 0, "supplier id")
	if err := cli.Parse(fs, args); err != nil {
		return err
	}
	if err := cli.RequireID(fs, *id); err != nil {
		return err
	}

	s, err := h.uc.GetSupplier(ctx, *id)
	if err != nil {
		h.n.Failure(err, "SupplierLoadFailed")
		if apperror.IsNotFound(err) {
			_ = h.List(ctx, nil)
		}
		return cli.ErrReported
	}

	h.n.Table(headers, [][]string{supplierRow(s)})
	return nil
}

type supplierFlags struct {
	name, cnpj, phone, email, instagram *string
}

func bindSupplierFlags(fs *flag.FlagSet) supplierFlags {
	return supplierFlags{
		name:      fs.String("name", "", "supplier name"),
		cnpj:      fs.String("cnpj", "", "CNPJ"),
		phone:     fs.String("phone", "", "phone number"),
		email:     fs.String("email", "", "e-mail address"),
		instagram: fs.String("instagram", "", "instagram handle"),
	}
}

func (f supplierFlags) input() dto.CreateSupplierInput {
	return dto.CreateSupplierInput{
		Name:      *f.name,
		CNPJ:      *f.cnpj,
		Phone:     *f.phone,
		Email:     *f.email,
		Instagram: *f.instagram,
	}
}

func (h *SupplierHandler) Create(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("suppliers create", h.n)
	f := bindSupplierFlags(fs)
	if err := cli.Parse(fs, args); err != nil {
		return err
	}

	input := f.input()
	if _, err := h.uc.CreateSupplier(ctx, &input); err != nil {
		h.n.Failure(err, "SupplierCreateFailed")
		return cli.ErrReported
	}

	h.n.Success("SupplierCreated")
	return h.List(ctx, nil)
}

func (h *SupplierHandler) Update(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("suppliers update", h.n)
	id := fs.Int64("id", 0, "supplier id")
	f := bindSupplierFlags(fs)
	if err := cli.Parse(fs, args); err != nil {
		return err
	}
	if err := cli.RequireID(fs, *id); err != nil {
		return err
	}

	current, err := h.uc.GetSupplier(ctx, *id)
	if err != nil {
		h.n.Failure(err, "SupplierLoadFailed")
		return cli.ErrReported
	}

	// Start from the stored values; flags given on the command line win.
	given := f.input()
	form := dto.CreateSupplierInput{
		Name:      orCurrent(fs, "name", given.Name, current.Name),
		CNPJ:      orCurrent(fs, "cnpj", given.CNPJ, current.CNPJ),
		Phone:     orCurrent(fs, "phone", given.Phone, current.Phone),
		Email:     orCurrent(fs, "email", given.Email, current.Email),
		Instagram: orCurrent(fs, "instagram", given.Instagram, current.Instagram),
	}

	if _, err := h.uc.UpdateSupplier(ctx, &dto.UpdateSupplierInput{ID: *id, CreateSupplierInput: form}); err != nil {
		h.n.Failure(err, "SupplierUpdateFailed")
		return cli.ErrReported
	}

	h.n.Success("SupplierUpdated")
	return h.List(ctx, nil)
}

func (h *SupplierHandler) Delete(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("suppliers delete", h.n)
	id := fs.Int64("id", 0, "supplier id")
	if err := cli.Parse(fs, args); err != nil {
		return err
	}
	if err := cli.RequireID(fs, *id); err != nil {
		return err
	}

	if err := h.uc.DeleteSupplier(ctx, *id); err != nil {
		h.n.Failure(err, "SupplierDeleteFailed")
		return cli.ErrReported
	}

	h.n.Success("SupplierDeleted")
	return h.List(ctx, nil)
}

func orCurrent(fs *flag.FlagSet, name, given string, current *string) string {
	if cli.Visited(fs)[name] {
		return given
	}
	if current == nil {
		return ""
	}
	return *current
}

func supplierRow(s *model.Supplier) []string {
	return []string{
		strconv.FormatInt(s.ID, 10),
		s.DisplayName(),
		cli.Deref(s.CNPJ),
		cli.Deref(s.Phone),
		cli.Deref(s.Email),
		cli.Deref(s.Instagram),
	}
}
