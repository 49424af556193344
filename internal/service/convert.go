package service

import (
	"errors"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/adisyon/internal/auth"
	"github.com/mmynk/adisyon/internal/catalog"
	"github.com/mmynk/adisyon/internal/journal"
	"github.com/mmynk/adisyon/internal/ledger"
	"github.com/mmynk/adisyon/internal/models"
	"github.com/mmynk/adisyon/internal/session"
	"github.com/mmynk/adisyon/pkg/api"
)

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, ledger.ErrTableNotFound), errors.Is(err, catalog.ErrItemNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, catalog.ErrOutOfStock):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, catalog.ErrDuplicateItem), errors.Is(err, auth.ErrUserExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, catalog.ErrInvalidItem),
		errors.Is(err, journal.ErrInvalidSale),
		errors.Is(err, session.ErrInvalidPaymentMethod),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrMissingUsername):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toAPIMenuItem(item models.MenuItem) *api.MenuItem {
	return &api.MenuItem{
		Id:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Category: item.Category,
		Stock:    item.Stock,
	}
}

func fromAPIMenuItem(item *api.MenuItem) models.MenuItem {
	return models.MenuItem{
		ID:       item.Id,
		Name:     item.Name,
		Price:    item.Price,
		Category: item.Category,
		Stock:    item.Stock,
	}
}

func toAPITable(table models.Table) *api.Table {
	orders := make([]*api.OrderLine, len(table.Orders))
	for i, line := range table.Orders {
		orders[i] = toAPIOrderLine(line)
	}
	return &api.Table{
		Id:     table.ID,
		Status: string(table.Status),
		Orders: orders,
		Total:  table.Total,
	}
}

func toAPIOrderLine(line models.OrderLine) *api.OrderLine {
	return &api.OrderLine{
		OrderId:  line.OrderID,
		ItemId:   line.ItemID,
		Name:     line.Name,
		Price:    line.Price,
		Category: line.Category,
	}
}

func toAPISale(sale models.Sale) *api.Sale {
	return &api.Sale{
		Id:            sale.ID,
		Amount:        sale.Amount,
		Timestamp:     sale.Timestamp,
		PaymentMethod: string(sale.PaymentMethod),
	}
}

func toAPIUser(user *models.User) *api.User {
	return &api.User{
		Id:        user.ID,
		Username:  user.Username,
		CreatedAt: time.Unix(user.CreatedAt, 0).UTC(),
	}
}
