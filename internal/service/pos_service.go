package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/adisyon/internal/models"
	"github.com/mmynk/adisyon/internal/session"
	"github.com/mmynk/adisyon/pkg/api"
	"github.com/mmynk/adisyon/pkg/api/apiconnect"
)

var _ apiconnect.PosServiceHandler = (*PosService)(nil)

// PosService implements the Connect PosService used on the café floor.
type PosService struct {
	cafe *session.Controller
}

// NewPosService creates a new PosService over the given controller.
func NewPosService(cafe *session.Controller) *PosService {
	return &PosService{cafe: cafe}
}

// ListTables returns every table with its open tab.
func (s *PosService) ListTables(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListTablesResponse], error) {
	tables := s.cafe.Tables()

	resp := &api.ListTablesResponse{Tables: make([]*api.Table, len(tables))}
	for i, table := range tables {
		resp.Tables[i] = toAPITable(table)
		if table.Status == models.TableOccupied {
			resp.OccupiedCount++
		}
	}

	slog.Debug("ListTables successful", "count", len(tables), "occupied", resp.OccupiedCount)
	return connect.NewResponse(resp), nil
}

// GetTable returns one table.
func (s *PosService) GetTable(ctx context.Context, req *connect.Request[api.GetTableRequest]) (*connect.Response[api.GetTableResponse], error) {
	table, err := s.cafe.Table(req.Msg.TableId)
	if err != nil {
		slog.Warn("GetTable failed", "table_id", req.Msg.TableId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetTableResponse{Table: toAPITable(table)}), nil
}

// ListMenu returns the menu grouped by category.
func (s *PosService) ListMenu(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMenuResponse], error) {
	groups := s.cafe.MenuByCategory()

	resp := &api.ListMenuResponse{Categories: make([]*api.MenuCategory, len(groups))}
	for i, group := range groups {
		items := make([]*api.MenuItem, len(group.Items))
		for j, item := range group.Items {
			items[j] = toAPIMenuItem(item)
		}
		resp.Categories[i] = &api.MenuCategory{Name: group.Name, Items: items}
	}

	slog.Debug("ListMenu successful", "categories", len(groups))
	return connect.NewResponse(resp), nil
}

// AddOrderItem places one unit of a menu item on a table.
func (s *PosService) AddOrderItem(ctx context.Context, req *connect.Request[api.AddOrderItemRequest]) (*connect.Response[api.AddOrderItemResponse], error) {
	slog.Info("AddOrderItem request received",
		"table_id", req.Msg.TableId,
		"item_id", req.Msg.ItemId,
	)

	table, line, err := s.cafe.PlaceOrder(ctx, req.Msg.TableId, req.Msg.ItemId)
	if err != nil {
		slog.Warn("AddOrderItem rejected", "table_id", req.Msg.TableId, "item_id", req.Msg.ItemId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddOrderItemResponse{
		Table: toAPITable(table),
		Line:  toAPIOrderLine(line),
	}), nil
}

// RemoveOrderItem cancels one order line. Unknown lines are a no-op.
func (s *PosService) RemoveOrderItem(ctx context.Context, req *connect.Request[api.RemoveOrderItemRequest]) (*connect.Response[api.RemoveOrderItemResponse], error) {
	slog.Info("RemoveOrderItem request received",
		"table_id", req.Msg.TableId,
		"order_id", req.Msg.OrderId,
	)

	table, removed, err := s.cafe.CancelOrderLine(ctx, req.Msg.TableId, req.Msg.OrderId)
	if err != nil {
		slog.Warn("RemoveOrderItem failed", "table_id", req.Msg.TableId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.RemoveOrderItemResponse{
		Table:   toAPITable(table),
		Removed: removed,
	}), nil
}

// CloseBill settles a table with the given payment method.
func (s *PosService) CloseBill(ctx context.Context, req *connect.Request[api.CloseBillRequest]) (*connect.Response[api.CloseBillResponse], error) {
	slog.Info("CloseBill request received",
		"table_id", req.Msg.TableId,
		"payment_method", req.Msg.PaymentMethod,
	)

	sale, table, err := s.cafe.CloseBill(ctx, req.Msg.TableId, models.PaymentMethod(req.Msg.PaymentMethod))
	if err != nil {
		slog.Warn("CloseBill rejected", "table_id", req.Msg.TableId, "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.CloseBillResponse{Table: toAPITable(table)}
	if sale != nil {
		resp.Sale = toAPISale(*sale)
	}
	return connect.NewResponse(resp), nil
}
