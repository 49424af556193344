package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/adisyon/internal/catalog"
	"github.com/mmynk/adisyon/internal/middleware"
	"github.com/mmynk/adisyon/internal/session"
	"github.com/mmynk/adisyon/pkg/api"
	"github.com/mmynk/adisyon/pkg/api/apiconnect"
)

// DefaultSalesLimit is how many recent sales ListSales returns by default.
const DefaultSalesLimit = 15

var _ apiconnect.AdminServiceHandler = (*AdminService)(nil)

// AdminService implements the Connect AdminService. It must be mounted
// behind middleware.RequireAuth.
type AdminService struct {
	cafe *session.Controller
}

// NewAdminService creates a new AdminService over the given controller.
func NewAdminService(cafe *session.Controller) *AdminService {
	return &AdminService{cafe: cafe}
}

// AddMenuItem adds an item to the menu. An id of 0 is assigned by the catalog.
func (s *AdminService) AddMenuItem(ctx context.Context, req *connect.Request[api.AddMenuItemRequest]) (*connect.Response[api.AddMenuItemResponse], error) {
	if req.Msg.Item == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, catalog.ErrInvalidItem)
	}
	slog.Info("AddMenuItem request received",
		"name", req.Msg.Item.Name,
		"category", req.Msg.Item.Category,
		"user_id", middleware.GetUserID(ctx),
	)

	item, err := s.cafe.AddMenuItem(ctx, fromAPIMenuItem(req.Msg.Item))
	if err != nil {
		slog.Warn("AddMenuItem rejected", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.AddMenuItemResponse{Item: toAPIMenuItem(item)}), nil
}

// RemoveMenuItem deletes an item. Removing a missing item is a no-op.
func (s *AdminService) RemoveMenuItem(ctx context.Context, req *connect.Request[api.RemoveMenuItemRequest]) (*connect.Response[api.RemoveMenuItemResponse], error) {
	slog.Info("RemoveMenuItem request received", "item_id", req.Msg.ItemId, "user_id", middleware.GetUserID(ctx))

	removed := s.cafe.RemoveMenuItem(ctx, req.Msg.ItemId)
	return connect.NewResponse(&api.RemoveMenuItemResponse{Removed: removed}), nil
}

// UpdatePrice changes the price of future order lines for an item.
func (s *AdminService) UpdatePrice(ctx context.Context, req *connect.Request[api.UpdatePriceRequest]) (*connect.Response[api.UpdatePriceResponse], error) {
	slog.Info("UpdatePrice request received",
		"item_id", req.Msg.ItemId,
		"price", req.Msg.Price.String(),
		"user_id", middleware.GetUserID(ctx),
	)

	ok, err := s.cafe.UpdatePrice(ctx, req.Msg.ItemId, req.Msg.Price)
	if err != nil {
		return nil, toConnectError(err)
	}
	resp := &api.UpdatePriceResponse{Updated: ok}
	if item, found := s.cafe.MenuItem(req.Msg.ItemId); ok && found {
		resp.Item = toAPIMenuItem(item)
	}
	return connect.NewResponse(resp), nil
}

// UpdateStock overwrites an item's stock count.
func (s *AdminService) UpdateStock(ctx context.Context, req *connect.Request[api.UpdateStockRequest]) (*connect.Response[api.UpdateStockResponse], error) {
	slog.Info("UpdateStock request received",
		"item_id", req.Msg.ItemId,
		"stock", req.Msg.Stock,
		"user_id", middleware.GetUserID(ctx),
	)

	ok, err := s.cafe.UpdateStock(ctx, req.Msg.ItemId, req.Msg.Stock)
	if err != nil {
		return nil, toConnectError(err)
	}
	resp := &api.UpdateStockResponse{Updated: ok}
	if item, found := s.cafe.MenuItem(req.Msg.ItemId); ok && found {
		resp.Item = toAPIMenuItem(item)
	}
	return connect.NewResponse(resp), nil
}

// ListSales returns the most recent sales, newest first.
func (s *AdminService) ListSales(ctx context.Context, req *connect.Request[api.ListSalesRequest]) (*connect.Response[api.ListSalesResponse], error) {
	limit := req.Msg.Limit
	if limit <= 0 {
		limit = DefaultSalesLimit
	}

	sales := s.cafe.RecentSales(limit)
	resp := &api.ListSalesResponse{Sales: make([]*api.Sale, len(sales))}
	for i, sale := range sales {
		resp.Sales[i] = toAPISale(sale)
	}

	slog.Debug("ListSales successful", "limit", limit, "count", len(sales))
	return connect.NewResponse(resp), nil
}

// GetRevenue returns the dashboard figures for the requested day and month.
func (s *AdminService) GetRevenue(ctx context.Context, req *connect.Request[api.GetRevenueRequest]) (*connect.Response[api.GetRevenueResponse], error) {
	ref := s.cafe.Now()
	if req.Msg.At != nil {
		ref = *req.Msg.At
	}

	summary := s.cafe.Revenue(ref)
	return connect.NewResponse(&api.GetRevenueResponse{
		Daily:         summary.Daily,
		Monthly:       summary.Monthly,
		MenuItemCount: summary.MenuItemCount,
		SaleCount:     summary.SaleCount,
	}), nil
}

// ListCategories returns the distinct menu categories.
func (s *AdminService) ListCategories(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListCategoriesResponse], error) {
	return connect.NewResponse(&api.ListCategoriesResponse{Categories: s.cafe.Categories()}), nil
}
