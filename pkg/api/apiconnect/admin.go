package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/adisyon/pkg/api"
)

// AdminServiceName is the fully-qualified name of the AdminService service.
const AdminServiceName = "adisyon.v1.AdminService"

// Procedure paths of AdminService.
const (
	AdminServiceAddMenuItemProcedure    = "/adisyon.v1.AdminService/AddMenuItem"
	AdminServiceRemoveMenuItemProcedure = "/adisyon.v1.AdminService/RemoveMenuItem"
	AdminServiceUpdatePriceProcedure    = "/adisyon.v1.AdminService/UpdatePrice"
	AdminServiceUpdateStockProcedure    = "/adisyon.v1.AdminService/UpdateStock"
	AdminServiceListSalesProcedure      = "/adisyon.v1.AdminService/ListSales"
	AdminServiceGetRevenueProcedure     = "/adisyon.v1.AdminService/GetRevenue"
	AdminServiceListCategoriesProcedure = "/adisyon.v1.AdminService/ListCategories"
)

// AdminServiceHandler is the back-office surface: menu management and revenue.
type AdminServiceHandler interface {
	AddMenuItem(context.Context, *connect.Request[api.AddMenuItemRequest]) (*connect.Response[api.AddMenuItemResponse], error)
	RemoveMenuItem(context.Context, *connect.Request[api.RemoveMenuItemRequest]) (*connect.Response[api.RemoveMenuItemResponse], error)
	UpdatePrice(context.Context, *connect.Request[api.UpdatePriceRequest]) (*connect.Response[api.UpdatePriceResponse], error)
	UpdateStock(context.Context, *connect.Request[api.UpdateStockRequest]) (*connect.Response[api.UpdateStockResponse], error)
	ListSales(context.Context, *connect.Request[api.ListSalesRequest]) (*connect.Response[api.ListSalesResponse], error)
	GetRevenue(context.Context, *connect.Request[api.GetRevenueRequest]) (*connect.Response[api.GetRevenueResponse], error)
	ListCategories(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListCategoriesResponse], error)
}

// NewAdminServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAdminServiceHandler(svc AdminServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(AdminServiceAddMenuItemProcedure, connect.NewUnaryHandler(AdminServiceAddMenuItemProcedure, svc.AddMenuItem, opts...))
	mux.Handle(AdminServiceRemoveMenuItemProcedure, connect.NewUnaryHandler(AdminServiceRemoveMenuItemProcedure, svc.RemoveMenuItem, opts...))
	mux.Handle(AdminServiceUpdatePriceProcedure, connect.NewUnaryHandler(AdminServiceUpdatePriceProcedure, svc.UpdatePrice, opts...))
	mux.Handle(AdminServiceUpdateStockProcedure, connect.NewUnaryHandler(AdminServiceUpdateStockProcedure, svc.UpdateStock, opts...))
	mux.Handle(AdminServiceListSalesProcedure, connect.NewUnaryHandler(AdminServiceListSalesProcedure, svc.ListSales, opts...))
	mux.Handle(AdminServiceGetRevenueProcedure, connect.NewUnaryHandler(AdminServiceGetRevenueProcedure, svc.GetRevenue, opts...))
	mux.Handle(AdminServiceListCategoriesProcedure, connect.NewUnaryHandler(AdminServiceListCategoriesProcedure, svc.ListCategories, opts...))
	return "/" + AdminServiceName + "/", mux
}

// AdminServiceClient is a client for the adisyon.v1.AdminService service.
type AdminServiceClient interface {
	AddMenuItem(context.Context, *connect.Request[api.AddMenuItemRequest]) (*connect.Response[api.AddMenuItemResponse], error)
	RemoveMenuItem(context.Context, *connect.Request[api.RemoveMenuItemRequest]) (*connect.Response[api.RemoveMenuItemResponse], error)
	UpdatePrice(context.Context, *connect.Request[api.UpdatePriceRequest]) (*connect.Response[api.UpdatePriceResponse], error)
	UpdateStock(context.Context, *connect.Request[api.UpdateStockRequest]) (*connect.Response[api.UpdateStockResponse], error)
	ListSales(context.Context, *connect.Request[api.ListSalesRequest]) (*connect.Response[api.ListSalesResponse], error)
	GetRevenue(context.Context, *connect.Request[api.GetRevenueRequest]) (*connect.Response[api.GetRevenueResponse], error)
	ListCategories(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListCategoriesResponse], error)
}

// NewAdminServiceClient constructs a client for AdminService.
func NewAdminServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AdminServiceClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &adminServiceClient{
		addMenuItem:    connect.NewClient[api.AddMenuItemRequest, api.AddMenuItemResponse](httpClient, baseURL+AdminServiceAddMenuItemProcedure, opts...),
		removeMenuItem: connect.NewClient[api.RemoveMenuItemRequest, api.RemoveMenuItemResponse](httpClient, baseURL+AdminServiceRemoveMenuItemProcedure, opts...),
		updatePrice:    connect.NewClient[api.UpdatePriceRequest, api.UpdatePriceResponse](httpClient, baseURL+AdminServiceUpdatePriceProcedure, opts...),
		updateStock:    connect.NewClient[api.UpdateStockRequest, api.UpdateStockResponse](httpClient, baseURL+AdminServiceUpdateStockProcedure, opts...),
		listSales:      connect.NewClient[api.ListSalesRequest, api.ListSalesResponse](httpClient, baseURL+AdminServiceListSalesProcedure, opts...),
		getRevenue:     connect.NewClient[api.GetRevenueRequest, api.GetRevenueResponse](httpClient, baseURL+AdminServiceGetRevenueProcedure, opts...),
		listCategories: connect.NewClient[emptypb.Empty, api.ListCategoriesResponse](httpClient, baseURL+AdminServiceListCategoriesProcedure, opts...),
	}
}

type adminServiceClient struct {
	addMenuItem    *connect.Client[api.AddMenuItemRequest, api.AddMenuItemResponse]
	removeMenuItem *connect.Client[api.RemoveMenuItemRequest, api.RemoveMenuItemResponse]
	updatePrice    *connect.Client[api.UpdatePriceRequest, api.UpdatePriceResponse]
	updateStock    *connect.Client[api.UpdateStockRequest, api.UpdateStockResponse]
	listSales      *connect.Client[api.ListSalesRequest, api.ListSalesResponse]
	getRevenue     *connect.Client[api.GetRevenueRequest, api.GetRevenueResponse]
	listCategories *connect.Client[emptypb.Empty, api.ListCategoriesResponse]
}

func (c *adminServiceClient) AddMenuItem(ctx context.Context, req *connect.Request[api.AddMenuItemRequest]) (*connect.Response[api.AddMenuItemResponse], error) {
	return c.addMenuItem.CallUnary(ctx, req)
}

func (c *adminServiceClient) RemoveMenuItem(ctx context.Context, req *connect.Request[api.RemoveMenuItemRequest]) (*connect.Response[api.RemoveMenuItemResponse], error) {
	return c.removeMenuItem.CallUnary(ctx, req)
}

func (c *adminServiceClient) UpdatePrice(ctx context.Context, req *connect.Request[api.UpdatePriceRequest]) (*connect.Response[api.UpdatePriceResponse], error) {
	return c.updatePrice.CallUnary(ctx, req)
}

func (c *adminServiceClient) UpdateStock(ctx context.Context, req *connect.Request[api.UpdateStockRequest]) (*connect.Response[api.UpdateStockResponse], error) {
	return c.updateStock.CallUnary(ctx, req)
}

func (c *adminServiceClient) ListSales(ctx context.Context, req *connect.Request[api.ListSalesRequest]) (*connect.Response[api.ListSalesResponse], error) {
	return c.listSales.CallUnary(ctx, req)
}

func (c *adminServiceClient) GetRevenue(ctx context.Context, req *connect.Request[api.GetRevenueRequest]) (*connect.Response[api.GetRevenueResponse], error) {
	return c.getRevenue.CallUnary(ctx, req)
}

func (c *adminServiceClient) ListCategories(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}
