// Package apiconnect binds the adisyon.v1 services to Connect handlers and
// clients.
package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/adisyon/pkg/api"
)

// PosServiceName is the fully-qualified name of the PosService service.
const PosServiceName = "adisyon.v1.PosService"

// Procedure paths of PosService.
const (
	PosServiceListTablesProcedure      = "/adisyon.v1.PosService/ListTables"
	PosServiceGetTableProcedure        = "/adisyon.v1.PosService/GetTable"
	PosServiceListMenuProcedure        = "/adisyon.v1.PosService/ListMenu"
	PosServiceAddOrderItemProcedure    = "/adisyon.v1.PosService/AddOrderItem"
	PosServiceRemoveOrderItemProcedure = "/adisyon.v1.PosService/RemoveOrderItem"
	PosServiceCloseBillProcedure       = "/adisyon.v1.PosService/CloseBill"
)

// PosServiceHandler is the floor-staff surface: tables, menu and bills.
type PosServiceHandler interface {
	ListTables(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListTablesResponse], error)
	GetTable(context.Context, *connect.Request[api.GetTableRequest]) (*connect.Response[api.GetTableResponse], error)
	ListMenu(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMenuResponse], error)
	AddOrderItem(context.Context, *connect.Request[api.AddOrderItemRequest]) (*connect.Response[api.AddOrderItemResponse], error)
	RemoveOrderItem(context.Context, *connect.Request[api.RemoveOrderItemRequest]) (*connect.Response[api.RemoveOrderItemResponse], error)
	CloseBill(context.Context, *connect.Request[api.CloseBillRequest]) (*connect.Response[api.CloseBillResponse], error)
}

// NewPosServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewPosServiceHandler(svc PosServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(PosServiceListTablesProcedure, connect.NewUnaryHandler(PosServiceListTablesProcedure, svc.ListTables, opts...))
	mux.Handle(PosServiceGetTableProcedure, connect.NewUnaryHandler(PosServiceGetTableProcedure, svc.GetTable, opts...))
	mux.Handle(PosServiceListMenuProcedure, connect.NewUnaryHandler(PosServiceListMenuProcedure, svc.ListMenu, opts...))
	mux.Handle(PosServiceAddOrderItemProcedure, connect.NewUnaryHandler(PosServiceAddOrderItemProcedure, svc.AddOrderItem, opts...))
	mux.Handle(PosServiceRemoveOrderItemProcedure, connect.NewUnaryHandler(PosServiceRemoveOrderItemProcedure, svc.RemoveOrderItem, opts...))
	mux.Handle(PosServiceCloseBillProcedure, connect.NewUnaryHandler(PosServiceCloseBillProcedure, svc.CloseBill, opts...))
	return "/" + PosServiceName + "/", mux
}

// PosServiceClient is a client for the adisyon.v1.PosService service.
type PosServiceClient interface {
	ListTables(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListTablesResponse], error)
	GetTable(context.Context, *connect.Request[api.GetTableRequest]) (*connect.Response[api.GetTableResponse], error)
	ListMenu(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMenuResponse], error)
	AddOrderItem(context.Context, *connect.Request[api.AddOrderItemRequest]) (*connect.Response[api.AddOrderItemResponse], error)
	RemoveOrderItem(context.Context, *connect.Request[api.RemoveOrderItemRequest]) (*connect.Response[api.RemoveOrderItemResponse], error)
	CloseBill(context.Context, *connect.Request[api.CloseBillRequest]) (*connect.Response[api.CloseBillResponse], error)
}

// NewPosServiceClient constructs a client for PosService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewPosServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PosServiceClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &posServiceClient{
		listTables:      connect.NewClient[emptypb.Empty, api.ListTablesResponse](httpClient, baseURL+PosServiceListTablesProcedure, opts...),
		getTable:        connect.NewClient[api.GetTableRequest, api.GetTableResponse](httpClient, baseURL+PosServiceGetTableProcedure, opts...),
		listMenu:        connect.NewClient[emptypb.Empty, api.ListMenuResponse](httpClient, baseURL+PosServiceListMenuProcedure, opts...),
		addOrderItem:    connect.NewClient[api.AddOrderItemRequest, api.AddOrderItemResponse](httpClient, baseURL+PosServiceAddOrderItemProcedure, opts...),
		removeOrderItem: connect.NewClient[api.RemoveOrderItemRequest, api.RemoveOrderItemResponse](httpClient, baseURL+PosServiceRemoveOrderItemProcedure, opts...),
		closeBill:       connect.NewClient[api.CloseBillRequest, api.CloseBillResponse](httpClient, baseURL+PosServiceCloseBillProcedure, opts...),
	}
}

type posServiceClient struct {
	listTables      *connect.Client[emptypb.Empty, api.ListTablesResponse]
	getTable        *connect.Client[api.GetTableRequest, api.GetTableResponse]
	listMenu        *connect.Client[emptypb.Empty, api.ListMenuResponse]
	addOrderItem    *connect.Client[api.AddOrderItemRequest, api.AddOrderItemResponse]
	removeOrderItem *connect.Client[api.RemoveOrderItemRequest, api.RemoveOrderItemResponse]
	closeBill       *connect.Client[api.CloseBillRequest, api.CloseBillResponse]
}

func (c *posServiceClient) ListTables(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListTablesResponse], error) {
	return c.listTables.CallUnary(ctx, req)
}

func (c *posServiceClient) GetTable(ctx context.Context, req *connect.Request[api.GetTableRequest]) (*connect.Response[api.GetTableResponse], error) {
	return c.getTable.CallUnary(ctx, req)
}

func (c *posServiceClient) ListMenu(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMenuResponse], error) {
	return c.listMenu.CallUnary(ctx, req)
}

func (c *posServiceClient) AddOrderItem(ctx context.Context, req *connect.Request[api.AddOrderItemRequest]) (*connect.Response[api.AddOrderItemResponse], error) {
	return c.addOrderItem.CallUnary(ctx, req)
}

func (c *posServiceClient) RemoveOrderItem(ctx context.Context, req *connect.Request[api.RemoveOrderItemRequest]) (*connect.Response[api.RemoveOrderItemResponse], error) {
	return c.removeOrderItem.CallUnary(ctx, req)
}

func (c *posServiceClient) CloseBill(ctx context.Context, req *connect.Request[api.CloseBillRequest]) (*connect.Response[api.CloseBillResponse], error) {
	return c.closeBill.CallUnary(ctx, req)
}
