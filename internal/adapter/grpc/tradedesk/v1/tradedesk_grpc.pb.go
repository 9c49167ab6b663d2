// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: tradedesk/v1/tradedesk.proto

package tradedeskv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	TradeDeskService_ParseCommand_FullMethodName   = "/tradedesk.v1.TradeDeskService/ParseCommand"
	TradeDeskService_ConfirmCommand_FullMethodName = "/tradedesk.v1.TradeDeskService/ConfirmCommand"
	TradeDeskService_CancelCommand_FullMethodName  = "/tradedesk.v1.TradeDeskService/CancelCommand"
	TradeDeskService_GetCommand_FullMethodName     = "/tradedesk.v1.TradeDeskService/GetCommand"
	TradeDeskService_ListHistory_FullMethodName    = "/tradedesk.v1.TradeDeskService/ListHistory"
)

// TradeDeskServiceClient is the client API for TradeDeskService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TradeDeskService exposes the natural-language trade-command interpreter.
// Decimal values cross the wire as strings to avoid floating-point loss.
type TradeDeskServiceClient interface {
	// ParseCommand interprets free-text input. Non-trading utterances are not
	// errors: they come back with matched = false.
	ParseCommand(ctx context.Context, in *ParseCommandRequest, opts ...grpc.CallOption) (*ParseCommandResponse, error)
	// ConfirmCommand delivers the user's decision for a command awaiting
	// confirmation.
	ConfirmCommand(ctx context.Context, in *ConfirmCommandRequest, opts ...grpc.CallOption) (*ConfirmCommandResponse, error)
	// CancelCommand cancels a pending command directly.
	CancelCommand(ctx context.Context, in *CancelCommandRequest, opts ...grpc.CallOption) (*CancelCommandResponse, error)
	// GetCommand retrieves a single command from the ledger.
	GetCommand(ctx context.Context, in *GetCommandRequest, opts ...grpc.CallOption) (*GetCommandResponse, error)
	// ListHistory returns the most recent commands, newest first.
	ListHistory(ctx context.Context, in *ListHistoryRequest, opts ...grpc.CallOption) (*ListHistoryResponse, error)
}

type tradeDeskServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTradeDeskServiceClient(cc grpc.ClientConnInterface) TradeDeskServiceClient {
	return &tradeDeskServiceClient{cc}
}

func (c *tradeDeskServiceClient) ParseCommand(ctx context.Context, in *ParseCommandRequest, opts ...grpc.CallOption) (*ParseCommandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseCommandResponse)
	err := c.cc.Invoke(ctx, TradeDeskService_ParseCommand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tradeDeskServiceClient) ConfirmCommand(ctx context.Context, in *ConfirmCommandRequest, opts ...grpc.CallOption) (*ConfirmCommandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmCommandResponse)
	err := c.cc.Invoke(ctx, TradeDeskService_ConfirmCommand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tradeDeskServiceClient) CancelCommand(ctx context.Context, in *CancelCommandRequest, opts ...grpc.CallOption) (*CancelCommandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelCommandResponse)
	err := c.cc.Invoke(ctx, TradeDeskService_CancelCommand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tradeDeskServiceClient) GetCommand(ctx context.Context, in *GetCommandRequest, opts ...grpc.CallOption) (*GetCommandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCommandResponse)
	err := c.cc.Invoke(ctx, TradeDeskService_GetCommand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tradeDeskServiceClient) ListHistory(ctx context.Context, in *ListHistoryRequest, opts ...grpc.CallOption) (*ListHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListHistoryResponse)
	err := c.cc.Invoke(ctx, TradeDeskService_ListHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TradeDeskServiceServer is the server API for TradeDeskService service.
// All implementations must embed UnimplementedTradeDeskServiceServer
// for forward compatibility.
//
// TradeDeskService exposes the natural-language trade-command interpreter.
// Decimal values cross the wire as strings to avoid floating-point loss.
type TradeDeskServiceServer interface {
	// ParseCommand interprets free-text input. Non-trading utterances are not
	// errors: they come back with matched = false.
	ParseCommand(context.Context, *ParseCommandRequest) (*ParseCommandResponse, error)
	// ConfirmCommand delivers the user's decision for a command awaiting
	// confirmation.
	ConfirmCommand(context.Context, *ConfirmCommandRequest) (*ConfirmCommandResponse, error)
	// CancelCommand cancels a pending command directly.
	CancelCommand(context.Context, *CancelCommandRequest) (*CancelCommandResponse, error)
	// GetCommand retrieves a single command from the ledger.
	GetCommand(context.Context, *GetCommandRequest) (*GetCommandResponse, error)
	// ListHistory returns the most recent commands, newest first.
	ListHistory(context.Context, *ListHistoryRequest) (*ListHistoryResponse, error)
	mustEmbedUnimplementedTradeDeskServiceServer()
}

// UnimplementedTradeDeskServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTradeDeskServiceServer struct{}

func (UnimplementedTradeDeskServiceServer) ParseCommand(context.Context, *ParseCommandRequest) (*ParseCommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseCommand not implemented")
}
func (UnimplementedTradeDeskServiceServer) ConfirmCommand(context.Context, *ConfirmCommandRequest) (*ConfirmCommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmCommand not implemented")
}
func (UnimplementedTradeDeskServiceServer) CancelCommand(context.Context, *CancelCommandRequest) (*CancelCommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelCommand not implemented")
}
func (UnimplementedTradeDeskServiceServer) GetCommand(context.Context, *GetCommandRequest) (*GetCommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCommand not implemented")
}
func (UnimplementedTradeDeskServiceServer) ListHistory(context.Context, *ListHistoryRequest) (*ListHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListHistory not implemented")
}
func (UnimplementedTradeDeskServiceServer) mustEmbedUnimplementedTradeDeskServiceServer() {}
func (UnimplementedTradeDeskServiceServer) testEmbeddedByValue()                          {}

// UnsafeTradeDeskServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TradeDeskServiceServer will
// result in compilation errors.
type UnsafeTradeDeskServiceServer interface {
	mustEmbedUnimplementedTradeDeskServiceServer()
}

func RegisterTradeDeskServiceServer(s grpc.ServiceRegistrar, srv TradeDeskServiceServer) {
	// If the following call pancis, it indicates UnimplementedTradeDeskServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TradeDeskService_ServiceDesc, srv)
}

func _TradeDeskService_ParseCommand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseCommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TradeDeskServiceServer).ParseCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TradeDeskService_ParseCommand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TradeDeskServiceServer).ParseCommand(ctx, req.(*ParseCommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TradeDeskService_ConfirmCommand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmCommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TradeDeskServiceServer).ConfirmCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TradeDeskService_ConfirmCommand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TradeDeskServiceServer).ConfirmCommand(ctx, req.(*ConfirmCommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TradeDeskService_CancelCommand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelCommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TradeDeskServiceServer).CancelCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TradeDeskService_CancelCommand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TradeDeskServiceServer).CancelCommand(ctx, req.(*CancelCommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TradeDeskService_GetCommand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TradeDeskServiceServer).GetCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TradeDeskService_GetCommand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TradeDeskServiceServer).GetCommand(ctx, req.(*GetCommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TradeDeskService_ListHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TradeDeskServiceServer).ListHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TradeDeskService_ListHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TradeDeskServiceServer).ListHistory(ctx, req.(*ListHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TradeDeskService_ServiceDesc is the grpc.ServiceDesc for TradeDeskService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TradeDeskService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tradedesk.v1.TradeDeskService",
	HandlerType: (*TradeDeskServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseCommand",
			Handler:    _TradeDeskService_ParseCommand_Handler,
		},
		{
			MethodName: "ConfirmCommand",
			Handler:    _TradeDeskService_ConfirmCommand_Handler,
		},
		{
			MethodName: "CancelCommand",
			Handler:    _TradeDeskService_CancelCommand_Handler,
		},
		{
			MethodName: "GetCommand",
			Handler:    _TradeDeskService_GetCommand_Handler,
		},
		{
			MethodName: "ListHistory",
			Handler:    _TradeDeskService_ListHistory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tradedesk/v1/tradedesk.proto",
}
