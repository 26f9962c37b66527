package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "checkers.Rules"

type RulesServer interface {
	Destinations(context.Context, *DestinationsRequest) (*DestinationsResponse, error)
	Apply(context.Context, *ApplyRequest) (*ApplyResponse, error)
	Status(context.Context, *StatusRequest) (*StatusResponse, error)
	Perft(context.Context, *PerftRequest) (*PerftResponse, error)
}

func RegisterRulesServer(s *grpc.Server, srv RulesServer) {
	s.RegisterService(&rulesServiceDesc, srv)
}

type RulesClient interface {
	Destinations(ctx context.Context, in *DestinationsRequest, opts ...grpc.CallOption) (*DestinationsResponse, error)
	Apply(ctx context.Context, in *ApplyRequest, opts ...grpc.CallOption) (*ApplyResponse, error)
	Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	Perft(ctx context.Context, in *PerftRequest, opts ...grpc.CallOption) (*PerftResponse, error)
}

type rulesClient struct {
	cc grpc.ClientConnInterface
}

func NewRulesClient(cc grpc.ClientConnInterface) RulesClient {
	return &rulesClient{cc}
}

func (c *rulesClient) Destinations(ctx context.Context, in *DestinationsRequest, opts ...grpc.CallOption) (*DestinationsResponse, error) {
	out := new(DestinationsResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Destinations", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rulesClient) Apply(ctx context.Context, in *ApplyRequest, opts ...grpc.CallOption) (*ApplyResponse, error) {
	out := new(ApplyResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Apply", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rulesClient) Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	out := new(StatusResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Status", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rulesClient) Perft(ctx context.Context, in *PerftRequest, opts ...grpc.CallOption) (*PerftResponse, error) {
	out := new(PerftResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Perft", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// unary adapts one RulesServer method to a grpc.MethodDesc handler.
func unary[Req any, Resp any](name string, call func(RulesServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	full := "/" + serviceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(RulesServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(RulesServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var rulesServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*RulesServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Destinations", RulesServer.Destinations),
		unary("Apply", RulesServer.Apply),
		unary("Status", RulesServer.Status),
		unary("Perft", RulesServer.Perft),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rules.proto",
}
