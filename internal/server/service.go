// ABOUTME: gRPC service description for trakhound.EntityService
// ABOUTME: Every method takes and returns google.protobuf.Struct

package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "trakhound.EntityService"

const (
	methodPublish = "Publish"
	methodGet     = "Get"
	methodQuery   = "Query"
	methodObjects = "Objects"
	methodStats   = "Stats"
	methodHealth  = "Health"
)

// EntityServiceServer is the server API for EntityService
type EntityServiceServer interface {
	Publish(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Get(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Query(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Objects(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Stats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Health(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(EntityServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(EntityServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(EntityServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// EntityServiceDesc is the grpc.ServiceDesc for EntityService
var EntityServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EntityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(methodPublish, EntityServiceServer.Publish),
		unaryHandler(methodGet, EntityServiceServer.Get),
		unaryHandler(methodQuery, EntityServiceServer.Query),
		unaryHandler(methodObjects, EntityServiceServer.Objects),
		unaryHandler(methodStats, EntityServiceServer.Stats),
		unaryHandler(methodHealth, EntityServiceServer.Health),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "trakhound/entity_service.proto",
}

// RegisterEntityServiceServer registers srv with s
func RegisterEntityServiceServer(s grpc.ServiceRegistrar, srv EntityServiceServer) {
	s.RegisterService(&EntityServiceDesc, srv)
}

// EntityServiceClient is the client API for EntityService
type EntityServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEntityServiceClient(cc grpc.ClientConnInterface) *EntityServiceClient {
	return &EntityServiceClient{cc: cc}
}

func (c *EntityServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EntityServiceClient) Publish(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodPublish, in, opts...)
}

func (c *EntityServiceClient) Get(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodGet, in, opts...)
}

func (c *EntityServiceClient) Query(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodQuery, in, opts...)
}

func (c *EntityServiceClient) Objects(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodObjects, in, opts...)
}

func (c *EntityServiceClient) Stats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodStats, in, opts...)
}

func (c *EntityServiceClient) Health(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodHealth, in, opts...)
}
