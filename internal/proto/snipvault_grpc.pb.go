// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: internal/proto/snipvault.proto

package proto

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
	SnipVaultService_Ping_FullMethodName                     = "/snipvault.service.SnipVaultService/Ping"
	SnipVaultService_RegisterDeviceKey_FullMethodName        = "/snipvault.service.SnipVaultService/RegisterDeviceKey"
	SnipVaultService_ListDeviceKeys_FullMethodName           = "/snipvault.service.SnipVaultService/ListDeviceKeys"
	SnipVaultService_DeleteDeviceKey_FullMethodName          = "/snipvault.service.SnipVaultService/DeleteDeviceKey"
	SnipVaultService_ClearDeviceKeys_FullMethodName          = "/snipvault.service.SnipVaultService/ClearDeviceKeys"
	SnipVaultService_InitiateHandshake_FullMethodName        = "/snipvault.service.SnipVaultService/InitiateHandshake"
	SnipVaultService_AttachHandshakePayload_FullMethodName   = "/snipvault.service.SnipVaultService/AttachHandshakePayload"
	SnipVaultService_RetrieveHandshakePayload_FullMethodName = "/snipvault.service.SnipVaultService/RetrieveHandshakePayload"
	SnipVaultService_ResolveTeamDefaultKey_FullMethodName    = "/snipvault.service.SnipVaultService/ResolveTeamDefaultKey"
	SnipVaultService_ResolveTeamMemberKeys_FullMethodName    = "/snipvault.service.SnipVaultService/ResolveTeamMemberKeys"
	SnipVaultService_AddTeamMember_FullMethodName            = "/snipvault.service.SnipVaultService/AddTeamMember"
	SnipVaultService_RemoveTeamMember_FullMethodName         = "/snipvault.service.SnipVaultService/RemoveTeamMember"
	SnipVaultService_CreateSnippet_FullMethodName            = "/snipvault.service.SnipVaultService/CreateSnippet"
	SnipVaultService_GetSnippet_FullMethodName               = "/snipvault.service.SnipVaultService/GetSnippet"
	SnipVaultService_ListSnippets_FullMethodName             = "/snipvault.service.SnipVaultService/ListSnippets"
)

// SnipVaultServiceClient is the client API for SnipVaultService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SnipVaultServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	RegisterDeviceKey(ctx context.Context, in *RegisterDeviceKeyRequest, opts ...grpc.CallOption) (*RegisterDeviceKeyResponse, error)
	ListDeviceKeys(ctx context.Context, in *ListDeviceKeysRequest, opts ...grpc.CallOption) (*ListDeviceKeysResponse, error)
	DeleteDeviceKey(ctx context.Context, in *DeleteDeviceKeyRequest, opts ...grpc.CallOption) (*DeleteDeviceKeyResponse, error)
	ClearDeviceKeys(ctx context.Context, in *ClearDeviceKeysRequest, opts ...grpc.CallOption) (*ClearDeviceKeysResponse, error)
	// Pairing runs before the device holds a token, so these three are the
	// only unauthenticated methods besides Ping.
	InitiateHandshake(ctx context.Context, in *InitiateHandshakeRequest, opts ...grpc.CallOption) (*InitiateHandshakeResponse, error)
	AttachHandshakePayload(ctx context.Context, in *AttachHandshakePayloadRequest, opts ...grpc.CallOption) (*AttachHandshakePayloadResponse, error)
	RetrieveHandshakePayload(ctx context.Context, in *RetrieveHandshakePayloadRequest, opts ...grpc.CallOption) (*RetrieveHandshakePayloadResponse, error)
	ResolveTeamDefaultKey(ctx context.Context, in *ResolveTeamDefaultKeyRequest, opts ...grpc.CallOption) (*ResolveTeamDefaultKeyResponse, error)
	ResolveTeamMemberKeys(ctx context.Context, in *ResolveTeamMemberKeysRequest, opts ...grpc.CallOption) (*ResolveTeamMemberKeysResponse, error)
	AddTeamMember(ctx context.Context, in *AddTeamMemberRequest, opts ...grpc.CallOption) (*AddTeamMemberResponse, error)
	RemoveTeamMember(ctx context.Context, in *RemoveTeamMemberRequest, opts ...grpc.CallOption) (*RemoveTeamMemberResponse, error)
	CreateSnippet(ctx context.Context, in *CreateSnippetRequest, opts ...grpc.CallOption) (*CreateSnippetResponse, error)
	GetSnippet(ctx context.Context, in *GetSnippetRequest, opts ...grpc.CallOption) (*GetSnippetResponse, error)
	ListSnippets(ctx context.Context, in *ListSnippetsRequest, opts ...grpc.CallOption) (*ListSnippetsResponse, error)
}

type snipVaultServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSnipVaultServiceClient(cc grpc.ClientConnInterface) SnipVaultServiceClient {
	return &snipVaultServiceClient{cc}
}

func (c *snipVaultServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_Ping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) RegisterDeviceKey(ctx context.Context, in *RegisterDeviceKeyRequest, opts ...grpc.CallOption) (*RegisterDeviceKeyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterDeviceKeyResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_RegisterDeviceKey_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) ListDeviceKeys(ctx context.Context, in *ListDeviceKeysRequest, opts ...grpc.CallOption) (*ListDeviceKeysResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDeviceKeysResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_ListDeviceKeys_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) DeleteDeviceKey(ctx context.Context, in *DeleteDeviceKeyRequest, opts ...grpc.CallOption) (*DeleteDeviceKeyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteDeviceKeyResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_DeleteDeviceKey_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) ClearDeviceKeys(ctx context.Context, in *ClearDeviceKeysRequest, opts ...grpc.CallOption) (*ClearDeviceKeysResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClearDeviceKeysResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_ClearDeviceKeys_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) InitiateHandshake(ctx context.Context, in *InitiateHandshakeRequest, opts ...grpc.CallOption) (*InitiateHandshakeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InitiateHandshakeResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_InitiateHandshake_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) AttachHandshakePayload(ctx context.Context, in *AttachHandshakePayloadRequest, opts ...grpc.CallOption) (*AttachHandshakePayloadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AttachHandshakePayloadResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_AttachHandshakePayload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) RetrieveHandshakePayload(ctx context.Context, in *RetrieveHandshakePayloadRequest, opts ...grpc.CallOption) (*RetrieveHandshakePayloadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetrieveHandshakePayloadResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_RetrieveHandshakePayload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) ResolveTeamDefaultKey(ctx context.Context, in *ResolveTeamDefaultKeyRequest, opts ...grpc.CallOption) (*ResolveTeamDefaultKeyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveTeamDefaultKeyResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_ResolveTeamDefaultKey_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) ResolveTeamMemberKeys(ctx context.Context, in *ResolveTeamMemberKeysRequest, opts ...grpc.CallOption) (*ResolveTeamMemberKeysResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveTeamMemberKeysResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_ResolveTeamMemberKeys_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) AddTeamMember(ctx context.Context, in *AddTeamMemberRequest, opts ...grpc.CallOption) (*AddTeamMemberResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddTeamMemberResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_AddTeamMember_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) RemoveTeamMember(ctx context.Context, in *RemoveTeamMemberRequest, opts ...grpc.CallOption) (*RemoveTeamMemberResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveTeamMemberResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_RemoveTeamMember_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) CreateSnippet(ctx context.Context, in *CreateSnippetRequest, opts ...grpc.CallOption) (*CreateSnippetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateSnippetResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_CreateSnippet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) GetSnippet(ctx context.Context, in *GetSnippetRequest, opts ...grpc.CallOption) (*GetSnippetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSnippetResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_GetSnippet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *snipVaultServiceClient) ListSnippets(ctx context.Context, in *ListSnippetsRequest, opts ...grpc.CallOption) (*ListSnippetsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSnippetsResponse)
	err := c.cc.Invoke(ctx, SnipVaultService_ListSnippets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SnipVaultServiceServer is the server API for SnipVaultService service.
// All implementations must embed UnimplementedSnipVaultServiceServer
// for forward compatibility.
type SnipVaultServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	RegisterDeviceKey(context.Context, *RegisterDeviceKeyRequest) (*RegisterDeviceKeyResponse, error)
	ListDeviceKeys(context.Context, *ListDeviceKeysRequest) (*ListDeviceKeysResponse, error)
	DeleteDeviceKey(context.Context, *DeleteDeviceKeyRequest) (*DeleteDeviceKeyResponse, error)
	ClearDeviceKeys(context.Context, *ClearDeviceKeysRequest) (*ClearDeviceKeysResponse, error)
	// Pairing runs before the device holds a token, so these three are the
	// only unauthenticated methods besides Ping.
	InitiateHandshake(context.Context, *InitiateHandshakeRequest) (*InitiateHandshakeResponse, error)
	AttachHandshakePayload(context.Context, *AttachHandshakePayloadRequest) (*AttachHandshakePayloadResponse, error)
	RetrieveHandshakePayload(context.Context, *RetrieveHandshakePayloadRequest) (*RetrieveHandshakePayloadResponse, error)
	ResolveTeamDefaultKey(context.Context, *ResolveTeamDefaultKeyRequest) (*ResolveTeamDefaultKeyResponse, error)
	ResolveTeamMemberKeys(context.Context, *ResolveTeamMemberKeysRequest) (*ResolveTeamMemberKeysResponse, error)
	AddTeamMember(context.Context, *AddTeamMemberRequest) (*AddTeamMemberResponse, error)
	RemoveTeamMember(context.Context, *RemoveTeamMemberRequest) (*RemoveTeamMemberResponse, error)
	CreateSnippet(context.Context, *CreateSnippetRequest) (*CreateSnippetResponse, error)
	GetSnippet(context.Context, *GetSnippetRequest) (*GetSnippetResponse, error)
	ListSnippets(context.Context, *ListSnippetsRequest) (*ListSnippetsResponse, error)
	mustEmbedUnimplementedSnipVaultServiceServer()
}

// UnimplementedSnipVaultServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSnipVaultServiceServer struct{}

func (UnimplementedSnipVaultServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedSnipVaultServiceServer) RegisterDeviceKey(context.Context, *RegisterDeviceKeyRequest) (*RegisterDeviceKeyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterDeviceKey not implemented")
}
func (UnimplementedSnipVaultServiceServer) ListDeviceKeys(context.Context, *ListDeviceKeysRequest) (*ListDeviceKeysResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDeviceKeys not implemented")
}
func (UnimplementedSnipVaultServiceServer) DeleteDeviceKey(context.Context, *DeleteDeviceKeyRequest) (*DeleteDeviceKeyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteDeviceKey not implemented")
}
func (UnimplementedSnipVaultServiceServer) ClearDeviceKeys(context.Context, *ClearDeviceKeysRequest) (*ClearDeviceKeysResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearDeviceKeys not implemented")
}
func (UnimplementedSnipVaultServiceServer) InitiateHandshake(context.Context, *InitiateHandshakeRequest) (*InitiateHandshakeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InitiateHandshake not implemented")
}
func (UnimplementedSnipVaultServiceServer) AttachHandshakePayload(context.Context, *AttachHandshakePayloadRequest) (*AttachHandshakePayloadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AttachHandshakePayload not implemented")
}
func (UnimplementedSnipVaultServiceServer) RetrieveHandshakePayload(context.Context, *RetrieveHandshakePayloadRequest) (*RetrieveHandshakePayloadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RetrieveHandshakePayload not implemented")
}
func (UnimplementedSnipVaultServiceServer) ResolveTeamDefaultKey(context.Context, *ResolveTeamDefaultKeyRequest) (*ResolveTeamDefaultKeyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveTeamDefaultKey not implemented")
}
func (UnimplementedSnipVaultServiceServer) ResolveTeamMemberKeys(context.Context, *ResolveTeamMemberKeysRequest) (*ResolveTeamMemberKeysResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveTeamMemberKeys not implemented")
}
func (UnimplementedSnipVaultServiceServer) AddTeamMember(context.Context, *AddTeamMemberRequest) (*AddTeamMemberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddTeamMember not implemented")
}
func (UnimplementedSnipVaultServiceServer) RemoveTeamMember(context.Context, *RemoveTeamMemberRequest) (*RemoveTeamMemberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveTeamMember not implemented")
}
func (UnimplementedSnipVaultServiceServer) CreateSnippet(context.Context, *CreateSnippetRequest) (*CreateSnippetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSnippet not implemented")
}
func (UnimplementedSnipVaultServiceServer) GetSnippet(context.Context, *GetSnippetRequest) (*GetSnippetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSnippet not implemented")
}
func (UnimplementedSnipVaultServiceServer) ListSnippets(context.Context, *ListSnippetsRequest) (*ListSnippetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSnippets not implemented")
}
func (UnimplementedSnipVaultServiceServer) mustEmbedUnimplementedSnipVaultServiceServer() {}
func (UnimplementedSnipVaultServiceServer) testEmbeddedByValue()                          {}

// UnsafeSnipVaultServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SnipVaultServiceServer will
// result in compilation errors.
type UnsafeSnipVaultServiceServer interface {
	mustEmbedUnimplementedSnipVaultServiceServer()
}

func RegisterSnipVaultServiceServer(s grpc.ServiceRegistrar, srv SnipVaultServiceServer) {
	// If the following call pancis, it indicates UnimplementedSnipVaultServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SnipVaultService_ServiceDesc, srv)
}

func _SnipVaultService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_RegisterDeviceKey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterDeviceKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).RegisterDeviceKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_RegisterDeviceKey_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).RegisterDeviceKey(ctx, req.(*RegisterDeviceKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_ListDeviceKeys_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDeviceKeysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).ListDeviceKeys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_ListDeviceKeys_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).ListDeviceKeys(ctx, req.(*ListDeviceKeysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_DeleteDeviceKey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteDeviceKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).DeleteDeviceKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_DeleteDeviceKey_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).DeleteDeviceKey(ctx, req.(*DeleteDeviceKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_ClearDeviceKeys_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearDeviceKeysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).ClearDeviceKeys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_ClearDeviceKeys_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).ClearDeviceKeys(ctx, req.(*ClearDeviceKeysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_InitiateHandshake_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitiateHandshakeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).InitiateHandshake(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_InitiateHandshake_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).InitiateHandshake(ctx, req.(*InitiateHandshakeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_AttachHandshakePayload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttachHandshakePayloadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).AttachHandshakePayload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_AttachHandshakePayload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).AttachHandshakePayload(ctx, req.(*AttachHandshakePayloadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_RetrieveHandshakePayload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetrieveHandshakePayloadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).RetrieveHandshakePayload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_RetrieveHandshakePayload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).RetrieveHandshakePayload(ctx, req.(*RetrieveHandshakePayloadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_ResolveTeamDefaultKey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveTeamDefaultKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).ResolveTeamDefaultKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_ResolveTeamDefaultKey_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).ResolveTeamDefaultKey(ctx, req.(*ResolveTeamDefaultKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_ResolveTeamMemberKeys_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveTeamMemberKeysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).ResolveTeamMemberKeys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_ResolveTeamMemberKeys_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).ResolveTeamMemberKeys(ctx, req.(*ResolveTeamMemberKeysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_AddTeamMember_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddTeamMemberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).AddTeamMember(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_AddTeamMember_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).AddTeamMember(ctx, req.(*AddTeamMemberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_RemoveTeamMember_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveTeamMemberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).RemoveTeamMember(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_RemoveTeamMember_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).RemoveTeamMember(ctx, req.(*RemoveTeamMemberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_CreateSnippet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSnippetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).CreateSnippet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_CreateSnippet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).CreateSnippet(ctx, req.(*CreateSnippetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_GetSnippet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSnippetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).GetSnippet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_GetSnippet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).GetSnippet(ctx, req.(*GetSnippetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SnipVaultService_ListSnippets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSnippetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnipVaultServiceServer).ListSnippets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnipVaultService_ListSnippets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SnipVaultServiceServer).ListSnippets(ctx, req.(*ListSnippetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SnipVaultService_ServiceDesc is the grpc.ServiceDesc for SnipVaultService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SnipVaultService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "snipvault.service.SnipVaultService",
	HandlerType: (*SnipVaultServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    _SnipVaultService_Ping_Handler,
		},
		{
			MethodName: "RegisterDeviceKey",
			Handler:    _SnipVaultService_RegisterDeviceKey_Handler,
		},
		{
			MethodName: "ListDeviceKeys",
			Handler:    _SnipVaultService_ListDeviceKeys_Handler,
		},
		{
			MethodName: "DeleteDeviceKey",
			Handler:    _SnipVaultService_DeleteDeviceKey_Handler,
		},
		{
			MethodName: "ClearDeviceKeys",
			Handler:    _SnipVaultService_ClearDeviceKeys_Handler,
		},
		{
			MethodName: "InitiateHandshake",
			Handler:    _SnipVaultService_InitiateHandshake_Handler,
		},
		{
			MethodName: "AttachHandshakePayload",
			Handler:    _SnipVaultService_AttachHandshakePayload_Handler,
		},
		{
			MethodName: "RetrieveHandshakePayload",
			Handler:    _SnipVaultService_RetrieveHandshakePayload_Handler,
		},
		{
			MethodName: "ResolveTeamDefaultKey",
			Handler:    _SnipVaultService_ResolveTeamDefaultKey_Handler,
		},
		{
			MethodName: "ResolveTeamMemberKeys",
			Handler:    _SnipVaultService_ResolveTeamMemberKeys_Handler,
		},
		{
			MethodName: "AddTeamMember",
			Handler:    _SnipVaultService_AddTeamMember_Handler,
		},
		{
			MethodName: "RemoveTeamMember",
			Handler:    _SnipVaultService_RemoveTeamMember_Handler,
		},
		{
			MethodName: "CreateSnippet",
			Handler:    _SnipVaultService_CreateSnippet_Handler,
		},
		{
			MethodName: "GetSnippet",
			Handler:    _SnipVaultService_GetSnippet_Handler,
		},
		{
			MethodName: "ListSnippets",
			Handler:    _SnipVaultService_ListSnippets_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/proto/snipvault.proto",
}
