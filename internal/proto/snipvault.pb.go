// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.9
// 	protoc        (unknown)
// source: internal/proto/snipvault.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type DeviceKey struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	UserId           string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DeviceId         string                 `protobuf:"bytes,2,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	Algorithm        string                 `protobuf:"bytes,3,opt,name=algorithm,proto3" json:"algorithm,omitempty"`
	EncryptionKeyJwk []byte                 `protobuf:"bytes,4,opt,name=encryption_key_jwk,json=encryptionKeyJwk,proto3" json:"encryption_key_jwk,omitempty"`
	SigningKeyJwk    []byte                 `protobuf:"bytes,5,opt,name=signing_key_jwk,json=signingKeyJwk,proto3" json:"signing_key_jwk,omitempty"` // empty when the device registered no signing key
	IsDefault        bool                   `protobuf:"varint,6,opt,name=is_default,json=isDefault,proto3" json:"is_default,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *DeviceKey) Reset() {
	*x = DeviceKey{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceKey) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceKey) ProtoMessage() {}

func (x *DeviceKey) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceKey.ProtoReflect.Descriptor instead.
func (*DeviceKey) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{0}
}

func (x *DeviceKey) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *DeviceKey) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

func (x *DeviceKey) GetAlgorithm() string {
	if x != nil {
		return x.Algorithm
	}
	return ""
}

func (x *DeviceKey) GetEncryptionKeyJwk() []byte {
	if x != nil {
		return x.EncryptionKeyJwk
	}
	return nil
}

func (x *DeviceKey) GetSigningKeyJwk() []byte {
	if x != nil {
		return x.SigningKeyJwk
	}
	return nil
}

func (x *DeviceKey) GetIsDefault() bool {
	if x != nil {
		return x.IsDefault
	}
	return false
}

type RegisterDeviceKeyRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	DeviceId         string                 `protobuf:"bytes,1,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	Algorithm        string                 `protobuf:"bytes,2,opt,name=algorithm,proto3" json:"algorithm,omitempty"`
	EncryptionKeyJwk []byte                 `protobuf:"bytes,3,opt,name=encryption_key_jwk,json=encryptionKeyJwk,proto3" json:"encryption_key_jwk,omitempty"`
	SigningKeyJwk    []byte                 `protobuf:"bytes,4,opt,name=signing_key_jwk,json=signingKeyJwk,proto3" json:"signing_key_jwk,omitempty"`
	IsDefault        bool                   `protobuf:"varint,5,opt,name=is_default,json=isDefault,proto3" json:"is_default,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *RegisterDeviceKeyRequest) Reset() {
	*x = RegisterDeviceKeyRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDeviceKeyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDeviceKeyRequest) ProtoMessage() {}

func (x *RegisterDeviceKeyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDeviceKeyRequest.ProtoReflect.Descriptor instead.
func (*RegisterDeviceKeyRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterDeviceKeyRequest) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

func (x *RegisterDeviceKeyRequest) GetAlgorithm() string {
	if x != nil {
		return x.Algorithm
	}
	return ""
}

func (x *RegisterDeviceKeyRequest) GetEncryptionKeyJwk() []byte {
	if x != nil {
		return x.EncryptionKeyJwk
	}
	return nil
}

func (x *RegisterDeviceKeyRequest) GetSigningKeyJwk() []byte {
	if x != nil {
		return x.SigningKeyJwk
	}
	return nil
}

func (x *RegisterDeviceKeyRequest) GetIsDefault() bool {
	if x != nil {
		return x.IsDefault
	}
	return false
}

type RegisterDeviceKeyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           *DeviceKey             `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDeviceKeyResponse) Reset() {
	*x = RegisterDeviceKeyResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDeviceKeyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDeviceKeyResponse) ProtoMessage() {}

func (x *RegisterDeviceKeyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDeviceKeyResponse.ProtoReflect.Descriptor instead.
func (*RegisterDeviceKeyResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{2}
}

func (x *RegisterDeviceKeyResponse) GetKey() *DeviceKey {
	if x != nil {
		return x.Key
	}
	return nil
}

type ListDeviceKeysRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDeviceKeysRequest) Reset() {
	*x = ListDeviceKeysRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDeviceKeysRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDeviceKeysRequest) ProtoMessage() {}

func (x *ListDeviceKeysRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDeviceKeysRequest.ProtoReflect.Descriptor instead.
func (*ListDeviceKeysRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{3}
}

type ListDeviceKeysResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Keys          []*DeviceKey           `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDeviceKeysResponse) Reset() {
	*x = ListDeviceKeysResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDeviceKeysResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDeviceKeysResponse) ProtoMessage() {}

func (x *ListDeviceKeysResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDeviceKeysResponse.ProtoReflect.Descriptor instead.
func (*ListDeviceKeysResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{4}
}

func (x *ListDeviceKeysResponse) GetKeys() []*DeviceKey {
	if x != nil {
		return x.Keys
	}
	return nil
}

type DeleteDeviceKeyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeviceId      string                 `protobuf:"bytes,1,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDeviceKeyRequest) Reset() {
	*x = DeleteDeviceKeyRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDeviceKeyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDeviceKeyRequest) ProtoMessage() {}

func (x *DeleteDeviceKeyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDeviceKeyRequest.ProtoReflect.Descriptor instead.
func (*DeleteDeviceKeyRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{5}
}

func (x *DeleteDeviceKeyRequest) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

type DeleteDeviceKeyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDeviceKeyResponse) Reset() {
	*x = DeleteDeviceKeyResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDeviceKeyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDeviceKeyResponse) ProtoMessage() {}

func (x *DeleteDeviceKeyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDeviceKeyResponse.ProtoReflect.Descriptor instead.
func (*DeleteDeviceKeyResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{6}
}

type ClearDeviceKeysRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearDeviceKeysRequest) Reset() {
	*x = ClearDeviceKeysRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearDeviceKeysRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearDeviceKeysRequest) ProtoMessage() {}

func (x *ClearDeviceKeysRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearDeviceKeysRequest.ProtoReflect.Descriptor instead.
func (*ClearDeviceKeysRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{7}
}

type ClearDeviceKeysResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearDeviceKeysResponse) Reset() {
	*x = ClearDeviceKeysResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearDeviceKeysResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearDeviceKeysResponse) ProtoMessage() {}

func (x *ClearDeviceKeysResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearDeviceKeysResponse.ProtoReflect.Descriptor instead.
func (*ClearDeviceKeysResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{8}
}

type InitiateHandshakeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientKeyJwk  []byte                 `protobuf:"bytes,1,opt,name=client_key_jwk,json=clientKeyJwk,proto3" json:"client_key_jwk,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InitiateHandshakeRequest) Reset() {
	*x = InitiateHandshakeRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitiateHandshakeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitiateHandshakeRequest) ProtoMessage() {}

func (x *InitiateHandshakeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitiateHandshakeRequest.ProtoReflect.Descriptor instead.
func (*InitiateHandshakeRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{9}
}

func (x *InitiateHandshakeRequest) GetClientKeyJwk() []byte {
	if x != nil {
		return x.ClientKeyJwk
	}
	return nil
}

type InitiateHandshakeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HandshakeId   string                 `protobuf:"bytes,1,opt,name=handshake_id,json=handshakeId,proto3" json:"handshake_id,omitempty"`
	ServerKeyJwk  []byte                 `protobuf:"bytes,2,opt,name=server_key_jwk,json=serverKeyJwk,proto3" json:"server_key_jwk,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InitiateHandshakeResponse) Reset() {
	*x = InitiateHandshakeResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitiateHandshakeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitiateHandshakeResponse) ProtoMessage() {}

func (x *InitiateHandshakeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitiateHandshakeResponse.ProtoReflect.Descriptor instead.
func (*InitiateHandshakeResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{10}
}

func (x *InitiateHandshakeResponse) GetHandshakeId() string {
	if x != nil {
		return x.HandshakeId
	}
	return ""
}

func (x *InitiateHandshakeResponse) GetServerKeyJwk() []byte {
	if x != nil {
		return x.ServerKeyJwk
	}
	return nil
}

type AttachHandshakePayloadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HandshakeId   string                 `protobuf:"bytes,1,opt,name=handshake_id,json=handshakeId,proto3" json:"handshake_id,omitempty"`
	Payload       []byte                 `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Iv            []byte                 `protobuf:"bytes,3,opt,name=iv,proto3" json:"iv,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachHandshakePayloadRequest) Reset() {
	*x = AttachHandshakePayloadRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachHandshakePayloadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachHandshakePayloadRequest) ProtoMessage() {}

func (x *AttachHandshakePayloadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachHandshakePayloadRequest.ProtoReflect.Descriptor instead.
func (*AttachHandshakePayloadRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{11}
}

func (x *AttachHandshakePayloadRequest) GetHandshakeId() string {
	if x != nil {
		return x.HandshakeId
	}
	return ""
}

func (x *AttachHandshakePayloadRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *AttachHandshakePayloadRequest) GetIv() []byte {
	if x != nil {
		return x.Iv
	}
	return nil
}

type AttachHandshakePayloadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachHandshakePayloadResponse) Reset() {
	*x = AttachHandshakePayloadResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachHandshakePayloadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachHandshakePayloadResponse) ProtoMessage() {}

func (x *AttachHandshakePayloadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachHandshakePayloadResponse.ProtoReflect.Descriptor instead.
func (*AttachHandshakePayloadResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{12}
}

type RetrieveHandshakePayloadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HandshakeId   string                 `protobuf:"bytes,1,opt,name=handshake_id,json=handshakeId,proto3" json:"handshake_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetrieveHandshakePayloadRequest) Reset() {
	*x = RetrieveHandshakePayloadRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetrieveHandshakePayloadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetrieveHandshakePayloadRequest) ProtoMessage() {}

func (x *RetrieveHandshakePayloadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetrieveHandshakePayloadRequest.ProtoReflect.Descriptor instead.
func (*RetrieveHandshakePayloadRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{13}
}

func (x *RetrieveHandshakePayloadRequest) GetHandshakeId() string {
	if x != nil {
		return x.HandshakeId
	}
	return ""
}

type RetrieveHandshakePayloadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Payload       []byte                 `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	Iv            []byte                 `protobuf:"bytes,2,opt,name=iv,proto3" json:"iv,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetrieveHandshakePayloadResponse) Reset() {
	*x = RetrieveHandshakePayloadResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetrieveHandshakePayloadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetrieveHandshakePayloadResponse) ProtoMessage() {}

func (x *RetrieveHandshakePayloadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetrieveHandshakePayloadResponse.ProtoReflect.Descriptor instead.
func (*RetrieveHandshakePayloadResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{14}
}

func (x *RetrieveHandshakePayloadResponse) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *RetrieveHandshakePayloadResponse) GetIv() []byte {
	if x != nil {
		return x.Iv
	}
	return nil
}

type ResolveTeamDefaultKeyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TeamId        string                 `protobuf:"bytes,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveTeamDefaultKeyRequest) Reset() {
	*x = ResolveTeamDefaultKeyRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveTeamDefaultKeyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveTeamDefaultKeyRequest) ProtoMessage() {}

func (x *ResolveTeamDefaultKeyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveTeamDefaultKeyRequest.ProtoReflect.Descriptor instead.
func (*ResolveTeamDefaultKeyRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{15}
}

func (x *ResolveTeamDefaultKeyRequest) GetTeamId() string {
	if x != nil {
		return x.TeamId
	}
	return ""
}

type ResolveTeamDefaultKeyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           *DeviceKey             `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveTeamDefaultKeyResponse) Reset() {
	*x = ResolveTeamDefaultKeyResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveTeamDefaultKeyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveTeamDefaultKeyResponse) ProtoMessage() {}

func (x *ResolveTeamDefaultKeyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveTeamDefaultKeyResponse.ProtoReflect.Descriptor instead.
func (*ResolveTeamDefaultKeyResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{16}
}

func (x *ResolveTeamDefaultKeyResponse) GetKey() *DeviceKey {
	if x != nil {
		return x.Key
	}
	return nil
}

type ResolveTeamMemberKeysRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TeamId        string                 `protobuf:"bytes,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveTeamMemberKeysRequest) Reset() {
	*x = ResolveTeamMemberKeysRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveTeamMemberKeysRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveTeamMemberKeysRequest) ProtoMessage() {}

func (x *ResolveTeamMemberKeysRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveTeamMemberKeysRequest.ProtoReflect.Descriptor instead.
func (*ResolveTeamMemberKeysRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{17}
}

func (x *ResolveTeamMemberKeysRequest) GetTeamId() string {
	if x != nil {
		return x.TeamId
	}
	return ""
}

type ResolveTeamMemberKeysResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Keys          []*DeviceKey           `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveTeamMemberKeysResponse) Reset() {
	*x = ResolveTeamMemberKeysResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveTeamMemberKeysResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveTeamMemberKeysResponse) ProtoMessage() {}

func (x *ResolveTeamMemberKeysResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveTeamMemberKeysResponse.ProtoReflect.Descriptor instead.
func (*ResolveTeamMemberKeysResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{18}
}

func (x *ResolveTeamMemberKeysResponse) GetKeys() []*DeviceKey {
	if x != nil {
		return x.Keys
	}
	return nil
}

type AddTeamMemberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TeamId        string                 `protobuf:"bytes,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Role          string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTeamMemberRequest) Reset() {
	*x = AddTeamMemberRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTeamMemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTeamMemberRequest) ProtoMessage() {}

func (x *AddTeamMemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTeamMemberRequest.ProtoReflect.Descriptor instead.
func (*AddTeamMemberRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{19}
}

func (x *AddTeamMemberRequest) GetTeamId() string {
	if x != nil {
		return x.TeamId
	}
	return ""
}

func (x *AddTeamMemberRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AddTeamMemberRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type AddTeamMemberResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTeamMemberResponse) Reset() {
	*x = AddTeamMemberResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTeamMemberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTeamMemberResponse) ProtoMessage() {}

func (x *AddTeamMemberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTeamMemberResponse.ProtoReflect.Descriptor instead.
func (*AddTeamMemberResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{20}
}

type RemoveTeamMemberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TeamId        string                 `protobuf:"bytes,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveTeamMemberRequest) Reset() {
	*x = RemoveTeamMemberRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveTeamMemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveTeamMemberRequest) ProtoMessage() {}

func (x *RemoveTeamMemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveTeamMemberRequest.ProtoReflect.Descriptor instead.
func (*RemoveTeamMemberRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{21}
}

func (x *RemoveTeamMemberRequest) GetTeamId() string {
	if x != nil {
		return x.TeamId
	}
	return ""
}

func (x *RemoveTeamMemberRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type RemoveTeamMemberResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveTeamMemberResponse) Reset() {
	*x = RemoveTeamMemberResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveTeamMemberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveTeamMemberResponse) ProtoMessage() {}

func (x *RemoveTeamMemberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveTeamMemberResponse.ProtoReflect.Descriptor instead.
func (*RemoveTeamMemberResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{22}
}

type WrappedKey struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DeviceId      string                 `protobuf:"bytes,2,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	Key           []byte                 `protobuf:"bytes,3,opt,name=key,proto3" json:"key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WrappedKey) Reset() {
	*x = WrappedKey{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WrappedKey) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WrappedKey) ProtoMessage() {}

func (x *WrappedKey) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WrappedKey.ProtoReflect.Descriptor instead.
func (*WrappedKey) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{23}
}

func (x *WrappedKey) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *WrappedKey) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

func (x *WrappedKey) GetKey() []byte {
	if x != nil {
		return x.Key
	}
	return nil
}

type Snippet struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId         string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	TeamId          string                 `protobuf:"bytes,3,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	TitleCiphertext []byte                 `protobuf:"bytes,4,opt,name=title_ciphertext,json=titleCiphertext,proto3" json:"title_ciphertext,omitempty"`
	TitleNonce      []byte                 `protobuf:"bytes,5,opt,name=title_nonce,json=titleNonce,proto3" json:"title_nonce,omitempty"`
	Algorithm       string                 `protobuf:"bytes,6,opt,name=algorithm,proto3" json:"algorithm,omitempty"`
	CreatedAtUnix   int64                  `protobuf:"varint,7,opt,name=created_at_unix,json=createdAtUnix,proto3" json:"created_at_unix,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Snippet) Reset() {
	*x = Snippet{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Snippet) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Snippet) ProtoMessage() {}

func (x *Snippet) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Snippet.ProtoReflect.Descriptor instead.
func (*Snippet) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{24}
}

func (x *Snippet) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Snippet) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Snippet) GetTeamId() string {
	if x != nil {
		return x.TeamId
	}
	return ""
}

func (x *Snippet) GetTitleCiphertext() []byte {
	if x != nil {
		return x.TitleCiphertext
	}
	return nil
}

func (x *Snippet) GetTitleNonce() []byte {
	if x != nil {
		return x.TitleNonce
	}
	return nil
}

func (x *Snippet) GetAlgorithm() string {
	if x != nil {
		return x.Algorithm
	}
	return ""
}

func (x *Snippet) GetCreatedAtUnix() int64 {
	if x != nil {
		return x.CreatedAtUnix
	}
	return 0
}

type CreateSnippetRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	TeamId          string                 `protobuf:"bytes,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	TitleCiphertext []byte                 `protobuf:"bytes,2,opt,name=title_ciphertext,json=titleCiphertext,proto3" json:"title_ciphertext,omitempty"`
	TitleNonce      []byte                 `protobuf:"bytes,3,opt,name=title_nonce,json=titleNonce,proto3" json:"title_nonce,omitempty"`
	Algorithm       string                 `protobuf:"bytes,4,opt,name=algorithm,proto3" json:"algorithm,omitempty"`
	WrappedKeys     []*WrappedKey          `protobuf:"bytes,5,rep,name=wrapped_keys,json=wrappedKeys,proto3" json:"wrapped_keys,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateSnippetRequest) Reset() {
	*x = CreateSnippetRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSnippetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSnippetRequest) ProtoMessage() {}

func (x *CreateSnippetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSnippetRequest.ProtoReflect.Descriptor instead.
func (*CreateSnippetRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{25}
}

func (x *CreateSnippetRequest) GetTeamId() string {
	if x != nil {
		return x.TeamId
	}
	return ""
}

func (x *CreateSnippetRequest) GetTitleCiphertext() []byte {
	if x != nil {
		return x.TitleCiphertext
	}
	return nil
}

func (x *CreateSnippetRequest) GetTitleNonce() []byte {
	if x != nil {
		return x.TitleNonce
	}
	return nil
}

func (x *CreateSnippetRequest) GetAlgorithm() string {
	if x != nil {
		return x.Algorithm
	}
	return ""
}

func (x *CreateSnippetRequest) GetWrappedKeys() []*WrappedKey {
	if x != nil {
		return x.WrappedKeys
	}
	return nil
}

type CreateSnippetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Snippet       *Snippet               `protobuf:"bytes,1,opt,name=snippet,proto3" json:"snippet,omitempty"`
	UploadUrl     string                 `protobuf:"bytes,2,opt,name=upload_url,json=uploadUrl,proto3" json:"upload_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSnippetResponse) Reset() {
	*x = CreateSnippetResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSnippetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSnippetResponse) ProtoMessage() {}

func (x *CreateSnippetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSnippetResponse.ProtoReflect.Descriptor instead.
func (*CreateSnippetResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{26}
}

func (x *CreateSnippetResponse) GetSnippet() *Snippet {
	if x != nil {
		return x.Snippet
	}
	return nil
}

func (x *CreateSnippetResponse) GetUploadUrl() string {
	if x != nil {
		return x.UploadUrl
	}
	return ""
}

type GetSnippetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DeviceId      string                 `protobuf:"bytes,2,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSnippetRequest) Reset() {
	*x = GetSnippetRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSnippetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSnippetRequest) ProtoMessage() {}

func (x *GetSnippetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSnippetRequest.ProtoReflect.Descriptor instead.
func (*GetSnippetRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{27}
}

func (x *GetSnippetRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GetSnippetRequest) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

type GetSnippetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Snippet       *Snippet               `protobuf:"bytes,1,opt,name=snippet,proto3" json:"snippet,omitempty"`
	WrappedKey    *WrappedKey            `protobuf:"bytes,2,opt,name=wrapped_key,json=wrappedKey,proto3" json:"wrapped_key,omitempty"`
	DownloadUrl   string                 `protobuf:"bytes,3,opt,name=download_url,json=downloadUrl,proto3" json:"download_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSnippetResponse) Reset() {
	*x = GetSnippetResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSnippetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSnippetResponse) ProtoMessage() {}

func (x *GetSnippetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSnippetResponse.ProtoReflect.Descriptor instead.
func (*GetSnippetResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{28}
}

func (x *GetSnippetResponse) GetSnippet() *Snippet {
	if x != nil {
		return x.Snippet
	}
	return nil
}

func (x *GetSnippetResponse) GetWrappedKey() *WrappedKey {
	if x != nil {
		return x.WrappedKey
	}
	return nil
}

func (x *GetSnippetResponse) GetDownloadUrl() string {
	if x != nil {
		return x.DownloadUrl
	}
	return ""
}

type ListSnippetsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSnippetsRequest) Reset() {
	*x = ListSnippetsRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSnippetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSnippetsRequest) ProtoMessage() {}

func (x *ListSnippetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSnippetsRequest.ProtoReflect.Descriptor instead.
func (*ListSnippetsRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{29}
}

type ListSnippetsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Snippets      []*Snippet             `protobuf:"bytes,1,rep,name=snippets,proto3" json:"snippets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSnippetsResponse) Reset() {
	*x = ListSnippetsResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSnippetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSnippetsResponse) ProtoMessage() {}

func (x *ListSnippetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSnippetsResponse.ProtoReflect.Descriptor instead.
func (*ListSnippetsResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{30}
}

func (x *ListSnippetsResponse) GetSnippets() []*Snippet {
	if x != nil {
		return x.Snippets
	}
	return nil
}

type PingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingRequest) Reset() {
	*x = PingRequest{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingRequest) ProtoMessage() {}

func (x *PingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingRequest.ProtoReflect.Descriptor instead.
func (*PingRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{31}
}

type PingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingResponse) Reset() {
	*x = PingResponse{}
	mi := &file_internal_proto_snipvault_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingResponse) ProtoMessage() {}

func (x *PingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_snipvault_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingResponse.ProtoReflect.Descriptor instead.
func (*PingResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_snipvault_proto_rawDescGZIP(), []int{32}
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

var File_internal_proto_snipvault_proto protoreflect.FileDescriptor

const file_internal_proto_snipvault_proto_rawDesc = "" +
	"\n" +
	"\x1einternal/proto/snipvault.proto\x12\x11snipvault.service\"\xd4\x01\n" +
	"\tDeviceKey\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tdevice_id\x18\x02 \x01(\tR\bdeviceId\x12\x1c\n" +
	"\talgorithm\x18\x03 \x01(\tR\talgorithm\x12,\n" +
	"\x12encryption_key_jwk\x18\x04 \x01(\fR\x10encryptionKeyJwk\x12&\n" +
	"\x0fsigning_key_jwk\x18\x05 \x01(\fR\rsigningKeyJwk\x12\x1d\n" +
	"\n" +
	"is_default\x18\x06 \x01(\bR\tisDefault\"\xca\x01\n" +
	"\x18RegisterDeviceKeyRequest\x12\x1b\n" +
	"\tdevice_id\x18\x01 \x01(\tR\bdeviceId\x12\x1c\n" +
	"\talgorithm\x18\x02 \x01(\tR\talgorithm\x12,\n" +
	"\x12encryption_key_jwk\x18\x03 \x01(\fR\x10encryptionKeyJwk\x12&\n" +
	"\x0fsigning_key_jwk\x18\x04 \x01(\fR\rsigningKeyJwk\x12\x1d\n" +
	"\n" +
	"is_default\x18\x05 \x01(\bR\tisDefault\"K\n" +
	"\x19RegisterDeviceKeyResponse\x12.\n" +
	"\x03key\x18\x01 \x01(\v2\x1c.snipvault.service.DeviceKeyR\x03key\"\x17\n" +
	"\x15ListDeviceKeysRequest\"J\n" +
	"\x16ListDeviceKeysResponse\x120\n" +
	"\x04keys\x18\x01 \x03(\v2\x1c.snipvault.service.DeviceKeyR\x04keys\"5\n" +
	"\x16DeleteDeviceKeyRequest\x12\x1b\n" +
	"\tdevice_id\x18\x01 \x01(\tR\bdeviceId\"\x19\n" +
	"\x17DeleteDeviceKeyResponse\"\x18\n" +
	"\x16ClearDeviceKeysRequest\"\x19\n" +
	"\x17ClearDeviceKeysResponse\"@\n" +
	"\x18InitiateHandshakeRequest\x12$\n" +
	"\x0eclient_key_jwk\x18\x01 \x01(\fR\fclientKeyJwk\"d\n" +
	"\x19InitiateHandshakeResponse\x12!\n" +
	"\fhandshake_id\x18\x01 \x01(\tR\vhandshakeId\x12$\n" +
	"\x0eserver_key_jwk\x18\x02 \x01(\fR\fserverKeyJwk\"l\n" +
	"\x1dAttachHandshakePayloadRequest\x12!\n" +
	"\fhandshake_id\x18\x01 \x01(\tR\vhandshakeId\x12\x18\n" +
	"\apayload\x18\x02 \x01(\fR\apayload\x12\x0e\n" +
	"\x02iv\x18\x03 \x01(\fR\x02iv\" \n" +
	"\x1eAttachHandshakePayloadResponse\"D\n" +
	"\x1fRetrieveHandshakePayloadRequest\x12!\n" +
	"\fhandshake_id\x18\x01 \x01(\tR\vhandshakeId\"L\n" +
	" RetrieveHandshakePayloadResponse\x12\x18\n" +
	"\apayload\x18\x01 \x01(\fR\apayload\x12\x0e\n" +
	"\x02iv\x18\x02 \x01(\fR\x02iv\"7\n" +
	"\x1cResolveTeamDefaultKeyRequest\x12\x17\n" +
	"\ateam_id\x18\x01 \x01(\tR\x06teamId\"O\n" +
	"\x1dResolveTeamDefaultKeyResponse\x12.\n" +
	"\x03key\x18\x01 \x01(\v2\x1c.snipvault.service.DeviceKeyR\x03key\"7\n" +
	"\x1cResolveTeamMemberKeysRequest\x12\x17\n" +
	"\ateam_id\x18\x01 \x01(\tR\x06teamId\"Q\n" +
	"\x1dResolveTeamMemberKeysResponse\x120\n" +
	"\x04keys\x18\x01 \x03(\v2\x1c.snipvault.service.DeviceKeyR\x04keys\"\\\n" +
	"\x14AddTeamMemberRequest\x12\x17\n" +
	"\ateam_id\x18\x01 \x01(\tR\x06teamId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\"\x17\n" +
	"\x15AddTeamMemberResponse\"K\n" +
	"\x17RemoveTeamMemberRequest\x12\x17\n" +
	"\ateam_id\x18\x01 \x01(\tR\x06teamId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"\x1a\n" +
	"\x18RemoveTeamMemberResponse\"T\n" +
	"\n" +
	"WrappedKey\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tdevice_id\x18\x02 \x01(\tR\bdeviceId\x12\x10\n" +
	"\x03key\x18\x03 \x01(\fR\x03key\"\xdf\x01\n" +
	"\aSnippet\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x17\n" +
	"\ateam_id\x18\x03 \x01(\tR\x06teamId\x12)\n" +
	"\x10title_ciphertext\x18\x04 \x01(\fR\x0ftitleCiphertext\x12\x1f\n" +
	"\vtitle_nonce\x18\x05 \x01(\fR\n" +
	"titleNonce\x12\x1c\n" +
	"\talgorithm\x18\x06 \x01(\tR\talgorithm\x12&\n" +
	"\x0fcreated_at_unix\x18\a \x01(\x03R\rcreatedAtUnix\"\xdb\x01\n" +
	"\x14CreateSnippetRequest\x12\x17\n" +
	"\ateam_id\x18\x01 \x01(\tR\x06teamId\x12)\n" +
	"\x10title_ciphertext\x18\x02 \x01(\fR\x0ftitleCiphertext\x12\x1f\n" +
	"\vtitle_nonce\x18\x03 \x01(\fR\n" +
	"titleNonce\x12\x1c\n" +
	"\talgorithm\x18\x04 \x01(\tR\talgorithm\x12@\n" +
	"\fwrapped_keys\x18\x05 \x03(\v2\x1d.snipvault.service.WrappedKeyR\vwrappedKeys\"l\n" +
	"\x15CreateSnippetResponse\x124\n" +
	"\asnippet\x18\x01 \x01(\v2\x1a.snipvault.service.SnippetR\asnippet\x12\x1d\n" +
	"\n" +
	"upload_url\x18\x02 \x01(\tR\tuploadUrl\"@\n" +
	"\x11GetSnippetRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tdevice_id\x18\x02 \x01(\tR\bdeviceId\"\xad\x01\n" +
	"\x12GetSnippetResponse\x124\n" +
	"\asnippet\x18\x01 \x01(\v2\x1a.snipvault.service.SnippetR\asnippet\x12>\n" +
	"\vwrapped_key\x18\x02 \x01(\v2\x1d.snipvault.service.WrappedKeyR\n" +
	"wrappedKey\x12!\n" +
	"\fdownload_url\x18\x03 \x01(\tR\vdownloadUrl\"\x15\n" +
	"\x13ListSnippetsRequest\"N\n" +
	"\x14ListSnippetsResponse\x126\n" +
	"\bsnippets\x18\x01 \x03(\v2\x1a.snipvault.service.SnippetR\bsnippets\"\r\n" +
	"\vPingRequest\"&\n" +
	"\fPingResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status2\xe4\f\n" +
	"\x10SnipVaultService\x12G\n" +
	"\x04Ping\x12\x1e.snipvault.service.PingRequest\x1a\x1f.snipvault.service.PingResponse\x12n\n" +
	"\x11RegisterDeviceKey\x12+.snipvault.service.RegisterDeviceKeyRequest\x1a,.snipvault.service.RegisterDeviceKeyResponse\x12e\n" +
	"\x0eListDeviceKeys\x12(.snipvault.service.ListDeviceKeysRequest\x1a).snipvault.service.ListDeviceKeysResponse\x12h\n" +
	"\x0fDeleteDeviceKey\x12).snipvault.service.DeleteDeviceKeyRequest\x1a*.snipvault.service.DeleteDeviceKeyResponse\x12h\n" +
	"\x0fClearDeviceKeys\x12).snipvault.service.ClearDeviceKeysRequest\x1a*.snipvault.service.ClearDeviceKeysResponse\x12n\n" +
	"\x11InitiateHandshake\x12+.snipvault.service.InitiateHandshakeRequest\x1a,.snipvault.service.InitiateHandshakeResponse\x12}\n" +
	"\x16AttachHandshakePayload\x120.snipvault.service.AttachHandshakePayloadRequest\x1a1.snipvault.service.AttachHandshakePayloadResponse\x12\x83\x01\n" +
	"\x18RetrieveHandshakePayload\x122.snipvault.service.RetrieveHandshakePayloadRequest\x1a3.snipvault.service.RetrieveHandshakePayloadResponse\x12z\n" +
	"\x15ResolveTeamDefaultKey\x12/.snipvault.service.ResolveTeamDefaultKeyRequest\x1a0.snipvault.service.ResolveTeamDefaultKeyResponse\x12z\n" +
	"\x15ResolveTeamMemberKeys\x12/.snipvault.service.ResolveTeamMemberKeysRequest\x1a0.snipvault.service.ResolveTeamMemberKeysResponse\x12b\n" +
	"\rAddTeamMember\x12'.snipvault.service.AddTeamMemberRequest\x1a(.snipvault.service.AddTeamMemberResponse\x12k\n" +
	"\x10RemoveTeamMember\x12*.snipvault.service.RemoveTeamMemberRequest\x1a+.snipvault.service.RemoveTeamMemberResponse\x12b\n" +
	"\rCreateSnippet\x12'.snipvault.service.CreateSnippetRequest\x1a(.snipvault.service.CreateSnippetResponse\x12Y\n" +
	"\n" +
	"GetSnippet\x12$.snipvault.service.GetSnippetRequest\x1a%.snipvault.service.GetSnippetResponse\x12_\n" +
	"\fListSnippets\x12&.snipvault.service.ListSnippetsRequest\x1a'.snipvault.service.ListSnippetsResponseB/Z-github.com/snipvault/snipvault/internal/protob\x06proto3"

var (
	file_internal_proto_snipvault_proto_rawDescOnce sync.Once
	file_internal_proto_snipvault_proto_rawDescData []byte
)

func file_internal_proto_snipvault_proto_rawDescGZIP() []byte {
	file_internal_proto_snipvault_proto_rawDescOnce.Do(func() {
		file_internal_proto_snipvault_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_internal_proto_snipvault_proto_rawDesc), len(file_internal_proto_snipvault_proto_rawDesc)))
	})
	return file_internal_proto_snipvault_proto_rawDescData
}

var file_internal_proto_snipvault_proto_msgTypes = make([]protoimpl.MessageInfo, 33)
var file_internal_proto_snipvault_proto_goTypes = []any{
	(*DeviceKey)(nil),                        // 0: snipvault.service.DeviceKey
	(*RegisterDeviceKeyRequest)(nil),         // 1: snipvault.service.RegisterDeviceKeyRequest
	(*RegisterDeviceKeyResponse)(nil),        // 2: snipvault.service.RegisterDeviceKeyResponse
	(*ListDeviceKeysRequest)(nil),            // 3: snipvault.service.ListDeviceKeysRequest
	(*ListDeviceKeysResponse)(nil),           // 4: snipvault.service.ListDeviceKeysResponse
	(*DeleteDeviceKeyRequest)(nil),           // 5: snipvault.service.DeleteDeviceKeyRequest
	(*DeleteDeviceKeyResponse)(nil),          // 6: snipvault.service.DeleteDeviceKeyResponse
	(*ClearDeviceKeysRequest)(nil),           // 7: snipvault.service.ClearDeviceKeysRequest
	(*ClearDeviceKeysResponse)(nil),          // 8: snipvault.service.ClearDeviceKeysResponse
	(*InitiateHandshakeRequest)(nil),         // 9: snipvault.service.InitiateHandshakeRequest
	(*InitiateHandshakeResponse)(nil),        // 10: snipvault.service.InitiateHandshakeResponse
	(*AttachHandshakePayloadRequest)(nil),    // 11: snipvault.service.AttachHandshakePayloadRequest
	(*AttachHandshakePayloadResponse)(nil),   // 12: snipvault.service.AttachHandshakePayloadResponse
	(*RetrieveHandshakePayloadRequest)(nil),  // 13: snipvault.service.RetrieveHandshakePayloadRequest
	(*RetrieveHandshakePayloadResponse)(nil), // 14: snipvault.service.RetrieveHandshakePayloadResponse
	(*ResolveTeamDefaultKeyRequest)(nil),     // 15: snipvault.service.ResolveTeamDefaultKeyRequest
	(*ResolveTeamDefaultKeyResponse)(nil),    // 16: snipvault.service.ResolveTeamDefaultKeyResponse
	(*ResolveTeamMemberKeysRequest)(nil),     // 17: snipvault.service.ResolveTeamMemberKeysRequest
	(*ResolveTeamMemberKeysResponse)(nil),    // 18: snipvault.service.ResolveTeamMemberKeysResponse
	(*AddTeamMemberRequest)(nil),             // 19: snipvault.service.AddTeamMemberRequest
	(*AddTeamMemberResponse)(nil),            // 20: snipvault.service.AddTeamMemberResponse
	(*RemoveTeamMemberRequest)(nil),          // 21: snipvault.service.RemoveTeamMemberRequest
	(*RemoveTeamMemberResponse)(nil),         // 22: snipvault.service.RemoveTeamMemberResponse
	(*WrappedKey)(nil),                       // 23: snipvault.service.WrappedKey
	(*Snippet)(nil),                          // 24: snipvault.service.Snippet
	(*CreateSnippetRequest)(nil),             // 25: snipvault.service.CreateSnippetRequest
	(*CreateSnippetResponse)(nil),            // 26: snipvault.service.CreateSnippetResponse
	(*GetSnippetRequest)(nil),                // 27: snipvault.service.GetSnippetRequest
	(*GetSnippetResponse)(nil),               // 28: snipvault.service.GetSnippetResponse
	(*ListSnippetsRequest)(nil),              // 29: snipvault.service.ListSnippetsRequest
	(*ListSnippetsResponse)(nil),             // 30: snipvault.service.ListSnippetsResponse
	(*PingRequest)(nil),                      // 31: snipvault.service.PingRequest
	(*PingResponse)(nil),                     // 32: snipvault.service.PingResponse
}
var file_internal_proto_snipvault_proto_depIdxs = []int32{
	0,  // 0: snipvault.service.RegisterDeviceKeyResponse.key:type_name -> snipvault.service.DeviceKey
	0,  // 1: snipvault.service.ListDeviceKeysResponse.keys:type_name -> snipvault.service.DeviceKey
	0,  // 2: snipvault.service.ResolveTeamDefaultKeyResponse.key:type_name -> snipvault.service.DeviceKey
	0,  // 3: snipvault.service.ResolveTeamMemberKeysResponse.keys:type_name -> snipvault.service.DeviceKey
	23, // 4: snipvault.service.CreateSnippetRequest.wrapped_keys:type_name -> snipvault.service.WrappedKey
	24, // 5: snipvault.service.CreateSnippetResponse.snippet:type_name -> snipvault.service.Snippet
	24, // 6: snipvault.service.GetSnippetResponse.snippet:type_name -> snipvault.service.Snippet
	23, // 7: snipvault.service.GetSnippetResponse.wrapped_key:type_name -> snipvault.service.WrappedKey
	24, // 8: snipvault.service.ListSnippetsResponse.snippets:type_name -> snipvault.service.Snippet
	31, // 9: snipvault.service.SnipVaultService.Ping:input_type -> snipvault.service.PingRequest
	1,  // 10: snipvault.service.SnipVaultService.RegisterDeviceKey:input_type -> snipvault.service.RegisterDeviceKeyRequest
	3,  // 11: snipvault.service.SnipVaultService.ListDeviceKeys:input_type -> snipvault.service.ListDeviceKeysRequest
	5,  // 12: snipvault.service.SnipVaultService.DeleteDeviceKey:input_type -> snipvault.service.DeleteDeviceKeyRequest
	7,  // 13: snipvault.service.SnipVaultService.ClearDeviceKeys:input_type -> snipvault.service.ClearDeviceKeysRequest
	9,  // 14: snipvault.service.SnipVaultService.InitiateHandshake:input_type -> snipvault.service.InitiateHandshakeRequest
	11, // 15: snipvault.service.SnipVaultService.AttachHandshakePayload:input_type -> snipvault.service.AttachHandshakePayloadRequest
	13, // 16: snipvault.service.SnipVaultService.RetrieveHandshakePayload:input_type -> snipvault.service.RetrieveHandshakePayloadRequest
	15, // 17: snipvault.service.SnipVaultService.ResolveTeamDefaultKey:input_type -> snipvault.service.ResolveTeamDefaultKeyRequest
	17, // 18: snipvault.service.SnipVaultService.ResolveTeamMemberKeys:input_type -> snipvault.service.ResolveTeamMemberKeysRequest
	19, // 19: snipvault.service.SnipVaultService.AddTeamMember:input_type -> snipvault.service.AddTeamMemberRequest
	21, // 20: snipvault.service.SnipVaultService.RemoveTeamMember:input_type -> snipvault.service.RemoveTeamMemberRequest
	25, // 21: snipvault.service.SnipVaultService.CreateSnippet:input_type -> snipvault.service.CreateSnippetRequest
	27, // 22: snipvault.service.SnipVaultService.GetSnippet:input_type -> snipvault.service.GetSnippetRequest
	29, // 23: snipvault.service.SnipVaultService.ListSnippets:input_type -> snipvault.service.ListSnippetsRequest
	32, // 24: snipvault.service.SnipVaultService.Ping:output_type -> snipvault.service.PingResponse
	2,  // 25: snipvault.service.SnipVaultService.RegisterDeviceKey:output_type -> snipvault.service.RegisterDeviceKeyResponse
	4,  // 26: snipvault.service.SnipVaultService.ListDeviceKeys:output_type -> snipvault.service.ListDeviceKeysResponse
	6,  // 27: snipvault.service.SnipVaultService.DeleteDeviceKey:output_type -> snipvault.service.DeleteDeviceKeyResponse
	8,  // 28: snipvault.service.SnipVaultService.ClearDeviceKeys:output_type -> snipvault.service.ClearDeviceKeysResponse
	10, // 29: snipvault.service.SnipVaultService.InitiateHandshake:output_type -> snipvault.service.InitiateHandshakeResponse
	12, // 30: snipvault.service.SnipVaultService.AttachHandshakePayload:output_type -> snipvault.service.AttachHandshakePayloadResponse
	14, // 31: snipvault.service.SnipVaultService.RetrieveHandshakePayload:output_type -> snipvault.service.RetrieveHandshakePayloadResponse
	16, // 32: snipvault.service.SnipVaultService.ResolveTeamDefaultKey:output_type -> snipvault.service.ResolveTeamDefaultKeyResponse
	18, // 33: snipvault.service.SnipVaultService.ResolveTeamMemberKeys:output_type -> snipvault.service.ResolveTeamMemberKeysResponse
	20, // 34: snipvault.service.SnipVaultService.AddTeamMember:output_type -> snipvault.service.AddTeamMemberResponse
	22, // 35: snipvault.service.SnipVaultService.RemoveTeamMember:output_type -> snipvault.service.RemoveTeamMemberResponse
	26, // 36: snipvault.service.SnipVaultService.CreateSnippet:output_type -> snipvault.service.CreateSnippetResponse
	28, // 37: snipvault.service.SnipVaultService.GetSnippet:output_type -> snipvault.service.GetSnippetResponse
	30, // 38: snipvault.service.SnipVaultService.ListSnippets:output_type -> snipvault.service.ListSnippetsResponse
	24, // [24:39] is the sub-list for method output_type
	9,  // [9:24] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_internal_proto_snipvault_proto_init() }
func file_internal_proto_snipvault_proto_init() {
	if File_internal_proto_snipvault_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_internal_proto_snipvault_proto_rawDesc), len(file_internal_proto_snipvault_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   33,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_internal_proto_snipvault_proto_goTypes,
		DependencyIndexes: file_internal_proto_snipvault_proto_depIdxs,
		MessageInfos:      file_internal_proto_snipvault_proto_msgTypes,
	}.Build()
	File_internal_proto_snipvault_proto = out.File
	file_internal_proto_snipvault_proto_goTypes = nil
	file_internal_proto_snipvault_proto_depIdxs = nil
}
