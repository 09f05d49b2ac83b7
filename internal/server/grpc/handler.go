package grpc

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/keys"
	pb "github.com/snipvault/snipvault/internal/proto"
	"github.com/snipvault/snipvault/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError maps the service error taxonomy onto gRPC status codes.
// Unmatched errors collapse to Internal without leaking their message.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorExpired):
		return status.Error(codes.FailedPrecondition, "expired")
	case errors.Is(err, common.ErrorAlreadyConsumed):
		return status.Error(codes.FailedPrecondition, "already consumed")
	case errors.Is(err, common.ErrorInvalidState):
		return status.Error(codes.FailedPrecondition, "invalid state")
	case errors.Is(err, common.ErrorInvalidKeyMaterial):
		return status.Error(codes.InvalidArgument, "invalid key material")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, "unauthorized")
	case errors.Is(err, common.ErrorTransientStore):
		return status.Error(codes.Unavailable, "temporarily unavailable")
	}
	return status.Error(codes.Internal, "internal error")
}

func deviceKeyToPB(k *models.DeviceKey) (*pb.DeviceKey, error) {
	encJWK, err := keys.MarshalJWK(k.Algorithm, k.EncryptionPubKey)
	if err != nil {
		return nil, err
	}
	encJSON, err := json.Marshal(encJWK)
	if err != nil {
		return nil, err
	}

	var signJSON []byte
	if len(k.SigningPubKey) > 0 {
		signJWK, err := keys.MarshalSigningJWK(k.SigningPubKey)
		if err != nil {
			return nil, err
		}
		signJSON, err = json.Marshal(signJWK)
		if err != nil {
			return nil, err
		}
	}

	return &pb.DeviceKey{
		UserId:           k.UserID,
		DeviceId:         k.DeviceID,
		Algorithm:        string(k.Algorithm),
		EncryptionKeyJwk: encJSON,
		SigningKeyJwk:    signJSON,
		IsDefault:        k.IsDefault,
	}, nil
}

func deviceKeysToPB(ks []*models.DeviceKey) ([]*pb.DeviceKey, error) {
	out := make([]*pb.DeviceKey, 0, len(ks))
	for _, k := range ks {
		p, err := deviceKeyToPB(k)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func snippetToPB(s *models.Snippet) *pb.Snippet {
	return &pb.Snippet{
		Id:              s.ID,
		OwnerId:         s.OwnerID,
		TeamId:          s.TeamID,
		TitleCiphertext: s.TitleCiphertext,
		TitleNonce:      s.TitleNonce,
		Algorithm:       s.Algorithm,
		CreatedAtUnix:   s.CreatedAt.Unix(),
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterDeviceKey(ctx context.Context, req *pb.RegisterDeviceKeyRequest) (*pb.RegisterDeviceKeyResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	encJWK, err := keys.ParseJWK(req.EncryptionKeyJwk)
	if err != nil {
		return nil, statusFromError(err)
	}

	var signJWK *keys.PublicKeyJWK
	if len(req.SigningKeyJwk) > 0 {
		j, err := keys.ParseJWK(req.SigningKeyJwk)
		if err != nil {
			return nil, statusFromError(err)
		}
		signJWK = &j
	}

	key, err := s.deviceKeys.Register(ctx, userID, req.DeviceId, keys.Algorithm(req.Algorithm), encJWK, signJWK, req.IsDefault)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Device key registered", "device_id", req.DeviceId)

	resp, err := deviceKeyToPB(key)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.RegisterDeviceKeyResponse{Key: resp}, nil
}

func (s *GRPCServer) ListDeviceKeys(ctx context.Context, req *pb.ListDeviceKeysRequest) (*pb.ListDeviceKeysResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	ks, err := s.deviceKeys.List(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	out, err := deviceKeysToPB(ks)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.ListDeviceKeysResponse{Keys: out}, nil
}

func (s *GRPCServer) DeleteDeviceKey(ctx context.Context, req *pb.DeleteDeviceKeyRequest) (*pb.DeleteDeviceKeyResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.deviceKeys.Delete(ctx, userID, req.DeviceId); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}
	return &pb.DeleteDeviceKeyResponse{}, nil
}

func (s *GRPCServer) ClearDeviceKeys(ctx context.Context, req *pb.ClearDeviceKeysRequest) (*pb.ClearDeviceKeysResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.deviceKeys.ClearForUser(ctx, userID); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}
	return &pb.ClearDeviceKeysResponse{}, nil
}

func (s *GRPCServer) InitiateHandshake(ctx context.Context, req *pb.InitiateHandshakeRequest) (*pb.InitiateHandshakeResponse, error) {

	clientJWK, err := keys.ParseJWK(req.ClientKeyJwk)
	if err != nil {
		return nil, statusFromError(err)
	}

	id, serverJWK, err := s.handshakes.Initiate(ctx, clientJWK)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	serverJSON, err := json.Marshal(serverJWK)
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Handshake initiated", "handshake_id", id)
	return &pb.InitiateHandshakeResponse{HandshakeId: id, ServerKeyJwk: serverJSON}, nil
}

func (s *GRPCServer) AttachHandshakePayload(ctx context.Context, req *pb.AttachHandshakePayloadRequest) (*pb.AttachHandshakePayloadResponse, error) {

	if err := s.handshakes.AttachPayload(ctx, req.HandshakeId, req.Payload, req.Iv); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}
	return &pb.AttachHandshakePayloadResponse{}, nil
}

func (s *GRPCServer) RetrieveHandshakePayload(ctx context.Context, req *pb.RetrieveHandshakePayloadRequest) (*pb.RetrieveHandshakePayloadResponse, error) {

	payload, iv, err := s.handshakes.Retrieve(ctx, req.HandshakeId)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.RetrieveHandshakePayloadResponse{Payload: payload, Iv: iv}, nil
}

func (s *GRPCServer) ResolveTeamDefaultKey(ctx context.Context, req *pb.ResolveTeamDefaultKeyRequest) (*pb.ResolveTeamDefaultKeyResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	key, err := s.teams.ResolveDefault(ctx, req.TeamId, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp, err := deviceKeyToPB(key)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.ResolveTeamDefaultKeyResponse{Key: resp}, nil
}

func (s *GRPCServer) ResolveTeamMemberKeys(ctx context.Context, req *pb.ResolveTeamMemberKeysRequest) (*pb.ResolveTeamMemberKeysResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	ks, err := s.teams.ResolveAllMembers(ctx, req.TeamId, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	out, err := deviceKeysToPB(ks)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.ResolveTeamMemberKeysResponse{Keys: out}, nil
}

func (s *GRPCServer) AddTeamMember(ctx context.Context, req *pb.AddTeamMemberRequest) (*pb.AddTeamMemberResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.teams.AddMember(ctx, req.TeamId, userID, req.UserId, req.Role); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.AddTeamMemberResponse{}, nil
}

func (s *GRPCServer) RemoveTeamMember(ctx context.Context, req *pb.RemoveTeamMemberRequest) (*pb.RemoveTeamMemberResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.teams.RemoveMember(ctx, req.TeamId, userID, req.UserId); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.RemoveTeamMemberResponse{}, nil
}

func (s *GRPCServer) CreateSnippet(ctx context.Context, req *pb.CreateSnippetRequest) (*pb.CreateSnippetResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	snippet := &models.Snippet{
		OwnerID:         userID,
		TeamID:          req.TeamId,
		TitleCiphertext: req.TitleCiphertext,
		TitleNonce:      req.TitleNonce,
		Algorithm:       req.Algorithm,
	}

	wrapped := make([]*models.WrappedKey, 0, len(req.WrappedKeys))
	for _, wk := range req.WrappedKeys {
		wrapped = append(wrapped, &models.WrappedKey{
			UserID:   wk.UserId,
			DeviceID: wk.DeviceId,
			Key:      wk.Key,
		})
	}

	created, uploadURL, err := s.snippets.Create(ctx, snippet, wrapped)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Snippet created", "snippet_id", created.ID)
	return &pb.CreateSnippetResponse{Snippet: snippetToPB(created), UploadUrl: uploadURL}, nil
}

func (s *GRPCServer) GetSnippet(ctx context.Context, req *pb.GetSnippetRequest) (*pb.GetSnippetResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	snippet, wrapped, downloadURL, err := s.snippets.Get(ctx, req.Id, userID, req.DeviceId)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.GetSnippetResponse{Snippet: snippetToPB(snippet), DownloadUrl: downloadURL}
	if wrapped != nil {
		resp.WrappedKey = &pb.WrappedKey{
			UserId:   wrapped.UserID,
			DeviceId: wrapped.DeviceID,
			Key:      wrapped.Key,
		}
	}
	return resp, nil
}

func (s *GRPCServer) ListSnippets(ctx context.Context, req *pb.ListSnippetsRequest) (*pb.ListSnippetsResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	sns, err := s.snippets.List(ctx, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	out := make([]*pb.Snippet, 0, len(sns))
	for _, sn := range sns {
		out = append(out, snippetToPB(sn))
	}
	return &pb.ListSnippetsResponse{Snippets: out}, nil
}
