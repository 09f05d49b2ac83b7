// Package proto holds the gRPC wire definition for the SnipVault service.
//
// Regenerate the Go bindings after editing snipvault.proto:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	       internal/proto/snipvault.proto
package proto
