// Package proto holds the service definitions. Run go generate to refresh
// the generated code under internal/adapter/grpc/tradedesk/v1.
package proto

//go:generate protoc --proto_path=. --go_out=../internal/adapter/grpc --go_opt=paths=import --go_opt=module=github.com/ruimtorres/tradedesk-backend/internal/adapter/grpc --go-grpc_out=../internal/adapter/grpc --go-grpc_opt=module=github.com/ruimtorres/tradedesk-backend/internal/adapter/grpc tradedesk/v1/tradedesk.proto
