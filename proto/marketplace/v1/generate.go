// Package marketplacev1 содержит protobuf сообщения и gRPC стабы API маркетплейса.
package marketplacev1

//go:generate protoc -I ../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative proto/marketplace/v1/order_service.proto
