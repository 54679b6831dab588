//go:build tools

// Пакет tools фиксирует версии генераторов protoc в go.mod.
// Стабы API пересобираются командой go generate ./proto/...
package tools

import (
	_ "google.golang.org/grpc/cmd/protoc-gen-go-grpc"
	_ "google.golang.org/protobuf/cmd/protoc-gen-go"
)
