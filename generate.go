// Package chatgram holds the module-level code generation directives.
// Run `go generate ./...` after editing the proto files; the generated
// packages under proto/ are not committed.
package chatgram

//go:generate protoc --go_out=. --go_opt=module=chatgram --go-grpc_out=. --go-grpc_opt=module=chatgram proto/chat.proto proto/storage.proto
