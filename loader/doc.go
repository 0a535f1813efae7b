// Package loader binds abi.Runtime to the Khronos OpenXR loader.
//
// The binding is built only with the openxr build tag and needs cgo, the
// OpenXR headers and libopenxr_loader:
//
//	go build -tags openxr ./...
//
// Without the tag Available reports false and New fails with
// errors.KindUnsupported, so code can fall back to the sim runtime.
//
// Every method copies its input records into C memory, calls the loader
// once and copies the outputs back. Next chains are passed through
// unchanged and must live in C memory: they are written into C records,
// and cgo forbids storing Go pointers there. Graphics bindings built with
// C.malloc satisfy this. Extension functions resolved with
// GetInstanceProcAddr are called through C trampolines, one per shape.
package loader
