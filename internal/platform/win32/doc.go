// Package win32 is the Windows backend for the platform interfaces,
// built on user32 calls loaded at runtime. No cgo.
package win32
