// Package view provides a declarative view tree for Go.
//
// Users build trees of Elements with New and functional options, and
// package them as Components whose Render method returns a fresh tree on
// every call. Trees can be compared structurally, walked, and serialized
// to HTML or JSON.
package view
