// Package components holds the parent/child view components: a Parent
// container that renders three labelled Child spans.
package components
