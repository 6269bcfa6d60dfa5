// Package host mounts a root view component and renders it to HTML, JSON,
// styled terminal text, or an outline. Each render pass is traced with
// OpenTelemetry.
package host
