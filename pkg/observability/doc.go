// Package observability exposes simulation progress as Prometheus metrics.
//
// The Collector plugs into the kernel through domain.LifecycleHooks, so the
// kernel stays unaware of Prometheus; the HTTP adapter mounts the standard
// promhttp handler next to the snapshot API.
package observability
