// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers
// and the CLI. Store, client, and sink ports are implemented by outbound
// adapters and called by the application layer; the trace emitter port sits
// between the agent orchestrator and the sink fan-out.
package ports
