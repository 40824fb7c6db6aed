// Command dbvh-bench is the concrete client the core (pkg/dbvh) was
// designed to be driven by: it owns the out-of-scope collaborators spec
// §1 names (box-file loading, settings persistence, a timer) so the core
// itself stays free of them. The Prometheus adapter in
// internal/metricsexport is not wired into this command.
package main

import (
	"github.com/flier/dbvh/cmd/dbvh-bench/cmd"
)

func main() {
	cmd.Execute()
}
