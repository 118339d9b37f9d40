package cli

import "github.com/spf13/pflag"

// addWorkstreamFlag registers the shared --workstream override carried by
// every workstream-scoped command.
func addWorkstreamFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVar(target, "workstream", "", "Workstream (defaults to the selected one)")
}
