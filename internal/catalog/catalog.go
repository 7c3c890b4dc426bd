// Package catalog holds the resource directory shipped with the binary.
//
// The blob is the same comma-delimited table the store builder accepts from
// any other source (see core.Build). It is embedded so the server and CLI can
// start without any files on disk; DATA_PATH or --data override it.
package catalog

import _ "embed"

//go:embed resources.csv
var resources string

// Raw returns the embedded resource table, header row first.
func Raw() string {
	return resources
}
