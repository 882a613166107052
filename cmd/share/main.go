// Command share attaches shared response definitions to route descriptions
// stored as YAML or JSON files.
//
// Merge the shared 400 and 500 responses into a route:
//
//	share merge --shared shared.yaml --route route.yaml --codes 400,500
//	share merge -s shared.yaml -r route.yaml -c 400,default -f json
//
// List the status codes a shared file defines:
//
//	share codes --shared shared.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
