/*
Command fmx runs scripts of commands against a function with local maxima.

	fmx run script.fmx
	fmx --watch demo
	echo "set 1 2" | fmx run -

See fmx -help for a list of all commands and flags. Flags may be set from
environment variables prefixed with FMX_, also read from files .env and
.env.local.
*/
package main

import "os"

func main() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
