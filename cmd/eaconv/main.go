// Command eaconv decodes and checks elastic agent plugin message bodies.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
