// Command roadauxctl inspects and round-trips restriction and traffic
// section blobs from the shell, in the vein of the teacher's examples/
// programs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
