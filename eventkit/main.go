// Command eventkit runs simulation experiments and inspects their results.
package main

import "github.com/sarchlab/eventkit/eventkit/cmd"

func main() {
	cmd.Execute()
}
