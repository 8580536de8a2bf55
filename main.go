// glean-events records Glean server events as mozlog structured log lines.
package main

import "github.com/gleanserver/glean-events/cmd"

func main() {
	cmd.Run()
}
