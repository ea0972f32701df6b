// lexis is a data-driven source analysis tool: every supported language
// is a declarative profile interpreted at runtime, producing classified
// tokens and structural symbols as JSON.
package main

import (
	"os"

	"github.com/corey/lexis/cmd/lexis/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
