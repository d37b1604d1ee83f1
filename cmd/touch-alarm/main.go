// Command touch-alarm runs the capacitive touch alarm appliance.
package main

import "github.com/oshokin/touch-alarm/cmd/touch-alarm/cmd"

func main() {
	cmd.Execute()
}
