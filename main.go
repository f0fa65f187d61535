package main

import "github.com/callmegreg/azdo-codeql-enable/cmd"

func main() {
	cmd.Execute()
}
