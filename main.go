package main

import "github.com/kairoschain/kairos-go/cmd"

func main() {
	cmd.Execute()
}
