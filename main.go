package main

import "github.com/julienpequegnot/feedscout/cmd"

func main() {
	cmd.Execute()
}
