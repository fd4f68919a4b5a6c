package main

import "github.com/Jose-Trivino/make-poly-from-image/cmd/poly/cmd"

func main() {
	cmd.Execute()
}
