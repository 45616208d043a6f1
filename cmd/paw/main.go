package main

import "pawmate/cmd/paw/root"

func main() {
	root.Execute()
}
