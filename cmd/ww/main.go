package main

import "workwise/cmd/ww/root"

func main() {
	root.Execute()
}
