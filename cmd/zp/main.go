package main

import "zenplan/cmd/zp/root"

func main() {
	root.Execute()
}
