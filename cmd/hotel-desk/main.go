package main

import "github.com/okuznetsov/hotel-desk/cmd/hotel-desk/cmd"

func main() {
	cmd.Execute()
}
