package main

import "github.com/airy1236/obj2tet-toolchain/cmd"

func main() {
	cmd.Execute()
}
