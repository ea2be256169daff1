package main

import "bulk-seeder/cmd"

func main() {
	cmd.Execute()
}
