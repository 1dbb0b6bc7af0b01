package main

import "inventory-auditor/cmd"

func main() {
	cmd.Execute()
}
