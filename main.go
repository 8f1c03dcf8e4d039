package main

import "github.com/Tahashy/Panel-Administrativo/cmd"

func main() {
	cmd.Execute()
}
