package main

import "github.com/dealerdesk/dealerdesk/cmd"

func main() {
	cmd.Execute()
}
