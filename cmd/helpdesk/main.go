package main

import "github.com/utpal5/Ticketingsystem/internal/cli"

func main() {
	cli.Execute()
}
