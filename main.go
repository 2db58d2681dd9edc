package main

import "github.com/saadjs/dhyan-cli/cmd/dhyan"

func main() {
	dhyan.Execute()
}
