package main

import "github.com/bumdes-sale/backend/cmd"

func main() {
	cmd.Execute()
}
