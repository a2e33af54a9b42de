package main

import "github.com/ArowuTest/fakelotto-backend/internal/cli"

func main() {
	cli.Execute()
}
