// cmd/main.go
package main

import (
	"go-bank-ledger/app"
)

// main runs the ledger demo: it opens the configured accounts, drives a fixed
// scenario through every account rule and prints the results.
func main() {
	app.Run()
}
