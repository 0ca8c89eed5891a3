// Command checker is the entries-table validator's command-line driver.
package main

import (
	"log"
	"os"

	"github.com/openpowerlifting/checker/cmd/checker/cmd"
)

func main() {
	log.SetFlags(0)
	if err := cmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
