// histo counts the values in files into histograms, summarizes them,
// and compares them as sets.  Run histo help for the subcommands.
package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	if e := newRootCmd().Execute(); e != nil {
		log.Fatalf("histo: %v", e)
	}
}
