// SPDX-License-Identifier: MIT
// Command dlcctl checks, reformats and fingerprints DLC contract documents
// before they are handed to an offer flow.
//
//	dlcctl validate terms.json more.yaml   # schema + contract rules, one line per file
//	dlcctl fmt terms.yaml > terms.json     # canonical indented JSON
//	dlcctl digest terms.json               # sha256 the counterparty should match
package main

import "log"

func main() {
	log.SetFlags(0)
	log.SetPrefix("dlcctl: ")

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
