// Package cli is the terminal front end of the stallkeeper client. It wires
// the configuration, local database, record store and services into an App
// and drives a read-eval-print loop whose commands correspond to the screens
// of the stallholder application.
package cli
