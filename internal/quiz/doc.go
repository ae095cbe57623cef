// Package quiz implements the arithmetic quiz engine. It collects validated
// settings, generates random questions within a difficulty-determined range,
// checks answers against a running tally, and renders the final report.
//
// Number parsing is kept separate from I/O so that the retry loops of the
// Engine only deal with reading lines and printing prompts.
package quiz
