// Package app contains the application lifecycle of the quiz. It defines the
// App struct, its configuration and the Run method that loads an optional
// preset and drives the quiz engine, decoupled from the CLI entrypoint.
package app
