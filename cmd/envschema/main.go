// Package main is the entry point for the envschema CLI.
package main

func main() {
	Execute()
}
