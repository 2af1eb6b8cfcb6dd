//go:build !unix

package main

func isatty() bool { return false }
