// portfolio-check runs the xengvang.com page checks outside of go test.
//
// Usage:
//
//	portfolio-check env                      # list environments
//	portfolio-check env production           # print one base URL
//	portfolio-check serve --addr :3000       # run the local fixture site
//	portfolio-check check --env production   # sweep the live site in Chrome
//	portfolio-check check --serve --static   # self-test against the fixture site
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
