// Club Portal - attendance and project tracking for a student club.
package main

import (
	"github.com/manav03panchal/clubportal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Die(err)
	}
}
