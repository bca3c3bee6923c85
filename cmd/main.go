package main

import (
	"os"
	_ "time/tzdata" // booking timezone must resolve on hosts without zoneinfo
)

// @title Home Service Booking API
// @version 1.0
// @description Weekday evening appointment booking with an administrator back office.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
