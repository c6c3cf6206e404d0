package main

// @title Bikeshare Statistics API
// @version 1.0
// @description Descriptive statistics over bikeshare trip data for Chicago, New York City and Washington.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	Execute()
}
