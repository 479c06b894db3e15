package models

import "time"

// RoundTripLayout renders instants with seven fractional digits, e.g. 2026-10-19T08:15:30.1234567Z.
const RoundTripLayout = "2006-01-02T15:04:05.0000000Z07:00"

// Welcome is the body of the root endpoint.
type Welcome struct {
	Message     string    `json:"Message" example:"Hello World from Azure Identities API!"`
	Timestamp   time.Time `json:"Timestamp"`
	Environment string    `json:"Environment" example:"Production"`
	Version     string    `json:"Version" example:"1.0.0"`
}

// Health is the body of the liveness endpoint.
type Health struct {
	Status      string    `json:"Status" example:"Healthy"`
	Service     string    `json:"Service" example:"AzureIdentitiesApi"`
	Timestamp   time.Time `json:"Timestamp"`
	Environment string    `json:"Environment" example:"Production"`
	// Uptime is the request time in round-trip format, not the process uptime.
	Uptime string `json:"Uptime" example:"2026-10-19T08:15:30.1234567Z"`
}
