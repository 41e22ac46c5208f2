// Package property holds the application services for accounts, malls and units.
//
// The services are thin: repositories own transactions and error translation,
// and the services forward calls unchanged so the HTTP layer depends on a
// stable API rather than on persistence types.
package property
