// Package models holds the GORM table mappings of accounts, malls and units
// and their conversions to and from the property domain types.
//
// Constraints and cascades are owned by the SQL migrations. The relationship
// tags here exist so GORM can preload Account.Malls, Mall.Account,
// Mall.Units and Unit.Mall.
package models
