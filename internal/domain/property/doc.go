// Package property models the ownership hierarchy served by the API:
// an Account owns Malls and a Mall owns Units.
//
// Names are globally unique per entity type and every child references its
// parent. Both rules are enforced by the relational store; repositories
// translate the store's constraint failures into shared.DomainError values.
package property
