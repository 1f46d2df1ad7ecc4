// Package models defines the synthetic population entities shared by the
// generators, the matcher, persistence and export.
//
// # Entities
//
//   - Account: a registered customer with purchase history, segment and
//     loyalty tier.
//   - Session: a website visit, possibly carrying an account's identity.
//
// # Country Catalog
//
// Cities, timezones, phone prefixes and map centres for each supported
// country live in one immutable table, read through Profile, so accounts and
// sessions always agree on what a country looks like.
//
// # Classification
//
// ClassifySegment evaluates the segment rules in a fixed order (VIP, Loyal,
// At Risk, New, Regular) and CustomerSegment.Tiers lists the loyalty tiers each
// segment may be drawn from.
package models
