// Package service contains the business logic for the club platform:
// accounts, the follow graph, club membership, invites and the
// current-book aggregate. Services hold a store.Store and keep all
// multi-step mutations inside WithTx so database constraints stay the
// single authority on uniqueness.
package service

import "time"

func nowUTC() time.Time { return time.Now().UTC() }
