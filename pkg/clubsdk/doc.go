// Package clubsdk provides a Go client for the PageTurn club service API.
//
// The package doubles as the canonical home of the API's request/response
// types and its JSON error envelope, so the server handlers and any Go
// consumers share one definition of the wire format.
//
// Basic usage:
//
//	client := clubsdk.NewSDKClient("http://localhost:8080")
//	session, err := client.Login(ctx, "alice", "s3cret")
//	if err != nil { ... }
//	club, err := session.CreateClub(ctx, clubsdk.CreateClubRequest{Name: "Sci-Fi Sundays"})
package clubsdk
