package clubsdk

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse represents the service's JSON error envelope.
// This is used internally for parsing HTTP error responses.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "not_found", "conflict")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest represents a request to create a new user account.
type RegisterRequest struct {
	// Username is the login name (3-32 chars, alphanumeric with _ or -)
	Username string `json:"username"`

	// Email is the user's email address
	Email string `json:"email"`

	// Password is the account password (8-128 chars)
	Password string `json:"password"`
}

// RegisterResponse contains the newly created user's identity.
type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// LoginRequest represents a password login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned from a successful login.
type TokenResponse struct {
	// AccessToken is the JWT used to authenticate API requests
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`
}

// ============================================================================
// User Types
// ============================================================================

// UserSummary is the public view of a user, used in member and follow listings.
type UserSummary struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// UserProfileResponse is the public profile of a single user.
type UserProfileResponse struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"` // RFC3339 timestamp
}

// ============================================================================
// Club Types
// ============================================================================

// CreateClubRequest represents a request to create a new book club.
type CreateClubRequest struct {
	// Name is the club's display name (max 100 chars)
	Name string `json:"name"`

	// Synopsis is an optional free-text description
	Synopsis string `json:"synopsis,omitempty"`
}

// ClubResponse represents a book club.
type ClubResponse struct {
	ClubID    string `json:"club_id"`
	Name      string `json:"name"`
	Synopsis  string `json:"synopsis,omitempty"`
	OwnerID   string `json:"owner_id"`
	Status    string `json:"status"`     // "active" or "archived"
	CreatedAt string `json:"created_at"` // RFC3339 timestamp
}

// MemberInfo represents a single club member and their role.
type MemberInfo struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // "owner", "admin" or "member"
	JoinedAt string `json:"joined_at"`
}

// ListMembersResponse contains a club's membership roster.
type ListMembersResponse struct {
	Members []MemberInfo `json:"members"`
}

// UserClubInfo represents one club in a user's own club listing, with
// the user's role in it.
type UserClubInfo struct {
	ClubID   string `json:"club_id"`
	Name     string `json:"name"`
	Synopsis string `json:"synopsis,omitempty"`
	Role     string `json:"role"` // "owner", "admin" or "member"
	JoinedAt string `json:"joined_at"`
}

// ListClubsResponse contains the authenticated user's clubs.
type ListClubsResponse struct {
	Clubs []UserClubInfo `json:"clubs"`
}

// ChangeRoleRequest represents a request to change a member's role.
type ChangeRoleRequest struct {
	// Role is the target role: "admin" or "member". Ownership is
	// transferred via the dedicated transfer endpoint, not here.
	Role string `json:"role"`
}

// TransferOwnershipRequest represents a request to hand club ownership
// to another existing member.
type TransferOwnershipRequest struct {
	NewOwnerID string `json:"new_owner_id"`
}

// ============================================================================
// Invite Types
// ============================================================================

// SendInviteRequest represents a request to invite a user to a club.
type SendInviteRequest struct {
	RecipientID string `json:"recipient_id"`
	ClubID      string `json:"club_id"`
}

// InviteResponse contains a minted invite and its signed token.
// The token is only returned at creation time.
type InviteResponse struct {
	InviteID    string `json:"invite_id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	ClubID      string `json:"club_id"`
	Status      string `json:"status"` // "pending", "accepted" or "declined"
	Token       string `json:"token,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"` // RFC3339 timestamp
	CreatedAt   string `json:"created_at"`
}

// InviteInfo represents an invite in a listing (never includes the token).
type InviteInfo struct {
	InviteID    string `json:"invite_id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	ClubID      string `json:"club_id"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ListInvitesResponse contains a list of invites sent or received by a user.
type ListInvitesResponse struct {
	Invites []InviteInfo `json:"invites"`
}

// RedeemInviteRequest represents a request to accept or decline an invite
// by presenting its signed token.
type RedeemInviteRequest struct {
	Token string `json:"token"`
}

// AcceptInviteResponse confirms the membership created by accepting an invite.
type AcceptInviteResponse struct {
	ClubID string `json:"club_id"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// ============================================================================
// Follow Types
// ============================================================================

// FollowListResponse contains one page of a user's followers or following.
type FollowListResponse struct {
	Users  []UserSummary `json:"users"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ============================================================================
// Book Types
// ============================================================================

// AddBookRequest represents a request to add a book to the catalogue.
type AddBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn,omitempty"`
}

// BookResponse represents a book in the catalogue.
type BookResponse struct {
	BookID    string `json:"book_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn,omitempty"`
	CreatedAt string `json:"created_at"`
}

// SetCurrentBookRequest represents a request to set a club's current book.
type SetCurrentBookRequest struct {
	BookID string `json:"book_id"`
}

// CurrentBookResponse represents one reading interval of a club.
// EndDate is empty while the interval is still open.
type CurrentBookResponse struct {
	ClubID    string `json:"club_id"`
	BookID    string `json:"book_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	StartDate string `json:"start_date"` // RFC3339 timestamp
	EndDate   string `json:"end_date,omitempty"`
}

// ReadingHistoryResponse contains a club's past and current reading
// intervals, most recent first.
type ReadingHistoryResponse struct {
	Entries []CurrentBookResponse `json:"entries"`
}

// ============================================================================
// Review Types
// ============================================================================

// AddReviewRequest represents a request to review a book.
type AddReviewRequest struct {
	// Rating is a star rating from 1 to 5
	Rating int `json:"rating"`

	// Content is the free-text body of the review
	Content string `json:"content"`
}

// ReviewResponse represents a single book review.
type ReviewResponse struct {
	ReviewID  string `json:"review_id"`
	UserID    string `json:"user_id"`
	BookID    string `json:"book_id"`
	Rating    int    `json:"rating"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"` // RFC3339 timestamp
}

// ListReviewsResponse contains a book's reviews, newest first.
type ListReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// ============================================================================
// Meeting Types
// ============================================================================

// ScheduleMeetingRequest represents a request to schedule a club meeting.
type ScheduleMeetingRequest struct {
	// MeetingDate is when the meeting takes place (RFC3339)
	MeetingDate string `json:"meeting_date"`

	// Agenda is what the meeting is about
	Agenda string `json:"agenda"`
}

// MeetingResponse represents a scheduled club meeting.
type MeetingResponse struct {
	MeetingID   string `json:"meeting_id"`
	ClubID      string `json:"club_id"`
	CreatorID   string `json:"creator_id"`
	MeetingDate string `json:"meeting_date"` // RFC3339 timestamp
	Agenda      string `json:"agenda"`
	CreatedAt   string `json:"created_at"`
}

// ListMeetingsResponse contains a club's meetings, soonest first.
type ListMeetingsResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes the Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the token signing capability status
	Signer string `json:"signer"`
}
