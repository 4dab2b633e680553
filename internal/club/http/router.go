package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/service"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/pkg/httpx"
	"github.com/chapterhouse/pageturn/pkg/jwtx"
	"github.com/chapterhouse/pageturn/pkg/slogx"

	_ "github.com/chapterhouse/pageturn/api/club" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        *jwtx.Codec
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	UserService       *service.UserService
	SocialService     *service.SocialService
	MembershipService *service.MembershipService
	InviteService     *service.InviteService
	ClubService       *service.ClubService
	BookService       *service.BookService
	ReviewService     *service.ReviewService
	MeetingService    *service.MeetingService
}

func NewRouter(
	codec *jwtx.Codec,
	issuer, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerFollows()
	r.registerClubs()
	r.registerInvites()
	r.registerBooks()
	r.registerReviews()
	r.registerMeetings()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			PageTurn API
//	@version		0.1.0
//	@description	Social reading-club service: book clubs with owner/admin/member roles,
//	@description	signed invite tokens, an asymmetric follow graph and per-club reading history.
//	@description
//	@description				Access and invite tokens are Ed25519-signed JWTs (EdDSA).
//
//	@contact.name				Chapterhouse Team
//	@contact.url				https://github.com/chapterhouse/pageturn
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{UserService: r.UserService}
	loginHandler := &LoginHandler{UserService: r.UserService}

	// POST /auth/register - strict rate limit by IP (public account creation)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		UserService:   r.UserService,
		SocialService: r.SocialService,
	}

	// DELETE /users/me - moderate rate limit by user (account deactivation)
	securedDeactivate := httpx.Chain(http.HandlerFunc(h.HandleDeactivate),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// Follow listings are read-heavy - lenient rate limit by user
	securedFollowers := httpx.Chain(http.HandlerFunc(h.HandleFollowers),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedFollowing := httpx.Chain(http.HandlerFunc(h.HandleFollowing),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	// GET /users/{userID} - public profile, lenient rate limit by user
	securedProfile := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("DELETE /v1/users/me", securedDeactivate)
	r.Mux.Handle("GET /v1/users/{userID}", securedProfile)
	r.Mux.Handle("GET /v1/users/{userID}/followers", securedFollowers)
	r.Mux.Handle("GET /v1/users/{userID}/following", securedFollowing)
}

func (r *Router) registerFollows() {
	h := &FollowsHandler{SocialService: r.SocialService}

	// PUT /follows/{userID} - moderate rate limit by user (graph writes)
	securedFollow := httpx.Chain(http.HandlerFunc(h.HandleFollow),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// DELETE /follows/{userID} - moderate rate limit by user
	securedUnfollow := httpx.Chain(http.HandlerFunc(h.HandleUnfollow),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("PUT /v1/follows/{userID}", securedFollow)
	r.Mux.Handle("DELETE /v1/follows/{userID}", securedUnfollow)
}

func (r *Router) registerClubs() {
	clubs := &ClubsHandler{MembershipService: r.MembershipService}
	members := &MembersHandler{MembershipService: r.MembershipService}
	reading := &CurrentBookHandler{ClubService: r.ClubService}

	// Club lifecycle - moderate rate limit by user
	securedCreate := httpx.Chain(http.HandlerFunc(clubs.HandleCreate),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedGet := httpx.Chain(http.HandlerFunc(clubs.HandleGet),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedDelete := httpx.Chain(http.HandlerFunc(clubs.HandleDelete),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedTransfer := httpx.Chain(http.HandlerFunc(clubs.HandleTransfer),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedArchive := httpx.Chain(http.HandlerFunc(clubs.HandleArchive),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedMine := httpx.Chain(http.HandlerFunc(clubs.HandleMine),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("POST /v1/clubs", securedCreate)
	r.Mux.Handle("GET /v1/clubs/{clubID}", securedGet)
	r.Mux.Handle("DELETE /v1/clubs/{clubID}", securedDelete)
	r.Mux.Handle("POST /v1/clubs/{clubID}/transfer", securedTransfer)
	r.Mux.Handle("POST /v1/clubs/{clubID}/archive", securedArchive)
	r.Mux.Handle("GET /v1/users/me/clubs", securedMine)

	// Membership roster and management
	securedList := httpx.Chain(http.HandlerFunc(members.HandleList),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedChangeRole := httpx.Chain(http.HandlerFunc(members.HandleChangeRole),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedRemove := httpx.Chain(http.HandlerFunc(members.HandleRemove),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/clubs/{clubID}/members", securedList)
	r.Mux.Handle("PATCH /v1/clubs/{clubID}/members/{userID}", securedChangeRole)
	r.Mux.Handle("DELETE /v1/clubs/{clubID}/members/{userID}", securedRemove)

	// Current book and reading history
	securedSetBook := httpx.Chain(http.HandlerFunc(reading.HandleSet),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedCurrent := httpx.Chain(http.HandlerFunc(reading.HandleCurrent),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedHistory := httpx.Chain(http.HandlerFunc(reading.HandleHistory),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("PUT /v1/clubs/{clubID}/current-book", securedSetBook)
	r.Mux.Handle("GET /v1/clubs/{clubID}/current-book", securedCurrent)
	r.Mux.Handle("GET /v1/clubs/{clubID}/history", securedHistory)
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}

	// POST /invites - moderate rate limit by user
	securedSend := httpx.Chain(http.HandlerFunc(h.HandleSend),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// Accept/decline carry signed tokens - strict rate limit to slow down
	// anyone probing for valid ones.
	securedAccept := httpx.Chain(http.HandlerFunc(h.HandleAccept),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.StrictLimit),
	)
	securedDecline := httpx.Chain(http.HandlerFunc(h.HandleDecline),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.StrictLimit),
	)

	securedSent := httpx.Chain(http.HandlerFunc(h.HandleListSent),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedReceived := httpx.Chain(http.HandlerFunc(h.HandleListReceived),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("POST /v1/invites", securedSend)
	r.Mux.Handle("POST /v1/invites/accept", securedAccept)
	r.Mux.Handle("POST /v1/invites/decline", securedDecline)
	r.Mux.Handle("GET /v1/invites/sent", securedSent)
	r.Mux.Handle("GET /v1/invites/received", securedReceived)
}

func (r *Router) registerBooks() {
	h := &BooksHandler{BookService: r.BookService}

	securedAdd := httpx.Chain(http.HandlerFunc(h.HandleAdd),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("POST /v1/books", securedAdd)
	r.Mux.Handle("GET /v1/books/{bookID}", securedGet)
}

func (r *Router) registerReviews() {
	h := &ReviewsHandler{ReviewService: r.ReviewService}

	securedAdd := httpx.Chain(http.HandlerFunc(h.HandleAdd),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedDelete := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /v1/books/{bookID}/reviews", securedAdd)
	r.Mux.Handle("GET /v1/books/{bookID}/reviews", securedList)
	r.Mux.Handle("DELETE /v1/reviews/{reviewID}", securedDelete)
}

func (r *Router) registerMeetings() {
	h := &MeetingsHandler{MeetingService: r.MeetingService}

	securedSchedule := httpx.Chain(http.HandlerFunc(h.HandleSchedule),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedCancel := httpx.Chain(http.HandlerFunc(h.HandleCancel),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /v1/clubs/{clubID}/meetings", securedSchedule)
	r.Mux.Handle("GET /v1/clubs/{clubID}/meetings", securedList)
	r.Mux.Handle("DELETE /v1/meetings/{meetingID}", securedCancel)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.codec),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
