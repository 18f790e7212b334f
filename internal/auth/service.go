package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lvalenti/liftlog/internal/fit"
	"github.com/lvalenti/liftlog/internal/remote"
	"github.com/lvalenti/liftlog/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "liftlog-session||"
	tokensSetKey     = "liftlog-sessions"

	// SessionCheckTimeout bounds the live-session lookup; on expiry the
	// session is treated as absent, never as indeterminate.
	SessionCheckTimeout = 5 * time.Second
)

// AdminEmails is the fixed allow-list gating writes to the shared exercise
// catalog. Deliberately hard-coded, not per-deployment config.
var AdminEmails = []string{
	"admin@liftlog.fit",
}

var (
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrEmailTaken       = errors.New("email already registered")
)

func IsAdminEmail(email string) bool {
	for _, adminEmail := range AdminEmails {
		if strings.EqualFold(email, adminEmail) {
			return true
		}
	}
	return false
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=auth

type profilesRepo interface {
	GetProfile(ctx context.Context, id string) (*remote.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*remote.Profile, error)
	InsertProfile(ctx context.Context, profile remote.Profile) error
}

type identityCache interface {
	CurrentUser(ctx context.Context) *fit.UserIdentity
	SetCurrentUser(ctx context.Context, user *fit.UserIdentity)
	RemoveCurrentUser(ctx context.Context)
}

type fullSyncer interface {
	FullSync(ctx context.Context) error
}

// Service resolves user identities from session tokens and owns the
// login/logout lifecycle. Sessions live in redis; the locally cached
// identity is only a display convenience during a live session and is
// purged whenever no live session backs it.
type Service struct {
	profiles    profilesRepo
	cache       identityCache
	syncer      fullSyncer
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)

	subscribers *sessionSubscribers
}

func NewService(
	profiles profilesRepo,
	cache identityCache,
	syncer fullSyncer,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		profiles:       profiles,
		cache:          cache,
		syncer:         syncer,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		subscribers:    newSessionSubscribers(),
	}
}

// Subscribe registers a callback invoked on every session change, with the
// new identity or nil on sign-out. The returned func releases the
// subscription and must be called on the owner's teardown path.
func (as *Service) Subscribe(fn func(user *fit.UserIdentity)) (unsubscribe func()) {
	return as.subscribers.add(fn)
}

// Login exchanges credentials for a session token, resolves and caches the
// identity, and triggers a full sync. A failing sync is logged and does not
// fail the login.
func (as *Service) Login(ctx context.Context, email, password string, now time.Time) (string, *fit.UserIdentity, error) {
	profile, err := as.profiles.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, remote.ErrProfileNotFound) {
			return "", nil, ErrWrongCredentials
		}
		return "", nil, fmt.Errorf("get profile: %w", err)
	}

	if !pkg.CheckPasswordHash(password, profile.PasswordHash) {
		return "", nil, ErrWrongCredentials
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	sessionVal := sessionValue(profile.ID, now)
	if err := as.redisClient.Set(ctx, sessionKey, sessionVal, 0).Err(); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}
	// add token to the list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", nil, fmt.Errorf("register session token: %w", err)
	}

	identity := identityFromProfile(profile)
	as.cache.SetCurrentUser(ctx, identity)
	as.subscribers.notify(identity)

	if as.syncer != nil {
		if err := as.syncer.FullSync(ctx); err != nil {
			log.Errorf("login: full sync (non-fatal): %s", err)
		}
	}

	return token, identity, nil
}

// ResolveSession turns a session token into an identity. Without a live
// session backing the token - absent, expired, redis unreachable, lookup
// timed out - the user is signed out: the locally cached identity is purged
// and (nil, nil) is returned. A cached identity alone never authenticates.
func (as *Service) ResolveSession(ctx context.Context, token string) (*fit.UserIdentity, error) {
	ctx, cancel := context.WithTimeout(ctx, SessionCheckTimeout)
	defer cancel()

	if token == "" {
		as.purgeCachedIdentity(ctx)
		return nil, nil
	}

	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("resolve session: %s", err)
		}
		as.purgeCachedIdentity(ctx)
		return nil, nil
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		log.Errorf("resolve session: %s", err)
		as.purgeCachedIdentity(ctx)
		return nil, nil
	}

	if time.Since(createdAt) > as.ttl {
		if err := as.clearSession(ctx, token); err != nil {
			log.Errorf("resolve session: clear expired session: %s", err)
		}
		as.purgeCachedIdentity(ctx)
		return nil, nil
	}

	profile, err := as.profiles.GetProfile(ctx, userID)
	if err != nil {
		log.Errorf("resolve session: get profile %s: %s", userID, err)
		as.purgeCachedIdentity(ctx)
		return nil, nil
	}

	identity := identityFromProfile(profile)
	as.cache.SetCurrentUser(ctx, identity)
	return identity, nil
}

// Logout invalidates the session and purges the cached identity
// unconditionally.
func (as *Service) Logout(ctx context.Context, token string) error {
	err := as.clearSession(ctx, token)

	as.cache.RemoveCurrentUser(ctx)
	as.subscribers.notify(nil)

	return err
}

// Register creates a new profile with a hashed password. The username is
// optional, identity resolution falls back to the email's local part.
func (as *Service) Register(ctx context.Context, email, password, username string) (*remote.Profile, error) {
	if _, err := as.profiles.GetProfileByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, remote.ErrProfileNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := remote.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if err := as.profiles.InsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	return &profile, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		cmd := as.redisClient.Get(ctx, sessionKey)
		if err := cmd.Err(); err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		_, createdAt, err := parseSessionValue(cmd.Val())
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(createdAt) > as.ttl {
			if err := as.clearSession(ctx, token); err != nil {
				log.Errorf("auth service, clean token %s: %s", token, err)
			}
		}
	}
}

func (as *Service) clearSession(ctx context.Context, token string) error {
	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return fmt.Errorf("unregister session token: %w", err)
	}
	return nil
}

func (as *Service) purgeCachedIdentity(ctx context.Context) {
	if cached := as.cache.CurrentUser(ctx); cached != nil {
		log.Debugf("purging cached identity %s, no live session", cached.ID)
		as.cache.RemoveCurrentUser(ctx)
	}
}

func identityFromProfile(profile *remote.Profile) *fit.UserIdentity {
	username := profile.Username
	if username == "" {
		username = strings.SplitN(profile.Email, "@", 2)[0]
	}
	return &fit.UserIdentity{
		ID:       profile.ID,
		Email:    profile.Email,
		Username: username,
		IsAdmin:  IsAdminEmail(profile.Email),
	}
}

func sessionValue(userID string, createdAt time.Time) string {
	return userID + "||" + strconv.FormatInt(createdAt.Unix(), 10)
}

func parseSessionValue(value string) (userID string, createdAt time.Time, err error) {
	parts := strings.SplitN(value, "||", 2)
	if len(parts) != 2 {
		return "", time.Time{}, fmt.Errorf("malformed session value: %q", value)
	}
	createdAtUnix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("malformed session timestamp: %q", parts[1])
	}
	return parts[0], time.Unix(createdAtUnix, 0), nil
}
