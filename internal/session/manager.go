package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/everbuy/internal/cart"
	"github.com/everbuy/internal/logger"
	"github.com/everbuy/internal/metrics"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultTTL           = 7 * 24 * time.Hour
	defaultIdleTimeout   = 2 * time.Hour
	defaultSweepInterval = time.Minute
)

var (
	// ErrTokenInvalid 会话令牌无效或已过期
	ErrTokenInvalid = errors.New("session token invalid")
	// ErrSecretMissing 未配置签名密钥
	ErrSecretMissing = errors.New("session secret missing")
)

// Options 会话管理配置
type Options struct {
	Secret        string
	TTL           time.Duration
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

// Claims 会话令牌声明
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager 内存会话注册表
type Manager struct {
	opts     Options
	secret   []byte
	now      func() time.Time
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager 创建会话管理器
func NewManager(opts Options) (*Manager, error) {
	secret := strings.TrimSpace(opts.Secret)
	if secret == "" {
		return nil, ErrSecretMissing
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = defaultIdleTimeout
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = defaultSweepInterval
	}
	return &Manager{
		opts:     opts,
		secret:   []byte(secret),
		now:      time.Now,
		sessions: make(map[string]*Session),
	}, nil
}

// TTL 令牌有效期
func (m *Manager) TTL() time.Duration {
	return m.opts.TTL
}

// Issue 创建新会话并签发令牌
func (m *Manager) Issue() (*Session, string, time.Time, error) {
	now := m.now()
	id := uuid.NewString()
	token, expiresAt, err := m.sign(id, now)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	sess := m.attach(id, now)
	logger.Debugw("session_issued", "session_id", id, "expires_at", expiresAt)
	return sess, token, expiresAt, nil
}

// Resolve 校验令牌并返回会话；会话已被回收时按原 id 重建空会话
func (m *Manager) Resolve(token string) (*Session, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, err
	}
	now := m.now()
	m.mu.RLock()
	sess, ok := m.sessions[claims.SessionID]
	m.mu.RUnlock()
	if ok {
		sess.touch(now)
		return sess, nil
	}
	logger.Debugw("session_restored", "session_id", claims.SessionID)
	return m.attach(claims.SessionID, now), nil
}

// Get 按 id 查找会话
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Len 当前会话数量
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep 回收空闲超时的会话，返回回收数量
func (m *Manager) Sweep(now time.Time) int {
	cutoff := now.Add(-m.opts.IdleTimeout)
	var evicted []*Session

	m.mu.Lock()
	for id, sess := range m.sessions {
		if sess.LastSeen().Before(cutoff) {
			evicted = append(evicted, sess)
			delete(m.sessions, id)
		}
	}
	remaining := len(m.sessions)
	m.mu.Unlock()

	for _, sess := range evicted {
		sess.close()
	}
	metrics.ActiveSessions.Set(float64(remaining))
	if len(evicted) > 0 {
		logger.Infow("session_swept", "evicted", len(evicted), "remaining", remaining)
	}
	return len(evicted)
}

func (m *Manager) attach(id string, now time.Time) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		existing.touch(now)
		return existing
	}
	sess := newSession(id, now)
	sess.unsubscribe = sess.Cart.Subscribe(func(state cart.State) {
		logger.Debugw("cart_changed",
			"session_id", id,
			"version", state.Version,
			"item_count", state.ItemCount,
			"total", state.Total.String(),
		)
	})
	m.sessions[id] = sess
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	return sess
}

func (m *Manager) sign(id string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(m.opts.TTL)
	claims := Claims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

func (m *Manager) parse(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenInvalid
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid || strings.TrimSpace(claims.SessionID) == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
