package middleware

import (
	"Booklets/internal/model"
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userIDKey contextKey = "user_id"

const authCookieName = "auth_token"

// Authenticator — то, что мидлвари нужно от сервисов: проверка API-ключа
// и проверка пары логин/пароль.
type Authenticator interface {
	ValidateToken(ctx context.Context, key string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

// claims — полезная нагрузка сессионного JWT в cookie.
type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// WithAuth разрешает principal запроса и кладёт его id в контекст.
// Порядок: заголовок "Authorization: token <key>", затем Basic,
// затем сессионная cookie. Неудача любого шага оставляет запрос
// анонимным — решают хендлеры.
func WithAuth(secret string, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if uid, ok := resolvePrincipal(r, secret, auth); ok {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, uid))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolvePrincipal(r *http.Request, secret string, auth Authenticator) (int64, bool) {
	header := r.Header.Get("Authorization")

	// API-токен: "token <40 hex>" (регистр схемы не важен)
	if key, ok := cutScheme(header, "token"); ok && auth != nil {
		if u, err := auth.ValidateToken(r.Context(), key); err == nil {
			return u.ID, true
		}
		return 0, false
	}

	// Basic: логин/пароль на каждый запрос
	if cred, ok := cutScheme(header, "basic"); ok && auth != nil {
		raw, err := base64.StdEncoding.DecodeString(cred)
		if err != nil {
			return 0, false
		}
		username, password, ok := strings.Cut(string(raw), ":")
		if !ok {
			return 0, false
		}
		if u, err := auth.Authenticate(r.Context(), username, password); err == nil {
			return u.ID, true
		}
		return 0, false
	}

	// Сессионная cookie с JWT
	c, err := r.Cookie(authCookieName)
	if err != nil || c.Value == "" {
		return 0, false
	}
	return parseSessionToken(c.Value, secret)
}

func cutScheme(header, scheme string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], scheme) {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func parseSessionToken(tokenString, secret string) (int64, bool) {
	cl := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, cl, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || cl.UserID == 0 {
		return 0, false
	}
	return cl.UserID, true
}

// SetLoginCookie подписывает user_id и ставит сессионную cookie.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(time.Now())},
		UserID:           userID,
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
	})
	return nil
}

// GetUserIDFromContext достаёт id аутентифицированного пользователя.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(userIDKey).(int64)
	return uid, ok
}
