package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type cookieClaims struct {
	Data
	jwt.RegisteredClaims
}

// CookieStore 会话整体签名（HS256）后放在 cookie 中
type CookieStore struct {
	Options
	secret []byte
}

// Options cookie 属性
type Options struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

func (o Options) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     o.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewCookieStore 创建签名 cookie 会话存储
func NewCookieStore(secret []byte, opts Options) (*CookieStore, error) {
	if len(secret) == 0 {
		return nil, errors.New("session secret is empty")
	}
	return &CookieStore{Options: opts, secret: secret}, nil
}

func (s *CookieStore) Load(r *http.Request) (*Data, error) {
	ck, err := r.Cookie(s.CookieName)
	if err != nil || ck.Value == "" {
		return &Data{}, nil
	}
	var claims cookieClaims
	_, err = jwt.ParseWithClaims(ck.Value, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		// 过期或被篡改，按新会话处理
		return &Data{}, nil
	}
	return &claims.Data, nil
}

func (s *CookieStore) Save(w http.ResponseWriter, r *http.Request, d *Data) error {
	if d.Empty() {
		if _, err := r.Cookie(s.CookieName); err == nil {
			http.SetCookie(w, s.cookie("", -1))
		}
		return nil
	}
	now := time.Now()
	claims := cookieClaims{
		Data: *d,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.MaxAge)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, s.cookie(token, int(s.MaxAge.Seconds())))
	return nil
}
