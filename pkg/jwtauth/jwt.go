package jwtauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrInvalidToken возвращается для любого некорректного, неподписанного
// или просроченного токена
var ErrInvalidToken = errors.New("jwtauth: invalid token")

// Claims полезная нагрузка токена
// Токен несет только идентификаторы пользователя и компании - этого
// достаточно для tenant-изоляции на уровне запросов
type Claims struct {
	UserID    int64 `json:"id"`
	CompanyID int64 `json:"companyId"`
	Exp       int64 `json:"exp"`
	Iat       int64 `json:"iat"`
}

// Signer подписывает и проверяет HS256 токены
type Signer struct {
	secret string
	ttl    time.Duration
}

// NewSigner создает Signer с заданным секретом и временем жизни токена
func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: secret, ttl: ttl}
}

// Sign выпускает токен для пользователя компании
func (s *Signer) Sign(userID, companyID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		CompanyID: companyID,
		Iat:       now.Unix(),
		Exp:       now.Add(s.ttl).Unix(),
	}

	headerJSON, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		return "", err
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	unsigned := base64.RawURLEncoding.EncodeToString(headerJSON) + "." +
		base64.RawURLEncoding.EncodeToString(payloadJSON)

	return unsigned + "." + s.sign(unsigned), nil
}

// Verify проверяет подпись и срок жизни токена, возвращает claims
func (s *Signer) Verify(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	unsigned := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(parts[2]), []byte(s.sign(unsigned))) {
		return nil, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Exp > 0 && time.Now().Unix() > claims.Exp {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}

func (s *Signer) sign(data string) string {
	mac := hmac.New(sha256.New, []byte(s.secret))
	_, _ = mac.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
