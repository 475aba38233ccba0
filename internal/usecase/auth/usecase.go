package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"bank-loan-management/internal/domain/fault"
	userDomain "bank-loan-management/internal/domain/user"
	"bank-loan-management/pkg/id"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Usecase struct {
	users  userDomain.Repository
	secret []byte
	ttl    time.Duration
}

func NewUsecase(users userDomain.Repository, secret string, ttl time.Duration) *Usecase {
	return &Usecase{users: users, secret: []byte(secret), ttl: ttl}
}

type TokenDTO struct {
	Access   string          `json:"access"`
	Username string          `json:"username"`
	Role     userDomain.Role `json:"role"`
	IsAdmin  bool            `json:"is_admin"`
}

// Login verifies the password and issues an HS256 bearer token whose
// claims carry everything the role gates need, so request handling
// never re-reads the user row.
func (u *Usecase) Login(ctx context.Context, username, password string) (*TokenDTO, error) {
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userDomain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !usr.Active {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(usr.ID, 10),
		"username": usr.Username,
		"role":     int(usr.Role),
		"is_admin": usr.Superuser,
		"jti":      id.NewID32(),
		"iat":      now.Unix(),
		"exp":      now.Add(u.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.secret)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{
		Access:   signed,
		Username: usr.Username,
		Role:     usr.Role,
		IsAdmin:  usr.Superuser,
	}, nil
}

type RegisterInput struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Role     userDomain.Role `json:"role"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*userDomain.User, error) {
	if in.Username == "" || len(in.Username) > 50 {
		return nil, fault.Invalid("Invalid username")
	}
	if len(in.Password) < 8 {
		return nil, fault.Invalid("Password must be at least 8 characters")
	}
	if !in.Role.Valid() {
		return nil, fault.Invalid("Invalid role")
	}

	if _, err := u.users.GetByUsername(ctx, in.Username); err == nil {
		return nil, fault.Invalid("Username already taken")
	} else if !errors.Is(err, userDomain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usr := &userDomain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       true,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// ParseIdentity validates a signed token and unpacks its claims.
func ParseIdentity(secret []byte, token string) (userDomain.Identity, error) {
	var ident userDomain.Identity
	tkn, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return ident, err
	}
	claims, ok := tkn.Claims.(jwt.MapClaims)
	if !ok || !tkn.Valid {
		return ident, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	uid, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return ident, errors.New("invalid sub claim")
	}
	roleNum, _ := claims["role"].(float64)
	ident.UserID = uid
	ident.Username, _ = claims["username"].(string)
	ident.Role = userDomain.Role(int(roleNum))
	ident.IsAdmin, _ = claims["is_admin"].(bool)
	if !ident.Role.Valid() {
		return ident, errors.New("invalid role claim")
	}
	return ident, nil
}
