package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/config"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const accessTokenTTL = 15 * time.Minute

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
}

type JwtAccessTokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type AuthRegisterInput struct {
	Email    string
	Password string
	Name     string
}

type AuthLoginInput struct {
	Email    string
	Password string
}

type AuthLoginOutput struct {
	User  UserDTO           `json:"user"`
	Token JwtAccessTokenDTO `json:"token"`
}

type AuthUsecase struct {
	cfg   config.Config
	users repository.UserRepository
}

func NewAuthUsecase(cfg config.Config, users repository.UserRepository) *AuthUsecase {
	return &AuthUsecase{
		cfg:   cfg,
		users: users,
	}
}

// Register は会員登録。
func (u *AuthUsecase) Register(ctx context.Context, in AuthRegisterInput) (UserDTO, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	// 必須チェック
	if email == "" || in.Password == "" {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "email and password required")
	}

	// email形式
	if !emailRe.MatchString(email) {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	// パスワード最低文字数（MVP: 8）
	if len(in.Password) < 8 {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "password too short")
	}

	// email重複チェック
	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing != nil {
		return UserDTO{}, NewHTTPError(http.StatusConflict, "email already used")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		//名前未入力はメールのローカル部で代用
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         model.RoleUser,
		IsActive:     true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserDTO(user), nil
}

// Login はメール＋パスワードでaccess tokenを発行。
func (u *AuthUsecase) Login(ctx context.Context, in AuthLoginInput) (AuthLoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return AuthLoginOutput{}, NewHTTPError(http.StatusBadRequest, "email and password required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return AuthLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//存在しない場合も同じメッセージ（ユーザー列挙を防ぐ）
	if user == nil || !user.IsActive {
		return AuthLoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return AuthLoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := u.issueAccessToken(user)
	if err != nil {
		return AuthLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := u.users.Update(ctx, user); err != nil {
		return AuthLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AuthLoginOutput{
		User: toUserDTO(user),
		Token: JwtAccessTokenDTO{
			AccessToken: token,
			ExpiresIn:   int(accessTokenTTL.Seconds()),
		},
	}, nil
}

// issueAccessToken はHS256でアクセストークンを署名する。
func (u *AuthUsecase) issueAccessToken(user *model.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}

func toUserDTO(user *model.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Role:      string(user.Role),
	}
}
