package usecase_test

import (
	"context"
	"testing"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/config"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type AuthUserRepoMock struct{ mock.Mock }

func (m *AuthUserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *AuthUserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newAuthUsecase() (*usecase.AuthUsecase, *AuthUserRepoMock) {
	users := new(AuthUserRepoMock)
	cfg := config.Config{JWTSecret: "test-secret"}
	return usecase.NewAuthUsecase(cfg, users), users
}

func TestAuthUsecase_Register_InvalidEmail(t *testing.T) {
	uc, users := newAuthUsecase()

	_, err := uc.Register(context.Background(), usecase.AuthRegisterInput{
		Email:    "not-an-email",
		Password: "password123",
	})
	assertErrContains(t, err, "invalid email")

	users.AssertNotCalled(t, "Create")
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	uc, users := newAuthUsecase()

	users.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{ID: 1}, nil)

	_, err := uc.Register(context.Background(), usecase.AuthRegisterInput{
		Email:    "taken@example.com",
		Password: "password123",
	})
	assertErrContains(t, err, "email already used")

	users.AssertNotCalled(t, "Create")
}

// 名前未入力はメールのローカル部で代用する
func TestAuthUsecase_Register_DefaultsNameToEmailLocalPart(t *testing.T) {
	uc, users := newAuthUsecase()

	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "alice@example.com" && u.Name == "alice" && u.Role == model.RoleUser
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 42
	}).Return(nil)

	dto, err := uc.Register(context.Background(), usecase.AuthRegisterInput{
		Email:    " Alice@Example.com ",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), dto.ID)
	assert.Equal(t, "alice", dto.Name)

	users.AssertExpectations(t)
}

// 存在しないユーザーとパスワード違いのメッセージは同じ（ユーザー列挙を防ぐ）
func TestAuthUsecase_Login_SameMessageForUnknownUserAndWrongPassword(t *testing.T) {
	uc, users := newAuthUsecase()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	users.On("FindByEmail", mock.Anything, "none@example.com").Return(nil, nil)
	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{
		ID: 1, Email: "alice@example.com", PasswordHash: string(hash), IsActive: true,
	}, nil)

	_, err1 := uc.Login(context.Background(), usecase.AuthLoginInput{Email: "none@example.com", Password: "whatever1"})
	_, err2 := uc.Login(context.Background(), usecase.AuthLoginInput{Email: "alice@example.com", Password: "wrong-password"})

	assertErrContains(t, err1, "invalid email or password")
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestAuthUsecase_Login_Success_IssuesHS256Token(t *testing.T) {
	uc, users := newAuthUsecase()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	user := &model.User{
		ID: 1, Email: "alice@example.com", Name: "Alice",
		PasswordHash: string(hash), Role: model.RoleUser, IsActive: true,
	}
	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.LastLoginAt != nil
	})).Return(nil)

	out, err := uc.Login(context.Background(), usecase.AuthLoginInput{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.NotEmpty(t, out.Token.AccessToken)

	//発行したトークンの中身を確認
	parsed, err := jwt.Parse(out.Token.AccessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "1", claims["sub"])
	assert.Equal(t, "USER", claims["role"])

	users.AssertExpectations(t)
}

func TestAuthUsecase_Login_InactiveUserRejected(t *testing.T) {
	uc, users := newAuthUsecase()

	users.On("FindByEmail", mock.Anything, "gone@example.com").Return(&model.User{
		ID: 2, Email: "gone@example.com", IsActive: false,
	}, nil)

	_, err := uc.Login(context.Background(), usecase.AuthLoginInput{
		Email:    "gone@example.com",
		Password: "whatever1",
	})
	assertErrContains(t, err, "invalid email or password")
}
