package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shop_backend/internal/feature/auth/domain/entity"
	jwtmw "shop_backend/internal/platform/jwt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
	// maxPasswordLength はbcryptが扱えるパスワードの最大バイト数です。
	maxPasswordLength = 72

	// dummyHash はユーザーが存在しない場合でもbcrypt比較を行うためのダミーハッシュです。
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// PasswordHasher はパスワードの一方向ハッシュと照合を行います。
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenIssuer は認証済みユーザーのトークンを発行します。
type TokenIssuer interface {
	Issue(id jwtmw.Identity) (string, error)
}

// LoginResult はログイン成功時に返されるトークンとユーザー情報です。
type LoginResult struct {
	Token string
	User  entity.User
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// normalizeEmail は前後の空白を除き小文字に揃えます。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
func (u *authUsecase) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooShort, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: must be at most %d bytes", ErrPasswordTooLong, maxPasswordLength)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{Email: normalizeEmail(email), PasswordHash: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にトークンとユーザー情報を返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyHash
	if user != nil {
		passwordHash = user.PasswordHash
	}

	// 常にパスワードを検証
	matched := u.hasher.Verify(password, passwordHash)
	if user == nil || !matched {
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(jwtmw.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, User: *user}, nil
}
