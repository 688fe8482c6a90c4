package encrypt

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// 密碼加密強度, bcrypt.DefaultCost = 10
const bcryptCost = bcrypt.DefaultCost

// 定義錯誤信息
var (
	ErrWeakPassword     = errors.New("password does not meet strength requirements")
	ErrPasswordMismatch = errors.New("password does not match")
)

// ValidatePasswordStrength 驗證密碼強度
func ValidatePasswordStrength(password string) error {
	if len(password) < 4 {
		return fmt.Errorf("%w: must be at least 4 characters long", ErrWeakPassword)
	}
	return nil
}

// HashPassword 將密碼進行加密
func HashPassword(password string) (string, error) {
	// 檢查密碼強度
	if err := ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	// 使用 bcrypt 加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedPassword), nil
}

// CheckPassword 驗證密碼是否匹配
func CheckPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
