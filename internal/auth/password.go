package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword 生成加盐的 bcrypt 摘要，相同明文每次结果不同
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword 校验明文与摘要；摘要格式错误时返回 false
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
