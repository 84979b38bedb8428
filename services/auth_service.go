package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"strings"
	"time"

	"hoithanh/config"
	"hoithanh/models"

	"golang.org/x/crypto/bcrypt"
)

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func sendVerificationEmail(email string, code string) error {
	from := config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")
	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	to := []string{email}
	subject := "Subject: Mã xác thực tài khoản của bạn\n"
	body := fmt.Sprintf(`
		<p>Xin chào,</p>
		<p>Mã xác thực tài khoản của bạn là: <b>%s</b></p>
		<p>Mã có hiệu lực trong 5 phút.</p>
	`, code)
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := []byte(subject + mime + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, message)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(email)).First(&user)
	if result.Error != nil {
		return user, result.Error
	}
	return user, nil
}

// CreateUser tạo tài khoản mới và gửi mã xác thực qua email
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("không được để trống email, password")
	}

	if _, err := GetUserByEmail(input.Email); err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", input.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:          input.Name,
		Email:         strings.ToLower(input.Email),
		Password:      hashedPassword,
		Role:          input.Role,
		Code:          code,
		CodeCreatedAt: time.Now(),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	if err := sendVerificationEmail(user.Email, code); err != nil {
		// Tài khoản vẫn tạo được, người dùng có thể yêu cầu gửi lại mã
		fmt.Printf("Không gửi được email xác thực cho %s: %v\n", user.Email, err)
	}

	return user, nil
}

// CreateGoogleUser tạo tài khoản từ thông tin Google, đã xác thực sẵn
func CreateGoogleUser(name, email, picture string) (models.User, error) {
	user := models.User{
		Name:       name,
		Email:      strings.ToLower(email),
		Avatar:     picture,
		IsVerified: true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
