package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"time"

	"kinetix/config"
	"kinetix/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OtpTTL là thời gian sống của mã OTP
const OtpTTL = 5 * time.Minute

// OtpService phát và xác thực mã dùng một lần cho đăng ký tài khoản
type OtpService interface {
	Send(email string) error
	Verify(email string, code string) error
}

// RedisOtpService lưu mã OTP trong Redis với TTL, dùng được khi
// chạy nhiều instance
type RedisOtpService struct {
	Client *redis.Client
}

func NewRedisOtpService(client *redis.Client) *RedisOtpService {
	return &RedisOtpService{Client: client}
}

func otpKey(email string) string {
	return "otp:" + email
}

// GenerateOtp tạo mã OTP 6 chữ số
func GenerateOtp() (string, error) {
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

// Send tạo mã mới, lưu vào Redis và gửi qua email
func (s *RedisOtpService) Send(email string) error {
	code, err := GenerateOtp()
	if err != nil {
		return err
	}

	if err := s.Client.Set(config.Ctx, otpKey(email), code, OtpTTL).Err(); err != nil {
		return err
	}

	return sendOtpEmail(email, code)
}

// Verify kiểm tra và tiêu thụ mã OTP (mã chỉ dùng một lần)
func (s *RedisOtpService) Verify(email string, code string) error {
	stored, err := s.Client.Get(config.Ctx, otpKey(email)).Result()
	if err != nil {
		return fmt.Errorf("mã OTP đã hết hạn hoặc chưa được gửi")
	}

	if stored != code {
		return fmt.Errorf("mã OTP không đúng")
	}

	_ = s.Client.Del(config.Ctx, otpKey(email)).Err()
	return nil
}

// sendOtpEmail gửi mã OTP đến email đăng ký
func sendOtpEmail(email string, code string) error {
	from := config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")

	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")
	to := []string{email}
	subject := "Subject: Mã dùng một lần của bạn\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác thực</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Chúng tôi đã nhận yêu cầu mã dùng một lần để đăng ký tài khoản Kinetix của bạn.</p>
			<p>Mã dùng một lần của bạn là: <strong>%s</strong></p>
			<p>Mã có hiệu lực trong 5 phút.</p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn. Có thể ai đó khác đã nhập địa chỉ email của bạn do nhầm lẫn.</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email, code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

func GetUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	result := db.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword so sánh mật khẩu với hash đã lưu
func CheckPassword(hashed string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
