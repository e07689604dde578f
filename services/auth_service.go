package services

import (
	"crypto/rand"
	stderrors "errors"
	"fmt"
	"math/big"
	"time"

	"staybook/constants"
	"staybook/dto"
	"staybook/errors"
	"staybook/models"
	"staybook/services/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost             = 12
	verificationCodeExpiry = 15 * time.Minute
	resetCodeExpiry        = 10 * time.Minute
)

// AuthService xử lý đăng ký, đăng nhập và vòng đời verification code
type AuthService struct {
	db     *gorm.DB
	mailer EmailSender
	logger logger.Logger
}

type AuthServiceOptions struct {
	DB     *gorm.DB
	Mailer EmailSender
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuthService{
		db:     opts.DB,
		mailer: opts.Mailer,
		logger: opts.Logger,
	}
}

// Register tạo user mới ở trạng thái chưa verify và gửi mã 6 số qua email
func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, errors.NewAppError(errors.ErrCodeConflict, "Email already in use.", errors.ErrUserAlreadyExists)
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	// Chỉ nhận user/admin, mọi giá trị khác rơi về user.
	role := req.Role
	if role != constants.RoleUser && role != constants.RoleAdmin {
		role = constants.RoleUser
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(verificationCodeExpiry)

	user := models.User{
		FirstName:                 req.FirstName,
		LastName:                  req.LastName,
		Email:                     req.Email,
		Password:                  string(hashed),
		ContactPhone:              req.ContactPhone,
		Address:                   req.Address,
		Role:                      role,
		IsVerified:                false,
		VerificationCode:          code,
		VerificationCodeExpiresAt: &expiresAt,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrCodeConflict, "Email already in use.", errors.ErrUserAlreadyExists)
		}
		return nil, err
	}

	if err := s.mailer.Send(user.Email, "Verify your email", VerificationEmailBody(user.FirstName, code)); err != nil {
		// Registration is committed; the user can request a new code.
		s.logger.Error("send verification email to %s: %v", user.Email, err)
	}

	return &user, nil
}

// Login xác thực credential và phát JWT. User chưa verify bị từ chối.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	var user models.User
	err := s.db.Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Invalid credentials.", errors.ErrInvalidPassword)
	}

	if !user.IsVerified {
		return nil, errors.NewAppError(errors.ErrCodeUnverified, "Please verify your email before logging in.", errors.ErrEmailNotVerified)
	}

	token, err := GenerateToken(&user)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		s.logger.Error("update last login for %s: %v", user.Email, err)
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    ToUserResponse(&user),
	}, nil
}

// VerifyEmail so mã 6 số, kiểm tra hạn, rồi bật cờ isVerified
func (s *AuthService) VerifyEmail(req dto.VerifyEmailRequest) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
		}
		return nil, err
	}

	if user.IsVerified {
		return &user, nil
	}

	if user.VerificationCode == "" || user.VerificationCode != req.Code {
		return nil, errors.NewAppError(errors.ErrCodeInvalidCode, "Invalid verification code.", nil)
	}
	if user.VerificationCodeExpiresAt == nil || time.Now().After(*user.VerificationCodeExpiresAt) {
		return nil, errors.NewAppError(errors.ErrCodeExpiredCode, "Verification code has expired. Please request a new one.", nil)
	}

	updates := map[string]interface{}{
		"is_verified":                  true,
		"verification_code":            "",
		"verification_code_expires_at": nil,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	user.IsVerified = true
	user.VerificationCode = ""
	user.VerificationCodeExpiresAt = nil

	return &user, nil
}

// ResendCode phát mã verification mới cho user chưa verify
func (s *AuthService) ResendCode(email string) error {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
		}
		return err
	}

	if user.IsVerified {
		return errors.NewAppError(errors.ErrCodeValidation, "Email is already verified.", nil)
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(verificationCodeExpiry)

	updates := map[string]interface{}{
		"verification_code":            code,
		"verification_code_expires_at": expiresAt,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return err
	}

	if err := s.mailer.Send(user.Email, "Verify your email", VerificationEmailBody(user.FirstName, code)); err != nil {
		return errors.NewAppError(errors.ErrCodeMailer, "Could not send verification email.", err)
	}

	return nil
}

// RequestPasswordReset gửi mã reset 6 số có hạn 10 phút
func (s *AuthService) RequestPasswordReset(email string) error {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
		}
		return err
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(resetCodeExpiry)

	updates := map[string]interface{}{
		"reset_password_code":       code,
		"reset_password_expires_at": expiresAt,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return err
	}

	if err := s.mailer.Send(user.Email, "Reset your password", PasswordResetEmailBody(user.FirstName, code)); err != nil {
		return errors.NewAppError(errors.ErrCodeMailer, "Could not send password reset email.", err)
	}

	return nil
}

// ResetPassword đổi mật khẩu sau khi đối chiếu mã reset
func (s *AuthService) ResetPassword(req dto.ResetPasswordRequest) error {
	var user models.User
	err := s.db.Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
		}
		return err
	}

	if user.ResetPasswordCode == "" || user.ResetPasswordCode != req.Code {
		return errors.NewAppError(errors.ErrCodeInvalidCode, "Invalid reset code.", nil)
	}
	if user.ResetPasswordExpiresAt == nil || time.Now().After(*user.ResetPasswordExpiresAt) {
		return errors.NewAppError(errors.ErrCodeExpiredCode, "Reset code has expired. Please request a new one.", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"password":                  string(hashed),
		"reset_password_code":       "",
		"reset_password_expires_at": nil,
	}
	return s.db.Model(&user).Updates(updates).Error
}

// UpdateEmail đổi địa chỉ email, hạ cờ verify và phát mã verification mới
// cho địa chỉ mới.
func (s *AuthService) UpdateEmail(userID uint, newEmail string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
		}
		return err
	}

	var existing models.User
	err := s.db.Where("email = ?", newEmail).First(&existing).Error
	if err == nil && existing.ID != user.ID {
		return errors.NewAppError(errors.ErrCodeValidation, "Email is already in use.", errors.ErrUserAlreadyExists)
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(verificationCodeExpiry)

	updates := map[string]interface{}{
		"email":                        newEmail,
		"is_verified":                  false,
		"verification_code":            code,
		"verification_code_expires_at": expiresAt,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return errors.NewAppError(errors.ErrCodeValidation, "Email is already in use.", errors.ErrUserAlreadyExists)
		}
		return err
	}

	if err := s.mailer.Send(newEmail, "Verify your email", VerificationEmailBody(user.FirstName, code)); err != nil {
		s.logger.Error("send verification email to %s: %v", newEmail, err)
	}

	return nil
}

// ChangePassword đổi mật khẩu sau khi đối chiếu mật khẩu cũ, gửi mail báo
func (s *AuthService) ChangePassword(userID uint, req dto.ChangePasswordRequest) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Old password is incorrect.", errors.ErrInvalidPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}

	if err := s.db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return err
	}

	changedAt := time.Now().Format("2006-01-02 15:04:05")
	if err := s.mailer.Send(user.Email, "Your password was changed", PasswordChangedEmailBody(user.FirstName, changedAt)); err != nil {
		// Password is committed; the notification is best effort.
		s.logger.Error("send password change email to %s: %v", user.Email, err)
	}

	return nil
}

// PurgeExpiredCodes dọn các mã hết hạn, chạy định kỳ từ cron
func (s *AuthService) PurgeExpiredCodes() error {
	now := time.Now()

	err := s.db.Model(&models.User{}).
		Where("verification_code_expires_at IS NOT NULL AND verification_code_expires_at < ?", now).
		Updates(map[string]interface{}{
			"verification_code":            "",
			"verification_code_expires_at": nil,
		}).Error
	if err != nil {
		return err
	}

	return s.db.Model(&models.User{}).
		Where("reset_password_expires_at IS NOT NULL AND reset_password_expires_at < ?", now).
		Updates(map[string]interface{}{
			"reset_password_code":       "",
			"reset_password_expires_at": nil,
		}).Error
}

// generateNumericCode sinh chuỗi số ngẫu nhiên độ dài n
func generateNumericCode(n int) (string, error) {
	code := ""
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += fmt.Sprintf("%d", d.Int64())
	}
	return code, nil
}

// ToUserResponse chuyển model sang response không lộ password
func ToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:          user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		ContactPhone:    user.ContactPhone,
		Address:         user.Address,
		ProfileImageURL: user.ProfileImageURL,
		Role:            user.Role,
		IsVerified:      user.IsVerified,
	}
}
