// Package i18n holds the user-facing message catalog.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the key.
const (
	MsgInvalidRequest        = "Invalid request"
	MsgServiceFieldsRequired = "Please fill in all service information."
	MsgServiceNameRequired   = "Service name is required."
	MsgServiceDescRequired   = "Service description is required."
	MsgServicePriceInvalid   = "Price must be a valid number."
	MsgServicePriceNegative  = "Price cannot be negative."
	MsgServiceNotFound       = "Service not found."
	MsgServiceSaveFailed     = "Could not save the service."
	MsgServiceDeleteFailed   = "Could not delete the service."
	MsgServiceLoadFailed     = "Could not load services."
	MsgTransactionNotFound   = "Transaction not found."
	MsgTransactionLoadFailed = "Could not load transactions."
	MsgStatusInvalid         = "Status must be accepted or rejected."
	MsgStatusUpdateFailed    = "Could not update the transaction status."
	MsgLoginRequired         = "Please log in to place an order."
	MsgOrderFailed           = "Could not place the order."
	MsgCustomersLoadFailed   = "Could not load customers."
	MsgAppointmentsFailed    = "Could not load appointments."
	MsgNameRequired          = "Name cannot be empty."
	MsgProfileLoadFailed     = "Could not load the profile."
	MsgProfileUpdateFailed   = "Could not update the profile."
	MsgFieldsRequired        = "Please fill in all fields."
	MsgPasswordMismatch      = "Passwords do not match."
	MsgEmailRequired         = "Please enter your email."
	MsgResetEmailSent        = "A password reset email has been sent."
	MsgScreenUnavailable     = "This screen is not available for your account."
	MsgUnauthorized          = "Unauthorized"
	MsgInternal              = "Internal server error"
	MsgInvalidEmail          = "Please enter a valid email address."
	MsgNoChanges             = "Nothing to update."
	MsgSessionLoadFailed     = "Could not load the session."
)

var Supported = []language.Tag{language.English, language.Vietnamese}

var matcher = language.NewMatcher(Supported)

var vietnamese = map[string]string{
	MsgInvalidRequest:        "Yêu cầu không hợp lệ",
	MsgServiceFieldsRequired: "Vui lòng nhập đầy đủ thông tin dịch vụ.",
	MsgServiceNameRequired:   "Vui lòng nhập tên dịch vụ.",
	MsgServiceDescRequired:   "Vui lòng nhập mô tả dịch vụ.",
	MsgServicePriceInvalid:   "Giá phải là một số hợp lệ.",
	MsgServicePriceNegative:  "Giá không được âm.",
	MsgServiceNotFound:       "Không tìm thấy dịch vụ.",
	MsgServiceSaveFailed:     "Không thể lưu dịch vụ.",
	MsgServiceDeleteFailed:   "Không thể xóa dịch vụ.",
	MsgServiceLoadFailed:     "Không thể tải danh sách dịch vụ.",
	MsgTransactionNotFound:   "Không tìm thấy giao dịch.",
	MsgTransactionLoadFailed: "Không thể tải danh sách giao dịch.",
	MsgStatusInvalid:         "Trạng thái phải là accepted hoặc rejected.",
	MsgStatusUpdateFailed:    "Không thể cập nhật trạng thái giao dịch.",
	MsgLoginRequired:         "Vui lòng đăng nhập để đặt dịch vụ.",
	MsgOrderFailed:           "Không thể đặt dịch vụ.",
	MsgCustomersLoadFailed:   "Không thể tải danh sách khách hàng.",
	MsgAppointmentsFailed:    "Không thể tải lịch hẹn.",
	MsgNameRequired:          "Tên không được để trống.",
	MsgProfileLoadFailed:     "Không thể tải hồ sơ.",
	MsgProfileUpdateFailed:   "Không thể cập nhật hồ sơ.",
	MsgFieldsRequired:        "Vui lòng nhập đầy đủ thông tin.",
	MsgPasswordMismatch:      "Mật khẩu không khớp.",
	MsgEmailRequired:         "Vui lòng nhập email.",
	MsgResetEmailSent:        "Email đặt lại mật khẩu đã được gửi.",
	MsgScreenUnavailable:     "Màn hình này không khả dụng với tài khoản của bạn.",
	MsgUnauthorized:          "Chưa đăng nhập",
	MsgInternal:              "Lỗi máy chủ",
	MsgInvalidEmail:          "Vui lòng nhập email hợp lệ.",
	MsgNoChanges:             "Không có gì để cập nhật.",
	MsgSessionLoadFailed:     "Không thể tải phiên đăng nhập.",
}

func init() {
	for key, text := range vietnamese {
		_ = message.SetString(language.Vietnamese, key, text)
		_ = message.SetString(language.English, key, key)
	}
}

// Match picks the best supported language for an Accept-Language header value.
func Match(acceptLanguage string, fallback language.Tag) language.Tag {
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}

// Parse returns the supported tag for a configured language code, English otherwise.
func Parse(code string) language.Tag {
	tag, err := language.Parse(code)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return Supported[idx]
}

func Translate(tag language.Tag, key string) string {
	return message.NewPrinter(tag).Sprintf(key)
}
