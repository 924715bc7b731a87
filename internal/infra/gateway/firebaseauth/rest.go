package firebaseauth

import (
	"context"
	"strings"

	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/shared"

	"github.com/go-resty/resty/v2"
)

const codeWeakPassword = shared.AuthCodeWeakPassword

// Texts the Firebase client SDKs show for the Identity Toolkit error codes.
var messages = map[string]string{
	shared.AuthCodeEmailExists:        "The email address is already in use by another account.",
	shared.AuthCodeInvalidCredentials: "The email or password is incorrect.",
	"INVALID_PASSWORD":                "The email or password is incorrect.",
	shared.AuthCodeEmailNotFound:      "There is no user record corresponding to this email.",
	shared.AuthCodeWeakPassword:       "Password should be at least 6 characters.",
	shared.AuthCodeInvalidEmail:       "The email address is badly formatted.",
	shared.AuthCodeInvalidOobCode:     "The password reset code is invalid. It may have been used already.",
	shared.AuthCodeExpiredOobCode:     "The password reset code has expired.",
	"USER_DISABLED":                   "The user account has been disabled by an administrator.",
	"TOO_MANY_ATTEMPTS_TRY_LATER":     "Access to this account has been temporarily disabled due to many failed login attempts.",
	"MISSING_PASSWORD":                "Please enter your password.",
	"MISSING_EMAIL":                   "Please enter your email.",
}

type restClient struct {
	client *resty.Client
}

func newRestClient(baseURL, apiKey string) *restClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetQueryParam("key", apiKey).
		SetHeader("Content-Type", "application/json")
	return &restClient{client: c}
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// post sends body and decodes a 2xx reply into out. Provider rejections come
// back as *shared.AuthError; transport failures are wrapped.
func (c *restClient) post(ctx context.Context, path string, body any, out any) error {
	var apiErr errorResponse
	req := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetError(&apiErr)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Post(path)
	if err != nil {
		return errs.Wrapf(err, "identity toolkit %s", path)
	}
	if resp.IsError() {
		if apiErr.Error.Message == "" {
			return errs.Newf("identity toolkit %s: status %d", path, resp.StatusCode())
		}
		return parseAuthError(apiErr.Error.Message)
	}
	return nil
}

// parseAuthError splits messages such as "WEAK_PASSWORD : Password should be ..." into code and text.
func parseAuthError(raw string) *shared.AuthError {
	code, detail, _ := strings.Cut(raw, ":")
	code = strings.TrimSpace(code)
	detail = strings.TrimSpace(detail)

	ae := authError(code)
	if detail != "" && ae.Message == code {
		ae.Message = detail
	}
	return ae
}

func authError(code string) *shared.AuthError {
	msg, ok := messages[code]
	if !ok {
		msg = code
	}
	return &shared.AuthError{Code: code, Message: msg}
}
