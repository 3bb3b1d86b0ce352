package api

import (
	"encoding/json"
	"net/http"

	"github.com/onemployment/client/internal/client/forms"
)

// Backend paths consumed by the client.
const (
	LoginPath            = "/api/v1/auth/login"
	LogoutPath           = "/api/v1/auth/logout"
	UserPath             = "/api/v1/user"
	MePath               = "/api/v1/user/me"
	ValidateEmailPath    = "/api/v1/user/validate/email"
	ValidateUsernamePath = "/api/v1/user/validate/username"
	SuggestUsernamesPath = "/api/v1/user/suggest-usernames"
)

// RequestDescriptor is a transport-agnostic description of an outgoing
// request: method, path relative to the base URL, headers, and an encoded
// JSON body (nil for body-less requests).
type RequestDescriptor struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerBody struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// BuildLoginRequest describes POST /api/v1/auth/login with a JSON
// {email, password} body.
func BuildLoginRequest(in forms.LoginInput) (RequestDescriptor, error) {
	body, err := json.Marshal(loginBody{Email: in.Email, Password: in.Password})
	if err != nil {
		return RequestDescriptor{}, err
	}
	return RequestDescriptor{
		Method: http.MethodPost,
		Path:   LoginPath,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   body,
	}, nil
}

// BuildRegisterRequest describes POST /api/v1/user with all five sign-up
// fields in the JSON body.
func BuildRegisterRequest(in forms.RegisterInput) (RequestDescriptor, error) {
	body, err := json.Marshal(registerBody{
		Email:     in.Email,
		Password:  in.Password,
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		return RequestDescriptor{}, err
	}
	return RequestDescriptor{
		Method: http.MethodPost,
		Path:   UserPath,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   body,
	}, nil
}
