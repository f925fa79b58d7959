package apihandler

import (
	"net/http"
	"strings"

	"carmate/internal/account"
	"carmate/pkg/domain"
)

type registerBody struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)

		return
	}

	var body registerBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeServiceError(r, w, err)

		return
	}

	user, err := a.deps.Account.Register(r.Context(), account.RegisterInput{
		FullName: body.FullName,
		Email:    body.Email,
		Phone:    body.Phone,
		Password: body.Password,
		Role:     domain.Role(strings.ToUpper(body.Role)),
	})
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	writeJSON(w, http.StatusCreated, user)
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)

		return
	}

	var body loginBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeServiceError(r, w, err)

		return
	}

	token, user, err := a.deps.Account.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

type forgotPasswordBody struct {
	Email string `json:"email"`
}

func (a *API) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)

		return
	}

	var body forgotPasswordBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeServiceError(r, w, err)

		return
	}

	if err := a.deps.Account.ForgotPassword(r.Context(), body.Email); err != nil {
		writeServiceError(r, w, err)

		return
	}

	// always 202 so the endpoint can't be used to probe for accounts
	writeJSON(w, http.StatusAccepted, map[string]string{"message": "if the account exists, a reset mail is on the way"})
}

type resetPasswordBody struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (a *API) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)

		return
	}

	var body resetPasswordBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeServiceError(r, w, err)

		return
	}

	if err := a.deps.Account.ResetPassword(r.Context(), body.Token, body.Password); err != nil {
		writeServiceError(r, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)

		return
	}

	writeJSON(w, http.StatusOK, userFrom(r.Context()))
}

type updateProfileBody struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type updateProfileResponse struct {
	User *domain.User `json:"user"`
}

func (a *API) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)

		return
	}

	var body updateProfileBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeServiceError(r, w, err)

		return
	}

	user, err := a.deps.Account.UpdateProfile(r.Context(), userFrom(r.Context()).ID, account.ProfileUpdates{
		FullName: body.FullName,
		Email:    body.Email,
		Phone:    body.Phone,
		Password: body.Password,
	})
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	writeJSON(w, http.StatusOK, updateProfileResponse{User: user})
}
