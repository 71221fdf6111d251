package server

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/wisp167/masar/internal/auth"
	"github.com/wisp167/masar/internal/data"
)

type Claims struct {
	UserID    string    `json:"uid"`
	Role      data.Role `json:"role"`
	SessionID string    `json:"sid"`
	jwt.StandardClaims
}

// session returns the sign-in provider bound to one session's storage. The
// provider itself does not sleep; routes apply LoginDelay through delayed.
func (app *Application) session(sid string) *auth.Provider {
	return auth.NewProvider(app.models.Users, data.Scoped(app.kv, "session:"+sid+":"), 0)
}

func (app *Application) issueToken(user *data.User, sid string) (string, time.Time, error) {
	expirationTime := time.Now().Add(app.config.TokenTTL)
	claims := &Claims{
		UserID:    user.ID,
		Role:      user.Role,
		SessionID: sid,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(app.jwtkey)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expirationTime, nil
}

// jwtMiddleware admits requests carrying a valid token whose session is still
// signed in. With roles given, the signed-in user must hold one of them.
func (app *Application) jwtMiddleware(next httprouter.Handle, roles ...data.Role) http.HandlerFunc {
	return wrapHandle(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		w.Header().Add("Vary", "Authorization")

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.authorizationErrorResponse(w, r)
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			app.authorizationErrorResponse(w, r)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return app.jwtkey, nil
		})
		if err != nil || !token.Valid || claims.SessionID == "" {
			app.authorizationErrorResponse(w, r)
			return
		}

		session := app.session(claims.SessionID)
		user, err := session.CurrentUser(r.Context())
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		// logged out, or the session was reused by someone else
		if user == nil || user.ID != claims.UserID {
			app.authorizationErrorResponse(w, r)
			return
		}

		if len(roles) > 0 && !slices.Contains(roles, user.Role) {
			app.forbiddenResponse(w, r)
			return
		}

		next(w, app.contextSetUser(r, user, session), ps)
	})
}

func (app *Application) loginHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sid := uuid.NewString()
	user, err := app.session(sid).Login(r.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.respondWithToken(w, r, http.StatusOK, user, sid)
}

func (app *Application) registerHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Name     string    `json:"name"`
		Email    string    `json:"email"`
		Password string    `json:"password"`
		Role     data.Role `json:"role"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Role == "" {
		input.Role = data.RoleUser
	}
	problems := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		problems["name"] = "must be provided"
	}
	if !strings.Contains(input.Email, "@") {
		problems["email"] = "must be a valid email address"
	}
	if input.Password == "" {
		problems["password"] = "must be provided"
	}
	if len(problems) > 0 {
		app.failedValidationResponse(w, r, problems)
		return
	}

	sid := uuid.NewString()
	user, err := app.session(sid).Register(r.Context(), input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidRole):
			app.failedValidationResponse(w, r, map[string]string{"role": err.Error()})
		case errors.Is(err, auth.ErrEmailInUse):
			app.conflictResponse(w, r, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.respondWithToken(w, r, http.StatusCreated, user, sid)
}

func (app *Application) respondWithToken(w http.ResponseWriter, r *http.Request, status int, user *data.User, sid string) {
	token, expires, err := app.issueToken(user, sid)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, status, envelope{"token": token, "expiresAt": expires, "user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) logoutHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := app.contextGetSession(r).Logout(r.Context()); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err := app.writeJSON(w, http.StatusOK, envelope{"message": "signed out"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) meHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := app.writeJSON(w, http.StatusOK, envelope{"user": app.contextGetUser(r)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
